package frequency

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Entry is a single row of the table as presented to the user.
type Entry struct {
	Name  string
	Count int
}

// record is the per-key state: first-seen display name and count (always >= 1).
type record struct {
	name  string
	count int
}

// Table holds item counts keyed by normalized name.
type Table struct {
	records map[string]*record
	keys    []string // sorted ascending
	marker  rune
}

// Option customises a Table at build time.
type Option func(*Table)

// WithMarker sets the rune repeated in histogram lines. The default is '*'.
func WithMarker(marker rune) Option {
	return func(t *Table) {
		t.marker = marker
	}
}

// Build counts the given lines. Blank lines are ignored. The display name of
// each item is the trimmed text of its first occurrence.
func Build(lines []string, opts ...Option) *Table {
	t := &Table{
		records: make(map[string]*record),
		marker:  '*',
	}
	for _, opt := range opts {
		opt(t)
	}

	for _, line := range lines {
		t.add(line)
	}

	t.keys = make([]string, 0, len(t.records))
	for key := range t.records {
		t.keys = append(t.keys, key)
	}
	sort.Strings(t.keys)

	return t
}

// Read builds a Table from r, one item per line. Lines may be of any length.
func Read(r io.Reader, opts ...Option) (*Table, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read items: %w", err)
		}
	}
	return Build(lines, opts...), nil
}

func (t *Table) add(line string) {
	key := Normalize(line)
	if key == "" {
		return
	}
	if rec, ok := t.records[key]; ok {
		rec.count++
		return
	}
	t.records[key] = &record{name: strings.TrimSpace(line), count: 1}
}

// Lookup returns how many times item was seen. Unknown items count zero.
func (t *Table) Lookup(item string) int {
	rec, ok := t.records[Normalize(item)]
	if !ok {
		return 0
	}
	return rec.count
}

// Len returns the number of distinct items.
func (t *Table) Len() int {
	return len(t.keys)
}

// Total returns the number of counted lines.
func (t *Table) Total() int {
	total := 0
	for _, rec := range t.records {
		total += rec.count
	}
	return total
}

// ListAll returns every entry ordered by normalized name. The boolean is
// false when the table holds no items at all.
func (t *Table) ListAll() ([]Entry, bool) {
	if len(t.keys) == 0 {
		return nil, false
	}
	entries := make([]Entry, 0, len(t.keys))
	for _, key := range t.keys {
		rec := t.records[key]
		entries = append(entries, Entry{Name: rec.name, Count: rec.count})
	}
	return entries, true
}
