package frequency

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HistogramLines renders one line per entry: the display name, a space and
// one marker per counted occurrence.
func (t *Table) HistogramLines() []string {
	entries, ok := t.ListAll()
	if !ok {
		return nil
	}
	marker := string(t.marker)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Name+" "+strings.Repeat(marker, e.Count))
	}
	return lines
}

// Serialize renders the backup format: "name count" per entry.
func (t *Table) Serialize() []string {
	entries, ok := t.ListAll()
	if !ok {
		return nil
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Name+" "+strconv.Itoa(e.Count))
	}
	return lines
}

// WriteTo writes the serialized table to w, one newline-terminated line per
// entry. It implements io.WriterTo.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	for _, line := range t.Serialize() {
		n, err := fmt.Fprintln(bw, line)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}
