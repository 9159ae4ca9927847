// Package menu is the interactive query surface of the item tracker. It reads
// choices from an input stream and renders answers from a frequency table.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/specialistvlad/itemtracker/internal/ctxlog"
	"github.com/specialistvlad/itemtracker/internal/frequency"
)

// Querier is the read-only view of the table the menu needs.
type Querier interface {
	Lookup(item string) int
	ListAll() ([]frequency.Entry, bool)
	HistogramLines() []string
}

// Choice is a menu option number.
type Choice int

const (
	ChoiceSearch Choice = iota + 1
	ChoiceList
	ChoiceHistogram
	ChoiceExit
)

const noItems = "No items recorded."

// errInputClosed signals that the input stream ended while prompting.
var errInputClosed = errors.New("input closed")

// lineResult is one line, or the read error that ended the input.
type lineResult struct {
	text string
	err  error
}

// Menu runs the query loop.
type Menu struct {
	table Querier
	in    *bufio.Reader
	out   io.Writer
	lines chan lineResult
	done  chan struct{}
}

// New creates a menu reading from in and writing to out.
func New(table Querier, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		table: table,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

// Run shows the menu until the user exits, the input ends or ctx is done.
// Cancelling ctx interrupts a pending prompt and Run returns ctx.Err().
func (m *Menu) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Menu loop started.")

	if err := ctx.Err(); err != nil {
		return err
	}
	m.startReader()
	defer close(m.done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printOptions()
		choice, err := m.readChoice(ctx)
		if err != nil {
			return m.finish(ctx, err)
		}
		logger.Debug("Menu choice read.", "choice", int(choice))

		switch choice {
		case ChoiceSearch:
			item, err := m.readNonEmptyLine(ctx, "Enter the item (word) to search for: ")
			if err != nil {
				return m.finish(ctx, err)
			}
			m.search(item)
		case ChoiceList:
			fmt.Fprintln(m.out, "\nAll items with frequencies:")
			m.list()
		case ChoiceHistogram:
			fmt.Fprintln(m.out, "\nHistogram (item followed by asterisks):")
			m.histogram()
		case ChoiceExit:
			fmt.Fprintln(m.out, "Exiting program. Goodbye!")
			logger.Debug("Menu loop finished.")
			return nil
		}
	}
}

// finish turns the end of input into a clean exit.
func (m *Menu) finish(ctx context.Context, err error) error {
	if errors.Is(err, errInputClosed) {
		ctxlog.FromContext(ctx).Debug("Input closed, leaving menu.")
		fmt.Fprintln(m.out, "\nExiting program. Goodbye!")
		return nil
	}
	return err
}

func (m *Menu) printOptions() {
	fmt.Fprint(m.out, "\nMenu Options:\n"+
		"1. Search for an item frequency (enter item name)\n"+
		"2. Print the frequency of all items\n"+
		"3. Print histogram of item frequencies\n"+
		"4. Exit program\n")
}

// startReader feeds input lines to m.lines from a separate goroutine so that
// a blocked read never prevents Run from observing cancellation. The
// goroutine stops sending once m.done is closed.
func (m *Menu) startReader() {
	m.lines = make(chan lineResult)
	m.done = make(chan struct{})
	go func() {
		defer close(m.lines)
		for {
			text, err := m.in.ReadString('\n')
			if text != "" {
				select {
				case m.lines <- lineResult{text: text}:
				case <-m.done:
					return
				}
			}
			if err == nil {
				continue
			}
			if err != io.EOF {
				select {
				case m.lines <- lineResult{err: err}:
				case <-m.done:
				}
			}
			return
		}
	}()
}

func (m *Menu) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		fmt.Fprintln(m.out)
		return "", ctx.Err()
	case res, ok := <-m.lines:
		if !ok {
			return "", errInputClosed
		}
		if res.err != nil {
			return "", fmt.Errorf("failed to read input: %w", res.err)
		}
		return strings.TrimSpace(res.text), nil
	}
}

func (m *Menu) readChoice(ctx context.Context) (Choice, error) {
	for {
		fmt.Fprint(m.out, "\nEnter choice (1-4): ")
		line, err := m.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= int(ChoiceSearch) && n <= int(ChoiceExit) {
			return Choice(n), nil
		}
		fmt.Fprintln(m.out, "Invalid choice. Please enter a number between 1 and 4.")
	}
}

func (m *Menu) readNonEmptyLine(ctx context.Context, prompt string) (string, error) {
	for {
		fmt.Fprint(m.out, prompt)
		line, err := m.readLine(ctx)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(m.out, "Input cannot be empty. Please try again.")
	}
}

func (m *Menu) search(item string) {
	n := m.table.Lookup(item)
	unit := "times"
	if n == 1 {
		unit = "time"
	}
	fmt.Fprintf(m.out, "'%s' appears %d %s.\n", item, n, unit)
}

func (m *Menu) list() {
	entries, ok := m.table.ListAll()
	if !ok {
		fmt.Fprintln(m.out, noItems)
		return
	}
	fmt.Fprintln(m.out, "Item\tCount")
	fmt.Fprintln(m.out, "----------------")
	for _, e := range entries {
		fmt.Fprintf(m.out, "%s\t%d\n", e.Name, e.Count)
	}
}

func (m *Menu) histogram() {
	lines := m.table.HistogramLines()
	if len(lines) == 0 {
		fmt.Fprintln(m.out, noItems)
		return
	}
	for _, line := range lines {
		fmt.Fprintln(m.out, line)
	}
}
