package frequency

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/itemtracker/internal/ctxlog"
)

// ErrSourceUnreadable is returned by ReadFile when the input file cannot be
// opened or read. The returned error also wraps the underlying cause.
var ErrSourceUnreadable = errors.New("input source unreadable")

// ReadFile builds a Table from the file at path.
func ReadFile(ctx context.Context, path string, opts ...Option) (*Table, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading input file.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file '%s': %w: %w", path, ErrSourceUnreadable, err)
	}
	defer f.Close()

	t, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file '%s': %w: %w", path, ErrSourceUnreadable, err)
	}

	logger.Debug("Input file read.", "path", path, "items", t.Len(), "lines", t.Total())
	return t, nil
}

// Persist writes the serialized table to path, replacing any existing file.
// The table is unaffected by a failed write.
func (t *Table) Persist(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Writing backup file.", "path", path, "items", t.Len())

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create backup file '%s': %w", path, err)
	}
	if _, err := t.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write backup file '%s': %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close backup file '%s': %w", path, err)
	}
	return nil
}
