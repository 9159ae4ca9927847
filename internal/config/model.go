package config

import (
	"errors"
	"fmt"
	"net/url"
	"unicode/utf8"
)

const (
	DefaultInputFile  = "CS210_Project_Three_Input_File.txt"
	DefaultBackupFile = "frequency.dat"
	DefaultMarker     = "*"
	DefaultEvent      = "frequency"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid configuration")

// Model is the unified, format-agnostic representation of the application
// configuration.
type Model struct {
	InputFile  string
	BackupFile string // empty disables the backup
	Marker     string
	Mirror     *Mirror // nil disables mirroring
}

// Mirror describes the optional socket.io endpoint that receives a copy of
// the counts.
type Mirror struct {
	URL       string
	Namespace string
	Event     string
}

// Default returns the configuration used when nothing else is provided.
func Default() *Model {
	return &Model{
		InputFile:  DefaultInputFile,
		BackupFile: DefaultBackupFile,
		Marker:     DefaultMarker,
	}
}

// Clone returns a deep copy of m.
func (m *Model) Clone() *Model {
	c := *m
	if m.Mirror != nil {
		mirror := *m.Mirror
		c.Mirror = &mirror
	}
	return &c
}

// MarkerRune returns the histogram marker as a rune. It assumes Validate
// has passed.
func (m *Model) MarkerRune() rune {
	r, _ := utf8.DecodeRuneInString(m.Marker)
	return r
}

// Validate checks that the model can be used to run the tracker.
func (m *Model) Validate() error {
	if m.InputFile == "" {
		return fmt.Errorf("%w: input file must not be empty", ErrInvalid)
	}
	if utf8.RuneCountInString(m.Marker) != 1 {
		return fmt.Errorf("%w: histogram marker must be a single character, got %q", ErrInvalid, m.Marker)
	}
	if m.Mirror != nil {
		if err := m.Mirror.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mirror) validate() error {
	if m.URL == "" {
		return fmt.Errorf("%w: mirror url must not be empty", ErrInvalid)
	}
	u, err := url.Parse(m.URL)
	if err != nil {
		return fmt.Errorf("%w: mirror url: %w", ErrInvalid, err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("%w: mirror url scheme must be http, https, ws or wss, got %q", ErrInvalid, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: mirror url has no host", ErrInvalid)
	}
	if m.Event == "" {
		return fmt.Errorf("%w: mirror event must not be empty", ErrInvalid)
	}
	return nil
}
