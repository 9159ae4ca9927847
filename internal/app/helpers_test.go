package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/itemtracker/internal/frequency"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// writeItems creates an input file with the given lines in a fresh directory
// and returns its path.
func writeItems(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// setupAppTest creates a new app instance with debug logging captured.
func setupAppTest(t *testing.T, appConfig *Config, opts ...Option) (*App, *SafeBuffer, *SafeBuffer, error) {
	t.Helper()

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	appConfig.LogFormat = "text"
	testApp, err := NewApp(context.Background(), outBuffer, logBuffer, appConfig, nil, opts...)

	t.Cleanup(func() {
		if os.Getenv("ITEMTRACKER_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer, err
}

// fakePublisher records what it was asked to publish.
type fakePublisher struct {
	mu      sync.Mutex
	calls   int
	entries []frequency.Entry
	err     error
}

func (p *fakePublisher) Publish(_ context.Context, entries []frequency.Entry) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.entries = entries
	return p.err
}

var errMirrorDown = errors.New("mirror down")
