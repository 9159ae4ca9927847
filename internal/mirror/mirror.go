// Package mirror publishes a copy of the frequency table to a socket.io
// endpoint. It is a second backup sink next to the backup file.
package mirror

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/specialistvlad/itemtracker/internal/config"
	"github.com/specialistvlad/itemtracker/internal/ctxlog"
	"github.com/specialistvlad/itemtracker/internal/frequency"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultConnectTimeout bounds how long Publish waits for the connection.
const DefaultConnectTimeout = 15 * time.Second

// Publisher sends the table contents as a single socket.io event.
type Publisher struct {
	cfg            config.Mirror
	ConnectTimeout time.Duration
}

// New creates a Publisher for the given endpoint.
func New(cfg *config.Mirror) *Publisher {
	return &Publisher{cfg: *cfg, ConnectTimeout: DefaultConnectTimeout}
}

// Item is the wire form of one table entry.
type Item struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Payload converts entries into the event payload.
func Payload(entries []frequency.Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{Name: e.Name, Count: e.Count})
	}
	return items
}

// Publish connects, emits the configured event carrying entries, and
// disconnects.
func (p *Publisher) Publish(ctx context.Context, entries []frequency.Entry) error {
	logger := ctxlog.FromContext(ctx).With("mirror_url", p.cfg.URL, "event", p.cfg.Event)

	client, err := p.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Disconnect()

	if err := client.Emit(p.cfg.Event, Payload(entries)); err != nil {
		return fmt.Errorf("failed to emit '%s' event: %w", p.cfg.Event, err)
	}
	logger.Info("Counts mirrored.", "items", len(entries))
	return nil
}

func (p *Publisher) connect(ctx context.Context) (*socket.Socket, error) {
	logger := ctxlog.FromContext(ctx).With("mirror_url", p.cfg.URL)

	parsedURL, err := url.Parse(p.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mirror URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	opts.SetTransports(types.NewSet(transports.WebSocket))
	// A single attempt: a refused connection must surface as connect_error.
	opts.SetReconnection(false)

	scheme := parsedURL.Scheme
	switch scheme {
	case "ws":
		scheme = "http"
	case "wss":
		scheme = "https"
	}
	baseURL := fmt.Sprintf("%s://%s", scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	client := manager.Socket(p.cfg.Namespace, opts)

	connectChan := make(chan error, 1)
	client.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Mirror connected.", "sid", client.Id())
		connectChan <- nil
	})
	client.Once(types.EventName("connect_error"), func(errs ...any) {
		if len(errs) == 0 {
			connectChan <- fmt.Errorf("connect_error without details")
			return
		}
		err, ok := errs[0].(error)
		if !ok {
			err = fmt.Errorf("%v", errs[0])
		}
		connectChan <- err
	})

	logger.Debug("Connecting to mirror...")
	client.Connect()

	timeout := p.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}

	select {
	case err := <-connectChan:
		if err != nil {
			client.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return client, nil
	case <-ctx.Done():
		client.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		client.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}
}
