package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/itemtracker/internal/config"
	"github.com/specialistvlad/itemtracker/internal/ctxlog"
	"github.com/specialistvlad/itemtracker/internal/frequency"
	"github.com/specialistvlad/itemtracker/internal/mirror"
)

// Publisher sends a copy of the counts somewhere outside the process.
type Publisher interface {
	Publish(ctx context.Context, entries []frequency.Entry) error
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	model     *config.Model
	table     *frequency.Table
	publisher Publisher
}

// Option customises an App at construction time.
type Option func(*App)

// WithPublisher replaces the mirror publisher derived from the configuration.
func WithPublisher(p Publisher) Option {
	return func(a *App) {
		a.publisher = p
	}
}

// NewApp is the constructor for the main application. It resolves the
// configuration and builds the frequency table from the input file. Any
// error means no usable App exists. Logs go to logW, user-facing output to
// outW.
func NewApp(ctx context.Context, outW, logW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	model, err := appConfig.resolve(ctx, loader)
	if err != nil {
		return nil, err
	}
	logger.Debug("Configuration resolved.", "input_file", model.InputFile, "backup_file", model.BackupFile)

	table, err := frequency.ReadFile(ctx, model.InputFile, frequency.WithMarker(model.MarkerRune()))
	if err != nil {
		return nil, fmt.Errorf("error initializing item tracker: %w", err)
	}
	logger.Info("Items loaded.", "path", model.InputFile, "distinct", table.Len(), "total", table.Total())

	a := &App{
		outW:   outW,
		logger: logger,
		model:  model,
		table:  table,
	}
	if model.Mirror != nil {
		a.publisher = mirror.New(model.Mirror)
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Table returns the application's frequency table. This is primarily for testing.
func (a *App) Table() *frequency.Table {
	return a.table
}

// Model returns the effective configuration.
func (a *App) Model() *config.Model {
	return a.model
}
