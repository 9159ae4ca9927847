package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/itemtracker/internal/config"
	"github.com/specialistvlad/itemtracker/internal/ctxlog"
)

// Config holds all the necessary configuration for an App instance to run.
// Empty string fields mean "not set on the command line".
type Config struct {
	ConfigPath string // hcl file
	InputPath  string
	BackupPath string
	Marker     string
	NoBackup   bool
	MirrorURL  string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.NoBackup && cfg.BackupPath != "" {
		return nil, fmt.Errorf("backup path %q conflicts with disabling the backup", cfg.BackupPath)
	}
	return &cfg, nil
}

// resolve builds the effective model: defaults, then the config file, then
// command-line values.
func (c *Config) resolve(ctx context.Context, loader config.Loader) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	model := config.Default()
	if c.ConfigPath != "" {
		if loader == nil {
			return nil, fmt.Errorf("config file %s given but no loader configured", c.ConfigPath)
		}
		loaded, err := loader.Load(ctx, c.ConfigPath, model)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		model = loaded
		logger.Debug("Configuration file applied.", "path", c.ConfigPath)
	}

	if c.InputPath != "" {
		model.InputFile = c.InputPath
	}
	if c.BackupPath != "" {
		model.BackupFile = c.BackupPath
	}
	if c.NoBackup {
		model.BackupFile = ""
	}
	if c.Marker != "" {
		model.Marker = c.Marker
	}
	if c.MirrorURL != "" {
		if model.Mirror == nil {
			model.Mirror = &config.Mirror{Namespace: "/", Event: config.DefaultEvent}
		}
		model.Mirror.URL = c.MirrorURL
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	return model, nil
}
