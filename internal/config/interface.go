package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration file at path and layers it over base.
	// Settings missing from the file keep their value from base.
	Load(ctx context.Context, path string, base *Model) (*Model, error)
}
