package hcl_adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/itemtracker/internal/config"
	"github.com/specialistvlad/itemtracker/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Environ supplies the variables exposed to expressions as env.NAME.
	Environ func() []string
}

// NewLoader creates a new HCL configuration loader reading the process
// environment.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

// fileRoot is the shape of a configuration file. Attributes absent from the
// file leave the prefilled value untouched.
type fileRoot struct {
	InputFile  string       `hcl:"input_file,optional"`
	BackupFile string       `hcl:"backup_file,optional"`
	Marker     string       `hcl:"histogram_marker,optional"`
	Mirror     *mirrorBlock `hcl:"mirror,block"`
	Remain     hcl.Body     `hcl:",remain"`
}

type mirrorBlock struct {
	URL       string `hcl:"url"`
	Namespace string `hcl:"namespace,optional"`
	Event     string `hcl:"event,optional"`
}

// Load parses the HCL file at path and returns base overlaid with its settings.
func (l *Loader) Load(ctx context.Context, path string, base *config.Model) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	model := base.Clone()
	root := fileRoot{
		InputFile:  model.InputFile,
		BackupFile: model.BackupFile,
		Marker:     model.Marker,
	}
	diags = gohcl.DecodeBody(hclFile.Body, l.evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	if root.Remain != nil {
		if attrs, _ := root.Remain.JustAttributes(); len(attrs) > 0 {
			for name, attr := range attrs {
				logger.Warn("Ignoring unknown configuration attribute.", "attribute", name, "range", attr.Range.String())
			}
		}
	}

	model.InputFile = root.InputFile
	model.BackupFile = root.BackupFile
	model.Marker = root.Marker
	if root.Mirror != nil {
		model.Mirror = translateMirror(root.Mirror)
	}

	logger.Debug("HCL loading complete.",
		"input_file", model.InputFile,
		"backup_file", model.BackupFile,
		"mirror", model.Mirror != nil,
	)
	return model, nil
}

func translateMirror(b *mirrorBlock) *config.Mirror {
	m := &config.Mirror{
		URL:       b.URL,
		Namespace: b.Namespace,
		Event:     b.Event,
	}
	if m.Namespace == "" {
		m.Namespace = "/"
	}
	if m.Event == "" {
		m.Event = config.DefaultEvent
	}
	return m
}
