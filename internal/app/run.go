package app

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/itemtracker/internal/ctxlog"
	"github.com/specialistvlad/itemtracker/internal/menu"
)

// Run writes the backups and then serves the interactive menu from in until
// the user exits. Backup failures are logged as warnings and never stop the run.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	fmt.Fprintln(a.outW, "Corner Grocer Item-Tracking Program")
	fmt.Fprintln(a.outW, "-----------------------------------")

	a.Backup(ctx)
	a.Mirror(ctx)

	if err := menu.New(a.table, in, a.outW).Run(ctx); err != nil {
		return fmt.Errorf("menu failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Backup writes the backup file. It reports whether the file was written.
func (a *App) Backup(ctx context.Context) bool {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	path := a.model.BackupFile
	if path == "" {
		a.logger.Debug("Backup file disabled.")
		return false
	}

	if err := a.table.Persist(ctx, path); err != nil {
		a.logger.Warn("Could not create backup file.", "path", path, "error", err)
		fmt.Fprintf(a.outW, "Warning: could not create backup file '%s'.\n", path)
		return false
	}
	a.logger.Info("Backup file written.", "path", path, "items", a.table.Len())
	fmt.Fprintf(a.outW, "Backup '%s' created successfully.\n", path)
	return true
}

// Mirror publishes the counts to the configured mirror, if any. It reports
// whether the counts were delivered.
func (a *App) Mirror(ctx context.Context) bool {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	if a.publisher == nil {
		return false
	}

	entries, _ := a.table.ListAll()
	if err := a.publisher.Publish(ctx, entries); err != nil {
		a.logger.Warn("Could not mirror counts.", "error", err)
		return false
	}
	return true
}
