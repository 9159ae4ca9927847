package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/itemtracker/internal/app"
	"github.com/specialistvlad/itemtracker/internal/cli"
	"github.com/specialistvlad/itemtracker/internal/frequency"
	"github.com/specialistvlad/itemtracker/internal/hcl_adapter"
)

// main is the entrypoint for the itemtracker application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, context.Canceled) {
			// Interrupted by the user; exit like the default SIGINT handler would.
			os.Exit(130)
		}
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, in io.Reader, outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader := hcl_adapter.NewLoader()
	tracker, err := app.NewApp(ctx, outW, logW, appConfig, loader)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, frequency.ErrSourceUnreadable) {
			msg += "\nMake sure the input file exists in the program's working directory."
		}
		return &cli.ExitError{Code: 1, Message: msg}
	}

	return tracker.Run(ctx, in)
}
