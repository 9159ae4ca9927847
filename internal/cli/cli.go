package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/itemtracker/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("itemtracker", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Itemtracker - Counts purchased items and answers frequency queries.

Usage:
  itemtracker [options] [INPUT_FILE]

Arguments:
  INPUT_FILE
    Text file with one item name per line.
    Defaults to CS210_Project_Three_Input_File.txt.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	cFlag := flagSet.String("c", "", "Path to an HCL configuration file (shorthand).")
	inputFlag := flagSet.String("input", "", "Path to the input file.")
	iFlag := flagSet.String("i", "", "Path to the input file (shorthand).")
	backupFlag := flagSet.String("backup", "", "Path to the backup file. Defaults to frequency.dat.")
	noBackupFlag := flagSet.Bool("no-backup", false, "Do not write the backup file.")
	markerFlag := flagSet.String("marker", "", "Single character used to draw histogram bars. Defaults to '*'.")
	mirrorFlag := flagSet.String("mirror-url", "", "socket.io endpoint that receives a copy of the counts.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "at most one input file may be given"}
	}

	input := firstNonEmpty(*inputFlag, *iFlag, flagSet.Arg(0))
	configPath := firstNonEmpty(*configFlag, *cFlag)
	slog.Debug("Paths determined.", "input", input, "config", configPath)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath: configPath,
		InputPath:  input,
		BackupPath: *backupFlag,
		NoBackup:   *noBackupFlag,
		Marker:     *markerFlag,
		MirrorURL:  *mirrorFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
