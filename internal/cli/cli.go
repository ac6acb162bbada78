package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/specialistvlad/aligntext/internal/align"
	"github.com/specialistvlad/aligntext/internal/app"
	"github.com/specialistvlad/aligntext/internal/profile"
	"github.com/specialistvlad/aligntext/internal/source"
)

// UsageMessage is the single line shown for any malformed invocation.
const UsageMessage = "usage: aligntext file_name line_length <align_mode>"

const helpWidth = 72

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// UsageError reports a malformed invocation.
func UsageError() *ExitError {
	return &ExitError{Code: 2, Message: UsageMessage}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("aligntext", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
aligntext - Reformat plain text into fixed-width aligned lines.

Usage:
  aligntext [options] FILE_NAME LINE_LENGTH [ALIGN_MODE]

Arguments:
`)
		for _, arg := range [][2]string{
			{"FILE_NAME", "Path to a text file, or a directory whose .txt files are read in lexical order."},
			{"LINE_LENGTH", "Maximum number of characters per line. Must be a positive integer. May be omitted when the profile sets a width."},
			{"ALIGN_MODE", "L (left), C (center) or J (justify). Anything else, or nothing, aligns right. A justified paragraph always ends on a left-aligned line."},
		} {
			fmt.Fprintf(output, "  %s\n    %s\n", arg[0], strings.ReplaceAll(wordwrap.WrapString(arg[1], helpWidth), "\n", "\n    "))
		}
		fmt.Fprint(output, "\nOptions:\n")
		flagSet.PrintDefaults()
	}

	profileFlag := flagSet.String("profile", "", "Path to an HCL profile with default settings.")
	paragraphsFlag := flagSet.String("paragraphs", "line", "Paragraph splitting. Options: 'line' or 'blank'.")
	workersFlag := flagSet.Int("workers", 1, "Number of paragraphs formatted concurrently.")
	outFlag := flagSet.String("out", "", "Write the result to this file instead of stdout.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	positional := flagSet.Args()
	if len(positional) == 0 || len(positional) > 3 {
		slog.Debug("Wrong number of positional arguments.", "count", len(positional))
		return nil, false, UsageError()
	}

	prof := &profile.Profile{}
	if *profileFlag != "" {
		p, err := profile.Load(context.Background(), *profileFlag, environ())
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		prof = p
	}

	var width int
	switch {
	case len(positional) >= 2:
		w, err := strconv.Atoi(positional[1])
		if err != nil {
			slog.Debug("Line length is not a number.", "value", positional[1])
			return nil, false, UsageError()
		}
		width = w
	case prof.Width != nil:
		width = *prof.Width
	default:
		slog.Debug("No line length provided.")
		return nil, false, UsageError()
	}

	mode := align.Right
	if len(positional) == 3 {
		mode = align.ParseMode(positional[2])
	} else if prof.Mode != nil {
		mode = align.ParseMode(*prof.Mode)
	}

	split, err := source.ParseSplit(pick(explicit["paragraphs"], *paragraphsFlag, prof.Paragraphs))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	workers := *workersFlag
	if !explicit["workers"] && prof.Workers != nil {
		workers = *prof.Workers
	}

	logFormat := strings.ToLower(pick(explicit["log-format"], *logFormatFlag, prof.LogFormat))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(pick(explicit["log-level"], *logLevelFlag, prof.LogLevel))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		InputPath:  positional[0],
		OutputPath: *outFlag,
		Width:      width,
		Mode:       mode,
		Split:      split,
		Workers:    workers,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidWidth) || errors.Is(err, app.ErrMissingInput) {
			slog.Debug("Invalid configuration.", "error", err)
			return nil, false, UsageError()
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// pick returns the flag value when it was set on the command line, otherwise
// the profile value when present, otherwise the flag default.
func pick(explicit bool, flagValue string, profileValue *string) string {
	if !explicit && profileValue != nil {
		return *profileValue
	}
	return flagValue
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
