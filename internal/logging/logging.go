// Package logging configures the charmbracelet/log logger todo writes its
// diagnostics to.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Options holds configuration for diagnostic logging.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
	// NoColor forces plain output from the text formatter.
	NoColor bool
}

// DefaultOptions returns default options. Only warnings and errors are shown
// so command output on stdout stays the only thing a user normally sees.
func DefaultOptions() Options {
	return Options{
		Level:     log.WarnLevel,
		Formatter: log.TextFormatter,
		Prefix:    "todo",
	}
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
	if opts.NoColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	return logger
}

// FromConfig builds options from string configuration values.
func FromConfig(level, format string, timestamps, noColor bool) Options {
	opts := DefaultOptions()
	opts.Level = ParseLevel(level)
	opts.Formatter = ParseFormatter(format)
	opts.ReportTimestamp = timestamps
	opts.NoColor = noColor
	return opts
}

// Install replaces the package-level logger used by log.Debug, log.Warn and
// friends with one writing to w. A nil w means stderr.
func Install(w io.Writer, opts Options) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := New(w, opts)
	log.SetDefault(logger)
	return logger
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
// Unknown values fall back to warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter parses a string formatter name to a charmbracelet/log Formatter.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// NewTest creates a logger that writes everything to w with minimal
// formatting for easier test assertions.
func NewTest(w io.Writer) *log.Logger {
	return New(w, Options{
		Level:     log.DebugLevel,
		Formatter: log.TextFormatter,
		NoColor:   true,
	})
}
