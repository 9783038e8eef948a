// Package logging configures the application-wide zerolog logger and its
// context propagation helpers.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logFilePerm keeps log files private to the user.
const logFilePerm = 0o600

// Config selects the log level, output format, and optional file sink.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Unparseable
	// values fall back to info.
	Level string

	// Format is "console" for human-readable output or "json" for
	// structured lines.
	Format string

	// File, when non-empty, appends log output to the given path instead
	// of stderr.
	File string
}

// Result carries the configured logger plus the state needed to clean it
// up and to report where the logs went.
type Result struct {
	Logger    zerolog.Logger
	UsingFile bool
	FilePath  string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds a logger from cfg. When the configured file cannot be opened
// the logger falls back to stderr and the error is returned alongside a
// usable Result, so callers can warn without losing logging entirely.
func New(cfg Config) (Result, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	result := Result{}

	if cfg.File != "" {
		file, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
		if fileErr != nil {
			result.Logger = newLogger(os.Stderr, cfg.Format, lvl)
			return result, fmt.Errorf("opening log file %s: %w", cfg.File, fileErr)
		}
		out = file
		result.file = file
		result.UsingFile = true
		result.FilePath = cfg.File
	}

	result.Logger = newLogger(out, cfg.Format, lvl)
	return result, nil
}

func newLogger(out io.Writer, format string, lvl zerolog.Level) zerolog.Logger {
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
