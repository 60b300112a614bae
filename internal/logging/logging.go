// Package logging sets up the zerolog diagnostic logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options configures where diagnostics go.
type Options struct {
	// File receives logs when set. The TUI owns the terminal, so it always logs to a file.
	File    string
	Verbose bool
	// Console writes human-readable lines to Writer instead of JSON.
	Console bool
	Writer  io.Writer
}

// New builds a logger and returns a closer for any file it opened.
func New(opts Options) (zerolog.Logger, func() error, error) {
	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	noop := func() error { return nil }

	var out io.Writer = opts.Writer
	closer := noop

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	if out == nil {
		out = os.Stderr
	}

	if opts.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

// Quiet returns a logger that only reports errors, for one-shot commands
// run without --verbose. A nil w means stderr.
func Quiet(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}).
		Level(zerolog.ErrorLevel).
		With().Timestamp().Logger()
}
