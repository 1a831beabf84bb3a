// Package logging builds the charmbracelet/log logger shared by the CLI,
// the game models and the SSH server.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Level  log.Level
	Prefix string

	// File, when set, receives log output through a rotating writer.
	File string

	// Stderr also writes to standard error. Leave it off while a
	// full-screen TUI owns the terminal.
	Stderr bool
}

// New returns a logger writing to the configured destinations.
// With neither File nor Stderr set, output is discarded.
func New(opts Options) *log.Logger {
	var writers []io.Writer
	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
		})
	}
	if opts.Stderr {
		writers = append(writers, os.Stderr)
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "sweeper"
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           opts.Level,
	})
}

// ParseLevel maps debug, info, warn and error to a log level.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("logging: unknown level %q", s)
}
