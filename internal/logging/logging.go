// Package logging builds the structured loggers used across the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Options controls where a logger writes and how much.
type Options struct {
	// File, when set, receives the log instead of Output. The parent
	// directory is created if missing and the file is appended to.
	File string

	// Output is used when File is empty. Nil discards everything.
	Output io.Writer

	Prefix string
	Level  string // debug, info, warn or error; empty means info
}

// New builds a logger and returns a close function for the file it may
// have opened.
func New(opts Options) (*log.Logger, func() error, error) {
	closer := func() error { return nil }

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, closer, err
	}

	out := opts.Output
	if opts.File != "" {
		path := expandHome(opts.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, closer, fmt.Errorf("logging: cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("logging: cannot open log file: %w", err)
		}
		out = f
		closer = f.Close
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// ParseLevel maps a level name to a log.Level.
func ParseLevel(s string) (log.Level, error) {
	if s == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return level, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
