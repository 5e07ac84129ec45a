// Package logging builds the game's structured logger.
//
// The terminal belongs to the TUI while a game runs, so logs go to a rotating
// file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures Open.
type Options struct {
	Path       string // Log file; empty discards all output
	Level      string // debug, info, warn, error; empty means info
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultOptions returns rotation settings for a small local log file.
func DefaultOptions() Options {
	return Options{
		Level:      "info",
		MaxSizeMB:  5,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns a logger and the closer for its output.
func Open(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = l
	}

	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		out, closer = file, file
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           level,
	})
	return logger, closer, nil
}
