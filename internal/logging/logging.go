// Package logging sets up the application-wide slog logger
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Options configures the log destination and rotation
type Options struct {
	Level      string // debug, info, warn, error
	File       string // empty writes to stderr
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init initializes the logging system, writing to a rotating log file.
// Uses text format for human readability. The returned closer flushes the file.
func Init(opts Options) (io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var out io.WriteCloser = nopCloser{os.Stderr}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		out = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
	}

	Logger = New(out, level)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(out)
	log.SetFlags(log.LstdFlags)

	return out, nil
}

// New creates a text logger writing to w at level
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError)
}

// ParseLevel maps a level name to a slog.Level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s' (must be: debug, info, warn, error)", s)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
