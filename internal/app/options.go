package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/chores/internal/recurrence"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	clock    recurrence.Clock
	location *time.Location
	logger   *slog.Logger
}

// WithClock sets the clock used for "now" in due date calculations
func WithClock(c recurrence.Clock) Option {
	return func(cfg *appConfig) {
		cfg.clock = c
	}
}

// WithLocation sets the timezone calendar arithmetic runs in
func WithLocation(loc *time.Location) Option {
	return func(cfg *appConfig) {
		cfg.location = loc
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
