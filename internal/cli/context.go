package cli

import (
	"context"

	"github.com/thenoetrevino/chores/internal/app"
	"github.com/thenoetrevino/chores/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// ContextWithApp returns a context carrying an already built app.
// Commands run against it instead of opening the configured database.
func ContextWithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// ContextWithConfig returns a context carrying the resolved configuration
func ContextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by ContextWithConfig,
// or the defaults when none was stored
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.Default()
}

// GetCLIFromContext returns a CLI for the command being executed. An app
// injected with ContextWithApp is reused and left open on Close.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	cfg := ConfigFromContext(ctx)
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: cfg}, nil
	}
	return NewCLI(ctx, cfg)
}
