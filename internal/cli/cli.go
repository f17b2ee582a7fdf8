package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/chores/internal/app"
	"github.com/thenoetrevino/chores/internal/config"
	"github.com/thenoetrevino/chores/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// owned is false when the app was injected through the context and
	// belongs to the caller
	owned bool
}

// NewCLI opens the configured database and builds the application container
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Debug("database opened", "path", cfg.Database.Path)

	application := app.New(db,
		app.WithLocation(loc),
		app.WithLogger(slog.Default()),
	)

	return &CLI{
		App:    application,
		Config: cfg,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
