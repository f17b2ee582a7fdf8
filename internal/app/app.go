package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/chores/internal/database"
	"github.com/thenoetrevino/chores/internal/recurrence"
	choreservice "github.com/thenoetrevino/chores/internal/services/chore"
	tagservice "github.com/thenoetrevino/chores/internal/services/tag"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	db   *sql.DB
	repo database.DataStore

	// Due date arithmetic shared by every service
	calc *recurrence.Calculator

	logger *slog.Logger

	// Service layer (business logic)
	ChoreService choreservice.Service
	TagService   tagservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	calc := recurrence.NewCalculator(
		recurrence.WithClock(cfg.clock),
		recurrence.WithLocation(cfg.location),
	)
	repo := database.NewRepository(db)

	return &App{
		db:           db,
		repo:         repo,
		calc:         calc,
		logger:       logger,
		ChoreService: choreservice.NewService(repo, calc, logger),
		TagService:   tagservice.NewService(repo, logger),
	}
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Calculator returns the recurrence calculator the services share
func (a *App) Calculator() *recurrence.Calculator {
	return a.calc
}

// Close releases the database handle
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	a.logger.Debug("closing database")
	return a.db.Close()
}
