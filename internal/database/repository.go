package database

import (
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ChoreRepo
	*EntryRepo
	*TagRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ChoreRepo: NewChoreRepo(db),
		EntryRepo: NewEntryRepo(db),
		TagRepo:   NewTagRepo(db),
	}
}
