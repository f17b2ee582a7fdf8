package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/chores/internal/models"
)

// EntryRepo handles pure data access for completion entries
type EntryRepo struct {
	db *sql.DB
}

// NewEntryRepo creates an entry repository on the given handle
func NewEntryRepo(db *sql.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// InsertEntry records a completion of choreID at dateCompleted (epoch seconds)
func (r *EntryRepo) InsertEntry(ctx context.Context, choreID int, dateCompleted int64) (*models.Entry, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO entries (chore_id, date_completed) VALUES (?, ?)`,
		choreID, dateCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert entry for chore %d: %w", choreID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry id: %w", err)
	}

	return &models.Entry{
		ID:            int(id),
		ChoreID:       choreID,
		DateCompleted: dateCompleted,
	}, nil
}

// GetEntriesForChore retrieves all entries for a chore, newest first
func (r *EntryRepo) GetEntriesForChore(ctx context.Context, choreID int) ([]*models.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, chore_id, date_completed
		 FROM entries
		 WHERE chore_id = ?
		 ORDER BY date_completed DESC, id DESC`,
		choreID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries for chore %d: %w", choreID, err)
	}
	defer rows.Close()

	var entries []*models.Entry
	for rows.Next() {
		entry := &models.Entry{}
		if err := rows.Scan(&entry.ID, &entry.ChoreID, &entry.DateCompleted); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// GetLatestEntry retrieves the most recent completion of a chore
func (r *EntryRepo) GetLatestEntry(ctx context.Context, choreID int) (*models.Entry, error) {
	entry := &models.Entry{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, chore_id, date_completed
		 FROM entries
		 WHERE chore_id = ?
		 ORDER BY date_completed DESC, id DESC
		 LIMIT 1`,
		choreID,
	).Scan(&entry.ID, &entry.ChoreID, &entry.DateCompleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("chore %d: %w", choreID, models.ErrEntryNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest entry for chore %d: %w", choreID, err)
	}
	return entry, nil
}

// DeleteEntriesForChore removes the completion history of a chore
func (r *EntryRepo) DeleteEntriesForChore(ctx context.Context, choreID int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE chore_id = ?`, choreID)
	if err != nil {
		return fmt.Errorf("failed to delete entries for chore %d: %w", choreID, err)
	}
	return nil
}
