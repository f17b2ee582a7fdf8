package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS chores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		instructions TEXT,
		items_needed TEXT,
		status TEXT DEFAULT 'active',
		frequency INTEGER NOT NULL,
		frequency_type TEXT NOT NULL DEFAULT 'day',
		importance INTEGER DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		chore_id INTEGER NOT NULL,
		date_completed INTEGER NOT NULL,
		FOREIGN KEY (chore_id) REFERENCES chores (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS chore_tags (
		chore_id INTEGER NOT NULL,
		tag_id INTEGER NOT NULL,
		PRIMARY KEY (chore_id, tag_id),
		FOREIGN KEY (chore_id) REFERENCES chores (id) ON DELETE CASCADE,
		FOREIGN KEY (tag_id) REFERENCES tags (id) ON DELETE CASCADE
	)`,
}

var indexStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_chores_frequency ON chores(frequency)`,
	`CREATE INDEX IF NOT EXISTS idx_chores_importance ON chores(importance)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_date_completed ON entries(date_completed)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_chore_id ON entries(chore_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tags_name ON tags(name)`,
	`CREATE INDEX IF NOT EXISTS idx_chore_tags_chore_id ON chore_tags(chore_id)`,
	`CREATE INDEX IF NOT EXISTS idx_chore_tags_tag_id ON chore_tags(tag_id)`,
}

// Migrate creates the schema and upgrades databases written by older versions.
// Every step is idempotent, so it is safe to run on each open.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	if err := migrateAddFrequencyType(ctx, db); err != nil {
		return err
	}

	// Indexes last: on a legacy database the columns they cover may only exist now
	for _, stmt := range indexStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// migrateAddFrequencyType adds chores.frequency_type to databases created
// before frequencies had units; existing chores become daily
func migrateAddFrequencyType(ctx context.Context, db *sql.DB) error {
	has, err := hasColumn(ctx, db, "chores", "frequency_type")
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	slog.Info("migrating chores table", "add_column", "frequency_type")
	_, err = db.ExecContext(ctx,
		`ALTER TABLE chores ADD COLUMN frequency_type TEXT NOT NULL DEFAULT 'day'`)
	if err != nil {
		return fmt.Errorf("failed to add frequency_type column: %w", err)
	}
	return nil
}

// hasColumn reports whether table has a column with the given name
func hasColumn(ctx context.Context, db *sql.DB, table, column string) (bool, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("failed to read table info for %s: %w", table, err)
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return false, fmt.Errorf("failed to scan table info for %s: %w", table, err)
		}
		if name == column {
			found = true
		}
	}

	return found, rows.Err()
}
