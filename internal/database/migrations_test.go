package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/chores/internal/models"
)

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()

	repo := NewRepository(db)
	createTestChore(t, repo, "Before", 1)

	for i := 0; i < 2; i++ {
		if err := Migrate(ctx, db); err != nil {
			t.Fatalf("Migrate run %d failed: %v", i, err)
		}
	}

	if n := countRows(t, db, "SELECT COUNT(*) FROM chores"); n != 1 {
		t.Errorf("Expected data to survive re-migration, got %d chores", n)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	for _, name := range []string{
		"idx_chores_frequency",
		"idx_chores_importance",
		"idx_entries_date_completed",
		"idx_entries_chore_id",
		"idx_tags_name",
		"idx_chore_tags_chore_id",
		"idx_chore_tags_tag_id",
	} {
		n := countRows(t, db, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = ?", name)
		if n != 1 {
			t.Errorf("Expected index %s to exist", name)
		}
	}
}

func TestMigrate_AddsFrequencyTypeToLegacyTable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "legacy.db")

	legacy, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open legacy database: %v", err)
	}
	_, err = legacy.ExecContext(ctx, `CREATE TABLE chores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		instructions TEXT,
		items_needed TEXT,
		status TEXT DEFAULT 'active',
		frequency INTEGER NOT NULL,
		importance INTEGER DEFAULT 0
	)`)
	if err != nil {
		t.Fatalf("Failed to create legacy table: %v", err)
	}
	_, err = legacy.ExecContext(ctx,
		`INSERT INTO chores (name, instructions, items_needed, frequency, importance) VALUES (?, ?, ?, ?, ?)`,
		"Old chore", `["one"]`, `[]`, 3, 2)
	if err != nil {
		t.Fatalf("Failed to seed legacy table: %v", err)
	}
	if err := legacy.Close(); err != nil {
		t.Fatalf("Failed to close legacy database: %v", err)
	}

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open on legacy database failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	has, err := hasColumn(ctx, db, "chores", "frequency_type")
	if err != nil {
		t.Fatalf("hasColumn failed: %v", err)
	}
	if !has {
		t.Fatal("Expected frequency_type column after migration")
	}

	chores, err := NewRepository(db).GetAllChores(ctx)
	if err != nil {
		t.Fatalf("GetAllChores failed: %v", err)
	}
	if len(chores) != 1 {
		t.Fatalf("Expected 1 chore, got %d", len(chores))
	}
	if chores[0].FrequencyType != models.FrequencyDay || chores[0].Frequency != 3 {
		t.Errorf("Expected legacy chore to become every 3 days, got %d %s", chores[0].Frequency, chores[0].FrequencyType)
	}
}
