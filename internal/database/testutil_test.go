package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/chores/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB opens an isolated in-memory database with the full schema
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "chores.db")

	db, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, path
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, path string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	t.Cleanup(func() { _ = newDB.Close() })
	return newDB
}

// ============================================================================
// FIXTURES
// ============================================================================

func newTestChore(name string, importance int) *models.Chore {
	return &models.Chore{
		Name:          name,
		Description:   name + " description",
		Instructions:  models.StringList{"step one", "step two"},
		ItemsNeeded:   models.StringList{"sponge"},
		Status:        models.DefaultStatus,
		Frequency:     1,
		FrequencyType: models.FrequencyWeek,
		Importance:    importance,
	}
}

func createTestChore(t *testing.T, repo *Repository, name string, importance int, tagIDs ...int) *models.Chore {
	t.Helper()
	chore, err := repo.CreateChore(context.Background(), newTestChore(name, importance), tagIDs)
	if err != nil {
		t.Fatalf("Failed to create chore %q: %v", name, err)
	}
	return chore
}

func createTestTag(t *testing.T, repo *Repository, name string) *models.Tag {
	t.Helper()
	tag, err := repo.CreateTag(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create tag %q: %v", name, err)
	}
	return tag
}

func countRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

func intPtr(v int) *int {
	return &v
}

func choreIDs(rows []*models.ChoreRow) []int {
	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func tagIDSet(tags []*models.Tag) map[int]bool {
	set := make(map[int]bool, len(tags))
	for _, tag := range tags {
		set[tag.ID] = true
	}
	return set
}
