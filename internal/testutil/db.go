package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/thenoetrevino/chores/internal/database"
)

// SetupTestDB creates an in-memory database with full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestChore inserts a chore repeating every frequency units and returns its ID
func CreateTestChore(t *testing.T, db *sql.DB, name string, frequency int, unit string, importance int) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO chores (name, description, instructions, items_needed, status, frequency, frequency_type, importance)
		 VALUES (?, '', '[]', '[]', 'active', ?, ?, ?)`,
		name, frequency, unit, importance)
	if err != nil {
		t.Fatalf("Failed to create test chore: %v", err)
	}
	choreID, _ := result.LastInsertId()
	return int(choreID)
}

// SetTestInstructions overwrites the instruction list of a chore
func SetTestInstructions(t *testing.T, db *sql.DB, choreID int, instructions ...string) {
	t.Helper()
	raw, err := json.Marshal(instructions)
	if err != nil {
		t.Fatalf("Failed to encode instructions: %v", err)
	}
	if _, err := db.ExecContext(context.Background(),
		"UPDATE chores SET instructions = ? WHERE id = ?", string(raw), choreID); err != nil {
		t.Fatalf("Failed to set instructions: %v", err)
	}
}

// CreateTestTag creates a test tag and returns its ID
func CreateTestTag(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(), "INSERT INTO tags (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("Failed to create test tag: %v", err)
	}
	tagID, _ := result.LastInsertId()
	return int(tagID)
}

// AttachTestTag links a tag to a chore
func AttachTestTag(t *testing.T, db *sql.DB, choreID, tagID int) {
	t.Helper()
	if _, err := db.ExecContext(context.Background(),
		"INSERT INTO chore_tags (chore_id, tag_id) VALUES (?, ?)", choreID, tagID); err != nil {
		t.Fatalf("Failed to attach test tag: %v", err)
	}
}

// CreateTestEntry records a completion at the given epoch seconds and returns its ID
func CreateTestEntry(t *testing.T, db *sql.DB, choreID int, dateCompleted int64) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO entries (chore_id, date_completed) VALUES (?, ?)", choreID, dateCompleted)
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}
	entryID, _ := result.LastInsertId()
	return int(entryID)
}

// CountRows runs a COUNT query and returns the result
func CountRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}
