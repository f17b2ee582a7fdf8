package cli

import (
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/chores/internal/app"
	"github.com/thenoetrevino/chores/internal/logging"
	"github.com/thenoetrevino/chores/internal/recurrence"
	"github.com/thenoetrevino/chores/internal/testutil"
)

// TestNow is the fixed "now" every CLI test app runs at
var TestNow = time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// The app's clock is pinned to TestNow.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db,
		app.WithClock(recurrence.FixedClock(TestNow)),
		app.WithLogger(logging.Discard()),
	)

	return db, appInstance
}

// CreateTestChore wraps testutil.CreateTestChore for CLI tests
func CreateTestChore(t *testing.T, db *sql.DB, name string, frequency int, unit string, importance int) int {
	t.Helper()
	return testutil.CreateTestChore(t, db, name, frequency, unit, importance)
}

// CreateTestTag wraps testutil.CreateTestTag for CLI tests
func CreateTestTag(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	return testutil.CreateTestTag(t, db, name)
}

// AttachTestTag wraps testutil.AttachTestTag for CLI tests
func AttachTestTag(t *testing.T, db *sql.DB, choreID, tagID int) {
	t.Helper()
	testutil.AttachTestTag(t, db, choreID, tagID)
}

// CreateTestEntry records a completion daysAgo days before TestNow
func CreateTestEntry(t *testing.T, db *sql.DB, choreID int, daysAgo int) int {
	t.Helper()
	return testutil.CreateTestEntry(t, db, choreID, TestNow.AddDate(0, 0, -daysAgo).Unix())
}

// SetTestInstructions wraps testutil.SetTestInstructions for CLI tests
func SetTestInstructions(t *testing.T, db *sql.DB, choreID int, instructions ...string) {
	t.Helper()
	testutil.SetTestInstructions(t, db, choreID, instructions...)
}

// CountRows wraps testutil.CountRows for CLI tests
func CountRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	return testutil.CountRows(t, db, query, args...)
}
