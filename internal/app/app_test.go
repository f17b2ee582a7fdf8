package app

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/thenoetrevino/chores/internal/database"
	"github.com/thenoetrevino/chores/internal/logging"
	"github.com/thenoetrevino/chores/internal/recurrence"
	choreservice "github.com/thenoetrevino/chores/internal/services/chore"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return db
}

func TestNew(t *testing.T) {
	db := setupTestDB(t)
	app := New(db)
	defer func() { _ = app.Close() }()

	if app.ChoreService == nil {
		t.Error("Expected ChoreService to be initialized")
	}
	if app.TagService == nil {
		t.Error("Expected TagService to be initialized")
	}
	if app.Repo() == nil {
		t.Error("Expected repository to be initialized")
	}
	if app.Calculator().Location() != time.UTC {
		t.Errorf("Expected UTC by default, got %v", app.Calculator().Location())
	}
}

func TestNew_Options(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2025, time.July, 4, 9, 0, 0, 0, time.UTC)
	loc := time.FixedZone("test", 3*60*60)
	logger := logging.Discard()

	app := New(db,
		WithClock(recurrence.FixedClock(now)),
		WithLocation(loc),
		WithLogger(logger),
	)
	defer func() { _ = app.Close() }()

	if !app.Calculator().Now().Equal(now) {
		t.Errorf("Expected fixed clock %v, got %v", now, app.Calculator().Now())
	}
	if app.Calculator().Location() != loc {
		t.Errorf("Expected configured location, got %v", app.Calculator().Location())
	}

	// Services share the injected clock
	chore, err := app.ChoreService.CreateChore(context.Background(), choreservice.CreateChoreRequest{Name: "Sweep", Frequency: 1})
	if err != nil {
		t.Fatalf("CreateChore failed: %v", err)
	}
	entry, err := app.ChoreService.CompleteChore(context.Background(), chore.ID, time.Time{})
	if err != nil {
		t.Fatalf("CompleteChore failed: %v", err)
	}
	if entry.DateCompleted != now.Unix() {
		t.Errorf("Expected completion at fixed clock, got %d", entry.DateCompleted)
	}
}

func TestNew_ServicesLogThroughAppLogger(t *testing.T) {
	db := setupTestDB(t)
	var buf bytes.Buffer
	app := New(db, WithLogger(logging.New(&buf, slog.LevelDebug)))
	defer func() { _ = app.Close() }()

	ctx := context.Background()
	chore, err := app.ChoreService.CreateChore(ctx, choreservice.CreateChoreRequest{Name: "Mop", Frequency: 1})
	if err != nil {
		t.Fatalf("CreateChore failed: %v", err)
	}
	if _, err := app.TagService.EnsureTags(ctx, []string{"floors"}); err != nil {
		t.Fatalf("EnsureTags failed: %v", err)
	}
	if _, err := app.ChoreService.CompleteChore(ctx, chore.ID, time.Time{}); err != nil {
		t.Fatalf("CompleteChore failed: %v", err)
	}

	for _, msg := range []string{"chore created", "tag created inline", "chore completed"} {
		if !strings.Contains(buf.String(), msg) {
			t.Errorf("Expected %q in app logger output, got:\n%s", msg, buf.String())
		}
	}
}

func TestClose(t *testing.T) {
	db := setupTestDB(t)
	app := New(db)

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got %v", err)
	}
	if err := db.Ping(); err == nil {
		t.Error("Expected database to be closed")
	}
}
