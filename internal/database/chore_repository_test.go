package database

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/chores/internal/models"
)

func TestCreateChore(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.CreateChore(ctx, newTestChore("Vacuum", 2), nil)
	if err != nil {
		t.Fatalf("CreateChore failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Expected chore ID to be set")
	}

	got, err := repo.GetChoreByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetChoreByID failed: %v", err)
	}

	if got.Name != "Vacuum" {
		t.Errorf("Expected name 'Vacuum', got '%s'", got.Name)
	}
	if got.Description != "Vacuum description" {
		t.Errorf("Expected description 'Vacuum description', got '%s'", got.Description)
	}
	if got.Status != models.DefaultStatus {
		t.Errorf("Expected status '%s', got '%s'", models.DefaultStatus, got.Status)
	}
	if got.Frequency != 1 || got.FrequencyType != models.FrequencyWeek {
		t.Errorf("Expected frequency 1 week, got %d %s", got.Frequency, got.FrequencyType)
	}
	if got.Importance != 2 {
		t.Errorf("Expected importance 2, got %d", got.Importance)
	}
	if len(got.Instructions) != 2 || got.Instructions[0] != "step one" || got.Instructions[1] != "step two" {
		t.Errorf("Unexpected instructions: %#v", got.Instructions)
	}
	if len(got.ItemsNeeded) != 1 || got.ItemsNeeded[0] != "sponge" {
		t.Errorf("Unexpected items needed: %#v", got.ItemsNeeded)
	}
}

func TestCreateChore_InstructionsRoundTrip(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	instructions := models.StringList{"a", "b", "c", `add "lemon", then scrub`, "a,b,c", `C:\path`}
	chore := newTestChore("Kitchen", 1)
	chore.Instructions = instructions
	chore.ItemsNeeded = nil

	created, err := repo.CreateChore(ctx, chore, nil)
	if err != nil {
		t.Fatalf("CreateChore failed: %v", err)
	}

	got, err := repo.GetChoreByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetChoreByID failed: %v", err)
	}

	if len(got.Instructions) != len(instructions) {
		t.Fatalf("Expected %d instructions, got %d", len(instructions), len(got.Instructions))
	}
	for i := range instructions {
		if got.Instructions[i] != instructions[i] {
			t.Errorf("Instruction %d: expected %q, got %q", i, instructions[i], got.Instructions[i])
		}
	}
	if got.ItemsNeeded == nil || len(got.ItemsNeeded) != 0 {
		t.Errorf("Expected empty items needed, got %#v", got.ItemsNeeded)
	}
}

func TestGetChoreByID_MalformedListsDegradeToEmpty(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO chores (name, instructions, items_needed, frequency) VALUES (?, ?, NULL, ?)`,
		"Legacy", "{not json", 3)
	if err != nil {
		t.Fatalf("Failed to insert raw chore: %v", err)
	}

	chores, err := repo.GetAllChores(ctx)
	if err != nil {
		t.Fatalf("GetAllChores failed: %v", err)
	}
	if len(chores) != 1 {
		t.Fatalf("Expected 1 chore, got %d", len(chores))
	}

	got := chores[0]
	if len(got.Instructions) != 0 || len(got.ItemsNeeded) != 0 {
		t.Errorf("Expected empty lists, got %#v / %#v", got.Instructions, got.ItemsNeeded)
	}
	if got.Description != "" {
		t.Errorf("Expected empty description, got %q", got.Description)
	}
	if got.Status != "active" {
		t.Errorf("Expected default status 'active', got %q", got.Status)
	}
	if got.FrequencyType != models.FrequencyDay {
		t.Errorf("Expected default unit 'day', got %q", got.FrequencyType)
	}
}

func TestGetChoreByID_NotFound(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetChoreByID(context.Background(), 999)
	if !errors.Is(err, models.ErrChoreNotFound) {
		t.Errorf("Expected ErrChoreNotFound, got %v", err)
	}
}

func TestCreateChore_WithTags(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	kitchen := createTestTag(t, repo, "kitchen")
	weekly := createTestTag(t, repo, "weekly")

	chore := createTestChore(t, repo, "Mop", 1, kitchen.ID, weekly.ID)

	tags, err := repo.GetTagsForChore(ctx, chore.ID)
	if err != nil {
		t.Fatalf("GetTagsForChore failed: %v", err)
	}
	set := tagIDSet(tags)
	if len(set) != 2 || !set[kitchen.ID] || !set[weekly.ID] {
		t.Errorf("Expected tags {%d, %d}, got %v", kitchen.ID, weekly.ID, set)
	}
}

func TestCreateChore_RollsBackOnBadTag(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	tag := createTestTag(t, repo, "kitchen")

	_, err := repo.CreateChore(ctx, newTestChore("Mop", 1), []int{tag.ID, 4242})
	if err == nil {
		t.Fatal("Expected foreign key error for unknown tag")
	}

	if n := countRows(t, db, "SELECT COUNT(*) FROM chores"); n != 0 {
		t.Errorf("Expected chore insert to be rolled back, found %d chores", n)
	}
	if n := countRows(t, db, "SELECT COUNT(*) FROM chore_tags"); n != 0 {
		t.Errorf("Expected tag links to be rolled back, found %d", n)
	}
}

func TestUpdateChore(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	chore := createTestChore(t, repo, "Dust", 1)

	chore.Name = "Dust shelves"
	chore.Description = ""
	chore.Instructions = models.StringList{"top shelf", "bottom shelf", "wipe cloth"}
	chore.ItemsNeeded = models.StringList{}
	chore.Status = "paused"
	chore.Frequency = 2
	chore.FrequencyType = models.FrequencyMonth
	chore.Importance = 3

	if err := repo.UpdateChore(ctx, chore); err != nil {
		t.Fatalf("UpdateChore failed: %v", err)
	}

	got, err := repo.GetChoreByID(ctx, chore.ID)
	if err != nil {
		t.Fatalf("GetChoreByID failed: %v", err)
	}

	if got.Name != "Dust shelves" || got.Status != "paused" || got.Importance != 3 {
		t.Errorf("Unexpected chore after update: %+v", got)
	}
	if got.Frequency != 2 || got.FrequencyType != models.FrequencyMonth {
		t.Errorf("Expected 2 month, got %d %s", got.Frequency, got.FrequencyType)
	}
	if len(got.Instructions) != 3 || got.Instructions[2] != "wipe cloth" {
		t.Errorf("Unexpected instructions: %#v", got.Instructions)
	}
}

func TestUpdateChore_NotFound(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	chore := newTestChore("Ghost", 1)
	chore.ID = 77
	err := repo.UpdateChore(context.Background(), chore)
	if !errors.Is(err, models.ErrChoreNotFound) {
		t.Errorf("Expected ErrChoreNotFound, got %v", err)
	}
}

func TestUpdateChoreWithTags_ReplacesTagSet(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	t1 := createTestTag(t, repo, "one")
	t2 := createTestTag(t, repo, "two")
	t3 := createTestTag(t, repo, "three")
	chore := createTestChore(t, repo, "Laundry", 2, t1.ID, t2.ID)

	chore.Importance = 3
	if err := repo.UpdateChoreWithTags(ctx, chore, []int{t2.ID, t3.ID}); err != nil {
		t.Fatalf("UpdateChoreWithTags failed: %v", err)
	}

	tags, err := repo.GetTagsForChore(ctx, chore.ID)
	if err != nil {
		t.Fatalf("GetTagsForChore failed: %v", err)
	}
	set := tagIDSet(tags)
	if len(set) != 2 || !set[t2.ID] || !set[t3.ID] || set[t1.ID] {
		t.Errorf("Expected tags {%d, %d}, got %v", t2.ID, t3.ID, set)
	}

	got, err := repo.GetChoreByID(ctx, chore.ID)
	if err != nil {
		t.Fatalf("GetChoreByID failed: %v", err)
	}
	if got.Importance != 3 {
		t.Errorf("Expected importance 3, got %d", got.Importance)
	}
}

func TestUpdateChoreWithTags_RollsBackOnBadTag(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	t1 := createTestTag(t, repo, "one")
	chore := createTestChore(t, repo, "Laundry", 2, t1.ID)

	chore.Name = "Renamed"
	if err := repo.UpdateChoreWithTags(ctx, chore, []int{999}); err == nil {
		t.Fatal("Expected error for unknown tag")
	}

	got, err := repo.GetChoreByID(ctx, chore.ID)
	if err != nil {
		t.Fatalf("GetChoreByID failed: %v", err)
	}
	if got.Name != "Laundry" {
		t.Errorf("Expected name to be rolled back to 'Laundry', got %q", got.Name)
	}
	tags, err := repo.GetTagsForChore(ctx, chore.ID)
	if err != nil {
		t.Fatalf("GetTagsForChore failed: %v", err)
	}
	if len(tags) != 1 || tags[0].ID != t1.ID {
		t.Errorf("Expected original tag set to survive, got %v", tags)
	}
}

func TestDeleteChore_Cascades(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	tag := createTestTag(t, repo, "bathroom")
	chore := createTestChore(t, repo, "Scrub tub", 2, tag.ID)
	other := createTestChore(t, repo, "Sweep", 1, tag.ID)

	for _, ts := range []int64{100, 200, 300} {
		if _, err := repo.InsertEntry(ctx, chore.ID, ts); err != nil {
			t.Fatalf("InsertEntry failed: %v", err)
		}
	}
	if _, err := repo.InsertEntry(ctx, other.ID, 400); err != nil {
		t.Fatalf("InsertEntry failed: %v", err)
	}

	if err := repo.DeleteChore(ctx, chore.ID); err != nil {
		t.Fatalf("DeleteChore failed: %v", err)
	}

	if n := countRows(t, db, "SELECT COUNT(*) FROM entries WHERE chore_id = ?", chore.ID); n != 0 {
		t.Errorf("Expected 0 entries after cascade, got %d", n)
	}
	if n := countRows(t, db, "SELECT COUNT(*) FROM chore_tags WHERE chore_id = ?", chore.ID); n != 0 {
		t.Errorf("Expected 0 chore_tags after cascade, got %d", n)
	}

	// Unrelated rows survive
	if n := countRows(t, db, "SELECT COUNT(*) FROM entries WHERE chore_id = ?", other.ID); n != 1 {
		t.Errorf("Expected other chore's entry to survive, got %d", n)
	}
	if n := countRows(t, db, "SELECT COUNT(*) FROM tags"); n != 1 {
		t.Errorf("Expected tag to survive chore deletion, got %d tags", n)
	}

	if err := repo.DeleteChore(ctx, chore.ID); !errors.Is(err, models.ErrChoreNotFound) {
		t.Errorf("Expected ErrChoreNotFound on second delete, got %v", err)
	}
}

func TestGetAllChores(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	chores, err := repo.GetAllChores(context.Background())
	if err != nil {
		t.Fatalf("GetAllChores failed: %v", err)
	}
	if len(chores) != 0 {
		t.Errorf("Expected no chores, got %d", len(chores))
	}

	a := createTestChore(t, repo, "A", 1)
	b := createTestChore(t, repo, "B", 2)

	chores, err = repo.GetAllChores(context.Background())
	if err != nil {
		t.Fatalf("GetAllChores failed: %v", err)
	}
	if len(chores) != 2 || chores[0].ID != a.ID || chores[1].ID != b.ID {
		t.Errorf("Unexpected chores: %+v", chores)
	}
}
