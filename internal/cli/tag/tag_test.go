package tag

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chorescli "github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/testutil/cli"
)

func id(n int) string {
	return strconv.Itoa(n)
}

func parseIDs(t *testing.T, output string) []int {
	t.Helper()
	var ids []int
	for _, line := range strings.Fields(output) {
		n, err := strconv.Atoi(line)
		require.NoError(t, err, "expected numeric ID line, got %q", line)
		ids = append(ids, n)
	}
	return ids
}

// ============================================================================
// tag create
// ============================================================================

func TestCreateTag(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	t.Run("human-readable output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "kitchen"})
		require.NoError(t, err)
		assert.Contains(t, output, "Tag 'kitchen' created successfully")
		assert.Equal(t, 1, cli.CountRows(t, db, "SELECT COUNT(*) FROM tags WHERE name = 'kitchen'"))
	})

	t.Run("quiet mode prints the ID", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "  garden  ", "--quiet"})
		require.NoError(t, err)

		ids := parseIDs(t, output)
		require.Len(t, ids, 1)
		assert.Equal(t, 1, cli.CountRows(t, db, "SELECT COUNT(*) FROM tags WHERE id = ? AND name = 'garden'", ids[0]))
	})

	t.Run("JSON output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "garage", "--json"})
		require.NoError(t, err)

		result := cli.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		assert.Equal(t, "garage", result["data"].(map[string]any)["name"])
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "kitchen"})
		assert.Error(t, err)
		assert.Equal(t, 1, cli.CountRows(t, db, "SELECT COUNT(*) FROM tags WHERE name = 'kitchen'"))
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), nil)
		assert.Error(t, err)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", strings.Repeat("x", 51)})
		require.Error(t, err)
		assert.Equal(t, chorescli.ExitValidation, chorescli.ExitCodeFor(err))
	})
}

// ============================================================================
// tag list
// ============================================================================

func TestListTags(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	t.Run("empty", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "No tags found")
	})

	zebra := cli.CreateTestTag(t, db, "zebra")
	apple := cli.CreateTestTag(t, db, "apple")
	mango := cli.CreateTestTag(t, db, "mango")

	choreID := cli.CreateTestChore(t, db, "Feed fish", 1, "day", 1)
	cli.AttachTestTag(t, db, choreID, zebra)
	cli.AttachTestTag(t, db, choreID, apple)

	t.Run("ordered by name", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []int{apple, mango, zebra}, parseIDs(t, output))
	})

	t.Run("tags of one chore", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--chore", id(choreID), "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []int{apple, zebra}, parseIDs(t, output))
	})

	t.Run("JSON output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)

		data := cli.ParseJSON(t, output)["data"].(map[string]any)
		tags := data["tags"].([]any)
		require.Len(t, tags, 3)
		assert.Equal(t, "apple", tags[0].(map[string]any)["name"])
	})

	t.Run("human-readable output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "#apple")
		assert.Contains(t, output, "#zebra")
	})

	t.Run("unknown chore", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--chore", "999"})
		require.Error(t, err)
		assert.Equal(t, chorescli.ExitNotFound, chorescli.ExitCodeFor(err))
	})
}

// ============================================================================
// tag rename / delete
// ============================================================================

func TestRenameTag(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	tagID := cli.CreateTestTag(t, db, "kitchn")

	output, err := cli.ExecuteCLICommand(t, app, RenameCmd(), []string{"--id", id(tagID), "--name", "kitchen"})
	require.NoError(t, err)
	assert.Contains(t, output, "renamed to 'kitchen'")
	assert.Equal(t, 1, cli.CountRows(t, db, "SELECT COUNT(*) FROM tags WHERE id = ? AND name = 'kitchen'", tagID))

	t.Run("not found", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, RenameCmd(), []string{"--id", "999", "--name", "attic"})
		require.Error(t, err)
		assert.Equal(t, chorescli.ExitNotFound, chorescli.ExitCodeFor(err))
	})

	t.Run("missing ID", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, RenameCmd(), []string{"--name", "attic"})
		assert.Error(t, err)
	})
}

func TestDeleteTag(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	tagID := cli.CreateTestTag(t, db, "seasonal")
	choreID := cli.CreateTestChore(t, db, "Clean gutters", 6, "month", 2)
	cli.AttachTestTag(t, db, choreID, tagID)

	output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", id(tagID)})
	require.NoError(t, err)
	assert.Contains(t, output, "deleted successfully")

	assert.Equal(t, 0, cli.CountRows(t, db, "SELECT COUNT(*) FROM tags WHERE id = ?", tagID))
	assert.Equal(t, 0, cli.CountRows(t, db, "SELECT COUNT(*) FROM chore_tags WHERE tag_id = ?", tagID))
	assert.Equal(t, 1, cli.CountRows(t, db, "SELECT COUNT(*) FROM chores WHERE id = ?", choreID), "chores survive tag deletion")

	t.Run("already deleted", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", id(tagID)})
		require.Error(t, err)
		assert.Equal(t, chorescli.ExitNotFound, chorescli.ExitCodeFor(err))
	})
}

// ============================================================================
// tag attach / detach
// ============================================================================

func TestAttachDetachTag(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	choreID := cli.CreateTestChore(t, db, "Wipe counters", 1, "day", 2)
	tagID := cli.CreateTestTag(t, db, "kitchen")
	linked := "SELECT COUNT(*) FROM chore_tags WHERE chore_id = ? AND tag_id = ?"

	t.Run("non-positive IDs are usage errors", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AttachCmd(), []string{"--chore", "0", "--tag", id(tagID)})
		require.Error(t, err)
		assert.Equal(t, chorescli.ExitUsage, chorescli.ExitCodeFor(err))
	})

	t.Run("attach", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AttachCmd(), []string{"--chore", id(choreID), "--tag", id(tagID)})
		require.NoError(t, err)
		assert.Contains(t, output, "attached to chore")
		assert.Equal(t, 1, cli.CountRows(t, db, linked, choreID, tagID))
	})

	t.Run("attach twice keeps one link", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AttachCmd(), []string{"--chore", id(choreID), "--tag", id(tagID), "--json"})
		require.NoError(t, err)
		assert.Equal(t, 1, cli.CountRows(t, db, linked, choreID, tagID))
	})

	t.Run("attach to unknown chore", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AttachCmd(), []string{"--chore", "999", "--tag", id(tagID)})
		require.Error(t, err)
		assert.Equal(t, chorescli.ExitNotFound, chorescli.ExitCodeFor(err))
	})

	t.Run("attach unknown tag", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AttachCmd(), []string{"--chore", id(choreID), "--tag", "999"})
		require.Error(t, err)
		assert.Equal(t, chorescli.ExitNotFound, chorescli.ExitCodeFor(err))
	})

	t.Run("detach", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, DetachCmd(), []string{"--chore", id(choreID), "--tag", id(tagID)})
		require.NoError(t, err)
		assert.Contains(t, output, "detached from chore")
		assert.Equal(t, 0, cli.CountRows(t, db, linked, choreID, tagID))
		assert.Equal(t, 1, cli.CountRows(t, db, "SELECT COUNT(*) FROM tags WHERE id = ?", tagID))
	})

	t.Run("detach missing link is a no-op", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, DetachCmd(), []string{"--chore", id(choreID), "--tag", id(tagID)})
		assert.NoError(t, err)
	})

	t.Run("missing flags", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AttachCmd(), []string{"--chore", id(choreID)})
		assert.Error(t, err)
	})
}
