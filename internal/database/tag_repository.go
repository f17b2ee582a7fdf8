package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/chores/internal/models"
)

// ============================================================================
// Tag Operations
// ============================================================================

// TagRepo handles pure data access for tags and chore-tag links
type TagRepo struct {
	db *sql.DB
}

// NewTagRepo creates a tag repository on the given handle
func NewTagRepo(db *sql.DB) *TagRepo {
	return &TagRepo{db: db}
}

// CreateTag inserts a new tag; duplicate names fail on the UNIQUE constraint
func (r *TagRepo) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	result, err := r.db.ExecContext(ctx, `INSERT INTO tags (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get tag id: %w", err)
	}

	return &models.Tag{ID: int(id), Name: name}, nil
}

// GetAllTags retrieves every tag ordered by name
func (r *TagRepo) GetAllTags(ctx context.Context) ([]*models.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM tags ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	return collectTags(rows)
}

// GetTagByID retrieves a single tag
func (r *TagRepo) GetTagByID(ctx context.Context, id int) (*models.Tag, error) {
	tag := &models.Tag{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM tags WHERE id = ?`, id).
		Scan(&tag.ID, &tag.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tag %d: %w", id, models.ErrTagNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag %d: %w", id, err)
	}
	return tag, nil
}

// GetTagByName retrieves a tag by its exact name
func (r *TagRepo) GetTagByName(ctx context.Context, name string) (*models.Tag, error) {
	tag := &models.Tag{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM tags WHERE name = ?`, name).
		Scan(&tag.ID, &tag.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tag %q: %w", name, models.ErrTagNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag %q: %w", name, err)
	}
	return tag, nil
}

// UpdateTag renames a tag
func (r *TagRepo) UpdateTag(ctx context.Context, id int, name string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE tags SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("failed to update tag %d: %w", id, err)
	}
	if err := requireAffected(result, models.ErrTagNotFound); err != nil {
		return fmt.Errorf("failed to update tag %d: %w", id, err)
	}
	return nil
}

// DeleteTag removes a tag (cascade removes chore associations)
func (r *TagRepo) DeleteTag(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag %d: %w", id, err)
	}
	if err := requireAffected(result, models.ErrTagNotFound); err != nil {
		return fmt.Errorf("failed to delete tag %d: %w", id, err)
	}
	return nil
}

// GetTagsForChore retrieves all tags associated with a chore
func (r *TagRepo) GetTagsForChore(ctx context.Context, choreID int) ([]*models.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.name
		FROM tags t
		INNER JOIN chore_tags ct ON t.id = ct.tag_id
		WHERE ct.chore_id = ?
		ORDER BY t.name, t.id
	`, choreID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags for chore %d: %w", choreID, err)
	}
	return collectTags(rows)
}

// GetTagsForChores retrieves tags for several chores at once, keyed by chore id
func (r *TagRepo) GetTagsForChores(ctx context.Context, choreIDs []int) (map[int][]*models.Tag, error) {
	result := make(map[int][]*models.Tag, len(choreIDs))
	if len(choreIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT ct.chore_id, t.id, t.name
		FROM tags t
		INNER JOIN chore_tags ct ON t.id = ct.tag_id
		WHERE ct.chore_id IN (`+placeholders(len(choreIDs))+`)
		ORDER BY t.name, t.id
	`, intArgs(choreIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags for chores: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var choreID int
		tag := &models.Tag{}
		if err := rows.Scan(&choreID, &tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("failed to scan chore tag: %w", err)
		}
		result[choreID] = append(result[choreID], tag)
	}

	return result, rows.Err()
}

// AddTagToChore associates a tag with a chore; existing links are left alone
func (r *TagRepo) AddTagToChore(ctx context.Context, choreID, tagID int) error {
	if err := insertChoreTags(ctx, r.db, choreID, []int{tagID}); err != nil {
		return fmt.Errorf("failed to add tag %d to chore %d: %w", tagID, choreID, err)
	}
	return nil
}

// RemoveTagFromChore removes the association between a tag and a chore
func (r *TagRepo) RemoveTagFromChore(ctx context.Context, choreID, tagID int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM chore_tags WHERE chore_id = ? AND tag_id = ?`,
		choreID, tagID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove tag %d from chore %d: %w", tagID, choreID, err)
	}
	return nil
}

// SetChoreTags replaces all tags for a chore with tagIDs in a single transaction
func (r *TagRepo) SetChoreTags(ctx context.Context, choreID int, tagIDs []int) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		return replaceChoreTags(ctx, tx, choreID, tagIDs)
	})
	if err != nil {
		return fmt.Errorf("failed to set tags for chore %d: %w", choreID, err)
	}
	return nil
}

// DeleteTagsForChore removes every tag association of a chore
func (r *TagRepo) DeleteTagsForChore(ctx context.Context, choreID int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM chore_tags WHERE chore_id = ?`, choreID)
	if err != nil {
		return fmt.Errorf("failed to delete tags for chore %d: %w", choreID, err)
	}
	return nil
}

// replaceChoreTags deletes existing links then inserts tagIDs
func replaceChoreTags(ctx context.Context, q dbtx, choreID int, tagIDs []int) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM chore_tags WHERE chore_id = ?`, choreID); err != nil {
		return fmt.Errorf("failed to clear chore tags: %w", err)
	}
	return insertChoreTags(ctx, q, choreID, tagIDs)
}

func insertChoreTags(ctx context.Context, q dbtx, choreID int, tagIDs []int) error {
	for _, tagID := range tagIDs {
		_, err := q.ExecContext(ctx,
			`INSERT OR IGNORE INTO chore_tags (chore_id, tag_id) VALUES (?, ?)`,
			choreID, tagID,
		)
		if err != nil {
			return fmt.Errorf("failed to link tag %d: %w", tagID, err)
		}
	}
	return nil
}

func collectTags(rows *sql.Rows) ([]*models.Tag, error) {
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		tag := &models.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}
