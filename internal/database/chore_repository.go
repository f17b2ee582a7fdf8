package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/chores/internal/models"
)

// choreColumns is the canonical column list decoded by scanChore
const choreColumns = `c.id, c.name, COALESCE(c.description, ''), c.instructions, c.items_needed,
	COALESCE(c.status, 'active'), c.frequency, c.frequency_type, COALESCE(c.importance, 0)`

// ChoreRepo handles pure data access for chores
type ChoreRepo struct {
	db *sql.DB
}

// NewChoreRepo creates a chore repository on the given handle
func NewChoreRepo(db *sql.DB) *ChoreRepo {
	return &ChoreRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanChore decodes one row selected with choreColumns, plus any extra destinations
func scanChore(s rowScanner, extra ...any) (*models.Chore, error) {
	chore := &models.Chore{}
	var frequencyType string
	dest := []any{
		&chore.ID, &chore.Name, &chore.Description, &chore.Instructions, &chore.ItemsNeeded,
		&chore.Status, &chore.Frequency, &frequencyType, &chore.Importance,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	chore.FrequencyType = models.FrequencyUnit(frequencyType)
	return chore, nil
}

// CreateChore inserts a chore and links it to tagIDs in a single transaction
func (r *ChoreRepo) CreateChore(ctx context.Context, chore *models.Chore, tagIDs []int) (*models.Chore, error) {
	created := *chore
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO chores (name, description, instructions, items_needed, status, frequency, frequency_type, importance)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			chore.Name, chore.Description, chore.Instructions, chore.ItemsNeeded,
			chore.Status, chore.Frequency, string(chore.FrequencyType), chore.Importance,
		)
		if err != nil {
			return fmt.Errorf("failed to insert chore: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get chore id: %w", err)
		}
		created.ID = int(id)

		return insertChoreTags(ctx, tx, created.ID, tagIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chore: %w", err)
	}

	if created.Instructions == nil {
		created.Instructions = models.StringList{}
	}
	if created.ItemsNeeded == nil {
		created.ItemsNeeded = models.StringList{}
	}
	return &created, nil
}

// GetChoreByID retrieves a single chore
func (r *ChoreRepo) GetChoreByID(ctx context.Context, id int) (*models.Chore, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+choreColumns+` FROM chores c WHERE c.id = ?`, id)

	chore, err := scanChore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("chore %d: %w", id, models.ErrChoreNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chore %d: %w", id, err)
	}
	return chore, nil
}

// GetAllChores retrieves every chore ordered by id
func (r *ChoreRepo) GetAllChores(ctx context.Context) ([]*models.Chore, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+choreColumns+` FROM chores c ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get chores: %w", err)
	}
	defer rows.Close()

	var chores []*models.Chore
	for rows.Next() {
		chore, err := scanChore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chore: %w", err)
		}
		chores = append(chores, chore)
	}

	return chores, rows.Err()
}

// UpdateChore replaces every field of an existing chore
func (r *ChoreRepo) UpdateChore(ctx context.Context, chore *models.Chore) error {
	if err := updateChore(ctx, r.db, chore); err != nil {
		return fmt.Errorf("failed to update chore %d: %w", chore.ID, err)
	}
	return nil
}

// UpdateChoreWithTags replaces every field of a chore and its full tag set in one transaction
func (r *ChoreRepo) UpdateChoreWithTags(ctx context.Context, chore *models.Chore, tagIDs []int) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := updateChore(ctx, tx, chore); err != nil {
			return err
		}
		return replaceChoreTags(ctx, tx, chore.ID, tagIDs)
	})
	if err != nil {
		return fmt.Errorf("failed to update chore %d: %w", chore.ID, err)
	}
	return nil
}

func updateChore(ctx context.Context, q dbtx, chore *models.Chore) error {
	result, err := q.ExecContext(ctx,
		`UPDATE chores
		 SET name = ?, description = ?, instructions = ?, items_needed = ?,
		     status = ?, frequency = ?, frequency_type = ?, importance = ?
		 WHERE id = ?`,
		chore.Name, chore.Description, chore.Instructions, chore.ItemsNeeded,
		chore.Status, chore.Frequency, string(chore.FrequencyType), chore.Importance,
		chore.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result, models.ErrChoreNotFound)
}

// DeleteChore removes a chore; entries and tag links cascade
func (r *ChoreRepo) DeleteChore(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM chores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete chore %d: %w", id, err)
	}
	if err := requireAffected(result, models.ErrChoreNotFound); err != nil {
		return fmt.Errorf("failed to delete chore %d: %w", id, err)
	}
	return nil
}

// ListChores returns one row per chore matching filter, annotated with its
// latest completion. Rows come back in id order; ordering by due date needs
// the recurrence calculator and is left to the caller.
func (r *ChoreRepo) ListChores(ctx context.Context, filter ChoreFilter) ([]*models.ChoreRow, error) {
	query, args := buildChoreQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list chores: %w", err)
	}
	defer rows.Close()

	var result []*models.ChoreRow
	for rows.Next() {
		var lastCompleted int64
		chore, err := scanChore(rows, &lastCompleted)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chore row: %w", err)
		}
		result = append(result, &models.ChoreRow{Chore: *chore, LastCompleted: lastCompleted})
	}

	return result, rows.Err()
}
