package database

import (
	"context"

	"github.com/thenoetrevino/chores/internal/models"
)

// ChoreReader defines read operations for chores.
type ChoreReader interface {
	GetChoreByID(ctx context.Context, id int) (*models.Chore, error)
	GetAllChores(ctx context.Context) ([]*models.Chore, error)
	ListChores(ctx context.Context, filter ChoreFilter) ([]*models.ChoreRow, error)
}

// ChoreWriter defines write operations for chores.
type ChoreWriter interface {
	CreateChore(ctx context.Context, chore *models.Chore, tagIDs []int) (*models.Chore, error)
	UpdateChore(ctx context.Context, chore *models.Chore) error
	UpdateChoreWithTags(ctx context.Context, chore *models.Chore, tagIDs []int) error
	DeleteChore(ctx context.Context, id int) error
}

// EntryRepository defines operations on completion entries.
type EntryRepository interface {
	InsertEntry(ctx context.Context, choreID int, dateCompleted int64) (*models.Entry, error)
	GetEntriesForChore(ctx context.Context, choreID int) ([]*models.Entry, error)
	GetLatestEntry(ctx context.Context, choreID int) (*models.Entry, error)
	DeleteEntriesForChore(ctx context.Context, choreID int) error
}

// TagReader defines read operations for tags.
type TagReader interface {
	GetAllTags(ctx context.Context) ([]*models.Tag, error)
	GetTagByID(ctx context.Context, id int) (*models.Tag, error)
	GetTagByName(ctx context.Context, name string) (*models.Tag, error)
	GetTagsForChore(ctx context.Context, choreID int) ([]*models.Tag, error)
	GetTagsForChores(ctx context.Context, choreIDs []int) (map[int][]*models.Tag, error)
}

// TagWriter defines write operations for tags.
type TagWriter interface {
	CreateTag(ctx context.Context, name string) (*models.Tag, error)
	UpdateTag(ctx context.Context, id int, name string) error
	DeleteTag(ctx context.Context, id int) error
}

// ChoreTagManager defines operations for managing chore-tag associations.
type ChoreTagManager interface {
	AddTagToChore(ctx context.Context, choreID, tagID int) error
	RemoveTagFromChore(ctx context.Context, choreID, tagID int) error
	SetChoreTags(ctx context.Context, choreID int, tagIDs []int) error
	DeleteTagsForChore(ctx context.Context, choreID int) error
}

// DataStore defines the unified interface for all data operations.
// It is composed of smaller, domain-specific interfaces so consumers can
// depend only on what they use.
type DataStore interface {
	ChoreReader
	ChoreWriter
	EntryRepository
	TagReader
	TagWriter
	ChoreTagManager
}

var _ DataStore = (*Repository)(nil)
