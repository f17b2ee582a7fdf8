package tag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/chores/internal/database"
	"github.com/thenoetrevino/chores/internal/models"
)

const maxNameLength = 50

// Service defines all tag-related business operations
type Service interface {
	// Read operations
	ListTags(ctx context.Context) ([]*models.Tag, error)
	GetTagsForChore(ctx context.Context, choreID int) ([]*models.Tag, error)

	// Write operations
	CreateTag(ctx context.Context, name string) (*models.Tag, error)
	RenameTag(ctx context.Context, id int, name string) (*models.Tag, error)
	DeleteTag(ctx context.Context, id int) error
	EnsureTags(ctx context.Context, names []string) ([]*models.Tag, error)

	// Association operations
	AttachTag(ctx context.Context, choreID, tagID int) error
	DetachTag(ctx context.Context, choreID, tagID int) error
	SetChoreTags(ctx context.Context, choreID int, tagIDs []int) error
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new tag service; a nil logger uses slog.Default()
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

// ListTags retrieves every tag ordered by name
func (s *service) ListTags(ctx context.Context) ([]*models.Tag, error) {
	tags, err := s.repo.GetAllTags(ctx)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []*models.Tag{}
	}
	return tags, nil
}

// GetTagsForChore retrieves all tags for a chore
func (s *service) GetTagsForChore(ctx context.Context, choreID int) ([]*models.Tag, error) {
	if err := s.requireChore(ctx, choreID); err != nil {
		return nil, err
	}
	tags, err := s.repo.GetTagsForChore(ctx, choreID)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []*models.Tag{}
	}
	return tags, nil
}

// CreateTag creates a new tag with validation
func (s *service) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateTag(ctx, name)
}

// RenameTag changes the name of an existing tag
func (s *service) RenameTag(ctx context.Context, id int, name string) (*models.Tag, error) {
	if id <= 0 {
		return nil, ErrInvalidTagID
	}
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTag(ctx, id, name); err != nil {
		return nil, err
	}
	return &models.Tag{ID: id, Name: name}, nil
}

// DeleteTag deletes a tag and detaches it from every chore
func (s *service) DeleteTag(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidTagID
	}
	return s.repo.DeleteTag(ctx, id)
}

// EnsureTags returns the tags with the given names, creating the missing ones.
// Duplicate names resolve to a single tag and input order is preserved.
func (s *service) EnsureTags(ctx context.Context, names []string) ([]*models.Tag, error) {
	valid := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))

	// Nothing is created unless every name is valid
	for _, raw := range names {
		name, err := validateName(raw)
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", raw, err)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		valid = append(valid, name)
	}

	tags := make([]*models.Tag, 0, len(valid))
	for _, name := range valid {
		tag, err := s.repo.GetTagByName(ctx, name)
		if errors.Is(err, models.ErrTagNotFound) {
			tag, err = s.repo.CreateTag(ctx, name)
			if err == nil {
				s.logger.Debug("tag created inline", "id", tag.ID, "name", name)
			}
		}
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

// AttachTag links a tag to a chore; attaching twice is a no-op
func (s *service) AttachTag(ctx context.Context, choreID, tagID int) error {
	if err := validateLink(choreID, tagID); err != nil {
		return err
	}
	if err := s.requireChore(ctx, choreID); err != nil {
		return err
	}
	if _, err := s.repo.GetTagByID(ctx, tagID); err != nil {
		return err
	}
	return s.repo.AddTagToChore(ctx, choreID, tagID)
}

// DetachTag unlinks a tag from a chore
func (s *service) DetachTag(ctx context.Context, choreID, tagID int) error {
	if err := validateLink(choreID, tagID); err != nil {
		return err
	}
	return s.repo.RemoveTagFromChore(ctx, choreID, tagID)
}

// SetChoreTags replaces the whole tag set of a chore
func (s *service) SetChoreTags(ctx context.Context, choreID int, tagIDs []int) error {
	if choreID <= 0 {
		return ErrInvalidChoreID
	}
	for _, id := range tagIDs {
		if id <= 0 {
			return ErrInvalidTagID
		}
	}
	if err := s.requireChore(ctx, choreID); err != nil {
		return err
	}
	return s.repo.SetChoreTags(ctx, choreID, tagIDs)
}

func (s *service) requireChore(ctx context.Context, choreID int) error {
	if choreID <= 0 {
		return ErrInvalidChoreID
	}
	_, err := s.repo.GetChoreByID(ctx, choreID)
	return err
}

func validateLink(choreID, tagID int) error {
	if choreID <= 0 {
		return ErrInvalidChoreID
	}
	if tagID <= 0 {
		return ErrInvalidTagID
	}
	return nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
