package chore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/chores/internal/database"
	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/recurrence"
)

const maxNameLength = 100

// Service defines all chore-related business operations
type Service interface {
	// Read operations
	GetChore(ctx context.Context, id int) (*ChoreDetail, error)
	ListChores(ctx context.Context, req ListChoresRequest) ([]*ChoreSummary, error)
	History(ctx context.Context, id int) ([]*models.Entry, error)

	// Write operations
	CreateChore(ctx context.Context, req CreateChoreRequest) (*models.Chore, error)
	UpdateChore(ctx context.Context, req UpdateChoreRequest) (*models.Chore, error)
	DeleteChore(ctx context.Context, id int) error
	MoveInstruction(ctx context.Context, id, from, to int) (*models.Chore, error)

	// Completion operations
	CompleteChore(ctx context.Context, id int, at time.Time) (*models.Entry, error)
	ClearHistory(ctx context.Context, id int) error
}

// CreateChoreRequest encapsulates data for creating a chore
type CreateChoreRequest struct {
	Name          string
	Description   string
	Instructions  []string
	ItemsNeeded   []string
	Status        string               // Defaults to "active"
	Frequency     int                  // Must be positive
	FrequencyType models.FrequencyUnit // Defaults to "day"
	Importance    int
	TagIDs        []int
}

// UpdateChoreRequest encapsulates data for updating a chore.
// Nil fields keep their current value.
type UpdateChoreRequest struct {
	ID            int
	Name          *string
	Description   *string
	Instructions  *[]string
	ItemsNeeded   *[]string
	Status        *string
	Frequency     *int
	FrequencyType *models.FrequencyUnit
	Importance    *int
	TagIDs        *[]int // Replaces the whole tag set when set
}

// ListChoresRequest encapsulates the filters and ordering of a listing
type ListChoresRequest struct {
	MinImportance *int
	MaxImportance *int
	TagIDs        []int
	NameFilter    string
	SortBy        models.SortKey   // Defaults to days_left
	SortOrder     models.SortOrder // Defaults to asc
}

// ChoreSummary is a chore with its tags and due state, as shown in listings
type ChoreSummary struct {
	*models.Chore
	Tags     []*models.Tag       `json:"tags"`
	Schedule recurrence.Schedule `json:"schedule"`
}

// ChoreDetail is a ChoreSummary plus the full completion history
type ChoreDetail struct {
	ChoreSummary
	Entries []*models.Entry `json:"entries"`
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	calc   *recurrence.Calculator
	logger *slog.Logger
}

// NewService creates a new chore service. A nil calc or logger falls back to
// the defaults.
func NewService(repo database.DataStore, calc *recurrence.Calculator, logger *slog.Logger) Service {
	if calc == nil {
		calc = recurrence.NewCalculator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		calc:   calc,
		logger: logger,
	}
}

// GetChore retrieves a chore with its tags, schedule and history
func (s *service) GetChore(ctx context.Context, id int) (*ChoreDetail, error) {
	if id <= 0 {
		return nil, ErrInvalidChoreID
	}

	chore, err := s.repo.GetChoreByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tags, err := s.repo.GetTagsForChore(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	entries, err := s.repo.GetEntriesForChore(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	// Entries come back newest first
	var last int64
	if len(entries) > 0 {
		last = entries[0].DateCompleted
	}

	return &ChoreDetail{
		ChoreSummary: ChoreSummary{
			Chore:    chore,
			Tags:     nonNilTags(tags),
			Schedule: s.calc.Schedule(last, chore.Frequency, chore.FrequencyType),
		},
		Entries: nonNilEntries(entries),
	}, nil
}

// ListChores retrieves the chores matching req, ordered by req.SortBy
func (s *service) ListChores(ctx context.Context, req ListChoresRequest) ([]*ChoreSummary, error) {
	if err := validateListChores(&req); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListChores(ctx, database.ChoreFilter{
		MinImportance: req.MinImportance,
		MaxImportance: req.MaxImportance,
		TagIDs:        req.TagIDs,
		NameFilter:    req.NameFilter,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	tagsByChore, err := s.repo.GetTagsForChores(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	summaries := make([]*ChoreSummary, len(rows))
	for i, row := range rows {
		chore := row.Chore
		summaries[i] = &ChoreSummary{
			Chore:    &chore,
			Tags:     nonNilTags(tagsByChore[row.ID]),
			Schedule: s.calc.ScheduleFor(row),
		}
	}

	sortSummaries(summaries, req.SortBy, req.SortOrder)
	return summaries, nil
}

// History retrieves every completion of a chore, newest first
func (s *service) History(ctx context.Context, id int) ([]*models.Entry, error) {
	if err := s.requireChore(ctx, id); err != nil {
		return nil, err
	}

	entries, err := s.repo.GetEntriesForChore(ctx, id)
	if err != nil {
		return nil, err
	}
	return nonNilEntries(entries), nil
}

// CreateChore creates a new chore with validation
func (s *service) CreateChore(ctx context.Context, req CreateChoreRequest) (*models.Chore, error) {
	if err := ValidateCreateChore(&req); err != nil {
		return nil, err
	}

	chore := &models.Chore{
		Name:          req.Name,
		Description:   req.Description,
		Instructions:  models.StringList(req.Instructions),
		ItemsNeeded:   models.StringList(req.ItemsNeeded),
		Status:        req.Status,
		Frequency:     req.Frequency,
		FrequencyType: req.FrequencyType,
		Importance:    req.Importance,
	}

	created, err := s.repo.CreateChore(ctx, chore, req.TagIDs)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("chore created", "id", created.ID, "name", created.Name)
	return created, nil
}

// UpdateChore merges the set fields of req onto the stored chore and saves it
func (s *service) UpdateChore(ctx context.Context, req UpdateChoreRequest) (*models.Chore, error) {
	if err := ValidateUpdateChore(&req); err != nil {
		return nil, err
	}

	chore, err := s.repo.GetChoreByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		chore.Name = *req.Name
	}
	if req.Description != nil {
		chore.Description = *req.Description
	}
	if req.Instructions != nil {
		chore.Instructions = models.StringList(*req.Instructions)
	}
	if req.ItemsNeeded != nil {
		chore.ItemsNeeded = models.StringList(*req.ItemsNeeded)
	}
	if req.Status != nil {
		chore.Status = *req.Status
	}
	if req.Frequency != nil {
		chore.Frequency = *req.Frequency
	}
	if req.FrequencyType != nil {
		chore.FrequencyType = *req.FrequencyType
	}
	if req.Importance != nil {
		chore.Importance = *req.Importance
	}

	if req.TagIDs != nil {
		err = s.repo.UpdateChoreWithTags(ctx, chore, *req.TagIDs)
	} else {
		err = s.repo.UpdateChore(ctx, chore)
	}
	if err != nil {
		return nil, err
	}

	if chore.Instructions == nil {
		chore.Instructions = models.StringList{}
	}
	if chore.ItemsNeeded == nil {
		chore.ItemsNeeded = models.StringList{}
	}
	return chore, nil
}

// DeleteChore deletes a chore along with its history and tag links
func (s *service) DeleteChore(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidChoreID
	}
	return s.repo.DeleteChore(ctx, id)
}

// MoveInstruction moves the instruction at position from to position to
// (both zero-based) and persists the new order
func (s *service) MoveInstruction(ctx context.Context, id, from, to int) (*models.Chore, error) {
	if id <= 0 {
		return nil, ErrInvalidChoreID
	}

	chore, err := s.repo.GetChoreByID(ctx, id)
	if err != nil {
		return nil, err
	}

	n := len(chore.Instructions)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, fmt.Errorf("%w: chore %d has %d instructions", ErrInstructionIndex, id, n)
	}
	if from == to {
		return chore, nil
	}

	chore.Instructions = moveItem(chore.Instructions, from, to)
	if err := s.repo.UpdateChore(ctx, chore); err != nil {
		return nil, err
	}
	return chore, nil
}

// CompleteChore records a completion at at, or at the current time when at is zero
func (s *service) CompleteChore(ctx context.Context, id int, at time.Time) (*models.Entry, error) {
	if err := s.requireChore(ctx, id); err != nil {
		return nil, err
	}

	if at.IsZero() {
		at = s.calc.Now()
	}

	entry, err := s.repo.InsertEntry(ctx, id, at.Unix())
	if err != nil {
		return nil, err
	}

	s.logger.Debug("chore completed", "id", id, "at", at.UTC().Format(time.RFC3339))
	return entry, nil
}

// ClearHistory removes every completion of a chore
func (s *service) ClearHistory(ctx context.Context, id int) error {
	if err := s.requireChore(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteEntriesForChore(ctx, id)
}

// requireChore validates id and checks that the chore exists
func (s *service) requireChore(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidChoreID
	}
	_, err := s.repo.GetChoreByID(ctx, id)
	return err
}

// ValidateCreateChore validates a CreateChoreRequest and fills in defaults.
// CreateChore runs it too; callers use it to reject a request before doing
// side work such as creating tags.
func ValidateCreateChore(req *CreateChoreRequest) error {
	name, err := validateName(req.Name)
	if err != nil {
		return err
	}
	req.Name = name

	if req.Frequency <= 0 {
		return ErrInvalidFrequency
	}
	if req.FrequencyType == "" {
		req.FrequencyType = models.DefaultFrequencyUnit
	}
	if !req.FrequencyType.Known() {
		return ErrInvalidFrequencyUnit
	}
	if req.Status == "" {
		req.Status = models.DefaultStatus
	}
	return validateTagIDs(req.TagIDs)
}

// ValidateUpdateChore validates the fields of an UpdateChoreRequest that are set.
// It does not check that the chore exists.
func ValidateUpdateChore(req *UpdateChoreRequest) error {
	if req.ID <= 0 {
		return ErrInvalidChoreID
	}
	if req.Name != nil {
		name, err := validateName(*req.Name)
		if err != nil {
			return err
		}
		req.Name = &name
	}
	if req.Frequency != nil && *req.Frequency <= 0 {
		return ErrInvalidFrequency
	}
	if req.FrequencyType != nil && !req.FrequencyType.Known() {
		return ErrInvalidFrequencyUnit
	}
	if req.Status != nil && *req.Status == "" {
		status := models.DefaultStatus
		req.Status = &status
	}
	if req.TagIDs != nil {
		return validateTagIDs(*req.TagIDs)
	}
	return nil
}

// validateListChores validates a ListChoresRequest and fills in defaults
func validateListChores(req *ListChoresRequest) error {
	if req.MinImportance != nil && req.MaxImportance != nil && *req.MinImportance > *req.MaxImportance {
		return ErrInvalidImportanceRange
	}
	if req.SortBy == "" {
		req.SortBy = models.SortByDaysLeft
	}
	if !req.SortBy.Valid() {
		return ErrInvalidSortKey
	}
	if req.SortOrder == "" {
		req.SortOrder = models.SortAsc
	}
	if !req.SortOrder.Valid() {
		return ErrInvalidSortOrder
	}
	return validateTagIDs(req.TagIDs)
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

func validateTagIDs(ids []int) error {
	for _, id := range ids {
		if id <= 0 {
			return ErrInvalidTagID
		}
	}
	return nil
}

// moveItem returns a copy of items with the element at from moved to to
func moveItem(items models.StringList, from, to int) models.StringList {
	out := make(models.StringList, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)

	moved := items[from]
	out = append(out[:to], append(models.StringList{moved}, out[to:]...)...)
	return out
}

func nonNilTags(tags []*models.Tag) []*models.Tag {
	if tags == nil {
		return []*models.Tag{}
	}
	return tags
}

func nonNilEntries(entries []*models.Entry) []*models.Entry {
	if entries == nil {
		return []*models.Entry{}
	}
	return entries
}
