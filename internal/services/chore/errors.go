package chore

import "errors"

// Chore-related errors
var (
	// Validation errors
	ErrEmptyName              = errors.New("name cannot be empty")
	ErrNameTooLong            = errors.New("name cannot exceed 100 characters")
	ErrInvalidChoreID         = errors.New("invalid chore ID")
	ErrInvalidTagID           = errors.New("invalid tag ID")
	ErrInvalidFrequency       = errors.New("frequency must be a positive number")
	ErrInvalidFrequencyUnit   = errors.New("invalid frequency unit (must be: day, week, month, year)")
	ErrInvalidImportanceRange = errors.New("minimum importance cannot exceed maximum importance")
	ErrInvalidSortKey         = errors.New("invalid sort key (must be: days_left, importance, name)")
	ErrInvalidSortOrder       = errors.New("invalid sort order (must be: asc, desc)")
	ErrInstructionIndex       = errors.New("instruction position out of range")
)
