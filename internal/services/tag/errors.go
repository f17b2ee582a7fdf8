package tag

import "errors"

// Tag-related errors
var (
	// Validation errors
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrNameTooLong    = errors.New("name cannot exceed 50 characters")
	ErrInvalidTagID   = errors.New("invalid tag ID")
	ErrInvalidChoreID = errors.New("invalid chore ID")
)
