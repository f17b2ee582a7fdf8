package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/chores/internal/models"
	choreservice "github.com/thenoetrevino/chores/internal/services/chore"
	tagservice "github.com/thenoetrevino/chores/internal/services/tag"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Chore not found, tag not found, or any case where a
	// resource ID or name doesn't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unparseable --at timestamps or data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names, non-positive frequencies, unknown units,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// UsageError marks an error caused by how the command was invoked
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ReportedError marks an error that was already written to stdout as a JSON
// error object
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// Usagef builds a UsageError from a format string
func Usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

var validationErrors = []error{
	choreservice.ErrEmptyName,
	choreservice.ErrNameTooLong,
	choreservice.ErrInvalidChoreID,
	choreservice.ErrInvalidTagID,
	choreservice.ErrInvalidFrequency,
	choreservice.ErrInvalidFrequencyUnit,
	choreservice.ErrInvalidImportanceRange,
	choreservice.ErrInvalidSortKey,
	choreservice.ErrInvalidSortOrder,
	choreservice.ErrInstructionIndex,
	tagservice.ErrEmptyName,
	tagservice.ErrNameTooLong,
	tagservice.ErrInvalidTagID,
	tagservice.ErrInvalidChoreID,
}

// ExitCodeFor maps an error returned by a command to its process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}

	if errors.Is(err, models.ErrChoreNotFound) ||
		errors.Is(err, models.ErrTagNotFound) ||
		errors.Is(err, models.ErrEntryNotFound) {
		return ExitNotFound
	}

	if errors.Is(err, ErrUnparseableTime) {
		return ExitDataErr
	}

	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return ExitValidation
		}
	}

	return ExitError
}

// ErrorCode returns the machine-readable code reported in JSON error output
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "DATA_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	}
	return "ERROR"
}
