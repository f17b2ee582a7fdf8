package models

import "errors"

// Lookup errors returned by the storage layer
var (
	// ErrChoreNotFound indicates no chore exists with the requested ID
	ErrChoreNotFound = errors.New("chore not found")

	// ErrTagNotFound indicates no tag exists with the requested ID or name
	ErrTagNotFound = errors.New("tag not found")

	// ErrEntryNotFound indicates the chore has no completion entries
	ErrEntryNotFound = errors.New("entry not found")
)
