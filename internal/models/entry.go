package models

import "time"

// Entry records a single completion of a chore
type Entry struct {
	ID            int   `json:"id"`
	ChoreID       int   `json:"chore_id"`
	DateCompleted int64 `json:"date_completed"` // epoch seconds
}

// CompletedAt returns the completion timestamp as a time.Time in UTC
func (e *Entry) CompletedAt() time.Time {
	return time.Unix(e.DateCompleted, 0).UTC()
}
