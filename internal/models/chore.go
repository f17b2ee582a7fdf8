package models

// Chore represents a recurring task tracked by the application
// Instructions and ItemsNeeded are ordered; order is significant
type Chore struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Instructions  StringList    `json:"instructions"`
	ItemsNeeded   StringList    `json:"items_needed"`
	Status        string        `json:"status"`
	Frequency     int           `json:"frequency"`
	FrequencyType FrequencyUnit `json:"frequency_type"`
	Importance    int           `json:"importance"`
}

// ChoreRow is a chore as returned by the filtered listing query,
// annotated with the most recent completion (0 when never completed)
type ChoreRow struct {
	Chore
	LastCompleted int64 `json:"last_completed"`
}
