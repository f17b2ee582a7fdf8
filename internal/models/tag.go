package models

// Tag is a globally unique label that can be attached to chores
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ChoreTag associates a chore with a tag
type ChoreTag struct {
	ChoreID int `json:"chore_id"`
	TagID   int `json:"tag_id"`
}
