package models

import (
	"fmt"
	"strings"
)

// SortKey is the primary ordering of a chore listing
type SortKey string

const (
	SortByDaysLeft   SortKey = "days_left"
	SortByImportance SortKey = "importance"
	SortByName       SortKey = "name"
)

// SortOrder is the direction of a chore listing
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Valid reports whether k is a recognized sort key
func (k SortKey) Valid() bool {
	switch k {
	case SortByDaysLeft, SortByImportance, SortByName:
		return true
	}
	return false
}

// Valid reports whether o is a recognized sort order
func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

// ParseSortKey parses a sort key, accepting "days-left" as an alias
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !k.Valid() {
		return "", fmt.Errorf("invalid sort key '%s' (must be: days_left, importance, name)", s)
	}
	return k, nil
}

// ParseSortOrder parses a sort direction
func ParseSortOrder(s string) (SortOrder, error) {
	o := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", fmt.Errorf("invalid sort order '%s' (must be: asc, desc)", s)
	}
	return o, nil
}
