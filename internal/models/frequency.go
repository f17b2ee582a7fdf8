package models

import (
	"fmt"
	"strings"
)

// FrequencyUnit is the calendar granularity a chore's frequency count is measured in
type FrequencyUnit string

const (
	FrequencyDay   FrequencyUnit = "day"
	FrequencyWeek  FrequencyUnit = "week"
	FrequencyMonth FrequencyUnit = "month"
	FrequencyYear  FrequencyUnit = "year"
)

// FrequencyUnits lists the recognized units in display order
var FrequencyUnits = []FrequencyUnit{FrequencyDay, FrequencyWeek, FrequencyMonth, FrequencyYear}

// Known reports whether u is one of the recognized units
func (u FrequencyUnit) Known() bool {
	switch u {
	case FrequencyDay, FrequencyWeek, FrequencyMonth, FrequencyYear:
		return true
	}
	return false
}

func (u FrequencyUnit) String() string {
	return string(u)
}

// ParseFrequencyUnit parses a unit name, accepting plurals ("weeks") and any casing
func ParseFrequencyUnit(s string) (FrequencyUnit, error) {
	u := FrequencyUnit(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s"))
	if !u.Known() {
		return "", fmt.Errorf("invalid frequency unit '%s' (must be: day, week, month, year)", s)
	}
	return u, nil
}
