package models

// ============================================================================
// IMPORTANCE CONSTANTS
// ============================================================================

// Importance levels offered by the picker; any integer is accepted in storage
const (
	ImportanceNone   = 0
	ImportanceLow    = 1
	ImportanceMedium = 2
	ImportanceHigh   = 3
)

// ============================================================================
// CHORE DEFAULTS
// ============================================================================

// DefaultStatus is the status given to newly created chores
const DefaultStatus = "active"

// DefaultFrequencyUnit is used when a chore is created without a unit
const DefaultFrequencyUnit = FrequencyDay
