// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseChoreID extracts chore ID from a flag
func (p *FlagParser) ParseChoreID(flagName string) (int, error) {
	return p.ParseInt(flagName)
}

// ParseTagID extracts tag ID from a flag
func (p *FlagParser) ParseTagID(flagName string) (int, error) {
	return p.ParseInt(flagName)
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", cli.Usagef("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", cli.Usagef("%s is required", flagName)
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	return p.cmd.Flags().GetString(flagName)
}

// ParseInt extracts a required positive int flag
func (p *FlagParser) ParseInt(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, cli.Usagef("failed to parse %s flag: %w", flagName, err)
	}
	if value <= 0 {
		return 0, cli.Usagef("%s must be greater than 0", flagName)
	}
	return value, nil
}

// ParseIntOptional extracts an optional int flag
func (p *FlagParser) ParseIntOptional(flagName string) (int, error) {
	return p.cmd.Flags().GetInt(flagName)
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}

// ParseImportance extracts an importance flag given as a number or level name.
// Returns nil when the flag was not set.
func (p *FlagParser) ParseImportance(flagName string) (*int, error) {
	if !p.cmd.Flags().Changed(flagName) {
		return nil, nil
	}
	raw, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return nil, cli.Usagef("failed to parse %s flag: %w", flagName, err)
	}
	level, err := cli.ParseImportance(raw)
	if err != nil {
		return nil, &cli.UsageError{Err: err}
	}
	return &level, nil
}

// ParseFrequencyUnit extracts a frequency unit flag ("week", "months", ...).
// Returns nil when the flag was not set.
func (p *FlagParser) ParseFrequencyUnit(flagName string) (*models.FrequencyUnit, error) {
	if !p.cmd.Flags().Changed(flagName) {
		return nil, nil
	}
	raw, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return nil, cli.Usagef("failed to parse %s flag: %w", flagName, err)
	}
	unit, err := models.ParseFrequencyUnit(raw)
	if err != nil {
		return nil, &cli.UsageError{Err: err}
	}
	return &unit, nil
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	if jsonOutput && quietMode {
		return false, false, cli.Usagef("--json and --quiet cannot be used together")
	}

	return jsonOutput, quietMode, nil
}
