// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/chores/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (any, error)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	cmd   *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(handler Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Get formatter from flags
		jsonOutput, _ := cmd.Flags().GetBool("json")
		quietMode, _ := cmd.Flags().GetBool("quiet")
		formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

		// Parse flags
		if err := parseFlags(cmd); err != nil {
			return reportError(formatter, err)
		}

		// Build arguments map from all flags
		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			cmd:   cmd,
		}

		// Execute handler
		result, err := handler.Execute(ctx, arguments)
		if err != nil {
			return reportError(formatter, err)
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

// reportError writes err as a JSON error object when JSON output was requested
// and marks it as reported. The cause stays reachable for exit code mapping.
func reportError(formatter *cli.OutputFormatter, err error) error {
	if !formatter.JSON {
		return err
	}
	if fmtErr := formatter.Error(cli.ErrorCode(err), err.Error()); fmtErr != nil {
		slog.Error("failed to format error", "error", fmtErr)
		return err
	}
	return &cli.ReportedError{Err: err}
}

// SimpleCommand wraps command execution with minimal setup
// Use this for commands that don't need complex flag parsing
func SimpleCommand(handler Handler) func(*cobra.Command, []string) error {
	return Command(handler, func(cmd *cobra.Command) error {
		return nil
	})
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		// Get the value based on flag type
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "stringArray":
			if v, err := cmd.Flags().GetStringArray(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(int)
	if !ok {
		return defaultVal
	}
	return val
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	return val
}

// GetStringArray retrieves a repeatable string flag with default
func (a *Arguments) GetStringArray(name string, defaultVal []string) []string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.([]string)
	if !ok {
		return defaultVal
	}
	return val
}

// Has reports whether a flag was explicitly set
func (a *Arguments) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// ID returns the positional id argument, falling back to the named int flag
func (a *Arguments) ID(flagName string) (int, error) {
	if len(a.Args) > 0 {
		id, err := strconv.Atoi(a.Args[0])
		if err != nil || id <= 0 {
			return 0, cli.Usagef("invalid ID: %s", a.Args[0])
		}
		return id, nil
	}
	id := a.GetInt(flagName, 0)
	if id <= 0 {
		return 0, cli.Usagef("an ID is required (positional argument or --%s)", flagName)
	}
	return id, nil
}
