// Package chore holds all cli commands related to chores
// e.g., chores chore ...
package chore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
)

// ChoreCmd returns the chore parent command
func ChoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chore",
		Short: "Manage chores",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(HistoryCmd())
	cmd.AddCommand(ClearHistoryCmd())
	cmd.AddCommand(ReorderCmd())

	return cmd
}

// addOutputFlags registers the agent-friendly flags every command supports
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// openCLI returns the CLI for ctx and a func that closes it
func openCLI(ctx context.Context) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("initialization error: %w", err)
	}
	closeFn := func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}
	return cliInstance, closeFn, nil
}

// resolveTagNames turns tag names into ids, creating tags that don't exist yet
func resolveTagNames(ctx context.Context, cliInstance *cli.CLI, names []string) ([]int, error) {
	if len(names) == 0 {
		return []int{}, nil
	}
	tags, err := cliInstance.App.TagService.EnsureTags(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tags: %w", err)
	}
	ids := make([]int, len(tags))
	for i, tag := range tags {
		ids[i] = tag.ID
	}
	return ids, nil
}

// confirm asks a yes/no question on stdin
func confirm(prompt string) bool {
	fmt.Print(prompt + " (y/N): ")
	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		slog.Debug("no confirmation read", "error", err)
	}
	return response == "y" || response == "Y" || response == "yes"
}
