package chore

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
)

// DoneCmd returns the chore done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Record a completion of a chore",
		Long: `Record that a chore was completed, restarting its interval.

--at accepts RFC3339, epoch seconds or natural language and defaults to now.

Examples:
  # Completed now
  chores chore done 3

  # Completed earlier
  chores chore done 3 --at="yesterday at 6pm"
  chores chore done 3 --at=2024-03-18T09:30:00Z

  # Quiet mode prints the new entry ID
  chores chore done 3 --quiet
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(&doneHandler{}, parseDoneFlags),
	}

	cmd.Flags().Int("id", 0, "Chore ID (can also be provided as positional argument)")
	cmd.Flags().String("at", "", "When the chore was completed (default now)")
	addOutputFlags(cmd)

	return cmd
}

// doneHandler implements handler.Handler for chore completion
type doneHandler struct{}

// Execute implements the Handler interface
func (h *doneHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	choreID, err := args.ID("id")
	if err != nil {
		return nil, err
	}

	cliInstance, closeCLI, err := openCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer closeCLI()

	calc := cliInstance.App.Calculator()
	now := calc.Now()

	at, err := cli.ParseCompletedAt(args.GetString("at", ""), now.In(calc.Location()))
	if err != nil {
		return nil, err
	}

	entry, err := cliInstance.App.ChoreService.CompleteChore(ctx, choreID, at)
	if err != nil {
		return nil, fmt.Errorf("chore completion error: %w", err)
	}

	detail, err := cliInstance.App.ChoreService.GetChore(ctx, choreID)
	if err != nil {
		return nil, err
	}

	return &completionResult{
		Entry: entry,
		Chore: &detail.ChoreSummary,
		now:   now,
		loc:   calc.Location(),
	}, nil
}

func parseDoneFlags(cmd *cobra.Command) error {
	if _, _, err := handler.NewFlagParser(cmd).OutputFormats(); err != nil {
		return err
	}
	return nil
}
