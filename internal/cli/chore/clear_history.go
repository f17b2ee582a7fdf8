package chore

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli/handler"
)

// ClearHistoryCmd returns the chore clear-history subcommand
func ClearHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear-history [id]",
		Short: "Delete every completion of a chore",
		Long: `Delete the completion history of a chore. The chore then counts as
never completed (requires confirmation unless --force, --quiet or --json).

Examples:
  chores chore clear-history 3 --force
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(&clearHistoryHandler{}, parseClearHistoryFlags),
	}

	cmd.Flags().Int("id", 0, "Chore ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	addOutputFlags(cmd)

	return cmd
}

// clearHistoryHandler implements handler.Handler for clearing chore history
type clearHistoryHandler struct{}

// Execute implements the Handler interface
func (h *clearHistoryHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	choreID, err := args.ID("id")
	if err != nil {
		return nil, err
	}

	cliInstance, closeCLI, err := openCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer closeCLI()

	detail, err := cliInstance.App.ChoreService.GetChore(ctx, choreID)
	if err != nil {
		return nil, err
	}

	if !args.GetBool("force") && !args.GetBool("quiet") && !args.GetBool("json") {
		prompt := fmt.Sprintf("Delete all %d completions of '%s'?", len(detail.Entries), detail.Name)
		if !confirm(prompt) {
			return &messageResult{ChoreID: choreID, Message: "Cancelled"}, nil
		}
	}

	if err := cliInstance.App.ChoreService.ClearHistory(ctx, choreID); err != nil {
		return nil, fmt.Errorf("clear history error: %w", err)
	}

	return &messageResult{
		ChoreID: choreID,
		Message: fmt.Sprintf("Cleared %d completions of '%s'", len(detail.Entries), detail.Name),
	}, nil
}

func parseClearHistoryFlags(cmd *cobra.Command) error {
	if _, _, err := handler.NewFlagParser(cmd).OutputFormats(); err != nil {
		return err
	}
	return nil
}
