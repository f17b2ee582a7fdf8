package chore

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli/handler"
)

// DeleteCmd returns the chore delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a chore",
		Long: `Delete a chore together with its completion history and tag links
(requires confirmation unless --force, --quiet or --json).

Examples:
  # Delete with confirmation
  chores chore delete 3

  # Skip confirmation
  chores chore delete 3 --force
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(&deleteHandler{}, parseDeleteFlags),
	}

	cmd.Flags().Int("id", 0, "Chore ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	addOutputFlags(cmd)

	return cmd
}

// deleteHandler implements handler.Handler for chore deletion
type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	choreID, err := args.ID("id")
	if err != nil {
		return nil, err
	}

	cliInstance, closeCLI, err := openCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer closeCLI()

	// Fetch first so a missing chore is reported before prompting
	detail, err := cliInstance.App.ChoreService.GetChore(ctx, choreID)
	if err != nil {
		return nil, err
	}

	if !args.GetBool("force") && !args.GetBool("quiet") && !args.GetBool("json") {
		prompt := fmt.Sprintf("Delete chore #%d '%s' and its %d completions?", choreID, detail.Name, len(detail.Entries))
		if !confirm(prompt) {
			return &messageResult{ChoreID: choreID, Message: "Cancelled"}, nil
		}
	}

	if err := cliInstance.App.ChoreService.DeleteChore(ctx, choreID); err != nil {
		return nil, fmt.Errorf("chore deletion error: %w", err)
	}

	return &messageResult{
		ChoreID: choreID,
		Message: fmt.Sprintf("Chore %d deleted successfully", choreID),
	}, nil
}

func parseDeleteFlags(cmd *cobra.Command) error {
	if _, _, err := handler.NewFlagParser(cmd).OutputFormats(); err != nil {
		return err
	}
	return nil
}
