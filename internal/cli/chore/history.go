package chore

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
)

// HistoryCmd returns the chore history subcommand
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [id]",
		Short: "List the completions of a chore",
		Long: `List every recorded completion of a chore, newest first.

Examples:
  chores chore history 3
  chores chore history 3 --limit=10 --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(&historyHandler{}, parseHistoryFlags),
	}

	cmd.Flags().Int("id", 0, "Chore ID (can also be provided as positional argument)")
	cmd.Flags().Int("limit", 0, "Show at most this many completions (0 for all)")
	addOutputFlags(cmd)

	return cmd
}

// historyHandler implements handler.Handler for chore history
type historyHandler struct{}

// Execute implements the Handler interface
func (h *historyHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
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

	entries, err := cliInstance.App.ChoreService.History(ctx, choreID)
	if err != nil {
		return nil, fmt.Errorf("history error: %w", err)
	}
	if limit := args.GetInt("limit", 0); limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	calc := cliInstance.App.Calculator()
	return &historyResult{
		ChoreID: choreID,
		Entries: entries,
		name:    detail.Name,
		now:     calc.Now(),
		loc:     calc.Location(),
	}, nil
}

func parseHistoryFlags(cmd *cobra.Command) error {
	if _, _, err := handler.NewFlagParser(cmd).OutputFormats(); err != nil {
		return err
	}
	if limit, _ := cmd.Flags().GetInt("limit"); limit < 0 {
		return cli.Usagef("limit cannot be negative")
	}
	return nil
}
