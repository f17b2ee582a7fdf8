package chore

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli/handler"
)

// ReorderCmd returns the chore reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder [id]",
		Short: "Move an instruction to a new position",
		Long: `Move one instruction of a chore to a new position. Positions are
1-based, as shown by 'chores chore show'.

Examples:
  # Make the third step the first
  chores chore reorder 3 --from=3 --to=1
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(&reorderHandler{}, parseReorderFlags),
	}

	cmd.Flags().Int("id", 0, "Chore ID (can also be provided as positional argument)")
	cmd.Flags().Int("from", 0, "Current position of the instruction (required)")
	cmd.Flags().Int("to", 0, "New position of the instruction (required)")
	addOutputFlags(cmd)

	return cmd
}

// reorderHandler implements handler.Handler for instruction reordering
type reorderHandler struct{}

// Execute implements the Handler interface
func (h *reorderHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	choreID, err := args.ID("id")
	if err != nil {
		return nil, err
	}

	parser := handler.NewFlagParser(args.GetCmd())
	from, err := parser.ParseInt("from")
	if err != nil {
		return nil, err
	}
	to, err := parser.ParseInt("to")
	if err != nil {
		return nil, err
	}

	cliInstance, closeCLI, err := openCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer closeCLI()

	chore, err := cliInstance.App.ChoreService.MoveInstruction(ctx, choreID, from-1, to-1)
	if err != nil {
		return nil, fmt.Errorf("reorder error: %w", err)
	}

	tags, err := cliInstance.App.TagService.GetTagsForChore(ctx, chore.ID)
	if err != nil {
		return nil, err
	}

	return &choreResult{Chore: chore, Tags: tags, action: "reordered"}, nil
}

func parseReorderFlags(cmd *cobra.Command) error {
	if _, _, err := handler.NewFlagParser(cmd).OutputFormats(); err != nil {
		return err
	}
	return nil
}
