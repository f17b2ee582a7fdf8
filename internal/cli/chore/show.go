package chore

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli/handler"
)

// ShowCmd returns the chore show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show chore details",
		Long: `Display all details of a chore including instructions, items needed,
tags, when it is next due and its recent completions.

Examples:
  chores chore show 3
  chores chore show --id=3 --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(&showHandler{}, parseShowFlags),
	}

	cmd.Flags().Int("id", 0, "Chore ID (can also be provided as positional argument)")
	addOutputFlags(cmd)

	return cmd
}

// showHandler implements handler.Handler for chore details
type showHandler struct{}

// Execute implements the Handler interface
func (h *showHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
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

	calc := cliInstance.App.Calculator()
	return &choreDetailResult{
		ChoreDetail: detail,
		now:         calc.Now(),
		loc:         calc.Location(),
	}, nil
}

func parseShowFlags(cmd *cobra.Command) error {
	if _, _, err := handler.NewFlagParser(cmd).OutputFormats(); err != nil {
		return err
	}
	return nil
}
