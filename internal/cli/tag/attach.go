package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli/handler"
)

// AttachCmd returns the tag attach subcommand
func AttachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Attach a tag to a chore",
		Long: `Attach a tag to a chore by their IDs. Attaching twice is a no-op.

Examples:
  chores tag attach --chore=3 --tag=2
`,
		RunE: handler.Command(&attachHandler{}, parseLinkFlags),
	}

	addLinkFlags(cmd)
	addOutputFlags(cmd)

	return cmd
}

// attachHandler implements handler.Handler for attaching tags
type attachHandler struct{}

// Execute implements the Handler interface
func (h *attachHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := handler.NewFlagParser(args.GetCmd())
	choreID, err := parser.ParseChoreID("chore")
	if err != nil {
		return nil, err
	}
	tagID, err := parser.ParseTagID("tag")
	if err != nil {
		return nil, err
	}

	cliInstance, closeCLI, err := openCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer closeCLI()

	if err := cliInstance.App.TagService.AttachTag(ctx, choreID, tagID); err != nil {
		return nil, fmt.Errorf("attach error: %w", err)
	}

	return &linkResult{
		ChoreID: choreID,
		TagID:   tagID,
		message: fmt.Sprintf("Tag #%d attached to chore #%d", tagID, choreID),
	}, nil
}

func addLinkFlags(cmd *cobra.Command) {
	cmd.Flags().Int("chore", 0, "Chore ID (required)")
	if err := cmd.MarkFlagRequired("chore"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().Int("tag", 0, "Tag ID (required)")
	if err := cmd.MarkFlagRequired("tag"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
}

func parseLinkFlags(cmd *cobra.Command) error {
	if _, _, err := handler.NewFlagParser(cmd).OutputFormats(); err != nil {
		return err
	}
	return nil
}
