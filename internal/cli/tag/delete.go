package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli/handler"
)

// DeleteCmd returns the tag delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a tag",
		Long: `Delete a tag. It is removed from every chore that has it.

Examples:
  chores tag delete --id=2
`,
		RunE: handler.Command(&deleteHandler{}, parseDeleteFlags),
	}

	cmd.Flags().Int("id", 0, "Tag ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	addOutputFlags(cmd)

	return cmd
}

// deleteHandler implements handler.Handler for tag deletion
type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	tagID, err := handler.NewFlagParser(args.GetCmd()).ParseTagID("id")
	if err != nil {
		return nil, err
	}

	cliInstance, closeCLI, err := openCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer closeCLI()

	if err := cliInstance.App.TagService.DeleteTag(ctx, tagID); err != nil {
		return nil, fmt.Errorf("tag deletion error: %w", err)
	}

	return &linkResult{
		TagID:   tagID,
		message: fmt.Sprintf("Tag %d deleted successfully", tagID),
	}, nil
}

func parseDeleteFlags(cmd *cobra.Command) error {
	if _, _, err := handler.NewFlagParser(cmd).OutputFormats(); err != nil {
		return err
	}
	return nil
}
