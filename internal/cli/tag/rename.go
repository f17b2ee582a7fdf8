package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli/handler"
)

// RenameCmd returns the tag rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a tag",
		Long: `Rename a tag. Chores keep the tag under its new name.

Examples:
  chores tag rename --id=2 --name=kitchen
`,
		RunE: handler.Command(&renameHandler{}, parseRenameFlags),
	}

	cmd.Flags().Int("id", 0, "Tag ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("name", "", "New tag name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	addOutputFlags(cmd)

	return cmd
}

// renameHandler implements handler.Handler for tag renaming
type renameHandler struct{}

// Execute implements the Handler interface
func (h *renameHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	tagID, err := handler.NewFlagParser(args.GetCmd()).ParseTagID("id")
	if err != nil {
		return nil, err
	}

	cliInstance, closeCLI, err := openCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer closeCLI()

	tag, err := cliInstance.App.TagService.RenameTag(ctx, tagID, args.GetString("name", ""))
	if err != nil {
		return nil, fmt.Errorf("tag rename error: %w", err)
	}

	return &tagResult{
		Tag:     tag,
		message: fmt.Sprintf("Tag %d renamed to '%s'", tag.ID, tag.Name),
	}, nil
}

func parseRenameFlags(cmd *cobra.Command) error {
	if _, _, err := handler.NewFlagParser(cmd).OutputFormats(); err != nil {
		return err
	}
	return nil
}
