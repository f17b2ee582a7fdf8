package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli/handler"
)

// CreateCmd returns the tag create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new tag",
		Long: `Create a new tag. Tag names are unique.

Examples:
  chores tag create --name=kitchen
  TAG_ID=$(chores tag create --name=kitchen --quiet)
`,
		RunE: handler.Command(&createHandler{}, parseCreateFlags),
	}

	cmd.Flags().String("name", "", "Tag name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	addOutputFlags(cmd)

	return cmd
}

// createHandler implements handler.Handler for tag creation
type createHandler struct{}

// Execute implements the Handler interface
func (h *createHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, closeCLI, err := openCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer closeCLI()

	tag, err := cliInstance.App.TagService.CreateTag(ctx, args.GetString("name", ""))
	if err != nil {
		return nil, fmt.Errorf("tag creation error: %w", err)
	}

	return &tagResult{
		Tag:     tag,
		message: fmt.Sprintf("Tag '%s' created successfully (ID: %d)", tag.Name, tag.ID),
	}, nil
}

func parseCreateFlags(cmd *cobra.Command) error {
	if _, _, err := handler.NewFlagParser(cmd).OutputFormats(); err != nil {
		return err
	}
	return nil
}
