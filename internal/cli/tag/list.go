package tag

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli/handler"
)

// ListCmd returns the tag list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long: `List all tags ordered by name, or the tags of one chore.

Examples:
  chores tag list
  chores tag list --chore=3 --json
  chores tag list --quiet
`,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	cmd.Flags().Int("chore", 0, "Only tags attached to this chore")
	addOutputFlags(cmd)

	return cmd
}

// listHandler implements handler.Handler for tag listing
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, closeCLI, err := openCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer closeCLI()

	if args.Has("chore") {
		tags, err := cliInstance.App.TagService.GetTagsForChore(ctx, args.GetInt("chore", 0))
		if err != nil {
			return nil, err
		}
		return &tagListResult{Tags: tags}, nil
	}

	tags, err := cliInstance.App.TagService.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	return &tagListResult{Tags: tags}, nil
}
