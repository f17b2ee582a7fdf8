package tag

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli/handler"
)

// DetachCmd returns the tag detach subcommand
func DetachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detach",
		Short: "Detach a tag from a chore",
		Long: `Detach a tag from a chore by their IDs. Detaching a tag the chore
doesn't have is not an error.

Examples:
  chores tag detach --chore=3 --tag=2
`,
		RunE: handler.Command(&detachHandler{}, parseLinkFlags),
	}

	addLinkFlags(cmd)
	addOutputFlags(cmd)

	return cmd
}

// detachHandler implements handler.Handler for detaching tags
type detachHandler struct{}

// Execute implements the Handler interface
func (h *detachHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
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

	if err := cliInstance.App.TagService.DetachTag(ctx, choreID, tagID); err != nil {
		return nil, fmt.Errorf("detach error: %w", err)
	}

	return &linkResult{
		ChoreID: choreID,
		TagID:   tagID,
		message: fmt.Sprintf("Tag #%d detached from chore #%d", tagID, choreID),
	}, nil
}
