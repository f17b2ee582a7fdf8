package chore

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/models"
	choreservice "github.com/thenoetrevino/chores/internal/services/chore"
)

// ListCmd returns the chore list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List chores",
		Long: `List chores, optionally filtered by importance, tags and name.

A chore matches the tag filter when it has at least one of the given tags.
Sorting defaults to the list settings in the config file.

Examples:
  # Everything, most overdue first
  chores chore list

  # Important kitchen chores
  chores chore list --min-importance=high --tag=kitchen

  # Alphabetical, JSON output for agents
  chores chore list --sort=name --json

  # Quiet mode (one ID per line)
  chores chore list --quiet
`,
		RunE: handler.Command(&listHandler{}, parseListFlags),
	}

	cmd.Flags().String("min-importance", "", "Lowest importance to include")
	cmd.Flags().String("max-importance", "", "Highest importance to include")
	cmd.Flags().StringArray("tag", nil, "Only chores with this tag (repeatable, any match)")
	cmd.Flags().String("name", "", "Only chores whose name contains this text")
	cmd.Flags().String("sort", "", "Sort by: days_left, importance, name")
	cmd.Flags().String("order", "", "Sort order: asc, desc")

	addOutputFlags(cmd)

	return cmd
}

// listHandler implements handler.Handler for chore listing
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := handler.NewFlagParser(args.GetCmd())

	minImportance, err := parser.ParseImportance("min-importance")
	if err != nil {
		return nil, err
	}
	maxImportance, err := parser.ParseImportance("max-importance")
	if err != nil {
		return nil, err
	}

	cliInstance, closeCLI, err := openCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer closeCLI()

	sortBy, err := models.ParseSortKey(args.GetString("sort", cliInstance.Config.List.SortBy))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", choreservice.ErrInvalidSortKey, err)
	}
	sortOrder, err := models.ParseSortOrder(args.GetString("order", cliInstance.Config.List.SortOrder))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", choreservice.ErrInvalidSortOrder, err)
	}

	tagIDs, err := lookupTagIDs(ctx, cliInstance.App.Repo(), args.GetStringArray("tag", nil))
	if err != nil {
		return nil, err
	}

	summaries, err := cliInstance.App.ChoreService.ListChores(ctx, choreservice.ListChoresRequest{
		MinImportance: minImportance,
		MaxImportance: maxImportance,
		TagIDs:        tagIDs,
		NameFilter:    args.GetString("name", ""),
		SortBy:        sortBy,
		SortOrder:     sortOrder,
	})
	if err != nil {
		return nil, err
	}

	return &choreListResult{
		Chores: summaries,
		now:    cliInstance.App.Calculator().Now(),
	}, nil
}

type tagLookup interface {
	GetTagByName(ctx context.Context, name string) (*models.Tag, error)
}

// lookupTagIDs resolves existing tag names; an unknown name is an error
func lookupTagIDs(ctx context.Context, repo tagLookup, names []string) ([]int, error) {
	ids := make([]int, 0, len(names))
	for _, name := range names {
		tag, err := repo.GetTagByName(ctx, strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		ids = append(ids, tag.ID)
	}
	return ids, nil
}

func parseListFlags(cmd *cobra.Command) error {
	if _, _, err := handler.NewFlagParser(cmd).OutputFormats(); err != nil {
		return err
	}
	return nil
}
