package chore

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	choreservice "github.com/thenoetrevino/chores/internal/services/chore"
)

// updateFlags lists the flags that change a field; at least one must be set
var updateFlags = []string{
	"name", "description", "instruction", "clear-instructions", "item", "clear-items",
	"status", "every", "unit", "importance", "tag", "clear-tags",
}

// UpdateCmd returns the chore update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a chore",
		Long: `Update the given fields of a chore. Fields that are not given keep
their current values. --instruction, --item and --tag replace the whole list.

Examples:
  # Rename
  chores chore update 3 --name="Deep clean bathroom"

  # Make it monthly and replace its tags
  chores chore update 3 --every=1 --unit=month --tag=bathroom --tag=deep

  # Remove all tags
  chores chore update 3 --clear-tags
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(&updateHandler{}, parseUpdateFlags),
	}

	cmd.Flags().Int("id", 0, "Chore ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("description", "", "New description (markdown)")
	cmd.Flags().StringArray("instruction", nil, "Instruction step (repeatable, replaces all)")
	cmd.Flags().Bool("clear-instructions", false, "Remove all instructions")
	cmd.Flags().StringArray("item", nil, "Item needed (repeatable, replaces all)")
	cmd.Flags().Bool("clear-items", false, "Remove all items needed")
	cmd.Flags().String("status", "", "New status")
	cmd.Flags().Int("every", 0, "Repeat every N units")
	cmd.Flags().String("unit", "", "Frequency unit: day, week, month, year")
	cmd.Flags().String("importance", "", "Importance: a number or none, low, medium, high")
	cmd.Flags().StringArray("tag", nil, "Tag name (repeatable, replaces all, created if missing)")
	cmd.Flags().Bool("clear-tags", false, "Remove all tags")

	addOutputFlags(cmd)

	return cmd
}

// updateHandler implements handler.Handler for chore updates
type updateHandler struct{}

// Execute implements the Handler interface
func (h *updateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	choreID, err := args.ID("id")
	if err != nil {
		return nil, err
	}

	parser := handler.NewFlagParser(args.GetCmd())
	req := choreservice.UpdateChoreRequest{ID: choreID}

	if args.Has("name") {
		name := args.GetString("name", "")
		req.Name = &name
	}
	if args.Has("description") {
		description := args.GetString("description", "")
		req.Description = &description
	}
	if args.Has("instruction") || args.GetBool("clear-instructions") {
		instructions := args.GetStringArray("instruction", []string{})
		req.Instructions = &instructions
	}
	if args.Has("item") || args.GetBool("clear-items") {
		items := args.GetStringArray("item", []string{})
		req.ItemsNeeded = &items
	}
	if args.Has("status") {
		status := args.GetString("status", "")
		req.Status = &status
	}
	if args.Has("every") {
		every := args.GetInt("every", 0)
		req.Frequency = &every
	}
	if req.FrequencyType, err = parser.ParseFrequencyUnit("unit"); err != nil {
		return nil, err
	}
	if req.Importance, err = parser.ParseImportance("importance"); err != nil {
		return nil, err
	}

	if err := choreservice.ValidateUpdateChore(&req); err != nil {
		return nil, fmt.Errorf("chore update error: %w", err)
	}

	cliInstance, closeCLI, err := openCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer closeCLI()

	if args.Has("tag") || args.GetBool("clear-tags") {
		// Tags are only created for a chore that exists
		if _, err := cliInstance.App.ChoreService.GetChore(ctx, choreID); err != nil {
			return nil, fmt.Errorf("chore update error: %w", err)
		}
		tagIDs, err := resolveTagNames(ctx, cliInstance, args.GetStringArray("tag", nil))
		if err != nil {
			return nil, err
		}
		req.TagIDs = &tagIDs
	}

	chore, err := cliInstance.App.ChoreService.UpdateChore(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("chore update error: %w", err)
	}

	tags, err := cliInstance.App.TagService.GetTagsForChore(ctx, chore.ID)
	if err != nil {
		return nil, err
	}

	return &choreResult{Chore: chore, Tags: tags, action: "updated"}, nil
}

func parseUpdateFlags(cmd *cobra.Command) error {
	if _, _, err := handler.NewFlagParser(cmd).OutputFormats(); err != nil {
		return err
	}

	for _, name := range updateFlags {
		if cmd.Flags().Changed(name) {
			return nil
		}
	}
	return cli.Usagef("at least one field to update must be provided")
}
