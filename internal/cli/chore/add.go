package chore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/models"
	choreservice "github.com/thenoetrevino/chores/internal/services/chore"
)

// AddCmd returns the chore add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new chore",
		Long: `Create a new recurring chore.

Instructions and items keep the order they are given in. Tags are given by
name; tags that don't exist yet are created.

Examples:
  # Weekly chore with two steps
  chores chore add --name="Clean bathroom" --every=1 --unit=week \
    --instruction="Scrub sink" --instruction="Mop floor" --tag=bathroom

  # JSON output for agents
  chores chore add --name="Water plants" --every=3 --json

  # Quiet mode for bash capture
  CHORE_ID=$(chores chore add --name="Water plants" --quiet)
`,
		RunE: handler.Command(&addHandler{}, parseAddFlags),
	}

	// Required flags
	cmd.Flags().String("name", "", "Chore name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Chore description (markdown)")
	cmd.Flags().StringArray("instruction", nil, "Instruction step (repeatable, kept in order)")
	cmd.Flags().StringArray("item", nil, "Item needed (repeatable)")
	cmd.Flags().Int("every", 1, "Repeat every N units")
	cmd.Flags().String("unit", string(models.DefaultFrequencyUnit), "Frequency unit: day, week, month, year")
	cmd.Flags().String("importance", "0", "Importance: a number or none, low, medium, high")
	cmd.Flags().String("status", models.DefaultStatus, "Chore status")
	cmd.Flags().StringArray("tag", nil, "Tag name (repeatable, created if missing)")

	addOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for chore creation
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cmd := args.GetCmd()
	parser := handler.NewFlagParser(cmd)

	name, err := parser.ParseString("name")
	if err != nil {
		return nil, err
	}
	importance, err := parser.ParseImportance("importance")
	if err != nil {
		return nil, err
	}
	unit, err := parser.ParseFrequencyUnit("unit")
	if err != nil {
		return nil, err
	}

	req := choreservice.CreateChoreRequest{
		Name:         name,
		Description:  args.GetString("description", ""),
		Instructions: args.GetStringArray("instruction", nil),
		ItemsNeeded:  args.GetStringArray("item", nil),
		Status:       args.GetString("status", models.DefaultStatus),
		Frequency:    args.GetInt("every", 1),
	}
	if unit != nil {
		req.FrequencyType = *unit
	}
	if importance != nil {
		req.Importance = *importance
	}

	if err := choreservice.ValidateCreateChore(&req); err != nil {
		return nil, fmt.Errorf("chore creation error: %w", err)
	}

	cliInstance, closeCLI, err := openCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer closeCLI()

	req.TagIDs, err = resolveTagNames(ctx, cliInstance, args.GetStringArray("tag", nil))
	if err != nil {
		return nil, err
	}

	chore, err := cliInstance.App.ChoreService.CreateChore(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("chore creation error: %w", err)
	}

	tags, err := cliInstance.App.TagService.GetTagsForChore(ctx, chore.ID)
	if err != nil {
		return nil, err
	}

	return &choreResult{Chore: chore, Tags: tags, action: "created"}, nil
}

func parseAddFlags(cmd *cobra.Command) error {
	if _, _, err := handler.NewFlagParser(cmd).OutputFormats(); err != nil {
		return err
	}
	return nil
}
