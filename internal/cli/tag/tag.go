// Package tag holds all cli commands related to tags
// e.g., chores tag ...
package tag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/styles"
	"github.com/thenoetrevino/chores/internal/models"
)

// TagCmd returns the tag parent command
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(AttachCmd())
	cmd.AddCommand(DetachCmd())

	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func openCLI(ctx context.Context) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("initialization error: %w", err)
	}
	closeFn := func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}
	return cliInstance, closeFn, nil
}

// tagResult is returned by commands that create or modify a tag
type tagResult struct {
	*models.Tag

	message string
}

// GetID implements the GetID interface for quiet mode output
func (r *tagResult) GetID() int {
	return r.ID
}

func (r *tagResult) Human() string {
	return fmt.Sprintf("%s %s\n", styles.SuccessStyle.Render("✓"), r.message)
}

// tagListResult is returned by tag list
type tagListResult struct {
	Tags []*models.Tag `json:"tags"`
}

// GetIDs implements the GetIDs interface for quiet mode output
func (r *tagListResult) GetIDs() []int {
	ids := make([]int, len(r.Tags))
	for i, t := range r.Tags {
		ids[i] = t.ID
	}
	return ids
}

func (r *tagListResult) Human() string {
	if len(r.Tags) == 0 {
		return "No tags found\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "  %-4s %s\n", "ID", "Name")
	b.WriteString("  " + strings.Repeat("-", 30) + "\n")
	for _, t := range r.Tags {
		fmt.Fprintf(&b, "  %-4d %s\n", t.ID, styles.RenderTagChip(t))
	}
	return b.String()
}

// linkResult is returned by attach and detach
type linkResult struct {
	ChoreID int `json:"chore_id"`
	TagID   int `json:"tag_id"`

	message string
}

func (r *linkResult) Human() string {
	return fmt.Sprintf("%s %s\n", styles.SuccessStyle.Render("✓"), r.message)
}
