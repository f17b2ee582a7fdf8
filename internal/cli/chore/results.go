package chore

import (
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/styles"
	"github.com/thenoetrevino/chores/internal/models"
	choreservice "github.com/thenoetrevino/chores/internal/services/chore"
)

// choreResult is returned by commands that create or modify a chore
type choreResult struct {
	*models.Chore
	Tags []*models.Tag `json:"tags"`

	action string
}

// GetID implements the GetID interface for quiet mode output
func (r *choreResult) GetID() int {
	return r.ID
}

func (r *choreResult) Human() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Chore '%s' %s (ID: %d)\n", styles.SuccessStyle.Render("✓"), r.Name, r.action, r.ID)
	fmt.Fprintf(&b, "  Every: %s\n", cli.FormatFrequency(r.Frequency, r.FrequencyType))
	fmt.Fprintf(&b, "  Importance: %s\n", cli.ImportanceName(r.Importance))
	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "  Tags: %s\n", styles.RenderTagChips(r.Tags))
	}
	if len(r.Instructions) > 0 {
		b.WriteString("  Instructions:\n")
		for i, step := range r.Instructions {
			fmt.Fprintf(&b, "    %d. %s\n", i+1, step)
		}
	}
	return b.String()
}

// choreListResult is returned by chore list
type choreListResult struct {
	Chores []*choreservice.ChoreSummary `json:"chores"`

	now time.Time
}

// GetIDs implements the GetIDs interface for quiet mode output
func (r *choreListResult) GetIDs() []int {
	ids := make([]int, len(r.Chores))
	for i, c := range r.Chores {
		ids[i] = c.ID
	}
	return ids
}

func (r *choreListResult) Human() string {
	if len(r.Chores) == 0 {
		return "No chores found\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %-4s %-30s %-10s %-16s %s\n", "ID", "Name", "Importance", "Every", "Due")
	b.WriteString("  " + strings.Repeat("-", 78) + "\n")
	for _, c := range r.Chores {
		due := styles.RenderDue(c.Schedule, cli.FormatDue(c.Schedule, r.now))
		fmt.Fprintf(&b, "  %-4d %-30s %-10s %-16s %s",
			c.ID, c.Name, cli.ImportanceName(c.Importance),
			cli.FormatFrequency(c.Frequency, c.FrequencyType), due)
		if len(c.Tags) > 0 {
			b.WriteString("  " + styles.RenderTagChips(c.Tags))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// choreDetailResult is returned by chore show
type choreDetailResult struct {
	*choreservice.ChoreDetail

	now time.Time
	loc *time.Location
}

// GetID implements the GetID interface for quiet mode output
func (r *choreDetailResult) GetID() int {
	return r.ID
}

// historyPreview is the number of completions chore show lists
const historyPreview = 5

func (r *choreDetailResult) Human() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d %s", r.ID, r.Name)) + "\n")
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%s · %s", r.Status, cli.FormatFrequency(r.Frequency, r.FrequencyType))) + "\n\n")

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render(label+":"), styles.ValueStyle.Render(value))
	}
	field("Importance", cli.ImportanceName(r.Importance))
	if r.Schedule.LastCompleted == 0 {
		field("Last done", "never")
	} else {
		field("Last done", cli.FormatCompleted(&models.Entry{DateCompleted: r.Schedule.LastCompleted}, r.now, r.loc))
	}
	fmt.Fprintf(&b, "%s %s (%s days left)\n",
		styles.LabelStyle.Render("Due:"),
		styles.RenderDue(r.Schedule, cli.FormatDue(r.Schedule, r.now)),
		cli.FormatDaysLeft(r.Schedule.DaysLeft))
	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("Tags:"), styles.RenderTagChips(r.Tags))
	}

	if r.Description != "" {
		b.WriteString(styles.SectionStyle.Render("Description") + "\n")
		b.WriteString(cli.RenderMarkdown(r.Description, styles.CardWidth))
	}

	if len(r.Instructions) > 0 {
		b.WriteString(styles.SectionStyle.Render("Instructions") + "\n")
		b.WriteString(cli.RenderMarkdown(numberedList(r.Instructions), styles.CardWidth))
	}

	if len(r.ItemsNeeded) > 0 {
		b.WriteString(styles.SectionStyle.Render("Items needed") + "\n")
		b.WriteString(cli.RenderMarkdown(bulletList(r.ItemsNeeded), styles.CardWidth))
	}

	if len(r.Entries) > 0 {
		b.WriteString(styles.SectionStyle.Render("History") + "\n")
		for i, e := range r.Entries {
			if i == historyPreview {
				fmt.Fprintf(&b, "  … %d more\n", len(r.Entries)-historyPreview)
				break
			}
			fmt.Fprintf(&b, "  %s\n", cli.FormatCompleted(e, r.now, r.loc))
		}
	}

	return b.String()
}

// completionResult is returned by chore done
type completionResult struct {
	Entry *models.Entry              `json:"entry"`
	Chore *choreservice.ChoreSummary `json:"chore"`

	now time.Time
	loc *time.Location
}

// GetID implements the GetID interface for quiet mode output
func (r *completionResult) GetID() int {
	return r.Entry.ID
}

func (r *completionResult) Human() string {
	return fmt.Sprintf("%s Chore '%s' completed at %s\n  Next due: %s\n",
		styles.SuccessStyle.Render("✓"),
		r.Chore.Name,
		cli.FormatCompleted(r.Entry, r.now, r.loc),
		styles.RenderDue(r.Chore.Schedule, cli.FormatDue(r.Chore.Schedule, r.now)))
}

// historyResult is returned by chore history
type historyResult struct {
	ChoreID int             `json:"chore_id"`
	Entries []*models.Entry `json:"entries"`

	name string
	now  time.Time
	loc  *time.Location
}

// GetIDs implements the GetIDs interface for quiet mode output
func (r *historyResult) GetIDs() []int {
	ids := make([]int, len(r.Entries))
	for i, e := range r.Entries {
		ids[i] = e.ID
	}
	return ids
}

func (r *historyResult) Human() string {
	if len(r.Entries) == 0 {
		return fmt.Sprintf("Chore '%s' has never been completed\n", r.name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Completions of '%s':\n", r.name)
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "  %-4d %s\n", e.ID, cli.FormatCompleted(e, r.now, r.loc))
	}
	return b.String()
}

// messageResult is returned by commands whose only output is a confirmation
type messageResult struct {
	ChoreID int    `json:"chore_id"`
	Message string `json:"message"`
}

func (r *messageResult) Human() string {
	return styles.SuccessStyle.Render("✓") + " " + r.Message + "\n"
}

func numberedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return b.String()
}

func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}
