package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/chores/internal/config/colors"
	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/recurrence"
)

// DueSoonDays is the days-left threshold under which a chore renders as due soon
const DueSoonDays = 2

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Every:", "Importance:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Instructions", "History"
	TagStyle      lipgloss.Style

	// Due state styles
	OverdueStyle lipgloss.Style
	DueSoonStyle lipgloss.Style
	OnTrackStyle lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	TagStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Tag)).
		Bold(true)

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Overdue))

	DueSoonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.DueSoon))

	OnTrackStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.OnTrack))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Error))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// DueStyle picks the due state style for a schedule
func DueStyle(s recurrence.Schedule) lipgloss.Style {
	switch {
	case s.Overdue():
		return OverdueStyle
	case s.DaysLeft < DueSoonDays:
		return DueSoonStyle
	default:
		return OnTrackStyle
	}
}

// RenderDue renders text in the due state style of s
func RenderDue(s recurrence.Schedule, text string) string {
	return DueStyle(s).Render(text)
}

// RenderTagChip renders a tag as "#name"
func RenderTagChip(tag *models.Tag) string {
	return TagStyle.Render("#" + tag.Name)
}

// RenderTagChips renders tags separated by spaces
func RenderTagChips(tags []*models.Tag) string {
	out := ""
	for i, tag := range tags {
		if i > 0 {
			out += " "
		}
		out += RenderTagChip(tag)
	}
	return out
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
