package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/recurrence"
)

// ErrUnparseableTime is returned when a --at value matches no known format
var ErrUnparseableTime = errors.New("could not understand time")

var timeParser = newTimeParser()

func newTimeParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// ParseCompletedAt turns a --at value into a timestamp. It accepts RFC3339,
// epoch seconds, or natural language relative to now ("yesterday at 6pm").
// An empty value returns the zero time, meaning "now" to the chore service.
func ParseCompletedAt(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	if secs, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}

	result, err := timeParser.Parse(value, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrUnparseableTime, value, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrUnparseableTime, value)
	}
	return result.Time, nil
}

// ParseImportance maps an importance flag to its integer level. Numbers are
// taken as-is; none, low, medium and high map to the picker levels.
func ParseImportance(value string) (int, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}

	levels := map[string]int{
		"none":   models.ImportanceNone,
		"low":    models.ImportanceLow,
		"medium": models.ImportanceMedium,
		"high":   models.ImportanceHigh,
	}
	level, ok := levels[value]
	if !ok {
		return 0, fmt.Errorf("invalid importance '%s' (must be a number or: none, low, medium, high)", value)
	}
	return level, nil
}

// ImportanceName returns the picker name for an importance level, or the
// number itself for levels outside the picker
func ImportanceName(level int) string {
	switch level {
	case models.ImportanceNone:
		return "none"
	case models.ImportanceLow:
		return "low"
	case models.ImportanceMedium:
		return "medium"
	case models.ImportanceHigh:
		return "high"
	}
	return strconv.Itoa(level)
}

// FormatDue describes when a chore is next due relative to now,
// e.g. "3 days from now" or "2 weeks ago"
func FormatDue(s recurrence.Schedule, now time.Time) string {
	return humanize.RelTime(s.NextDue, now, "ago", "from now")
}

// FormatDaysLeft renders the days-left value rounded to one decimal place
func FormatDaysLeft(daysLeft float64) string {
	rounded := math.Round(daysLeft*10) / 10
	if rounded == 0 {
		rounded = 0 // normalize -0
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}

// FormatCompleted renders a completion timestamp in loc with its age
func FormatCompleted(e *models.Entry, now time.Time, loc *time.Location) string {
	at := e.CompletedAt().In(loc)
	return fmt.Sprintf("%s (%s)", at.Format("2006-01-02 15:04"), humanize.RelTime(at, now, "ago", "from now"))
}

// FormatFrequency renders "every 2 weeks" style text
func FormatFrequency(frequency int, unit models.FrequencyUnit) string {
	if frequency == 1 {
		return "every " + unit.String()
	}
	return fmt.Sprintf("every %d %ss", frequency, unit)
}
