package chore

import (
	"cmp"
	"slices"

	"github.com/thenoetrevino/chores/internal/models"
)

// sortSummaries orders summaries by key, breaking ties by importance and then
// name in the same direction, and finally by ascending id
func sortSummaries(summaries []*ChoreSummary, key models.SortKey, order models.SortOrder) {
	slices.SortStableFunc(summaries, func(a, b *ChoreSummary) int {
		c := compareBy(a, b, key)
		if c == 0 && key != models.SortByImportance {
			c = cmp.Compare(a.Importance, b.Importance)
		}
		if c == 0 && key != models.SortByName {
			c = cmp.Compare(a.Name, b.Name)
		}
		if order == models.SortDesc {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		return c
	})
}

func compareBy(a, b *ChoreSummary, key models.SortKey) int {
	switch key {
	case models.SortByImportance:
		return cmp.Compare(a.Importance, b.Importance)
	case models.SortByName:
		return cmp.Compare(a.Name, b.Name)
	default:
		return cmp.Compare(a.Schedule.DaysLeft, b.Schedule.DaysLeft)
	}
}
