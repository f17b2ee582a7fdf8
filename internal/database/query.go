package database

import (
	"strings"
)

// ChoreFilter selects chores for ListChores. The zero value matches everything.
type ChoreFilter struct {
	// MinImportance and MaxImportance bound importance inclusively; nil is unbounded
	MinImportance *int
	MaxImportance *int

	// TagIDs matches chores linked to at least one of the tags; empty disables the filter
	TagIDs []int

	// NameFilter is a case-insensitive substring of the chore name; empty disables the filter
	NameFilter string
}

// buildChoreQuery composes the parameterized listing query for filter.
// Entries are pre-aggregated per chore so the result has exactly one row per chore.
func buildChoreQuery(filter ChoreFilter) (string, []any) {
	var sb strings.Builder
	var args []any

	sb.WriteString(`SELECT ` + choreColumns + `, COALESCE(e.last_completed, 0) AS last_completed
		FROM chores c
		LEFT JOIN (
			SELECT chore_id, MAX(date_completed) AS last_completed
			FROM entries
			GROUP BY chore_id
		) e ON e.chore_id = c.id`)

	var conds []string

	if filter.MinImportance != nil {
		conds = append(conds, `COALESCE(c.importance, 0) >= ?`)
		args = append(args, *filter.MinImportance)
	}
	if filter.MaxImportance != nil {
		conds = append(conds, `COALESCE(c.importance, 0) <= ?`)
		args = append(args, *filter.MaxImportance)
	}

	if len(filter.TagIDs) > 0 {
		conds = append(conds, `EXISTS (
			SELECT 1 FROM chore_tags ct
			WHERE ct.chore_id = c.id AND ct.tag_id IN (`+placeholders(len(filter.TagIDs))+`)
		)`)
		args = append(args, intArgs(filter.TagIDs)...)
	}

	if filter.NameFilter != "" {
		conds = append(conds, foldFunc+`(c.name) LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(strings.ToLower(filter.NameFilter))+"%")
	}

	if len(conds) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(conds, "\n\t\t  AND "))
	}

	sb.WriteString("\n\t\tORDER BY c.id")

	return sb.String(), args
}
