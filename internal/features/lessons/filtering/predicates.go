package lessons_filtering

import (
	"strings"

	lessons_core "lessonbook/internal/features/lessons/core"
	time_parser "lessonbook/internal/util/time"

	"github.com/google/uuid"
)

type lessonPredicate func(row *lessons_core.LessonRow) bool

// compilePredicates turns the criteria into one predicate per present
// axis. The result set is the rows matching ALL predicates.
//
// Invalid enum values compile to a predicate that matches nothing, so
// the caller gets an empty result instead of an error. Unparseable
// dates compile to no predicate at all: the clause is silently ignored.
func compilePredicates(criteria *FilterCriteriaDTO) []lessonPredicate {
	predicates := make([]lessonPredicate, 0)

	if criteria.ProjectID != "" {
		if projectID, err := uuid.Parse(criteria.ProjectID); err == nil {
			predicates = append(predicates, func(row *lessons_core.LessonRow) bool {
				return row.ProjectID == projectID
			})
		} else {
			predicates = append(predicates, matchNothing)
		}
	}

	if criteria.CategoryID != "" {
		if categoryID, err := uuid.Parse(criteria.CategoryID); err == nil {
			predicates = append(predicates, func(row *lessons_core.LessonRow) bool {
				return row.CategoryID != nil && *row.CategoryID == categoryID
			})
		} else {
			predicates = append(predicates, matchNothing)
		}
	}

	if criteria.Status != "" {
		status := lessons_core.LessonStatus(strings.ToUpper(criteria.Status))
		if status.IsValid() {
			predicates = append(predicates, func(row *lessons_core.LessonRow) bool {
				return row.Status == status
			})
		} else {
			predicates = append(predicates, matchNothing)
		}
	}

	if criteria.Impact != "" {
		impact := lessons_core.LessonImpact(strings.ToUpper(criteria.Impact))
		if impact.IsValid() {
			predicates = append(predicates, func(row *lessons_core.LessonRow) bool {
				return row.Impact == impact
			})
		} else {
			predicates = append(predicates, matchNothing)
		}
	}

	if criteria.SubmittedBy != "" {
		if submittedBy, err := uuid.Parse(criteria.SubmittedBy); err == nil {
			predicates = append(predicates, func(row *lessons_core.LessonRow) bool {
				return row.SubmittedBy == submittedBy
			})
		} else {
			predicates = append(predicates, matchNothing)
		}
	}

	if criteria.Search != "" {
		needle := strings.ToLower(criteria.Search)
		predicates = append(predicates, func(row *lessons_core.LessonRow) bool {
			return strings.Contains(strings.ToLower(row.Title), needle)
		})
	}

	if criteria.FromDate != "" {
		if from, ok := time_parser.ParseDate(criteria.FromDate); ok {
			start := time_parser.StartOfDay(from)
			predicates = append(predicates, func(row *lessons_core.LessonRow) bool {
				return !row.DateIdentified.Before(start)
			})
		}
	}

	if criteria.ToDate != "" {
		if to, ok := time_parser.ParseDate(criteria.ToDate); ok {
			end := time_parser.EndOfDay(to)
			predicates = append(predicates, func(row *lessons_core.LessonRow) bool {
				return !row.DateIdentified.After(end)
			})
		}
	}

	if criteria.IsStarred {
		predicates = append(predicates, func(row *lessons_core.LessonRow) bool {
			return row.IsStarred
		})
	}

	return predicates
}

func matchNothing(_ *lessons_core.LessonRow) bool {
	return false
}

func applyPredicates(rows []lessons_core.LessonRow, predicates []lessonPredicate) []lessons_core.LessonRow {
	if len(predicates) == 0 {
		return rows
	}

	filtered := make([]lessons_core.LessonRow, 0, len(rows))

rowLoop:
	for i := range rows {
		for _, predicate := range predicates {
			if !predicate(&rows[i]) {
				continue rowLoop
			}
		}
		filtered = append(filtered, rows[i])
	}

	return filtered
}
