package lessons_filtering

import (
	"testing"
	"time"

	lessons_core "lessonbook/internal/features/lessons/core"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func makeRow(mutate func(row *lessons_core.LessonRow)) lessons_core.LessonRow {
	row := lessons_core.LessonRow{
		ID:             uuid.New(),
		ProjectID:      uuid.New(),
		Title:          "Late vendor deliveries",
		DateIdentified: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Impact:         lessons_core.LessonImpactMedium,
		Status:         lessons_core.LessonStatusNew,
		SubmittedBy:    uuid.New(),
		CreatedAt:      time.Now().UTC(),
	}

	if mutate != nil {
		mutate(&row)
	}

	return row
}

func Test_ApplyPredicates_WithNoCriteria_ReturnsAllRows(t *testing.T) {
	rows := []lessons_core.LessonRow{makeRow(nil), makeRow(nil), makeRow(nil)}

	filtered := applyPredicates(rows, compilePredicates(&FilterCriteriaDTO{}))

	assert.Len(t, filtered, 3)
}

func Test_ApplyPredicates_ByProject_KeepsOnlyThatProject(t *testing.T) {
	projectID := uuid.New()
	rows := []lessons_core.LessonRow{
		makeRow(func(row *lessons_core.LessonRow) { row.ProjectID = projectID }),
		makeRow(nil),
	}

	criteria := &FilterCriteriaDTO{ProjectID: projectID.String()}
	filtered := applyPredicates(rows, compilePredicates(criteria))

	assert.Len(t, filtered, 1)
	assert.Equal(t, projectID, filtered[0].ProjectID)
}

func Test_ApplyPredicates_ByCategory_SkipsUncategorizedRows(t *testing.T) {
	categoryID := uuid.New()
	rows := []lessons_core.LessonRow{
		makeRow(func(row *lessons_core.LessonRow) { row.CategoryID = &categoryID }),
		makeRow(nil),
	}

	criteria := &FilterCriteriaDTO{CategoryID: categoryID.String()}
	filtered := applyPredicates(rows, compilePredicates(criteria))

	assert.Len(t, filtered, 1)
}

func Test_ApplyPredicates_WithInvalidStatus_ReturnsEmpty(t *testing.T) {
	rows := []lessons_core.LessonRow{makeRow(nil), makeRow(nil)}

	criteria := &FilterCriteriaDTO{Status: "NOT_A_STATUS"}
	filtered := applyPredicates(rows, compilePredicates(criteria))

	assert.Empty(t, filtered)
}

func Test_ApplyPredicates_WithLowercaseStatus_StillMatches(t *testing.T) {
	rows := []lessons_core.LessonRow{
		makeRow(func(row *lessons_core.LessonRow) { row.Status = lessons_core.LessonStatusInProgress }),
		makeRow(nil),
	}

	criteria := &FilterCriteriaDTO{Status: "in_progress"}
	filtered := applyPredicates(rows, compilePredicates(criteria))

	assert.Len(t, filtered, 1)
	assert.Equal(t, lessons_core.LessonStatusInProgress, filtered[0].Status)
}

func Test_ApplyPredicates_WithInvalidImpact_ReturnsEmpty(t *testing.T) {
	rows := []lessons_core.LessonRow{makeRow(nil)}

	criteria := &FilterCriteriaDTO{Impact: "CATASTROPHIC"}
	filtered := applyPredicates(rows, compilePredicates(criteria))

	assert.Empty(t, filtered)
}

func Test_ApplyPredicates_WithUnparseableDates_IgnoresDateClauses(t *testing.T) {
	rows := []lessons_core.LessonRow{makeRow(nil), makeRow(nil)}

	criteria := &FilterCriteriaDTO{FromDate: "yesterday", ToDate: "03/15/2024"}
	filtered := applyPredicates(rows, compilePredicates(criteria))

	assert.Len(t, filtered, 2)
}

func Test_ApplyPredicates_DateRange_IsInclusive(t *testing.T) {
	rows := []lessons_core.LessonRow{
		makeRow(func(row *lessons_core.LessonRow) {
			row.DateIdentified = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		}),
		makeRow(func(row *lessons_core.LessonRow) {
			row.DateIdentified = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		}),
		makeRow(func(row *lessons_core.LessonRow) {
			row.DateIdentified = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
		}),
	}

	criteria := &FilterCriteriaDTO{FromDate: "2024-06-01", ToDate: "2024-06-15"}
	filtered := applyPredicates(rows, compilePredicates(criteria))

	assert.Len(t, filtered, 2)
}

func Test_ApplyPredicates_BySearch_MatchesTitleCaseInsensitive(t *testing.T) {
	rows := []lessons_core.LessonRow{
		makeRow(func(row *lessons_core.LessonRow) { row.Title = "Vendor onboarding took too long" }),
		makeRow(func(row *lessons_core.LessonRow) { row.Title = "Requirements churn" }),
	}

	criteria := &FilterCriteriaDTO{Search: "VENDOR"}
	filtered := applyPredicates(rows, compilePredicates(criteria))

	assert.Len(t, filtered, 1)
	assert.Contains(t, filtered[0].Title, "Vendor")
}

func Test_ApplyPredicates_StarredTrue_KeepsOnlyStarredRows(t *testing.T) {
	rows := []lessons_core.LessonRow{
		makeRow(func(row *lessons_core.LessonRow) { row.IsStarred = true }),
		makeRow(nil),
	}

	criteria := &FilterCriteriaDTO{IsStarred: true}
	filtered := applyPredicates(rows, compilePredicates(criteria))

	assert.Len(t, filtered, 1)
	assert.True(t, filtered[0].IsStarred)
}

func Test_ApplyPredicates_StarredFalse_IsNoOp(t *testing.T) {
	rows := []lessons_core.LessonRow{
		makeRow(func(row *lessons_core.LessonRow) { row.IsStarred = true }),
		makeRow(nil),
	}

	criteria := &FilterCriteriaDTO{IsStarred: false}
	filtered := applyPredicates(rows, compilePredicates(criteria))

	assert.Len(t, filtered, 2)
}

func Test_ApplyPredicates_CombinedCriteria_AreANDed(t *testing.T) {
	projectID := uuid.New()
	rows := []lessons_core.LessonRow{
		makeRow(func(row *lessons_core.LessonRow) {
			row.ProjectID = projectID
			row.Impact = lessons_core.LessonImpactHigh
		}),
		makeRow(func(row *lessons_core.LessonRow) { row.ProjectID = projectID }),
		makeRow(func(row *lessons_core.LessonRow) { row.Impact = lessons_core.LessonImpactHigh }),
	}

	criteria := &FilterCriteriaDTO{ProjectID: projectID.String(), Impact: "HIGH"}
	filtered := applyPredicates(rows, compilePredicates(criteria))

	assert.Len(t, filtered, 1)
}

func Test_ApplyPredicates_WithMalformedProjectID_ReturnsEmpty(t *testing.T) {
	rows := []lessons_core.LessonRow{makeRow(nil)}

	criteria := &FilterCriteriaDTO{ProjectID: "not-a-uuid"}
	filtered := applyPredicates(rows, compilePredicates(criteria))

	assert.Empty(t, filtered)
}
