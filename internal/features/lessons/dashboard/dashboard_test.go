package lessons_dashboard

import (
	"testing"
	"time"

	lessons_core "lessonbook/internal/features/lessons/core"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDashboardRow(index int, mutate func(row *lessons_core.LessonRow)) lessons_core.LessonRow {
	row := lessons_core.LessonRow{
		ID:          uuid.New(),
		ProjectID:   uuid.New(),
		Title:       "Lesson",
		Status:      lessons_core.LessonStatusNew,
		Impact:      lessons_core.LessonImpactLow,
		SubmittedBy: uuid.New(),
		CreatedAt:   time.Now().UTC().Add(-time.Duration(index) * time.Hour),
	}

	if mutate != nil {
		mutate(&row)
	}

	return row
}

func Test_BuildDashboard_LatestIsPrefixOfFive(t *testing.T) {
	rows := make([]lessons_core.LessonRow, 0, 7)
	for i := 0; i < 7; i++ {
		rows = append(rows, makeDashboardRow(i, nil))
	}

	dashboard := buildDashboard(rows)

	assert.Equal(t, 7, dashboard.TotalLessons)
	require.Len(t, dashboard.LatestLessons, 5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, rows[i].ID, dashboard.LatestLessons[i].ID)
	}
}

func Test_BuildDashboard_CountsByStatus(t *testing.T) {
	rows := []lessons_core.LessonRow{
		makeDashboardRow(0, nil),
		makeDashboardRow(1, nil),
		makeDashboardRow(2, func(row *lessons_core.LessonRow) {
			row.Status = lessons_core.LessonStatusImplemented
		}),
	}

	dashboard := buildDashboard(rows)

	counts := make(map[lessons_core.LessonStatus]int)
	for _, entry := range dashboard.ByStatus {
		counts[entry.Status] = entry.Count
	}

	assert.Equal(t, 2, counts[lessons_core.LessonStatusNew])
	assert.Equal(t, 1, counts[lessons_core.LessonStatusImplemented])
	assert.Equal(t, 0, counts[lessons_core.LessonStatusArchived])
}

func Test_BuildDashboard_CountsByCategory_BucketsNilAsUncategorized(t *testing.T) {
	planning := "Planning"
	rows := []lessons_core.LessonRow{
		makeDashboardRow(0, func(row *lessons_core.LessonRow) { row.CategoryName = &planning }),
		makeDashboardRow(1, func(row *lessons_core.LessonRow) { row.CategoryName = &planning }),
		makeDashboardRow(2, nil),
	}

	dashboard := buildDashboard(rows)

	counts := make(map[string]int)
	for _, entry := range dashboard.ByCategory {
		counts[entry.CategoryName] = entry.Count
	}

	assert.Equal(t, 2, counts["Planning"])
	assert.Equal(t, 1, counts["Uncategorized"])
}

func Test_BuildDashboard_StarredListOnlyContainsStarredRows(t *testing.T) {
	rows := []lessons_core.LessonRow{
		makeDashboardRow(0, func(row *lessons_core.LessonRow) { row.IsStarred = true }),
		makeDashboardRow(1, nil),
		makeDashboardRow(2, func(row *lessons_core.LessonRow) { row.IsStarred = true }),
	}

	dashboard := buildDashboard(rows)

	require.Len(t, dashboard.StarredLessons, 2)
	for _, lesson := range dashboard.StarredLessons {
		assert.True(t, lesson.IsStarred)
	}
}

func Test_BuildDashboard_EmptyInput_ProducesZeroedSummary(t *testing.T) {
	dashboard := buildDashboard([]lessons_core.LessonRow{})

	assert.Equal(t, 0, dashboard.TotalLessons)
	assert.Empty(t, dashboard.LatestLessons)
	assert.Empty(t, dashboard.StarredLessons)
	assert.Empty(t, dashboard.ByCategory)
	assert.Len(t, dashboard.ByStatus, len(lessons_core.AllLessonStatuses()))
}
