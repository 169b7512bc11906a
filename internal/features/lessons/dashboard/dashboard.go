package lessons_dashboard

import (
	lessons_core "lessonbook/internal/features/lessons/core"
	projects_services "lessonbook/internal/features/projects/services"
	users_models "lessonbook/internal/features/users/models"
)

const latestLessonsLimit = 5

type StatusCountDTO struct {
	Status lessons_core.LessonStatus `json:"status"`
	Label  string                    `json:"label"`
	Count  int                       `json:"count"`
}

type CategoryCountDTO struct {
	CategoryName string `json:"categoryName"`
	Count        int    `json:"count"`
}

type DashboardResponseDTO struct {
	TotalLessons   int                      `json:"totalLessons"`
	LatestLessons  []lessons_core.LessonRow `json:"latestLessons"`
	StarredLessons []lessons_core.LessonRow `json:"starredLessons"`
	ByStatus       []StatusCountDTO         `json:"byStatus"`
	ByCategory     []CategoryCountDTO       `json:"byCategory"`
}

type DashboardService struct {
	lessonRepository *lessons_core.LessonRepository
	projectService   *projects_services.ProjectService
}

// GetDashboard summarizes the lessons the user can see: a latest-5
// prefix of the created_at descending order, totals, per-status and
// per-category counts, and the user's starred lessons.
func (s *DashboardService) GetDashboard(user *users_models.User) (*DashboardResponseDTO, error) {
	visibleProjectIDs, err := s.projectService.GetVisibleProjectIDs(user)
	if err != nil {
		return nil, err
	}

	rows, err := s.lessonRepository.GetLessonRowsByProjectIDs(visibleProjectIDs, user.ID)
	if err != nil {
		return nil, err
	}

	return buildDashboard(rows), nil
}

func buildDashboard(rows []lessons_core.LessonRow) *DashboardResponseDTO {
	response := &DashboardResponseDTO{
		TotalLessons:   len(rows),
		LatestLessons:  make([]lessons_core.LessonRow, 0, latestLessonsLimit),
		StarredLessons: make([]lessons_core.LessonRow, 0),
		ByStatus:       make([]StatusCountDTO, 0),
		ByCategory:     make([]CategoryCountDTO, 0),
	}

	statusCounts := make(map[lessons_core.LessonStatus]int)
	categoryCounts := make(map[string]int)
	categoryOrder := make([]string, 0)

	for i := range rows {
		row := rows[i]

		if len(response.LatestLessons) < latestLessonsLimit {
			response.LatestLessons = append(response.LatestLessons, row)
		}
		if row.IsStarred {
			response.StarredLessons = append(response.StarredLessons, row)
		}

		statusCounts[row.Status]++

		name := "Uncategorized"
		if row.CategoryName != nil {
			name = *row.CategoryName
		}
		if _, seen := categoryCounts[name]; !seen {
			categoryOrder = append(categoryOrder, name)
		}
		categoryCounts[name]++
	}

	for _, status := range lessons_core.AllLessonStatuses() {
		response.ByStatus = append(response.ByStatus, StatusCountDTO{
			Status: status,
			Label:  status.Label(),
			Count:  statusCounts[status],
		})
	}

	for _, name := range categoryOrder {
		response.ByCategory = append(response.ByCategory, CategoryCountDTO{
			CategoryName: name,
			Count:        categoryCounts[name],
		})
	}

	return response
}
