package lessons_filtering

import (
	"lessonbook/internal/features/categories"
	lessons_core "lessonbook/internal/features/lessons/core"
	projects_services "lessonbook/internal/features/projects/services"
	users_models "lessonbook/internal/features/users/models"
)

type FilterService struct {
	lessonRepository *lessons_core.LessonRepository
	projectService   *projects_services.ProjectService
	categoryService  *categories.CategoryService
}

// GetLessons returns the lessons visible to the user, narrowed by the
// criteria. Visibility is applied first: the candidate set is loaded
// only from the user's visible projects, so a criteria projectId the
// user cannot see simply matches nothing.
func (s *FilterService) GetLessons(
	criteria *FilterCriteriaDTO,
	user *users_models.User,
) (*lessons_core.ListLessonsResponseDTO, error) {
	visibleProjectIDs, err := s.projectService.GetVisibleProjectIDs(user)
	if err != nil {
		return nil, err
	}

	rows, err := s.lessonRepository.GetLessonRowsByProjectIDs(visibleProjectIDs, user.ID)
	if err != nil {
		return nil, err
	}

	filtered := applyPredicates(rows, compilePredicates(criteria))

	return &lessons_core.ListLessonsResponseDTO{
		Lessons: filtered,
		Total:   len(filtered),
	}, nil
}

// GetFilterOptions returns the selectable values for each filter axis,
// scoped to what the user can see.
func (s *FilterService) GetFilterOptions(user *users_models.User) (*FilterOptionsResponseDTO, error) {
	projects, err := s.projectService.GetUserProjects(user)
	if err != nil {
		return nil, err
	}

	categoryList, err := s.categoryService.GetCategories()
	if err != nil {
		return nil, err
	}

	response := &FilterOptionsResponseDTO{
		Statuses:   make([]FilterOptionDTO, 0),
		Impacts:    make([]FilterOptionDTO, 0),
		Projects:   make([]ProjectOptionDTO, 0, len(projects.Projects)),
		Categories: make([]CategoryOptionDTO, 0, len(categoryList)),
	}

	for _, status := range lessons_core.AllLessonStatuses() {
		response.Statuses = append(response.Statuses, FilterOptionDTO{
			Value: string(status),
			Label: status.Label(),
		})
	}

	for _, impact := range lessons_core.AllLessonImpacts() {
		response.Impacts = append(response.Impacts, FilterOptionDTO{
			Value: string(impact),
			Label: impact.Label(),
		})
	}

	for _, project := range projects.Projects {
		response.Projects = append(response.Projects, ProjectOptionDTO{
			ID:   project.ID,
			Name: project.Name,
		})
	}

	for _, category := range categoryList {
		response.Categories = append(response.Categories, CategoryOptionDTO{
			ID:   category.ID,
			Name: category.Name,
		})
	}

	return response, nil
}
