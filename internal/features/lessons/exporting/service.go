package lessons_exporting

import (
	lessons_filtering "lessonbook/internal/features/lessons/filtering"
	users_models "lessonbook/internal/features/users/models"
)

type ExportService struct {
	filterService *lessons_filtering.FilterService
}

// ExportLessons runs the same visibility-scoped filter pipeline as the
// lesson list, then serializes the result in the requested format.
func (s *ExportService) ExportLessons(
	criteria *lessons_filtering.FilterCriteriaDTO,
	format ExportFormat,
	user *users_models.User,
) (*ExportResult, error) {
	lessons, err := s.filterService.GetLessons(criteria, user)
	if err != nil {
		return nil, err
	}

	return Export(lessons.Lessons, format)
}
