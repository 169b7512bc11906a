package lessons_filtering

import (
	"lessonbook/internal/features/categories"
	lessons_core "lessonbook/internal/features/lessons/core"
	projects_services "lessonbook/internal/features/projects/services"
)

var (
	filterService = &FilterService{
		lessonRepository: lessons_core.GetLessonRepository(),
		projectService:   projects_services.GetProjectService(),
		categoryService:  categories.GetCategoryService(),
	}

	filterController = &FilterController{
		filterService: filterService,
	}
)

func GetFilterService() *FilterService {
	return filterService
}

func GetFilterController() *FilterController {
	return filterController
}
