package lessons_dashboard

import (
	lessons_core "lessonbook/internal/features/lessons/core"
	projects_services "lessonbook/internal/features/projects/services"
)

var (
	dashboardService = &DashboardService{
		lessonRepository: lessons_core.GetLessonRepository(),
		projectService:   projects_services.GetProjectService(),
	}

	dashboardController = &DashboardController{
		dashboardService: dashboardService,
	}
)

func GetDashboardService() *DashboardService {
	return dashboardService
}

func GetDashboardController() *DashboardController {
	return dashboardController
}
