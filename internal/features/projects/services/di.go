package projects_services

import (
	"lessonbook/internal/cache"
	"lessonbook/internal/features/audit_logs"
	projects_models "lessonbook/internal/features/projects/models"
	projects_repositories "lessonbook/internal/features/projects/repositories"
	users_services "lessonbook/internal/features/users/services"
	cache_utils "lessonbook/internal/util/cache"

	"golang.org/x/sync/singleflight"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var membershipRepository = &projects_repositories.MembershipRepository{}

var projectService = &ProjectService{
	projectRepository,
	membershipRepository,
	audit_logs.GetAuditLogService(),
	users_services.GetSettingsService(),
	cache_utils.NewCacheUtil[projects_models.Project](cache.GetCache(), "project:"),
	singleflight.Group{},
}

var membershipService = &MembershipService{
	membershipRepository,
	projectRepository,
	users_services.GetUserService(),
	audit_logs.GetAuditLogService(),
	projectService,
	users_services.GetSettingsService(),
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetMembershipService() *MembershipService {
	return membershipService
}
