package projects_services

import (
	"errors"
	"fmt"
	"time"

	audit_logs "lessonbook/internal/features/audit_logs"
	projects_dto "lessonbook/internal/features/projects/dto"
	projects_models "lessonbook/internal/features/projects/models"
	projects_repositories "lessonbook/internal/features/projects/repositories"
	users_enums "lessonbook/internal/features/users/enums"
	users_models "lessonbook/internal/features/users/models"
	users_services "lessonbook/internal/features/users/services"
	cache_utils "lessonbook/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type ProjectService struct {
	projectRepository    *projects_repositories.ProjectRepository
	membershipRepository *projects_repositories.MembershipRepository
	auditLogService      *audit_logs.AuditLogService
	settingsService      *users_services.SettingsService

	projectCacheUtil *cache_utils.CacheUtil[projects_models.Project]
	singleflight     singleflight.Group // Prevents thundering herd on DB calls
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	settings, err := s.settingsService.GetSettings()

	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if !creator.CanCreateProjects(settings) {
		return nil, errors.New("insufficient permissions to create projects")
	}

	project := &projects_models.Project{
		ID:          uuid.New(),
		Name:        request.Name,
		Description: request.Description,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		IsActive:    true,
		CreatedBy:   creator.ID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.projectRepository.CreateProject(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	// Pre-warm cache with new project for immediate availability
	s.projectCacheUtil.Set(project.ID.String(), project)

	membership := &projects_models.ProjectMembership{
		UserID:    creator.ID,
		ProjectID: project.ID,
		Role:      users_enums.ProjectRoleOwner,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return nil, fmt.Errorf("failed to create project membership: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Name),
		&creator.ID,
		&project.ID,
	)

	ownerRole := users_enums.ProjectRoleOwner
	return &projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		IsActive:    project.IsActive,
		CreatedAt:   project.CreatedAt,
		UserRole:    &ownerRole,
	}, nil
}

func (s *ProjectService) GetProject(projectID uuid.UUID, user *users_models.User) (*projects_models.Project, error) {
	isCanAccess, _, err := s.CanUserAccessProject(projectID, user)

	if err != nil {
		return nil, err
	}
	if !isCanAccess {
		return nil, errors.New("insufficient permissions to view project")
	}

	return s.GetProjectWithCache(projectID)
}

func (s *ProjectService) GetUserProjects(user *users_models.User) (*projects_dto.ListProjectsResponseDTO, error) {
	projects, err := s.membershipRepository.GetProjectsWithRolesByUserID(user.Capabilities().Elevated, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user projects: %w", err)
	}

	return &projects_dto.ListProjectsResponseDTO{
		Projects: projects,
	}, nil
}

func (s *ProjectService) UpdateProject(
	projectID uuid.UUID,
	request *projects_dto.UpdateProjectRequestDTO,
	user *users_models.User,
) (*projects_models.Project, error) {
	canManage, err := s.CanUserManageProject(projectID, user)

	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, errors.New("insufficient permissions to update project")
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	project.Name = request.Name
	project.Description = request.Description
	project.StartDate = request.StartDate
	project.EndDate = request.EndDate
	if request.IsActive != nil {
		project.IsActive = *request.IsActive
	}

	if err := s.projectRepository.UpdateProject(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.projectCacheUtil.Invalidate(projectID.String())

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project updated: %s", project.Name),
		&user.ID,
		&projectID,
	)

	return project, nil
}

func (s *ProjectService) GetUserProjectRole(projectID uuid.UUID, userID uuid.UUID) (*users_enums.ProjectRole, error) {
	return s.membershipRepository.GetUserProjectRole(projectID, userID)
}

// CanUserAccessProject reports whether the user can view the project.
// Elevated users can view everything; otherwise any membership grants
// view access regardless of role.
func (s *ProjectService) CanUserAccessProject(
	projectID uuid.UUID,
	user *users_models.User,
) (bool, *users_enums.ProjectRole, error) {
	if user.Capabilities().Elevated {
		elevatedRole := users_enums.ProjectRoleOwner
		return true, &elevatedRole, nil
	}

	role, err := s.membershipRepository.GetUserProjectRole(projectID, user.ID)
	if err != nil {
		return false, nil, nil
	}

	return role != nil, role, nil
}

// CanUserManageProject reports whether the user can edit the project or
// its team. Only OWNER and MANAGER memberships qualify, plus elevated
// users.
func (s *ProjectService) CanUserManageProject(projectID uuid.UUID, user *users_models.User) (bool, error) {
	if user.Capabilities().Elevated {
		return true, nil
	}

	role, err := s.membershipRepository.GetUserProjectRole(projectID, user.ID)
	if err != nil {
		return false, err
	}

	if role == nil {
		return false, nil
	}

	return role.CanManageTeam(), nil
}

// GetProjectStats returns member and lesson counts for one project.
func (s *ProjectService) GetProjectStats(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_dto.ProjectStatsResponseDTO, error) {
	isCanAccess, _, err := s.CanUserAccessProject(projectID, user)
	if err != nil {
		return nil, err
	}
	if !isCanAccess {
		return nil, errors.New("insufficient permissions to view project")
	}

	memberCount, err := s.projectRepository.CountProjectMembers(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count project members: %w", err)
	}

	lessonCount, err := s.projectRepository.CountProjectLessons(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count project lessons: %w", err)
	}

	byStatus, err := s.projectRepository.CountProjectLessonsByStatus(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count project lessons by status: %w", err)
	}

	return &projects_dto.ProjectStatsResponseDTO{
		ProjectID:   projectID,
		MemberCount: memberCount,
		LessonCount: lessonCount,
		ByStatus:    byStatus,
	}, nil
}

// GetVisibleProjectIDs returns the set of project IDs whose content the
// user may see. Elevated users see every project.
func (s *ProjectService) GetVisibleProjectIDs(user *users_models.User) ([]uuid.UUID, error) {
	if user.Capabilities().Elevated {
		return s.membershipRepository.GetAllProjectIDs()
	}

	return s.membershipRepository.GetMemberProjectIDs(user.ID)
}

// GetProjectMemberUserIDs returns the IDs of every member of the project.
func (s *ProjectService) GetProjectMemberUserIDs(projectID uuid.UUID) ([]uuid.UUID, error) {
	return s.membershipRepository.GetProjectMemberUserIDs(projectID)
}

func (s *ProjectService) GetProjectAuditLogs(
	projectID uuid.UUID,
	user *users_models.User,
	request *audit_logs.GetAuditLogsRequest,
) (*audit_logs.GetAuditLogsResponse, error) {
	isCanAccess, _, err := s.CanUserAccessProject(projectID, user)
	if err != nil {
		return nil, err
	}
	if !isCanAccess {
		return nil, errors.New("insufficient permissions to view project audit logs")
	}

	return s.auditLogService.GetProjectAuditLogs(projectID, request)
}

func (s *ProjectService) GetProjectWithCache(projectID uuid.UUID) (*projects_models.Project, error) {
	projectIDStr := projectID.String()

	// Tier 1: check cache
	if cachedProject := s.projectCacheUtil.Get(projectIDStr); cachedProject != nil {
		if cachedProject.IsNotExists {
			return nil, errors.New("project not found")
		}

		return cachedProject, nil
	}

	// Tier 2: database lookup with singleflight protection
	result, err, _ := s.singleflight.Do(projectIDStr, func() (any, error) {
		return s.projectRepository.GetProjectByID(projectID)
	})

	if err != nil {
		// Cache the invalid project to prevent future DB hits
		invalidCachedProject := &projects_models.Project{
			ID:          projectID,
			IsNotExists: true,
		}
		s.projectCacheUtil.Set(projectIDStr, invalidCachedProject)
		return nil, errors.New("project not found")
	}

	project, ok := result.(*projects_models.Project)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to Project")
	}

	s.projectCacheUtil.Set(projectIDStr, project)

	return project, nil
}
