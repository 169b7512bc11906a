package projects_repositories

import (
	"time"

	projects_dto "lessonbook/internal/features/projects/dto"
	projects_models "lessonbook/internal/features/projects/models"
	"lessonbook/internal/storage"

	"github.com/google/uuid"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProject(project *projects_models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(project).Error
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) UpdateProject(project *projects_models.Project) error {
	return storage.GetDb().Save(project).Error
}

func (r *ProjectRepository) CountProjectMembers(projectID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Table("project_memberships").
		Where("project_id = ?", projectID).
		Count(&count).Error

	return count, err
}

func (r *ProjectRepository) CountProjectLessons(projectID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Table("lessons").
		Where("project_id = ?", projectID).
		Count(&count).Error

	return count, err
}

func (r *ProjectRepository) CountProjectLessonsByStatus(
	projectID uuid.UUID,
) ([]projects_dto.ProjectStatusCountDTO, error) {
	rows := make([]projects_dto.ProjectStatusCountDTO, 0)

	err := storage.GetDb().
		Table("lessons").
		Select("status, COUNT(*) AS count").
		Where("project_id = ?", projectID).
		Group("status").
		Order("count DESC").
		Scan(&rows).Error

	return rows, err
}
