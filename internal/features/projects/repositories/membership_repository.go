package projects_repositories

import (
	"errors"
	"time"

	projects_dto "lessonbook/internal/features/projects/dto"
	projects_models "lessonbook/internal/features/projects/models"
	users_enums "lessonbook/internal/features/users/enums"
	"lessonbook/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository struct{}

func (r *MembershipRepository) CreateMembership(membership *projects_models.ProjectMembership) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(membership).Error
}

// UpsertMembership inserts a membership or, when the user already holds
// one for the project, updates its role in place. The membership table
// carries a UNIQUE(user_id, project_id) constraint this relies on.
func (r *MembershipRepository) UpsertMembership(membership *projects_models.ProjectMembership) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role"}),
		}).
		Create(membership).Error
}

func (r *MembershipRepository) GetMembershipByUserAndProject(
	userID, projectID uuid.UUID,
) (*projects_models.ProjectMembership, error) {
	var membership projects_models.ProjectMembership

	if err := storage.GetDb().
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&membership).Error; err != nil {
		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) GetProjectMembers(
	projectID uuid.UUID,
) ([]*projects_dto.ProjectMemberResponseDTO, error) {
	var members []*projects_dto.ProjectMemberResponseDTO

	err := storage.GetDb().
		Table("project_memberships pm").
		Select("pm.id, pm.user_id, u.username, u.email, pm.role, pm.created_at").
		Joins("JOIN users u ON pm.user_id = u.id").
		Where("pm.project_id = ?", projectID).
		Order("pm.created_at ASC").
		Scan(&members).Error

	return members, err
}

func (r *MembershipRepository) UpdateMemberRole(userID, projectID uuid.UUID, role users_enums.ProjectRole) error {
	return storage.GetDb().
		Model(&projects_models.ProjectMembership{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Update("role", role).Error
}

func (r *MembershipRepository) GetUserProjectRole(projectID, userID uuid.UUID) (*users_enums.ProjectRole, error) {
	var membership projects_models.ProjectMembership
	err := storage.GetDb().
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&membership).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership.Role, nil
}

func (r *MembershipRepository) GetProjectsWithRolesByUserID(
	isElevated bool,
	userID uuid.UUID,
) ([]projects_dto.ProjectResponseDTO, error) {
	results := make([]projects_dto.ProjectResponseDTO, 0)

	if isElevated {
		err := storage.GetDb().Table("projects").Order("name ASC").Scan(&results).Error
		return results, err
	}

	err := storage.GetDb().
		Table("projects p").
		Select("p.id, p.name, p.description, p.start_date, p.end_date, p.is_active, p.created_at, pm.role as user_role").
		Joins("JOIN project_memberships pm ON p.id = pm.project_id").
		Where("pm.user_id = ?", userID).
		Order("p.name ASC").
		Scan(&results).Error

	return results, err
}

// GetMemberProjectIDs returns the IDs of every project the user belongs to.
func (r *MembershipRepository) GetMemberProjectIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	projectIDs := make([]uuid.UUID, 0)

	err := storage.GetDb().
		Model(&projects_models.ProjectMembership{}).
		Where("user_id = ?", userID).
		Pluck("project_id", &projectIDs).Error

	return projectIDs, err
}

// GetProjectMemberUserIDs returns the IDs of every member of the project.
func (r *MembershipRepository) GetProjectMemberUserIDs(projectID uuid.UUID) ([]uuid.UUID, error) {
	userIDs := make([]uuid.UUID, 0)

	err := storage.GetDb().
		Model(&projects_models.ProjectMembership{}).
		Where("project_id = ?", projectID).
		Pluck("user_id", &userIDs).Error

	return userIDs, err
}

func (r *MembershipRepository) GetAllProjectIDs() ([]uuid.UUID, error) {
	projectIDs := make([]uuid.UUID, 0)

	err := storage.GetDb().
		Model(&projects_models.Project{}).
		Pluck("id", &projectIDs).Error

	return projectIDs, err
}
