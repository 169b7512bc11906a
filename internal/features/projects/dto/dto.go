package projects_dto

import (
	"time"

	users_enums "lessonbook/internal/features/users/enums"

	"github.com/google/uuid"
)

type AddMemberStatus string

const (
	AddStatusInvited     AddMemberStatus = "INVITED"
	AddStatusAdded       AddMemberStatus = "ADDED"
	AddStatusRoleUpdated AddMemberStatus = "ROLE_UPDATED"
)

// Project DTOs
type CreateProjectRequestDTO struct {
	Name        string     `json:"name"        binding:"required,min=1,max=255"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

type UpdateProjectRequestDTO struct {
	Name        string     `json:"name"        binding:"required,min=1,max=255"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsActive    *bool      `json:"isActive"`
}

type ProjectResponseDTO struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`

	// User's role in this project (populated when fetching for specific user)
	UserRole *users_enums.ProjectRole `json:"userRole,omitempty"`
}

type ListProjectsResponseDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
}

// Membership DTOs
type AddMemberRequestDTO struct {
	Email string                  `json:"email" binding:"required,email"`
	Role  users_enums.ProjectRole `json:"role"  binding:"required"`
}

type AddMemberResponseDTO struct {
	Status AddMemberStatus `json:"status"`
}

type ChangeMemberRoleRequestDTO struct {
	Role users_enums.ProjectRole `json:"role" binding:"required"`
}

type ProjectMemberResponseDTO struct {
	ID        uuid.UUID               `json:"id"`
	UserID    uuid.UUID               `json:"userId"`
	Username  string                  `json:"username"` // Populated from user join
	Email     string                  `json:"email"`
	Role      users_enums.ProjectRole `json:"role"`
	CreatedAt time.Time               `json:"createdAt"`
}

type GetMembersResponseDTO struct {
	Members []ProjectMemberResponseDTO `json:"members"`
}

// Stats DTOs
type ProjectStatusCountDTO struct {
	Status string `json:"status" gorm:"column:status"`
	Count  int64  `json:"count"  gorm:"column:count"`
}

type ProjectStatsResponseDTO struct {
	ProjectID   uuid.UUID               `json:"projectId"`
	MemberCount int64                   `json:"memberCount"`
	LessonCount int64                   `json:"lessonCount"`
	ByStatus    []ProjectStatusCountDTO `json:"byStatus"`
}
