package projects_models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID  `json:"id"          gorm:"column:id"`
	Name        string     `json:"name"        gorm:"column:name"`
	Description string     `json:"description" gorm:"column:description"`
	StartDate   *time.Time `json:"startDate"   gorm:"column:start_date"`
	EndDate     *time.Time `json:"endDate"     gorm:"column:end_date"`
	IsActive    bool       `json:"isActive"    gorm:"column:is_active"`
	CreatedBy   uuid.UUID  `json:"createdBy"   gorm:"column:created_by"`
	CreatedAt   time.Time  `json:"createdAt"   gorm:"column:created_at"`

	// Used for caching non-existent projects
	IsNotExists bool `json:"isNotExists,omitempty" gorm:"-"`
}

func (Project) TableName() string {
	return "projects"
}
