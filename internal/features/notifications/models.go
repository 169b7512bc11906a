package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a persisted in-app message for one recipient. These
// rows stand in for email delivery.
type Notification struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id"`
	LessonID  uuid.UUID `json:"lessonId"  gorm:"column:lesson_id"`
	Message   string    `json:"message"   gorm:"column:message"`
	IsRead    bool      `json:"isRead"    gorm:"column:is_read"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
