package notifications

import (
	"time"

	"github.com/google/uuid"
)

// queuedNotification is the JSON payload that travels through the
// Valkey queue between the dispatcher and the persistence worker.
type queuedNotification struct {
	UserID    uuid.UUID `json:"userId"`
	LessonID  uuid.UUID `json:"lessonId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListNotificationsResponseDTO struct {
	Notifications []*Notification `json:"notifications"`
	UnreadCount   int64           `json:"unreadCount"`
}
