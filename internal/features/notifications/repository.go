package notifications

import (
	"time"

	"lessonbook/internal/storage"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func (r *NotificationRepository) CreateNotifications(notifications []*Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, notification := range notifications {
		if notification.ID == uuid.Nil {
			notification.ID = uuid.New()
		}
		if notification.CreatedAt.IsZero() {
			notification.CreatedAt = now
		}
	}

	return storage.GetDb().Create(notifications).Error
}

func (r *NotificationRepository) GetNotificationsByUserID(userID uuid.UUID, limit int) ([]*Notification, error) {
	notifications := make([]*Notification, 0)

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error

	return notifications, err
}

func (r *NotificationRepository) CountUnread(userID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&count).Error

	return count, err
}

// MarkAsRead flips the read flag for one of the user's notifications.
// Scoping by user keeps recipients from touching each other's rows.
func (r *NotificationRepository) MarkAsRead(notificationID uuid.UUID, userID uuid.UUID) (bool, error) {
	result := storage.GetDb().
		Model(&Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)

	return result.RowsAffected > 0, result.Error
}
