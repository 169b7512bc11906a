package notifications

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	lessons_core "lessonbook/internal/features/lessons/core"
	cache_utils "lessonbook/internal/util/cache"

	"github.com/google/uuid"
)

const notificationQueueKey = "lessonbook:notifications:queue"

// NotificationService turns lesson events into queued messages for the
// affected users and serves the recipient-facing endpoints. It is the
// EventDispatcher the lesson controllers hand their events to.
type NotificationService struct {
	notificationRepository *NotificationRepository
	queueService           *cache_utils.ValkeyQueueService
	logger                 *slog.Logger
}

// DispatchEvents enqueues recipient messages for the given events.
// Dispatch failures are logged and swallowed: the mutation that
// produced the events has already committed.
func (s *NotificationService) DispatchEvents(events []lessons_core.Event) {
	queued := make([]*queuedNotification, 0)
	for _, event := range events {
		queued = append(queued, s.buildNotifications(event)...)
	}

	if len(queued) == 0 {
		return
	}

	serialized := make([][]byte, 0, len(queued))
	for _, notification := range queued {
		data, err := json.Marshal(notification)
		if err != nil {
			s.logger.Error("Failed to marshal queued notification",
				slog.String("error", err.Error()))
			continue
		}
		serialized = append(serialized, data)
	}

	if err := s.queueService.EnqueueBatch(notificationQueueKey, serialized); err != nil {
		s.logger.Error("Failed to enqueue notifications",
			slog.Int("count", len(serialized)),
			slog.String("error", err.Error()))
	}
}

func (s *NotificationService) buildNotifications(event lessons_core.Event) []*queuedNotification {
	now := time.Now().UTC()

	switch e := event.(type) {
	case lessons_core.LessonCreatedEvent:
		return notifyUsers(e.TaggedUserIDs, e.ActorID, e.LessonID, now,
			fmt.Sprintf("You were tagged in the lesson %q", e.LessonTitle))

	case lessons_core.LessonUpdatedEvent:
		return notifyUsers(e.TaggedUserIDs, e.ActorID, e.LessonID, now,
			fmt.Sprintf("The lesson %q you are tagged in was updated", e.LessonTitle))

	case lessons_core.CommentAddedEvent:
		notifications := notifyUsers(e.TaggedUserIDs, e.ActorID, e.LessonID, now,
			fmt.Sprintf("New comment on the lesson %q you are tagged in", e.LessonTitle))

		if e.LessonSubmittedBy != e.ActorID && !containsUser(e.TaggedUserIDs, e.LessonSubmittedBy) {
			notifications = append(notifications, &queuedNotification{
				UserID:    e.LessonSubmittedBy,
				LessonID:  e.LessonID,
				Message:   fmt.Sprintf("New comment on your lesson %q", e.LessonTitle),
				CreatedAt: now,
			})
		}

		return notifications

	default:
		s.logger.Warn("Unknown event type, no notifications produced",
			slog.String("eventName", event.EventName()))
		return nil
	}
}

func notifyUsers(
	userIDs []uuid.UUID,
	actorID uuid.UUID,
	lessonID uuid.UUID,
	createdAt time.Time,
	message string,
) []*queuedNotification {
	notifications := make([]*queuedNotification, 0, len(userIDs))

	for _, userID := range userIDs {
		if userID == actorID {
			continue
		}

		notifications = append(notifications, &queuedNotification{
			UserID:    userID,
			LessonID:  lessonID,
			Message:   message,
			CreatedAt: createdAt,
		})
	}

	return notifications
}

func containsUser(userIDs []uuid.UUID, userID uuid.UUID) bool {
	for _, id := range userIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (s *NotificationService) GetNotifications(userID uuid.UUID) (*ListNotificationsResponseDTO, error) {
	notifications, err := s.notificationRepository.GetNotificationsByUserID(userID, 50)
	if err != nil {
		return nil, err
	}

	unread, err := s.notificationRepository.CountUnread(userID)
	if err != nil {
		return nil, err
	}

	return &ListNotificationsResponseDTO{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

func (s *NotificationService) MarkAsRead(notificationID uuid.UUID, userID uuid.UUID) error {
	updated, err := s.notificationRepository.MarkAsRead(notificationID, userID)
	if err != nil {
		return err
	}
	if !updated {
		return errors.New("notification not found")
	}
	return nil
}
