package notifications

import (
	lessons_core "lessonbook/internal/features/lessons/core"
	cache_utils "lessonbook/internal/util/cache"
	"lessonbook/internal/util/logger"
)

var (
	notificationRepository = &NotificationRepository{}

	notificationService = &NotificationService{
		notificationRepository: notificationRepository,
		queueService:           cache_utils.NewValkeyQueueService(),
		logger:                 logger.GetLogger(),
	}

	notificationWorker = &NotificationWorker{
		notificationRepository: notificationRepository,
		queueService:           cache_utils.NewValkeyQueueService(),
		logger:                 logger.GetLogger(),
	}

	notificationController = &NotificationController{
		notificationService: notificationService,
	}
)

func GetNotificationService() *NotificationService {
	return notificationService
}

func GetNotificationWorker() *NotificationWorker {
	return notificationWorker
}

func GetNotificationController() *NotificationController {
	return notificationController
}

// SetupDependencies registers the notification service as the event
// dispatcher for lesson mutations. Wired late to avoid an import cycle
// between the lessons and notifications packages.
func SetupDependencies() {
	lessons_core.GetLessonController().SetEventDispatcher(notificationService)
}
