package notifications

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	cache_utils "lessonbook/internal/util/cache"
)

const (
	workerInterval  = 1 * time.Second
	workerBatchSize = 200
)

// NotificationWorker drains the Valkey queue and persists notification
// rows. Only one instance should run it; other API nodes just enqueue.
type NotificationWorker struct {
	notificationRepository *NotificationRepository
	queueService           *cache_utils.ValkeyQueueService
	logger                 *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (w *NotificationWorker) Start() {
	w.ctx, w.cancel = context.WithCancel(context.Background())

	w.wg.Add(1)
	go w.run()

	w.logger.Info("Notification worker started",
		slog.Duration("interval", workerInterval),
		slog.Int("batchSize", workerBatchSize))
}

func (w *NotificationWorker) Stop() {
	if w.cancel == nil {
		return
	}

	w.cancel()
	w.wg.Wait()
}

func (w *NotificationWorker) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(workerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info("Notification worker shutting down")
			w.processQueuedNotifications()
			return

		case <-ticker.C:
			w.processQueuedNotifications()
		}
	}
}

// ProcessQueuedNotificationsForTest drains the queue once, blocking,
// so tests do not have to wait out the worker interval.
func (w *NotificationWorker) ProcessQueuedNotificationsForTest() {
	w.processQueuedNotifications()
}

func (w *NotificationWorker) processQueuedNotifications() {
	items, err := w.queueService.DequeueBatch(notificationQueueKey, workerBatchSize)
	if err != nil {
		w.logger.Error("Failed to dequeue notifications",
			slog.String("error", err.Error()))
		return
	}

	if len(items) == 0 {
		return
	}

	notifications := make([]*Notification, 0, len(items))
	for _, data := range items {
		var queued queuedNotification
		if err := json.Unmarshal(data, &queued); err != nil {
			w.logger.Error("Failed to unmarshal queued notification",
				slog.String("error", err.Error()))
			continue
		}

		notifications = append(notifications, &Notification{
			UserID:    queued.UserID,
			LessonID:  queued.LessonID,
			Message:   queued.Message,
			CreatedAt: queued.CreatedAt,
		})
	}

	if len(notifications) == 0 {
		return
	}

	if err := w.notificationRepository.CreateNotifications(notifications); err != nil {
		w.logger.Error("Failed to persist notifications",
			slog.Int("count", len(notifications)),
			slog.String("error", err.Error()))
	}
}
