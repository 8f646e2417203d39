package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"pureflow/internal/domain/entity"
	"pureflow/internal/domain/repository"
	"pureflow/internal/domain/service"
	"pureflow/internal/infra/metrics"
	"pureflow/internal/session"
	"pureflow/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	notifications repository.NotificationCollection
	push          service.PushService
	sess          *session.Session
	metrics       *metrics.Registry
	logger        *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notifications repository.NotificationCollection,
	push service.PushService,
	sess *session.Session,
	registry *metrics.Registry,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notifications: notifications,
		push:          push,
		sess:          sess,
		metrics:       registry,
		logger:        logger,
	}
}

// Notify stores the notification and toasts it when the active session is a recipient.
func (s *notificationService) Notify(ctx context.Context, title, message string, typ entity.NotificationType, forAdmin bool, target string) {
	if forAdmin {
		// Targeting is mutually exclusive.
		target = ""
	} else {
		target = entity.NormalizeIdentity(target)
		if target == "" {
			s.logger.Warn("dropping notification without a recipient", slog.String("title", title))

			return
		}
	}

	now := time.Now()
	notification := entity.Notification{
		ID:         uuid.NewString(),
		Title:      title,
		Message:    message,
		Timestamp:  now.Format("15:04"),
		Type:       typ,
		CreatedAt:  now,
		ForAdmin:   forAdmin,
		UserMobile: target,
	}

	s.notifications.Upsert(notification)
	s.metrics.NotificationsFanned.Inc()

	if viewer, ok := s.sess.Current(); ok && notification.VisibleTo(viewer) {
		if err := s.push.SendToast(ctx, title, message, map[string]string{"type": string(typ)}); err != nil {
			s.logger.Warn("toast delivery failed", slog.Any("error", err))
		}
	}
}

// VisibleTo returns the viewer's notifications, newest first.
func (s *notificationService) VisibleTo(viewer entity.User) []entity.Notification {
	all := s.notifications.List()
	visible := make([]entity.Notification, 0, len(all))

	for _, n := range all {
		if n.VisibleTo(viewer) {
			visible = append(visible, n)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})

	return visible
}

// UnreadCount counts the viewer's unread notifications.
func (s *notificationService) UnreadCount(viewer entity.User) int {
	count := 0
	for _, n := range s.VisibleTo(viewer) {
		if !n.IsRead {
			count++
		}
	}

	return count
}

// MarkAllRead marks the viewer's notifications as read. Entries addressed to
// other audiences are left untouched.
func (s *notificationService) MarkAllRead(viewer entity.User) {
	for _, n := range s.VisibleTo(viewer) {
		s.notifications.Update(n.ID, func(doc *entity.Notification) {
			doc.IsRead = true
		})
	}
}

// ClearAll deletes the viewer's notifications, and only theirs.
func (s *notificationService) ClearAll(viewer entity.User) {
	for _, n := range s.VisibleTo(viewer) {
		s.notifications.Delete(n.ID)
	}
}
