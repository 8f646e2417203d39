package usecase

import (
	"context"

	"pureflow/internal/domain/entity"
)

// NotificationUsecase defines the interface for notification fan-out use cases
type NotificationUsecase interface {
	// Notify stores a notification addressed either to admins or to a single
	// user identity, and raises a device toast when the active session is a recipient
	Notify(ctx context.Context, title, message string, typ entity.NotificationType, forAdmin bool, target string)

	// VisibleTo returns the notifications the viewer may see, newest first
	VisibleTo(viewer entity.User) []entity.Notification

	// UnreadCount returns the number of unread notifications visible to the viewer
	UnreadCount(viewer entity.User) int

	// MarkAllRead marks every notification visible to the viewer as read
	MarkAllRead(viewer entity.User)

	// ClearAll removes every notification visible to the viewer
	ClearAll(viewer entity.User)
}
