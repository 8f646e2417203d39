package handler

import (
	"log/slog"
	"net/http"

	"pureflow/internal/delivery/http/response"
	"pureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	uc       usecase.NotificationUsecase
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, sessions usecase.SessionUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, sessions: sessions, logger: logger}
}

// List returns the caller's notifications, newest first, with the unread count.
func (h *NotificationHandler) List(c echo.Context) error {
	viewer, err := CallerUser(c, h.sessions)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"notifications": h.uc.VisibleTo(viewer),
		"unread":        h.uc.UnreadCount(viewer),
	}, "")
}

// MarkAllRead marks the caller's notifications as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	viewer, err := CallerUser(c, h.sessions)
	if err != nil {
		return errors.WithStack(err)
	}

	h.uc.MarkAllRead(viewer)

	return response.Success(c, http.StatusOK, nil, "Notifications marked as read")
}

// ClearAll removes the caller's notifications. Entries addressed to other
// audiences are untouched.
func (h *NotificationHandler) ClearAll(c echo.Context) error {
	viewer, err := CallerUser(c, h.sessions)
	if err != nil {
		return errors.WithStack(err)
	}

	h.uc.ClearAll(viewer)

	return response.Success(c, http.StatusOK, nil, "Notifications cleared")
}
