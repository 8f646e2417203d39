// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"pureflow/internal/delivery/http/middleware"
	"pureflow/internal/delivery/http/response"
	"pureflow/internal/domain/entity"
	domainerrors "pureflow/internal/domain/errors"
	"pureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for authentication handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{uc: uc, logger: logger}
}

// Login handles both returning-user login and first-time registration.
func (h *SessionHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// The stored PIN never crosses the API boundary.
	output.User.PIN = ""

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Logout ends the device session.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// Me returns the caller's stored profile and dashboard view.
func (h *SessionHandler) Me(c echo.Context) error {
	user, err := CallerUser(c, h.uc)
	if err != nil {
		return errors.WithStack(err)
	}

	user.PIN = ""

	return response.Success(c, http.StatusOK, map[string]any{
		"user": user,
		"view": h.uc.RouteFor(user),
	}, "")
}

// CallerUser resolves the authenticated caller's stored profile from the
// identity the auth middleware placed on the context.
func CallerUser(c echo.Context, sessions usecase.SessionUsecase) (entity.User, error) {
	identity, ok := c.Get(middleware.ContextIdentity).(string)
	if !ok || identity == "" {
		return entity.User{}, domainerrors.ErrNotAuthenticated
	}

	user, found := sessions.UserByIdentity(identity)
	if !found {
		return entity.User{}, domainerrors.ErrUserNotFound
	}

	return user, nil
}
