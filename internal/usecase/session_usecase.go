package usecase

import (
	"context"

	"pureflow/internal/domain/entity"
)

// Dashboard views a session can land on after login.
const (
	ViewAdmin    = "admin"
	ViewDelivery = "delivery"
	ViewHome     = "home"
)

// LoginInput carries the login form. For first-time users the profile fields
// and a confirmed PIN are required; returning users only supply identity + PIN.
type LoginInput struct {
	Mobile     string `json:"mobile"`
	Email      string `json:"email"`
	PIN        string `json:"pin"`
	ConfirmPIN string `json:"confirmPin"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Pincode    string `json:"pincode"`
	Avatar     string `json:"avatar"`
}

// LoginResult reports the authenticated user, the signed access token and the
// dashboard view the client should route to.
type LoginResult struct {
	User       entity.User `json:"user"`
	Token      string      `json:"token"`
	View       string      `json:"view"`
	Registered bool        `json:"registered"`
}

// SessionUsecase defines the interface for authentication and session use cases
type SessionUsecase interface {
	// Login authenticates a returning user or registers a new one, activates the
	// device session and issues an access token
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)

	// Logout ends the active device session
	Logout(ctx context.Context) error

	// Current returns the active session user, if any
	Current() (entity.User, bool)

	// UserByIdentity resolves a stored user profile by its normalized identity
	UserByIdentity(identity string) (entity.User, bool)

	// RouteFor returns the dashboard view for a user based on their roles
	RouteFor(user entity.User) string
}
