package usecase

import (
	"context"

	"pureflow/internal/domain/entity"
)

// StoreSettings is the configurable slice of the storefront.
type StoreSettings struct {
	DeliveryFee int    `json:"deliveryFee"`
	UPIID       string `json:"upiId"`
}

// AdminUsecase defines the interface for staff and settings administration
type AdminUsecase interface {
	// AddStaff registers a mobile number as delivery staff, creating the user
	// profile when it does not exist yet
	AddStaff(ctx context.Context, mobile, name string) (*entity.User, error)

	// SetDeliveryRole grants or revokes the delivery role on an existing user
	SetDeliveryRole(ctx context.Context, identity string, isDelivery bool) (*entity.User, error)

	// SetAdminRole grants or revokes the admin role on an existing user
	SetAdminRole(ctx context.Context, identity string, isAdmin bool) (*entity.User, error)

	// Staff lists every user carrying the delivery role
	Staff() []entity.User

	// Users lists every known user profile
	Users() []entity.User

	// Settings returns the current store settings, falling back to configured defaults
	Settings() StoreSettings

	// UpdateSettings persists the store settings
	UpdateSettings(ctx context.Context, settings StoreSettings) error
}
