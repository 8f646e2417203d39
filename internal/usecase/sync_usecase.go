package usecase

import (
	"context"

	"pureflow/internal/domain/entity"
	"pureflow/internal/domain/repository"
)

// SyncUsecase defines the interface for reconciling the local store with the
// cloud mirror and for reacting to remote change events.
type SyncUsecase interface {
	// Start performs the startup pull, retries any dirty documents and begins
	// consuming the change feed. It never fails the process when the cloud is
	// unreachable; the session simply runs local-only until it recovers.
	Start(ctx context.Context) error

	// PushOrder mirrors an order that was just written locally and publishes a
	// change event for other devices. prev is nil for a brand new order.
	// Reports whether the mirror accepted the write.
	PushOrder(ctx context.Context, order entity.Order, prev *entity.Order) bool

	// PushUser mirrors a user profile that was just written locally
	PushUser(ctx context.Context, user entity.User) bool

	// ApplyOrderEvent folds a remote order change into the local store,
	// raising the notifications the event warrants for the active session
	ApplyOrderEvent(event repository.ChangeEvent)

	// CloudSynced reports whether the last cloud interaction succeeded
	CloudSynced() bool
}
