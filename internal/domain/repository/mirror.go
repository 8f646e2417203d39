package repository

import (
	"context"

	"pureflow/internal/domain/entity"
)

// MirrorClient replicates local documents to the hosted relational store. It
// owns nothing: it is a pass-through upsert/fetch boundary, and no error is
// ever allowed past it — push reports a success boolean and fetch reports
// absence, so a dead network can never crash the app.
type MirrorClient interface {
	// PushOrder upserts the order keyed by its id, stripping local-only
	// bookkeeping before transmission.
	PushOrder(ctx context.Context, order entity.Order) bool

	// PushUser upserts the user keyed by its normalized identity.
	PushUser(ctx context.Context, user entity.User) bool

	// FetchAllOrders returns the full remote orders collection. ok is false
	// when the remote could not be reached — distinct from a genuinely empty
	// collection.
	FetchAllOrders(ctx context.Context) (orders []entity.Order, ok bool)

	// FetchAllUsers returns the full remote users collection.
	FetchAllUsers(ctx context.Context) (users []entity.User, ok bool)
}
