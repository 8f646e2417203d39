package repository

import (
	"context"
	"encoding/json"
)

// ChangeKind is the row-level event type carried by the change feed.
type ChangeKind string

const (
	ChangeInsert ChangeKind = "INSERT"
	ChangeUpdate ChangeKind = "UPDATE"
	ChangeDelete ChangeKind = "DELETE"
)

// Tables the feed carries events for.
const (
	TableOrders = "orders"
	TableUsers  = "users"
)

// ChangeEvent is one row-level change. Row is the new row as JSON; OldStatus
// carries enough of the previous row to detect an order status change on
// updates. Delivery is at-least-once and unordered relative to local writes,
// so consumers must apply events idempotently.
type ChangeEvent struct {
	Table     string          `json:"table"`
	Kind      ChangeKind      `json:"kind"`
	Row       json.RawMessage `json:"row"`
	OldStatus string          `json:"oldStatus,omitempty"`
}

// ChangeFeed is the real-time bridge between devices. Each device publishes an
// event after a successful mirror push and consumes the events published by
// every other device.
type ChangeFeed interface {
	// Publish emits an event, best-effort.
	Publish(ctx context.Context, event ChangeEvent) error

	// Subscribe hands every received event for the given table to fn until
	// ctx is cancelled. It returns once the underlying consumer is running.
	Subscribe(ctx context.Context, table string, fn func(ChangeEvent)) error

	// Close releases the underlying transport.
	Close() error
}
