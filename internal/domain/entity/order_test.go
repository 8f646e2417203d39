package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendHistoryIsAppendOnly(t *testing.T) {
	placed := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	order := Order{ID: "ORD-1"}
	order = order.AppendHistory(StatusPending, placed, "Order placed")

	require.Len(t, order.History, 1)
	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, "14/03/2025 09:30", order.History[0].Timestamp)

	moved := order.AppendHistory(StatusProcessing, placed.Add(time.Hour), "")
	require.Len(t, moved.History, 2)
	assert.Equal(t, StatusProcessing, moved.Status)

	// The original value is untouched; history entries are never edited.
	assert.Len(t, order.History, 1)
	assert.Equal(t, StatusPending, order.History[0].Status)
}

func TestSubtotal(t *testing.T) {
	items := []CartItem{
		{Product: Product{ID: "p1", Price: 35}, Quantity: 2},
		{Product: Product{ID: "p4", Price: 150}, Quantity: 1},
	}

	assert.Equal(t, 220, Subtotal(items))
	assert.Zero(t, Subtotal(nil))
}

func TestOrderStatusValidity(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusProcessing, StatusOutForDelivery, StatusDelivered, StatusCancelled} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, OrderStatus("Shipped").IsValid())

	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusOutForDelivery.IsTerminal())
}

func TestNotificationVisibleTo(t *testing.T) {
	admin := User{Mobile: "9999999999", IsAdmin: true}
	ravi := User{Mobile: "9000000002"}
	raj := User{Mobile: "9000000001", IsDeliveryBoy: true}

	adminOnly := Notification{ID: "n1", ForAdmin: true}
	assert.True(t, adminOnly.VisibleTo(admin))
	assert.False(t, adminOnly.VisibleTo(ravi))

	forRavi := Notification{ID: "n2", UserMobile: "9000000002"}
	assert.True(t, forRavi.VisibleTo(ravi))
	assert.False(t, forRavi.VisibleTo(raj))
	assert.False(t, forRavi.VisibleTo(admin))

	// A notification with no audience at all is visible to nobody.
	orphan := Notification{ID: "n3"}
	assert.False(t, orphan.VisibleTo(admin))
	assert.False(t, orphan.VisibleTo(ravi))
}
