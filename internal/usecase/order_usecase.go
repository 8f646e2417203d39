package usecase

import (
	"context"

	"pureflow/internal/domain/entity"
)

// PlaceOrderInput carries everything needed to create a new order for a customer.
type PlaceOrderInput struct {
	Items         []entity.CartItem    `json:"items"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
	DepositAmount int                  `json:"depositAmount"`
}

// PlaceOrderResult reports the stored order plus a human-readable outcome message
// that reflects whether the cloud mirror accepted the write.
type PlaceOrderResult struct {
	Order   entity.Order `json:"order"`
	Synced  bool         `json:"synced"`
	Message string       `json:"message"`
}

// OrderUsecase defines the interface for order lifecycle use cases
type OrderUsecase interface {
	// PlaceOrder creates a new order from the customer's cart, persists it locally,
	// mirrors it to the cloud and notifies the customer
	PlaceOrder(ctx context.Context, customer entity.User, input PlaceOrderInput) (*PlaceOrderResult, error)

	// UpdateStatus moves an order to a new status, appending a history entry.
	// Delivery staff completing an order must supply a meaningful note.
	UpdateStatus(ctx context.Context, actor entity.User, orderID string, status entity.OrderStatus, note string) (*entity.Order, error)

	// Assign routes an order to a delivery staff member, or unassigns it when
	// staffIdentity is empty. Assignment never touches the order status.
	Assign(ctx context.Context, orderID string, staffIdentity string) (*entity.Order, error)

	// GetOrder returns a single order by ID
	GetOrder(orderID string) (*entity.Order, error)

	// AllOrders returns every order, newest first
	AllOrders() []entity.Order

	// OrdersForCustomer returns the orders placed by the given customer identity, newest first
	OrdersForCustomer(identity string) []entity.Order

	// OrdersAssignedTo returns the orders assigned to the given delivery staff identity, newest first
	OrdersAssignedTo(identity string) []entity.Order
}
