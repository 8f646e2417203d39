// Package entity contains the core business objects of the project.
package entity

import "time"

// OrderStatus is the fulfillment state of an order. The usual forward path is
// Pending -> Processing -> Out for Delivery -> Delivered, with Cancelled
// reachable from any non-terminal state. Transitions are deliberately not
// validated against this graph: staff may move a status backward to correct a
// mistaken entry.
type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusProcessing     OrderStatus = "Processing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends the fulfillment flow.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// PaymentMethod is how the customer settles the order. UPI payment is a manual
// QR-scan honor system, not a gateway integration.
type PaymentMethod string

const (
	PaymentCOD PaymentMethod = "COD"
	PaymentUPI PaymentMethod = "UPI/Online"
)

// IsValid checks if the payment method is a known value.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCOD || m == PaymentUPI
}

// HistoryTimeFormat renders the human-facing timestamp stored in each
// status-history entry.
const HistoryTimeFormat = "02/01/2006 15:04"

// StatusHistory is one entry of an order's append-only transition log.
type StatusHistory struct {
	Status    OrderStatus `json:"status"`
	Timestamp string      `json:"timestamp"`
	Note      string      `json:"note,omitempty"`
}

// Order is a placed purchase. The customer fields are a denormalized snapshot
// taken at placement so later profile edits do not retroactively alter the
// order, and Total is frozen at placement even if the delivery fee changes.
//
// History is append-only and never empty after creation: it is seeded with a
// Pending entry and gains exactly one entry per status transition.
type Order struct {
	ID             string          `json:"id"`
	UserMobile     string          `json:"userMobile"`
	UserName       string          `json:"userName"`
	UserAddress    string          `json:"userAddress"`
	UserZipcode    string          `json:"userZipcode"`
	ProductSummary string          `json:"productSummary"`
	Date           string          `json:"date"`
	CreatedAt      time.Time       `json:"createdAt"`
	Total          int             `json:"total"`
	Items          []CartItem      `json:"items"`
	Status         OrderStatus     `json:"status"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	History        []StatusHistory `json:"history"`

	// Assignment is independent of status: assigning an order to staff does
	// not itself change the status. AssignedToName is denormalized at
	// assignment time.
	AssignedToMobile string `json:"assignedToMobile,omitempty"`
	AssignedToName   string `json:"assignedToName,omitempty"`

	DepositAmount int `json:"depositAmount,omitempty"`
}

// DocumentID keys the order in the orders collection.
func (o Order) DocumentID() string {
	return o.ID
}

// AppendHistory returns a copy of the order moved to the given status with one
// new history entry. Existing entries are never edited or removed.
func (o Order) AppendHistory(status OrderStatus, at time.Time, note string) Order {
	entry := StatusHistory{
		Status:    status,
		Timestamp: at.Format(HistoryTimeFormat),
		Note:      note,
	}

	history := make([]StatusHistory, 0, len(o.History)+1)
	history = append(history, o.History...)
	history = append(history, entry)

	o.Status = status
	o.History = history

	return o
}

// Subtotal sums the line-item snapshots.
func Subtotal(items []CartItem) int {
	var total int
	for _, item := range items {
		total += item.Product.Price * item.Quantity
	}

	return total
}
