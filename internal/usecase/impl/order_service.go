package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"pureflow/config"
	"pureflow/internal/domain/entity"
	domainerrors "pureflow/internal/domain/errors"
	"pureflow/internal/domain/repository"
	"pureflow/internal/infra/metrics"
	"pureflow/internal/usecase"

	"github.com/google/uuid"
)

// minDeliveryNoteLen is the shortest note accepted when delivery staff
// complete an order.
const minDeliveryNoteLen = 3

type orderService struct {
	orders        repository.OrderCollection
	users         repository.UserCollection
	settings      repository.SettingCollection
	sync          usecase.SyncUsecase
	notifications usecase.NotificationUsecase
	cfg           *config.Config
	metrics       *metrics.Registry
	logger        *slog.Logger

	now func() time.Time
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orders repository.OrderCollection,
	users repository.UserCollection,
	settings repository.SettingCollection,
	syncUC usecase.SyncUsecase,
	notifications usecase.NotificationUsecase,
	cfg *config.Config,
	registry *metrics.Registry,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orders:        orders,
		users:         users,
		settings:      settings,
		sync:          syncUC,
		notifications: notifications,
		cfg:           cfg,
		metrics:       registry,
		logger:        logger,
		now:           time.Now,
	}
}

// PlaceOrder creates an order from the customer's cart. The total and the
// customer snapshot are frozen at placement; later fee or profile changes do
// not reprice or re-address existing orders.
func (s *orderService) PlaceOrder(ctx context.Context, customer entity.User, input usecase.PlaceOrderInput) (*usecase.PlaceOrderResult, error) {
	if customer.Identity() == "" {
		return nil, domainerrors.ErrNotAuthenticated
	}
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}
	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}
	if input.DepositAmount < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("depositAmount must not be negative")
	}

	now := s.now()
	order := entity.Order{
		ID:             newOrderID(now),
		UserMobile:     customer.Identity(),
		UserName:       customer.Name,
		UserAddress:    customer.Address,
		UserZipcode:    customer.Pincode,
		ProductSummary: summarize(input.Items),
		Date:           now.Format("02/01/2006"),
		CreatedAt:      now,
		Total:          entity.Subtotal(input.Items) + s.deliveryFee() + input.DepositAmount,
		Items:          input.Items,
		Status:         entity.StatusPending,
		PaymentMethod:  input.PaymentMethod,
		DepositAmount:  input.DepositAmount,
	}
	order = order.AppendHistory(entity.StatusPending, now, "Order placed")

	s.orders.Upsert(order)
	s.metrics.OrdersPlaced.Inc()

	synced := s.sync.PushOrder(ctx, order, nil)

	s.notifications.Notify(ctx, "Order Confirmed",
		"Your order "+order.ID+" has been placed and is being prepared.",
		entity.NotificationOrder, false, order.UserMobile)

	message := "Order placed and synced to cloud."
	if !synced {
		message = "Order placed on this device. It will sync when the cloud is reachable."
	}

	return &usecase.PlaceOrderResult{Order: order, Synced: synced, Message: message}, nil
}

// UpdateStatus appends a history entry and moves the order to the new status.
// Delivery staff completing an order must supply a proof-of-handover note;
// the check runs before any write so a rejected completion touches nothing,
// locally or remotely.
func (s *orderService) UpdateStatus(ctx context.Context, actor entity.User, orderID string, status entity.OrderStatus, note string) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	note = strings.TrimSpace(note)
	if status == entity.StatusDelivered && actor.IsDeliveryBoy && len(note) < minDeliveryNoteLen {
		return nil, domainerrors.ErrDeliveryNoteRequired
	}
	if note == "" {
		note = "Status updated to " + string(status)
	}

	current, ok := s.orders.Get(orderID)
	if !ok {
		return nil, domainerrors.ErrOrderNotFound
	}

	updated := current.AppendHistory(status, s.now(), note)
	s.orders.Upsert(updated)
	s.sync.PushOrder(ctx, updated, &current)

	s.notifications.Notify(ctx, "Order Updated",
		"Your order "+updated.ID+" is now "+string(status)+".",
		entity.NotificationSystem, false, updated.UserMobile)

	return &updated, nil
}

// Assign routes an order to delivery staff, denormalizing the staff name onto
// the order. It never touches the order status. An empty staffIdentity clears
// the assignment.
func (s *orderService) Assign(ctx context.Context, orderID string, staffIdentity string) (*entity.Order, error) {
	current, ok := s.orders.Get(orderID)
	if !ok {
		return nil, domainerrors.ErrOrderNotFound
	}

	staffIdentity = entity.NormalizeIdentity(staffIdentity)

	var staff entity.User
	if staffIdentity != "" {
		staff, ok = s.users.Get(staffIdentity)
		if !ok || !staff.IsDeliveryBoy {
			return nil, domainerrors.ErrStaffNotFound
		}
	}

	s.orders.Update(orderID, func(doc *entity.Order) {
		doc.AssignedToMobile = staffIdentity
		doc.AssignedToName = staff.Name
	})

	updated, _ := s.orders.Get(orderID)
	s.sync.PushOrder(ctx, updated, &current)

	if staffIdentity != "" {
		s.notifications.Notify(ctx, "New Task",
			"Order "+updated.ID+" has been assigned to you.",
			entity.NotificationDelivery, false, staffIdentity)
	}

	return &updated, nil
}

// GetOrder returns a single order by ID.
func (s *orderService) GetOrder(orderID string) (*entity.Order, error) {
	order, ok := s.orders.Get(orderID)
	if !ok {
		return nil, domainerrors.ErrOrderNotFound
	}

	return &order, nil
}

// AllOrders returns every order, newest first.
func (s *orderService) AllOrders() []entity.Order {
	orders := s.orders.List()
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders
}

// OrdersForCustomer returns the orders placed by the given identity.
func (s *orderService) OrdersForCustomer(identity string) []entity.Order {
	identity = entity.NormalizeIdentity(identity)

	return s.filterOrders(func(o entity.Order) bool {
		return entity.NormalizeIdentity(o.UserMobile) == identity
	})
}

// OrdersAssignedTo returns the orders assigned to the given staff identity.
func (s *orderService) OrdersAssignedTo(identity string) []entity.Order {
	identity = entity.NormalizeIdentity(identity)

	return s.filterOrders(func(o entity.Order) bool {
		return o.AssignedToMobile == identity
	})
}

func (s *orderService) filterOrders(keep func(entity.Order) bool) []entity.Order {
	matched := make([]entity.Order, 0)
	for _, order := range s.AllOrders() {
		if keep(order) {
			matched = append(matched, order)
		}
	}

	return matched
}

// deliveryFee reads the admin-configurable fee, falling back to the configured
// default when no setting has been written yet.
func (s *orderService) deliveryFee() int {
	setting, ok := s.settings.Get(entity.SettingDeliveryFee)
	if !ok {
		return s.cfg.Town.DeliveryFee
	}

	return setting.IntValue(s.cfg.Town.DeliveryFee)
}

// newOrderID mints an opaque order identifier. The millisecond prefix keeps
// IDs roughly sortable; the random suffix keeps two checkouts landing in the
// same millisecond distinct.
func newOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// summarize renders the cart as a compact line like "2x 20L Water Can, 1x Hand Pump".
func summarize(items []entity.CartItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, item.Product.Name))
	}

	return strings.Join(parts, ", ")
}
