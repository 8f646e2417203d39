package handler

import (
	"log/slog"
	"net/http"

	"pureflow/internal/delivery/http/response"
	"pureflow/internal/domain/entity"
	domainerrors "pureflow/internal/domain/errors"
	"pureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc       usecase.OrderUsecase
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, sessions usecase.SessionUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, sessions: sessions, logger: logger}
}

// Place handles checkout for the authenticated customer.
func (h *OrderHandler) Place(c echo.Context) error {
	customer, err := CallerUser(c, h.sessions)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	output, err := h.uc.PlaceOrder(c.Request().Context(), customer, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, output.Message)
}

// ListMine returns the caller's own orders, newest first.
func (h *OrderHandler) ListMine(c echo.Context) error {
	customer, err := CallerUser(c, h.sessions)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.OrdersForCustomer(customer.Identity()), "")
}

// ListAll returns every order for the admin dashboard.
func (h *OrderHandler) ListAll(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.AllOrders(), "")
}

// ListAssigned returns the orders assigned to the calling delivery staff.
func (h *OrderHandler) ListAssigned(c echo.Context) error {
	staff, err := CallerUser(c, h.sessions)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.OrdersAssignedTo(staff.Identity()), "")
}

// Get returns one order. Customers may only read their own orders; staff may
// read assigned ones and admins everything.
func (h *OrderHandler) Get(c echo.Context) error {
	caller, err := CallerUser(c, h.sessions)
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.GetOrder(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	if !mayReadOrder(caller, *order) {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return response.Success(c, http.StatusOK, order, "")
}

type updateStatusInput struct {
	Status entity.OrderStatus `json:"status"`
	Note   string             `json:"note"`
}

// UpdateStatus moves an order to a new fulfillment status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, err := CallerUser(c, h.sessions)
	if err != nil {
		return errors.WithStack(err)
	}

	if !actor.IsAdmin && !actor.IsDeliveryBoy {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	var input updateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), actor, c.Param("id"), input.Status, input.Note)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated")
}

type assignInput struct {
	StaffMobile string `json:"staffMobile"`
}

// Assign routes an order to a delivery staff member (admin only; the router
// gates the role). An empty staffMobile clears the assignment.
func (h *OrderHandler) Assign(c echo.Context) error {
	var input assignInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	order, err := h.uc.Assign(c.Request().Context(), c.Param("id"), input.StaffMobile)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order assignment updated")
}

func mayReadOrder(caller entity.User, order entity.Order) bool {
	switch {
	case caller.IsAdmin:
		return true
	case caller.IsDeliveryBoy && order.AssignedToMobile == caller.Identity():
		return true
	default:
		return entity.NormalizeIdentity(order.UserMobile) == caller.Identity()
	}
}
