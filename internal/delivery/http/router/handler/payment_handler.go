package handler

import (
	"log/slog"
	"net/http"

	"pureflow/config"
	domainerrors "pureflow/internal/domain/errors"
	"pureflow/internal/domain/service"
	"pureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler renders the UPI payment QR for an order. Payment is a manual
// scan-and-pay flow; no gateway is involved.
type PaymentHandler struct {
	orders   usecase.OrderUsecase
	admin    usecase.AdminUsecase
	sessions usecase.SessionUsecase
	qr       service.QRCodeService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(
	orders usecase.OrderUsecase,
	admin usecase.AdminUsecase,
	sessions usecase.SessionUsecase,
	qr service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		orders:   orders,
		admin:    admin,
		sessions: sessions,
		qr:       qr,
		cfg:      cfg,
		logger:   logger,
	}
}

// OrderQR returns a PNG QR code encoding the UPI payment intent for the order.
func (h *PaymentHandler) OrderQR(c echo.Context) error {
	caller, err := CallerUser(c, h.sessions)
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.orders.GetOrder(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	if !mayReadOrder(caller, *order) {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	png, err := h.qr.GeneratePaymentQR(h.admin.Settings().UPIID, h.cfg.Town.Name, order.Total, order.ID)
	if err != nil {
		h.logger.Error("payment QR generation failed", slog.String("order", order.ID), slog.Any("error", err))

		return errors.WithStack(domainerrors.ErrInternalError)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
