package handler

import (
	"log/slog"
	"net/http"

	"pureflow/internal/delivery/http/response"
	"pureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for staff and settings administration.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

type addStaffInput struct {
	Mobile string `json:"mobile"`
	Name   string `json:"name"`
}

// AddStaff registers a mobile number as delivery staff.
func (h *AdminHandler) AddStaff(c echo.Context) error {
	var input addStaffInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}

	staff, err := h.uc.AddStaff(c.Request().Context(), input.Mobile, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, staff, "Staff registered")
}

// ListStaff returns every user carrying the delivery role.
func (h *AdminHandler) ListStaff(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Staff(), "")
}

// ListUsers returns every known user profile.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Users(), "")
}

type setRolesInput struct {
	IsDeliveryBoy *bool `json:"isDeliveryBoy"`
	IsAdmin       *bool `json:"isAdmin"`
}

// SetRoles flips role flags on an existing user. Omitted fields are untouched.
func (h *AdminHandler) SetRoles(c echo.Context) error {
	var input setRolesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}

	identity := c.Param("identity")
	ctx := c.Request().Context()

	if input.IsDeliveryBoy != nil {
		if _, err := h.uc.SetDeliveryRole(ctx, identity, *input.IsDeliveryBoy); err != nil {
			return errors.WithStack(err)
		}
	}
	if input.IsAdmin != nil {
		if _, err := h.uc.SetAdminRole(ctx, identity, *input.IsAdmin); err != nil {
			return errors.WithStack(err)
		}
	}

	return response.Success(c, http.StatusOK, nil, "Roles updated")
}

// GetSettings returns the store settings. Public: checkout needs the fee and
// the UPI target before login completes.
func (h *AdminHandler) GetSettings(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Settings(), "")
}

// UpdateSettings persists the store settings.
func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	var input usecase.StoreSettings
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := h.uc.UpdateSettings(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.Settings(), "Settings updated")
}
