package handler

import (
	"log/slog"
	"net/http"

	"pureflow/internal/delivery/http/response"
	"pureflow/internal/domain/entity"
	"pureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for product catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// List returns the product catalog. Public: the storefront renders before login.
func (h *CatalogHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Products(), "")
}

// Save creates or updates a product (admin only; the router gates the role).
func (h *CatalogHandler) Save(c echo.Context) error {
	var product entity.Product
	if err := c.Bind(&product); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	saved, err := h.uc.SaveProduct(c.Request().Context(), product)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, saved, "Product saved")
}

// Delete removes a product from the catalog.
func (h *CatalogHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}
