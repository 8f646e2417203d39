package handler

import (
	"net/http"

	"pureflow/internal/delivery/http/response"
	"pureflow/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SystemHandler exposes liveness and sync health.
type SystemHandler struct {
	sync usecase.SyncUsecase
}

// NewSystemHandler is the constructor for SystemHandler, injected by Fx.
func NewSystemHandler(sync usecase.SyncUsecase) *SystemHandler {
	return &SystemHandler{sync: sync}
}

// Health is the liveness probe.
func (h *SystemHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// SyncStatus reports whether the last cloud interaction succeeded. The client
// renders this as the online/offline indicator.
func (h *SystemHandler) SyncStatus(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]bool{"cloudSynced": h.sync.CloudSynced()}, "")
}
