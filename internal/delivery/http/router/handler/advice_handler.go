package handler

import (
	"net/http"
	"strings"

	"pureflow/internal/delivery/http/response"
	"pureflow/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AdviceHandler exposes the water-advice assistant.
type AdviceHandler struct {
	advice service.AdviceService
}

// NewAdviceHandler is the constructor for AdviceHandler, injected by Fx.
func NewAdviceHandler(advice service.AdviceService) *AdviceHandler {
	return &AdviceHandler{advice: advice}
}

type adviceInput struct {
	Prompt string `json:"prompt"`
}

// Ask answers a free-text hydration question. The assistant never errors;
// connectivity problems come back as an apologetic answer.
func (h *AdviceHandler) Ask(c echo.Context) error {
	var input adviceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid advice input")
	}

	if strings.TrimSpace(input.Prompt) == "" {
		return response.BindingError(c, "INVALID_INPUT", "Prompt is required")
	}

	advice := h.advice.GetWaterAdvice(c.Request().Context(), input.Prompt)

	return response.Success(c, http.StatusOK, advice, "")
}
