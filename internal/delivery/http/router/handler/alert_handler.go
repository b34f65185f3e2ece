package handler

import (
	"net/http"

	"github.com/MelissaPascal/sulten-dms-ai/internal/delivery/http/response"
	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"
	"github.com/MelissaPascal/sulten-dms-ai/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AlertHandler holds dependencies for alert configuration handlers.
type AlertHandler struct {
	uc usecase.AlertUsecase
}

// NewAlertHandler is the constructor for AlertHandler, injected by Fx.
func NewAlertHandler(uc usecase.AlertUsecase) *AlertHandler {
	return &AlertHandler{
		uc: uc,
	}
}

// GetConfig returns a snapshot of the current alert configuration.
func (h *AlertHandler) GetConfig(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.GetConfig(), "")
}

// UpdateConfig replaces the alert configuration wholesale.
func (h *AlertHandler) UpdateConfig(c echo.Context) error {
	var cfg entity.AlertConfig
	if err := c.Bind(&cfg); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert configuration")
	}

	if err := h.uc.UpdateConfig(cfg); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.GetConfig(), "Alert configuration updated")
}
