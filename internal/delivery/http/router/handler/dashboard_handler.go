package handler

import (
	"net/http"

	"github.com/MelissaPascal/sulten-dms-ai/internal/delivery/http/response"
	"github.com/MelissaPascal/sulten-dms-ai/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the dashboard metrics handler.
type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		uc: uc,
	}
}

// GetMetrics returns the computed dashboard aggregates.
func (h *DashboardHandler) GetMetrics(c echo.Context) error {
	metrics, err := h.uc.GetMetrics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, metrics, "")
}
