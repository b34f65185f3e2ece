package handler

import (
	"net/http"
	"strconv"

	"github.com/MelissaPascal/sulten-dms-ai/internal/delivery/http/response"
	domainerrors "github.com/MelissaPascal/sulten-dms-ai/internal/domain/errors"
	"github.com/MelissaPascal/sulten-dms-ai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InventoryHandler holds dependencies for inventory and sales-target handlers.
type InventoryHandler struct {
	uc usecase.CatalogUsecase
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.CatalogUsecase) *InventoryHandler {
	return &InventoryHandler{
		uc: uc,
	}
}

// ListInventory returns every inventory record joined with its product.
func (h *InventoryHandler) ListInventory(c echo.Context) error {
	items, err := h.uc.ListInventory(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

type setStockRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// SetStockLevel handles manual stock adjustment for one product.
func (h *InventoryHandler) SetStockLevel(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("productId must be a UUID")
	}

	var req setStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetStockLevel(c.Request().Context(), productID, req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"currentStock": req.Quantity}, "Stock level updated")
}

// GetSalesTarget returns the sales target record for one (month, year) period.
func (h *InventoryHandler) GetSalesTarget(c echo.Context) error {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("month must be a number")
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("year must be a number")
	}

	target, err := h.uc.GetSalesTarget(c.Request().Context(), month, year)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, target, "")
}
