// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/MelissaPascal/sulten-dms-ai/internal/delivery/http/response"
	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"
	"github.com/MelissaPascal/sulten-dms-ai/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateOrder handles the order creation request.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Order created successfully")
}

// ListOrders returns all orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder returns one order by internal ID or order number.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.uc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

type updateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// UpdateOrderStatus handles the status transition request. The path
// parameter accepts either the internal ID or the order number.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateOrderStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": string(req.Status)}, "Order status updated")
}
