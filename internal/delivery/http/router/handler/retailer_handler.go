package handler

import (
	"net/http"

	"github.com/MelissaPascal/sulten-dms-ai/internal/delivery/http/response"
	"github.com/MelissaPascal/sulten-dms-ai/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RetailerHandler holds dependencies for retailer-related handlers.
type RetailerHandler struct {
	uc usecase.CatalogUsecase
}

// NewRetailerHandler is the constructor for RetailerHandler, injected by Fx.
func NewRetailerHandler(uc usecase.CatalogUsecase) *RetailerHandler {
	return &RetailerHandler{
		uc: uc,
	}
}

// CreateRetailer handles the retailer registration request.
func (h *RetailerHandler) CreateRetailer(c echo.Context) error {
	var input usecase.CreateRetailerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid retailer input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	retailer, err := h.uc.CreateRetailer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, retailer, "Retailer created successfully")
}

// ListRetailers returns all registered retailers.
func (h *RetailerHandler) ListRetailers(c echo.Context) error {
	retailers, err := h.uc.ListRetailers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, retailers, "")
}
