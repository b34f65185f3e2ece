package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/MelissaPascal/sulten-dms-ai/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExportHandler streams orders and inventory as CSV downloads.
type ExportHandler struct {
	orders  usecase.OrderUsecase
	catalog usecase.CatalogUsecase
}

// NewExportHandler is the constructor for ExportHandler, injected by Fx.
func NewExportHandler(orders usecase.OrderUsecase, catalog usecase.CatalogUsecase) *ExportHandler {
	return &ExportHandler{
		orders:  orders,
		catalog: catalog,
	}
}

// ExportOrders writes all orders as a CSV attachment.
func (h *ExportHandler) ExportOrders(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	setCSVHeaders(c, "orders")
	writer := csv.NewWriter(c.Response())

	if err := writer.Write([]string{"Order Number", "Retailer", "Location", "Product", "Quantity", "Total Amount", "Status", "Created At"}); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}

	for _, order := range orders {
		record := []string{
			order.OrderNumber,
			order.Retailer.Name,
			order.Retailer.Location,
			order.Product.Name,
			strconv.Itoa(order.Quantity),
			order.TotalAmount.StringFixed(2),
			string(order.Status),
			order.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "failed to write csv record")
		}
	}

	writer.Flush()

	return errors.WithStack(writer.Error())
}

// ExportInventory writes the current inventory as a CSV attachment.
func (h *ExportHandler) ExportInventory(c echo.Context) error {
	items, err := h.catalog.ListInventory(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	setCSVHeaders(c, "inventory")
	writer := csv.NewWriter(c.Response())

	if err := writer.Write([]string{"Product", "Current Stock", "Reorder Threshold", "Low Stock", "Last Updated"}); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}

	for _, item := range items {
		record := []string{
			item.Product.Name,
			strconv.Itoa(item.CurrentStock),
			strconv.Itoa(item.Product.ReorderThreshold),
			strconv.FormatBool(item.IsLowStock()),
			item.LastUpdated.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "failed to write csv record")
		}
	}

	writer.Flush()

	return errors.WithStack(writer.Error())
}

func setCSVHeaders(c echo.Context, name string) {
	filename := name + "-" + time.Now().Format("2006-01-02") + ".csv"
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().WriteHeader(http.StatusOK)
}
