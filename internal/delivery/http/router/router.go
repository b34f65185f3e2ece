// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/MelissaPascal/sulten-dms-ai/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler     *handler.OrderHandler
	RetailerHandler  *handler.RetailerHandler
	ProductHandler   *handler.ProductHandler
	InventoryHandler *handler.InventoryHandler
	DashboardHandler *handler.DashboardHandler
	AlertHandler     *handler.AlertHandler
	ExportHandler    *handler.ExportHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler     *handler.OrderHandler
	retailerHandler  *handler.RetailerHandler
	productHandler   *handler.ProductHandler
	inventoryHandler *handler.InventoryHandler
	dashboardHandler *handler.DashboardHandler
	alertHandler     *handler.AlertHandler
	exportHandler    *handler.ExportHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:     params.OrderHandler,
		retailerHandler:  params.RetailerHandler,
		productHandler:   params.ProductHandler,
		inventoryHandler: params.InventoryHandler,
		dashboardHandler: params.DashboardHandler,
		alertHandler:     params.AlertHandler,
		exportHandler:    params.ExportHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.GET("/retailers", r.retailerHandler.ListRetailers)
		api.POST("/retailers", r.retailerHandler.CreateRetailer)

		api.GET("/products", r.productHandler.ListProducts)
		api.POST("/products", r.productHandler.CreateProduct)

		api.GET("/orders", r.orderHandler.ListOrders)
		api.POST("/orders", r.orderHandler.CreateOrder)
		api.GET("/orders/:id", r.orderHandler.GetOrder)
		api.PATCH("/orders/:id/status", r.orderHandler.UpdateOrderStatus)

		api.GET("/inventory", r.inventoryHandler.ListInventory)
		api.PATCH("/inventory/:productId", r.inventoryHandler.SetStockLevel)
		api.GET("/sales-target/:month/:year", r.inventoryHandler.GetSalesTarget)

		api.GET("/dashboard/metrics", r.dashboardHandler.GetMetrics)

		api.GET("/alerts/config", r.alertHandler.GetConfig)
		api.PUT("/alerts/config", r.alertHandler.UpdateConfig)

		api.GET("/export/orders", r.exportHandler.ExportOrders)
		api.GET("/export/inventory", r.exportHandler.ExportInventory)
	}
}
