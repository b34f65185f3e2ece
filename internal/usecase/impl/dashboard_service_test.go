package impl

import (
	"context"
	"testing"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"
	mockRepo "github.com/MelissaPascal/sulten-dms-ai/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetMetrics(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	service := NewDashboardService(orderRepo, inventoryRepo)

	ctx := context.Background()
	retailerA := uuid.New()
	retailerB := uuid.New()

	orderRepo.EXPECT().ListOrders(ctx).Return([]*entity.OrderDetails{
		{Order: entity.Order{RetailerID: retailerA, TotalAmount: decimal.RequireFromString("100.00")}},
		{Order: entity.Order{RetailerID: retailerA, TotalAmount: decimal.RequireFromString("250.00")}},
		{Order: entity.Order{RetailerID: retailerB, TotalAmount: decimal.RequireFromString("101.00")}},
	}, nil)

	inventoryRepo.EXPECT().ListInventory(ctx).Return([]*entity.InventoryItem{
		{
			Inventory: entity.Inventory{CurrentStock: 100},
			Product:   entity.Product{ReorderThreshold: 20},
		},
		{
			Inventory: entity.Inventory{CurrentStock: 15},
			Product:   entity.Product{Name: "Original Rice Cakes", ReorderThreshold: 20},
		},
		{
			Inventory: entity.Inventory{CurrentStock: 20},
			Product:   entity.Product{Name: "Chocolate Rice Cakes", ReorderThreshold: 20},
		},
	}, nil)

	metrics, err := service.GetMetrics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, metrics.TotalOrders)
	assert.Equal(t, 135, metrics.ItemsInStock)
	assert.Equal(t, 2, metrics.ActiveRetailers)
	// (100 + 250 + 101) / 3 = 150.33..., rounded to 150.
	assert.Equal(t, 150, metrics.AvgOrderValue)
	require.Len(t, metrics.LowStockItems, 2)
	assert.Equal(t, "Original Rice Cakes", metrics.LowStockItems[0].Product.Name)
	assert.Equal(t, "Chocolate Rice Cakes", metrics.LowStockItems[1].Product.Name)
}

func TestDashboardService_GetMetrics_EmptyStore(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	service := NewDashboardService(orderRepo, inventoryRepo)

	ctx := context.Background()
	orderRepo.EXPECT().ListOrders(ctx).Return(nil, nil)
	inventoryRepo.EXPECT().ListInventory(ctx).Return(nil, nil)

	metrics, err := service.GetMetrics(ctx)
	require.NoError(t, err)

	assert.Zero(t, metrics.TotalOrders)
	assert.Zero(t, metrics.ItemsInStock)
	assert.Zero(t, metrics.ActiveRetailers)
	assert.Zero(t, metrics.AvgOrderValue)
	assert.Empty(t, metrics.LowStockItems)
}

func TestDashboardService_GetMetrics_PropagatesReadErrors(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	service := NewDashboardService(orderRepo, inventoryRepo)

	ctx := context.Background()
	orderRepo.EXPECT().ListOrders(ctx).Return(nil, errors.New("connection refused"))

	_, err := service.GetMetrics(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list orders")
}
