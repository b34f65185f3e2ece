package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"
	domainerrors "github.com/MelissaPascal/sulten-dms-ai/internal/domain/errors"
	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/repository"
	mockRepo "github.com/MelissaPascal/sulten-dms-ai/internal/mocks/repository"
	mockSvc "github.com/MelissaPascal/sulten-dms-ai/internal/mocks/service"
	"github.com/MelissaPascal/sulten-dms-ai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	retailerRepo    *mockRepo.MockRetailerRepository
	productRepo     *mockRepo.MockProductRepository
	orderRepo       *mockRepo.MockOrderRepository
	inventoryRepo   *mockRepo.MockInventoryRepository
	salesTargetRepo *mockRepo.MockSalesTargetRepository
	messages        *mockSvc.MockMessageService
}

func newOrderServiceForTest(t *testing.T, alertCfg entity.AlertConfig) (usecase.OrderUsecase, *orderServiceMocks) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mocks := &orderServiceMocks{
		retailerRepo:    mockRepo.NewMockRetailerRepository(t),
		productRepo:     mockRepo.NewMockProductRepository(t),
		orderRepo:       mockRepo.NewMockOrderRepository(t),
		inventoryRepo:   mockRepo.NewMockInventoryRepository(t),
		salesTargetRepo: mockRepo.NewMockSalesTargetRepository(t),
		messages:        mockSvc.NewMockMessageService(t),
	}

	alerts := NewAlertService(logger, mocks.messages, alertCfg)
	service := NewOrderService(
		logger,
		mocks.retailerRepo,
		mocks.productRepo,
		mocks.orderRepo,
		mocks.inventoryRepo,
		mocks.salesTargetRepo,
		alerts,
		decimal.RequireFromString("25000.00"),
	)

	return service, mocks
}

func testRetailer() *entity.Retailer {
	return &entity.Retailer{
		ID:       uuid.New(),
		Name:     "Massy Stores San Fernando",
		Location: "San Fernando",
	}
}

func testProduct(price string, threshold int) *entity.Product {
	return &entity.Product{
		ID:               uuid.New(),
		Name:             "Original Rice Cakes",
		PricePerUnit:     decimal.RequireFromString(price),
		UnitsPerCase:     24,
		ReorderThreshold: threshold,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	service, mocks := newOrderServiceForTest(t, entity.AlertConfig{})
	ctx := context.Background()

	retailer := testRetailer()
	product := testProduct("120.50", 20)

	mocks.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	mocks.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	mocks.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	mocks.inventoryRepo.EXPECT().DecrementStock(ctx, product.ID, 5).Return(95, nil)
	mocks.salesTargetRepo.EXPECT().
		AccumulateSales(ctx, mock.AnythingOfType("int"), mock.AnythingOfType("int"),
			decimal.RequireFromString("602.50"), decimal.RequireFromString("25000.00")).
		Return(&entity.SalesTarget{}, nil)

	result, err := service.CreateOrder(ctx, usecase.CreateOrderInput{
		RetailerID: retailer.ID,
		ProductID:  product.ID,
		Quantity:   5,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 95, result.NewStock)
	assert.Equal(t, entity.OrderStatusPending, result.Order.Status)
	assert.True(t, result.Order.TotalAmount.Equal(decimal.RequireFromString("602.50")))
	assert.Empty(t, result.Notifications)

	prefix := fmt.Sprintf("ORD-%d-", time.Now().Year())
	assert.True(t, strings.HasPrefix(result.Order.OrderNumber, prefix), result.Order.OrderNumber)
	assert.Len(t, result.Order.OrderNumber, len(prefix)+4)
}

func TestOrderService_CreateOrder_RejectsNonPositiveQuantity(t *testing.T) {
	service, _ := newOrderServiceForTest(t, entity.AlertConfig{})

	for _, quantity := range []int{0, -3} {
		_, err := service.CreateOrder(context.Background(), usecase.CreateOrderInput{
			RetailerID: uuid.New(),
			ProductID:  uuid.New(),
			Quantity:   quantity,
		})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	}
}

func TestOrderService_CreateOrder_RejectsUnknownStatus(t *testing.T) {
	service, _ := newOrderServiceForTest(t, entity.AlertConfig{})

	_, err := service.CreateOrder(context.Background(), usecase.CreateOrderInput{
		RetailerID: uuid.New(),
		ProductID:  uuid.New(),
		Quantity:   1,
		Status:     "shipped",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidOrderStatus.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_CreateOrder_RetailerNotFoundBeforeAnyMutation(t *testing.T) {
	service, mocks := newOrderServiceForTest(t, entity.AlertConfig{})
	ctx := context.Background()
	retailerID := uuid.New()

	mocks.retailerRepo.EXPECT().
		FindRetailerByID(ctx, retailerID).
		Return(nil, repository.ErrRetailerNotFound)

	_, err := service.CreateOrder(ctx, usecase.CreateOrderInput{
		RetailerID: retailerID,
		ProductID:  uuid.New(),
		Quantity:   2,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrRetailerNotFound.ErrorCode(), appErr.ErrorCode())

	// No order insert, decrement or accumulation may have happened.
	mocks.orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	mocks.inventoryRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
	mocks.salesTargetRepo.AssertNotCalled(t, "AccumulateSales", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_ProductNotFoundBeforeAnyMutation(t *testing.T) {
	service, mocks := newOrderServiceForTest(t, entity.AlertConfig{})
	ctx := context.Background()

	retailer := testRetailer()
	productID := uuid.New()

	mocks.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	mocks.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.CreateOrder(ctx, usecase.CreateOrderInput{
		RetailerID: retailer.ID,
		ProductID:  productID,
		Quantity:   2,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProductNotFound.ErrorCode(), appErr.ErrorCode())
	mocks.orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_DeclaredTotalMustMatchDerived(t *testing.T) {
	service, mocks := newOrderServiceForTest(t, entity.AlertConfig{})
	ctx := context.Background()

	retailer := testRetailer()
	product := testProduct("100.00", 20)

	mocks.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	mocks.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

	_, err := service.CreateOrder(ctx, usecase.CreateOrderInput{
		RetailerID:  retailer.ID,
		ProductID:   product.ID,
		Quantity:    3,
		TotalAmount: "250.00", // derived total is 300.00
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrAmountMismatch.ErrorCode(), appErr.ErrorCode())
	mocks.orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_DeclaredTotalValidation(t *testing.T) {
	tests := []struct {
		name     string
		declared string
	}{
		{name: "not a decimal", declared: "abc"},
		{name: "negative", declared: "-10.00"},
		{name: "too many fractional digits", declared: "300.001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mocks := newOrderServiceForTest(t, entity.AlertConfig{})
			ctx := context.Background()

			retailer := testRetailer()
			product := testProduct("100.00", 20)

			mocks.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
			mocks.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

			_, err := service.CreateOrder(ctx, usecase.CreateOrderInput{
				RetailerID:  retailer.ID,
				ProductID:   product.ID,
				Quantity:    3,
				TotalAmount: tt.declared,
			})
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestOrderService_CreateOrder_MatchingDeclaredTotalAccepted(t *testing.T) {
	service, mocks := newOrderServiceForTest(t, entity.AlertConfig{})
	ctx := context.Background()

	retailer := testRetailer()
	product := testProduct("100.00", 20)

	mocks.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	mocks.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	mocks.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	mocks.inventoryRepo.EXPECT().DecrementStock(ctx, product.ID, 3).Return(50, nil)
	mocks.salesTargetRepo.EXPECT().
		AccumulateSales(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.SalesTarget{}, nil)

	result, err := service.CreateOrder(ctx, usecase.CreateOrderInput{
		RetailerID:  retailer.ID,
		ProductID:   product.ID,
		Quantity:    3,
		TotalAmount: "300.0", // equal in value to the derived 300.00
	})
	require.NoError(t, err)
	assert.True(t, result.Order.TotalAmount.Equal(decimal.RequireFromString("300.00")))
}

func TestOrderService_CreateOrder_RetriesOrderNumberCollisions(t *testing.T) {
	service, mocks := newOrderServiceForTest(t, entity.AlertConfig{})
	ctx := context.Background()

	retailer := testRetailer()
	product := testProduct("50.00", 20)

	mocks.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	mocks.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

	var numbers []string
	mocks.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			numbers = append(numbers, order.OrderNumber)
		}).
		Return(repository.ErrDuplicateOrderNumber).
		Twice()
	mocks.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			numbers = append(numbers, order.OrderNumber)
		}).
		Return(nil).
		Once()
	mocks.inventoryRepo.EXPECT().DecrementStock(ctx, product.ID, 1).Return(10, nil)
	mocks.salesTargetRepo.EXPECT().
		AccumulateSales(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.SalesTarget{}, nil)

	_, err := service.CreateOrder(ctx, usecase.CreateOrderInput{
		RetailerID: retailer.ID,
		ProductID:  product.ID,
		Quantity:   1,
	})
	require.NoError(t, err)
	assert.Len(t, numbers, 3)
}

func TestOrderService_CreateOrder_ConflictAfterExhaustedRetries(t *testing.T) {
	service, mocks := newOrderServiceForTest(t, entity.AlertConfig{})
	ctx := context.Background()

	retailer := testRetailer()
	product := testProduct("50.00", 20)

	mocks.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	mocks.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	mocks.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrDuplicateOrderNumber).
		Times(5)

	_, err := service.CreateOrder(ctx, usecase.CreateOrderInput{
		RetailerID: retailer.ID,
		ProductID:  product.ID,
		Quantity:   1,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrOrderNumberConflict.ErrorCode(), appErr.ErrorCode())
	mocks.inventoryRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_DecrementFailureSurfacesAfterCommit(t *testing.T) {
	service, mocks := newOrderServiceForTest(t, entity.AlertConfig{})
	ctx := context.Background()

	retailer := testRetailer()
	product := testProduct("50.00", 20)

	mocks.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	mocks.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	mocks.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	mocks.inventoryRepo.EXPECT().
		DecrementStock(ctx, product.ID, 1).
		Return(0, errors.New("connection reset"))

	_, err := service.CreateOrder(ctx, usecase.CreateOrderInput{
		RetailerID: retailer.ID,
		ProductID:  product.ID,
		Quantity:   1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inventory decrement failed")
	mocks.salesTargetRepo.AssertNotCalled(t, "AccumulateSales", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_LowStockAlertFires(t *testing.T) {
	service, mocks := newOrderServiceForTest(t, entity.AlertConfig{
		Enabled:            true,
		Recipients:         []string{"+18685550001", "+18685550002"},
		SendPOAlerts:       true,
		SendLowStockAlerts: true,
	})
	ctx := context.Background()

	retailer := testRetailer()
	product := testProduct("50.00", 20)

	mocks.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	mocks.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	mocks.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	// Stock 15 -> 10, at or below the threshold of 20.
	mocks.inventoryRepo.EXPECT().DecrementStock(ctx, product.ID, 5).Return(10, nil)
	mocks.salesTargetRepo.EXPECT().
		AccumulateSales(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.SalesTarget{}, nil)
	mocks.messages.EXPECT().Send(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)

	result, err := service.CreateOrder(ctx, usecase.CreateOrderInput{
		RetailerID: retailer.ID,
		ProductID:  product.ID,
		Quantity:   5,
	})
	require.NoError(t, err)

	// Purchase-order and low-stock alerts, each to both recipients.
	require.Len(t, result.Notifications, 4)
	kinds := map[usecase.AlertKind]int{}
	for _, delivery := range result.Notifications {
		kinds[delivery.Kind]++
		assert.True(t, delivery.Delivered)
	}
	assert.Equal(t, 2, kinds[usecase.AlertKindPurchaseOrder])
	assert.Equal(t, 2, kinds[usecase.AlertKindLowStock])
}

func TestOrderService_CreateOrder_DisabledAlertsProduceNoNotifications(t *testing.T) {
	service, mocks := newOrderServiceForTest(t, entity.AlertConfig{
		Enabled:            false,
		Recipients:         []string{"+18685550001"},
		SendPOAlerts:       true,
		SendLowStockAlerts: true,
	})
	ctx := context.Background()

	retailer := testRetailer()
	product := testProduct("50.00", 20)

	mocks.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	mocks.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	mocks.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	mocks.inventoryRepo.EXPECT().DecrementStock(ctx, product.ID, 5).Return(0, nil)
	mocks.salesTargetRepo.EXPECT().
		AccumulateSales(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.SalesTarget{}, nil)

	result, err := service.CreateOrder(ctx, usecase.CreateOrderInput{
		RetailerID: retailer.ID,
		ProductID:  product.ID,
		Quantity:   5,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Notifications)
	mocks.messages.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_FailedDeliveriesDoNotFailOrder(t *testing.T) {
	service, mocks := newOrderServiceForTest(t, entity.AlertConfig{
		Enabled:      true,
		Recipients:   []string{"+18685550001"},
		SendPOAlerts: true,
	})
	ctx := context.Background()

	retailer := testRetailer()
	product := testProduct("50.00", 5)

	mocks.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	mocks.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	mocks.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	mocks.inventoryRepo.EXPECT().DecrementStock(ctx, product.ID, 2).Return(80, nil)
	mocks.salesTargetRepo.EXPECT().
		AccumulateSales(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.SalesTarget{}, nil)
	mocks.messages.EXPECT().
		Send(ctx, "+18685550001", mock.AnythingOfType("string")).
		Return(errors.New("twilio unreachable"))

	result, err := service.CreateOrder(ctx, usecase.CreateOrderInput{
		RetailerID: retailer.ID,
		ProductID:  product.ID,
		Quantity:   2,
	})
	require.NoError(t, err)

	require.Len(t, result.Notifications, 1)
	assert.False(t, result.Notifications[0].Delivered)
	assert.Contains(t, result.Notifications[0].Error, "twilio unreachable")
}

func TestOrderService_UpdateOrderStatus_ByIDAndByNumber(t *testing.T) {
	service, mocks := newOrderServiceForTest(t, entity.AlertConfig{})
	ctx := context.Background()

	id := uuid.New()
	mocks.orderRepo.EXPECT().UpdateOrderStatus(ctx, id, entity.OrderStatusCompleted).Return(nil)
	require.NoError(t, service.UpdateOrderStatus(ctx, id.String(), entity.OrderStatusCompleted))

	mocks.orderRepo.EXPECT().
		UpdateOrderStatusByNumber(ctx, "ORD-2026-0042", entity.OrderStatusProcessing).
		Return(nil)
	require.NoError(t, service.UpdateOrderStatus(ctx, "ORD-2026-0042", entity.OrderStatusProcessing))
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	service, mocks := newOrderServiceForTest(t, entity.AlertConfig{})
	ctx := context.Background()

	mocks.orderRepo.EXPECT().
		UpdateOrderStatusByNumber(ctx, "ORD-2026-9999", entity.OrderStatusCancelled).
		Return(repository.ErrOrderNotFound)

	err := service.UpdateOrderStatus(ctx, "ORD-2026-9999", entity.OrderStatusCancelled)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrOrderNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_UpdateOrderStatus_RejectsInvalidStatus(t *testing.T) {
	service, _ := newOrderServiceForTest(t, entity.AlertConfig{})

	err := service.UpdateOrderStatus(context.Background(), uuid.New().String(), "archived")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidOrderStatus.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_GetOrder_FallsBackToOrderNumber(t *testing.T) {
	service, mocks := newOrderServiceForTest(t, entity.AlertConfig{})
	ctx := context.Background()

	details := &entity.OrderDetails{Order: entity.Order{OrderNumber: "ORD-2026-0007"}}
	mocks.orderRepo.EXPECT().
		FindOrderByNumber(ctx, "ORD-2026-0007").
		Return(details, nil)

	order, err := service.GetOrder(ctx, "ORD-2026-0007")
	require.NoError(t, err)
	assert.Equal(t, "ORD-2026-0007", order.OrderNumber)
}

// fakeInventoryRepository is an in-memory conditional-decrement store used
// to exercise concurrent orders against a single product.
type fakeInventoryRepository struct {
	mu    sync.Mutex
	stock int
}

func (f *fakeInventoryRepository) CreateInventory(context.Context, *entity.Inventory) error {
	return nil
}

func (f *fakeInventoryRepository) FindInventoryByProduct(context.Context, uuid.UUID) (*entity.InventoryItem, error) {
	return nil, repository.ErrInventoryNotFound
}

func (f *fakeInventoryRepository) ListInventory(context.Context) ([]*entity.InventoryItem, error) {
	return nil, nil
}

func (f *fakeInventoryRepository) SetStockLevel(_ context.Context, _ uuid.UUID, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stock = quantity

	return nil
}

func (f *fakeInventoryRepository) DecrementStock(_ context.Context, _ uuid.UUID, amount int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stock -= amount
	if f.stock < 0 {
		f.stock = 0
	}

	return f.stock, nil
}

func TestOrderService_CreateOrder_ConcurrentOrdersNeverOverdraw(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	retailer := testRetailer()
	product := testProduct("10.00", 2)

	retailerRepo := mockRepo.NewMockRetailerRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	salesTargetRepo := mockRepo.NewMockSalesTargetRepository(t)
	messages := mockSvc.NewMockMessageService(t)
	inventory := &fakeInventoryRepository{stock: 10}

	retailerRepo.EXPECT().FindRetailerByID(mock.Anything, retailer.ID).Return(retailer, nil)
	productRepo.EXPECT().FindProductByID(mock.Anything, product.ID).Return(product, nil)
	orderRepo.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	salesTargetRepo.EXPECT().
		AccumulateSales(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.SalesTarget{}, nil)

	service := NewOrderService(
		logger,
		retailerRepo,
		productRepo,
		orderRepo,
		inventory,
		salesTargetRepo,
		NewAlertService(logger, messages, entity.AlertConfig{}),
		decimal.RequireFromString("25000.00"),
	)

	const workers = 8
	var wg sync.WaitGroup
	results := make([]int, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()

			result, err := service.CreateOrder(context.Background(), usecase.CreateOrderInput{
				RetailerID: retailer.ID,
				ProductID:  product.ID,
				Quantity:   2,
			})
			if err != nil {
				errs[slot] = err

				return
			}
			results[slot] = result.NewStock
		}(i)
	}
	wg.Wait()

	// 8 orders of 2 against 10 on hand: stock floors at zero.
	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 0, inventory.stock)
	for _, newStock := range results {
		assert.GreaterOrEqual(t, newStock, 0)
	}
}

// fakeOrderRepository is an in-memory order store used to observe status
// updates and timestamp refreshes end to end instead of as call routing.
type fakeOrderRepository struct {
	mu       sync.Mutex
	retailer entity.Retailer
	product  entity.Product
	orders   map[string]*entity.Order
}

func newFakeOrderRepository(retailer *entity.Retailer, product *entity.Product) *fakeOrderRepository {
	return &fakeOrderRepository{
		retailer: *retailer,
		product:  *product,
		orders:   make(map[string]*entity.Order),
	}
}

func (f *fakeOrderRepository) CreateOrder(_ context.Context, order *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.orders[order.OrderNumber]; exists {
		return repository.ErrDuplicateOrderNumber
	}

	stored := *order
	f.orders[order.OrderNumber] = &stored

	return nil
}

func (f *fakeOrderRepository) details(order *entity.Order) *entity.OrderDetails {
	return &entity.OrderDetails{Order: *order, Retailer: f.retailer, Product: f.product}
}

func (f *fakeOrderRepository) FindOrderByID(_ context.Context, id uuid.UUID) (*entity.OrderDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, order := range f.orders {
		if order.ID == id {
			return f.details(order), nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (f *fakeOrderRepository) FindOrderByNumber(_ context.Context, orderNumber string) (*entity.OrderDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	order, exists := f.orders[orderNumber]
	if !exists {
		return nil, repository.ErrOrderNotFound
	}

	return f.details(order), nil
}

func (f *fakeOrderRepository) ListOrders(_ context.Context) ([]*entity.OrderDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	details := make([]*entity.OrderDetails, 0, len(f.orders))
	for _, order := range f.orders {
		details = append(details, f.details(order))
	}

	return details, nil
}

func (f *fakeOrderRepository) UpdateOrderStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, order := range f.orders {
		if order.ID == id {
			order.Status = status
			order.UpdatedAt = time.Now()

			return nil
		}
	}

	return repository.ErrOrderNotFound
}

func (f *fakeOrderRepository) UpdateOrderStatusByNumber(_ context.Context, orderNumber string, status entity.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	order, exists := f.orders[orderNumber]
	if !exists {
		return repository.ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()

	return nil
}

// fakeSalesTargetRepository is an in-memory period store. The first
// accumulation for a period creates it with the default target.
type fakeSalesTargetRepository struct {
	mu      sync.Mutex
	periods map[[2]int]*entity.SalesTarget
}

func newFakeSalesTargetRepository() *fakeSalesTargetRepository {
	return &fakeSalesTargetRepository{periods: make(map[[2]int]*entity.SalesTarget)}
}

func (f *fakeSalesTargetRepository) FindSalesTarget(_ context.Context, month, year int) (*entity.SalesTarget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	target, exists := f.periods[[2]int{month, year}]
	if !exists {
		return nil, repository.ErrSalesTargetNotFound
	}
	snapshot := *target

	return &snapshot, nil
}

func (f *fakeSalesTargetRepository) AccumulateSales(_ context.Context, month, year int, amount, defaultTarget decimal.Decimal) (*entity.SalesTarget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := [2]int{month, year}
	target, exists := f.periods[key]
	if !exists {
		target = &entity.SalesTarget{
			ID:            uuid.New(),
			Month:         month,
			Year:          year,
			TargetAmount:  defaultTarget,
			CurrentAmount: decimal.Zero,
		}
		f.periods[key] = target
	}
	target.CurrentAmount = target.CurrentAmount.Add(amount)
	snapshot := *target

	return &snapshot, nil
}

func newOrderServiceOverFakes(t *testing.T, retailer *entity.Retailer, product *entity.Product, newStock int) (usecase.OrderUsecase, *fakeOrderRepository, *fakeSalesTargetRepository) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	retailerRepo := mockRepo.NewMockRetailerRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	messages := mockSvc.NewMockMessageService(t)

	retailerRepo.EXPECT().FindRetailerByID(mock.Anything, retailer.ID).Return(retailer, nil)
	productRepo.EXPECT().FindProductByID(mock.Anything, product.ID).Return(product, nil)
	inventoryRepo.EXPECT().DecrementStock(mock.Anything, product.ID, mock.AnythingOfType("int")).Return(newStock, nil)

	orderRepo := newFakeOrderRepository(retailer, product)
	salesTargetRepo := newFakeSalesTargetRepository()

	service := NewOrderService(
		logger,
		retailerRepo,
		productRepo,
		orderRepo,
		inventoryRepo,
		salesTargetRepo,
		NewAlertService(logger, messages, entity.AlertConfig{}),
		decimal.RequireFromString("25000.00"),
	)

	return service, orderRepo, salesTargetRepo
}

func TestOrderService_StatusUpdateByNumberReadBackByID(t *testing.T) {
	retailer := testRetailer()
	product := testProduct("120.50", 20)
	service, _, _ := newOrderServiceOverFakes(t, retailer, product, 95)
	ctx := context.Background()

	result, err := service.CreateOrder(ctx, usecase.CreateOrderInput{
		RetailerID: retailer.ID,
		ProductID:  product.ID,
		Quantity:   5,
	})
	require.NoError(t, err)
	created := result.Order.Order

	require.NoError(t, service.UpdateOrderStatus(ctx, created.OrderNumber, entity.OrderStatusCompleted))

	// Updated through the order number, read back through the internal ID.
	found, err := service.GetOrder(ctx, created.ID.String())
	require.NoError(t, err)

	assert.Equal(t, created.OrderNumber, found.OrderNumber)
	assert.Equal(t, entity.OrderStatusCompleted, found.Status)
	assert.Equal(t, created.CreatedAt, found.CreatedAt)
	assert.True(t, found.UpdatedAt.After(found.CreatedAt),
		"updatedAt %v not after createdAt %v", found.UpdatedAt, found.CreatedAt)
}

func TestOrderService_CreateOrder_FirstOrderCreatesSalesPeriod(t *testing.T) {
	retailer := testRetailer()
	product := testProduct("120.50", 20)
	service, _, salesTargets := newOrderServiceOverFakes(t, retailer, product, 95)
	ctx := context.Background()

	now := time.Now()
	month, year := int(now.Month()), now.Year()

	_, err := salesTargets.FindSalesTarget(ctx, month, year)
	require.ErrorIs(t, err, repository.ErrSalesTargetNotFound)

	_, err = service.CreateOrder(ctx, usecase.CreateOrderInput{
		RetailerID: retailer.ID,
		ProductID:  product.ID,
		Quantity:   5,
	})
	require.NoError(t, err)

	target, err := salesTargets.FindSalesTarget(ctx, month, year)
	require.NoError(t, err)
	assert.True(t, target.TargetAmount.Equal(decimal.RequireFromString("25000.00")))
	assert.True(t, target.CurrentAmount.Equal(decimal.RequireFromString("602.50")))

	_, err = service.CreateOrder(ctx, usecase.CreateOrderInput{
		RetailerID: retailer.ID,
		ProductID:  product.ID,
		Quantity:   2,
	})
	require.NoError(t, err)

	target, err = salesTargets.FindSalesTarget(ctx, month, year)
	require.NoError(t, err)
	assert.True(t, target.TargetAmount.Equal(decimal.RequireFromString("25000.00")))
	assert.True(t, target.CurrentAmount.Equal(decimal.RequireFromString("843.50")))
}
