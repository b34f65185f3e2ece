package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/MelissaPascal/sulten-dms-ai/config"
	"github.com/MelissaPascal/sulten-dms-ai/internal/delivery"
	"github.com/MelissaPascal/sulten-dms-ai/internal/delivery/http"
	"github.com/MelissaPascal/sulten-dms-ai/internal/delivery/http/middleware"
	"github.com/MelissaPascal/sulten-dms-ai/internal/delivery/http/router/handler"
	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"
	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/repository"
	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/service"
	logs "github.com/MelissaPascal/sulten-dms-ai/internal/infra/log"
	"github.com/MelissaPascal/sulten-dms-ai/internal/infra/notification"
	"github.com/MelissaPascal/sulten-dms-ai/internal/infra/persistence/postgres"
	"github.com/MelissaPascal/sulten-dms-ai/internal/usecase"
	"github.com/MelissaPascal/sulten-dms-ai/internal/usecase/impl"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRetailerRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewInventoryRepository,
			postgres.NewSalesTargetRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewTwilioMessageService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newAlertService,
			newOrderService,
			impl.NewDashboardService,
			impl.NewCatalogService,
		),
	)
}

// newAlertService seeds the process-wide alert configuration from config.
func newAlertService(logger *slog.Logger, messages service.MessageService, cfg *config.Config) usecase.AlertUsecase {
	initial := entity.AlertConfig{
		Enabled:            cfg.Alerts.Enabled,
		Recipients:         cfg.Alerts.Recipients,
		SendPOAlerts:       cfg.Alerts.SendPOAlerts,
		SendLowStockAlerts: cfg.Alerts.SendLowStockAlerts,
	}

	return impl.NewAlertService(logger, messages, initial)
}

// newOrderService parses the configured default monthly sales target before
// handing it to the workflow engine.
func newOrderService(
	logger *slog.Logger,
	retailerRepo repository.RetailerRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
	salesTargetRepo repository.SalesTargetRepository,
	alerts usecase.AlertUsecase,
	cfg *config.Config,
) (usecase.OrderUsecase, error) {
	defaultTarget, err := decimal.NewFromString(cfg.Sales.DefaultMonthlyTarget)
	if err != nil {
		return nil, fmt.Errorf("invalid sales.defaultMonthlyTarget %q: %w", cfg.Sales.DefaultMonthlyTarget, err)
	}

	return impl.NewOrderService(
		logger,
		retailerRepo,
		productRepo,
		orderRepo,
		inventoryRepo,
		salesTargetRepo,
		alerts,
		defaultTarget,
	), nil
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOrderHandler,
			handler.NewRetailerHandler,
			handler.NewProductHandler,
			handler.NewInventoryHandler,
			handler.NewDashboardHandler,
			handler.NewAlertHandler,
			handler.NewExportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
