package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"
	domainerrors "github.com/MelissaPascal/sulten-dms-ai/internal/domain/errors"
	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/service"
	"github.com/MelissaPascal/sulten-dms-ai/internal/usecase"
)

type alertService struct {
	logger   *slog.Logger
	messages service.MessageService

	mu     sync.RWMutex
	config entity.AlertConfig
}

// NewAlertService creates the alert policy holder with its initial
// configuration. The configuration lives for the process lifetime and is
// replaced wholesale by UpdateConfig.
func NewAlertService(logger *slog.Logger, messages service.MessageService, initial entity.AlertConfig) usecase.AlertUsecase {
	return &alertService{
		logger:   logger,
		messages: messages,
		config:   initial.Clone(),
	}
}

// GetConfig returns a snapshot of the current configuration.
func (s *alertService) GetConfig() entity.AlertConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.config.Clone()
}

// UpdateConfig replaces the configuration wholesale.
func (s *alertService) UpdateConfig(cfg entity.AlertConfig) error {
	seen := make(map[string]struct{}, len(cfg.Recipients))
	for _, recipient := range cfg.Recipients {
		if recipient == "" {
			return domainerrors.ErrValidationFailed.WithDetails("recipient must not be empty")
		}
		if _, dup := seen[recipient]; dup {
			return domainerrors.ErrDuplicateRecipient.WithDetails(recipient)
		}
		seen[recipient] = struct{}{}
	}

	s.mu.Lock()
	s.config = cfg.Clone()
	s.mu.Unlock()

	return nil
}

// NotifyOrderCreated applies the alert policy to a freshly created order and
// dispatches the triggered alerts. The purchase-order and low-stock checks
// are independent: an order may trigger zero, one or both. Stock is the
// post-decrement level for the ordered product.
func (s *alertService) NotifyOrderCreated(ctx context.Context, order *entity.OrderDetails, newStock int) []usecase.AlertDelivery {
	cfg := s.GetConfig()

	var messages []alertMessage
	if cfg.Enabled && cfg.SendPOAlerts {
		messages = append(messages, alertMessage{
			kind: usecase.AlertKindPurchaseOrder,
			body: formatPurchaseOrderAlert(order),
		})
	}
	if cfg.Enabled && cfg.SendLowStockAlerts && newStock <= order.Product.ReorderThreshold {
		messages = append(messages, alertMessage{
			kind: usecase.AlertKindLowStock,
			body: formatLowStockAlert(&order.Product, newStock),
		})
	}

	if len(messages) == 0 || len(cfg.Recipients) == 0 {
		return nil
	}

	return s.dispatch(ctx, messages, cfg.Recipients)
}

type alertMessage struct {
	kind usecase.AlertKind
	body string
}

// dispatch fans every message out to every recipient concurrently and
// collects per-recipient outcomes. A failed send is recorded, never
// escalated.
func (s *alertService) dispatch(ctx context.Context, messages []alertMessage, recipients []string) []usecase.AlertDelivery {
	deliveries := make([]usecase.AlertDelivery, len(messages)*len(recipients))

	var wg sync.WaitGroup
	for i, msg := range messages {
		for j, recipient := range recipients {
			wg.Add(1)
			go func(slot int, kind usecase.AlertKind, to, body string) {
				defer wg.Done()

				delivery := usecase.AlertDelivery{Kind: kind, Recipient: to}
				if err := s.messages.Send(ctx, to, body); err != nil {
					delivery.Error = err.Error()
				} else {
					delivery.Delivered = true
				}
				deliveries[slot] = delivery
			}(i*len(recipients)+j, msg.kind, recipient, msg.body)
		}
	}
	wg.Wait()

	return deliveries
}

func formatPurchaseOrderAlert(order *entity.OrderDetails) string {
	return fmt.Sprintf(`📋 NEW PURCHASE ORDER

Order #: %s
Retailer: %s
Product: %s
Quantity: %d cases
Total: $%s TTD

✅ Order received and processing.

- DMS.ai Sulten Rice Cakes`,
		order.OrderNumber,
		order.Retailer.Name,
		order.Product.Name,
		order.Quantity,
		order.TotalAmount.StringFixed(2),
	)
}

func formatLowStockAlert(product *entity.Product, currentStock int) string {
	return fmt.Sprintf(`🚨 LOW STOCK ALERT 🚨

Product: %s
Current Stock: %d cases
Reorder Level: %d cases

⚠️ Immediate reorder required!

Please arrange stock replenishment ASAP.

- DMS.ai Sulten Rice Cakes`,
		product.Name,
		currentStock,
		product.ReorderThreshold,
	)
}
