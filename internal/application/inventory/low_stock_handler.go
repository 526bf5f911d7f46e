package inventory

import (
	"context"

	"go.uber.org/zap"

	"github.com/stayhub/backend/internal/domain/inventory"
	"github.com/stayhub/backend/internal/domain/shared"
)

// LowStockAlertHandler logs a reorder alert whenever stock drops to
// or below the reorder threshold. Notification delivery hangs off the
// same event.
type LowStockAlertHandler struct {
	log *zap.Logger
}

// NewLowStockAlertHandler creates the low stock alert handler
func NewLowStockAlertHandler(log *zap.Logger) *LowStockAlertHandler {
	return &LowStockAlertHandler{log: log}
}

// EventTypes returns the subscribed event types
func (h *LowStockAlertHandler) EventTypes() []string {
	return []string{inventory.EventLowStock}
}

// Handle processes a low stock event
func (h *LowStockAlertHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	evt, ok := event.(*inventory.LowStockEvent)
	if !ok {
		return nil
	}
	h.log.Warn("low stock alert",
		zap.String("item_id", evt.AggregateID().String()),
		zap.String("name", evt.Name),
		zap.Int("current_stock", evt.CurrentStock),
		zap.Int("minimum_stock", evt.MinimumStock),
	)
	return nil
}
