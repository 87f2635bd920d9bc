package event

import (
	"context"

	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// StockWentNegativeHandler surfaces negative stock levels in the log.
// Negative stock is tolerated by the domain, so this handler is the
// operational alarm: every occurrence is warn-logged with enough
// context to find the affected aggregate.
type StockWentNegativeHandler struct {
	logger *zap.Logger
}

// NewStockWentNegativeHandler creates a new StockWentNegativeHandler
func NewStockWentNegativeHandler(logger *zap.Logger) *StockWentNegativeHandler {
	return &StockWentNegativeHandler{logger: logger.Named("stock_alarm")}
}

// Handle logs the negative stock occurrence
func (h *StockWentNegativeHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	negative, ok := event.(*catalog.StockWentNegativeEvent)
	if !ok {
		return nil
	}

	h.logger.Warn("stock level below zero",
		zap.String("aggregate_type", negative.AggregateType()),
		zap.String("aggregate_id", negative.AggregateID().String()),
		zap.String("name", negative.EntityName),
		zap.Int("resulting_quantity", negative.ResultingQuantity),
	)
	return nil
}

// EventTypes returns the event types this handler is interested in
func (h *StockWentNegativeHandler) EventTypes() []string {
	return []string{catalog.EventTypeStockWentNegative}
}

var _ shared.EventHandler = (*StockWentNegativeHandler)(nil)
