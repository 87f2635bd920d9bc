package stock

import (
	"context"

	"go.uber.org/zap"
)

// StockReportNotifier receives the post-decrement product list after a
// reduction batch commits. Implementations can deliver the report over
// any channel (message broker, email pipeline, log). Delivery is
// fire-and-forget from the coordinator's point of view: a notifier
// failure never fails the batch.
type StockReportNotifier interface {
	// NotifyStockReport delivers the resulting stock levels
	NotifyStockReport(ctx context.Context, report []ProductStockReport) error
}

// ProductStockReport is one product's resulting stock level after a
// reduction batch.
type ProductStockReport struct {
	ProductID         string `json:"product_id"`
	Name              string `json:"name"`
	AvailableQuantity int    `json:"available_quantity"`
}

// LoggingStockReportNotifier writes the stock report to the log. It is
// the fallback when no delivery channel is configured.
type LoggingStockReportNotifier struct {
	logger *zap.Logger
}

// NewLoggingStockReportNotifier creates a new logging notifier
func NewLoggingStockReportNotifier(logger *zap.Logger) *LoggingStockReportNotifier {
	return &LoggingStockReportNotifier{logger: logger}
}

// NotifyStockReport logs the resulting stock levels
func (n *LoggingStockReportNotifier) NotifyStockReport(_ context.Context, report []ProductStockReport) error {
	for _, entry := range report {
		n.logger.Info("stock level after reduction",
			zap.String("product_id", entry.ProductID),
			zap.String("name", entry.Name),
			zap.Int("available_quantity", entry.AvailableQuantity),
		)
	}
	return nil
}

var _ StockReportNotifier = (*LoggingStockReportNotifier)(nil)
