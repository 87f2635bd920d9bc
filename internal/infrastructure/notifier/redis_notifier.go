package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appstock "github.com/packerp/backend/internal/application/stock"
	"github.com/packerp/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const defaultChannel = "stock-reports"

// RedisStockReportNotifier publishes the post-reduction stock report to
// a Redis Pub/Sub channel. Downstream consumers (reporting dashboards,
// mail relays) subscribe to the channel and render the report.
type RedisStockReportNotifier struct {
	client     *redis.Client
	ownsClient bool
	channel    string
}

// NewRedisStockReportNotifier creates a notifier with its own Redis client
func NewRedisStockReportNotifier(cfg *config.RedisConfig, channel string) (*RedisStockReportNotifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	notifier := NewRedisStockReportNotifierWithClient(client, channel)
	notifier.ownsClient = true
	return notifier, nil
}

// NewRedisStockReportNotifierWithClient creates a notifier over an
// existing Redis client. Useful for testing or when sharing a client
// across components.
func NewRedisStockReportNotifierWithClient(client *redis.Client, channel string) *RedisStockReportNotifier {
	if channel == "" {
		channel = defaultChannel
	}
	return &RedisStockReportNotifier{
		client:  client,
		channel: channel,
	}
}

// NotifyStockReport publishes the report as a JSON payload
func (n *RedisStockReportNotifier) NotifyStockReport(ctx context.Context, report []appstock.ProductStockReport) error {
	payload, err := json.Marshal(stockReportMessage{
		ReportedAt: time.Now().UTC(),
		Products:   report,
	})
	if err != nil {
		return fmt.Errorf("failed to encode stock report: %w", err)
	}

	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish stock report: %w", err)
	}
	return nil
}

// Close releases the Redis client if this notifier owns it
func (n *RedisStockReportNotifier) Close() error {
	if !n.ownsClient {
		return nil
	}
	return n.client.Close()
}

// stockReportMessage is the wire format published to the channel
type stockReportMessage struct {
	ReportedAt time.Time                     `json:"reported_at"`
	Products   []appstock.ProductStockReport `json:"products"`
}

var _ appstock.StockReportNotifier = (*RedisStockReportNotifier)(nil)
