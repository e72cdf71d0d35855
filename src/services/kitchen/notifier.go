package kitchen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-canteen-api/src/infrastructure/log"
	"go-canteen-api/src/services/events"
	"go-canteen-api/src/services/order/domain"
)

// Publisher is the piece of the message broker the notifier needs.
type Publisher interface {
	Publish(topic string, body []byte) error
}

// RabbitNotifier announces order activity on the kitchen display exchange.
// Publishing is best effort: failures are logged and never fail the order.
type RabbitNotifier struct {
	logger    log.Logger
	publisher Publisher
}

func NewRabbitNotifier(logger log.Logger, publisher Publisher) *RabbitNotifier {
	return &RabbitNotifier{
		logger:    logger,
		publisher: publisher,
	}
}

func (n *RabbitNotifier) OrderPlaced(ctx context.Context, order domain.Order) {
	event := events.OrderPlacedEvent{
		OrderID:     order.ID,
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.Items),
		Status:      string(order.Status),
		Version:     1,
		TimeStamp:   time.Now().UTC(),
	}
	n.publish(ctx, events.OrderPlaced, &event, event.Validate)
}

func (n *RabbitNotifier) OrderStatusChanged(ctx context.Context, order domain.Order, previous domain.Status) {
	event := events.OrderStatusChangedEvent{
		OrderID:   order.ID,
		OldStatus: string(previous),
		NewStatus: string(order.Status),
		Version:   1,
		TimeStamp: time.Now().UTC(),
	}
	n.publish(ctx, events.OrderStatusChanged, &event, event.Validate)
}

func (n *RabbitNotifier) publish(ctx context.Context, topic string, event any, validate func() error) {
	if err := validate(); err != nil {
		n.logger.Warn(ctx, fmt.Sprintf("Skipping kitchen notification on %s: %v", topic, err))
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		n.logger.Exception(ctx, "Failed to marshal kitchen notification", err)
		return
	}
	if err := n.publisher.Publish(topic, body); err != nil {
		n.logger.Exception(ctx, fmt.Sprintf("Failed to publish kitchen notification on %s", topic), err)
	}
}

// NoopNotifier is used when no message broker is configured.
type NoopNotifier struct{}

func (NoopNotifier) OrderPlaced(ctx context.Context, order domain.Order) {}

func (NoopNotifier) OrderStatusChanged(ctx context.Context, order domain.Order, previous domain.Status) {
}
