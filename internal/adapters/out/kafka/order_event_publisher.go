// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"eats/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// orderChangedEvent is the wire format of an order lifecycle notification.
// Keyed by order id so all events for one order land on the same partition.
type orderChangedEvent struct {
	OrderID      string `json:"order_id"`
	CustomerID   string `json:"customer_id"`
	RestaurantID string `json:"restaurant_id"`
	Status       string `json:"status"`
	TotalAmount  string `json:"total_amount"`
	OccurredAt   string `json:"occurred_at"`
}

// OrderEventPublisher implements the order event port over a kafka-go writer.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher using the given writer.
func NewOrderEventPublisher(writer *kafka.Writer) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

// NewWriter builds a writer for the order changed topic.
func NewWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// PublishOrderChanged emits one event for the order's current state.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	payload, err := json.Marshal(orderChangedEvent{
		OrderID:      aggregate.ID().String(),
		CustomerID:   aggregate.CustomerID().String(),
		RestaurantID: aggregate.RestaurantID().String(),
		Status:       aggregate.Status().String(),
		TotalAmount:  aggregate.TotalAmount().String(),
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(aggregate.ID().String()),
		Value: payload,
	})
}
