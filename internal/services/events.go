package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/example/geprek/internal/models"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventPublisher writes order lifecycle events to Kafka, keyed by order id so
// events of one order stay in one partition.
type EventPublisher struct {
	writer messageWriter
	now    func() time.Time
	logger *zap.Logger
}

// NewEventPublisher creates a publisher for the given brokers and topic.
func NewEventPublisher(brokers []string, topic string) *EventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	return newEventPublisher(writer)
}

func newEventPublisher(writer messageWriter) *EventPublisher {
	return &EventPublisher{
		writer: writer,
		now:    time.Now,
		logger: zap.L().Named("events"),
	}
}

func (p *EventPublisher) OrderCreated(ctx context.Context, order *models.Order) error {
	return p.publish(ctx, models.OrderEvent{
		Type:        models.EventOrderCreated,
		OrderID:     order.ID,
		UserID:      order.UserID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		OccurredAt:  p.now().UTC(),
	})
}

func (p *EventPublisher) OrderStatusChanged(ctx context.Context, order *models.Order, previous models.OrderStatus, pointsAwarded int64) error {
	return p.publish(ctx, models.OrderEvent{
		Type:           models.EventOrderStatusChanged,
		OrderID:        order.ID,
		UserID:         order.UserID,
		Status:         order.Status,
		PreviousStatus: previous,
		TotalAmount:    order.TotalAmount,
		PointsAwarded:  pointsAwarded,
		OccurredAt:     p.now().UTC(),
	})
}

func (p *EventPublisher) publish(ctx context.Context, event models.OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write message to kafka: %w", err)
	}

	p.logger.Debug("event published",
		zap.String("type", event.Type),
		zap.String("order_id", event.OrderID.String()))
	return nil
}

// Close flushes and closes the underlying writer.
func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
