package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/geprek/internal/models"
)

// OrderNotifier is told about order lifecycle changes after they are committed.
type OrderNotifier interface {
	OrderCreated(ctx context.Context, order *models.Order) error
	OrderStatusChanged(ctx context.Context, order *models.Order, previous models.OrderStatus, pointsAwarded int64) error
}

// Notifiers fans an event out to every notifier. Failures are logged and
// never reach the caller: the order change is already stored.
type Notifiers []OrderNotifier

func (n Notifiers) OrderCreated(ctx context.Context, order *models.Order) error {
	for _, notifier := range n {
		if err := notifier.OrderCreated(ctx, order); err != nil {
			zap.L().Warn("order created notification failed",
				zap.String("order_id", order.ID.String()),
				zap.Error(err))
		}
	}
	return nil
}

func (n Notifiers) OrderStatusChanged(ctx context.Context, order *models.Order, previous models.OrderStatus, pointsAwarded int64) error {
	for _, notifier := range n {
		if err := notifier.OrderStatusChanged(ctx, order, previous, pointsAwarded); err != nil {
			zap.L().Warn("order status notification failed",
				zap.String("order_id", order.ID.String()),
				zap.String("status", string(order.Status)),
				zap.Error(err))
		}
	}
	return nil
}
