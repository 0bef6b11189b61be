package models

import (
	"time"

	"github.com/google/uuid"
)

// Order event types published to the broker.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent describes an order lifecycle change.
type OrderEvent struct {
	Type           string      `json:"type"`
	OrderID        uuid.UUID   `json:"orderId"`
	UserID         uuid.UUID   `json:"userId"`
	Status         OrderStatus `json:"status"`
	PreviousStatus OrderStatus `json:"previousStatus,omitempty"`
	TotalAmount    int64       `json:"totalAmount"`
	PointsAwarded  int64       `json:"pointsAwarded,omitempty"`
	OccurredAt     time.Time   `json:"occurredAt"`
}
