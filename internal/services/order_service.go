package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/geprek/internal/loyalty"
	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/store"
	"github.com/example/geprek/internal/utils"
)

// OrderStore is the persistence the order service needs.
type OrderStore interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	ListOrders(ctx context.Context, userID *uuid.UUID) ([]models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	TransitionOrder(ctx context.Context, id uuid.UUID, fn store.TransitionFunc) (*models.Order, error)
}

// OrderService owns order creation and the status lifecycle.
type OrderService struct {
	store         OrderStore
	notifier      OrderNotifier
	notifyTimeout time.Duration
	logger        *zap.Logger
}

// DefaultNotifyTimeout bounds how long a request waits for notifications.
const DefaultNotifyTimeout = 3 * time.Second

// NewOrderService creates an order service. notifier may be nil.
func NewOrderService(store OrderStore, notifier OrderNotifier) *OrderService {
	if notifier == nil {
		notifier = Notifiers(nil)
	}
	return &OrderService{
		store:         store,
		notifier:      notifier,
		notifyTimeout: DefaultNotifyTimeout,
		logger:   utils.GetLogger().Named("orders"),
	}
}

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	ProductID *uuid.UUID `json:"productId"`
	Quantity  int        `json:"quantity"`
	Price     int64      `json:"price"`
	Subtotal  int64      `json:"subtotal"`
}

// CreateOrderInput is the payload for a new order.
type CreateOrderInput struct {
	UserID      uuid.UUID        `json:"userId"`
	Items       []OrderItemInput `json:"items"`
	TotalAmount int64            `json:"totalAmount"`
}

func (in *CreateOrderInput) validate() error {
	if in.UserID == uuid.Nil || len(in.Items) == 0 || in.TotalAmount == 0 {
		return utils.Validation("Missing required fields")
	}
	if in.TotalAmount < 0 {
		return utils.Validation("Total amount tidak valid")
	}

	var sum int64
	for _, item := range in.Items {
		if item.ProductID == nil || *item.ProductID == uuid.Nil {
			return utils.Validation("Missing required fields")
		}
		if item.Quantity < 1 {
			return utils.Validation("Jumlah item minimal 1")
		}
		if item.Price < 0 {
			return utils.Validation("Harga item tidak valid")
		}
		if item.Price > 0 && int64(item.Quantity) > math.MaxInt64/item.Price {
			return utils.Validation("Jumlah atau harga item terlalu besar")
		}
		if item.Subtotal != item.Price*int64(item.Quantity) {
			return utils.Validation("Subtotal item tidak sesuai dengan harga x jumlah")
		}
		if sum > math.MaxInt64-item.Subtotal {
			return utils.Validation("Total pesanan terlalu besar")
		}
		sum += item.Subtotal
	}
	if sum != in.TotalAmount {
		return utils.Validation("Total pesanan tidak sesuai dengan jumlah subtotal")
	}
	return nil
}

// Create validates the input and stores the order with all items in one
// transaction. New orders await approval.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	ctx, span := utils.StartSpan(ctx, "OrderService.Create")
	defer span.End()

	if err := in.validate(); err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, in.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, utils.Validation("User tidak ditemukan")
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	order := &models.Order{
		UserID:      user.ID,
		Status:      models.StatusAwaitingApproval,
		TotalAmount: in.TotalAmount,
		Items:       make([]models.OrderItem, 0, len(in.Items)),
	}
	for _, item := range in.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		})
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return nil, utils.Validation("Produk tidak ditemukan")
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	utils.OrdersCreatedTotal.Inc()
	s.logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", order.UserID.String()),
		zap.Int64("total_amount", order.TotalAmount),
		zap.Int("items", len(order.Items)))

	created, err := s.store.GetOrder(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("reload order: %w", err)
	}

	s.notify(ctx, "order created", created, func(ctx context.Context) error {
		return s.notifier.OrderCreated(ctx, created)
	})
	return created, nil
}

// List returns every order, or only the given user's, newest first.
func (s *OrderService) List(ctx context.Context, userID *uuid.UUID) ([]models.Order, error) {
	ctx, span := utils.StartSpan(ctx, "OrderService.List")
	defer span.End()

	return s.store.ListOrders(ctx, userID)
}

// Get returns one order with its items and owner.
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	ctx, span := utils.StartSpan(ctx, "OrderService.Get")
	defer span.End()

	order, err := s.store.GetOrder(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, utils.NotFound("Order not found")
	}
	return order, err
}

// UpdateStatus moves an order to any state. Entering SELESAI from another
// state credits the owner's loyalty points in the same transaction, so
// repeating the update never pays out twice.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	ctx, span := utils.StartSpan(ctx, "OrderService.UpdateStatus")
	defer span.End()

	if status == "" {
		return nil, utils.Validation("Status is required")
	}
	if !status.Valid() {
		return nil, utils.Validation("Invalid status")
	}

	var (
		previous models.OrderStatus
		awarded  int64
	)
	order, err := s.store.TransitionOrder(ctx, id, func(o *models.Order) (int64, error) {
		previous = o.Status
		awarded = 0
		if status == models.StatusCompleted && previous != models.StatusCompleted {
			awarded = loyalty.PointsEarned(o.TotalAmount)
		}
		o.Status = status
		return awarded, nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, utils.NotFound("Order not found")
	}
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	utils.OrderStatusChangesTotal.WithLabelValues(string(status)).Inc()
	if awarded > 0 {
		utils.LoyaltyPointsAwardedTotal.Add(float64(awarded))
	}
	s.logger.Info("order status updated",
		zap.String("order_id", order.ID.String()),
		zap.String("from", string(previous)),
		zap.String("to", string(status)),
		zap.Int64("points_awarded", awarded))

	if previous != status {
		s.notify(ctx, "order status changed", order, func(ctx context.Context) error {
			return s.notifier.OrderStatusChanged(ctx, order, previous, awarded)
		})
	}
	return order, nil
}

// WithNotifyTimeout changes how long a request waits for notifications.
func (s *OrderService) WithNotifyTimeout(d time.Duration) *OrderService {
	if d > 0 {
		s.notifyTimeout = d
	}
	return s
}

// notify runs send after the order change is committed. The caller waits at
// most notifyTimeout; a slower send keeps running until its context expires
// and its outcome is only logged.
func (s *OrderService) notify(ctx context.Context, event string, order *models.Order, send func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	done := make(chan error, 1)
	go func() {
		defer cancel()
		done <- send(ctx)
	}()

	timer := time.NewTimer(s.notifyTimeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			s.logger.Warn("notification failed",
				zap.String("event", event),
				zap.String("order_id", order.ID.String()),
				zap.Error(err))
		}
	case <-timer.C:
		s.logger.Warn("notification timed out",
			zap.String("event", event),
			zap.String("order_id", order.ID.String()),
			zap.Duration("timeout", s.notifyTimeout))
	}
}
