package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/geprek/internal/models"
)

// TransitionFunc mutates a locked order and returns the loyalty points to
// credit to its owner as part of the same transaction.
type TransitionFunc func(order *models.Order) (pointsDelta int64, err error)

func (s *Store) orderQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc").Order("created_at asc") }).
		Preload("Items.Product").
		Preload("User")
}

// CreateOrder stores an order and all of its items atomically.
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	return translate(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := order.Items
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
			items[i].Position = i
		}
		if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
			return err
		}
		order.Items = items
		return nil
	}))
}

// ListOrders returns orders with items, products and owner, newest first.
// A nil userID lists every order.
func (s *Store) ListOrders(ctx context.Context, userID *uuid.UUID) ([]models.Order, error) {
	query := s.orderQuery(ctx)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	orders := []models.Order{}
	err := query.Order("created_at desc").Find(&orders).Error
	return orders, err
}

// GetOrder loads one order with items, products and owner.
func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.orderQuery(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// TransitionOrder locks the order row, lets fn change its status, writes the
// new status and credits any points with an in-database increment. Nothing is
// written when fn fails.
func (s *Store) TransitionOrder(ctx context.Context, id uuid.UUID, fn TransitionFunc) (*models.Order, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "id = ?", id).Error; err != nil {
			return err
		}

		delta, err := fn(&order)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Update("status", order.Status).Error; err != nil {
			return err
		}

		if delta != 0 {
			res := tx.Model(&models.User{}).
				Where("id = ?", order.UserID).
				UpdateColumn("points", gorm.Expr("points + ?", delta))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return s.GetOrder(ctx, id)
}
