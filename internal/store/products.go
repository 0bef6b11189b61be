package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/geprek/internal/models"
)

// ProductFilter narrows ListProducts. Zero values disable a filter.
type ProductFilter struct {
	Category      models.Category
	PromotionOnly bool
	NewOnly       bool
}

// ListProducts returns products matching the filter, newest first.
func (s *Store) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.PromotionOnly {
		query = query.Where("is_promotion = ?", true)
	}
	if filter.NewOnly {
		query = query.Where("is_new = ?", true)
	}

	products := []models.Product{}
	err := query.Order("created_at desc").Find(&products).Error
	return products, err
}

// GetProduct loads a product by id.
func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// CreateProduct inserts a product.
func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	return translate(s.db.WithContext(ctx).Create(product).Error)
}

// UpdateProduct overwrites every editable column, including clearing nullable ones.
func (s *Store) UpdateProduct(ctx context.Context, product *models.Product) error {
	res := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", product.ID).
		Select("Name", "Description", "Price", "DiscountPrice", "Category", "Image", "IsPromotion", "IsNew").
		Updates(product)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product. Order items that referenced it keep their
// price and quantity snapshot but lose the product link.
func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.OrderItem{}).
			Where("product_id = ?", id).
			Update("product_id", nil).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
