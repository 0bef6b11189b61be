package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/store"
	"github.com/example/geprek/internal/utils"
)

// ProductStore is the menu persistence.
type ProductStore interface {
	ListProducts(ctx context.Context, filter store.ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// ProductService manages the menu.
type ProductService struct {
	store  ProductStore
	logger *zap.Logger
}

// NewProductService creates a ProductService.
func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store, logger: utils.GetLogger().Named("products")}
}

// ProductInput is the create and update payload. A zero discount price
// means no discount.
type ProductInput struct {
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Price         int64           `json:"price"`
	DiscountPrice *int64          `json:"discountPrice"`
	Category      models.Category `json:"category"`
	Image         *string         `json:"image"`
	IsPromotion   bool            `json:"isPromotion"`
	IsNew         bool            `json:"isNew"`
}

func (in *ProductInput) toModel() (*models.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price == 0 || in.Category == "" {
		return nil, utils.Validation("Missing required fields")
	}
	if in.Price < 0 {
		return nil, utils.Validation("Harga harus lebih dari 0")
	}
	if !in.Category.Valid() {
		return nil, utils.Validation("Kategori tidak valid")
	}

	product := &models.Product{
		Name:        name,
		Description: nonEmpty(in.Description),
		Price:       in.Price,
		Category:    in.Category,
		Image:       nonEmpty(in.Image),
		IsPromotion: in.IsPromotion,
		IsNew:       in.IsNew,
	}
	if in.DiscountPrice != nil && *in.DiscountPrice != 0 {
		discount := *in.DiscountPrice
		if discount < 0 || discount >= in.Price {
			return nil, utils.Validation("Harga diskon harus lebih kecil dari harga normal")
		}
		product.DiscountPrice = &discount
	}
	return product, nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// List returns the menu newest first.
func (s *ProductService) List(ctx context.Context, filter store.ProductFilter) ([]models.Product, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, utils.Validation("Kategori tidak valid")
	}
	return s.store.ListProducts(ctx, filter)
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, utils.NotFound("Product not found")
	}
	return product, err
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	product, err := in.toModel()
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.Info("product created", zap.String("product_id", product.ID.String()), zap.String("name", product.Name))
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, in ProductInput) (*models.Product, error) {
	product, err := in.toModel()
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := s.store.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, utils.NotFound("Product not found")
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete removes a product. Past orders keep their lines without the link.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.DeleteProduct(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound("Product not found")
	}
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.logger.Info("product deleted", zap.String("product_id", id.String()))
	return nil
}
