package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/geprek/internal/cart"
	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/receipt"
	"github.com/example/geprek/internal/store"
	"github.com/example/geprek/internal/utils"
)

// ProductLookup finds menu entries for the cart.
type ProductLookup interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// OrderCreator places orders on checkout.
type OrderCreator interface {
	Create(ctx context.Context, in CreateOrderInput) (*models.Order, error)
}

// ProfileReader supplies the brand profile for checkout messages.
type ProfileReader interface {
	Current(ctx context.Context) (*models.StoreProfile, error)
}

// CartService loads a cart, applies one change and saves it back.
type CartService struct {
	carts    cart.Store
	products ProductLookup
	orders   OrderCreator
	profile  ProfileReader
	phone    string
	logger   *zap.Logger
}

// NewCartService creates a CartService. storePhone is the WhatsApp number
// that receives checkout messages.
func NewCartService(carts cart.Store, products ProductLookup, orders OrderCreator, profile ProfileReader, storePhone string) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		orders:   orders,
		profile:  profile,
		phone:    storePhone,
		logger:   utils.GetLogger().Named("cart"),
	}
}

// CheckoutResult is the placed order and the link that sends it to the store.
type CheckoutResult struct {
	Order       *models.Order `json:"order"`
	WhatsAppURL string        `json:"whatsappUrl"`
}

func (s *CartService) Get(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	return s.carts.Load(ctx, userID)
}

// AddItem snapshots the product's current prices into the cart.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*cart.Cart, error) {
	if quantity < 1 {
		return nil, utils.Validation("Jumlah item minimal 1")
	}

	product, err := s.products.GetProduct(ctx, productID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, utils.NotFound("Product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}

	c, err := s.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.Add(cart.Item{
		ProductID:     product.ID,
		Name:          product.Name,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		Quantity:      quantity,
		Image:         product.Image,
	})
	return c, s.carts.Save(ctx, c)
}

// UpdateItem sets the quantity of a product already in the cart; zero removes it.
func (s *CartService) UpdateItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*cart.Cart, error) {
	c, err := s.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !c.SetQuantity(productID, quantity) {
		return nil, utils.NotFound("Produk tidak ada di keranjang")
	}
	return c, s.carts.Save(ctx, c)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*cart.Cart, error) {
	c, err := s.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !c.Remove(productID) {
		return nil, utils.NotFound("Produk tidak ada di keranjang")
	}
	return c, s.carts.Save(ctx, c)
}

func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.carts.Delete(ctx, userID)
}

// Checkout turns the cart into an order, empties the cart and returns the
// WhatsApp link carrying the order summary.
func (s *CartService) Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutResult, error) {
	ctx, span := utils.StartSpan(ctx, "CartService.Checkout")
	defer span.End()

	c, err := s.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, utils.Validation("Keranjang masih kosong")
	}

	in := CreateOrderInput{UserID: userID, TotalAmount: c.Total()}
	for _, item := range c.OrderItems() {
		in.Items = append(in.Items, OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		})
	}

	order, err := s.orders.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := s.carts.Delete(ctx, userID); err != nil {
		s.logger.Warn("cart not cleared after checkout",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}

	profile, err := s.profile.Current(ctx)
	if err != nil {
		s.logger.Warn("store profile unavailable", zap.Error(err))
		profile = nil
	}

	message := receipt.CheckoutMessage(order, order.User, profile)
	return &CheckoutResult{
		Order:       order,
		WhatsAppURL: receipt.WhatsAppURL(s.phone, message),
	}, nil
}
