package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/geprek/internal/cart"
	"github.com/example/geprek/internal/middleware"
	"github.com/example/geprek/internal/services"
	"github.com/example/geprek/internal/utils"
)

// CartManager is the cart service.
type CartManager interface {
	Get(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*cart.Cart, error)
	UpdateItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*cart.Cart, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*cart.Cart, error)
	Clear(ctx context.Context, userID uuid.UUID) error
	Checkout(ctx context.Context, userID uuid.UUID) (*services.CheckoutResult, error)
}

// CartHandler serves the caller's cart.
type CartHandler struct {
	carts CartManager
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(carts CartManager) *CartHandler {
	return &CartHandler{carts: carts}
}

type cartResponse struct {
	*cart.Cart
	Total int64 `json:"total"`
	Count int   `json:"count"`
}

func renderCart(c *fiber.Ctx, userCart *cart.Cart) error {
	return c.JSON(cartResponse{Cart: userCart, Total: userCart.Total(), Count: userCart.Count()})
}

func currentUser(c *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return uuid.Nil, utils.Unauthorized("unauthorized")
	}
	return userID, nil
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	userCart, err := h.carts.Get(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return renderCart(c, userCart)
}

type cartItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// AddItem puts a product in the cart; quantity defaults to one.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}
	if req.ProductID == uuid.Nil {
		return utils.Validation("productId wajib diisi")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	userCart, err := h.carts.AddItem(c.UserContext(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return renderCart(c, userCart)
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem sets a quantity; zero or less removes the product.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}

	var req cartQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}

	userCart, err := h.carts.UpdateItem(c.UserContext(), userID, productID, req.Quantity)
	if err != nil {
		return err
	}
	return renderCart(c, userCart)
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}

	userCart, err := h.carts.RemoveItem(c.UserContext(), userID, productID)
	if err != nil {
		return err
	}
	return renderCart(c, userCart)
}

func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.carts.Clear(c.UserContext(), userID); err != nil {
		return err
	}
	return renderCart(c, cart.New(userID))
}

// Checkout places the order and returns the WhatsApp link for it.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	result, err := h.carts.Checkout(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
