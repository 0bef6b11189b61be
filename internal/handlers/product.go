package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/services"
	"github.com/example/geprek/internal/store"
)

// ProductCatalog is the menu service.
type ProductCatalog interface {
	List(ctx context.Context, filter store.ProductFilter) ([]models.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, in services.ProductInput) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, in services.ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductHandler manages product CRUD.
type ProductHandler struct {
	products ProductCatalog
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(products ProductCatalog) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListProducts returns the menu, optionally filtered by category, promotion
// or new flag.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	filter := store.ProductFilter{
		Category:      models.Category(strings.ToUpper(strings.TrimSpace(c.Query("category")))),
		PromotionOnly: c.QueryBool("promotion"),
		NewOnly:       c.QueryBool("new"),
	}

	products, err := h.products.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.products.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req services.ProductInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}

	product, err := h.products.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req services.ProductInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}

	product, err := h.products.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.products.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// RegisterProductRoutes attaches product routes. Writes run behind adminOnly.
func (h *ProductHandler) RegisterProductRoutes(router fiber.Router, adminOnly ...fiber.Handler) {
	router.Get("/", h.ListProducts)
	router.Get("/:id", h.GetProduct)
	router.Post("/", with(adminOnly, h.CreateProduct)...)
	router.Put("/:id", with(adminOnly, h.UpdateProduct)...)
	router.Delete("/:id", with(adminOnly, h.DeleteProduct)...)
}
