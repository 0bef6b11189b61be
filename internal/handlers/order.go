package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/geprek/internal/middleware"
	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/receipt"
	"github.com/example/geprek/internal/services"
	"github.com/example/geprek/internal/utils"
)

// OrderManager is the order service.
type OrderManager interface {
	Create(ctx context.Context, in services.CreateOrderInput) (*models.Order, error)
	List(ctx context.Context, userID *uuid.UUID) ([]models.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

// StoreProfileReader returns the current brand profile, nil when unset.
type StoreProfileReader interface {
	Current(ctx context.Context) (*models.StoreProfile, error)
}

// OrderHandler manages order endpoints.
type OrderHandler struct {
	orders  OrderManager
	profile StoreProfileReader
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(orders OrderManager, profile StoreProfileReader) *OrderHandler {
	return &OrderHandler{orders: orders, profile: profile}
}

type createOrderRequest struct {
	UserID      string                    `json:"userId"`
	Items       []services.OrderItemInput `json:"items"`
	TotalAmount int64                     `json:"totalAmount"`
}

// CreateOrder places an order. Customers always order for themselves; admins
// may order on behalf of another user.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	callerID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return utils.Unauthorized("unauthorized")
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}

	userID := callerID
	if middleware.IsAdmin(c) && strings.TrimSpace(req.UserID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(req.UserID))
		if err != nil {
			return utils.Validation("userId tidak valid")
		}
		userID = id
	}

	order, err := h.orders.Create(c.UserContext(), services.CreateOrderInput{
		UserID:      userID,
		Items:       req.Items,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// ListOrders returns every order for admins, optionally narrowed with
// ?userId=, and only the caller's own orders for everyone else.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	callerID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return utils.Unauthorized("unauthorized")
	}

	var filter *uuid.UUID
	if middleware.IsAdmin(c) {
		if v := strings.TrimSpace(c.Query("userId")); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return utils.Validation("userId tidak valid")
			}
			filter = &id
		}
	} else {
		filter = &callerID
	}

	orders, err := h.orders.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// GetOrder returns one order. Customers can only read their own.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.loadVisibleOrder(c)
	if err != nil {
		return err
	}
	return c.JSON(order)
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateStatus moves an order to a new state.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}

	order, err := h.orders.UpdateStatus(c.UserContext(), id, models.OrderStatus(strings.TrimSpace(string(req.Status))))
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// Receipt downloads the plain text receipt of an order.
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	order, err := h.loadVisibleOrder(c)
	if err != nil {
		return err
	}

	profile, err := h.profile.Current(c.UserContext())
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+receipt.FileName(order))
	return c.SendString(receipt.Format(order, order.User, profile))
}

func (h *OrderHandler) loadVisibleOrder(c *fiber.Ctx) (*models.Order, error) {
	callerID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return nil, utils.Unauthorized("unauthorized")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return nil, err
	}

	order, err := h.orders.Get(c.UserContext(), id)
	if err != nil {
		return nil, err
	}
	if !middleware.IsAdmin(c) && order.UserID != callerID {
		return nil, utils.Forbidden("Akses ditolak")
	}
	return order, nil
}
