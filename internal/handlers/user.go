package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/geprek/internal/middleware"
	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/services"
	"github.com/example/geprek/internal/utils"
)

// UserManager is the account service.
type UserManager interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, in services.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserHandler manages user accounts and the caller's profile.
type UserHandler struct {
	users UserManager
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(users UserManager) *UserHandler {
	return &UserHandler{users: users}
}

// GetProfile returns the authenticated user.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return utils.Unauthorized("unauthorized")
	}

	user, err := h.users.Get(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// ListUsers returns all users, newest first.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := h.ownOrAdmin(c)
	if err != nil {
		return err
	}

	user, err := h.users.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// UpdateUser changes password, address or phone.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := h.ownOrAdmin(c)
	if err != nil {
		return err
	}

	var req services.UpdateUserInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}

	user, err := h.users.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// DeleteUser removes a user and their orders.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.users.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

func (h *UserHandler) ownOrAdmin(c *fiber.Ctx) (uuid.UUID, error) {
	callerID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return uuid.Nil, utils.Unauthorized("unauthorized")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return uuid.Nil, err
	}
	if id != callerID && !middleware.IsAdmin(c) {
		return uuid.Nil, utils.Forbidden("Akses ditolak")
	}
	return id, nil
}
