package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/services"
)

// StoreProfileManager reads and writes the brand profile.
type StoreProfileManager interface {
	List(ctx context.Context) ([]models.StoreProfile, error)
	Save(ctx context.Context, in services.StoreProfileInput) (*models.StoreProfile, bool, error)
}

// StoreProfileHandler manages the brand profile endpoints.
type StoreProfileHandler struct {
	profiles StoreProfileManager
}

// NewStoreProfileHandler constructs StoreProfileHandler.
func NewStoreProfileHandler(profiles StoreProfileManager) *StoreProfileHandler {
	return &StoreProfileHandler{profiles: profiles}
}

// GetStoreProfile returns the profile as a list, empty until one is saved.
func (h *StoreProfileHandler) GetStoreProfile(c *fiber.Ctx) error {
	profiles, err := h.profiles.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(profiles)
}

// SaveStoreProfile creates the profile (201) or updates it (200).
func (h *StoreProfileHandler) SaveStoreProfile(c *fiber.Ctx) error {
	var req services.StoreProfileInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}

	profile, created, err := h.profiles.Save(c.UserContext(), req)
	if err != nil {
		return err
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(profile)
}
