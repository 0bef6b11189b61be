package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/utils"
)

const (
	userContextKey = "currentUserID"
	roleContextKey = "currentRole"
)

// AuthMiddleware validates bearer tokens and stores the caller's id and role.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return utils.Unauthorized("Silakan login terlebih dahulu")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.Unauthorized("Header Authorization tidak valid")
		}

		claims, err := utils.ParseToken(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return utils.Unauthorized("Token tidak valid atau sudah kedaluwarsa")
		}

		c.Locals(userContextKey, claims.UserID)
		c.Locals(roleContextKey, models.Role(claims.Role))
		return c.Next()
	}
}

// RequireAdmin rejects callers without the ADMIN role. It must run after
// AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetCurrentRole(c) != models.RoleAdmin {
			return utils.Forbidden("Akses khusus admin")
		}
		return c.Next()
	}
}

// GetCurrentUserID extracts the authenticated user ID from context.
func GetCurrentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(userContextKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetCurrentRole returns the caller's role, or "" when unauthenticated.
func GetCurrentRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals(roleContextKey).(models.Role)
	return role
}

// IsAdmin reports whether the caller holds the ADMIN role.
func IsAdmin(c *fiber.Ctx) bool {
	return GetCurrentRole(c) == models.RoleAdmin
}
