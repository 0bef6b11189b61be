package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/geprek/internal/utils"
)

const internalErrorMessage = "Terjadi kesalahan pada server"

// ErrorHandler renders every error as {"error": message}. Unexpected errors
// are logged and replaced with a generic message.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := utils.StatusCode(err)
		message := err.Error()

		if code >= fiber.StatusInternalServerError {
			logger.Error("unhandled error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
			message = internalErrorMessage
		}

		return c.Status(code).JSON(fiber.Map{"error": message})
	}
}

func parseID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, utils.Validation("invalid id")
	}
	return id, nil
}

func invalidBody() error {
	return utils.Validation("invalid request body")
}

// with appends the final handler to a copy of the middleware chain.
func with(chain []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, handler)
}
