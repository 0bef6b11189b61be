package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/geprek/internal/utils"
)

// Metrics records request counts and latency by route pattern.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = utils.StatusCode(err)
		}

		path := c.Route().Path
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		utils.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		utils.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
		return err
	}
}
