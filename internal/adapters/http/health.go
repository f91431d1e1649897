package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler is the liveness probe. It never touches the classifier.
func HealthHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-cache")
		return c.SendStatus(fiber.StatusOK)
	}
}

// ReadyHandler reports the loaded land index.
func ReadyHandler(deps *Dependencies) fiber.Handler {
	startedAt := time.Now()

	return func(c *fiber.Ctx) error {
		stats := deps.Classifier.LandStats()
		if stats.Polygons == 0 {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "not ready",
				"land":   stats,
			})
		}

		return c.JSON(fiber.Map{
			"status": "ready",
			"uptime": time.Since(startedAt).String(),
			"land":   stats,
		})
	}
}
