package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// CachingMiddleware sets Cache-Control headers on GET responses.
// Classifications only change when the dataset does, so successful lookups
// are publicly cacheable; readiness is never cached. Liveness and /metrics
// are registered ahead of this middleware and set their own header.
func CachingMiddleware(opts Options) fiber.Handler {
	lookup := "public, max-age=" + strconv.Itoa(opts.CacheMaxAge)

	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() != fiber.MethodGet {
			return err
		}
		if existing := c.GetRespHeader(fiber.HeaderCacheControl); existing != "" {
			return err
		}

		switch path := c.Path(); {
		case path == "/ready":
			c.Set(fiber.HeaderCacheControl, "no-cache")
		case path == "/" && c.Response().StatusCode() == fiber.StatusOK && opts.CacheMaxAge > 0:
			c.Set(fiber.HeaderCacheControl, lookup)
		}

		return err
	}
}
