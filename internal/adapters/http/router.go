package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/samirrijal/isonwater/internal/pkg/metrics"
)

// SetupRoutes registers the classification, probe, GraphQL and docs routes.
func SetupRoutes(app *fiber.App, deps *Dependencies) {
	// Prometheus metrics
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Request ID: inbound X-Request-ID or a fresh UUID
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))

	// Request-scoped logger
	app.Use(RequestIDLogMiddleware())

	// Access logs
	app.Use(AccessLogMiddleware())

	// Liveness sits ahead of rate limiting so probes always succeed
	app.Get(deps.Options.healthPath(), HealthHandler())

	// Security headers
	app.Use(helmet.New())

	// Response compression
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	if deps.Options.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        deps.Options.RateLimit,
			Expiration: 1 * time.Minute,
			// c.IP only honours the proxy header for trusted proxies
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).SendString("too many requests, please try again later")
			},
		}))
	}

	// ETag for conditional caching
	app.Use(ETagMiddleware())

	// Default Cache-Control headers
	app.Use(CachingMiddleware(deps.Options))

	app.Get("/ready", ReadyHandler(deps))

	app.Get("/", IsOnWaterHandler(deps))
	app.Post("/", IsOnWaterBatchHandler(deps))

	app.Post("/graphql", GraphQLHandler(deps))

	SetupDocs(app)
}
