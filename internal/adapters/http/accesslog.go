package http

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/samirrijal/isonwater/internal/pkg/logging"
)

// AccessLogMiddleware logs every request once it has been handled, on the
// request-scoped logger.
func AccessLogMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		method := c.Method()
		path := c.Path()

		err := c.Next()

		status := statusOf(c, err)
		attrs := []slog.Attr{
			slog.Int64("duration", time.Since(start).Milliseconds()),
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.String("ua", c.Get(fiber.HeaderUserAgent)),
			slog.String("ip", c.IP()),
		}

		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}

		logging.FromContext(c.UserContext()).LogAttrs(c.UserContext(), level, "Request handled", attrs...)

		return err
	}
}
