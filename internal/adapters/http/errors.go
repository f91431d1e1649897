package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// errBadRequest returns a 400 with a plain-text message.
func errBadRequest(c *fiber.Ctx, msg string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusBadRequest).SendString(msg)
}

// statusOf resolves the status a handler error will be rendered with.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
