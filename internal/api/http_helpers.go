package api

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func internalError(c *fiber.Ctx, err error) error {
	slog.Error("request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

// parseDate accepts the ISO 8601 calendar-date form used everywhere in the
// API, interpreted in the server location.
func (handler *Handler) parseDate(raw string) (time.Time, bool) {
	parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(raw), handler.location)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
