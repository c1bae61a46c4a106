package api

import (
	"context"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/exercisetracker/internal/db"
)

const healthPingTimeout = 2 * time.Second

func (handler *Handler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
	defer cancel()

	if err := db.Ping(ctx, handler.db); err != nil {
		handler.logger.Warn().Err(err).Msg("health check ping failed")
		return apiError(c, fiber.StatusServiceUnavailable, "database unavailable")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Index(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(handler.webDir, "views", "index.html"))
}
