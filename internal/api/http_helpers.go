package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/exercisetracker/internal/services"
)

const errInvalidPayload = "invalid payload"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func (handler *Handler) writeServiceError(c *fiber.Ctx, err error, storeMessage string) error {
	switch services.KindOf(err) {
	case services.KindValidation:
		return apiError(c, fiber.StatusBadRequest, services.MessageOf(err))
	case services.KindConflict:
		return apiError(c, fiber.StatusConflict, services.MessageOf(err))
	case services.KindNotFound:
		return apiError(c, fiber.StatusNotFound, services.MessageOf(err))
	default:
		handler.logger.Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg(storeMessage)
		return apiError(c, fiber.StatusInternalServerError, storeMessage)
	}
}

// parseBody accepts JSON, urlencoded and multipart bodies. An empty body
// leaves out untouched.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}
