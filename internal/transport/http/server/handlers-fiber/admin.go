package handlers_fiber

import (
	"net/http"

	"duty-rotation-service/internal/api"

	"github.com/gofiber/fiber/v2"
)

// PostAdminDuration changes the rotation interval (admin only).
func (h *Handler) PostAdminDuration(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return writeActorError(c)
	}

	var body api.DurationRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	if err := h.uc.SetDutyDuration(c.Context(), actor, body.Days); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
