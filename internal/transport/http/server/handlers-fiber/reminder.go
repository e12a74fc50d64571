package handlers_fiber

import (
	"net/http"

	"duty-rotation-service/internal/api"
	"duty-rotation-service/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetRemindersDue returns one notification intent per on-duty member,
// for gateways that poll instead of receiving scheduled pushes.
func (h *Handler) GetRemindersDue(c *fiber.Ctx) error {
	reminders, err := h.uc.DueReminders(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Reminders []api.Reminder `json:"reminders"`
	}{Reminders: mapper.ToAPIReminderList(reminders)})
}
