// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"duty-rotation-service/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the gateway-facing HTTP surface using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/members/join", h.PostMembersJoin)
	app.Post("/members/leave", h.PostMembersLeave)
	app.Get("/members", h.GetMembers)
	app.Post("/members/rename", h.PostMembersRename)
	app.Post("/members/remove", h.PostMembersRemove)

	app.Get("/duty/current", h.GetDutyCurrent)
	app.Post("/duty/draw", h.PostDutyDraw)
	app.Get("/duty/history", h.GetDutyHistory)
	app.Post("/duty/manual/start", h.PostManualStart)
	app.Post("/duty/manual/pick", h.PostManualPick)
	app.Post("/duty/manual/finish", h.PostManualFinish)
	app.Post("/duty/manual/cancel", h.PostManualCancel)

	app.Get("/reminders/due", h.GetRemindersDue)
	app.Post("/admin/duration", h.PostAdminDuration)
}
