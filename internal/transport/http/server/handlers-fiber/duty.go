package handlers_fiber

import (
	"net/http"
	"strconv"

	"duty-rotation-service/internal/api"
	"duty-rotation-service/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetDutyCurrent returns the active shift with days remaining.
func (h *Handler) GetDutyCurrent(c *fiber.Ctx) error {
	status, err := h.uc.CurrentDuty(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIDutyStatus(status))
}

// PostDutyDraw runs the automatic draw (admin only).
func (h *Handler) PostDutyDraw(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return writeActorError(c)
	}

	selected, err := h.uc.DrawNext(c.Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.DutySelection{Members: mapper.ToAPIMemberList(selected)})
}

// GetDutyHistory returns past assignments, newest first.
func (h *Handler) GetDutyHistory(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := h.uc.History(c.Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		History []api.HistoryEntry `json:"history"`
	}{History: mapper.ToAPIHistoryList(entries)})
}

// PostManualStart opens a manual-pick session (admin only).
func (h *Handler) PostManualStart(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return writeActorError(c)
	}

	if err := h.uc.StartManualPick(c.Context(), actor); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostManualPick adds one member to the open session (admin only).
func (h *Handler) PostManualPick(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return writeActorError(c)
	}

	var body api.PickRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	if err := h.uc.PickManual(c.Context(), actor, body.MemberID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostManualFinish applies the accumulated picks as the current duty.
func (h *Handler) PostManualFinish(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return writeActorError(c)
	}

	assigned, err := h.uc.FinishManualPick(c.Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.DutySelection{Members: mapper.ToAPIMemberList(assigned)})
}

// PostManualCancel discards the open session (admin only).
func (h *Handler) PostManualCancel(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return writeActorError(c)
	}

	if err := h.uc.CancelManualPick(c.Context(), actor); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
