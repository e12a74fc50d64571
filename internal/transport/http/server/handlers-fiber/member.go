package handlers_fiber

import (
	"net/http"

	"duty-rotation-service/internal/api"
	"duty-rotation-service/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostMembersJoin registers the calling user, or opts an existing
// member back into the availability pool.
func (h *Handler) PostMembersJoin(c *fiber.Ctx) error {
	var body api.JoinRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	created, err := h.uc.Join(c.Context(), mapper.FromJoinRequest(body))
	if err != nil {
		return writeError(c, err)
	}

	member, err := h.uc.Member(c.Context(), body.ID)
	if err != nil {
		return writeError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(api.JoinResponse{
		Created: created,
		Member:  mapper.ToAPIMember(*member),
	})
}

// PostMembersLeave removes the calling user. No admin check: leaving is
// always allowed for oneself.
func (h *Handler) PostMembersLeave(c *fiber.Ctx) error {
	var body api.LeaveRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	if err := h.uc.Leave(c.Context(), body.ID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetMembers lists the roster for an admin.
func (h *Handler) GetMembers(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return writeActorError(c)
	}

	members, err := h.uc.Members(c.Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Members []api.Member `json:"members"`
	}{Members: mapper.ToAPIMemberList(members)})
}

// PostMembersRename changes a member's display name (admin only).
func (h *Handler) PostMembersRename(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return writeActorError(c)
	}

	var body api.RenameRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	member, err := h.uc.Rename(c.Context(), actor, body.ID, body.FirstName)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIMember(*member))
}

// PostMembersRemove deletes an arbitrary member (admin only).
func (h *Handler) PostMembersRemove(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return writeActorError(c)
	}

	var body api.RemoveRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	if err := h.uc.RemoveMember(c.Context(), actor, body.ID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
