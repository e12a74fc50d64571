package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"duty-rotation-service/internal/api"
	"duty-rotation-service/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// actorHeader carries the identity of the user acting through the gateway.
const actorHeader = "X-Actor-ID"

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrMemberNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "member not found"
	case errors.Is(err, entities.ErrPermissionDenied):
		status = http.StatusForbidden
		code = api.PERMISSIONDENIED
		msg = "admin rights required"
	case errors.Is(err, entities.ErrEmptyRoster):
		status = http.StatusConflict
		code = api.EMPTYROSTER
		msg = "no members registered"
	case errors.Is(err, entities.ErrSessionNotFound):
		status = http.StatusConflict
		code = api.NOSESSION
		msg = "no open manual-pick session"
	case errors.Is(err, entities.ErrPersistence):
		msg = "storage failure"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}

// actorID parses the acting user identity from the request header.
func actorID(c *fiber.Ctx) (int64, error) {
	raw := c.Get(actorHeader)
	if raw == "" {
		return 0, errors.New("header is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("header must be a numeric user id")
	}
	return id, nil
}

func writeActorError(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).
		JSON(errorResponse(api.INVALIDARGUMENT, actorHeader+" header with a numeric user id is required"))
}
