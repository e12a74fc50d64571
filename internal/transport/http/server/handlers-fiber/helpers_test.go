package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"duty-rotation-service/internal/api"
	"duty-rotation-service/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    api.ErrorResponseErrorCode
		message string
	}{
		{
			name:    "not_found",
			err:     entities.ErrMemberNotFound,
			status:  http.StatusNotFound,
			code:    api.NOTFOUND,
			message: "member not found",
		},
		{
			name:    "permission_denied",
			err:     fmt.Errorf("%w: user 7", entities.ErrPermissionDenied),
			status:  http.StatusForbidden,
			code:    api.PERMISSIONDENIED,
			message: "admin rights required",
		},
		{
			name:    "empty_roster",
			err:     entities.ErrEmptyRoster,
			status:  http.StatusConflict,
			code:    api.EMPTYROSTER,
			message: "no members registered",
		},
		{
			name:    "no_session",
			err:     entities.ErrSessionNotFound,
			status:  http.StatusConflict,
			code:    api.NOSESSION,
			message: "no open manual-pick session",
		},
		{
			name:    "persistence",
			err:     fmt.Errorf("draw duty: %w: disk full", entities.ErrPersistence),
			status:  http.StatusInternalServerError,
			code:    api.INTERNAL,
			message: "storage failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
			require.Equal(t, tt.message, body.Error.Message)
		})
	}
}

func TestWriteErrorInvalidArgumentKeepsMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.INVALIDARGUMENT, body.Error.Code)
	require.Equal(t, "invalid argument: name is required", body.Error.Message)
}

func TestActorIDHeader(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		id, err := actorID(c)
		if err != nil {
			return writeActorError(c)
		}
		return c.SendString(fmt.Sprintf("%d", id))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(actorHeader, "not-a-number")
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(actorHeader, "42")
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
