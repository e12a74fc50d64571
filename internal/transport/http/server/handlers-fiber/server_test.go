package handlers_fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"duty-rotation-service/config"
	"duty-rotation-service/internal/api"
	"duty-rotation-service/internal/repository/jsonfile"
	"duty-rotation-service/internal/session"
	"duty-rotation-service/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const adminID = "42"

// newTestApp wires a fiber app over a real jsonfile store in a temp dir,
// with user 42 preconfigured as admin and a 3-day rotation interval.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "duty_config.json"),
		[]byte(`{"admins": [42], "duty_duration_days": 3}`),
		0o644,
	))

	cfg := &config.Config{Storage: config.StorageConfig{
		DataFile:   filepath.Join(dir, "duty_data.json"),
		ConfigFile: filepath.Join(dir, "duty_config.json"),
	}}

	log := zap.NewNop().Sugar()
	repo := jsonfile.New(context.Background(), log, cfg)
	require.NoError(t, repo.OnStart(context.Background()))

	uc := usecase.New(log, context.Background(), repo, session.NewManager(time.Minute), time.Second, "duty day")

	app := fiber.New()
	NewHandler(log, uc).Register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, actor string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if actor != "" {
		req.Header.Set(actorHeader, actor)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func joinMember(t *testing.T, app *fiber.App, id int64, name string) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/members/join", "", api.JoinRequest{ID: id, FirstName: name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestJoinAndRejoin(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/members/join", "", api.JoinRequest{ID: 1, FirstName: "Ann"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode[api.JoinResponse](t, resp)
	require.True(t, body.Created)
	require.Equal(t, "Ann", body.Member.FirstName)

	resp = doJSON(t, app, http.MethodPost, "/members/join", "", api.JoinRequest{ID: 1, FirstName: "Ann"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode[api.JoinResponse](t, resp)
	require.False(t, body.Created)
}

func TestMembersListRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	joinMember(t, app, 1, "Ann")

	resp := doJSON(t, app, http.MethodGet, "/members", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/members", "7", nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/members", adminID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[struct {
		Members []api.Member `json:"members"`
	}](t, resp)
	require.Len(t, body.Members, 1)
}

func TestDrawAndCurrentDuty(t *testing.T) {
	app := newTestApp(t)
	joinMember(t, app, 1, "Ann")
	joinMember(t, app, 2, "Bob")
	joinMember(t, app, 3, "Cid")

	resp := doJSON(t, app, http.MethodPost, "/duty/draw", "7", nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/duty/draw", adminID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	selection := decode[api.DutySelection](t, resp)
	require.Len(t, selection.Members, 2)

	resp = doJSON(t, app, http.MethodGet, "/duty/current", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	status := decode[api.DutyStatus](t, resp)
	require.Len(t, status.Members, 2)
	require.NotNil(t, status.DaysRemaining)
	require.Equal(t, 3, *status.DaysRemaining)
}

func TestDrawEmptyRosterConflict(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/duty/draw", adminID, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode[api.ErrorResponse](t, resp)
	require.Equal(t, api.EMPTYROSTER, body.Error.Code)
}

func TestRenameUnknownMember(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/members/rename", adminID, api.RenameRequest{ID: 99, FirstName: "Zed"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestManualPickFlow(t *testing.T) {
	app := newTestApp(t)
	joinMember(t, app, 1, "Ann")
	joinMember(t, app, 2, "Bob")

	resp := doJSON(t, app, http.MethodPost, "/duty/manual/start", adminID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/duty/manual/pick", adminID, api.PickRequest{MemberID: 1})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/duty/manual/finish", adminID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	selection := decode[api.DutySelection](t, resp)
	require.Len(t, selection.Members, 1)
	require.Equal(t, int64(1), selection.Members[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/duty/history", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	history := decode[struct {
		History []api.HistoryEntry `json:"history"`
	}](t, resp)
	require.Len(t, history.History, 1)
}

func TestManualFinishWithoutSession(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/duty/manual/finish", adminID, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode[api.ErrorResponse](t, resp)
	require.Equal(t, api.NOSESSION, body.Error.Code)
}

func TestLeave(t *testing.T) {
	app := newTestApp(t)
	joinMember(t, app, 1, "Ann")

	resp := doJSON(t, app, http.MethodPost, "/members/leave", "", api.LeaveRequest{ID: 1})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/members", adminID, nil)
	body := decode[struct {
		Members []api.Member `json:"members"`
	}](t, resp)
	require.Empty(t, body.Members)
}

func TestRemindersDue(t *testing.T) {
	app := newTestApp(t)
	joinMember(t, app, 1, "Ann")

	resp := doJSON(t, app, http.MethodPost, "/duty/draw", adminID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/reminders/due", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[struct {
		Reminders []api.Reminder `json:"reminders"`
	}](t, resp)
	require.Len(t, body.Reminders, 1)
	require.Equal(t, int64(1), body.Reminders[0].MemberID)
	require.Equal(t, "duty day", body.Reminders[0].Message)
}

func TestAdminDuration(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/admin/duration", "7", api.DurationRequest{Days: 10})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/admin/duration", adminID, api.DurationRequest{Days: 0})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/admin/duration", adminID, api.DurationRequest{Days: 10})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}
