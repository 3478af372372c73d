package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"studyquest_backend/internal/config"
	"studyquest_backend/internal/model"
	"studyquest_backend/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitNop()
	os.Exit(m.Run())
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Mode = "test"
	cfg.CORS.AllowedOrigins = []string{"*"}
	a := newApp(cfg)
	t.Cleanup(a.Shutdown)
	return a
}

func doJSON(t *testing.T, a *App, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHealthAndProfile(t *testing.T) {
	a := newTestApp(t)

	w, env := doJSON(t, a, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]any](t, env.Data)["status"])

	w, env = doJSON(t, a, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode[model.UserProfile](t, env.Data)
	assert.Equal(t, "학생", profile.Nickname)
	assert.Equal(t, 50, profile.Coins)
	assert.Equal(t, model.StageEgg, profile.CharacterStage)
}

func TestSessionEndpoint(t *testing.T) {
	a := newTestApp(t)

	w, _ := doJSON(t, a, http.MethodPost, "/api/sessions", map[string]any{"minutes": -3, "subject": "수학"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, a, http.MethodPost, "/api/sessions", map[string]any{"subject": "수학"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := doJSON(t, a, http.MethodPost, "/api/sessions", map[string]any{"minutes": 105, "subject": "수학"})
	require.Equal(t, http.StatusCreated, w.Code)
	out := decode[struct {
		Profile model.UserProfile `json:"profile"`
	}](t, env.Data)
	assert.Equal(t, 2, out.Profile.Level)
	assert.Equal(t, 5, out.Profile.CurrentXP)
	assert.Equal(t, 225, out.Profile.TotalStudyTime)

	_, env = doJSON(t, a, http.MethodGet, "/api/statistics", nil)
	stats := decode[struct {
		RecentSessions []model.StudySession `json:"recentSessions"`
	}](t, env.Data)
	require.Len(t, stats.RecentSessions, 1)
	assert.Equal(t, "manual", stats.RecentSessions[0].Source)
}

func TestTaskEndpoints(t *testing.T) {
	a := newTestApp(t)

	w, env := doJSON(t, a, http.MethodPost, "/api/tasks/2/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[map[string]any](t, env.Data)
	assert.Equal(t, true, res["completed"])
	assert.Equal(t, float64(60), res["coins"])

	w, env = doJSON(t, a, http.MethodPost, "/api/tasks/2/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode[map[string]any](t, env.Data)["coinsAwarded"])

	w, env = doJSON(t, a, http.MethodPost, "/api/tasks/missing/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[map[string]any](t, env.Data)
	assert.Equal(t, false, res["completed"])
	assert.Equal(t, float64(0), res["coinsAwarded"])
	assert.Equal(t, float64(60), res["coins"])

	w, env = doJSON(t, a, http.MethodPost, "/api/tasks", map[string]any{"title": "수학 문제집", "targetAmount": "p.30-40", "category": "Academy"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[model.TaskItem](t, env.Data)
	assert.Equal(t, model.CategoryAcademy, created.Category)

	w, _ = doJSON(t, a, http.MethodPost, "/api/tasks", map[string]any{"title": "x", "category": "Gym"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = doJSON(t, a, http.MethodPost, "/api/tasks/"+created.ID+"/reschedule", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode[map[string]any](t, env.Data)["removed"])
	w, env = doJSON(t, a, http.MethodPost, "/api/tasks/"+created.ID+"/reschedule", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode[map[string]any](t, env.Data)["removed"])

	w, env = doJSON(t, a, http.MethodDelete, "/api/tasks/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode[map[string]any](t, env.Data)["removed"])
	w, env = doJSON(t, a, http.MethodDelete, "/api/tasks/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode[map[string]any](t, env.Data)["removed"])

	_, env = doJSON(t, a, http.MethodGet, "/api/tasks", nil)
	list := decode[struct {
		Tasks    []model.TaskItem `json:"tasks"`
		Progress struct {
			Completed int `json:"completed"`
			Total     int `json:"total"`
		} `json:"progress"`
	}](t, env.Data)
	assert.Len(t, list.Tasks, 2)
	assert.Equal(t, 1, list.Progress.Completed)
	assert.Equal(t, 2, list.Progress.Total)
}

func TestTimetableEndpoints(t *testing.T) {
	a := newTestApp(t)

	w, env := doJSON(t, a, http.MethodPut, "/api/timetable/Mon/0", map[string]string{"subject": "코딩"})
	require.Equal(t, http.StatusOK, w.Code)
	tt := decode[model.TimeTable](t, env.Data)
	assert.Equal(t, "코딩", tt[model.Mon][0])
	assert.Equal(t, "수학", tt[model.Mon][1])

	w, _ = doJSON(t, a, http.MethodPut, "/api/timetable/Sun/0", map[string]string{"subject": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = doJSON(t, a, http.MethodPut, "/api/timetable/Mon/7", map[string]string{"subject": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = doJSON(t, a, http.MethodPut, "/api/timetable/Mon/first", map[string]string{"subject": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShopEndpoints(t *testing.T) {
	a := newTestApp(t)

	w, env := doJSON(t, a, http.MethodPost, "/api/shop/3/buy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[map[string]any](t, env.Data)
	assert.Equal(t, false, res["purchased"])
	assert.Equal(t, "insufficient_coins", res["reason"])

	w, env = doJSON(t, a, http.MethodPost, "/api/shop/4/buy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode[map[string]any](t, env.Data)["purchased"])

	w, _ = doJSON(t, a, http.MethodPost, "/api/shop/99/buy", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, env = doJSON(t, a, http.MethodGet, "/api/shop", nil)
	view := decode[struct {
		Coins         int      `json:"coins"`
		EquippedItems []string `json:"equippedItems"`
	}](t, env.Data)
	assert.Equal(t, 0, view.Coins)
	assert.Equal(t, []string{"☕"}, view.EquippedItems)
}

func TestTimerEndpoints(t *testing.T) {
	a := newTestApp(t)

	w, _ := doJSON(t, a, http.MethodPost, "/api/timer/mode", map[string]string{"mode": "countdown"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := doJSON(t, a, http.MethodPost, "/api/timer/mode", map[string]string{"mode": "pomodoro"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(25*60), decode[map[string]any](t, env.Data)["seconds"])

	w, env = doJSON(t, a, http.MethodPost, "/api/timer/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode[map[string]any](t, env.Data)["running"])

	w, _ = doJSON(t, a, http.MethodPost, "/api/timer/subject", map[string]string{"subject": "영어"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, env = doJSON(t, a, http.MethodPost, "/api/timer/stop", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode[map[string]any](t, env.Data)["minutes"])

	w, _ = doJSON(t, a, http.MethodPost, "/api/timer/subject", map[string]string{"subject": "영어"})
	assert.Equal(t, http.StatusOK, w.Code)

	// 暂停但还有未结算时间时不能切换模式
	_, _ = doJSON(t, a, http.MethodPost, "/api/timer/mode", map[string]string{"mode": "stopwatch"})
	a.services.timer.Toggle(context.Background())
	a.services.timer.Tick(context.Background())
	a.services.timer.Toggle(context.Background())
	w, _ = doJSON(t, a, http.MethodPost, "/api/timer/mode", map[string]string{"mode": "pomodoro"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

type dashboardBody struct {
	DailyGoal struct {
		Percent int `json:"percent"`
	} `json:"dailyGoal"`
	DDay struct {
		Name string `json:"name"`
	} `json:"dday"`
}

func TestDashboardEndpoint(t *testing.T) {
	a := newTestApp(t)
	_, env := doJSON(t, a, http.MethodGet, "/api/dashboard", nil)
	d := decode[dashboardBody](t, env.Data)
	assert.Equal(t, 25, d.DailyGoal.Percent)
	assert.Equal(t, "중간고사", d.DDay.Name)

	cfg := config.Default()
	cfg.Game.TodayMinutes = 90
	a.applyConfig(cfg)
	_, env = doJSON(t, a, http.MethodGet, "/api/dashboard", nil)
	d = decode[dashboardBody](t, env.Data)
	assert.Equal(t, 50, d.DailyGoal.Percent)
}

func TestMetricsAndSwagger(t *testing.T) {
	a := newTestApp(t)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/shop/{id}/buy")
}

func TestNotificationStream(t *testing.T) {
	a := newTestApp(t)
	srv := httptest.NewServer(a.Router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/notifications/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return a.services.hub.SubscriberCount() == 1
	}, time.Second, 5*time.Millisecond)

	resp, err := http.Post(srv.URL+"/api/tasks/3/complete", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var evt model.Event
	require.NoError(t, conn.ReadJSON(&evt))
	assert.Equal(t, model.EventCoinsAwarded, evt.Type)
	assert.Equal(t, "+10 코인", evt.Message)
}
