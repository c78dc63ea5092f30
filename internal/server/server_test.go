package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/crewdesk/internal/app"
	"github.com/thenoetrevino/crewdesk/internal/config"
	"github.com/thenoetrevino/crewdesk/internal/database"
	"github.com/thenoetrevino/crewdesk/internal/events"
	"github.com/thenoetrevino/crewdesk/internal/models"
	"github.com/thenoetrevino/crewdesk/internal/testutil"
)

// ============================================================================
// Test Helpers
// ============================================================================

type testEnv struct {
	server *Server
	repo   *database.Repository
	broker *events.Broker
}

func newTestEnv(t *testing.T, mutate func(*config.Config)) *testEnv {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}

	broker := events.NewBroker()
	t.Cleanup(func() { _ = broker.Close() })

	repo := testutil.SetupTestRepo(t)
	s, err := New(cfg, app.New(repo, app.WithEventPublisher(broker)), broker)
	require.NoError(t, err)
	return &testEnv{server: s, repo: repo, broker: broker}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func newTaskBody(userID, name string) map[string]any {
	return map[string]any{
		"user_id":    userID,
		"created_by": userID,
		"task_name":  name,
		"due_date":   "2025-04-30",
	}
}

// ============================================================================
// DASHBOARD API
// ============================================================================

func TestTasks_CRUD(t *testing.T) {
	env := newTestEnv(t, nil)
	member := testutil.CreateTestMember(t, env.repo, "Priya", "priya@example.com")

	rec := env.do(t, http.MethodPost, "/api/v1/tasks", newTaskBody(member.ID, "Draft roadmap"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[models.Task](t, rec)
	assert.Equal(t, models.TaskStatusPending, created.Status)
	assert.Equal(t, models.PriorityMedium, created.Priority)

	rec = env.do(t, http.MethodGet, "/api/v1/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]models.Task](t, rec)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].AssignedTo)
	assert.Equal(t, "Priya", *list[0].AssignedTo)

	rec = env.do(t, http.MethodPatch, "/api/v1/tasks/"+created.ID, map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.Task](t, rec)
	assert.Equal(t, models.TaskStatusCompleted, updated.Status)
	assert.Equal(t, "Draft roadmap", updated.TaskName)

	rec = env.do(t, http.MethodDelete, "/api/v1/tasks/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/tasks/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[errorBody](t, rec)
	assert.Equal(t, "Not found", body.Error)
	assert.Contains(t, body.Details, created.ID)

	rec = env.do(t, http.MethodDelete, "/api/v1/tasks/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	env := newTestEnv(t, nil)
	testutil.CreateTestMember(t, env.repo, "Dup", "dup@example.com")

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
		wantError  string
	}{
		{"request validation", http.MethodPost, "/api/v1/tasks", newTaskBody("u1", "  "), http.StatusBadRequest, "Validation failed"},
		{"malformed json", http.MethodPost, "/api/v1/projects", "{", http.StatusBadRequest, "Validation failed"},
		{"malformed date", http.MethodPost, "/api/v1/tasks", `{"due_date":"tomorrow"}`, http.StatusBadRequest, "Validation failed"},
		{"backend constraint", http.MethodPost, "/api/v1/members", map[string]any{"name": "Dup", "email": "dup@example.com"}, http.StatusUnprocessableEntity, "Rejected by database"},
		{"unknown id", http.MethodGet, "/api/v1/projects/not-a-uuid", nil, http.StatusNotFound, "Not found"},
		{"unknown route", http.MethodGet, "/api/v1/nope", nil, http.StatusNotFound, "Route not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			body := decode[errorBody](t, rec)
			assert.Equal(t, tt.wantError, body.Error)
			assert.NotEmpty(t, body.Details)
		})
	}
}

func TestBackendFailureIs500(t *testing.T) {
	env := newTestEnv(t, nil)
	require.NoError(t, env.repo.DB.Close())

	rec := env.do(t, http.MethodGet, "/api/v1/stats", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[errorBody](t, rec)
	assert.Equal(t, "Internal server error", body.Error)
	assert.NotEmpty(t, body.Details)

	rec = env.do(t, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.GreaterOrEqual(t, env.server.Metrics().RequestErrors.Load(), int64(1))
}

func TestUsers_UnifiedOrder(t *testing.T) {
	env := newTestEnv(t, nil)
	testutil.CreateTestMember(t, env.repo, "Zed", "zed@example.com")
	testutil.CreateTestStaff(t, env.repo.Admins, "Alice", "alice@example.com")
	testutil.CreateTestStaff(t, env.repo.ProjectManagers, "Bob", "bob@example.com")

	rec := env.do(t, http.MethodGet, "/api/v1/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	users := decode[[]models.User](t, rec)
	require.Len(t, users, 3)
	assert.Equal(t, models.UserKindMember, users[0].Type)
	assert.Equal(t, models.UserKindAdmin, users[1].Type)
	assert.Equal(t, models.UserKindProjectManager, users[2].Type)
}

func TestStats(t *testing.T) {
	env := newTestEnv(t, nil)
	m := testutil.CreateTestMember(t, env.repo, "Kai", "kai@example.com")
	testutil.CreateTestTask(t, env.repo, m.ID, "a", models.TaskStatusCompleted)
	testutil.CreateTestTask(t, env.repo, m.ID, "b", models.TaskStatusBlocked)
	testutil.CreateTestLeave(t, env.repo, m.ID, models.LeaveStatusPending)

	rec := env.do(t, http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.EqualValues(t, 2, raw["totalTasks"])
	assert.EqualValues(t, 1, raw["completedTasks"])
	assert.EqualValues(t, 0, raw["pendingTasks"])
	assert.EqualValues(t, 1, raw["pendingLeaves"])
	assert.Contains(t, raw, "generatedAt")
}

func TestDailyTasks_DateFilter(t *testing.T) {
	env := newTestEnv(t, nil)
	for _, day := range []string{"2025-05-01", "2025-05-01", "2025-05-02"} {
		rec := env.do(t, http.MethodPost, "/api/v1/daily-tasks", map[string]any{
			"user_id": "u1", "created_by": "u1", "task_name": "standup", "task_date": day,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := env.do(t, http.MethodGet, "/api/v1/daily-tasks?date=2025-05-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.DailyTask](t, rec), 2)

	rec = env.do(t, http.MethodGet, "/api/v1/daily-tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[[]models.DailyTask](t, rec)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-05-02", all[0].TaskDate.String())

	rec = env.do(t, http.MethodGet, "/api/v1/daily-tasks?date=May", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatConfig(t *testing.T) {
	env := newTestEnv(t, func(c *config.Config) { c.Chat.WebhookURL = "https://chat.example.com/hook" })

	rec := env.do(t, http.MethodGet, "/api/v1/chat/config", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://chat.example.com/hook", body["webhookUrl"])
	assert.NotEmpty(t, body["starterPrompts"])
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[healthResponse](t, rec)
	assert.Equal(t, "ok", body.Status)
	assert.True(t, body.Database.Connected)
	assert.Equal(t, "SQLite", body.Database.Type)
	require.NotNil(t, body.Metrics)
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t, func(c *config.Config) { c.Server.AllowedOrigins = []string{"https://dash.example.com"} })

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/tasks", nil)
	req.Header.Set("Origin", "https://dash.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := httptest.NewRecorder()
	env.server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "https://dash.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

// ============================================================================
// LEGACY PROXY
// ============================================================================

func TestLegacyTasks(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/api/tasks", map[string]any{"title": "first", "priority": "high", "bogus": 1})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	first := decode[models.LegacyTask](t, rec)
	require.NotNil(t, first.Status)
	assert.Equal(t, "not_started", *first.Status)

	rec = env.do(t, http.MethodPost, "/api/tasks", map[string]any{"title": "second", "status": "done"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]models.LegacyTask](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "second", *list[0].Title, "highest id first")

	path := "/api/tasks/" + jsonID(first.ID)
	rec = env.do(t, http.MethodPut, path, map[string]any{"status": "in_progress"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.LegacyTask](t, rec)
	assert.Equal(t, "in_progress", *updated.Status)
	assert.Equal(t, "high", *updated.Priority, "absent fields are untouched")

	rec = env.do(t, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Task deleted successfully", decode[map[string]string](t, rec)["message"])

	rec = env.do(t, http.MethodPut, path, map[string]any{"status": "x"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to update task", decode[errorBody](t, rec).Error)
}

func TestLegacyFinancesAndUsers(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/api/finances", map[string]any{"description": "hosting", "amount": 42.5, "type": "expense"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	fin := decode[models.LegacyFinance](t, rec)
	assert.InDelta(t, 42.5, *fin.Amount, 0.001)

	rec = env.do(t, http.MethodDelete, "/api/finances/"+jsonID(fin.ID), nil)
	assert.Equal(t, "Finance record deleted successfully", decode[map[string]string](t, rec)["message"])

	rec = env.do(t, http.MethodPost, "/api/users", map[string]any{"name": "Ana", "email": "ana@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code)
	u := decode[models.LegacyUser](t, rec)
	assert.NotNil(t, u.CreatedAt)

	rec = env.do(t, http.MethodDelete, "/api/users/999", nil)
	assert.Equal(t, "User deleted successfully", decode[map[string]string](t, rec)["message"])

	rec = env.do(t, http.MethodDelete, "/api/users/abc", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to delete user", decode[errorBody](t, rec).Error)

	rec = env.do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[healthResponse](t, rec).Database.Connected)
}

func TestLegacyDisabled(t *testing.T) {
	env := newTestEnv(t, func(c *config.Config) { c.Server.LegacyAPI = false })

	rec := env.do(t, http.MethodGet, "/api/tasks", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func jsonID(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}

// ============================================================================
// AUTH
// ============================================================================

func TestAuth(t *testing.T) {
	const secret = "test-secret"
	env := newTestEnv(t, func(c *config.Config) {
		c.Auth.JWTSecret = secret
		c.Auth.AllowedRoles = []string{"anon", "service_role"}
	})

	anon, err := SignToken(secret, "anon", nil)
	require.NoError(t, err)
	admin, err := SignToken(secret, "dba", nil)
	require.NoError(t, err)
	forged, err := SignToken("other-secret", "anon", nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		path    string
		headers []string
		want    int
	}{
		{"no token", "/api/v1/projects", nil, http.StatusUnauthorized},
		{"bearer", "/api/v1/projects", []string{"Authorization", "Bearer " + anon}, http.StatusOK},
		{"apikey header", "/api/tasks", []string{"apikey", anon}, http.StatusOK},
		{"apikey query", "/api/v1/projects?apikey=" + anon, nil, http.StatusOK},
		{"role not allowed", "/api/v1/projects", []string{"Authorization", "Bearer " + admin}, http.StatusUnauthorized},
		{"wrong secret", "/api/v1/projects", []string{"Authorization", "Bearer " + forged}, http.StatusUnauthorized},
		{"health exempt", "/api/v1/health", nil, http.StatusOK},
		{"legacy health exempt", "/api/health", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, tt.path, nil, tt.headers...)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestAuthDisabledPassesThrough(t *testing.T) {
	assert.Nil(t, NewAuthMiddleware(config.AuthConfig{}))
}

// ============================================================================
// LIVE UPDATES
// ============================================================================

func TestWebsocketReceivesChanges(t *testing.T) {
	env := newTestEnv(t, func(c *config.Config) { c.Server.Addr = "127.0.0.1:0" })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- env.server.Serve(ctx, ln) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	url := "ws://" + ln.Addr().String() + "/api/v1/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	defer func() { _ = conn.Close() }()

	require.Eventually(t, func() bool { return env.server.Hub().ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)
	// the hub subscribes when Serve starts; wait for it before publishing
	require.Eventually(t, func() bool { return env.broker.SubscriberCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	body, _ := json.Marshal(map[string]any{"name": "Live"})
	httpResp, err := http.Post("http://"+ln.Addr().String()+"/api/v1/projects", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	_ = httpResp.Body.Close()
	require.Equal(t, http.StatusCreated, httpResp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev events.Event
	require.NoError(t, json.Unmarshal(msg, &ev))
	assert.Equal(t, events.EventRecordCreated, ev.Type)
	assert.Equal(t, models.CollectionProjects, ev.Collection)
	assert.Equal(t, int32(1), env.server.Metrics().ConnectedClients.Load())
}

// ============================================================================
// SNAPSHOTS
// ============================================================================

func TestSnapshotter(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := NewSnapshotter("not a schedule", env.server.app.StatsService, env.broker, env.server.metrics)
	assert.Error(t, err)

	snaps, err := NewSnapshotter("@every 1h", env.server.app.StatsService, env.broker, env.server.metrics)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := env.broker.Subscribe(ctx)

	snaps.Run()

	select {
	case ev := <-ch:
		assert.Equal(t, events.EventStatsSnapshot, ev.Type)
		_, ok := ev.Payload.(*models.DashboardStats)
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot published")
	}
	assert.Equal(t, int64(1), env.server.metrics.SnapshotsTotal.Load())
	assert.Equal(t, int64(0), env.server.metrics.SnapshotFailures.Load())
}

func TestNewRejectsBadSchedule(t *testing.T) {
	cfg := config.Default()
	cfg.Stats.SnapshotSchedule = "whenever"
	broker := events.NewBroker()
	t.Cleanup(func() { _ = broker.Close() })

	_, err := New(cfg, app.New(testutil.SetupTestRepo(t)), broker)
	assert.Error(t, err)
}
