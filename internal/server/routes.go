package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/thenoetrevino/crewdesk/internal/database"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// routes builds the /api/v1 dashboard API and, when enabled, the legacy /api proxy
func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	a := s.app

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", s.health).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.stats).Methods(http.MethodGet)
	api.HandleFunc("/chat/config", s.chatConfig).Methods(http.MethodGet)
	api.Handle("/ws", s.hub).Methods(http.MethodGet)

	mountCRUD[models.Task, models.NewTask, models.TaskPatch](api, "/tasks", a.TaskService)

	api.HandleFunc("/users", listHandler(a.UserService.GetAllUsers)).Methods(http.MethodGet)
	mountCRUD[models.Member, models.NewMember, models.MemberPatch](api, "/members", a.MemberService)
	mountCRUD[models.Staff, models.NewStaff, models.StaffPatch](api, "/admins", a.AdminService)
	mountCRUD[models.Staff, models.NewStaff, models.StaffPatch](api, "/project-managers", a.ProjectManagerService)

	mountCRUD[models.Project, models.NewProject, models.ProjectPatch](api, "/projects", a.ProjectService)
	mountCRUD[models.Leave, models.NewLeave, models.LeavePatch](api, "/leaves", a.LeaveService)

	api.HandleFunc("/daily-tasks", s.listDailyTasks).Methods(http.MethodGet)
	mountWrites[models.DailyTask, models.NewDailyTask, models.DailyTaskPatch](api, "/daily-tasks", a.DailyTaskService)

	if s.cfg.Server.LegacyAPI {
		repo := a.Repo()
		legacy := r.PathPrefix("/api").Subrouter()
		legacy.HandleFunc("/health", s.legacyHealth).Methods(http.MethodGet)
		mountLegacy[models.LegacyTask](legacy, "/tasks", repo.LegacyTasks,
			legacyNames{plural: "tasks", singular: "task", kind: "Task"},
			map[string]any{"status": "not_started"})
		mountLegacy[models.LegacyFinance](legacy, "/finances", repo.LegacyFinances,
			legacyNames{plural: "finances", singular: "finance record", kind: "Finance record"}, nil)
		mountLegacy[models.LegacyUser](legacy, "/users", repo.LegacyUsers,
			legacyNames{plural: "users", singular: "user", kind: "User"}, nil)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Route not found", Details: r.Method + " " + r.URL.Path})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed", Details: r.Method + " " + r.URL.Path})
	})
	return r
}

// ============================================================================
// DASHBOARD HANDLERS
// ============================================================================

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.app.StatsService.Collect(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// listDailyTasks filters by ?date=YYYY-MM-DD when given
func (s *Server) listDailyTasks(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		listHandler(s.app.DailyTaskService.GetAll)(w, r)
		return
	}

	date, err := models.ParseDate(raw)
	if err != nil {
		writeError(w, r, models.Invalid("date", err))
		return
	}
	items, err := s.app.DailyTaskService.GetByDate(r.Context(), date)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) chatConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg.Chat)
}

// ============================================================================
// HEALTH
// ============================================================================

type dbHealth struct {
	Type      string `json:"type"`
	Connected bool   `json:"connected"`
	Error     string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string           `json:"status"`
	Message     string           `json:"message"`
	Timestamp   time.Time        `json:"timestamp"`
	Uptime      float64          `json:"uptime"`
	Environment string           `json:"environment"`
	Database    dbHealth         `json:"database"`
	Metrics     *MetricsSnapshot `json:"metrics,omitempty"`
}

func (s *Server) healthBody(ping func() error) healthResponse {
	db := dbHealth{Type: databaseType(s.app.Repo().DB.Dialect), Connected: true}
	if err := ping(); err != nil {
		db.Connected = false
		db.Error = err.Error()
	}
	return healthResponse{
		Status:      "ok",
		Message:     "Server is running",
		Timestamp:   time.Now().UTC(),
		Uptime:      time.Since(s.metrics.StartTime).Seconds(),
		Environment: s.cfg.Env,
		Database:    db,
	}
}

// health reports 503 when the database is unreachable
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	body := s.healthBody(func() error { return s.app.Ping(r.Context()) })
	snapshot := s.metrics.GetSnapshot()
	body.Metrics = &snapshot

	status := http.StatusOK
	if !body.Database.Connected {
		body.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, body)
}

// legacyHealth always answers 200 and reports the task table's reachability
func (s *Server) legacyHealth(w http.ResponseWriter, r *http.Request) {
	body := s.healthBody(func() error { return s.app.Repo().LegacyTasks.Ping(r.Context()) })
	writeJSON(w, http.StatusOK, body)
}

func databaseType(d database.Dialect) string {
	if d == database.DialectPostgres {
		return "PostgreSQL"
	}
	return "SQLite"
}
