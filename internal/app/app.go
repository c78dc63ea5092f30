package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/crewdesk/internal/config"
	"github.com/thenoetrevino/crewdesk/internal/database"
	"github.com/thenoetrevino/crewdesk/internal/events"
	"github.com/thenoetrevino/crewdesk/internal/services/dailytask"
	"github.com/thenoetrevino/crewdesk/internal/services/leave"
	"github.com/thenoetrevino/crewdesk/internal/services/project"
	"github.com/thenoetrevino/crewdesk/internal/services/stats"
	"github.com/thenoetrevino/crewdesk/internal/services/task"
	"github.com/thenoetrevino/crewdesk/internal/services/user"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo *database.Repository

	// Event system for live updates
	eventClient events.EventPublisher
	logger      *slog.Logger

	// Service layer (business logic)
	TaskService           task.Service
	UserService           user.Service
	MemberService         user.MemberService
	AdminService          user.StaffService
	ProjectManagerService user.StaffService
	ProjectService        project.Service
	LeaveService          leave.Service
	DailyTaskService      dailytask.Service
	StatsService          stats.Service
}

// New creates a new App with all services initialized over repo.
// This is the single entry point for creating the application container.
func New(repo *database.Repository, opts ...Option) *App {
	cfg := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &App{
		repo:                  repo,
		eventClient:           cfg.eventClient,
		logger:                cfg.logger,
		TaskService:           task.NewService(repo.Tasks, repo.Members, cfg.eventClient),
		UserService:           user.NewService(repo.Members, repo.Admins, repo.ProjectManagers),
		MemberService:         user.NewMemberService(repo.Members, cfg.eventClient),
		AdminService:          user.NewStaffService(repo.Admins, cfg.eventClient),
		ProjectManagerService: user.NewStaffService(repo.ProjectManagers, cfg.eventClient),
		ProjectService:        project.NewService(repo.Projects, cfg.eventClient),
		LeaveService:          leave.NewService(repo.Leaves, cfg.eventClient),
		DailyTaskService:      dailytask.NewService(repo.DailyTasks, cfg.eventClient),
	}
	a.StatsService = stats.NewService(a.TaskService, a.UserService, a.ProjectService, a.LeaveService)
	return a
}

// Open connects to the configured database and builds the App over it
func Open(ctx context.Context, cfg database.Config, opts ...Option) (*App, error) {
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return New(database.NewRepository(db), opts...), nil
}

// OpenConfig is Open driven by the full application config
func OpenConfig(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	return Open(ctx, cfg.Database, opts...)
}

// Repo returns the underlying repository. The legacy proxy and migrations use
// it directly, everything else goes through services.
func (a *App) Repo() *database.Repository {
	return a.repo
}

// Events returns the publisher services write to, nil when live updates are off
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Logger returns the logger the app was built with
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Ping checks the database connection
func (a *App) Ping(ctx context.Context) error {
	return a.repo.DB.PingContext(ctx)
}

// Close releases the database connection
func (a *App) Close() error {
	if a.repo == nil || a.repo.DB == nil {
		return nil
	}
	if err := a.repo.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
