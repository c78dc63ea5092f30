package database

import (
	"context"

	"github.com/thenoetrevino/crewdesk/internal/models"
)

// Reader defines the read operations every collection supports
type Reader[T any] interface {
	GetAll(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id string) (*T, error)
}

// Writer defines the write operations every collection supports
type Writer[T, N, P any] interface {
	Create(ctx context.Context, input N) (*T, error)
	Update(ctx context.Context, id string, patch P) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Collection combines the record access operations of one collection
type Collection[T, N, P any] interface {
	Reader[T]
	Writer[T, N, P]
}

// TaskRepository combines all task operations
type TaskRepository interface {
	Collection[models.Task, models.NewTask, models.TaskPatch]
}

// MemberRepository combines all member operations
type MemberRepository interface {
	Collection[models.Member, models.NewMember, models.MemberPatch]
	GetAllByName(ctx context.Context) ([]*models.Member, error)
}

// StaffRepository combines all admin or project manager operations
type StaffRepository interface {
	Collection[models.Staff, models.NewStaff, models.StaffPatch]
	GetAllByName(ctx context.Context) ([]*models.Staff, error)
	Kind() models.UserKind
}

// ProjectRepository combines all project operations
type ProjectRepository interface {
	Collection[models.Project, models.NewProject, models.ProjectPatch]
}

// LeaveRepository combines all leave operations
type LeaveRepository interface {
	Collection[models.Leave, models.NewLeave, models.LeavePatch]
}

// DailyTaskRepository combines all daily task operations
type DailyTaskRepository interface {
	Collection[models.DailyTask, models.NewDailyTask, models.DailyTaskPatch]
	GetByDate(ctx context.Context, date models.Date) ([]*models.DailyTask, error)
}

// LegacyRepository serves one integer-keyed proxy table
type LegacyRepository[T any] interface {
	Name() string
	List(ctx context.Context) ([]*T, error)
	Create(ctx context.Context, fields map[string]any) (*T, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

var (
	_ TaskRepository                         = (*TaskRepo)(nil)
	_ MemberRepository                       = (*MemberRepo)(nil)
	_ StaffRepository                        = (*StaffRepo)(nil)
	_ ProjectRepository                      = (*ProjectRepo)(nil)
	_ LeaveRepository                        = (*LeaveRepo)(nil)
	_ DailyTaskRepository                    = (*DailyTaskRepo)(nil)
	_ LegacyRepository[models.LegacyTask]    = (*LegacyTable[models.LegacyTask])(nil)
	_ LegacyRepository[models.LegacyFinance] = (*LegacyTable[models.LegacyFinance])(nil)
	_ LegacyRepository[models.LegacyUser]    = (*LegacyTable[models.LegacyUser])(nil)
)
