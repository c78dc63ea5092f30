// Package stats computes the dashboard summary counts
package stats

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/crewdesk/internal/models"
)

// Service defines the dashboard statistics operation
type Service interface {
	// Collect re-fetches every source and counts. Nothing is cached.
	Collect(ctx context.Context) (*models.DashboardStats, error)
}

// The four sources the summary is counted from
type (
	TaskSource interface {
		GetAll(ctx context.Context) ([]*models.Task, error)
	}
	UserSource interface {
		GetAllUsers(ctx context.Context) ([]*models.User, error)
	}
	ProjectSource interface {
		GetAll(ctx context.Context) ([]*models.Project, error)
	}
	LeaveSource interface {
		GetAll(ctx context.Context) ([]*models.Leave, error)
	}
)

type service struct {
	tasks    TaskSource
	users    UserSource
	projects ProjectSource
	leaves   LeaveSource
	now      func() time.Time
}

// NewService creates the aggregator over its four sources
func NewService(tasks TaskSource, users UserSource, projects ProjectSource, leaves LeaveSource) Service {
	return &service{
		tasks:    tasks,
		users:    users,
		projects: projects,
		leaves:   leaves,
		now:      time.Now,
	}
}

// Collect issues the four reads concurrently. The first failure cancels the
// others and is returned with no partial stats.
func (s *service) Collect(ctx context.Context) (*models.DashboardStats, error) {
	var (
		tasks    []*models.Task
		users    []*models.User
		projects []*models.Project
		leaves   []*models.Leave
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.tasks.GetAll(gctx)
		return wrap("tasks", err)
	})
	g.Go(func() error {
		var err error
		users, err = s.users.GetAllUsers(gctx)
		return wrap("users", err)
	})
	g.Go(func() error {
		var err error
		projects, err = s.projects.GetAll(gctx)
		return wrap("projects", err)
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaves.GetAll(gctx)
		return wrap("leaves", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := Compute(tasks, users, projects, leaves)
	stats.GeneratedAt = s.now().UTC()
	return &stats, nil
}

func wrap(source string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to fetch %s: %w", source, err)
}

// Compute counts the summary from already fetched records
func Compute(tasks []*models.Task, users []*models.User, projects []*models.Project, leaves []*models.Leave) models.DashboardStats {
	var s models.DashboardStats

	s.TotalTasks = len(tasks)
	for _, t := range tasks {
		switch t.Status {
		case models.TaskStatusCompleted:
			s.CompletedTasks++
		case models.TaskStatusPending:
			s.PendingTasks++
		case models.TaskStatusInProgress:
			s.InProgressTasks++
		}
	}

	s.TotalMembers = len(users)
	for _, u := range users {
		if u.IsActive {
			s.ActiveMembers++
		}
	}

	s.TotalProjects = len(projects)
	for _, p := range projects {
		switch p.Status {
		case models.ProjectStatusActive:
			s.ActiveProjects++
		case models.ProjectStatusCompleted:
			s.CompletedProjects++
		}
	}

	s.TotalLeaves = len(leaves)
	for _, l := range leaves {
		switch l.Status {
		case models.LeaveStatusPending:
			s.PendingLeaves++
		case models.LeaveStatusApproved:
			s.ApprovedLeaves++
		case models.LeaveStatusRejected:
			s.RejectedLeaves++
		}
	}

	return s
}
