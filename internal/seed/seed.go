// Package seed fills an empty workspace with a small sample team so the
// dashboard and API have something to show
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/crewdesk/internal/app"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// Result counts what Run created
type Result struct {
	Members    int `json:"members"`
	Admins     int `json:"admins"`
	Managers   int `json:"projectManagers"`
	Projects   int `json:"projects"`
	Tasks      int `json:"tasks"`
	Leaves     int `json:"leaves"`
	DailyTasks int `json:"dailyTasks"`
}

// ErrNotEmpty means the workspace already has members and was left alone
var ErrNotEmpty = errors.New("workspace already has members")

func strPtr(s string) *string { return &s }

// Run creates the sample records through the services, so the usual
// validation applies and every insert is published. today anchors the dates.
func Run(ctx context.Context, a *app.App, today time.Time) (*Result, error) {
	existing, err := a.MemberService.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing members: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrNotEmpty
	}

	res := &Result{}
	day := func(offset int) models.Date {
		return models.NewDate(today.AddDate(0, 0, offset))
	}

	// ========================================================================
	// PEOPLE
	// ========================================================================

	members := make([]*models.Member, 0, 3)
	for _, m := range []models.NewMember{
		{Name: "Ana Silva", Email: "ana@crewdesk.local", Department: strPtr("Engineering"), HireDate: day(-400)},
		{Name: "Ben Okafor", Email: "ben@crewdesk.local", Department: strPtr("Design"), HireDate: day(-200)},
		{Name: "Chen Wei", Email: "chen@crewdesk.local", Department: strPtr("Engineering"), HireDate: day(-30)},
	} {
		created, err := a.MemberService.Create(ctx, m)
		if err != nil {
			return res, fmt.Errorf("failed to seed member %s: %w", m.Email, err)
		}
		members = append(members, created)
		res.Members++
	}

	if _, err := a.AdminService.Create(ctx, models.NewStaff{Name: "Dana Admin", Email: "dana@crewdesk.local"}); err != nil {
		return res, fmt.Errorf("failed to seed admin: %w", err)
	}
	res.Admins++

	pm, err := a.ProjectManagerService.Create(ctx, models.NewStaff{
		Name: "Eli Manager", Email: "eli@crewdesk.local", Department: strPtr("Delivery"),
	})
	if err != nil {
		return res, fmt.Errorf("failed to seed project manager: %w", err)
	}
	res.Managers++

	// ========================================================================
	// PROJECTS
	// ========================================================================

	projects := make([]*models.Project, 0, 2)
	for _, p := range []models.NewProject{
		{Name: "Website relaunch", ClientName: strPtr("Acme"), StartDate: day(-60), ExpectedEndDate: day(30), Status: models.ProjectStatusActive},
		{Name: "Mobile app", ClientName: strPtr("Globex"), StartDate: day(-180), ExpectedEndDate: day(-10), Status: models.ProjectStatusCompleted},
	} {
		created, err := a.ProjectService.Create(ctx, p)
		if err != nil {
			return res, fmt.Errorf("failed to seed project %s: %w", p.Name, err)
		}
		projects = append(projects, created)
		res.Projects++
	}

	// ========================================================================
	// TASKS
	// ========================================================================

	tasks := []struct {
		name     string
		assignee int
		status   models.TaskStatus
		priority models.Priority
		due      int
		progress int
	}{
		{"Fix auth bug", 0, models.TaskStatusInProgress, models.PriorityUrgent, 2, 40},
		{"Refactor landing page", 1, models.TaskStatusPending, models.PriorityMedium, 10, 0},
		{"Update dependencies", 2, models.TaskStatusPending, models.PriorityLow, 14, 0},
		{"Add integration tests", 0, models.TaskStatusInProgress, models.PriorityHigh, 5, 60},
		{"Deploy v1.0", 2, models.TaskStatusCompleted, models.PriorityHigh, -3, 100},
		{"Design review", 1, models.TaskStatusBlocked, models.PriorityMedium, 1, 20},
	}
	for _, t := range tasks {
		in := models.NewTask{
			UserID:    members[t.assignee].ID,
			CreatedBy: pm.ID,
			TaskName:  t.name,
			DueDate:   day(t.due),
			Status:    t.status,
			Priority:  t.priority,
			ProjectID: &projects[0].ID,
			Progress:  t.progress,
		}
		if t.status == models.TaskStatusCompleted {
			done := today.UTC()
			in.CompletedAt = &done
		}
		if _, err := a.TaskService.Create(ctx, in); err != nil {
			return res, fmt.Errorf("failed to seed task %q: %w", t.name, err)
		}
		res.Tasks++
	}

	// ========================================================================
	// LEAVE AND DAILY TASKS
	// ========================================================================

	leaves := []models.NewLeave{
		{UserID: members[1].ID, LeaveType: models.LeaveTypeVacation, Reason: "Family trip", FromDate: day(7), ToDate: day(11), Status: models.LeaveStatusApproved, ApprovedBy: &pm.ID},
		{UserID: members[2].ID, LeaveType: models.LeaveTypeSick, Reason: "Flu", LeaveDate: day(0), Status: models.LeaveStatusPending},
		{UserID: members[0].ID, LeaveType: models.LeaveTypeCasual, Reason: "Appointment", LeaveDate: day(-5), IsHalfDay: true, Status: models.LeaveStatusRejected},
	}
	for _, l := range leaves {
		if _, err := a.LeaveService.Create(ctx, l); err != nil {
			return res, fmt.Errorf("failed to seed leave: %w", err)
		}
		res.Leaves++
	}

	for i, m := range members {
		in := models.NewDailyTask{
			UserID:    m.ID,
			CreatedBy: m.ID,
			TaskName:  "Stand-up notes",
			TaskDate:  day(0),
			Status:    models.DailyTaskStatusPending,
		}
		if i == 0 {
			in.Status = models.DailyTaskStatusCompleted
		}
		if _, err := a.DailyTaskService.Create(ctx, in); err != nil {
			return res, fmt.Errorf("failed to seed daily task: %w", err)
		}
		res.DailyTasks++
	}

	slog.Info("sample data seeded",
		"members", res.Members,
		"projects", res.Projects,
		"tasks", res.Tasks,
		"leaves", res.Leaves)
	return res, nil
}
