package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/crewdesk/internal/models"
	"github.com/thenoetrevino/crewdesk/internal/services/task"
	"github.com/thenoetrevino/crewdesk/internal/services/user"
	"github.com/thenoetrevino/crewdesk/internal/testutil"
)

// ============================================================================
// FAKE SOURCES
// ============================================================================

type fakeTasks struct {
	items []*models.Task
	err   error
}

func (f fakeTasks) GetAll(context.Context) ([]*models.Task, error) { return f.items, f.err }

type fakeUsers struct {
	items []*models.User
	err   error
}

func (f fakeUsers) GetAllUsers(context.Context) ([]*models.User, error) { return f.items, f.err }

type fakeProjects struct {
	items []*models.Project
	err   error
}

func (f fakeProjects) GetAll(context.Context) ([]*models.Project, error) { return f.items, f.err }

type fakeLeaves struct {
	items []*models.Leave
	err   error
}

func (f fakeLeaves) GetAll(context.Context) ([]*models.Leave, error) { return f.items, f.err }

// blockingLeaves fails only after ctx is cancelled, proving siblings are cancelled
type blockingLeaves struct{}

func (blockingLeaves) GetAll(ctx context.Context) ([]*models.Leave, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func tasksWithStatuses(counts map[models.TaskStatus]int) []*models.Task {
	var out []*models.Task
	for status, n := range counts {
		for i := 0; i < n; i++ {
			out = append(out, &models.Task{Status: status})
		}
	}
	return out
}

// ============================================================================
// COMPUTE
// ============================================================================

func TestCompute_TaskCounts(t *testing.T) {
	tasks := tasksWithStatuses(map[models.TaskStatus]int{
		models.TaskStatusCompleted:  3,
		models.TaskStatusPending:    4,
		models.TaskStatusInProgress: 2,
		models.TaskStatusBlocked:    1,
	})

	s := Compute(tasks, nil, nil, nil)
	assert.Equal(t, 10, s.TotalTasks)
	assert.Equal(t, 3, s.CompletedTasks)
	assert.Equal(t, 4, s.PendingTasks)
	assert.Equal(t, 2, s.InProgressTasks)
}

func TestCompute_OtherCounts(t *testing.T) {
	users := []*models.User{{IsActive: true}, {IsActive: false}, {IsActive: true}}
	projects := []*models.Project{
		{Status: models.ProjectStatusActive},
		{Status: models.ProjectStatusCompleted},
		{Status: models.ProjectStatusOnHold},
	}
	leaves := []*models.Leave{
		{Status: models.LeaveStatusPending},
		{Status: models.LeaveStatusApproved},
		{Status: models.LeaveStatusApproved},
		{Status: models.LeaveStatusRejected},
		{Status: models.LeaveStatusCancelled},
	}

	s := Compute(nil, users, projects, leaves)
	assert.Equal(t, models.DashboardStats{
		TotalMembers:      3,
		ActiveMembers:     2,
		TotalProjects:     3,
		ActiveProjects:    1,
		CompletedProjects: 1,
		TotalLeaves:       5,
		PendingLeaves:     1,
		ApprovedLeaves:    2,
		RejectedLeaves:    1,
	}, s)
}

// ============================================================================
// COLLECT
// ============================================================================

func TestCollect_Success(t *testing.T) {
	fixed := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := &service{
		tasks:    fakeTasks{items: tasksWithStatuses(map[models.TaskStatus]int{models.TaskStatusCompleted: 1})},
		users:    fakeUsers{items: []*models.User{{IsActive: true}}},
		projects: fakeProjects{items: []*models.Project{{Status: models.ProjectStatusActive}}},
		leaves:   fakeLeaves{},
		now:      func() time.Time { return fixed },
	}

	s, err := svc.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalTasks)
	assert.Equal(t, 1, s.CompletedTasks)
	assert.Equal(t, 1, s.ActiveMembers)
	assert.Equal(t, 1, s.ActiveProjects)
	assert.Equal(t, fixed, s.GeneratedAt)
}

func TestCollect_ProjectFailureReturnsNoStats(t *testing.T) {
	boom := errors.New("projects table unavailable")
	svc := NewService(
		fakeTasks{items: tasksWithStatuses(map[models.TaskStatus]int{models.TaskStatusPending: 2})},
		fakeUsers{},
		fakeProjects{err: boom},
		fakeLeaves{},
	)

	s, err := svc.Collect(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "projects")
	assert.Nil(t, s)
}

func TestCollect_FailureCancelsSiblings(t *testing.T) {
	boom := errors.New("tasks down")
	svc := NewService(fakeTasks{err: boom}, fakeUsers{}, fakeProjects{}, blockingLeaves{})

	done := make(chan error, 1)
	go func() {
		_, err := svc.Collect(context.Background())
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(2 * time.Second):
		t.Fatal("collect did not return after a sibling failed")
	}
}

func TestCollect_AgainstDatabase(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	ctx := context.Background()

	member := testutil.CreateTestMember(t, repo, "Ravi", "ravi@example.com")
	testutil.CreateTestStaff(t, repo.Admins, "Ops", "ops@example.com")
	testutil.CreateTestTask(t, repo, member.ID, "a", models.TaskStatusCompleted)
	testutil.CreateTestTask(t, repo, member.ID, "b", models.TaskStatusInProgress)
	testutil.CreateTestProject(t, repo, "p", models.ProjectStatusCompleted)
	testutil.CreateTestLeave(t, repo, member.ID, models.LeaveStatusApproved)

	svc := NewService(
		task.NewService(repo.Tasks, repo.Members, nil),
		user.NewService(repo.Members, repo.Admins, repo.ProjectManagers),
		repo.Projects,
		repo.Leaves,
	)

	s, err := svc.Collect(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, s.TotalTasks)
	assert.Equal(t, 1, s.CompletedTasks)
	assert.Equal(t, 1, s.InProgressTasks)
	assert.Equal(t, 2, s.TotalMembers)
	assert.Equal(t, 2, s.ActiveMembers)
	assert.Equal(t, 1, s.CompletedProjects)
	assert.Equal(t, 1, s.ApprovedLeaves)
	assert.False(t, s.GeneratedAt.IsZero())
}
