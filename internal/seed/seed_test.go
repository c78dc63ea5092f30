package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/crewdesk/internal/app"
	"github.com/thenoetrevino/crewdesk/internal/models"
	"github.com/thenoetrevino/crewdesk/internal/testutil"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	a := app.New(testutil.SetupTestRepo(t))
	today := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

	res, err := Run(ctx, a, today)
	require.NoError(t, err)
	assert.Equal(t, &Result{Members: 3, Admins: 1, Managers: 1, Projects: 2, Tasks: 6, Leaves: 3, DailyTasks: 3}, res)

	st, err := a.StatsService.Collect(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, st.TotalTasks)
	assert.Equal(t, 1, st.CompletedTasks)
	assert.Equal(t, 2, st.PendingTasks)
	assert.Equal(t, 2, st.InProgressTasks)
	assert.Equal(t, 1, st.ApprovedLeaves)
	assert.Equal(t, 1, st.ActiveProjects)

	// every seeded task resolves to a member name
	tasks, err := a.TaskService.GetAll(ctx)
	require.NoError(t, err)
	for _, task := range tasks {
		assert.NotNil(t, task.AssignedTo, task.TaskName)
	}

	daily, err := a.DailyTaskService.GetByDate(ctx, models.NewDate(today))
	require.NoError(t, err)
	assert.Len(t, daily, 3)
}

func TestRunRefusesNonEmptyWorkspace(t *testing.T) {
	ctx := context.Background()
	repo := testutil.SetupTestRepo(t)
	testutil.CreateTestMember(t, repo, "Existing", "existing@example.com")

	res, err := Run(ctx, app.New(repo), time.Now())
	assert.ErrorIs(t, err, ErrNotEmpty)
	assert.Nil(t, res)
}
