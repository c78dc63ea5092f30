package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/crewdesk/internal/database"
	"github.com/thenoetrevino/crewdesk/internal/models"

	_ "modernc.org/sqlite"
)

// SetupTestDB creates a migrated in-memory sqlite database. It is closed when
// the test ends.
func SetupTestDB(t *testing.T) *database.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err, "failed to create test database")

	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := database.Wrap(sqlDB, database.DialectSQLite)
	require.NoError(t, database.Migrate(context.Background(), db), "failed to run migrations")
	return db
}

// SetupTestRepo is SetupTestDB plus the repository set over it
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t))
}

// ============================================================================
// SEED HELPERS
// ============================================================================

// CreateTestMember inserts an active member with the given name
func CreateTestMember(t *testing.T, repo *database.Repository, name, email string) *models.Member {
	t.Helper()
	m, err := repo.Members.Create(context.Background(), models.NewMember{
		Name:  name,
		Email: email,
		Role:  models.UserKindMember,
	})
	require.NoError(t, err, "failed to create test member")
	return m
}

// CreateTestStaff inserts an active admin or project manager
func CreateTestStaff(t *testing.T, repo *database.StaffRepo, name, email string) *models.Staff {
	t.Helper()
	s, err := repo.Create(context.Background(), models.NewStaff{Name: name, Email: email})
	require.NoError(t, err, "failed to create test staff")
	return s
}

// CreateTestTask inserts a task owned by userID with the given status
func CreateTestTask(t *testing.T, repo *database.Repository, userID, name string, status models.TaskStatus) *models.Task {
	t.Helper()
	task, err := repo.Tasks.Create(context.Background(), models.NewTask{
		UserID:    userID,
		CreatedBy: userID,
		TaskName:  name,
		DueDate:   models.MustParseDate("2025-01-31"),
		Status:    status,
	})
	require.NoError(t, err, "failed to create test task")
	return task
}

// CreateTestProject inserts a project with the given status
func CreateTestProject(t *testing.T, repo *database.Repository, name string, status models.ProjectStatus) *models.Project {
	t.Helper()
	p, err := repo.Projects.Create(context.Background(), models.NewProject{Name: name, Status: status})
	require.NoError(t, err, "failed to create test project")
	return p
}

// CreateTestLeave inserts a leave request with the given status
func CreateTestLeave(t *testing.T, repo *database.Repository, userID string, status models.LeaveStatus) *models.Leave {
	t.Helper()
	l, err := repo.Leaves.Create(context.Background(), models.NewLeave{
		UserID:    userID,
		LeaveType: models.LeaveTypeCasual,
		Reason:    "family event",
		FromDate:  models.MustParseDate("2025-02-03"),
		ToDate:    models.MustParseDate("2025-02-04"),
		Status:    status,
	})
	require.NoError(t, err, "failed to create test leave")
	return l
}
