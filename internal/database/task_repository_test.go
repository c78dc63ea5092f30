package database

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/crewdesk/internal/models"
	"modernc.org/sqlite"
)

// ============================================================================
// ORDERING
// ============================================================================

func TestTaskGetAll_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)
	ctx := context.Background()

	empty, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	var ids []string
	for _, name := range []string{"first", "second", "third"} {
		task, err := repo.Create(ctx, newTestTask("u1", name))
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}

	tasks, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, ids[2], tasks[0].ID)
	assert.Equal(t, ids[1], tasks[1].ID)
	assert.Equal(t, ids[0], tasks[2].ID)

	newest, err := repo.Create(ctx, newTestTask("u1", "fourth"))
	require.NoError(t, err)
	tasks, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, tasks[0].ID)
}

func TestTaskGetAll_StableWithoutWrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := repo.Create(ctx, newTestTask("u1", name))
		require.NoError(t, err)
	}

	first, err := repo.GetAll(ctx)
	require.NoError(t, err)
	second, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// ============================================================================
// CREATE / GET
// ============================================================================

func TestTaskCreate_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)
	ctx := context.Background()

	input := models.NewTask{
		UserID:         "user-1",
		CreatedBy:      "admin-1",
		TaskName:       "Prepare invoice",
		Description:    strPtr("for March"),
		DueDate:        models.MustParseDate("2025-03-31"),
		Priority:       models.PriorityHigh,
		Status:         models.TaskStatusInProgress,
		EstimatedHours: 4.5,
		Tags:           []string{"finance", "monthly"},
		Attachments:    json.RawMessage(`[{"name":"invoice.pdf"}]`),
		ProjectID:      strPtr("proj-1"),
		Progress:       40,
	}

	created, err := repo.Create(ctx, input)
	require.NoError(t, err)

	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err, "id should be a uuid")
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Equal(t, input.TaskName, created.TaskName)
	assert.Equal(t, "for March", *created.Description)
	assert.Equal(t, "2025-03-31", created.DueDate.String())
	assert.Equal(t, models.PriorityHigh, created.Priority)
	assert.Equal(t, models.TaskStatusInProgress, created.Status)
	assert.Equal(t, 4.5, created.EstimatedHours)
	assert.Equal(t, []string{"finance", "monthly"}, created.Tags)
	assert.JSONEq(t, `[{"name":"invoice.pdf"}]`, string(created.Attachments))
	assert.Equal(t, 40, created.Progress)
	assert.Nil(t, created.CompletedAt)
	assert.Nil(t, created.AssignedTo)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestTaskCreate_Defaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)

	created, err := repo.Create(context.Background(), newTestTask("u1", "defaults"))
	require.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, created.Priority)
	assert.Equal(t, models.TaskStatusPending, created.Status)
	assert.Equal(t, []string{}, created.Tags)
	assert.JSONEq(t, `[]`, string(created.Attachments))
}

func TestTaskCreate_ConstraintRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)

	input := newTestTask("u1", "bad status")
	input.Status = "archived"
	_, err := repo.Create(context.Background(), input)

	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve), "got %v", err)
	assert.True(t, ve.FromBackend())

	var sqliteErr *sqlite.Error
	assert.True(t, errors.As(err, &sqliteErr), "driver error should stay reachable")
}

func TestTaskGetByID_Missing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = repo.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// ============================================================================
// UPDATE
// ============================================================================

func TestTaskUpdate_OnlyPatchedFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestTask("u1", "original"))
	require.NoError(t, err)

	status := models.TaskStatusCompleted
	updated, err := repo.Update(ctx, created.ID, models.TaskPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.TaskStatusCompleted, updated.Status)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	// everything else is untouched
	expected := *created
	expected.Status = models.TaskStatusCompleted
	expected.UpdatedAt = updated.UpdatedAt
	assert.Equal(t, &expected, updated)
}

func TestTaskUpdate_Missing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)

	name := "x"
	_, err := repo.Update(context.Background(), uuid.NewString(), models.TaskPatch{TaskName: &name})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestTaskUpdate_TagsAndCompletion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestTask("u1", "tagged"))
	require.NoError(t, err)

	tags := []string{"urgent"}
	done := created.CreatedAt.Add(90 * time.Minute)
	updated, err := repo.Update(ctx, created.ID, models.TaskPatch{Tags: &tags, CompletedAt: &done})
	require.NoError(t, err)
	assert.Equal(t, []string{"urgent"}, updated.Tags)
	require.NotNil(t, updated.CompletedAt)
	assert.True(t, done.Equal(*updated.CompletedAt))
}

// ============================================================================
// DELETE
// ============================================================================

func TestTaskDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestTask("u1", "doomed"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// second delete of the same id is a miss
	err = repo.Delete(ctx, created.ID)
	var nf *models.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, models.CollectionTasks, nf.Collection)
	assert.Equal(t, created.ID, nf.ID)
}
