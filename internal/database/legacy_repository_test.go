package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

func TestLegacyTaskTable(t *testing.T) {
	db := setupTestDB(t)
	tbl := NewLegacyTaskTable(db)
	ctx := context.Background()

	first, err := tbl.Create(ctx, map[string]any{"title": "Call client", "status": "not_started", "unknown": "dropped"})
	require.NoError(t, err)
	second, err := tbl.Create(ctx, map[string]any{"title": "Send quote", "priority": "high"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	list, err := tbl.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "highest id first")

	updated, err := tbl.Update(ctx, first.ID, map[string]any{"status": "done"})
	require.NoError(t, err)
	assert.Equal(t, "done", *updated.Status)
	assert.Equal(t, "Call client", *updated.Title, "absent fields are kept")

	_, err = tbl.Update(ctx, 999, map[string]any{"status": "done"})
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, tbl.Delete(ctx, first.ID))
	require.NoError(t, tbl.Delete(ctx, first.ID), "deleting a missing legacy row succeeds")
	require.NoError(t, tbl.Ping(ctx))
}

func TestLegacyFinanceAndUsers(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	fin, err := NewLegacyFinanceTable(db).Create(ctx, map[string]any{"description": "Hosting", "amount": 49.5, "type": "expense"})
	require.NoError(t, err)
	require.NotNil(t, fin.Amount)
	assert.Equal(t, 49.5, *fin.Amount)

	user, err := NewLegacyUserTable(db).Create(ctx, map[string]any{"name": "Omar", "email": "omar@example.com"})
	require.NoError(t, err)
	require.NotNil(t, user.CreatedAt)
	assert.Nil(t, user.Mobile)
}
