package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/crewdesk/internal/models"

	_ "modernc.org/sqlite"
)

// ============================================================================
// Local Test Helpers (to avoid import cycle with testutil)
// ============================================================================

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := Wrap(sqlDB, DialectSQLite)
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func newTestTask(userID, name string) models.NewTask {
	return models.NewTask{
		UserID:    userID,
		CreatedBy: userID,
		TaskName:  name,
		DueDate:   models.MustParseDate("2025-03-14"),
	}
}

func strPtr(s string) *string { return &s }
