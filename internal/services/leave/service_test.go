package leave

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/crewdesk/internal/models"
	"github.com/thenoetrevino/crewdesk/internal/testutil"
)

func TestLeaveService(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	svc := NewService(repo.Leaves, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.NewLeave{UserID: "u1", Reason: "x", LeaveType: "gardening"})
	assert.ErrorIs(t, err, ErrInvalidLeaveType)

	_, err = svc.Create(ctx, models.NewLeave{UserID: "u1", LeaveType: models.LeaveTypePaid})
	assert.ErrorIs(t, err, ErrEmptyReason)

	_, err = svc.Create(ctx, models.NewLeave{Reason: "x", LeaveType: models.LeaveTypePaid})
	assert.ErrorIs(t, err, ErrEmptyUserID)

	l, err := svc.Create(ctx, models.NewLeave{
		UserID:    "u1",
		Reason:    "wedding",
		LeaveType: models.LeaveTypePaid,
		FromDate:  models.MustParseDate("2025-07-01"),
		ToDate:    models.MustParseDate("2025-07-05"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusPending, l.Status)

	rejected := models.LeaveStatusRejected
	updated, err := svc.Update(ctx, l.ID, models.LeavePatch{Status: &rejected, Notes: strPtr("overlaps release")})
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusRejected, updated.Status)
	assert.Equal(t, "2025-07-05", updated.ToDate.String())

	bogus := models.LeaveStatus("maybe")
	_, err = svc.Update(ctx, l.ID, models.LeavePatch{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	require.NoError(t, svc.Delete(ctx, l.ID))
	assert.True(t, models.IsNotFound(svc.Delete(ctx, l.ID)))
}

func strPtr(s string) *string { return &s }
