// Package leave handles leave requests. The leave_date, from_date, to_date and
// end_date fields are stored as given; none of them is treated as canonical.
package leave

import (
	"context"
	"fmt"
	"strings"

	"github.com/thenoetrevino/crewdesk/internal/events"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// Service defines all leave-related business operations
type Service interface {
	GetAll(ctx context.Context) ([]*models.Leave, error)
	GetByID(ctx context.Context, id string) (*models.Leave, error)
	Create(ctx context.Context, req models.NewLeave) (*models.Leave, error)
	Update(ctx context.Context, id string, req models.LeavePatch) (*models.Leave, error)
	Delete(ctx context.Context, id string) error
}

type repository interface {
	GetAll(ctx context.Context) ([]*models.Leave, error)
	GetByID(ctx context.Context, id string) (*models.Leave, error)
	Create(ctx context.Context, input models.NewLeave) (*models.Leave, error)
	Update(ctx context.Context, id string, patch models.LeavePatch) (*models.Leave, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo        repository
	eventClient events.EventPublisher
}

// NewService creates a new leave service
func NewService(repo repository, eventClient events.EventPublisher) Service {
	return &service{repo: repo, eventClient: eventClient}
}

func (s *service) GetAll(ctx context.Context) ([]*models.Leave, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*models.Leave, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req models.NewLeave) (*models.Leave, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, models.Invalid("user_id", ErrEmptyUserID)
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, models.Invalid("reason", ErrEmptyReason)
	}
	if !req.LeaveType.Valid() {
		return nil, models.Invalid("leave_type", ErrInvalidLeaveType)
	}
	if req.Status != "" && !req.Status.Valid() {
		return nil, models.Invalid("status", ErrInvalidStatus)
	}

	l, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create leave: %w", err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordCreated, models.CollectionLeaves, l.ID))
	return l, nil
}

func (s *service) Update(ctx context.Context, id string, req models.LeavePatch) (*models.Leave, error) {
	if req.UserID != nil && strings.TrimSpace(*req.UserID) == "" {
		return nil, models.Invalid("user_id", ErrEmptyUserID)
	}
	if req.Reason != nil && strings.TrimSpace(*req.Reason) == "" {
		return nil, models.Invalid("reason", ErrEmptyReason)
	}
	if req.LeaveType != nil && !req.LeaveType.Valid() {
		return nil, models.Invalid("leave_type", ErrInvalidLeaveType)
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, models.Invalid("status", ErrInvalidStatus)
	}

	l, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update leave: %w", err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordUpdated, models.CollectionLeaves, l.ID))
	return l, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordDeleted, models.CollectionLeaves, id))
	return nil
}
