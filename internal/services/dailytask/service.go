// Package dailytask handles the per-day task log
package dailytask

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/crewdesk/internal/events"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// Service defines all daily-task business operations
type Service interface {
	GetAll(ctx context.Context) ([]*models.DailyTask, error)
	GetByDate(ctx context.Context, date models.Date) ([]*models.DailyTask, error)
	GetByID(ctx context.Context, id string) (*models.DailyTask, error)
	Create(ctx context.Context, req models.NewDailyTask) (*models.DailyTask, error)
	Update(ctx context.Context, id string, req models.DailyTaskPatch) (*models.DailyTask, error)
	Delete(ctx context.Context, id string) error
}

type repository interface {
	GetAll(ctx context.Context) ([]*models.DailyTask, error)
	GetByDate(ctx context.Context, date models.Date) ([]*models.DailyTask, error)
	GetByID(ctx context.Context, id string) (*models.DailyTask, error)
	Create(ctx context.Context, input models.NewDailyTask) (*models.DailyTask, error)
	Update(ctx context.Context, id string, patch models.DailyTaskPatch) (*models.DailyTask, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo        repository
	eventClient events.EventPublisher
	now         func() time.Time
}

// NewService creates a new daily task service
func NewService(repo repository, eventClient events.EventPublisher) Service {
	return &service{repo: repo, eventClient: eventClient, now: time.Now}
}

func (s *service) GetAll(ctx context.Context) ([]*models.DailyTask, error) {
	return s.repo.GetAll(ctx)
}

// GetByDate lists one day's entries. The zero Date means today.
func (s *service) GetByDate(ctx context.Context, date models.Date) ([]*models.DailyTask, error) {
	if date.IsZero() {
		date = models.NewDate(s.now())
	}
	return s.repo.GetByDate(ctx, date)
}

func (s *service) GetByID(ctx context.Context, id string) (*models.DailyTask, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new entry. A completed entry without completed_at is
// stamped with the current time.
func (s *service) Create(ctx context.Context, req models.NewDailyTask) (*models.DailyTask, error) {
	req.TaskName = strings.TrimSpace(req.TaskName)
	switch {
	case req.TaskName == "":
		return nil, models.Invalid("task_name", ErrEmptyTaskName)
	case strings.TrimSpace(req.UserID) == "":
		return nil, models.Invalid("user_id", ErrEmptyUserID)
	case strings.TrimSpace(req.CreatedBy) == "":
		return nil, models.Invalid("created_by", ErrEmptyCreatedBy)
	case req.TaskDate.IsZero():
		return nil, models.Invalid("task_date", ErrMissingTaskDate)
	case req.Status != "" && !req.Status.Valid():
		return nil, models.Invalid("status", ErrInvalidStatus)
	case req.Priority != "" && !req.Priority.Valid():
		return nil, models.Invalid("priority", ErrInvalidPriority)
	}
	if req.Status == models.DailyTaskStatusCompleted && req.CompletedAt == nil {
		now := s.now().UTC()
		req.CompletedAt = &now
	}

	d, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily task: %w", err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordCreated, models.CollectionDailyTasks, d.ID))
	return d, nil
}

// Update applies the present fields. Moving to completed stamps completed_at
// unless the caller supplied one.
func (s *service) Update(ctx context.Context, id string, req models.DailyTaskPatch) (*models.DailyTask, error) {
	if req.TaskName != nil {
		trimmed := strings.TrimSpace(*req.TaskName)
		if trimmed == "" {
			return nil, models.Invalid("task_name", ErrEmptyTaskName)
		}
		req.TaskName = &trimmed
	}
	switch {
	case req.UserID != nil && strings.TrimSpace(*req.UserID) == "":
		return nil, models.Invalid("user_id", ErrEmptyUserID)
	case req.CreatedBy != nil && strings.TrimSpace(*req.CreatedBy) == "":
		return nil, models.Invalid("created_by", ErrEmptyCreatedBy)
	case req.TaskDate != nil && req.TaskDate.IsZero():
		return nil, models.Invalid("task_date", ErrMissingTaskDate)
	case req.Status != nil && !req.Status.Valid():
		return nil, models.Invalid("status", ErrInvalidStatus)
	case req.Priority != nil && !req.Priority.Valid():
		return nil, models.Invalid("priority", ErrInvalidPriority)
	}
	if req.Status != nil && *req.Status == models.DailyTaskStatusCompleted && req.CompletedAt == nil {
		now := s.now().UTC()
		req.CompletedAt = &now
	}

	d, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update daily task: %w", err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordUpdated, models.CollectionDailyTasks, d.ID))
	return d, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete daily task: %w", err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordDeleted, models.CollectionDailyTasks, id))
	return nil
}
