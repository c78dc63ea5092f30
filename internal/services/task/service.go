package task

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/crewdesk/internal/events"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

const maxTaskNameLength = 255

// Service defines all task-related business operations
type Service interface {
	// Read operations, both joined with member names
	GetAll(ctx context.Context) ([]*models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)

	// Write operations
	Create(ctx context.Context, req models.NewTask) (*models.Task, error)
	Update(ctx context.Context, id string, req models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, id string) error
}

// repository defines the task data access the service needs.
// This interface is private to the service layer
type repository interface {
	GetAll(ctx context.Context) ([]*models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Create(ctx context.Context, input models.NewTask) (*models.Task, error)
	Update(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, id string) error
}

// memberSource lists the members tasks are joined against
type memberSource interface {
	GetAll(ctx context.Context) ([]*models.Member, error)
}

// service implements Service interface
type service struct {
	repo        repository
	members     memberSource
	eventClient events.EventPublisher
}

// NewService creates a new task service
func NewService(repo repository, members memberSource, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		members:     members,
		eventClient: eventClient,
	}
}

// GetAll fetches tasks and members concurrently and joins them in memory.
// Either read failing fails the whole call.
func (s *service) GetAll(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	var members []*models.Member

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.repo.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		members, err = s.members.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return AttachAssignees(tasks, members), nil
}

// GetByID returns one task with its assignee filled in
func (s *service) GetByID(ctx context.Context, id string) (*models.Task, error) {
	var task *models.Task
	var members []*models.Member

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		task, err = s.repo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		members, err = s.members.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	AttachAssignees([]*models.Task{task}, members)
	return task, nil
}

// Create validates and stores a new task
func (s *service) Create(ctx context.Context, req models.NewTask) (*models.Task, error) {
	req.TaskName = strings.TrimSpace(req.TaskName)
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	task, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordCreated, models.CollectionTasks, task.ID))
	return task, nil
}

// Update validates the present fields and applies them
func (s *service) Update(ctx context.Context, id string, req models.TaskPatch) (*models.Task, error) {
	if req.TaskName != nil {
		trimmed := strings.TrimSpace(*req.TaskName)
		req.TaskName = &trimmed
	}
	if err := validatePatch(req); err != nil {
		return nil, err
	}

	task, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordUpdated, models.CollectionTasks, task.ID))
	return task, nil
}

// Delete removes a task
func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordDeleted, models.CollectionTasks, id))
	return nil
}

// ============================================================================
// VALIDATION
// ============================================================================

func validateName(name string) error {
	if name == "" {
		return models.Invalid("task_name", ErrEmptyTaskName)
	}
	if len(name) > maxTaskNameLength {
		return models.Invalid("task_name", ErrTaskNameTooLong)
	}
	return nil
}

func validateCreate(req models.NewTask) error {
	if err := validateName(req.TaskName); err != nil {
		return err
	}
	if strings.TrimSpace(req.UserID) == "" {
		return models.Invalid("user_id", ErrEmptyUserID)
	}
	if strings.TrimSpace(req.CreatedBy) == "" {
		return models.Invalid("created_by", ErrEmptyCreatedBy)
	}
	if req.DueDate.IsZero() {
		return models.Invalid("due_date", ErrMissingDueDate)
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return models.Invalid("priority", ErrInvalidPriority)
	}
	if req.Status != "" && !req.Status.Valid() {
		return models.Invalid("status", ErrInvalidStatus)
	}
	if req.EstimatedHours < 0 || req.ActualHours < 0 {
		return models.Invalid("hours", ErrInvalidHours)
	}
	if len(req.Attachments) > 0 && !json.Valid(req.Attachments) {
		return models.Invalid("attachments", ErrInvalidJSON)
	}
	return nil
}

func validatePatch(req models.TaskPatch) error {
	if req.TaskName != nil {
		if err := validateName(*req.TaskName); err != nil {
			return err
		}
	}
	if req.UserID != nil && strings.TrimSpace(*req.UserID) == "" {
		return models.Invalid("user_id", ErrEmptyUserID)
	}
	if req.CreatedBy != nil && strings.TrimSpace(*req.CreatedBy) == "" {
		return models.Invalid("created_by", ErrEmptyCreatedBy)
	}
	if req.DueDate != nil && req.DueDate.IsZero() {
		return models.Invalid("due_date", ErrMissingDueDate)
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return models.Invalid("priority", ErrInvalidPriority)
	}
	if req.Status != nil && !req.Status.Valid() {
		return models.Invalid("status", ErrInvalidStatus)
	}
	if (req.EstimatedHours != nil && *req.EstimatedHours < 0) || (req.ActualHours != nil && *req.ActualHours < 0) {
		return models.Invalid("hours", ErrInvalidHours)
	}
	if req.Attachments != nil && len(*req.Attachments) > 0 && !json.Valid(*req.Attachments) {
		return models.Invalid("attachments", ErrInvalidJSON)
	}
	return nil
}
