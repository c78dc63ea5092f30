package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/thenoetrevino/crewdesk/internal/events"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

const maxNameLength = 255

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetAll(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)

	// Write operations
	Create(ctx context.Context, req models.NewProject) (*models.Project, error)
	Update(ctx context.Context, id string, req models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

// repository defines the data access methods needed by the project service
// This interface is private to the service layer
type repository interface {
	GetAll(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, input models.NewProject) (*models.Project, error)
	Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

// service implements Service interface
type service struct {
	repo        repository
	eventClient events.EventPublisher
}

// NewService creates a new project service
func NewService(repo repository, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// GetAll retrieves all projects, newest first
func (s *service) GetAll(ctx context.Context) ([]*models.Project, error) {
	return s.repo.GetAll(ctx)
}

// GetByID retrieves a project by its ID
func (s *service) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores a new project
func (s *service) Create(ctx context.Context, req models.NewProject) (*models.Project, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if req.Status != "" && !req.Status.Valid() {
		return nil, models.Invalid("status", ErrInvalidStatus)
	}
	if err := validateRange(req.StartDate, req.ExpectedEndDate); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordCreated, models.CollectionProjects, p.ID))
	return p, nil
}

// Update applies the present fields of req
func (s *service) Update(ctx context.Context, id string, req models.ProjectPatch) (*models.Project, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if err := validateName(trimmed); err != nil {
			return nil, err
		}
		req.Name = &trimmed
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, models.Invalid("status", ErrInvalidStatus)
	}
	if req.StartDate != nil && req.ExpectedEndDate != nil {
		if err := validateRange(*req.StartDate, *req.ExpectedEndDate); err != nil {
			return nil, err
		}
	}

	p, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordUpdated, models.CollectionProjects, p.ID))
	return p, nil
}

// Delete removes a project. Tasks that reference it are left alone.
func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordDeleted, models.CollectionProjects, id))
	return nil
}

func validateName(name string) error {
	if name == "" {
		return models.Invalid("name", ErrEmptyName)
	}
	if len(name) > maxNameLength {
		return models.Invalid("name", ErrNameTooLong)
	}
	return nil
}

func validateRange(start, end models.Date) error {
	if !start.IsZero() && !end.IsZero() && end.Before(start.Time) {
		return models.Invalid("expected_end_date", ErrEndBeforeStart)
	}
	return nil
}
