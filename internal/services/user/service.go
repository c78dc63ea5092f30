// Package user serves the three people collections and their unified view
package user

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/crewdesk/internal/events"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// Service defines the unified users read
type Service interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
}

// memberLister and staffLister are the reads the unified view needs
type memberLister interface {
	GetAllByName(ctx context.Context) ([]*models.Member, error)
}

type staffLister interface {
	GetAllByName(ctx context.Context) ([]*models.Staff, error)
}

type service struct {
	members         memberLister
	admins          staffLister
	projectManagers staffLister
}

// NewService creates the unified users service
func NewService(members memberLister, admins, projectManagers staffLister) Service {
	return &service{members: members, admins: admins, projectManagers: projectManagers}
}

// GetAllUsers reads the three collections concurrently and concatenates them
// as members, then admins, then project managers. Any failure fails the call.
func (s *service) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	var members []*models.Member
	var admins, pms []*models.Staff

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = s.members.GetAllByName(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		admins, err = s.admins.GetAllByName(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pms, err = s.projectManagers.GetAllByName(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	users := make([]*models.User, 0, len(members)+len(admins)+len(pms))
	for _, m := range members {
		users = append(users, models.ToUser(m))
	}
	for _, a := range admins {
		users = append(users, models.ToUser(a))
	}
	for _, p := range pms {
		users = append(users, models.ToUser(p))
	}
	return users, nil
}

// ============================================================================
// MEMBERS
// ============================================================================

// MemberService defines member CRUD
type MemberService interface {
	GetAll(ctx context.Context) ([]*models.Member, error)
	GetByID(ctx context.Context, id string) (*models.Member, error)
	Create(ctx context.Context, req models.NewMember) (*models.Member, error)
	Update(ctx context.Context, id string, req models.MemberPatch) (*models.Member, error)
	Delete(ctx context.Context, id string) error
}

type memberRepository interface {
	GetAll(ctx context.Context) ([]*models.Member, error)
	GetByID(ctx context.Context, id string) (*models.Member, error)
	Create(ctx context.Context, input models.NewMember) (*models.Member, error)
	Update(ctx context.Context, id string, patch models.MemberPatch) (*models.Member, error)
	Delete(ctx context.Context, id string) error
}

type memberService struct {
	repo        memberRepository
	eventClient events.EventPublisher
}

// NewMemberService creates a new member service
func NewMemberService(repo memberRepository, eventClient events.EventPublisher) MemberService {
	return &memberService{repo: repo, eventClient: eventClient}
}

func (s *memberService) GetAll(ctx context.Context) ([]*models.Member, error) {
	return s.repo.GetAll(ctx)
}

func (s *memberService) GetByID(ctx context.Context, id string) (*models.Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *memberService) Create(ctx context.Context, req models.NewMember) (*models.Member, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validatePerson(req.Name, req.Email); err != nil {
		return nil, err
	}
	if req.Role != "" && !req.Role.Valid() {
		return nil, models.Invalid("role", ErrInvalidRole)
	}

	m, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordCreated, models.CollectionMembers, m.ID))
	return m, nil
}

func (s *memberService) Update(ctx context.Context, id string, req models.MemberPatch) (*models.Member, error) {
	if err := validatePersonPatch(req.Name, req.Email); err != nil {
		return nil, err
	}
	if req.Role != nil && !req.Role.Valid() {
		return nil, models.Invalid("role", ErrInvalidRole)
	}

	m, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordUpdated, models.CollectionMembers, m.ID))
	return m, nil
}

func (s *memberService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordDeleted, models.CollectionMembers, id))
	return nil
}

// ============================================================================
// ADMINS AND PROJECT MANAGERS
// ============================================================================

// StaffService defines admin or project manager CRUD
type StaffService interface {
	Kind() models.UserKind
	GetAll(ctx context.Context) ([]*models.Staff, error)
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	Create(ctx context.Context, req models.NewStaff) (*models.Staff, error)
	Update(ctx context.Context, id string, req models.StaffPatch) (*models.Staff, error)
	Delete(ctx context.Context, id string) error
}

type staffRepository interface {
	Kind() models.UserKind
	GetAll(ctx context.Context) ([]*models.Staff, error)
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	Create(ctx context.Context, input models.NewStaff) (*models.Staff, error)
	Update(ctx context.Context, id string, patch models.StaffPatch) (*models.Staff, error)
	Delete(ctx context.Context, id string) error
}

type staffService struct {
	repo        staffRepository
	eventClient events.EventPublisher
}

// NewStaffService creates a service over the admins or project_managers repo
func NewStaffService(repo staffRepository, eventClient events.EventPublisher) StaffService {
	return &staffService{repo: repo, eventClient: eventClient}
}

func (s *staffService) Kind() models.UserKind {
	return s.repo.Kind()
}

func (s *staffService) collection() string {
	if s.repo.Kind() == models.UserKindAdmin {
		return models.CollectionAdmins
	}
	return models.CollectionProjectManagers
}

func (s *staffService) GetAll(ctx context.Context) ([]*models.Staff, error) {
	return s.repo.GetAll(ctx)
}

func (s *staffService) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *staffService) Create(ctx context.Context, req models.NewStaff) (*models.Staff, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validatePerson(req.Name, req.Email); err != nil {
		return nil, err
	}

	st, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", s.repo.Kind(), err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordCreated, s.collection(), st.ID))
	return st, nil
}

func (s *staffService) Update(ctx context.Context, id string, req models.StaffPatch) (*models.Staff, error) {
	if err := validatePersonPatch(req.Name, req.Email); err != nil {
		return nil, err
	}

	st, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", s.repo.Kind(), err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordUpdated, s.collection(), st.ID))
	return st, nil
}

func (s *staffService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.repo.Kind(), err)
	}
	events.Publish(s.eventClient, events.RecordEvent(events.EventRecordDeleted, s.collection(), id))
	return nil
}

// ============================================================================
// VALIDATION
// ============================================================================

func validatePerson(name, email string) error {
	if name == "" {
		return models.Invalid("name", ErrEmptyName)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return models.Invalid("email", ErrInvalidEmail)
	}
	return nil
}

func validatePersonPatch(name, email *string) error {
	if name != nil && strings.TrimSpace(*name) == "" {
		return models.Invalid("name", ErrEmptyName)
	}
	if email != nil {
		if _, err := mail.ParseAddress(*email); err != nil {
			return models.Invalid("email", ErrInvalidEmail)
		}
	}
	return nil
}
