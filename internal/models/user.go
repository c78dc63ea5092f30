package models

import "time"

// Person is the field set shared by members, admins and project managers
type Person interface {
	PersonID() string
	DisplayName() string
	ContactEmail() string
	Dept() *string
	Active() bool
	Kind() UserKind
}

// User is the unified, read-only view over all three people collections
type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Department *string  `json:"department"`
	IsActive   bool     `json:"is_active"`
	Type       UserKind `json:"type"`
}

// ToUser projects any Person onto the unified view
func ToUser(p Person) *User {
	return &User{
		ID:         p.PersonID(),
		Name:       p.DisplayName(),
		Email:      p.ContactEmail(),
		Department: p.Dept(),
		IsActive:   p.Active(),
		Type:       p.Kind(),
	}
}

func (u *User) GetID() string { return u.ID }

// Member is a row of the members collection
type Member struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	AvatarURL    *string   `json:"avatar_url"`
	Phone        *string   `json:"phone"`
	Department   *string   `json:"department"`
	HireDate     Date      `json:"hire_date"`
	Role         UserKind  `json:"role"`
	IsActive     bool      `json:"is_active"`
	UserID       *string   `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (m *Member) GetID() string        { return m.ID }
func (m *Member) PersonID() string     { return m.ID }
func (m *Member) DisplayName() string  { return m.Name }
func (m *Member) ContactEmail() string { return m.Email }
func (m *Member) Dept() *string        { return m.Department }
func (m *Member) Active() bool         { return m.IsActive }
func (m *Member) Kind() UserKind       { return UserKindMember }

// NewMember carries the caller-supplied fields of a member insert
type NewMember struct {
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	PasswordHash string   `json:"password_hash"`
	AvatarURL    *string  `json:"avatar_url"`
	Phone        *string  `json:"phone"`
	Department   *string  `json:"department"`
	HireDate     Date     `json:"hire_date"`
	Role         UserKind `json:"role"`
	IsActive     *bool    `json:"is_active"`
	UserID       *string  `json:"user_id"`
}

// MemberPatch names the member fields an update replaces
type MemberPatch struct {
	Email        *string   `json:"email"`
	Name         *string   `json:"name"`
	PasswordHash *string   `json:"password_hash"`
	AvatarURL    *string   `json:"avatar_url"`
	Phone        *string   `json:"phone"`
	Department   *string   `json:"department"`
	HireDate     *Date     `json:"hire_date"`
	Role         *UserKind `json:"role"`
	IsActive     *bool     `json:"is_active"`
	UserID       *string   `json:"user_id"`
}

// Staff is a row of the admins or project_managers collection. Admin rows
// never carry a department.
type Staff struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department *string   `json:"department,omitempty"`
	IsActive   bool      `json:"is_active"`
	Role       UserKind  `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (s *Staff) GetID() string        { return s.ID }
func (s *Staff) PersonID() string     { return s.ID }
func (s *Staff) DisplayName() string  { return s.Name }
func (s *Staff) ContactEmail() string { return s.Email }
func (s *Staff) Dept() *string        { return s.Department }
func (s *Staff) Active() bool         { return s.IsActive }
func (s *Staff) Kind() UserKind       { return s.Role }

// NewStaff carries the caller-supplied fields of an admin or project manager insert
type NewStaff struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department"`
	IsActive   *bool   `json:"is_active"`
}

// StaffPatch names the staff fields an update replaces
type StaffPatch struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	IsActive   *bool   `json:"is_active"`
}

var (
	_ Person = (*Member)(nil)
	_ Person = (*Staff)(nil)
)
