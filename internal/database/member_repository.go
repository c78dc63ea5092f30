package database

import (
	"context"

	"github.com/thenoetrevino/crewdesk/internal/models"
)

// MemberRepo handles all member-related database operations
type MemberRepo struct {
	table[models.Member, models.NewMember, models.MemberPatch]
}

var memberColumns = []string{
	"id", "email", "name", "password_hash", "avatar_url", "phone", "department",
	"hire_date", "role", "is_active", "user_id", "created_at", "updated_at",
}

// NewMemberRepo binds the members collection to db
func NewMemberRepo(db *DB) *MemberRepo {
	return &MemberRepo{table[models.Member, models.NewMember, models.MemberPatch]{
		db: db,
		spec: tableSpec[models.Member, models.NewMember, models.MemberPatch]{
			name:    models.CollectionMembers,
			columns: memberColumns,
			orderBy: "created_at DESC",
			scan:    scanMember,
			insert:  memberInsert,
			patch:   memberPatch,
		},
	}}
}

// GetAllByName lists members alphabetically, used for the unified users view
func (r *MemberRepo) GetAllByName(ctx context.Context) ([]*models.Member, error) {
	return r.query(ctx, "", "name ASC, created_at DESC")
}

func scanMember(row rowScanner) (*models.Member, error) {
	m := &models.Member{}
	err := row.Scan(
		&m.ID, &m.Email, &m.Name, &m.PasswordHash, &m.AvatarURL, &m.Phone, &m.Department,
		&m.HireDate, &m.Role, &m.IsActive, &m.UserID,
		timestamp{&m.CreatedAt}, timestamp{&m.UpdatedAt},
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func memberInsert(_ Dialect, in models.NewMember) (columnSet, error) {
	var set columnSet
	role := in.Role
	if role == "" {
		role = models.UserKindMember
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	set.add("email", in.Email)
	set.add("name", in.Name)
	set.add("password_hash", in.PasswordHash)
	set.add("avatar_url", in.AvatarURL)
	set.add("phone", in.Phone)
	set.add("department", in.Department)
	set.add("hire_date", in.HireDate)
	set.add("role", string(role))
	set.add("is_active", active)
	set.add("user_id", in.UserID)
	return set, nil
}

func memberPatch(_ Dialect, p models.MemberPatch) (columnSet, error) {
	var set columnSet
	if p.Email != nil {
		set.add("email", *p.Email)
	}
	if p.Name != nil {
		set.add("name", *p.Name)
	}
	if p.PasswordHash != nil {
		set.add("password_hash", *p.PasswordHash)
	}
	if p.AvatarURL != nil {
		set.add("avatar_url", *p.AvatarURL)
	}
	if p.Phone != nil {
		set.add("phone", *p.Phone)
	}
	if p.Department != nil {
		set.add("department", *p.Department)
	}
	if p.HireDate != nil {
		set.add("hire_date", *p.HireDate)
	}
	if p.Role != nil {
		set.add("role", string(*p.Role))
	}
	if p.IsActive != nil {
		set.add("is_active", *p.IsActive)
	}
	if p.UserID != nil {
		set.add("user_id", *p.UserID)
	}
	return set, nil
}
