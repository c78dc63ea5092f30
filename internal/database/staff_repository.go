package database

import (
	"context"

	"github.com/thenoetrevino/crewdesk/internal/models"
)

// StaffRepo handles the admins and project_managers collections. The two
// share one shape; admins have no department column.
type StaffRepo struct {
	table[models.Staff, models.NewStaff, models.StaffPatch]
	kind models.UserKind
}

// NewAdminRepo binds the admins collection to db
func NewAdminRepo(db *DB) *StaffRepo {
	return newStaffRepo(db, models.CollectionAdmins, models.UserKindAdmin, false)
}

// NewProjectManagerRepo binds the project_managers collection to db
func NewProjectManagerRepo(db *DB) *StaffRepo {
	return newStaffRepo(db, models.CollectionProjectManagers, models.UserKindProjectManager, true)
}

func newStaffRepo(db *DB, name string, kind models.UserKind, hasDept bool) *StaffRepo {
	columns := []string{"id", "name", "email", "is_active", "created_at", "updated_at"}
	if hasDept {
		columns = []string{"id", "name", "email", "department", "is_active", "created_at", "updated_at"}
	}

	scan := func(row rowScanner) (*models.Staff, error) {
		s := &models.Staff{Role: kind}
		dest := []any{&s.ID, &s.Name, &s.Email}
		if hasDept {
			dest = append(dest, &s.Department)
		}
		dest = append(dest, &s.IsActive, timestamp{&s.CreatedAt}, timestamp{&s.UpdatedAt})
		if err := row.Scan(dest...); err != nil {
			return nil, err
		}
		return s, nil
	}

	insert := func(_ Dialect, in models.NewStaff) (columnSet, error) {
		var set columnSet
		active := true
		if in.IsActive != nil {
			active = *in.IsActive
		}
		set.add("name", in.Name)
		set.add("email", in.Email)
		if hasDept {
			set.add("department", in.Department)
		}
		set.add("is_active", active)
		return set, nil
	}

	patch := func(_ Dialect, p models.StaffPatch) (columnSet, error) {
		var set columnSet
		if p.Name != nil {
			set.add("name", *p.Name)
		}
		if p.Email != nil {
			set.add("email", *p.Email)
		}
		if p.Department != nil && hasDept {
			set.add("department", *p.Department)
		}
		if p.IsActive != nil {
			set.add("is_active", *p.IsActive)
		}
		return set, nil
	}

	return &StaffRepo{
		table: table[models.Staff, models.NewStaff, models.StaffPatch]{
			db: db,
			spec: tableSpec[models.Staff, models.NewStaff, models.StaffPatch]{
				name:    name,
				columns: columns,
				orderBy: "created_at DESC",
				scan:    scan,
				insert:  insert,
				patch:   patch,
			},
		},
		kind: kind,
	}
}

// Kind is the user kind every row of this collection carries
func (r *StaffRepo) Kind() models.UserKind {
	return r.kind
}

// GetAllByName lists rows alphabetically, used for the unified users view
func (r *StaffRepo) GetAllByName(ctx context.Context) ([]*models.Staff, error) {
	return r.query(ctx, "", "name ASC, created_at DESC")
}
