package database

import (
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// ProjectRepo handles all project-related database operations
type ProjectRepo struct {
	table[models.Project, models.NewProject, models.ProjectPatch]
}

var projectColumns = []string{
	"id", "name", "description", "client_name", "start_date", "expected_end_date",
	"status", "created_at", "updated_at",
}

// NewProjectRepo binds the projects collection to db
func NewProjectRepo(db *DB) *ProjectRepo {
	return &ProjectRepo{table[models.Project, models.NewProject, models.ProjectPatch]{
		db: db,
		spec: tableSpec[models.Project, models.NewProject, models.ProjectPatch]{
			name:    models.CollectionProjects,
			columns: projectColumns,
			orderBy: "created_at DESC",
			scan:    scanProject,
			insert:  projectInsert,
			patch:   projectPatch,
		},
	}}
}

func scanProject(row rowScanner) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.ClientName, &p.StartDate, &p.ExpectedEndDate,
		&p.Status, timestamp{&p.CreatedAt}, timestamp{&p.UpdatedAt},
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func projectInsert(_ Dialect, in models.NewProject) (columnSet, error) {
	var set columnSet
	status := in.Status
	if status == "" {
		status = models.ProjectStatusActive
	}
	set.add("name", in.Name)
	set.add("description", in.Description)
	set.add("client_name", in.ClientName)
	set.add("start_date", in.StartDate)
	set.add("expected_end_date", in.ExpectedEndDate)
	set.add("status", string(status))
	return set, nil
}

func projectPatch(_ Dialect, p models.ProjectPatch) (columnSet, error) {
	var set columnSet
	if p.Name != nil {
		set.add("name", *p.Name)
	}
	if p.Description != nil {
		set.add("description", *p.Description)
	}
	if p.ClientName != nil {
		set.add("client_name", *p.ClientName)
	}
	if p.StartDate != nil {
		set.add("start_date", *p.StartDate)
	}
	if p.ExpectedEndDate != nil {
		set.add("expected_end_date", *p.ExpectedEndDate)
	}
	if p.Status != nil {
		set.add("status", string(*p.Status))
	}
	return set, nil
}
