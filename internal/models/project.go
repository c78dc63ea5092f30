package models

import "time"

// Project is a row of the projects collection
type Project struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Description     *string       `json:"description"`
	ClientName      *string       `json:"client_name"`
	StartDate       Date          `json:"start_date"`
	ExpectedEndDate Date          `json:"expected_end_date"`
	Status          ProjectStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (p *Project) GetID() string { return p.ID }

// NewProject carries the caller-supplied fields of a project insert
type NewProject struct {
	Name            string        `json:"name"`
	Description     *string       `json:"description"`
	ClientName      *string       `json:"client_name"`
	StartDate       Date          `json:"start_date"`
	ExpectedEndDate Date          `json:"expected_end_date"`
	Status          ProjectStatus `json:"status"`
}

// ProjectPatch names the project fields an update replaces
type ProjectPatch struct {
	Name            *string        `json:"name"`
	Description     *string        `json:"description"`
	ClientName      *string        `json:"client_name"`
	StartDate       *Date          `json:"start_date"`
	ExpectedEndDate *Date          `json:"expected_end_date"`
	Status          *ProjectStatus `json:"status"`
}
