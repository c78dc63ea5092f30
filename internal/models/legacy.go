package models

import "time"

// LegacyTask is a row of the legacy "task" table served by the /api proxy.
// It is unrelated to the tasks collection.
type LegacyTask struct {
	ID           int64   `json:"id"`
	Title        *string `json:"title"`
	Status       *string `json:"status"`
	DueDate      *string `json:"due_date"`
	Priority     *string `json:"priority"`
	AssignedTo   *string `json:"assigned_to"`
	Description  *string `json:"description"`
	AssignedDate *string `json:"assigned_date"`
	ProjectName  *string `json:"project_name"`
}

// LegacyFinance is a row of the legacy "finance" table
type LegacyFinance struct {
	ID                     int64    `json:"id"`
	Description            *string  `json:"description"`
	Amount                 *float64 `json:"amount"`
	Type                   *string  `json:"type"`
	Date                   *string  `json:"date"`
	ProjectName            *string  `json:"project_name"`
	DueDate                *string  `json:"due_date"`
	ContactPerson          *string  `json:"contact_person"`
	ContactPersonContactNo *string  `json:"contact_person_contact_no"`
}

// LegacyUser is a row of the legacy "users" table
type LegacyUser struct {
	ID        int64      `json:"id"`
	Name      *string    `json:"name"`
	Email     *string    `json:"email"`
	Mobile    *string    `json:"mobile"`
	Address   *string    `json:"address"`
	CreatedAt *time.Time `json:"created_at"`
}
