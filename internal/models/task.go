package models

import (
	"encoding/json"
	"time"
)

// Task is one row of the tasks collection. AssignedTo is derived from the
// members collection when tasks are listed and is never persisted.
type Task struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	CreatedBy      string          `json:"created_by"`
	TaskName       string          `json:"task_name"`
	Description    *string         `json:"description"`
	DueDate        Date            `json:"due_date"`
	CompletedAt    *time.Time      `json:"completed_at"`
	Priority       Priority        `json:"priority"`
	Status         TaskStatus      `json:"status"`
	EstimatedHours float64         `json:"estimated_hours"`
	ActualHours    float64         `json:"actual_hours"`
	Tags           []string        `json:"tags"`
	Attachments    json.RawMessage `json:"attachments"`
	ProjectID      *string         `json:"project_id"`
	Progress       int             `json:"progress"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	AssignedTo     *string         `json:"assigned_to"`
}

// GetID is used by the CLI quiet output mode
func (t *Task) GetID() string { return t.ID }

// NewTask carries the caller-supplied fields of a task insert
type NewTask struct {
	UserID         string          `json:"user_id"`
	CreatedBy      string          `json:"created_by"`
	TaskName       string          `json:"task_name"`
	Description    *string         `json:"description"`
	DueDate        Date            `json:"due_date"`
	CompletedAt    *time.Time      `json:"completed_at"`
	Priority       Priority        `json:"priority"`
	Status         TaskStatus      `json:"status"`
	EstimatedHours float64         `json:"estimated_hours"`
	ActualHours    float64         `json:"actual_hours"`
	Tags           []string        `json:"tags"`
	Attachments    json.RawMessage `json:"attachments"`
	ProjectID      *string         `json:"project_id"`
	Progress       int             `json:"progress"`
}

// TaskPatch names the fields an update replaces. Nil means unchanged.
type TaskPatch struct {
	UserID         *string          `json:"user_id"`
	CreatedBy      *string          `json:"created_by"`
	TaskName       *string          `json:"task_name"`
	Description    *string          `json:"description"`
	DueDate        *Date            `json:"due_date"`
	CompletedAt    *time.Time       `json:"completed_at"`
	Priority       *Priority        `json:"priority"`
	Status         *TaskStatus      `json:"status"`
	EstimatedHours *float64         `json:"estimated_hours"`
	ActualHours    *float64         `json:"actual_hours"`
	Tags           *[]string        `json:"tags"`
	Attachments    *json.RawMessage `json:"attachments"`
	ProjectID      *string          `json:"project_id"`
	Progress       *int             `json:"progress"`
}
