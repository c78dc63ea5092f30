package models

import (
	"encoding/json"
	"time"
)

// DailyTask is a row of the daily_tasks collection
type DailyTask struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	CreatedBy   string          `json:"created_by"`
	TaskName    string          `json:"task_name"`
	Description *string         `json:"description"`
	TaskDate    Date            `json:"task_date"`
	Status      DailyTaskStatus `json:"status"`
	Priority    Priority        `json:"priority"`
	Tags        []string        `json:"tags"`
	Attachments json.RawMessage `json:"attachments"`
	CompletedAt *time.Time      `json:"completed_at"`
	IsActive    bool            `json:"is_active"`
	ProjectID   *string         `json:"project_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (d *DailyTask) GetID() string { return d.ID }

// NewDailyTask carries the caller-supplied fields of a daily task insert
type NewDailyTask struct {
	UserID      string          `json:"user_id"`
	CreatedBy   string          `json:"created_by"`
	TaskName    string          `json:"task_name"`
	Description *string         `json:"description"`
	TaskDate    Date            `json:"task_date"`
	Status      DailyTaskStatus `json:"status"`
	Priority    Priority        `json:"priority"`
	Tags        []string        `json:"tags"`
	Attachments json.RawMessage `json:"attachments"`
	CompletedAt *time.Time      `json:"completed_at"`
	IsActive    *bool           `json:"is_active"`
	ProjectID   *string         `json:"project_id"`
}

// DailyTaskPatch names the daily task fields an update replaces
type DailyTaskPatch struct {
	UserID      *string          `json:"user_id"`
	CreatedBy   *string          `json:"created_by"`
	TaskName    *string          `json:"task_name"`
	Description *string          `json:"description"`
	TaskDate    *Date            `json:"task_date"`
	Status      *DailyTaskStatus `json:"status"`
	Priority    *Priority        `json:"priority"`
	Tags        *[]string        `json:"tags"`
	Attachments *json.RawMessage `json:"attachments"`
	CompletedAt *time.Time       `json:"completed_at"`
	IsActive    *bool            `json:"is_active"`
	ProjectID   *string          `json:"project_id"`
}
