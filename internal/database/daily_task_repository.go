package database

import (
	"context"

	"github.com/thenoetrevino/crewdesk/internal/models"
)

// DailyTaskRepo handles all daily-task-related database operations
type DailyTaskRepo struct {
	table[models.DailyTask, models.NewDailyTask, models.DailyTaskPatch]
}

var dailyTaskColumns = []string{
	"id", "user_id", "created_by", "task_name", "description", "task_date", "status",
	"priority", "tags", "attachments", "completed_at", "is_active", "project_id",
	"created_at", "updated_at",
}

// NewDailyTaskRepo binds the daily_tasks collection to db
func NewDailyTaskRepo(db *DB) *DailyTaskRepo {
	return &DailyTaskRepo{table[models.DailyTask, models.NewDailyTask, models.DailyTaskPatch]{
		db: db,
		spec: tableSpec[models.DailyTask, models.NewDailyTask, models.DailyTaskPatch]{
			name:    models.CollectionDailyTasks,
			columns: dailyTaskColumns,
			orderBy: "task_date DESC, created_at DESC",
			scan:    scanDailyTask,
			insert:  dailyTaskInsert,
			patch:   dailyTaskPatch,
		},
	}}
}

// GetByDate returns the entries for one calendar day, newest first
func (r *DailyTaskRepo) GetByDate(ctx context.Context, date models.Date) ([]*models.DailyTask, error) {
	return r.query(ctx, "task_date = ?", "created_at DESC", date)
}

func scanDailyTask(row rowScanner) (*models.DailyTask, error) {
	t := &models.DailyTask{}
	err := row.Scan(
		&t.ID, &t.UserID, &t.CreatedBy, &t.TaskName, &t.Description, &t.TaskDate, &t.Status,
		&t.Priority, stringList{&t.Tags}, rawJSON{&t.Attachments}, nullTimestamp{&t.CompletedAt},
		&t.IsActive, &t.ProjectID, timestamp{&t.CreatedAt}, timestamp{&t.UpdatedAt},
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func dailyTaskInsert(d Dialect, in models.NewDailyTask) (columnSet, error) {
	var set columnSet
	tags, err := encodeList(in.Tags)
	if err != nil {
		return set, err
	}
	attachments, err := encodeRaw(in.Attachments)
	if err != nil {
		return set, err
	}
	status := in.Status
	if status == "" {
		status = models.DailyTaskStatusPending
	}
	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	set.add("user_id", in.UserID)
	set.add("created_by", in.CreatedBy)
	set.add("task_name", in.TaskName)
	set.add("description", in.Description)
	set.add("task_date", in.TaskDate)
	set.add("status", string(status))
	set.add("priority", string(priority))
	set.add("tags", tags)
	set.add("attachments", attachments)
	set.add("completed_at", d.NullTimestamp(in.CompletedAt))
	set.add("is_active", active)
	set.add("project_id", in.ProjectID)
	return set, nil
}

func dailyTaskPatch(d Dialect, p models.DailyTaskPatch) (columnSet, error) {
	var set columnSet
	if p.UserID != nil {
		set.add("user_id", *p.UserID)
	}
	if p.CreatedBy != nil {
		set.add("created_by", *p.CreatedBy)
	}
	if p.TaskName != nil {
		set.add("task_name", *p.TaskName)
	}
	if p.Description != nil {
		set.add("description", *p.Description)
	}
	if p.TaskDate != nil {
		set.add("task_date", *p.TaskDate)
	}
	if p.Status != nil {
		set.add("status", string(*p.Status))
	}
	if p.Priority != nil {
		set.add("priority", string(*p.Priority))
	}
	if p.Tags != nil {
		tags, err := encodeList(*p.Tags)
		if err != nil {
			return set, err
		}
		set.add("tags", tags)
	}
	if p.Attachments != nil {
		attachments, err := encodeRaw(*p.Attachments)
		if err != nil {
			return set, err
		}
		set.add("attachments", attachments)
	}
	if p.CompletedAt != nil {
		set.add("completed_at", d.Timestamp(*p.CompletedAt))
	}
	if p.IsActive != nil {
		set.add("is_active", *p.IsActive)
	}
	if p.ProjectID != nil {
		set.add("project_id", *p.ProjectID)
	}
	return set, nil
}
