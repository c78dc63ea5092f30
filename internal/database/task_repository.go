package database

import (
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// TaskRepo handles all task-related database operations
type TaskRepo struct {
	table[models.Task, models.NewTask, models.TaskPatch]
}

var taskColumns = []string{
	"id", "user_id", "created_by", "task_name", "description", "due_date",
	"completed_at", "priority", "status", "estimated_hours", "actual_hours",
	"tags", "attachments", "project_id", "progress", "created_at", "updated_at",
}

// NewTaskRepo binds the tasks collection to db
func NewTaskRepo(db *DB) *TaskRepo {
	return &TaskRepo{table[models.Task, models.NewTask, models.TaskPatch]{
		db: db,
		spec: tableSpec[models.Task, models.NewTask, models.TaskPatch]{
			name:    models.CollectionTasks,
			columns: taskColumns,
			orderBy: "created_at DESC",
			scan:    scanTask,
			insert:  taskInsert,
			patch:   taskPatch,
		},
	}}
}

func scanTask(row rowScanner) (*models.Task, error) {
	t := &models.Task{}
	err := row.Scan(
		&t.ID, &t.UserID, &t.CreatedBy, &t.TaskName, &t.Description, &t.DueDate,
		nullTimestamp{&t.CompletedAt}, &t.Priority, &t.Status, &t.EstimatedHours, &t.ActualHours,
		stringList{&t.Tags}, rawJSON{&t.Attachments}, &t.ProjectID, &t.Progress,
		timestamp{&t.CreatedAt}, timestamp{&t.UpdatedAt},
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func taskInsert(d Dialect, in models.NewTask) (columnSet, error) {
	var set columnSet
	tags, err := encodeList(in.Tags)
	if err != nil {
		return set, err
	}
	attachments, err := encodeRaw(in.Attachments)
	if err != nil {
		return set, err
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	status := in.Status
	if status == "" {
		status = models.TaskStatusPending
	}

	set.add("user_id", in.UserID)
	set.add("created_by", in.CreatedBy)
	set.add("task_name", in.TaskName)
	set.add("description", in.Description)
	set.add("due_date", in.DueDate)
	set.add("completed_at", d.NullTimestamp(in.CompletedAt))
	set.add("priority", string(priority))
	set.add("status", string(status))
	set.add("estimated_hours", in.EstimatedHours)
	set.add("actual_hours", in.ActualHours)
	set.add("tags", tags)
	set.add("attachments", attachments)
	set.add("project_id", in.ProjectID)
	set.add("progress", in.Progress)
	return set, nil
}

func taskPatch(d Dialect, p models.TaskPatch) (columnSet, error) {
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
	if p.DueDate != nil {
		set.add("due_date", *p.DueDate)
	}
	if p.CompletedAt != nil {
		set.add("completed_at", d.Timestamp(*p.CompletedAt))
	}
	if p.Priority != nil {
		set.add("priority", string(*p.Priority))
	}
	if p.Status != nil {
		set.add("status", string(*p.Status))
	}
	if p.EstimatedHours != nil {
		set.add("estimated_hours", *p.EstimatedHours)
	}
	if p.ActualHours != nil {
		set.add("actual_hours", *p.ActualHours)
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
	if p.ProjectID != nil {
		set.add("project_id", *p.ProjectID)
	}
	if p.Progress != nil {
		set.add("progress", *p.Progress)
	}
	return set, nil
}
