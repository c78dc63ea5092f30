package task

import "errors"

// Task validation errors
var (
	ErrEmptyTaskName   = errors.New("task name cannot be empty")
	ErrTaskNameTooLong = errors.New("task name cannot exceed 255 characters")
	ErrEmptyUserID     = errors.New("task owner cannot be empty")
	ErrEmptyCreatedBy  = errors.New("task creator cannot be empty")
	ErrMissingDueDate  = errors.New("due date is required")
	ErrInvalidPriority = errors.New("priority must be one of low, medium, high, urgent")
	ErrInvalidStatus   = errors.New("status must be one of pending, in_progress, completed, blocked, cancelled")
	ErrInvalidHours    = errors.New("hours cannot be negative")
	ErrInvalidJSON     = errors.New("attachments must be valid JSON")
)
