package dailytask

import "errors"

// Daily task validation errors
var (
	ErrEmptyTaskName   = errors.New("task name cannot be empty")
	ErrEmptyUserID     = errors.New("task owner cannot be empty")
	ErrEmptyCreatedBy  = errors.New("task creator cannot be empty")
	ErrMissingTaskDate = errors.New("task date is required")
	ErrInvalidStatus   = errors.New("status must be one of pending, completed, skipped")
	ErrInvalidPriority = errors.New("priority must be one of low, medium, high, urgent")
)
