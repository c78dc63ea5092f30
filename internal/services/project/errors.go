package project

import "errors"

// Project validation errors
var (
	ErrEmptyName      = errors.New("project name cannot be empty")
	ErrNameTooLong    = errors.New("project name cannot exceed 255 characters")
	ErrInvalidStatus  = errors.New("status must be one of active, completed, on_hold, cancelled")
	ErrEndBeforeStart = errors.New("expected end date cannot be before the start date")
)
