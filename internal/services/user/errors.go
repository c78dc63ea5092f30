package user

import "errors"

// User validation errors
var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrInvalidEmail = errors.New("email must be a valid address")
	ErrInvalidRole  = errors.New("role must be one of admin, member, project_manager")
)
