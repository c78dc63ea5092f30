package cli

import (
	"errors"

	"github.com/thenoetrevino/crewdesk/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unparseable flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested record was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data read from a file.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid enum values, empty required fields, or a write the
	// database rejected.
	ExitValidation = 5
)

// CodedError carries the process exit code out of a command
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string { return e.Err.Error() }

func (e *CodedError) Unwrap() error { return e.Err }

// Exit attaches code to err
func Exit(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Err: err}
}

// Usage marks err as a usage error
func Usage(err error) error {
	return Exit(ExitUsage, err)
}

// Classify maps an error onto an exit code and a machine readable code
func Classify(err error) (int, string) {
	var exitErr *CodedError
	switch {
	case err == nil:
		return ExitSuccess, ""
	case errors.As(err, &exitErr) && exitErr.Code == ExitUsage:
		return ExitUsage, "USAGE_ERROR"
	case errors.As(err, &exitErr) && exitErr.Code == ExitDataErr:
		return ExitDataErr, "DATA_ERROR"
	case models.IsNotFound(err):
		return ExitNotFound, "NOT_FOUND"
	case models.IsValidation(err):
		return ExitValidation, "VALIDATION_ERROR"
	case errors.As(err, &exitErr):
		return exitErr.Code, "ERROR"
	default:
		return ExitError, "ERROR"
	}
}

// ExitCode is the process exit code for an error returned by a command
func ExitCode(err error) int {
	code, _ := Classify(err)
	return code
}
