package leave

import "errors"

// Leave validation errors
var (
	ErrEmptyUserID      = errors.New("leave owner cannot be empty")
	ErrEmptyReason      = errors.New("reason cannot be empty")
	ErrInvalidLeaveType = errors.New("leave type must be one of sick, casual, paid, maternity, paternity, emergency, vacation")
	ErrInvalidStatus    = errors.New("status must be one of pending, approved, rejected, cancelled")
)
