package models

import "time"

// Leave is a row of the leaves collection.
//
// LeaveDate, FromDate, ToDate and EndDate overlap and none of them takes
// precedence; they are stored and returned exactly as written.
type Leave struct {
	ID               string      `json:"id"`
	UserID           string      `json:"user_id"`
	LeaveDate        Date        `json:"leave_date"`
	FromDate         Date        `json:"from_date"`
	ToDate           Date        `json:"to_date"`
	EndDate          Date        `json:"end_date"`
	LeaveType        LeaveType   `json:"leave_type"`
	Reason           string      `json:"reason"`
	Status           LeaveStatus `json:"status"`
	ApprovedBy       *string     `json:"approved_by"`
	ApprovedAt       *time.Time  `json:"approved_at"`
	Notes            *string     `json:"notes"`
	IsHalfDay        bool        `json:"is_half_day"`
	Category         *string     `json:"category"`
	BriefDescription *string     `json:"brief_description"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

func (l *Leave) GetID() string { return l.ID }

// NewLeave carries the caller-supplied fields of a leave insert
type NewLeave struct {
	UserID           string      `json:"user_id"`
	LeaveDate        Date        `json:"leave_date"`
	FromDate         Date        `json:"from_date"`
	ToDate           Date        `json:"to_date"`
	EndDate          Date        `json:"end_date"`
	LeaveType        LeaveType   `json:"leave_type"`
	Reason           string      `json:"reason"`
	Status           LeaveStatus `json:"status"`
	ApprovedBy       *string     `json:"approved_by"`
	ApprovedAt       *time.Time  `json:"approved_at"`
	Notes            *string     `json:"notes"`
	IsHalfDay        bool        `json:"is_half_day"`
	Category         *string     `json:"category"`
	BriefDescription *string     `json:"brief_description"`
}

// LeavePatch names the leave fields an update replaces
type LeavePatch struct {
	UserID           *string      `json:"user_id"`
	LeaveDate        *Date        `json:"leave_date"`
	FromDate         *Date        `json:"from_date"`
	ToDate           *Date        `json:"to_date"`
	EndDate          *Date        `json:"end_date"`
	LeaveType        *LeaveType   `json:"leave_type"`
	Reason           *string      `json:"reason"`
	Status           *LeaveStatus `json:"status"`
	ApprovedBy       *string      `json:"approved_by"`
	ApprovedAt       *time.Time   `json:"approved_at"`
	Notes            *string      `json:"notes"`
	IsHalfDay        *bool        `json:"is_half_day"`
	Category         *string      `json:"category"`
	BriefDescription *string      `json:"brief_description"`
}
