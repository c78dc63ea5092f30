package models

// ============================================================================
// TASK ENUMS
// ============================================================================

// Priority is the urgency of a task or daily task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TaskStatus is the lifecycle state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusBlocked, TaskStatusCancelled:
		return true
	}
	return false
}

// DailyTaskStatus is the state of a daily task entry
type DailyTaskStatus string

const (
	DailyTaskStatusPending   DailyTaskStatus = "pending"
	DailyTaskStatusCompleted DailyTaskStatus = "completed"
	DailyTaskStatusSkipped   DailyTaskStatus = "skipped"
)

func (s DailyTaskStatus) Valid() bool {
	switch s {
	case DailyTaskStatusPending, DailyTaskStatusCompleted, DailyTaskStatusSkipped:
		return true
	}
	return false
}

// ============================================================================
// PROJECT ENUMS
// ============================================================================

// ProjectStatus is the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusOnHold, ProjectStatusCancelled:
		return true
	}
	return false
}

// ============================================================================
// LEAVE ENUMS
// ============================================================================

// LeaveType classifies a leave request
type LeaveType string

const (
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeCasual    LeaveType = "casual"
	LeaveTypePaid      LeaveType = "paid"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypePaternity LeaveType = "paternity"
	LeaveTypeEmergency LeaveType = "emergency"
	LeaveTypeVacation  LeaveType = "vacation"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypeSick, LeaveTypeCasual, LeaveTypePaid, LeaveTypeMaternity,
		LeaveTypePaternity, LeaveTypeEmergency, LeaveTypeVacation:
		return true
	}
	return false
}

// LeaveStatus is the approval state of a leave request
type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusCancelled LeaveStatus = "cancelled"
)

func (s LeaveStatus) Valid() bool {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected, LeaveStatusCancelled:
		return true
	}
	return false
}

// ============================================================================
// USER KINDS
// ============================================================================

// UserKind discriminates the three people collections. It is assigned by the
// access layer and never stored.
type UserKind string

const (
	UserKindMember         UserKind = "member"
	UserKindAdmin          UserKind = "admin"
	UserKindProjectManager UserKind = "project_manager"
)

func (k UserKind) Valid() bool {
	switch k {
	case UserKindMember, UserKindAdmin, UserKindProjectManager:
		return true
	}
	return false
}

// Collection names as stored in the backing database
const (
	CollectionTasks           = "tasks"
	CollectionMembers         = "members"
	CollectionAdmins          = "admins"
	CollectionProjectManagers = "project_managers"
	CollectionProjects        = "projects"
	CollectionLeaves          = "leaves"
	CollectionDailyTasks      = "daily_tasks"

	// legacy proxy tables
	CollectionLegacyTask    = "task"
	CollectionLegacyFinance = "finance"
	CollectionLegacyUsers   = "users"
)
