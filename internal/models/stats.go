package models

import "time"

// DashboardStats is the fixed-shape summary shown on the dashboard overview.
// It is computed on demand and never persisted.
type DashboardStats struct {
	TotalTasks      int `json:"totalTasks"`
	CompletedTasks  int `json:"completedTasks"`
	PendingTasks    int `json:"pendingTasks"`
	InProgressTasks int `json:"inProgressTasks"`

	TotalMembers  int `json:"totalMembers"`
	ActiveMembers int `json:"activeMembers"`

	TotalProjects     int `json:"totalProjects"`
	ActiveProjects    int `json:"activeProjects"`
	CompletedProjects int `json:"completedProjects"`

	TotalLeaves    int `json:"totalLeaves"`
	PendingLeaves  int `json:"pendingLeaves"`
	ApprovedLeaves int `json:"approvedLeaves"`
	RejectedLeaves int `json:"rejectedLeaves"`

	GeneratedAt time.Time `json:"generatedAt"`
}
