package task

import "github.com/thenoetrevino/crewdesk/internal/models"

// AttachAssignees sets AssignedTo on every task to the name of the member
// whose id equals the task's user_id, or nil when there is none. The member
// index is built once, so the cost is linear in tasks plus members.
func AttachAssignees(tasks []*models.Task, members []*models.Member) []*models.Task {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	for _, t := range tasks {
		if name, ok := names[t.UserID]; ok {
			n := name
			t.AssignedTo = &n
		} else {
			t.AssignedTo = nil
		}
	}
	return tasks
}
