package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"

	"github.com/thenoetrevino/crewdesk/internal/models"
)

func columnsFor(t tab) []table.Column {
	switch t {
	case tabTasks:
		return []table.Column{
			{Title: "Task", Width: 28},
			{Title: "Assignee", Width: 18},
			{Title: "Status", Width: 12},
			{Title: "Priority", Width: 9},
			{Title: "Due", Width: 11},
			{Title: "Progress", Width: 8},
		}
	case tabUsers:
		return []table.Column{
			{Title: "Name", Width: 22},
			{Title: "Email", Width: 28},
			{Title: "Type", Width: 16},
			{Title: "Department", Width: 14},
			{Title: "Active", Width: 6},
		}
	case tabProjects:
		return []table.Column{
			{Title: "Project", Width: 26},
			{Title: "Client", Width: 18},
			{Title: "Status", Width: 10},
			{Title: "Start", Width: 11},
			{Title: "End", Width: 11},
		}
	case tabLeaves:
		return []table.Column{
			{Title: "User", Width: 18},
			{Title: "Type", Width: 10},
			{Title: "Status", Width: 10},
			{Title: "From", Width: 11},
			{Title: "To", Width: 11},
			{Title: "Reason", Width: 24},
		}
	}
	return nil
}

func newTable(t tab, s styles) table.Model {
	tbl := table.New(
		table.WithColumns(columnsFor(t)),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	tbl.SetStyles(s.table)
	return tbl
}

// ============================================================================
// ROWS
// ============================================================================

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func dateCell(d models.Date) string {
	if s := d.String(); s != "" {
		return s
	}
	return "-"
}

func taskRows(tasks []*models.Task) []table.Row {
	rows := make([]table.Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, table.Row{
			t.TaskName,
			orDash(t.AssignedTo),
			string(t.Status),
			string(t.Priority),
			dateCell(t.DueDate),
			fmt.Sprintf("%d%%", t.Progress),
		})
	}
	return rows
}

func userRows(users []*models.User) []table.Row {
	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		active := "no"
		if u.IsActive {
			active = "yes"
		}
		rows = append(rows, table.Row{u.Name, u.Email, string(u.Type), orDash(u.Department), active})
	}
	return rows
}

func projectRows(projects []*models.Project) []table.Row {
	rows := make([]table.Row, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, table.Row{
			p.Name,
			orDash(p.ClientName),
			string(p.Status),
			dateCell(p.StartDate),
			dateCell(p.ExpectedEndDate),
		})
	}
	return rows
}

// leaveRows shows the requester by name when the user is known
func leaveRows(leaves []*models.Leave, users []*models.User) []table.Row {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	rows := make([]table.Row, 0, len(leaves))
	for _, l := range leaves {
		who, ok := names[l.UserID]
		if !ok {
			who = l.UserID
		}
		from := l.FromDate
		if from.IsZero() {
			from = l.LeaveDate
		}
		rows = append(rows, table.Row{
			who,
			string(l.LeaveType),
			string(l.Status),
			dateCell(from),
			dateCell(l.ToDate),
			l.Reason,
		})
	}
	return rows
}

// fill replaces every table's rows from snap
func (m *Model) fill(snap *snapshot) {
	m.tables[tabTasks].SetRows(taskRows(snap.tasks))
	m.tables[tabUsers].SetRows(userRows(snap.users))
	m.tables[tabProjects].SetRows(projectRows(snap.projects))
	m.tables[tabLeaves].SetRows(leaveRows(snap.leaves, snap.users))
}
