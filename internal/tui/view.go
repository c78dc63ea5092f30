package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/crewdesk/internal/models"
)

// View renders the tab bar, the active tab and the status bar
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.errorBanner.Render("Error: " + models.BackendMessage(m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderBody())
	b.WriteString("\n\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderTabs() string {
	parts := []string{m.styles.title.Render("crewdesk")}
	for t := tab(0); t < tabCount; t++ {
		if t == m.active {
			parts = append(parts, m.styles.activeTab.Render(t.String()))
		} else {
			parts = append(parts, m.styles.tab.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderBody() string {
	if m.active == tabHelp {
		return m.docs.Render(helpMarkdown(m.chat, m.keys), m.width-4)
	}
	if m.data == nil {
		if m.loading {
			return m.styles.info.Render("Loading...")
		}
		return m.styles.subtle.Render("No data")
	}
	if m.active == tabOverview {
		return m.renderOverview(m.data.stats)
	}
	if len(m.tables[m.active].Rows()) == 0 {
		return m.styles.subtle.Render(fmt.Sprintf("No %s", strings.ToLower(m.active.String())))
	}
	return m.tables[m.active].View()
}

// ============================================================================
// OVERVIEW
// ============================================================================

type card struct {
	label string
	value int
	style lipgloss.Style
}

func (m Model) renderCard(c card) string {
	value := c.style.Bold(true).Render(fmt.Sprintf("%d", c.value))
	return m.styles.card.Render(m.styles.cardLabel.Render(c.label) + "\n" + value)
}

// renderOverview lays the summary counts out in rows, one per collection
func (m Model) renderOverview(st *models.DashboardStats) string {
	if st == nil {
		return m.styles.subtle.Render("No data")
	}
	none := m.styles.cardValue
	rows := [][]card{
		{
			{"Total tasks", st.TotalTasks, none},
			{"Completed", st.CompletedTasks, m.styles.good},
			{"Pending", st.PendingTasks, m.styles.pending},
			{"In progress", st.InProgressTasks, m.styles.pending},
		},
		{
			{"Total members", st.TotalMembers, none},
			{"Active members", st.ActiveMembers, m.styles.good},
		},
		{
			{"Total projects", st.TotalProjects, none},
			{"Active projects", st.ActiveProjects, m.styles.good},
			{"Completed projects", st.CompletedProjects, m.styles.good},
		},
		{
			{"Total leaves", st.TotalLeaves, none},
			{"Pending leaves", st.PendingLeaves, m.styles.pending},
			{"Approved leaves", st.ApprovedLeaves, m.styles.good},
			{"Rejected leaves", st.RejectedLeaves, m.styles.bad},
		},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		rendered := make([]string, len(row))
		for i, c := range row {
			rendered[i] = m.renderCard(c)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderStatusBar() string {
	var status string
	switch {
	case m.loading:
		status = "loading"
	case m.err != nil:
		status = "load failed"
	case !m.loadedAt.IsZero():
		status = "updated " + m.loadedAt.Format("15:04:05")
	}
	if m.data != nil && m.data.stats != nil {
		status += fmt.Sprintf(" | %d tasks, %d users", m.data.stats.TotalTasks, len(m.data.users))
	}
	return m.styles.statusBar.Width(max(m.width, 20)).Render(status)
}
