package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/crewdesk/internal/config"
)

// styles holds every lipgloss style the dashboard renders with
type styles struct {
	title       lipgloss.Style
	tab         lipgloss.Style
	activeTab   lipgloss.Style
	card        lipgloss.Style
	cardLabel   lipgloss.Style
	cardValue   lipgloss.Style
	good        lipgloss.Style
	pending     lipgloss.Style
	bad         lipgloss.Style
	subtle      lipgloss.Style
	errorBanner lipgloss.Style
	info        lipgloss.Style
	statusBar   lipgloss.Style
	table       table.Styles
}

func newStyles(c config.ColorScheme) styles {
	s := styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Title)).
			Padding(0, 1),
		tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Subtle)).
			Padding(0, 2),
		activeTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Accent)).
			Background(lipgloss.Color(c.SelectedBg)).
			Padding(0, 2),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.CardBorder)).
			Padding(0, 1).
			Width(22),
		cardLabel: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle)),
		cardValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Normal)),
		good:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.Good)),
		pending:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Pending)),
		bad:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Bad)),
		subtle:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle)),
		errorBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.ErrorFg)).
			Background(lipgloss.Color(c.ErrorBg)).
			Padding(0, 1),
		info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.InfoFg)).
			Background(lipgloss.Color(c.InfoBg)).
			Padding(0, 1),
		statusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.StatusBarText)).
			Background(lipgloss.Color(c.StatusBarBg)).
			Padding(0, 1),
	}

	s.table = table.DefaultStyles()
	s.table.Header = s.table.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(c.CardBorder)).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))
	s.table.Selected = s.table.Selected.
		Foreground(lipgloss.Color(c.Normal)).
		Background(lipgloss.Color(c.SelectedBg)).
		Bold(false)
	return s
}

// status colours a status value by how settled it is
func (s styles) status(v string) string {
	switch v {
	case "completed", "approved", "active":
		return s.good.Render(v)
	case "pending", "in_progress", "on_hold":
		return s.pending.Render(v)
	case "blocked", "rejected", "cancelled":
		return s.bad.Render(v)
	}
	return v
}
