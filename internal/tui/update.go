package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles window resizes, batch results and key presses
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for _, tbl := range m.tables {
			tbl.SetWidth(msg.Width - 2)
			tbl.SetHeight(max(msg.Height-8, 3))
		}
		return m, nil

	case loadedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.loading = false
		m.loadedAt = msg.at
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.data = msg.data
		m.fill(msg.data)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		m.active = (m.active + 1) % tabCount
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.active = (m.active + tabCount - 1) % tabCount
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		return m, m.startLoad()

	case key.Matches(msg, m.keys.ShowHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextRow):
		if tbl, ok := m.tables[m.active]; ok {
			tbl.MoveDown(1)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevRow):
		if tbl, ok := m.tables[m.active]; ok {
			tbl.MoveUp(1)
		}
		return m, nil
	}
	return m, nil
}
