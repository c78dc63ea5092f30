package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/thenoetrevino/crewdesk/internal/config"
)

// keyMap is the dashboard's bindings, built from the configured mappings
type keyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	NextRow  key.Binding
	PrevRow  key.Binding
	Refresh  key.Binding
	ShowHelp key.Binding
	Quit     key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		NextTab:  key.NewBinding(key.WithKeys(km.NextTab, "tab", "right"), key.WithHelp(km.NextTab, "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys(km.PrevTab, "shift+tab", "left"), key.WithHelp(km.PrevTab, "prev tab")),
		NextRow:  key.NewBinding(key.WithKeys(km.NextRow, "down"), key.WithHelp(km.NextRow, "down")),
		PrevRow:  key.NewBinding(key.WithKeys(km.PrevRow, "up"), key.WithHelp(km.PrevRow, "up")),
		Refresh:  key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		ShowHelp: key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "more keys")),
		Quit:     key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Refresh, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab},
		{k.NextRow, k.PrevRow},
		{k.Refresh, k.ShowHelp, k.Quit},
	}
}
