package config

// KeyMappings defines all configurable dashboard key bindings
type KeyMappings struct {
	// Tabs
	NextTab string `yaml:"next_tab"`
	PrevTab string `yaml:"prev_tab"`

	// Tables
	NextRow string `yaml:"next_row"`
	PrevRow string `yaml:"prev_row"`

	// Data
	Refresh string `yaml:"refresh"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NextTab:  "l",
		PrevTab:  "h",
		NextRow:  "j",
		PrevRow:  "k",
		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.NextTab == "" {
		k.NextTab = defaults.NextTab
	}
	if k.PrevTab == "" {
		k.PrevTab = defaults.PrevTab
	}
	if k.NextRow == "" {
		k.NextRow = defaults.NextRow
	}
	if k.PrevRow == "" {
		k.PrevRow = defaults.PrevRow
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
