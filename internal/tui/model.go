// Package tui is the terminal dashboard: summary cards plus the task, user,
// project and leave tables, refreshed in one batch.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/crewdesk/internal/config"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// Sources are the reads one dashboard load performs
type Sources struct {
	Stats interface {
		Collect(ctx context.Context) (*models.DashboardStats, error)
	}
	Tasks interface {
		GetAll(ctx context.Context) ([]*models.Task, error)
	}
	Users interface {
		GetAllUsers(ctx context.Context) ([]*models.User, error)
	}
	Projects interface {
		GetAll(ctx context.Context) ([]*models.Project, error)
	}
	Leaves interface {
		GetAll(ctx context.Context) ([]*models.Leave, error)
	}
}

type tab int

const (
	tabOverview tab = iota
	tabTasks
	tabUsers
	tabProjects
	tabLeaves
	tabHelp
	tabCount
)

var tabNames = [tabCount]string{"Overview", "Tasks", "Users", "Projects", "Leaves", "Help"}

func (t tab) String() string { return tabNames[t] }

// loadTimeout bounds one batch load
const loadTimeout = 30 * time.Second

// Model represents the dashboard state
type Model struct {
	src    Sources
	keys   keyMap
	styles styles
	chat   config.ChatConfig
	help   help.Model

	width  int
	height int
	active tab

	// generation numbers batches; a result from an older batch is dropped
	generation int
	loading    bool
	data       *snapshot
	err        error
	loadedAt   time.Time

	tables map[tab]*table.Model
	docs   *docRenderer
}

// New creates the dashboard model with its first batch marked pending. Init
// issues that batch.
func New(src Sources, cfg *config.Config) Model {
	h := help.New()
	h.ShowAll = false

	m := Model{
		src:    src,
		keys:   newKeyMap(cfg.KeyMappings),
		styles: newStyles(cfg.ColorScheme),
		chat:   cfg.Chat,
		help:   h,
		width:  100,
		height: 30,
		tables: make(map[tab]*table.Model),
		docs:   newDocRenderer(cfg.ColorScheme),

		generation: 1,
		loading:    true,
	}
	for _, t := range []tab{tabTasks, tabUsers, tabProjects, tabLeaves} {
		tbl := newTable(t, m.styles)
		m.tables[t] = &tbl
	}
	return m
}

// Init starts the first load
func (m Model) Init() tea.Cmd {
	return loadCmd(m.src, m.generation, loadTimeout)
}

// startLoad begins a new batch. It must only be called when no batch is
// pending; the caller stores the returned model's state.
func (m *Model) startLoad() tea.Cmd {
	m.generation++
	m.loading = true
	return loadCmd(m.src, m.generation, loadTimeout)
}
