package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/crewdesk/internal/config"
	"github.com/thenoetrevino/crewdesk/internal/models"
	"github.com/thenoetrevino/crewdesk/internal/services/stats"
)

// ============================================================================
// FAKE SOURCES
// ============================================================================

type fakeTasks struct {
	items []*models.Task
	err   error
}

func (f *fakeTasks) GetAll(context.Context) ([]*models.Task, error) { return f.items, f.err }

type fakeUsers struct{ items []*models.User }

func (f *fakeUsers) GetAllUsers(context.Context) ([]*models.User, error) { return f.items, nil }

type fakeProjects struct{ items []*models.Project }

func (f *fakeProjects) GetAll(context.Context) ([]*models.Project, error) { return f.items, nil }

type fakeLeaves struct{ items []*models.Leave }

func (f *fakeLeaves) GetAll(context.Context) ([]*models.Leave, error) { return f.items, nil }

type fixture struct {
	tasks *fakeTasks
	model Model
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ana := "Ana"
	tasks := &fakeTasks{items: []*models.Task{
		{ID: "t1", TaskName: "Write report", UserID: "u1", AssignedTo: &ana, Status: models.TaskStatusCompleted, Priority: models.PriorityHigh, DueDate: models.MustParseDate("2024-05-01")},
		{ID: "t2", TaskName: "Review budget", UserID: "u1", AssignedTo: &ana, Status: models.TaskStatusPending, Priority: models.PriorityLow},
	}}
	users := &fakeUsers{items: []*models.User{
		{ID: "u1", Name: "Ana", Email: "ana@example.com", IsActive: true, Type: models.UserKindMember},
	}}
	projects := &fakeProjects{items: []*models.Project{{ID: "p1", Name: "Apollo", Status: models.ProjectStatusActive}}}
	leaves := &fakeLeaves{items: []*models.Leave{
		{ID: "l1", UserID: "u1", LeaveType: models.LeaveTypeSick, Reason: "flu", Status: models.LeaveStatusPending},
	}}

	src := Sources{
		Stats:    stats.NewService(tasks, users, projects, leaves),
		Tasks:    tasks,
		Users:    users,
		Projects: projects,
		Leaves:   leaves,
	}
	return &fixture{tasks: tasks, model: New(src, config.Default())}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// loaded runs Init and feeds the first batch back in
func loaded(t *testing.T, f *fixture) Model {
	t.Helper()
	cmd := f.model.Init()
	require.NotNil(t, cmd)
	m, _ := update(t, f.model, cmd())
	return m
}

// ============================================================================
// LOADING
// ============================================================================

func TestInitialLoad(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.model.loading)
	assert.Contains(t, f.model.View(), "Loading")

	m := loaded(t, f)
	assert.False(t, m.loading)
	require.NoError(t, m.err)
	require.NotNil(t, m.data)
	assert.Equal(t, 2, m.data.stats.TotalTasks)
	assert.Equal(t, 1, m.data.stats.CompletedTasks)
	assert.Equal(t, 1, m.data.stats.PendingLeaves)
	assert.Len(t, m.tables[tabTasks].Rows(), 2)
	assert.Len(t, m.tables[tabLeaves].Rows(), 1)
}

func TestRefreshIgnoredWhileLoading(t *testing.T) {
	f := newFixture(t)

	m, cmd := update(t, f.model, keyPress("r"))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.generation)
}

func TestRefreshStartsNewGeneration(t *testing.T) {
	f := newFixture(t)
	m := loaded(t, f)

	m, cmd := update(t, m, keyPress("r"))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.generation)
	assert.True(t, m.loading)

	msg, ok := cmd().(loadedMsg)
	require.True(t, ok)
	assert.Equal(t, 2, msg.generation)
}

func TestStaleGenerationDiscarded(t *testing.T) {
	f := newFixture(t)
	m := loaded(t, f)
	m, _ = update(t, m, keyPress("r"))

	m, _ = update(t, m, loadedMsg{generation: 1, err: errors.New("old failure")})
	assert.True(t, m.loading)
	assert.NoError(t, m.err)
}

func TestLoadFailureShowsBanner(t *testing.T) {
	f := newFixture(t)
	f.tasks.err = errors.New("connection refused")

	m := loaded(t, f)
	assert.False(t, m.loading)
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "connection refused")

	// a later good batch clears the banner
	f.tasks.err = nil
	m, cmd := update(t, m, keyPress("r"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.NoError(t, m.err)
	assert.NotContains(t, m.View(), "connection refused")
}

// ============================================================================
// NAVIGATION AND VIEW
// ============================================================================

func TestTabNavigation(t *testing.T) {
	f := newFixture(t)
	m := loaded(t, f)
	assert.Equal(t, tabOverview, m.active)

	m, _ = update(t, m, keyPress("l"))
	assert.Equal(t, tabTasks, m.active)

	m, _ = update(t, m, keyPress("h"))
	m, _ = update(t, m, keyPress("h"))
	assert.Equal(t, tabHelp, m.active)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabOverview, m.active)
}

func TestRowKeysMoveCursor(t *testing.T) {
	f := newFixture(t)
	m := loaded(t, f)
	m, _ = update(t, m, keyPress("l"))

	m, _ = update(t, m, keyPress("j"))
	assert.Equal(t, 1, m.tables[tabTasks].Cursor())
	m, _ = update(t, m, keyPress("k"))
	assert.Equal(t, 0, m.tables[tabTasks].Cursor())
}

func TestOverviewShowsCards(t *testing.T) {
	f := newFixture(t)
	m := loaded(t, f)

	view := m.View()
	for _, label := range []string{"Total tasks", "Active members", "Completed projects", "Rejected leaves"} {
		assert.Contains(t, view, label)
	}
}

func TestTasksTabShowsAssignee(t *testing.T) {
	f := newFixture(t)
	m := loaded(t, f)
	m, _ = update(t, m, keyPress("l"))

	view := m.View()
	assert.Contains(t, view, "Write report")
	assert.Contains(t, view, "Ana")
}

func TestHelpTabListsSampleQuestions(t *testing.T) {
	f := newFixture(t)
	f.model.chat.SampleQuestions = []string{"Who is on leave today?"}
	md := helpMarkdown(f.model.chat, f.model.keys)
	assert.Contains(t, md, "- Who is on leave today?")
	assert.Contains(t, md, "refresh")

	m := loaded(t, f)
	m.active = tabHelp
	assert.NotEmpty(t, m.View())
}

func TestQuit(t *testing.T) {
	f := newFixture(t)
	_, cmd := update(t, f.model, keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
