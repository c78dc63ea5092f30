package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/crewdesk/internal/models"
)

// snapshot is everything one batch load read
type snapshot struct {
	stats    *models.DashboardStats
	tasks    []*models.Task
	users    []*models.User
	projects []*models.Project
	leaves   []*models.Leave
}

// loadedMsg carries the result of the batch numbered generation
type loadedMsg struct {
	generation int
	data       *snapshot
	err        error
	at         time.Time
}

// loadCmd reads the summary and the four collections concurrently. Any
// failure fails the whole batch.
func loadCmd(src Sources, generation int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var snap snapshot
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			snap.stats, err = src.Stats.Collect(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			snap.tasks, err = src.Tasks.GetAll(gctx)
			if err != nil {
				return fmt.Errorf("failed to fetch tasks: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			snap.users, err = src.Users.GetAllUsers(gctx)
			if err != nil {
				return fmt.Errorf("failed to fetch users: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			snap.projects, err = src.Projects.GetAll(gctx)
			if err != nil {
				return fmt.Errorf("failed to fetch projects: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			snap.leaves, err = src.Leaves.GetAll(gctx)
			if err != nil {
				return fmt.Errorf("failed to fetch leaves: %w", err)
			}
			return nil
		})

		if err := g.Wait(); err != nil {
			return loadedMsg{generation: generation, err: err, at: time.Now()}
		}
		return loadedMsg{generation: generation, data: &snap, at: time.Now()}
	}
}
