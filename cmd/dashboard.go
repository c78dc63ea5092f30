package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the terminal dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return cli.NewFormatter(cmd).Fail(err)
			}
			defer cliCtx.Close()

			a := cliCtx.App
			model := tui.New(tui.Sources{
				Stats:    a.StatsService,
				Tasks:    a.TaskService,
				Users:    a.UserService,
				Projects: a.ProjectService,
				Leaves:   a.LeaveService,
			}, cliCtx.Config)

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return cli.Exit(cli.ExitError, fmt.Errorf("dashboard failed: %w", err))
			}
			return nil
		},
	}
}
