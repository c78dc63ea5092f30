// Package cmd assembles the crewdesk command tree
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/cli/daily"
	"github.com/thenoetrevino/crewdesk/internal/cli/leave"
	"github.com/thenoetrevino/crewdesk/internal/cli/people"
	"github.com/thenoetrevino/crewdesk/internal/cli/project"
	"github.com/thenoetrevino/crewdesk/internal/cli/stats"
	"github.com/thenoetrevino/crewdesk/internal/cli/task"
)

// NewRootCmd builds the full command tree
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "crewdesk",
		Short: "crewdesk - team workspace for tasks, people, projects and leave",
		Long: `crewdesk manages a team's tasks, members, projects, leave requests and
daily tasks. It serves the dashboard HTTP API, opens a terminal dashboard and
offers CRUD commands for every collection.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(cli.WithConfigPath(cmd.Context(), configPath))
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/crewdesk/config.yaml)")

	rootCmd.AddCommand(
		task.TaskCmd(),
		people.MemberCmd(),
		people.AdminCmd(),
		people.ProjectManagerCmd(),
		people.UserCmd(),
		project.ProjectCmd(),
		leave.LeaveCmd(),
		daily.DailyCmd(),
		stats.StatsCmd(),
		migrateCmd(),
		seedCmd(),
		serveCmd(),
		dashboardCmd(),
		configCmd(),
		tokenCmd(),
	)
	return rootCmd
}

// Execute runs the command tree and returns the process exit code. Errors
// that never reached a formatter, such as unknown flags or missing required
// flags, are printed here and count as usage errors.
func Execute() int {
	return run(context.Background(), NewRootCmd())
}

func run(ctx context.Context, root *cobra.Command) int {
	err := root.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	var exitErr *cli.CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	fmt.Fprintf(root.ErrOrStderr(), "Run '%s --help' for usage.\n", root.CommandPath())
	return cli.ExitUsage
}
