package stats

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/cli/handler"
	"github.com/thenoetrevino/crewdesk/internal/cli/styles"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard summary counts",
		Long:  "Re-read tasks, users, projects and leaves and print the summary counts.",
		Args:  cobra.NoArgs,
	}
	cli.AddOutputFlags(cmd)

	cmd.RunE = handler.Command(func(ctx context.Context, c *cli.CLI, _ *handler.FlagParser) (*models.DashboardStats, error) {
		return c.App.StatsService.Collect(ctx)
	}, handler.Output[*models.DashboardStats]{
		Human: render,
	})
	return cmd
}

func render(w io.Writer, s *models.DashboardStats) {
	n := strconv.Itoa
	styles.Fields(w, "Dashboard", [][2]string{
		{"Tasks", n(s.TotalTasks)},
		{"Completed", n(s.CompletedTasks)},
		{"Pending", n(s.PendingTasks)},
		{"In Progress", n(s.InProgressTasks)},
		{"Members", n(s.TotalMembers)},
		{"Active Members", n(s.ActiveMembers)},
		{"Projects", n(s.TotalProjects)},
		{"Active Projects", n(s.ActiveProjects)},
		{"Done Projects", n(s.CompletedProjects)},
		{"Leaves", n(s.TotalLeaves)},
		{"Pending Leaves", n(s.PendingLeaves)},
		{"Approved Leaves", n(s.ApprovedLeaves)},
		{"Rejected Leaves", n(s.RejectedLeaves)},
		{"Generated", cli.FormatTime(&s.GeneratedAt)},
	})
}
