package cmd

import (
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/cli/styles"
	"github.com/thenoetrevino/crewdesk/internal/operator"
	"github.com/thenoetrevino/crewdesk/internal/seed"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty workspace with sample data",
		Long: `Create a small sample team with people, projects, tasks, leave requests and
today's daily tasks. Refuses to run when members already exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			cliCtx, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return formatter.Fail(err)
			}
			defer cliCtx.Close()

			cliCtx.App.Logger().Info("seeding sample data", "operator", operator.Name())
			res, err := seed.Run(cmd.Context(), cliCtx.App, time.Now())
			if errors.Is(err, seed.ErrNotEmpty) {
				return formatter.Fail(cli.Exit(cli.ExitValidation, err))
			}
			if err != nil {
				return formatter.Fail(err)
			}

			return formatter.Success(res, func(w io.Writer) {
				styles.Done(w, "Seeded %d members, %d projects, %d tasks, %d leaves and %d daily tasks",
					res.Members, res.Projects, res.Tasks, res.Leaves, res.DailyTasks)
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}
