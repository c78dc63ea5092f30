package people

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/cli/handler"
	"github.com/thenoetrevino/crewdesk/internal/cli/styles"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// UserCmd returns the user parent command. Users are read-only; they are
// managed through the member, admin and pm commands.
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show the unified list of members, admins and project managers",
	}
	cmd.AddCommand(userListCmd())
	return cmd
}

func userListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every member, admin and project manager",
		Long:  "List members, then admins, then project managers, each group by name.",
		Args:  cobra.NoArgs,
	}
	cli.AddOutputFlags(cmd)

	cmd.RunE = handler.Command(func(ctx context.Context, c *cli.CLI, _ *handler.FlagParser) ([]*models.User, error) {
		return c.App.UserService.GetAllUsers(ctx)
	}, handler.Output[[]*models.User]{
		Human: func(w io.Writer, users []*models.User) {
			if len(users) == 0 {
				fmt.Fprintln(w, "No users found")
				return
			}
			rows := make([][]string, len(users))
			for i, u := range users {
				rows[i] = []string{u.ID, u.Name, u.Email, cli.Deref(u.Department), string(u.Type), cli.YesNo(u.IsActive)}
			}
			fmt.Fprintf(w, "Found %d users:\n", len(users))
			styles.Table(w, []string{"ID", "Name", "Email", "Department", "Type", "Active"}, rows)
		},
		IDs: func(users []*models.User) []string {
			out := make([]string, len(users))
			for i, u := range users {
				out[i] = u.ID
			}
			return out
		},
	})
	return cmd
}
