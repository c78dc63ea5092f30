package people

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/cli/handler"
	"github.com/thenoetrevino/crewdesk/internal/models"
	"github.com/thenoetrevino/crewdesk/internal/services/user"
)

// AdminCmd returns the admin parent command
func AdminCmd() *cobra.Command {
	return staff("admin", "admins", "Admin", false, func(c *cli.CLI) user.StaffService {
		return c.App.AdminService
	}).Command()
}

// ProjectManagerCmd returns the project manager parent command
func ProjectManagerCmd() *cobra.Command {
	cmd := staff("pm", "project managers", "Project manager", true, func(c *cli.CLI) user.StaffService {
		return c.App.ProjectManagerService
	}).Command()
	cmd.Aliases = []string{"project-manager"}
	return cmd
}

// staff builds the resource for one of the two staff collections. Only
// project managers have a department.
func staff(use, plural, title string, department bool, svc func(*cli.CLI) user.StaffService) handler.Resource[models.Staff, models.NewStaff, models.StaffPatch] {
	columns := []string{"ID", "Name", "Email", "Active"}
	if department {
		columns = []string{"ID", "Name", "Email", "Department", "Active"}
	}

	return handler.Resource[models.Staff, models.NewStaff, models.StaffPatch]{
		Use:    use,
		Plural: plural,
		Title:  title,

		Service: func(c *cli.CLI) handler.Service[models.Staff, models.NewStaff, models.StaffPatch] {
			return svc(c)
		},

		Flags: func(cmd *cobra.Command) {
			cmd.Flags().String("name", "", "Full name")
			cmd.Flags().String("email", "", "Email address")
			if department {
				cmd.Flags().String("department", "", "Department")
			}
			cmd.Flags().Bool("active", true, "Whether the account is active")
		},
		Required: []string{"name", "email"},
		New: func(p *handler.FlagParser) (models.NewStaff, error) {
			return models.NewStaff{
				Name:       p.ParseStringOptional("name"),
				Email:      p.ParseStringOptional("email"),
				Department: p.StringPtr("department"),
				IsActive:   p.BoolPtr("active"),
			}, nil
		},
		Patch: func(p *handler.FlagParser) (models.StaffPatch, error) {
			return models.StaffPatch{
				Name:       p.StringPtr("name"),
				Email:      p.StringPtr("email"),
				Department: p.StringPtr("department"),
				IsActive:   p.BoolPtr("active"),
			}, nil
		},

		Columns: columns,
		Row: func(s *models.Staff) []string {
			if department {
				return []string{s.ID, s.Name, s.Email, cli.Deref(s.Department), cli.YesNo(s.IsActive)}
			}
			return []string{s.ID, s.Name, s.Email, cli.YesNo(s.IsActive)}
		},
		Detail: func(s *models.Staff) [][2]string {
			pairs := [][2]string{
				{"Name", s.Name},
				{"Email", s.Email},
				{"Type", string(s.Role)},
				{"Active", cli.YesNo(s.IsActive)},
			}
			if department {
				pairs = append(pairs, [2]string{"Department", cli.Deref(s.Department)})
			}
			return append(pairs, [2]string{"Created", cli.FormatTime(&s.CreatedAt)})
		},
	}
}
