package project

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/cli/handler"
	"github.com/thenoetrevino/crewdesk/internal/cli/styles"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// ProjectCmd returns the project parent command
func ProjectCmd() *cobra.Command {
	return resource.Command()
}

var resource = handler.Resource[models.Project, models.NewProject, models.ProjectPatch]{
	Use:    "project",
	Plural: "projects",
	Title:  "Project",

	Service: func(c *cli.CLI) handler.Service[models.Project, models.NewProject, models.ProjectPatch] {
		return c.App.ProjectService
	},

	Flags:    flags,
	Required: []string{"name"},
	New:      newProject,
	Patch:    patchProject,

	Columns: []string{"ID", "Name", "Client", "Status", "Start", "Expected End"},
	Row: func(p *models.Project) []string {
		return []string{
			p.ID, p.Name, cli.Deref(p.ClientName), styles.Status(string(p.Status)),
			cli.FormatDate(p.StartDate), cli.FormatDate(p.ExpectedEndDate),
		}
	},
	Detail: func(p *models.Project) [][2]string {
		return [][2]string{
			{"Name", p.Name},
			{"Description", cli.Deref(p.Description)},
			{"Client", cli.Deref(p.ClientName)},
			{"Status", styles.Status(string(p.Status))},
			{"Start", cli.FormatDate(p.StartDate)},
			{"Expected End", cli.FormatDate(p.ExpectedEndDate)},
			{"Created", cli.FormatTime(&p.CreatedAt)},
			{"Updated", cli.FormatTime(&p.UpdatedAt)},
		}
	},
}

func flags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Project name")
	cmd.Flags().String("description", "", "Project description")
	cmd.Flags().String("client", "", "Client name")
	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "Expected end date (YYYY-MM-DD)")
	cmd.Flags().String("status", "", "Status: active, completed, on_hold, cancelled")
}

func newProject(p *handler.FlagParser) (models.NewProject, error) {
	start, err := p.ParseDate("start")
	if err != nil {
		return models.NewProject{}, err
	}
	end, err := p.ParseDate("end")
	if err != nil {
		return models.NewProject{}, err
	}
	return models.NewProject{
		Name:            p.ParseStringOptional("name"),
		Description:     p.StringPtr("description"),
		ClientName:      p.StringPtr("client"),
		StartDate:       start,
		ExpectedEndDate: end,
		Status:          models.ProjectStatus(p.ParseStringOptional("status")),
	}, nil
}

func patchProject(p *handler.FlagParser) (models.ProjectPatch, error) {
	start, err := p.DatePtr("start")
	if err != nil {
		return models.ProjectPatch{}, err
	}
	end, err := p.DatePtr("end")
	if err != nil {
		return models.ProjectPatch{}, err
	}
	return models.ProjectPatch{
		Name:            p.StringPtr("name"),
		Description:     p.StringPtr("description"),
		ClientName:      p.StringPtr("client"),
		StartDate:       start,
		ExpectedEndDate: end,
		Status:          handler.EnumPtr[models.ProjectStatus](p, "status"),
	}, nil
}
