package daily

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/cli/handler"
	"github.com/thenoetrevino/crewdesk/internal/cli/styles"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// DailyCmd returns the daily task parent command
func DailyCmd() *cobra.Command {
	return resource.Command()
}

var resource = handler.Resource[models.DailyTask, models.NewDailyTask, models.DailyTaskPatch]{
	Use:     "daily",
	Plural:  "daily tasks",
	Title:   "Daily task",
	Aliases: []string{"daily-task"},

	Service: func(c *cli.CLI) handler.Service[models.DailyTask, models.NewDailyTask, models.DailyTaskPatch] {
		return c.App.DailyTaskService
	},

	Flags:    flags,
	Required: []string{"user-id", "created-by", "name", "date"},
	New:      newDailyTask,
	Patch:    patchDailyTask,

	ListFlags: func(cmd *cobra.Command) {
		cmd.Flags().String("date", "", "Only entries for this day (YYYY-MM-DD)")
	},
	List: func(ctx context.Context, c *cli.CLI, p *handler.FlagParser) ([]*models.DailyTask, error) {
		date, err := p.ParseDate("date")
		if err != nil {
			return nil, err
		}
		if date.IsZero() {
			return c.App.DailyTaskService.GetAll(ctx)
		}
		return c.App.DailyTaskService.GetByDate(ctx, date)
	},

	Columns: []string{"ID", "Date", "Name", "User", "Status", "Priority"},
	Row: func(d *models.DailyTask) []string {
		return []string{
			d.ID, cli.FormatDate(d.TaskDate), d.TaskName, d.UserID,
			styles.Status(string(d.Status)), string(d.Priority),
		}
	},
	Detail: func(d *models.DailyTask) [][2]string {
		return [][2]string{
			{"Name", d.TaskName},
			{"Description", cli.Deref(d.Description)},
			{"Date", cli.FormatDate(d.TaskDate)},
			{"User", d.UserID},
			{"Created By", d.CreatedBy},
			{"Status", styles.Status(string(d.Status))},
			{"Priority", string(d.Priority)},
			{"Completed", cli.FormatTime(d.CompletedAt)},
			{"Active", cli.YesNo(d.IsActive)},
			{"Project", cli.Deref(d.ProjectID)},
		}
	},
}

func flags(cmd *cobra.Command) {
	cmd.Flags().String("user-id", "", "Member ID")
	cmd.Flags().String("created-by", "", "Creator member ID")
	cmd.Flags().String("name", "", "Task name")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().String("date", "", "Day (YYYY-MM-DD)")
	cmd.Flags().String("status", "", "Status: pending, completed, skipped")
	cmd.Flags().String("priority", "", "Priority: low, medium, high, urgent")
	cmd.Flags().StringSlice("tag", nil, "Tag (repeatable)")
	cmd.Flags().String("project-id", "", "Project ID")
	cmd.Flags().Bool("active", true, "Whether the entry is active")
}

func newDailyTask(p *handler.FlagParser) (models.NewDailyTask, error) {
	date, err := p.ParseDate("date")
	if err != nil {
		return models.NewDailyTask{}, err
	}
	return models.NewDailyTask{
		UserID:      p.ParseStringOptional("user-id"),
		CreatedBy:   p.ParseStringOptional("created-by"),
		TaskName:    p.ParseStringOptional("name"),
		Description: p.StringPtr("description"),
		TaskDate:    date,
		Status:      models.DailyTaskStatus(p.ParseStringOptional("status")),
		Priority:    models.Priority(p.ParseStringOptional("priority")),
		Tags:        p.ParseStrings("tag"),
		ProjectID:   p.StringPtr("project-id"),
		IsActive:    p.BoolPtr("active"),
	}, nil
}

func patchDailyTask(p *handler.FlagParser) (models.DailyTaskPatch, error) {
	date, err := p.DatePtr("date")
	if err != nil {
		return models.DailyTaskPatch{}, err
	}
	return models.DailyTaskPatch{
		UserID:      p.StringPtr("user-id"),
		CreatedBy:   p.StringPtr("created-by"),
		TaskName:    p.StringPtr("name"),
		Description: p.StringPtr("description"),
		TaskDate:    date,
		Status:      handler.EnumPtr[models.DailyTaskStatus](p, "status"),
		Priority:    handler.EnumPtr[models.Priority](p, "priority"),
		Tags:        p.StringsPtr("tag"),
		ProjectID:   p.StringPtr("project-id"),
		IsActive:    p.BoolPtr("active"),
	}, nil
}
