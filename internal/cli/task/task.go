package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/cli/handler"
	"github.com/thenoetrevino/crewdesk/internal/cli/styles"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := resource.Command()
	cmd.Long = `Manage tasks.

Examples:
  # Create a task (human-readable output)
  crewdesk task create --user-id=<member> --created-by=<member> --name="Draft roadmap" --due=2025-04-30

  # Quiet mode for bash capture
  TASK_ID=$(crewdesk task create --user-id=<member> --created-by=<member> --name="Fix bug" --due=2025-05-01 --quiet)

  # Change the status only
  crewdesk task update --id=$TASK_ID --status=completed
`
	return cmd
}

var resource = handler.Resource[models.Task, models.NewTask, models.TaskPatch]{
	Use:    "task",
	Plural: "tasks",
	Title:  "Task",

	Service: func(c *cli.CLI) handler.Service[models.Task, models.NewTask, models.TaskPatch] {
		return c.App.TaskService
	},

	Flags:    flags,
	Required: []string{"user-id", "created-by", "name", "due"},
	New:      newTask,
	Patch:    patchTask,

	Columns: []string{"ID", "Name", "Assigned To", "Status", "Priority", "Due", "Progress"},
	Row: func(t *models.Task) []string {
		return []string{
			t.ID, t.TaskName, cli.Deref(t.AssignedTo), styles.Status(string(t.Status)),
			string(t.Priority), cli.FormatDate(t.DueDate), fmt.Sprintf("%d%%", t.Progress),
		}
	},
	Detail: func(t *models.Task) [][2]string {
		return [][2]string{
			{"Name", t.TaskName},
			{"Description", cli.Deref(t.Description)},
			{"Assigned To", cli.Deref(t.AssignedTo)},
			{"User ID", t.UserID},
			{"Created By", t.CreatedBy},
			{"Status", styles.Status(string(t.Status))},
			{"Priority", string(t.Priority)},
			{"Due", cli.FormatDate(t.DueDate)},
			{"Completed", cli.FormatTime(t.CompletedAt)},
			{"Estimate", cli.FormatHours(t.EstimatedHours)},
			{"Actual", cli.FormatHours(t.ActualHours)},
			{"Progress", fmt.Sprintf("%d%%", t.Progress)},
			{"Project", cli.Deref(t.ProjectID)},
			{"Tags", fmt.Sprint(t.Tags)},
			{"Created", cli.FormatTime(&t.CreatedAt)},
			{"Updated", cli.FormatTime(&t.UpdatedAt)},
		}
	},
}

func flags(cmd *cobra.Command) {
	cmd.Flags().String("user-id", "", "Assignee member ID")
	cmd.Flags().String("created-by", "", "Creator member ID")
	cmd.Flags().String("name", "", "Task name")
	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("priority", "", "Priority: low, medium, high, urgent")
	cmd.Flags().String("status", "", "Status: pending, in_progress, completed, blocked, cancelled")
	cmd.Flags().Float64("estimated-hours", 0, "Estimated hours")
	cmd.Flags().Float64("actual-hours", 0, "Actual hours")
	cmd.Flags().StringSlice("tag", nil, "Tag (repeatable)")
	cmd.Flags().String("project-id", "", "Project ID")
	cmd.Flags().Int("progress", 0, "Progress percentage")
}

func newTask(p *handler.FlagParser) (models.NewTask, error) {
	due, err := p.ParseDate("due")
	if err != nil {
		return models.NewTask{}, err
	}
	estimated, err := p.ParseFloat("estimated-hours")
	if err != nil {
		return models.NewTask{}, err
	}
	actual, err := p.ParseFloat("actual-hours")
	if err != nil {
		return models.NewTask{}, err
	}
	progress, err := p.ParseIntOptional("progress")
	if err != nil {
		return models.NewTask{}, err
	}

	return models.NewTask{
		UserID:         p.ParseStringOptional("user-id"),
		CreatedBy:      p.ParseStringOptional("created-by"),
		TaskName:       p.ParseStringOptional("name"),
		Description:    p.StringPtr("description"),
		DueDate:        due,
		Priority:       models.Priority(p.ParseStringOptional("priority")),
		Status:         models.TaskStatus(p.ParseStringOptional("status")),
		EstimatedHours: estimated,
		ActualHours:    actual,
		Tags:           p.ParseStrings("tag"),
		ProjectID:      p.StringPtr("project-id"),
		Progress:       progress,
	}, nil
}

func patchTask(p *handler.FlagParser) (models.TaskPatch, error) {
	due, err := p.DatePtr("due")
	if err != nil {
		return models.TaskPatch{}, err
	}
	estimated, err := p.FloatPtr("estimated-hours")
	if err != nil {
		return models.TaskPatch{}, err
	}
	actual, err := p.FloatPtr("actual-hours")
	if err != nil {
		return models.TaskPatch{}, err
	}
	progress, err := p.IntPtr("progress")
	if err != nil {
		return models.TaskPatch{}, err
	}

	return models.TaskPatch{
		UserID:         p.StringPtr("user-id"),
		CreatedBy:      p.StringPtr("created-by"),
		TaskName:       p.StringPtr("name"),
		Description:    p.StringPtr("description"),
		DueDate:        due,
		Priority:       handler.EnumPtr[models.Priority](p, "priority"),
		Status:         handler.EnumPtr[models.TaskStatus](p, "status"),
		EstimatedHours: estimated,
		ActualHours:    actual,
		Tags:           p.StringsPtr("tag"),
		ProjectID:      p.StringPtr("project-id"),
		Progress:       progress,
	}, nil
}
