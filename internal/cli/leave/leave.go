package leave

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/cli/handler"
	"github.com/thenoetrevino/crewdesk/internal/cli/styles"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// LeaveCmd returns the leave parent command
func LeaveCmd() *cobra.Command {
	return resource.Command()
}

var resource = handler.Resource[models.Leave, models.NewLeave, models.LeavePatch]{
	Use:    "leave",
	Plural: "leaves",
	Title:  "Leave",

	Service: func(c *cli.CLI) handler.Service[models.Leave, models.NewLeave, models.LeavePatch] {
		return c.App.LeaveService
	},

	Flags:    flags,
	Required: []string{"user-id", "type", "reason"},
	New:      newLeave,
	Patch:    patchLeave,

	Columns: []string{"ID", "User", "Type", "From", "To", "Half Day", "Status"},
	Row: func(l *models.Leave) []string {
		return []string{
			l.ID, l.UserID, string(l.LeaveType), cli.FormatDate(l.FromDate),
			cli.FormatDate(l.ToDate), cli.YesNo(l.IsHalfDay), styles.Status(string(l.Status)),
		}
	},
	Detail: func(l *models.Leave) [][2]string {
		return [][2]string{
			{"User", l.UserID},
			{"Type", string(l.LeaveType)},
			{"Reason", l.Reason},
			{"Status", styles.Status(string(l.Status))},
			{"Leave Date", cli.FormatDate(l.LeaveDate)},
			{"From", cli.FormatDate(l.FromDate)},
			{"To", cli.FormatDate(l.ToDate)},
			{"End", cli.FormatDate(l.EndDate)},
			{"Half Day", cli.YesNo(l.IsHalfDay)},
			{"Approved By", cli.Deref(l.ApprovedBy)},
			{"Approved At", cli.FormatTime(l.ApprovedAt)},
			{"Category", cli.Deref(l.Category)},
			{"Summary", cli.Deref(l.BriefDescription)},
			{"Notes", cli.Deref(l.Notes)},
			{"Created", cli.FormatTime(&l.CreatedAt)},
		}
	},
}

func flags(cmd *cobra.Command) {
	cmd.Flags().String("user-id", "", "Member ID taking the leave")
	cmd.Flags().String("type", "", "Leave type: sick, casual, paid, maternity, paternity, emergency, vacation")
	cmd.Flags().String("reason", "", "Reason")
	cmd.Flags().String("status", "", "Status: pending, approved, rejected, cancelled")
	cmd.Flags().String("date", "", "Single leave date (YYYY-MM-DD)")
	cmd.Flags().String("from", "", "First day (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Last day (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Bool("half-day", false, "Half day leave")
	cmd.Flags().String("approved-by", "", "Approver ID")
	cmd.Flags().String("notes", "", "Notes")
	cmd.Flags().String("category", "", "Category")
	cmd.Flags().String("summary", "", "Brief description")
}

type dates struct {
	leave, from, to, end *models.Date
}

func parseDates(p *handler.FlagParser) (dates, error) {
	var d dates
	for _, f := range []struct {
		flag string
		dst  **models.Date
	}{{"date", &d.leave}, {"from", &d.from}, {"to", &d.to}, {"end", &d.end}} {
		v, err := p.DatePtr(f.flag)
		if err != nil {
			return dates{}, err
		}
		*f.dst = v
	}
	return d, nil
}

func orZero(d *models.Date) models.Date {
	if d == nil {
		return models.Date{}
	}
	return *d
}

func newLeave(p *handler.FlagParser) (models.NewLeave, error) {
	d, err := parseDates(p)
	if err != nil {
		return models.NewLeave{}, err
	}
	return models.NewLeave{
		UserID:           p.ParseStringOptional("user-id"),
		LeaveType:        models.LeaveType(p.ParseStringOptional("type")),
		Reason:           p.ParseStringOptional("reason"),
		Status:           models.LeaveStatus(p.ParseStringOptional("status")),
		LeaveDate:        orZero(d.leave),
		FromDate:         orZero(d.from),
		ToDate:           orZero(d.to),
		EndDate:          orZero(d.end),
		IsHalfDay:        p.ParseBool("half-day"),
		ApprovedBy:       p.StringPtr("approved-by"),
		Notes:            p.StringPtr("notes"),
		Category:         p.StringPtr("category"),
		BriefDescription: p.StringPtr("summary"),
	}, nil
}

func patchLeave(p *handler.FlagParser) (models.LeavePatch, error) {
	d, err := parseDates(p)
	if err != nil {
		return models.LeavePatch{}, err
	}
	return models.LeavePatch{
		UserID:           p.StringPtr("user-id"),
		LeaveType:        handler.EnumPtr[models.LeaveType](p, "type"),
		Reason:           p.StringPtr("reason"),
		Status:           handler.EnumPtr[models.LeaveStatus](p, "status"),
		LeaveDate:        d.leave,
		FromDate:         d.from,
		ToDate:           d.to,
		EndDate:          d.end,
		IsHalfDay:        p.BoolPtr("half-day"),
		ApprovedBy:       p.StringPtr("approved-by"),
		Notes:            p.StringPtr("notes"),
		Category:         p.StringPtr("category"),
		BriefDescription: p.StringPtr("summary"),
	}, nil
}
