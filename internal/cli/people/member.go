// Package people holds the member, admin, project manager and unified user
// commands
package people

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/cli/handler"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// MemberCmd returns the member parent command
func MemberCmd() *cobra.Command {
	return members.Command()
}

var members = handler.Resource[models.Member, models.NewMember, models.MemberPatch]{
	Use:    "member",
	Plural: "members",
	Title:  "Member",

	Service: func(c *cli.CLI) handler.Service[models.Member, models.NewMember, models.MemberPatch] {
		return c.App.MemberService
	},

	Flags:    memberFlags,
	Required: []string{"name", "email"},
	New:      newMember,
	Patch:    patchMember,

	Columns: []string{"ID", "Name", "Email", "Department", "Role", "Active"},
	Row: func(m *models.Member) []string {
		return []string{m.ID, m.Name, m.Email, cli.Deref(m.Department), string(m.Role), cli.YesNo(m.IsActive)}
	},
	Detail: func(m *models.Member) [][2]string {
		return [][2]string{
			{"Name", m.Name},
			{"Email", m.Email},
			{"Phone", cli.Deref(m.Phone)},
			{"Department", cli.Deref(m.Department)},
			{"Hire Date", cli.FormatDate(m.HireDate)},
			{"Role", string(m.Role)},
			{"Active", cli.YesNo(m.IsActive)},
			{"Avatar", cli.Deref(m.AvatarURL)},
			{"Auth User", cli.Deref(m.UserID)},
			{"Created", cli.FormatTime(&m.CreatedAt)},
		}
	},
}

func memberFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("department", "", "Department")
	cmd.Flags().String("hire-date", "", "Hire date (YYYY-MM-DD)")
	cmd.Flags().String("role", "", "Role: member, admin, project_manager")
	cmd.Flags().String("avatar-url", "", "Avatar URL")
	cmd.Flags().String("auth-user-id", "", "Linked auth user ID")
	cmd.Flags().Bool("active", true, "Whether the member is active")
}

func newMember(p *handler.FlagParser) (models.NewMember, error) {
	hired, err := p.ParseDate("hire-date")
	if err != nil {
		return models.NewMember{}, err
	}
	return models.NewMember{
		Name:       p.ParseStringOptional("name"),
		Email:      p.ParseStringOptional("email"),
		Phone:      p.StringPtr("phone"),
		Department: p.StringPtr("department"),
		HireDate:   hired,
		Role:       models.UserKind(p.ParseStringOptional("role")),
		AvatarURL:  p.StringPtr("avatar-url"),
		UserID:     p.StringPtr("auth-user-id"),
		IsActive:   p.BoolPtr("active"),
	}, nil
}

func patchMember(p *handler.FlagParser) (models.MemberPatch, error) {
	hired, err := p.DatePtr("hire-date")
	if err != nil {
		return models.MemberPatch{}, err
	}
	return models.MemberPatch{
		Name:       p.StringPtr("name"),
		Email:      p.StringPtr("email"),
		Phone:      p.StringPtr("phone"),
		Department: p.StringPtr("department"),
		HireDate:   hired,
		Role:       handler.EnumPtr[models.UserKind](p, "role"),
		AvatarURL:  p.StringPtr("avatar-url"),
		UserID:     p.StringPtr("auth-user-id"),
		IsActive:   p.BoolPtr("active"),
	}, nil
}
