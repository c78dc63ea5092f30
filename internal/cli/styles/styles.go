// Package styles renders the human-readable CLI output
package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/thenoetrevino/crewdesk/internal/config"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Due:"
	ValueStyle    lipgloss.Style // For field values
	HeaderStyle   lipgloss.Style // For table headers

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	GoodStyle    lipgloss.Style
	PendingStyle lipgloss.Style
	BadStyle     lipgloss.Style

	borderColor lipgloss.Color
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	borderColor = lipgloss.Color(colors.CardBorder)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(colors.Accent))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	GoodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Good))
	PendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Pending))
	BadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Bad))
}

// ============================================================================
// HELPER FUNCTIONS
// ============================================================================

// Status colors a status value by how settled it is
func Status(s string) string {
	switch s {
	case "completed", "approved", "active":
		return GoodStyle.Render(s)
	case "pending", "in_progress", "on_hold":
		return PendingStyle.Render(s)
	case "blocked", "rejected", "cancelled", "skipped":
		return BadStyle.Render(s)
	}
	return s
}

// Table writes rows under headers with a rounded border
func Table(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(w, t.Render())
}

// Fields writes a titled card of label/value pairs
func Fields(w io.Writer, title string, pairs [][2]string) {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p[0]))
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(title))
	for _, p := range pairs {
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", width+1, p[0]+":")))
		b.WriteString(" ")
		b.WriteString(ValueStyle.Render(p[1]))
	}
	fmt.Fprintln(w, CardStyle.Render(b.String()))
}

// Done writes a one line success message
func Done(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, SuccessStyle.Render("OK")+" "+fmt.Sprintf(format, args...))
}
