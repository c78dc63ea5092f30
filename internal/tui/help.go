package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/crewdesk/internal/config"
)

// docRenderer renders the help page markdown. Renderers are cached by width
// since building one is expensive.
type docRenderer struct {
	style string
	cache sync.Map // map[int]*glamour.TermRenderer
}

func newDocRenderer(colors config.ColorScheme) *docRenderer {
	style := "dark"
	if colors.Preset == "monochrome" {
		style = "notty"
	}
	return &docRenderer{style: style}
}

func (d *docRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := d.cache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(d.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	d.cache.Store(width, r)
	return r, nil
}

// Render returns md rendered for width, or md itself if glamour fails
func (d *docRenderer) Render(md string, width int) string {
	r, err := d.renderer(max(width, 20))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

// helpMarkdown is the Help tab: the chat assistant's sample questions and
// the key bindings
func helpMarkdown(chat config.ChatConfig, keys keyMap) string {
	var b strings.Builder
	b.WriteString("# crewdesk\n\n")

	title := chat.Title
	if title == "" {
		title = "the assistant"
	}
	fmt.Fprintf(&b, "## Ask %s\n\n", title)
	if chat.WebhookURL == "" {
		b.WriteString("The chat widget is not configured. Set `chat.webhook_url` to enable it.\n\n")
	} else {
		b.WriteString("The web dashboard's chat widget answers questions about this workspace.\n\n")
	}

	if len(chat.SampleQuestions) > 0 {
		b.WriteString("Questions you can ask:\n\n")
		for _, q := range chat.SampleQuestions {
			fmt.Fprintf(&b, "- %s\n", q)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Keys\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, group := range keys.FullHelp() {
		for _, k := range group {
			fmt.Fprintf(&b, "| `%s` | %s |\n", k.Help().Key, k.Help().Desc)
		}
	}
	return b.String()
}
