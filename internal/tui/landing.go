package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const landingMarkdown = `# Clario

**The CRM that stays on your machine.**

- Drag-and-drop sales pipeline
- Tasks linked to your leads
- Dashboard metrics at a glance
- Everything stored locally — no account, no sync, no server
`

// renderLandingMarkdown renders the welcome copy once per resize; the result
// is cached on the model (glamour is too slow to run per frame).
func renderLandingMarkdown(width int) string {
	w := width - 8
	if w < 40 {
		w = 40
	}
	if w > 72 {
		w = 72
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(w),
	)
	if err != nil {
		return landingMarkdown
	}
	out, err := r.Render(landingMarkdown)
	if err != nil {
		return landingMarkdown
	}
	return out
}

// renderLanding shows the markdown welcome screen. Entering the app and
// logging out are purely local toggles; no session state is persisted.
func (m appModel) renderLanding() string {
	md := m.landingCache
	if md == "" {
		md = landingMarkdown
	}

	prompt := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("enter: open Clario") +
		styleMuted().Render("   q: quit")

	body := strings.TrimRight(md, "\n") + "\n\n" + prompt
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
