package tui

import (
	"strings"

	"clario/internal/model"

	"github.com/charmbracelet/lipgloss"
)

type planInfo struct {
	plan     model.Plan
	price    string
	features []string
}

func planInfos() []planInfo {
	return []planInfo{
		{plan: model.PlanStarter, price: "$0/mo", features: []string{"Up to 50 leads", "Basic pipeline", "1 user"}},
		{plan: model.PlanPro, price: "$29/mo", features: []string{"Unlimited leads", "Task automation", "5 users"}},
		{plan: model.PlanBusiness, price: "$99/mo", features: []string{"Everything in Pro", "Priority support", "Unlimited users"}},
	}
}

// renderBilling draws the three plan cards. Selecting a plan only swaps the
// stored label; there is no billing side effect.
func (m appModel) renderBilling(width, height int) string {
	infos := planInfos()
	cardW := width/len(infos) - 3
	if cardW < 20 {
		cardW = 20
	}

	cards := make([]string, 0, len(infos))
	for i, info := range infos {
		border := lipgloss.RoundedBorder()
		st := lipgloss.NewStyle().
			Border(border).
			BorderForeground(colorMuted).
			Width(cardW).
			Padding(0, 2)
		if i == m.billingSel {
			st = st.BorderForeground(colorAccent)
		}

		title := lipgloss.NewStyle().Bold(true).Render(info.plan.Label())
		if info.plan == m.db.Plan {
			title += styleMuted().Render("  (current)")
		}
		lines := []string{title, styleMuted().Render(info.price), ""}
		for _, f := range info.features {
			lines = append(lines, "• "+f)
		}
		cards = append(cards, st.Render(strings.Join(lines, "\n")))
	}

	row := cards[0]
	for i := 1; i < len(cards); i++ {
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, " ", cards[i])
	}

	help := styleMuted().Render("h/l: choose   enter: switch plan")
	return normalizePane(row+"\n\n"+help, width, height)
}
