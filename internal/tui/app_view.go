package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 18

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.screen == screenLanding {
		return m.renderLanding()
	}

	switch m.modal {
	case modalLead:
		return m.placeCentered(m.renderLeadModal())
	case modalTask:
		return m.placeCentered(m.renderTaskModal())
	case modalConfirmDeleteLead:
		return m.placeCentered(renderConfirmModal(m.width, "Delete lead",
			"Delete this lead? Tasks linking to it keep their cached name.",
			"Delete", "Cancel", m.confirmFocus))
	case modalConfirmDeleteTask:
		return m.placeCentered(renderConfirmModal(m.width, "Delete task",
			"Delete this task?",
			"Delete", "Cancel", m.confirmFocus))
	}

	sidebar := m.renderSidebar()
	right := strings.Join([]string{
		m.renderHeader(),
		m.renderContent(),
		m.renderFooter(),
	}, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", right)
}

func (m appModel) renderSidebar() string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(" Clario"),
		"",
	}
	for i, t := range tabs() {
		row := fmt.Sprintf(" %d %s", i+1, t.title())
		if t == m.tab {
			row = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSelectedFg).
				Background(colorSelectedBg).
				Width(sidebarWidth).
				Render(row)
		}
		lines = append(lines, row)
	}

	lines = append(lines, "", styleMuted().Render(" "+m.db.Plan.Label()+" plan"))
	lines = append(lines, styleMuted().Render(" "+m.db.Profile.Name))
	lines = append(lines, "", styleMuted().Render(" esc: log out"))

	return normalizePane(strings.Join(lines, "\n"), sidebarWidth, m.height)
}

func (m appModel) renderHeader() string {
	w, _ := m.contentSize()
	title := lipgloss.NewStyle().Bold(true).Render(m.tab.title())

	search := ""
	if m.searching {
		search = "/" + m.searchInput.View()
	} else if q := strings.TrimSpace(m.query()); q != "" {
		search = styleMuted().Render("filter: " + q)
	}

	left := title
	if search != "" {
		left += "   " + search
	}
	return normalizePane(left, w, 1)
}

func (m appModel) renderContent() string {
	w, h := m.contentSize()
	switch m.tab {
	case tabDashboard:
		return m.renderDashboard(w, h)
	case tabPipeline:
		b := buildBoard(m.db, m.query())
		return renderBoard(b, m.boardSel, m.grabbedID, w, h)
	case tabTasks:
		return normalizePane(m.tasksList.View(), w, h)
	case tabLeads:
		if len(m.leadsList.Items()) == 0 {
			msg := "No leads match."
			if strings.TrimSpace(m.query()) == "" {
				msg = "No leads yet. Press n to add one."
			}
			return normalizePane(styleMuted().Render(msg), w, h)
		}
		return normalizePane(m.leadsList.View(), w, h)
	case tabBilling:
		return m.renderBilling(w, h)
	case tabSettings:
		return m.renderSettings(w, h)
	default:
		return normalizePane("", w, h)
	}
}

func (m appModel) renderFooter() string {
	w, _ := m.contentSize()
	var help string
	switch m.tab {
	case tabPipeline:
		if m.grabbedID != "" {
			help = "h/l: move to column   enter: drop   esc: cancel"
		} else {
			help = "h/j/k/l: navigate   enter: grab   n: new   e: edit   x: delete   /: search"
		}
	case tabTasks:
		help = "j/k: navigate   enter: toggle   n: new   x: delete"
	case tabLeads:
		help = "j/k: navigate   enter: edit   n: new   x: delete   /: search"
	case tabBilling:
		help = "h/l: choose   enter: switch plan"
	case tabSettings:
		help = "tab: next field   enter on Save: apply"
	default:
		help = "1-6: tabs   q: quit"
	}
	return normalizePane(styleMuted().Render(help), w, 1)
}
