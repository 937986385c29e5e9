package tui

import (
	"strings"
	"time"

	"clario/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// submitTaskModal applies the form. A blank title silently blocks the submit,
// matching the lead modal; an unparsable due date defaults to today.
func (m *appModel) submitTaskModal() bool {
	title := strings.TrimSpace(m.taskTitleInput.Value())
	if title == "" {
		return false
	}

	due := strings.TrimSpace(m.taskDueInput.Value())
	if _, err := time.Parse("2006-01-02", due); err != nil {
		due = time.Now().Format("2006-01-02")
	}

	task := model.Task{Title: title, DueDate: due}
	if m.taskLeadIdx > 0 && m.taskLeadIdx <= len(m.db.Leads) {
		l := m.db.Leads[m.taskLeadIdx-1]
		task.LeadID = l.ID
		task.LeadName = l.Name
	}

	_, _ = m.store.AddTask(m.db, task)
	m.refreshTasks()
	m.closeModal()
	return true
}

func (m appModel) updateTaskModal(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "tab", "down":
		m.taskModalFocus = (m.taskModalFocus + 1) % (taskFocusCancel + 1)
		m.syncTaskModalFocus()
		return m, nil
	case "shift+tab", "up":
		if m.taskModalFocus == 0 {
			m.taskModalFocus = taskFocusCancel
		} else {
			m.taskModalFocus--
		}
		m.syncTaskModalFocus()
		return m, nil
	case "left", "right":
		if m.taskModalFocus == taskFocusLead {
			n := len(m.db.Leads) + 1
			if msg.String() == "right" {
				m.taskLeadIdx = (m.taskLeadIdx + 1) % n
			} else {
				m.taskLeadIdx = (m.taskLeadIdx - 1 + n) % n
			}
			return m, nil
		}
	case "enter":
		switch m.taskModalFocus {
		case taskFocusCancel:
			m.closeModal()
			return m, nil
		case taskFocusSave:
			m.submitTaskModal()
			return m, nil
		default:
			m.taskModalFocus++
			m.syncTaskModalFocus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.taskModalFocus {
	case taskFocusTitle:
		m.taskTitleInput, cmd = m.taskTitleInput.Update(msg)
	case taskFocusDue:
		m.taskDueInput, cmd = m.taskDueInput.Update(msg)
	}
	return m, cmd
}

func (m *appModel) syncTaskModalFocus() {
	m.taskTitleInput.Blur()
	m.taskDueInput.Blur()
	switch m.taskModalFocus {
	case taskFocusTitle:
		m.taskTitleInput.Focus()
	case taskFocusDue:
		m.taskDueInput.Focus()
	}
}

func (m appModel) renderTaskModal() string {
	field := func(label string, view string, focused bool) string {
		st := lipgloss.NewStyle()
		if focused {
			st = st.Bold(true).Foreground(colorAccent)
		}
		return st.Render(label) + " " + view
	}

	leadLabel := "(none)"
	if m.taskLeadIdx > 0 && m.taskLeadIdx <= len(m.db.Leads) {
		leadLabel = m.db.Leads[m.taskLeadIdx-1].Name
	}
	leadView := "◂ " + leadLabel + " ▸"
	if m.taskModalFocus == taskFocusLead {
		leadView = lipgloss.NewStyle().Bold(true).Render(leadView)
	}

	button := func(label string, focused bool) string {
		st := lipgloss.NewStyle().Padding(0, 1).Background(colorControlBg).Foreground(colorSurfaceFg)
		if focused {
			st = st.Background(colorSelectedBg).Foreground(colorSelectedFg).Bold(true)
		}
		return st.Render(label)
	}

	body := strings.Join([]string{
		field("Title*", m.taskTitleInput.View(), m.taskModalFocus == taskFocusTitle),
		field("Due   ", m.taskDueInput.View(), m.taskModalFocus == taskFocusDue),
		field("Lead  ", leadView, m.taskModalFocus == taskFocusLead),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			button("Save", m.taskModalFocus == taskFocusSave),
			" ",
			button("Cancel", m.taskModalFocus == taskFocusCancel)),
		"",
		styleMuted().Render("tab: next field   enter: save   esc: cancel"),
	}, "\n")

	return renderModalBox(m.width, "New Task", body)
}
