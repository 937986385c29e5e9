package tui

import (
	"strconv"
	"strings"

	"clario/internal/model"
	"clario/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func formatValueInput(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// submitLeadModal applies the form. Blank name or company silently blocks the
// submit (the modal stays open, no error message); everything else degrades
// to a default instead of failing.
func (m *appModel) submitLeadModal() bool {
	name := strings.TrimSpace(m.leadNameInput.Value())
	company := strings.TrimSpace(m.leadCompanyInput.Value())
	if name == "" || company == "" {
		return false
	}

	value := model.ParseValue(m.leadValueInput.Value())
	tags := model.ParseTags(m.leadTagsInput.Value())
	stage := model.Stages()[m.leadStageIdx]
	email := strings.TrimSpace(m.leadEmailInput.Value())
	phone := strings.TrimSpace(m.leadPhoneInput.Value())

	if m.editingLeadID != "" {
		_ = m.store.UpdateLead(m.db, m.editingLeadID, store.LeadPatch{
			Name:    &name,
			Company: &company,
			Value:   &value,
			Stage:   &stage,
			Tags:    &tags,
			Email:   &email,
			Phone:   &phone,
		})
	} else {
		_, _ = m.store.AddLead(m.db, model.Lead{
			Name:    name,
			Company: company,
			Value:   value,
			Stage:   stage,
			Tags:    tags,
			Email:   email,
			Phone:   phone,
		})
	}

	m.refreshLeads()
	m.closeModal()
	return true
}

func (m appModel) updateLeadModal(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "tab", "down":
		m.leadModalFocus = (m.leadModalFocus + 1) % (leadFocusCancel + 1)
		m.syncLeadModalFocus()
		return m, nil
	case "shift+tab", "up":
		if m.leadModalFocus == 0 {
			m.leadModalFocus = leadFocusCancel
		} else {
			m.leadModalFocus--
		}
		m.syncLeadModalFocus()
		return m, nil
	case "left", "right":
		if m.leadModalFocus == leadFocusStage {
			n := len(model.Stages())
			if msg.String() == "right" {
				m.leadStageIdx = (m.leadStageIdx + 1) % n
			} else {
				m.leadStageIdx = (m.leadStageIdx - 1 + n) % n
			}
			return m, nil
		}
	case "enter":
		switch m.leadModalFocus {
		case leadFocusCancel:
			m.closeModal()
			return m, nil
		case leadFocusSave:
			m.submitLeadModal()
			return m, nil
		case leadFocusStage:
			m.leadModalFocus++
			m.syncLeadModalFocus()
			return m, nil
		default:
			m.leadModalFocus++
			m.syncLeadModalFocus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.leadModalFocus {
	case leadFocusName:
		m.leadNameInput, cmd = m.leadNameInput.Update(msg)
	case leadFocusCompany:
		m.leadCompanyInput, cmd = m.leadCompanyInput.Update(msg)
	case leadFocusEmail:
		m.leadEmailInput, cmd = m.leadEmailInput.Update(msg)
	case leadFocusPhone:
		m.leadPhoneInput, cmd = m.leadPhoneInput.Update(msg)
	case leadFocusValue:
		m.leadValueInput, cmd = m.leadValueInput.Update(msg)
	case leadFocusTags:
		m.leadTagsInput, cmd = m.leadTagsInput.Update(msg)
	}
	return m, cmd
}

func (m *appModel) syncLeadModalFocus() {
	m.blurLeadModalInputs()
	switch m.leadModalFocus {
	case leadFocusName:
		m.leadNameInput.Focus()
	case leadFocusCompany:
		m.leadCompanyInput.Focus()
	case leadFocusEmail:
		m.leadEmailInput.Focus()
	case leadFocusPhone:
		m.leadPhoneInput.Focus()
	case leadFocusValue:
		m.leadValueInput.Focus()
	case leadFocusTags:
		m.leadTagsInput.Focus()
	}
}

func (m appModel) renderLeadModal() string {
	title := "New Lead"
	if m.editingLeadID != "" {
		title = "Edit Lead"
	}

	field := func(label string, view string, focused bool) string {
		st := lipgloss.NewStyle()
		if focused {
			st = st.Bold(true).Foreground(colorAccent)
		}
		return st.Render(label) + " " + view
	}

	stage := model.Stages()[m.leadStageIdx]
	stageView := "◂ " + stage.Label() + " ▸"
	if m.leadModalFocus == leadFocusStage {
		stageView = lipgloss.NewStyle().Bold(true).Render(stageView)
	}

	button := func(label string, focused bool) string {
		st := lipgloss.NewStyle().Padding(0, 1).Background(colorControlBg).Foreground(colorSurfaceFg)
		if focused {
			st = st.Background(colorSelectedBg).Foreground(colorSelectedFg).Bold(true)
		}
		return st.Render(label)
	}

	body := strings.Join([]string{
		field("Name*   ", m.leadNameInput.View(), m.leadModalFocus == leadFocusName),
		field("Company*", m.leadCompanyInput.View(), m.leadModalFocus == leadFocusCompany),
		field("Email   ", m.leadEmailInput.View(), m.leadModalFocus == leadFocusEmail),
		field("Phone   ", m.leadPhoneInput.View(), m.leadModalFocus == leadFocusPhone),
		field("Value   ", m.leadValueInput.View(), m.leadModalFocus == leadFocusValue),
		field("Stage   ", stageView, m.leadModalFocus == leadFocusStage),
		field("Tags    ", m.leadTagsInput.View(), m.leadModalFocus == leadFocusTags),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			button("Save", m.leadModalFocus == leadFocusSave),
			" ",
			button("Cancel", m.leadModalFocus == leadFocusCancel)),
		"",
		styleMuted().Render("tab: next field   enter: save   esc: cancel"),
	}, "\n")

	return renderModalBox(m.width, title, body)
}
