package tui

import (
	"strings"

	"clario/internal/model"
	"clario/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// saveSettings applies the form drafts through the store. The notifications
// pair is passed whole because the profile merge is shallow.
func (m *appModel) saveSettings() error {
	name := strings.TrimSpace(m.settingsNameInput.Value())
	email := strings.TrimSpace(m.settingsEmailInput.Value())
	notifications := model.Notifications{Email: m.notifyEmail, Push: m.notifyPush}
	theme := m.settingsTheme
	if theme != "light" && theme != "dark" {
		theme = "light"
	}
	err := m.store.UpdateProfile(m.db, store.ProfilePatch{
		Name:          &name,
		Email:         &email,
		Notifications: &notifications,
		Theme:         &theme,
	})
	if err == nil {
		m.settingsSaved = true
	}
	return err
}

// settingsTypingFocus reports whether a settings text field has focus.
func (m appModel) settingsTypingFocus() bool {
	return m.settingsFocus == settingsFocusName || m.settingsFocus == settingsFocusEmail
}

func (m appModel) updateSettings(msg tea.KeyMsg) (appModel, tea.Cmd) {
	typing := m.settingsTypingFocus()

	switch msg.String() {
	case "tab", "down":
		m.settingsFocus = (m.settingsFocus + 1) % (settingsFocusSave + 1)
		m.syncSettingsFocus()
		return m, nil
	case "shift+tab", "up":
		if m.settingsFocus == 0 {
			m.settingsFocus = settingsFocusSave
		} else {
			m.settingsFocus--
		}
		m.syncSettingsFocus()
		return m, nil
	case " ":
		if !typing {
			m.toggleSettingsField()
			return m, nil
		}
	case "enter":
		switch m.settingsFocus {
		case settingsFocusNotifyEmail, settingsFocusNotifyPush, settingsFocusTheme:
			m.toggleSettingsField()
			return m, nil
		case settingsFocusSave:
			_ = m.saveSettings()
			return m, nil
		default:
			m.settingsFocus++
			m.syncSettingsFocus()
			return m, nil
		}
	}

	if typing {
		var cmd tea.Cmd
		m.settingsSaved = false
		switch m.settingsFocus {
		case settingsFocusName:
			m.settingsNameInput, cmd = m.settingsNameInput.Update(msg)
		case settingsFocusEmail:
			m.settingsEmailInput, cmd = m.settingsEmailInput.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m *appModel) toggleSettingsField() {
	m.settingsSaved = false
	switch m.settingsFocus {
	case settingsFocusNotifyEmail:
		m.notifyEmail = !m.notifyEmail
	case settingsFocusNotifyPush:
		m.notifyPush = !m.notifyPush
	case settingsFocusTheme:
		// Dark theme is not functional yet; flipping is allowed but the value
		// snaps back to light on save elsewhere than "light"/"dark".
		if m.settingsTheme == "light" {
			m.settingsTheme = "dark"
		} else {
			m.settingsTheme = "light"
		}
	}
}

func (m *appModel) syncSettingsFocus() {
	m.settingsNameInput.Blur()
	m.settingsEmailInput.Blur()
	switch m.settingsFocus {
	case settingsFocusName:
		m.settingsNameInput.Focus()
	case settingsFocusEmail:
		m.settingsEmailInput.Focus()
	}
}

func (m appModel) renderSettings(width, height int) string {
	label := func(s string, focused bool) string {
		if focused {
			return lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("› " + s)
		}
		return "  " + s
	}
	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("Profile"),
		label("Name:  ", m.settingsFocus == settingsFocusName) + m.settingsNameInput.View(),
		label("Email: ", m.settingsFocus == settingsFocusEmail) + m.settingsEmailInput.View(),
		"",
		lipgloss.NewStyle().Bold(true).Render("Notifications"),
		label(check(m.notifyEmail)+" Email notifications", m.settingsFocus == settingsFocusNotifyEmail),
		label(check(m.notifyPush)+" Push notifications", m.settingsFocus == settingsFocusNotifyPush),
		"",
		lipgloss.NewStyle().Bold(true).Render("Appearance"),
		label("Theme: "+m.settingsTheme+" (only light is functional)", m.settingsFocus == settingsFocusTheme),
		"",
		label("[ Save ]", m.settingsFocus == settingsFocusSave),
	}
	if m.settingsSaved {
		lines = append(lines, "", styleMuted().Render("Saved."))
	}
	lines = append(lines, "", styleMuted().Render("tab: next field   space/enter: toggle   enter on Save: apply"))
	return normalizePane(strings.Join(lines, "\n"), width, height)
}
