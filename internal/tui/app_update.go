package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.landingCache = renderLandingMarkdown(msg.Width)
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.screen == screenLanding {
			switch msg.String() {
			case "enter":
				m.screen = screenApp
				return m, nil
			case "q":
				return m, tea.Quit
			}
			return m, nil
		}

		switch m.modal {
		case modalLead:
			return m.updateLeadModal(msg)
		case modalTask:
			return m.updateTaskModal(msg)
		case modalConfirmDeleteLead, modalConfirmDeleteTask:
			return m.updateConfirmModal(msg)
		}

		if m.searching {
			return m.updateSearch(msg)
		}

		// A focused settings text field captures keys ahead of the global
		// hotkeys; esc still falls through as "back".
		if m.tab == tabSettings && m.settingsTypingFocus() && msg.String() != "esc" {
			return m.updateSettings(msg)
		}

		switch msg.String() {
		case "1":
			m.tab = tabDashboard
			return m, nil
		case "2":
			m.tab = tabPipeline
			return m, nil
		case "3":
			m.tab = tabTasks
			return m, nil
		case "4":
			m.tab = tabLeads
			return m, nil
		case "5":
			m.tab = tabBilling
			return m, nil
		case "6":
			m.tab = tabSettings
			m.syncSettingsFocus()
			return m, nil
		case "/":
			if m.tab == tabPipeline || m.tab == tabLeads {
				m.searching = true
				m.searchInput.Focus()
				return m, nil
			}
		case "esc":
			// ESC is "back": cancel a grab first, then log out to the landing
			// screen (a purely local toggle).
			if m.grabbedID != "" {
				m.grabbedID = ""
				return m, nil
			}
			m.screen = screenLanding
			return m, nil
		case "q":
			return m, tea.Quit
		}

		switch m.tab {
		case tabPipeline:
			return m.updatePipeline(msg)
		case tabTasks:
			return m.updateTasks(msg)
		case tabLeads:
			return m.updateLeads(msg)
		case tabBilling:
			return m.updateBilling(msg)
		case tabSettings:
			return m.updateSettings(msg)
		}
	}

	return m, nil
}

func (m appModel) updateSearch(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.searching = false
		m.refreshLeads()
		return m, nil
	case "enter":
		m.searchInput.Blur()
		m.searching = false
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// The query filters the leads table and the board simultaneously; the
	// board re-buckets on render, the list needs an explicit refresh.
	m.refreshLeads()
	m.boardSel.LeadID = ""
	return m, cmd
}

func (m appModel) updatePipeline(msg tea.KeyMsg) (appModel, tea.Cmd) {
	b := buildBoard(m.db, m.query())
	m.boardSel = b.clamp(m.boardSel)

	move := func(dCol, dItem int) {
		m.boardSel.Col += dCol
		m.boardSel.Item += dItem
		m.boardSel.LeadID = ""
		m.boardSel = b.clamp(m.boardSel)
	}

	switch msg.String() {
	case "h", "left":
		move(-1, 0)
		return m, nil
	case "l", "right":
		move(1, 0)
		return m, nil
	case "j", "down":
		if m.grabbedID == "" {
			move(0, 1)
		}
		return m, nil
	case "k", "up":
		if m.grabbedID == "" {
			move(0, -1)
		}
		return m, nil
	case "enter", " ":
		if m.grabbedID == "" {
			// idle -> grabbed(leadID). Grabbing while grabbed would simply
			// replace the tracked lead, but idle is the only way here.
			if l, ok := b.selectedLead(m.boardSel); ok {
				m.grabbedID = l.ID
			}
			return m, nil
		}
		// grabbed -> idle: drop on the selected column. Same stage is a no-op.
		target := b.cols[m.boardSel.Col].stage
		if l, ok := m.db.FindLead(m.grabbedID); ok && l.Stage != target {
			_ = m.store.UpdateLeadStage(m.db, m.grabbedID, target)
		}
		m.boardSel.LeadID = m.grabbedID
		m.grabbedID = ""
		m.refreshLeads()
		return m, nil
	case "n":
		m.openLeadModal(nil)
		return m, nil
	case "e":
		if l, ok := b.selectedLead(m.boardSel); ok {
			lead := l
			m.openLeadModal(&lead)
		}
		return m, nil
	case "x", "d":
		if l, ok := b.selectedLead(m.boardSel); ok {
			m.modal = modalConfirmDeleteLead
			m.pendingDeleteID = l.ID
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateTasks(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		if it, ok := m.tasksList.SelectedItem().(taskItem); ok {
			_ = m.store.ToggleTask(m.db, it.task.ID)
			m.refreshTasks()
		}
		return m, nil
	case "n":
		m.openTaskModal()
		return m, nil
	case "x", "d":
		if it, ok := m.tasksList.SelectedItem().(taskItem); ok {
			m.modal = modalConfirmDeleteTask
			m.pendingDeleteID = it.task.ID
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.tasksList, cmd = m.tasksList.Update(msg)
	return m, cmd
}

func (m appModel) updateLeads(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.openLeadModal(nil)
		return m, nil
	case "enter", "e":
		if it, ok := m.leadsList.SelectedItem().(leadItem); ok {
			lead := it.lead
			m.openLeadModal(&lead)
		}
		return m, nil
	case "x", "d":
		if it, ok := m.leadsList.SelectedItem().(leadItem); ok {
			m.modal = modalConfirmDeleteLead
			m.pendingDeleteID = it.lead.ID
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.leadsList, cmd = m.leadsList.Update(msg)
	return m, cmd
}

func (m appModel) updateBilling(msg tea.KeyMsg) (appModel, tea.Cmd) {
	n := len(planInfos())
	switch msg.String() {
	case "h", "left":
		m.billingSel = (m.billingSel - 1 + n) % n
		return m, nil
	case "l", "right", "tab":
		m.billingSel = (m.billingSel + 1) % n
		return m, nil
	case "enter", " ":
		_ = m.store.UpdatePlan(m.db, planInfos()[m.billingSel].plan)
		return m, nil
	}
	return m, nil
}

func (m appModel) updateConfirmModal(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.closeModal()
		return m, nil
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "y":
		m.confirmFocus = confirmFocusConfirm
		return m.applyConfirm()
	case "enter":
		if m.confirmFocus == confirmFocusCancel {
			m.closeModal()
			return m, nil
		}
		return m.applyConfirm()
	}
	return m, nil
}

func (m appModel) applyConfirm() (appModel, tea.Cmd) {
	switch m.modal {
	case modalConfirmDeleteLead:
		_ = m.store.DeleteLead(m.db, m.pendingDeleteID)
		m.refreshLeads()
	case modalConfirmDeleteTask:
		_ = m.store.DeleteTask(m.db, m.pendingDeleteID)
		m.refreshTasks()
	}
	m.closeModal()
	return m, nil
}
