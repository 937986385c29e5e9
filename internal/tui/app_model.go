package tui

import (
	"clario/internal/model"
	"clario/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
)

type appModel struct {
	store store.Store
	db    *store.DB

	width  int
	height int

	screen screen
	tab    tab

	// Global search. The query is session-scoped and filters the leads table
	// and the pipeline board simultaneously; it is never persisted.
	searchInput textinput.Model
	searching   bool

	// Pipeline board selection + the grab/drop state machine. grabbedID is ""
	// when idle; grabbing while grabbed replaces it (last-writer-wins).
	boardSel  boardSelection
	grabbedID string

	tasksList list.Model
	leadsList list.Model

	billingSel int

	// Settings form (drafts; authoritative values live in db.Profile).
	settingsNameInput  textinput.Model
	settingsEmailInput textinput.Model
	notifyEmail        bool
	notifyPush         bool
	settingsTheme      string
	settingsFocus      settingsFocus
	settingsSaved      bool

	modal modalKind

	// Lead modal (create when editingLeadID is "", edit otherwise).
	leadModalFocus   leadModalFocus
	editingLeadID    string
	leadNameInput    textinput.Model
	leadCompanyInput textinput.Model
	leadEmailInput   textinput.Model
	leadPhoneInput   textinput.Model
	leadValueInput   textinput.Model
	leadTagsInput    textinput.Model
	leadStageIdx     int

	// Task modal.
	taskModalFocus taskModalFocus
	taskTitleInput textinput.Model
	taskDueInput   textinput.Model
	// taskLeadIdx cycles the optional lead link: 0 = none, i>0 = db.Leads[i-1].
	taskLeadIdx int

	confirmFocus    confirmModalFocus
	pendingDeleteID string

	landingCache string
}

func newAppModel(s store.Store, db *store.DB) appModel {
	m := appModel{
		store:  s,
		db:     db,
		screen: screenLanding,
		tab:    tabDashboard,
	}

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search leads, companies, tags…"
	m.searchInput.CharLimit = 120
	m.searchInput.Width = 32

	m.tasksList = newList("Tasks", []list.Item{})
	m.leadsList = newList("Leads", []list.Item{})

	newInput := func(placeholder string, width int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 200
		in.Width = width
		return in
	}

	m.leadNameInput = newInput("Contact name", 36)
	m.leadCompanyInput = newInput("Company", 36)
	m.leadEmailInput = newInput("Email (optional)", 36)
	m.leadPhoneInput = newInput("Phone (optional)", 36)
	m.leadValueInput = newInput("0", 14)
	m.leadTagsInput = newInput("Comma-separated tags", 36)

	m.taskTitleInput = newInput("Task title", 36)
	m.taskDueInput = newInput("YYYY-MM-DD", 14)

	m.settingsNameInput = newInput("Name", 36)
	m.settingsEmailInput = newInput("Email", 36)

	m.resetSettingsDrafts()
	m.syncSettingsFocus()
	m.refreshTasks()
	m.refreshLeads()
	return m
}

// query returns the active search query ("" when the search box is unused).
func (m appModel) query() string {
	return m.searchInput.Value()
}

func (m *appModel) refreshTasks() {
	curID := ""
	if it, ok := m.tasksList.SelectedItem().(taskItem); ok {
		curID = it.task.ID
	}
	items := make([]list.Item, 0, len(m.db.Tasks))
	for _, t := range m.db.Tasks {
		items = append(items, taskItem{task: t})
	}
	m.tasksList.SetItems(items)
	if curID != "" {
		selectTaskByID(&m.tasksList, curID)
	}
}

func (m *appModel) refreshLeads() {
	curID := ""
	if it, ok := m.leadsList.SelectedItem().(leadItem); ok {
		curID = it.lead.ID
	}
	leads := m.db.FilterLeads(m.query())
	items := make([]list.Item, 0, len(leads))
	for _, l := range leads {
		items = append(items, leadItem{lead: l})
	}
	m.leadsList.SetItems(items)
	if curID != "" {
		selectLeadByID(&m.leadsList, curID)
	}
}

// resetSettingsDrafts reloads the settings form from the profile snapshot,
// discarding unsaved edits.
func (m *appModel) resetSettingsDrafts() {
	m.settingsNameInput.SetValue(m.db.Profile.Name)
	m.settingsEmailInput.SetValue(m.db.Profile.Email)
	m.notifyEmail = m.db.Profile.Notifications.Email
	m.notifyPush = m.db.Profile.Notifications.Push
	m.settingsTheme = m.db.Profile.Theme
	m.settingsFocus = settingsFocusName
	m.settingsSaved = false
}

func (m *appModel) resizeLists() {
	w, h := m.contentSize()
	m.tasksList.SetSize(w, h-2)
	m.leadsList.SetSize(w, h-2)
}

// contentSize is the area right of the sidebar, below the header and above
// the footer.
func (m appModel) contentSize() (int, int) {
	w := m.width - sidebarWidth - 1
	if w < 40 {
		w = 40
	}
	h := m.height - 4
	if h < 8 {
		h = 8
	}
	return w, h
}

func (m *appModel) openLeadModal(editing *model.Lead) {
	m.modal = modalLead
	m.leadModalFocus = leadFocusName
	stages := model.Stages()
	if editing != nil {
		m.editingLeadID = editing.ID
		m.leadNameInput.SetValue(editing.Name)
		m.leadCompanyInput.SetValue(editing.Company)
		m.leadEmailInput.SetValue(editing.Email)
		m.leadPhoneInput.SetValue(editing.Phone)
		m.leadValueInput.SetValue(formatValueInput(editing.Value))
		m.leadTagsInput.SetValue(joinTags(editing.Tags))
		m.leadStageIdx = 0
		for i, st := range stages {
			if st == editing.Stage {
				m.leadStageIdx = i
				break
			}
		}
	} else {
		m.editingLeadID = ""
		m.leadNameInput.SetValue("")
		m.leadCompanyInput.SetValue("")
		m.leadEmailInput.SetValue("")
		m.leadPhoneInput.SetValue("")
		m.leadValueInput.SetValue("")
		m.leadTagsInput.SetValue("")
		m.leadStageIdx = 0
	}
	m.blurLeadModalInputs()
	m.leadNameInput.Focus()
}

func (m *appModel) openTaskModal() {
	m.modal = modalTask
	m.taskModalFocus = taskFocusTitle
	m.taskTitleInput.SetValue("")
	m.taskDueInput.SetValue("")
	m.taskLeadIdx = 0
	m.taskTitleInput.Blur()
	m.taskDueInput.Blur()
	m.taskTitleInput.Focus()
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.pendingDeleteID = ""
	m.editingLeadID = ""
	m.confirmFocus = confirmFocusConfirm
	m.blurLeadModalInputs()
	m.taskTitleInput.Blur()
	m.taskDueInput.Blur()
}

func (m *appModel) blurLeadModalInputs() {
	m.leadNameInput.Blur()
	m.leadCompanyInput.Blur()
	m.leadEmailInput.Blur()
	m.leadPhoneInput.Blur()
	m.leadValueInput.Blur()
	m.leadTagsInput.Blur()
}
