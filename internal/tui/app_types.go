package tui

type screen int

const (
	screenLanding screen = iota
	screenApp
)

type tab int

const (
	tabDashboard tab = iota
	tabPipeline
	tabTasks
	tabLeads
	tabBilling
	tabSettings
)

func tabs() []tab {
	return []tab{tabDashboard, tabPipeline, tabTasks, tabLeads, tabBilling, tabSettings}
}

func (t tab) title() string {
	switch t {
	case tabDashboard:
		return "Dashboard"
	case tabPipeline:
		return "Pipeline"
	case tabTasks:
		return "Tasks"
	case tabLeads:
		return "Leads"
	case tabBilling:
		return "Billing"
	case tabSettings:
		return "Settings"
	default:
		return ""
	}
}

type modalKind int

const (
	modalNone modalKind = iota
	modalLead
	modalTask
	modalConfirmDeleteLead
	modalConfirmDeleteTask
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// leadModalFocus indexes the lead form fields in tab order.
type leadModalFocus int

const (
	leadFocusName leadModalFocus = iota
	leadFocusCompany
	leadFocusEmail
	leadFocusPhone
	leadFocusValue
	leadFocusStage
	leadFocusTags
	leadFocusSave
	leadFocusCancel
)

type taskModalFocus int

const (
	taskFocusTitle taskModalFocus = iota
	taskFocusDue
	taskFocusLead
	taskFocusSave
	taskFocusCancel
)

// settingsFocus indexes the settings form fields in tab order.
type settingsFocus int

const (
	settingsFocusName settingsFocus = iota
	settingsFocusEmail
	settingsFocusNotifyEmail
	settingsFocusNotifyPush
	settingsFocusTheme
	settingsFocusSave
)
