package tui

import (
	"fmt"
	"strings"
	"time"

	"clario/internal/model"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string { return i.task.Title }

func (i taskItem) Title() string {
	box := "[ ]"
	if i.task.Completed {
		box = "[x]"
	}
	title := strings.TrimSpace(i.task.Title)
	if title == "" {
		title = "(untitled)"
	}
	if i.task.Completed {
		return box + " " + styleMuted().Strikethrough(true).Render(title)
	}
	return box + " " + title
}

func (i taskItem) Description() string {
	parts := make([]string, 0, 2)
	if due := strings.TrimSpace(i.task.DueDate); due != "" {
		parts = append(parts, formatDueLabel(due, i.task.Completed))
	}
	if i.task.LeadName != "" {
		parts = append(parts, "· "+i.task.LeadName)
	}
	return strings.Join(parts, " ")
}

// formatDueLabel renders a due date with a relative hint; overdue open tasks
// are called out.
func formatDueLabel(due string, completed bool) string {
	d, err := time.Parse("2006-01-02", due)
	if err != nil {
		return "due " + due
	}
	today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	switch {
	case d.Equal(today):
		return "due today"
	case d.Before(today) && !completed:
		return lipgloss.NewStyle().Foreground(colorOverdue).Render("overdue") + " · " + due
	case d.Equal(today.AddDate(0, 0, 1)):
		return "due tomorrow"
	default:
		return "due " + due
	}
}

type leadItem struct {
	lead model.Lead
}

func (i leadItem) FilterValue() string {
	return i.lead.Name + " " + i.lead.Company + " " + strings.Join(i.lead.Tags, " ")
}

func (i leadItem) Title() string {
	name := strings.TrimSpace(i.lead.Name)
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("%s — %s", name, i.lead.Company)
}

func (i leadItem) Description() string {
	parts := []string{
		formatMoney(i.lead.Value),
		i.lead.Stage.Label(),
	}
	if len(i.lead.Tags) > 0 {
		parts = append(parts, strings.Join(i.lead.Tags, ", "))
	}
	if i.lead.LastActivity != "" {
		parts = append(parts, i.lead.LastActivity)
	}
	return strings.Join(parts, " · ")
}

func formatMoney(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("$%s", groupThousands(int64(v)))
	}
	return fmt.Sprintf("$%.2f", v)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	// We render our own header/footer chrome, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	// Filtering is handled by the global search box, not the list.
	l.SetFilteringEnabled(false)
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("ctrl+c")
	return l
}

func selectTaskByID(l *list.Model, id string) {
	for i, it := range l.Items() {
		if t, ok := it.(taskItem); ok && t.task.ID == id {
			l.Select(i)
			return
		}
	}
}

func selectLeadByID(l *list.Model, id string) {
	for i, it := range l.Items() {
		if t, ok := it.(leadItem); ok && t.lead.ID == id {
			l.Select(i)
			return
		}
	}
}
