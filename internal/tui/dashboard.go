package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDashboard draws the metric cards, the pipeline funnel, and the most
// recent leads. Everything here is a pure projection of the snapshot.
func (m appModel) renderDashboard(width, height int) string {
	metrics := m.db.Metrics()

	card := func(label, value string) string {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 2).
			Render(styleMuted().Render(label) + "\n" + lipgloss.NewStyle().Bold(true).Render(value))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Pipeline", formatMoney(metrics.TotalPipelineValue)), " ",
		card("New Leads", fmt.Sprintf("%d", metrics.NewLeads)), " ",
		card("Conversion Rate", fmt.Sprintf("%.1f%%", metrics.ConversionRate)), " ",
		card("Open Tasks", fmt.Sprintf("%d", metrics.OpenTasks)),
	)

	half := width/2 - 2
	if half < 36 {
		half = 36
	}
	charts := lipgloss.JoinHorizontal(lipgloss.Top,
		normalizePane(m.renderFunnel(half), half, 0), "  ", renderActivity(half))
	recent := m.renderRecentLeads(width)

	body := strings.Join([]string{cards, "", charts, "", recent}, "\n")
	return normalizePane(body, width, height)
}

type activityPoint struct {
	day   string
	count int
}

// weeklyActivity is a fixed demo series; there is no activity log to
// aggregate from yet.
func weeklyActivity() []activityPoint {
	return []activityPoint{
		{"Mon", 12}, {"Tue", 19}, {"Wed", 15}, {"Thu", 22},
		{"Fri", 28}, {"Sat", 5}, {"Sun", 2},
	}
}

// renderActivity draws one bar per weekday, scaled to the busiest day.
func renderActivity(width int) string {
	points := weeklyActivity()

	maxCount := 0
	for _, p := range points {
		if p.count > maxCount {
			maxCount = p.count
		}
	}

	barMax := width - 10
	if barMax < 10 {
		barMax = 10
	}

	title := lipgloss.NewStyle().Bold(true).Render("Activity Trends") +
		styleMuted().Render("  last 7 days")
	lines := []string{title}
	for _, p := range points {
		barLen := 0
		if maxCount > 0 {
			barLen = p.count * barMax / maxCount
		}
		if p.count > 0 && barLen == 0 {
			barLen = 1
		}
		bar := lipgloss.NewStyle().Foreground(colorAccent).Render(strings.Repeat("█", barLen))
		lines = append(lines, fmt.Sprintf("%-3s %s %d", p.day, bar, p.count))
	}
	return strings.Join(lines, "\n")
}

// renderFunnel draws one bar per stage, scaled to the largest bucket.
func (m appModel) renderFunnel(width int) string {
	buckets := m.db.StageBuckets("")

	maxCount := 0
	labelW := 0
	for _, b := range buckets {
		if b.Count() > maxCount {
			maxCount = b.Count()
		}
		if w := len(b.Stage.Label()); w > labelW {
			labelW = w
		}
	}

	barMax := width - labelW - 12
	if barMax < 10 {
		barMax = 10
	}

	lines := []string{lipgloss.NewStyle().Bold(true).Render("Pipeline Funnel")}
	for _, b := range buckets {
		barLen := 0
		if maxCount > 0 {
			barLen = b.Count() * barMax / maxCount
		}
		if b.Count() > 0 && barLen == 0 {
			barLen = 1
		}
		bar := lipgloss.NewStyle().Foreground(colorAccent).Render(strings.Repeat("█", barLen))
		lines = append(lines, fmt.Sprintf("%-*s %s %d", labelW, b.Stage.Label(), bar, b.Count()))
	}
	return strings.Join(lines, "\n")
}

func (m appModel) renderRecentLeads(width int) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render("Recent Leads")}
	n := 5
	if len(m.db.Leads) < n {
		n = len(m.db.Leads)
	}
	if n == 0 {
		lines = append(lines, styleMuted().Render("No leads yet. Press n on the Pipeline or Leads tab."))
	}
	for _, l := range m.db.Leads[:n] {
		row := fmt.Sprintf("%s — %s  %s  %s",
			l.Name, l.Company, formatMoney(l.Value), styleMuted().Render(l.LastActivity))
		lines = append(lines, truncateText(row, width))
	}
	return strings.Join(lines, "\n")
}
