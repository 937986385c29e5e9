package tui

import (
	"fmt"
	"strings"

	"clario/internal/model"
	"clario/internal/store"

	"github.com/charmbracelet/lipgloss"
)

type boardSelection struct {
	Col  int
	Item int
	// LeadID is the stable selected lead id (preferred over the Item index for
	// tracking focus across re-bucketing after a drop).
	LeadID string
}

type boardCol struct {
	stage model.Stage
	leads []model.Lead
	total float64
}

type board struct {
	cols []boardCol
}

func buildBoard(db *store.DB, query string) board {
	buckets := db.StageBuckets(query)
	cols := make([]boardCol, len(buckets))
	for i, b := range buckets {
		cols[i] = boardCol{stage: b.Stage, leads: b.Leads, total: b.TotalValue}
	}
	return board{cols: cols}
}

func (b board) indexOfLeadID(leadID string) (int, int, bool) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return 0, 0, false
	}
	for ci := range b.cols {
		for li := range b.cols[ci].leads {
			if b.cols[ci].leads[li].ID == leadID {
				return ci, li, true
			}
		}
	}
	return 0, 0, false
}

func (b board) clamp(sel boardSelection) boardSelection {
	if len(b.cols) == 0 {
		return boardSelection{Col: 0, Item: -1}
	}

	// Prefer stable selection by id when present.
	if ci, li, ok := b.indexOfLeadID(sel.LeadID); ok {
		sel.Col = ci
		sel.Item = li
	} else {
		sel.LeadID = ""
	}

	if sel.Col < 0 {
		sel.Col = 0
	}
	if sel.Col >= len(b.cols) {
		sel.Col = len(b.cols) - 1
	}

	n := len(b.cols[sel.Col].leads)
	if n == 0 {
		sel.Item = -1
		return sel
	}
	if sel.Item < 0 {
		sel.Item = 0
	}
	if sel.Item >= n {
		sel.Item = n - 1
	}
	sel.LeadID = b.cols[sel.Col].leads[sel.Item].ID
	return sel
}

func (b board) selectedLead(sel boardSelection) (model.Lead, bool) {
	sel = b.clamp(sel)
	if sel.Col < 0 || sel.Col >= len(b.cols) {
		return model.Lead{}, false
	}
	if sel.Item < 0 || sel.Item >= len(b.cols[sel.Col].leads) {
		return model.Lead{}, false
	}
	return b.cols[sel.Col].leads[sel.Item], true
}

// renderBoard draws the six stage columns. While a lead is grabbed, the
// selected column is the drop target and the grabbed card is marked.
func renderBoard(b board, sel boardSelection, grabbedID string, width, height int) string {
	n := len(b.cols)
	if n == 0 {
		return normalizePane("", width, height)
	}
	sel = b.clamp(sel)

	gap := 1
	avail := width - gap*(n-1)
	if avail < n {
		avail = n
	}
	colW := avail / n
	if colW < 12 {
		colW = 12
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Background(colorControlBg)
	headerSelectedStyle := lipgloss.NewStyle().Bold(true).Foreground(colorSelectedFg).Background(colorSelectedBg)
	grabTargetStyle := lipgloss.NewStyle().Bold(true).Foreground(colorAccentFg).Background(colorAccent)
	muted := styleMuted()

	itemStyle := lipgloss.NewStyle().Width(colW).Padding(0, 1)
	itemSelectedStyle := itemStyle.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	itemInnerW := colW - 2
	if itemInnerW < 1 {
		itemInnerW = 1
	}

	renderCard := func(l model.Lead, selected bool) string {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			name = "(unnamed)"
		}
		prefix := "  "
		if l.ID == grabbedID {
			prefix = "✦ "
		}
		lines := []string{
			lipgloss.NewStyle().Bold(true).Render(truncateText(prefix+name, itemInnerW)),
			truncateText("  "+l.Company, itemInnerW),
		}
		meta := formatMoney(l.Value)
		if len(l.Tags) > 0 {
			meta += "  " + strings.Join(l.Tags, " ")
		}
		metaStyle := lipgloss.NewStyle().Foreground(colorCardMetaFg)
		lines = append(lines, metaStyle.Render(truncateText("  "+meta, itemInnerW)))

		inner := normalizePane(strings.Join(lines, "\n"), itemInnerW, 0)
		if selected {
			return itemSelectedStyle.Render(inner)
		}
		return itemStyle.Render(inner)
	}

	renderCol := func(ci int, c boardCol) string {
		head := fmt.Sprintf("%s (%d) %s", c.stage.Label(), len(c.leads), formatMoney(c.total))
		head = truncateText(head, colW)
		hs := headerStyle
		if c.stage == model.StageWon {
			hs = hs.Foreground(colorWon)
		}
		if ci == sel.Col {
			hs = headerSelectedStyle
			if grabbedID != "" {
				hs = grabTargetStyle
			}
		}

		lines := []string{hs.Width(colW).Render(head)}
		if len(c.leads) == 0 {
			lines = append(lines, muted.Render(" (empty)"))
			return normalizePane(strings.Join(lines, "\n"), colW, height)
		}
		lines = append(lines, "")
		for li, l := range c.leads {
			card := renderCard(l, ci == sel.Col && li == sel.Item)
			lines = append(lines, strings.Split(card, "\n")...)
			if li < len(c.leads)-1 {
				sepW := colW - 2
				if sepW < 0 {
					sepW = 0
				}
				lines = append(lines, muted.Render(" "+strings.Repeat("─", sepW)+" "))
			}
		}
		return normalizePane(strings.Join(lines, "\n"), colW, height)
	}

	rendered := make([]string, 0, n)
	for i, c := range b.cols {
		rendered = append(rendered, renderCol(i, c))
	}

	out := rendered[0]
	sep := strings.Repeat(" ", gap)
	for i := 1; i < len(rendered); i++ {
		out = lipgloss.JoinHorizontal(lipgloss.Top, out, sep, rendered[i])
	}
	return normalizePane(out, width, height)
}
