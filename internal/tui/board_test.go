package tui

import (
	"strings"
	"testing"

	"clario/internal/model"
	"clario/internal/store"
)

func seededDB() *store.DB {
	return &store.DB{
		Leads:   store.SeedLeads(),
		Tasks:   store.SeedTasks(),
		Profile: store.DefaultProfile(),
		Plan:    store.DefaultPlan(),
	}
}

func TestBuildBoard_OneColumnPerStage(t *testing.T) {
	b := buildBoard(seededDB(), "")
	if len(b.cols) != len(model.Stages()) {
		t.Fatalf("expected %d columns, got %d", len(model.Stages()), len(b.cols))
	}
	if b.cols[0].stage != model.StageNew || len(b.cols[0].leads) != 2 {
		t.Fatalf("new column wrong: %+v", b.cols[0])
	}
	if b.cols[5].stage != model.StageWon || b.cols[5].total != 45000 {
		t.Fatalf("won column wrong: %+v", b.cols[5])
	}
}

func TestBuildBoard_QueryFilters(t *testing.T) {
	b := buildBoard(seededDB(), "technova")
	count := 0
	for _, c := range b.cols {
		count += len(c.leads)
	}
	if count != 1 {
		t.Fatalf("expected 1 lead on filtered board, got %d", count)
	}
}

func TestClamp_TracksSelectionByLeadID(t *testing.T) {
	b := buildBoard(seededDB(), "")
	sel := b.clamp(boardSelection{LeadID: "lead-charlie"})
	if sel.Col != 2 || sel.Item != 0 {
		t.Fatalf("expected (2,0) for lead-charlie, got (%d,%d)", sel.Col, sel.Item)
	}
	if sel.LeadID != "lead-charlie" {
		t.Fatalf("stable id dropped: %q", sel.LeadID)
	}
}

func TestClamp_IndexOverridesWhenIDGone(t *testing.T) {
	b := buildBoard(seededDB(), "")
	sel := b.clamp(boardSelection{Col: 99, Item: 99, LeadID: "lead-gone"})
	if sel.Col != len(b.cols)-1 {
		t.Fatalf("col not clamped: %d", sel.Col)
	}
	if sel.Item != len(b.cols[sel.Col].leads)-1 {
		t.Fatalf("item not clamped: %d", sel.Item)
	}
	if sel.LeadID == "lead-gone" {
		t.Fatalf("stale id must be replaced")
	}
}

func TestClamp_EmptyColumnHasNoSelection(t *testing.T) {
	b := buildBoard(seededDB(), "no such lead")
	sel := b.clamp(boardSelection{Col: 0, Item: 0})
	if sel.Item != -1 {
		t.Fatalf("empty column selection must be -1, got %d", sel.Item)
	}
	if _, ok := b.selectedLead(sel); ok {
		t.Fatalf("selectedLead must report none on an empty column")
	}
}

func TestRenderBoard_HeadersAndCards(t *testing.T) {
	db := seededDB()
	b := buildBoard(db, "")
	out := renderBoard(b, boardSelection{}, "", 200, 24)

	for _, want := range []string{"New Lead (2)", "Contacted (1)", "Closed Won (1)", "Alice Freeman", "George Miller"} {
		if !strings.Contains(out, want) {
			t.Errorf("board output missing %q", want)
		}
	}
}

func TestRenderBoard_MarksGrabbedCard(t *testing.T) {
	db := seededDB()
	b := buildBoard(db, "")
	out := renderBoard(b, boardSelection{LeadID: "lead-alice"}, "lead-alice", 200, 24)
	if !strings.Contains(out, "✦ Alice Freeman") {
		t.Fatalf("grabbed card not marked")
	}
}

func TestRenderBoard_EmptyColumnPlaceholder(t *testing.T) {
	db := &store.DB{Leads: []model.Lead{{ID: "l1", Name: "Only", Company: "One", Stage: model.StageNew}}}
	out := renderBoard(buildBoard(db, ""), boardSelection{}, "", 200, 24)
	if !strings.Contains(out, "(empty)") {
		t.Fatalf("expected empty-column placeholder")
	}
}
