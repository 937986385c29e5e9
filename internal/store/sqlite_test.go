package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	"clario/internal/model"
)

func TestLoad_SeedsWhenEmpty(t *testing.T) {
	s := testStore(t)

	db, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(db.Leads) != 7 {
		t.Fatalf("expected 7 seed leads, got %d", len(db.Leads))
	}
	if len(db.Tasks) != 4 {
		t.Fatalf("expected 4 seed tasks, got %d", len(db.Tasks))
	}
	if db.Profile.Name != "Alex Morgan" {
		t.Fatalf("expected default profile, got %+v", db.Profile)
	}
	if db.Plan != model.PlanBusiness {
		t.Fatalf("expected default plan, got %q", db.Plan)
	}
}

func TestPersistReload_RoundTrip(t *testing.T) {
	s := testStore(t)

	db, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := s.AddLead(db, model.Lead{Name: "Jane", Company: "Acme", Value: 1500.5, Stage: model.StageQualified, Tags: []string{"VIP"}}); err != nil {
		t.Fatalf("AddLead: %v", err)
	}
	if _, err := s.AddTask(db, model.Task{Title: "Send contract", DueDate: "2026-09-15"}); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := s.ToggleTask(db, "task-review"); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	if err := s.UpdatePlan(db, model.PlanPro); err != nil {
		t.Fatalf("UpdatePlan: %v", err)
	}
	theme := "dark"
	if err := s.UpdateProfile(db, ProfilePatch{Theme: &theme}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(got.Leads, db.Leads) {
		t.Fatalf("leads did not survive reload:\n got %+v\nwant %+v", got.Leads, db.Leads)
	}
	if !reflect.DeepEqual(got.Tasks, db.Tasks) {
		t.Fatalf("tasks did not survive reload")
	}
	if !reflect.DeepEqual(got.Profile, db.Profile) {
		t.Fatalf("profile did not survive reload: %+v", got.Profile)
	}
	if got.Plan != model.PlanPro {
		t.Fatalf("plan did not survive reload: %q", got.Plan)
	}
}

func TestLoad_CorruptSlotFallsBackIndependently(t *testing.T) {
	s := testStore(t)

	db, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := s.AddTask(db, model.Task{Title: "Keep me", DueDate: "2026-09-20"}); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := s.Save(db); err != nil {
		t.Fatalf("Save: %v", err)
	}
	corruptSlot(t, s, slotLeads)

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load after corruption: %v", err)
	}
	if !reflect.DeepEqual(got.Leads, SeedLeads()) {
		t.Fatalf("corrupt leads slot must fall back to seed")
	}
	// The other slots are unaffected by the bad one.
	if got.Tasks[0].Title != "Keep me" {
		t.Fatalf("intact tasks slot was not preserved: %+v", got.Tasks)
	}
}

func corruptSlot(t *testing.T, s Store, slot string) {
	t.Helper()
	conn, err := sql.Open("sqlite", filepath.Join(s.Dir, dbFileName))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()
	_, err = conn.ExecContext(context.Background(),
		`UPDATE slices SET json = ? WHERE slot = ?`, "{not json", slot)
	if err != nil {
		t.Fatalf("corrupt slot: %v", err)
	}
}
