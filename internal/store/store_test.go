package store

import (
	"reflect"
	"testing"

	"clario/internal/model"
)

func testStore(t *testing.T) Store {
	t.Helper()
	return Store{Dir: t.TempDir()}
}

func TestAddLead_AssignsIDAndActivityAndPrepends(t *testing.T) {
	s := testStore(t)
	db := &DB{}

	first, err := s.AddLead(db, model.Lead{Name: "Jane", Company: "Acme", Value: 1000, Stage: model.StageNew})
	if err != nil {
		t.Fatalf("AddLead: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if first.LastActivity != "Just now" {
		t.Fatalf("expected activity marker %q, got %q", "Just now", first.LastActivity)
	}

	second, err := s.AddLead(db, model.Lead{Name: "Ola", Company: "Norse", Value: 2000, Stage: model.StageContacted})
	if err != nil {
		t.Fatalf("AddLead: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("ids must be unique, both %q", first.ID)
	}

	if len(db.Leads) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(db.Leads))
	}
	if db.Leads[0].ID != second.ID {
		t.Fatalf("expected most-recent-first ordering, got %q first", db.Leads[0].ID)
	}
	l := db.Leads[1]
	if l.Name != "Jane" || l.Company != "Acme" || l.Value != 1000 || l.Stage != model.StageNew {
		t.Fatalf("lead fields not preserved: %+v", l)
	}
}

func TestDeleteLead_RemovesExactlyOne(t *testing.T) {
	s := testStore(t)
	db := &DB{Leads: SeedLeads()}

	before := append([]model.Lead{}, db.Leads...)
	if err := s.DeleteLead(db, "lead-charlie"); err != nil {
		t.Fatalf("DeleteLead: %v", err)
	}
	if len(db.Leads) != len(before)-1 {
		t.Fatalf("expected %d leads, got %d", len(before)-1, len(db.Leads))
	}
	// Relative order of survivors is unchanged.
	want := make([]model.Lead, 0, len(before)-1)
	for _, l := range before {
		if l.ID != "lead-charlie" {
			want = append(want, l)
		}
	}
	if !reflect.DeepEqual(db.Leads, want) {
		t.Fatalf("survivor order changed:\n got %+v\nwant %+v", db.Leads, want)
	}
}

func TestDeleteLead_UnknownIDLeavesCollectionUnchanged(t *testing.T) {
	s := testStore(t)
	db := &DB{Leads: SeedLeads()}
	want := append([]model.Lead{}, db.Leads...)

	if err := s.DeleteLead(db, "lead-nope"); err != nil {
		t.Fatalf("DeleteLead: %v", err)
	}
	if !reflect.DeepEqual(db.Leads, want) {
		t.Fatalf("collection changed on unknown id")
	}
}

func TestUpdateLeadStage_Idempotent(t *testing.T) {
	s := testStore(t)
	db := &DB{Leads: SeedLeads()}

	if err := s.UpdateLeadStage(db, "lead-alice", model.StageWon); err != nil {
		t.Fatalf("UpdateLeadStage: %v", err)
	}
	once := append([]model.Lead{}, db.Leads...)
	if err := s.UpdateLeadStage(db, "lead-alice", model.StageWon); err != nil {
		t.Fatalf("UpdateLeadStage: %v", err)
	}
	if !reflect.DeepEqual(db.Leads, once) {
		t.Fatalf("second application changed state")
	}
	if l, _ := db.FindLead("lead-alice"); l.Stage != model.StageWon {
		t.Fatalf("stage not applied, got %q", l.Stage)
	}
}

func TestUpdateLead_UnknownIDIsSilentNoop(t *testing.T) {
	s := testStore(t)
	db := &DB{Leads: SeedLeads()}
	want := append([]model.Lead{}, db.Leads...)

	name := "Ghost"
	if err := s.UpdateLead(db, "lead-nope", LeadPatch{Name: &name}); err != nil {
		t.Fatalf("expected silent no-op, got error %v", err)
	}
	if !reflect.DeepEqual(db.Leads, want) {
		t.Fatalf("collection changed on unknown id")
	}
}

func TestUpdateLead_MergesOnlyGivenFields(t *testing.T) {
	s := testStore(t)
	db := &DB{Leads: SeedLeads()}

	value := 9999.0
	email := "alice@technova.io"
	if err := s.UpdateLead(db, "lead-alice", LeadPatch{Value: &value, Email: &email}); err != nil {
		t.Fatalf("UpdateLead: %v", err)
	}
	l, _ := db.FindLead("lead-alice")
	if l.Value != 9999 || l.Email != "alice@technova.io" {
		t.Fatalf("patched fields missing: %+v", l)
	}
	if l.Name != "Alice Freeman" || l.Stage != model.StageNew {
		t.Fatalf("untouched fields changed: %+v", l)
	}
}

func TestToggleTask_TwiceRestoresOriginal(t *testing.T) {
	s := testStore(t)
	db := &DB{Tasks: SeedTasks()}

	orig, _ := db.FindTask("task-review")
	was := orig.Completed

	if err := s.ToggleTask(db, "task-review"); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	if got, _ := db.FindTask("task-review"); got.Completed == was {
		t.Fatalf("first toggle did not flip")
	}
	if err := s.ToggleTask(db, "task-review"); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	if got, _ := db.FindTask("task-review"); got.Completed != was {
		t.Fatalf("double toggle did not restore")
	}
}

func TestAddTask_DefaultsCompletedFalse(t *testing.T) {
	s := testStore(t)
	db := &DB{}

	task, err := s.AddTask(db, model.Task{Title: "Call Jane", DueDate: "2026-09-01", Completed: true})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if task.Completed {
		t.Fatalf("completed must default to false regardless of input")
	}
	if db.Tasks[0].ID != task.ID {
		t.Fatalf("expected prepend")
	}
}

func TestDeleteLead_DoesNotCascadeToTasks(t *testing.T) {
	s := testStore(t)
	db := &DB{Leads: SeedLeads(), Tasks: SeedTasks()}

	if err := s.DeleteLead(db, "lead-alice"); err != nil {
		t.Fatalf("DeleteLead: %v", err)
	}
	task, ok := db.FindTask("task-followup")
	if !ok {
		t.Fatalf("task referencing deleted lead must survive")
	}
	if task.LeadID != "lead-alice" || task.LeadName != "Alice Freeman" {
		t.Fatalf("orphaned link must keep its cached name, got %+v", task)
	}
}

func TestUpdateProfile_ShallowMergeReplacesNotificationsWhole(t *testing.T) {
	s := testStore(t)
	db := &DB{Profile: DefaultProfile()}

	// The merge is shallow: passing only {push:true} drops the prior email
	// value. Callers must reconstruct the full pair (the UI does).
	n := model.Notifications{Push: true}
	if err := s.UpdateProfile(db, ProfilePatch{Notifications: &n}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if db.Profile.Notifications.Email {
		t.Fatalf("notifications must be replaced whole, email still set")
	}
	if !db.Profile.Notifications.Push {
		t.Fatalf("push not applied")
	}
	if db.Profile.Name != "Alex Morgan" {
		t.Fatalf("untouched fields changed")
	}
}

func TestUpdatePlan_ReplacesOutright(t *testing.T) {
	s := testStore(t)
	db := &DB{Plan: DefaultPlan()}

	if err := s.UpdatePlan(db, model.PlanStarter); err != nil {
		t.Fatalf("UpdatePlan: %v", err)
	}
	if db.Plan != model.PlanStarter {
		t.Fatalf("plan not replaced, got %q", db.Plan)
	}
}

func TestNextID_Prefixed(t *testing.T) {
	s := testStore(t)
	db := &DB{}
	id := s.NextID(db, "lead")
	if len(id) != len("lead-")+8 || id[:5] != "lead-" {
		t.Fatalf("unexpected id shape: %q", id)
	}
}
