package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"clario/internal/model"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--dir", dir}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := run(t, dir, args...)
	if err != nil {
		t.Fatalf("clario %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	return v
}

func TestLeadsAddShowSetStage(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "leads", "add", "--name", "Jane Doe", "--company", "Acme", "--value", "1500", "--tags", "vip, hot")
	lead := decode[model.Lead](t, out)
	if lead.ID == "" || lead.Stage != model.StageNew {
		t.Fatalf("unexpected created lead: %+v", lead)
	}
	if lead.LastActivity != "Just now" {
		t.Fatalf("activity marker missing: %+v", lead)
	}
	if len(lead.Tags) != 2 || lead.Tags[0] != "vip" {
		t.Fatalf("tags not parsed: %v", lead.Tags)
	}

	out = mustRun(t, dir, "leads", "show", lead.ID)
	if got := decode[model.Lead](t, out); got.Company != "Acme" {
		t.Fatalf("show returned %+v", got)
	}

	out = mustRun(t, dir, "leads", "set-stage", lead.ID, "won")
	if got := decode[model.Lead](t, out); got.Stage != model.StageWon {
		t.Fatalf("set-stage returned %+v", got)
	}
}

func TestLeadsList_StageAndQueryFilters(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "leads", "list", "--stage", "new")
	leads := decode[[]model.Lead](t, out)
	if len(leads) != 2 {
		t.Fatalf("expected 2 seeded new leads, got %d", len(leads))
	}

	out = mustRun(t, dir, "leads", "list", "--query", "technova")
	leads = decode[[]model.Lead](t, out)
	if len(leads) != 1 || leads[0].Company != "TechNova" {
		t.Fatalf("query filter wrong: %+v", leads)
	}

	if _, err := run(t, dir, "leads", "list", "--stage", "bogus"); err == nil {
		t.Fatalf("invalid stage must error")
	}
}

func TestLeadsUpdate_OnlyChangedFlags(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "leads", "update", "lead-bob", "--value", "7000")
	got := decode[model.Lead](t, out)
	if got.Value != 7000 {
		t.Fatalf("value not updated: %+v", got)
	}
	if got.Name != "Bob Smith" || got.Stage != model.StageContacted {
		t.Fatalf("unchanged fields touched: %+v", got)
	}
}

func TestLeadsRm_UnknownIDErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "leads", "rm", "lead-nope")
	if err == nil {
		t.Fatalf("expected an error for unknown id")
	}
	if !strings.Contains(err.Error(), "lead not found") {
		t.Fatalf("unexpected error: %v", err)
	}
	// The collection is untouched.
	out := mustRun(t, dir, "leads", "list")
	if got := decode[[]model.Lead](t, out); len(got) != 7 {
		t.Fatalf("expected 7 leads, got %d", len(got))
	}
}

func TestTasksAdd_LinksAndValidates(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "tasks", "add", "--title", "Call Alice", "--due", "2026-09-10", "--lead", "lead-alice")
	task := decode[model.Task](t, out)
	if task.LeadID != "lead-alice" || task.LeadName != "Alice Freeman" {
		t.Fatalf("lead link wrong: %+v", task)
	}
	if task.Completed {
		t.Fatalf("new task must be open")
	}

	if _, err := run(t, dir, "tasks", "add", "--title", "x", "--lead", "lead-nope"); err == nil {
		t.Fatalf("unknown lead link must error")
	}
	if _, err := run(t, dir, "tasks", "add", "--title", "x", "--due", "tomorrow"); err == nil {
		t.Fatalf("bad due date must error")
	}
}

func TestTasksToggle_PersistsAcrossInvocations(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "tasks", "toggle", "task-review")
	if got := decode[model.Task](t, out); !got.Completed {
		t.Fatalf("toggle did not complete the task: %+v", got)
	}

	// A fresh process sees the persisted flag.
	out = mustRun(t, dir, "tasks", "list", "--open")
	for _, task := range decode[[]model.Task](t, out) {
		if task.ID == "task-review" {
			t.Fatalf("completed task still listed as open")
		}
	}
}

func TestPlanSet(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "plan", "set", "pro")
	got := decode[map[string]string](t, out)
	if got["plan"] != "pro" {
		t.Fatalf("plan set returned %v", got)
	}
	if _, err := run(t, dir, "plan", "set", "enterprise"); err == nil {
		t.Fatalf("invalid plan must error")
	}

	out = mustRun(t, dir, "plan", "show")
	if got := decode[map[string]string](t, out); got["plan"] != "pro" {
		t.Fatalf("plan did not persist: %v", got)
	}
}

func TestProfileSet_KeepsOtherNotificationFlag(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "profile", "set", "--notify-push=true")
	profile := decode[model.UserProfile](t, out)
	if !profile.Notifications.Push {
		t.Fatalf("push flag not applied: %+v", profile)
	}
	// The seeded email flag survives a push-only update.
	if !profile.Notifications.Email {
		t.Fatalf("email flag lost on partial update: %+v", profile)
	}
}

func TestExport_WritesYAML(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "export")
	for _, want := range []string{"leads:", "tasks:", "profile:", "plan: business"} {
		if !strings.Contains(out, want) {
			t.Fatalf("export missing %q:\n%s", want, out)
		}
	}
}

func TestFormatFlag_YAML(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "--format", "yaml", "plan", "show")
	if !strings.Contains(out, "plan: business") {
		t.Fatalf("yaml output wrong:\n%s", out)
	}
}
