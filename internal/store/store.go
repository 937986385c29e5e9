package store

import (
	"os"
	"path/filepath"
	"strings"

	"clario/internal/model"

	"github.com/google/uuid"
)

// Slot names for the four independently persisted slices.
const (
	slotLeads   = "leads"
	slotTasks   = "tasks"
	slotProfile = "profile"
	slotPlan    = "plan"
)

// DB is the in-memory snapshot of all persisted state. Views read it directly;
// all mutations go through Store methods so the touched slice is re-persisted.
type DB struct {
	Leads   []model.Lead      `json:"leads"`
	Tasks   []model.Task      `json:"tasks"`
	Profile model.UserProfile `json:"profile"`
	Plan    model.Plan        `json:"plan"`
}

type Store struct {
	Dir string
}

func DefaultDir() (string, error) {
	if d := strings.TrimSpace(os.Getenv("CLARIO_DIR")); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".clario"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

// NextID returns a fresh prefixed id ("lead-1b9d6bcd"). The suffix is the
// first uuid group, retried against the snapshot on the off chance it collides.
func (s Store) NextID(db *DB, prefix string) string {
	for {
		id := prefix + "-" + uuid.NewString()[:8]
		if !idExists(db, id) {
			return id
		}
	}
}

func idExists(db *DB, id string) bool {
	for i := range db.Leads {
		if db.Leads[i].ID == id {
			return true
		}
	}
	for i := range db.Tasks {
		if db.Tasks[i].ID == id {
			return true
		}
	}
	return false
}

func (db *DB) FindLead(id string) (*model.Lead, bool) {
	for i := range db.Leads {
		if db.Leads[i].ID == id {
			return &db.Leads[i], true
		}
	}
	return nil, false
}

func (db *DB) FindTask(id string) (*model.Task, bool) {
	for i := range db.Tasks {
		if db.Tasks[i].ID == id {
			return &db.Tasks[i], true
		}
	}
	return nil, false
}

// LeadPatch carries a partial lead update; nil fields are left untouched.
type LeadPatch struct {
	Name         *string
	Company      *string
	Value        *float64
	Stage        *model.Stage
	LastActivity *string
	Tags         *[]string
	Email        *string
	Phone        *string
}

// ProfilePatch is a shallow merge: Notifications, when set, replaces the whole
// nested struct. Callers toggling a single flag must pass the full pair.
type ProfilePatch struct {
	Name          *string
	Email         *string
	Notifications *model.Notifications
	Theme         *string
}

// AddLead assigns an id and the "Just now" activity marker and prepends the
// lead (most-recent-first ordering). The store does not validate name/company;
// the input boundary (modal/CLI) is expected to.
func (s Store) AddLead(db *DB, in model.Lead) (model.Lead, error) {
	in.ID = s.NextID(db, "lead")
	in.LastActivity = "Just now"
	db.Leads = append([]model.Lead{in}, db.Leads...)
	return in, s.saveSlice(slotLeads, db.Leads)
}

// UpdateLead merges the patch into the matching lead. An unknown id is a
// silent no-op; callers that want an error check existence first (the CLI
// does).
func (s Store) UpdateLead(db *DB, id string, patch LeadPatch) error {
	l, ok := db.FindLead(id)
	if !ok {
		return nil
	}
	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.Company != nil {
		l.Company = *patch.Company
	}
	if patch.Value != nil {
		l.Value = *patch.Value
	}
	if patch.Stage != nil {
		l.Stage = *patch.Stage
	}
	if patch.LastActivity != nil {
		l.LastActivity = *patch.LastActivity
	}
	if patch.Tags != nil {
		l.Tags = *patch.Tags
	}
	if patch.Email != nil {
		l.Email = *patch.Email
	}
	if patch.Phone != nil {
		l.Phone = *patch.Phone
	}
	return s.saveSlice(slotLeads, db.Leads)
}

// UpdateLeadStage is the stage-only convenience mutation the board uses on
// drop. Idempotent; unknown id is a silent no-op.
func (s Store) UpdateLeadStage(db *DB, id string, stage model.Stage) error {
	l, ok := db.FindLead(id)
	if !ok {
		return nil
	}
	l.Stage = stage
	return s.saveSlice(slotLeads, db.Leads)
}

// DeleteLead removes the lead. Tasks linking to it keep their cached lead name
// (no cascade; the link is display metadata only).
func (s Store) DeleteLead(db *DB, id string) error {
	out := db.Leads[:0]
	for _, l := range db.Leads {
		if l.ID != id {
			out = append(out, l)
		}
	}
	db.Leads = out
	return s.saveSlice(slotLeads, db.Leads)
}

func (s Store) AddTask(db *DB, in model.Task) (model.Task, error) {
	in.ID = s.NextID(db, "task")
	in.Completed = false
	db.Tasks = append([]model.Task{in}, db.Tasks...)
	return in, s.saveSlice(slotTasks, db.Tasks)
}

func (s Store) ToggleTask(db *DB, id string) error {
	t, ok := db.FindTask(id)
	if !ok {
		return nil
	}
	t.Completed = !t.Completed
	return s.saveSlice(slotTasks, db.Tasks)
}

func (s Store) DeleteTask(db *DB, id string) error {
	out := db.Tasks[:0]
	for _, t := range db.Tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	db.Tasks = out
	return s.saveSlice(slotTasks, db.Tasks)
}

func (s Store) UpdateProfile(db *DB, patch ProfilePatch) error {
	if patch.Name != nil {
		db.Profile.Name = *patch.Name
	}
	if patch.Email != nil {
		db.Profile.Email = *patch.Email
	}
	if patch.Notifications != nil {
		db.Profile.Notifications = *patch.Notifications
	}
	if patch.Theme != nil {
		db.Profile.Theme = *patch.Theme
	}
	return s.saveSlice(slotProfile, db.Profile)
}

func (s Store) UpdatePlan(db *DB, plan model.Plan) error {
	db.Plan = plan
	return s.saveSlice(slotPlan, db.Plan)
}
