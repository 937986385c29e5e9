package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	_ "modernc.org/sqlite"
)

const dbFileName = "clario.sqlite"

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, dbFileName)
}

func (s Store) lockPath() string {
	return filepath.Join(s.Dir, "clario.lock")
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers (CLI and TUI can run side by side);
	// busy_timeout avoids "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSlices(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSlices(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS slices (
			slot              TEXT PRIMARY KEY,
			json              TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);
	`)
	return err
}

// Load reads the four slots independently. A missing or unparsable slot
// degrades to the built-in seed (leads/tasks) or default singleton
// (profile/plan); corrupt stored data is treated as absent, never an error.
func (s Store) Load() (*DB, error) {
	ctx := context.Background()
	conn, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	db := &DB{}

	if !loadSlot(ctx, conn, slotLeads, &db.Leads) {
		db.Leads = SeedLeads()
	}
	if !loadSlot(ctx, conn, slotTasks, &db.Tasks) {
		db.Tasks = SeedTasks()
	}
	if !loadSlot(ctx, conn, slotProfile, &db.Profile) {
		db.Profile = DefaultProfile()
	}
	if !loadSlot(ctx, conn, slotPlan, &db.Plan) {
		db.Plan = DefaultPlan()
	}
	return db, nil
}

func loadSlot(ctx context.Context, conn *sql.DB, slot string, out any) bool {
	var raw string
	err := conn.QueryRowContext(ctx, `SELECT json FROM slices WHERE slot = ?`, slot).Scan(&raw)
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

// saveSlice re-serializes exactly one slot. A file lock serializes writers
// across processes so a slot write always reflects a complete in-memory slice.
func (s Store) saveSlice(slot string, v any) error {
	if v == nil {
		return errors.New("nil slice value")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	ctx := context.Background()

	lk := flock.New(s.lockPath())
	if err := lk.Lock(); err != nil {
		return err
	}
	defer func() { _ = lk.Unlock() }()

	conn, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO slices(slot, json, updated_at_unixms) VALUES(?, ?, ?)`,
		slot, string(raw), time.Now().UTC().UnixMilli())
	return err
}

// Save persists all four slots.
func (s Store) Save(db *DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	if err := s.saveSlice(slotLeads, db.Leads); err != nil {
		return err
	}
	if err := s.saveSlice(slotTasks, db.Tasks); err != nil {
		return err
	}
	if err := s.saveSlice(slotProfile, db.Profile); err != nil {
		return err
	}
	return s.saveSlice(slotPlan, db.Plan)
}
