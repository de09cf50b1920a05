// Package sqlitestore persists tracker snapshots in a SQLite database.
package sqlitestore

import (
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Tiliavir/timebox-tracker/internal/model"
	"github.com/Tiliavir/timebox-tracker/internal/storage"
)

// DataFileName is the name of the database inside the data directory.
const DataFileName = "timeboxes.db"

// Store implements tracking.Store on top of SQLite. Time boxes keep their
// stored order through the position column; the active one is flagged.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database in dir and applies the schema.
func Open(dir string) (*Store, error) {
	if err := storage.EnsureDir(dir); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, DataFileName)

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	slog.Debug("opened sqlite store", "path", path)
	return s, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS time_boxes (
			id       INTEGER PRIMARY KEY,
			position INTEGER NOT NULL,
			active   INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS notes (
			box_id      INTEGER NOT NULL REFERENCES time_boxes(id) ON DELETE CASCADE,
			seq         INTEGER NOT NULL,
			time        TEXT NOT NULL,
			description TEXT NOT NULL,
			PRIMARY KEY (box_id, seq)
		);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// Load reassembles the snapshot. Time boxes without notes are kept so that
// validation can reject them.
func (s *Store) Load() (model.Snapshot, error) {
	rows, err := s.db.Query(`SELECT id, active FROM time_boxes ORDER BY position`)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("storage error reading %s: %w", s.path, err)
	}

	type boxRow struct {
		id     int64
		active bool
	}
	var boxes []boxRow
	for rows.Next() {
		var b boxRow
		if err := rows.Scan(&b.id, &b.active); err != nil {
			rows.Close()
			return model.Snapshot{}, fmt.Errorf("storage error reading %s: %w", s.path, err)
		}
		boxes = append(boxes, b)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return model.Snapshot{}, fmt.Errorf("storage error reading %s: %w", s.path, err)
	}

	snap := model.Snapshot{Finished: []model.TimeBox{}}
	for _, b := range boxes {
		tb, err := s.loadNotes(b.id)
		if err != nil {
			return model.Snapshot{}, err
		}
		if b.active {
			snap.Active = &tb
			continue
		}
		snap.Finished = append(snap.Finished, tb)
	}
	return snap, nil
}

func (s *Store) loadNotes(boxID int64) (model.TimeBox, error) {
	rows, err := s.db.Query(`SELECT time, description FROM notes WHERE box_id = ? ORDER BY seq`, boxID)
	if err != nil {
		return model.TimeBox{}, fmt.Errorf("storage error reading notes of box %d: %w", boxID, err)
	}
	defer rows.Close()

	tb := model.TimeBox{Notes: []model.Note{}}
	for rows.Next() {
		var (
			raw string
			n   model.Note
		)
		if err := rows.Scan(&raw, &n.Description); err != nil {
			return model.TimeBox{}, fmt.Errorf("storage error reading notes of box %d: %w", boxID, err)
		}
		n.Time, err = time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return model.TimeBox{}, fmt.Errorf("corrupt note time %q in %s: %w", raw, s.path, err)
		}
		tb.Notes = append(tb.Notes, n)
	}
	return tb, rows.Err()
}

// Save replaces the stored snapshot inside a single transaction.
func (s *Store) Save(snap model.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage error writing %s: %w", s.path, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(`DELETE FROM notes`); err != nil {
		return fmt.Errorf("storage error clearing notes: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM time_boxes`); err != nil {
		return fmt.Errorf("storage error clearing time boxes: %w", err)
	}

	position := 0
	for _, tb := range snap.Finished {
		if err := insertBox(tx, tb, position, false); err != nil {
			return err
		}
		position++
	}
	if snap.Active != nil {
		if err := insertBox(tx, *snap.Active, position, true); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('saved_at', ?)`,
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("storage error writing meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage error committing %s: %w", s.path, err)
	}
	slog.Debug("saved sqlite store", "path", s.path, "finished", len(snap.Finished))
	return nil
}

func insertBox(tx *sql.Tx, tb model.TimeBox, position int, active bool) error {
	res, err := tx.Exec(`INSERT INTO time_boxes (position, active) VALUES (?, ?)`, position, active)
	if err != nil {
		return fmt.Errorf("storage error inserting time box: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("storage error inserting time box: %w", err)
	}
	for seq, n := range tb.Notes {
		if _, err := tx.Exec(`INSERT INTO notes (box_id, seq, time, description) VALUES (?, ?, ?, ?)`,
			id, seq, n.Time.UTC().Format(time.RFC3339Nano), n.Description); err != nil {
			return fmt.Errorf("storage error inserting note: %w", err)
		}
	}
	return nil
}

// Init marks a fresh database as initialized. It fails with
// storage.ErrAlreadyInitialized once the database has been saved to.
func (s *Store) Init() error {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM meta WHERE key = 'saved_at'`).Scan(&n); err != nil {
		return fmt.Errorf("storage error reading %s: %w", s.path, err)
	}
	if n > 0 {
		return fmt.Errorf("%w at %s", storage.ErrAlreadyInitialized, s.path)
	}
	return s.Save(model.Snapshot{})
}
