package cmd

import (
	"log/slog"
	"time"

	"github.com/Tiliavir/timebox-tracker/internal/config"
	"github.com/Tiliavir/timebox-tracker/internal/sqlitestore"
	"github.com/Tiliavir/timebox-tracker/internal/storage"
	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

// backendStore is what every storage backend provides.
type backendStore interface {
	tracking.Store
	Init() error
	Path() string
}

// dataDir resolves the data directory: --output, then the config, then the
// tbt home directory.
func dataDir() (string, error) {
	if outputDir != "" {
		return outputDir, nil
	}
	if cfg.Storage.Dir != "" {
		return cfg.Storage.Dir, nil
	}
	return storage.BaseDir()
}

// openStore opens the configured backend. The returned close function must be
// called when done.
func openStore() (backendStore, func(), error) {
	dir, err := dataDir()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Storage.Backend == config.BackendSQLite {
		s, err := sqlitestore.Open(dir)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := s.Close(); err != nil {
				slog.Warn("closing database failed", "path", s.Path(), "error", err)
			}
		}
		return s, closeFn, nil
	}
	s := storage.NewJSONFile(dir, cfg.Storage.JSONFormat != config.FormatCompact)
	return s, func() {}, nil
}

// withTracker loads the tracker, runs op and saves the result when op reports
// a change. Errors from op are returned untouched.
func withTracker(op func(t *tracking.Tracker) (bool, error)) error {
	started := time.Now()
	store, closeStore, err := openStore()
	if err != nil {
		return storageFailure(err)
	}
	defer closeStore()

	t, unsorted, err := tracking.Load(store)
	if err != nil {
		return storageFailure(err)
	}
	if unsorted != nil {
		slog.Warn("notes were out of order and have been sorted",
			"path", store.Path(), "first", unsorted.Note.Description, "at", unsorted.Note.Time)
	}
	slog.Debug("loaded time boxes", "path", store.Path())

	changed, err := op(t)
	if err != nil {
		return err
	}
	if changed {
		if err := tracking.Save(store, t); err != nil {
			return storageFailure(err)
		}
		slog.Debug("saved time boxes", "path", store.Path())
	}
	slog.Debug("finished", "took", time.Since(started))
	return nil
}
