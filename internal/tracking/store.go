package tracking

import "github.com/Tiliavir/timebox-tracker/internal/model"

// Store loads and saves tracker snapshots. Load on a store that has never
// been saved returns an empty snapshot.
type Store interface {
	Load() (model.Snapshot, error)
	Save(model.Snapshot) error
}

// Load reads a snapshot from store and restores a tracker from it. See
// Restore for the meaning of the returned *UnsortedNoteError.
func Load(store Store, opts ...Option) (*Tracker, *UnsortedNoteError, error) {
	s, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return Restore(s, opts...)
}

// Save writes the tracker's state to store.
func Save(store Store, t *Tracker) error {
	return store.Save(t.Snapshot())
}
