package tracking_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/timebox-tracker/internal/model"
	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

// memStore keeps the snapshot in memory.
type memStore struct {
	snapshot model.Snapshot
	saves    int
	loadErr  error
}

func (m *memStore) Load() (model.Snapshot, error) {
	if m.loadErr != nil {
		return model.Snapshot{}, m.loadErr
	}
	return m.snapshot, nil
}

func (m *memStore) Save(s model.Snapshot) error {
	m.snapshot = s
	m.saves++
	return nil
}

func TestLoadEmptyStore(t *testing.T) {
	tr, repaired, err := tracking.Load(&memStore{})
	require.NoError(t, err)
	assert.Nil(t, repaired)

	_, ok := tr.Active()
	assert.False(t, ok)
	assert.Equal(t, 0, tr.Finished(tracking.DefaultListOptions()).Total)
}

func TestLoadPropagatesStoreError(t *testing.T) {
	boom := errors.New("boom")
	_, _, err := tracking.Load(&memStore{loadErr: boom})
	assert.ErrorIs(t, err, boom)
}

func TestSaveThenLoadAcrossInvocations(t *testing.T) {
	store := &memStore{}
	c := newClock()

	tr, _, err := tracking.Load(store, tracking.WithClock(c.Now))
	require.NoError(t, err)
	_, err = tr.Begin("write report")
	require.NoError(t, err)
	require.NoError(t, tracking.Save(store, tr))

	c.Advance(time.Hour)
	tr, _, err = tracking.Load(store, tracking.WithClock(c.Now))
	require.NoError(t, err)
	_, err = tr.PushNote("sent")
	require.NoError(t, err)
	_, err = tr.End()
	require.NoError(t, err)
	require.NoError(t, tracking.Save(store, tr))

	assert.Equal(t, 2, store.saves)
	assert.Nil(t, store.snapshot.Active)
	require.Len(t, store.snapshot.Finished, 1)
	hours, err := store.snapshot.Finished[0].DurationHours()
	require.NoError(t, err)
	assert.Equal(t, 1.0, hours)
}

func TestLoadRejectsNoteLessActive(t *testing.T) {
	store := &memStore{snapshot: model.Snapshot{Active: &model.TimeBox{}}}
	_, _, err := tracking.Load(store)
	assert.ErrorIs(t, err, tracking.ErrActiveTimeBoxMissingNote)
}
