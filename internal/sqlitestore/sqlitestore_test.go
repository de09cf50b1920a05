package sqlitestore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/timebox-tracker/internal/model"
	"github.com/Tiliavir/timebox-tracker/internal/sqlitestore"
	"github.com/Tiliavir/timebox-tracker/internal/storage"
	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

var _ tracking.Store = (*sqlitestore.Store)(nil)

var t0 = time.Date(2026, 2, 27, 8, 0, 0, 0, time.UTC)

// openTestStore opens a store in a fresh temp directory.
func openTestStore(t *testing.T) *sqlitestore.Store {
	t.Helper()
	store, err := sqlitestore.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadEmpty(t *testing.T) {
	store := openTestStore(t)

	s, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, s.Active)
	assert.Empty(t, s.Finished)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	store := openTestStore(t)
	active := model.TimeBox{Notes: []model.Note{{Time: t0.Add(5 * time.Hour), Description: "running"}}}
	snap := model.Snapshot{
		Active: &active,
		Finished: []model.TimeBox{
			{Notes: []model.Note{{Time: t0.Add(2 * time.Hour), Description: "stored first"}}},
			{Notes: []model.Note{
				{Time: t0, Description: "stored second"},
				{Time: t0.Add(30*time.Minute + 123*time.Millisecond), Description: "multi\nline"},
			}},
		},
	}

	require.NoError(t, store.Save(snap))
	loaded, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, snap, loaded)
}

func TestSaveReplacesPreviousContent(t *testing.T) {
	store := openTestStore(t)
	first := model.Snapshot{Finished: []model.TimeBox{
		{Notes: []model.Note{{Time: t0, Description: "a"}}},
		{Notes: []model.Note{{Time: t0.Add(time.Hour), Description: "b"}}},
	}}
	require.NoError(t, store.Save(first))
	require.NoError(t, store.Save(model.Snapshot{}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded.Active)
	assert.Empty(t, loaded.Finished)
}

func TestNoteLessBoxIsPreservedAndRejected(t *testing.T) {
	store := openTestStore(t)
	snap := model.Snapshot{Finished: []model.TimeBox{
		{Notes: []model.Note{{Time: t0, Description: "ok"}}},
		{},
	}}
	require.NoError(t, store.Save(snap))

	_, _, err := tracking.Load(store)
	var missing *tracking.MissingNoteError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 1, missing.Index)
}

func TestInit(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Init())
	assert.ErrorIs(t, store.Init(), storage.ErrAlreadyInitialized)
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	store, err := sqlitestore.Open(dir)
	require.NoError(t, err)

	tr := tracking.New(tracking.WithClock(func() time.Time { return t0 }))
	_, err = tr.Begin("persisted")
	require.NoError(t, err)
	require.NoError(t, tracking.Save(store, tr))
	require.NoError(t, store.Close())

	store, err = sqlitestore.Open(dir)
	require.NoError(t, err)
	defer store.Close()

	tr, _, err = tracking.Load(store)
	require.NoError(t, err)
	active, ok := tr.Active()
	require.True(t, ok)
	assert.Equal(t, "persisted", active.Notes[0].Description)
}
