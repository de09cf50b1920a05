package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/timebox-tracker/internal/model"
)

var t0 = time.Date(2026, 2, 27, 8, 0, 0, 0, time.UTC)

func TestDurationSameStartStop(t *testing.T) {
	tb := model.NewTimeBox(model.Note{Time: t0, Description: "x"})

	minutes, err := tb.DurationMinutes()
	require.NoError(t, err)
	assert.Equal(t, 0.0, minutes)

	hours, err := tb.DurationHours()
	require.NoError(t, err)
	assert.Equal(t, 0.0, hours)
}

func TestDuration90Minutes(t *testing.T) {
	tb := model.NewTimeBox(model.Note{Time: t0})
	tb.Notes = append(tb.Notes, model.Note{Time: t0.Add(90 * time.Minute)})

	start, err := tb.Start()
	require.NoError(t, err)
	assert.Equal(t, t0, start)

	stop, err := tb.Stop()
	require.NoError(t, err)
	assert.Equal(t, t0.Add(90*time.Minute), stop)

	minutes, err := tb.DurationMinutes()
	require.NoError(t, err)
	assert.Equal(t, 90.0, minutes)

	hours, err := tb.DurationHours()
	require.NoError(t, err)
	assert.Equal(t, 1.5, hours)
}

func TestActiveDuration(t *testing.T) {
	tb := model.NewTimeBox(model.Note{Time: t0})
	now := t0.Add(45 * time.Minute)

	minutes, err := tb.ActiveMinutes(now)
	require.NoError(t, err)
	assert.Equal(t, 45.0, minutes)

	hours, err := tb.ActiveHours(now)
	require.NoError(t, err)
	assert.Equal(t, 0.75, hours)
}

func TestProjectionsOnEmptyTimeBox(t *testing.T) {
	var tb model.TimeBox

	_, err := tb.Start()
	assert.ErrorIs(t, err, model.ErrMissingNote)
	_, err = tb.Stop()
	assert.ErrorIs(t, err, model.ErrMissingNote)
	_, err = tb.DurationHours()
	assert.ErrorIs(t, err, model.ErrMissingNote)
	_, err = tb.ActiveMinutes(t0)
	assert.ErrorIs(t, err, model.ErrMissingNote)
}

func TestCloneIsDeep(t *testing.T) {
	tb := model.NewTimeBox(model.Note{Time: t0, Description: "original"})
	c := tb.Clone()
	c.Notes[0].Description = "changed"

	assert.Equal(t, "original", tb.Notes[0].Description)
}

func TestSortNotes(t *testing.T) {
	tb := model.TimeBox{Notes: []model.Note{
		{Time: t0.Add(2 * time.Minute), Description: "c"},
		{Time: t0, Description: "a"},
		{Time: t0.Add(time.Minute), Description: "b1"},
		{Time: t0.Add(time.Minute), Description: "b2"},
	}}
	assert.Equal(t, 1, tb.FirstUnsorted())

	tb.SortNotes()

	var got []string
	for _, n := range tb.Notes {
		got = append(got, n.Description)
	}
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, got)
	assert.Equal(t, -1, tb.FirstUnsorted())
}
