package model

import (
	"errors"
	"sort"
	"time"
)

// ErrMissingNote is returned by the derived projections of a TimeBox that has
// no notes. Boxes built by the tracker always carry at least one note; only
// hand-edited data can violate that.
var ErrMissingNote = errors.New("time box has no notes")

// Note is a single timestamped entry of a time box's journal.
type Note struct {
	Time        time.Time `json:"time" yaml:"time"`
	Description string    `json:"description" yaml:"description"`
}

// TimeBox is a tracked span of work: a chronological list of notes. Start and
// stop are derived from the first and last note.
type TimeBox struct {
	Notes []Note `json:"notes" yaml:"notes"`
}

// Snapshot is the persisted state of a tracker.
type Snapshot struct {
	Active   *TimeBox  `json:"active"`
	Finished []TimeBox `json:"finished"`
}

// NewTimeBox returns a time box holding the single note n.
func NewTimeBox(n Note) TimeBox {
	return TimeBox{Notes: []Note{n}}
}

// Start returns the time of the first note.
func (tb TimeBox) Start() (time.Time, error) {
	if len(tb.Notes) == 0 {
		return time.Time{}, ErrMissingNote
	}
	return tb.Notes[0].Time, nil
}

// Stop returns the time of the last note.
func (tb TimeBox) Stop() (time.Time, error) {
	if len(tb.Notes) == 0 {
		return time.Time{}, ErrMissingNote
	}
	return tb.Notes[len(tb.Notes)-1].Time, nil
}

// Duration is the span between the first and the last note.
func (tb TimeBox) Duration() (time.Duration, error) {
	start, err := tb.Start()
	if err != nil {
		return 0, err
	}
	stop, err := tb.Stop()
	if err != nil {
		return 0, err
	}
	return stop.Sub(start), nil
}

// DurationMinutes returns Duration in minutes, unrounded.
func (tb TimeBox) DurationMinutes() (float64, error) {
	d, err := tb.Duration()
	if err != nil {
		return 0, err
	}
	return d.Minutes(), nil
}

// DurationHours returns Duration in hours, unrounded.
func (tb TimeBox) DurationHours() (float64, error) {
	d, err := tb.Duration()
	if err != nil {
		return 0, err
	}
	return d.Hours(), nil
}

// ActiveDuration is the time elapsed between the first note and now. It is
// only meaningful for the active time box.
func (tb TimeBox) ActiveDuration(now time.Time) (time.Duration, error) {
	start, err := tb.Start()
	if err != nil {
		return 0, err
	}
	return now.Sub(start), nil
}

// ActiveMinutes returns ActiveDuration in minutes.
func (tb TimeBox) ActiveMinutes(now time.Time) (float64, error) {
	d, err := tb.ActiveDuration(now)
	if err != nil {
		return 0, err
	}
	return d.Minutes(), nil
}

// ActiveHours returns ActiveDuration in hours.
func (tb TimeBox) ActiveHours(now time.Time) (float64, error) {
	d, err := tb.ActiveDuration(now)
	if err != nil {
		return 0, err
	}
	return d.Hours(), nil
}

// Clone returns a deep copy of the time box.
func (tb TimeBox) Clone() TimeBox {
	if tb.Notes == nil {
		return TimeBox{}
	}
	notes := make([]Note, len(tb.Notes))
	copy(notes, tb.Notes)
	return TimeBox{Notes: notes}
}

// SortNotes orders the notes by time. Notes with equal times keep their
// relative order.
func (tb *TimeBox) SortNotes() {
	sort.SliceStable(tb.Notes, func(i, j int) bool {
		return tb.Notes[i].Time.Before(tb.Notes[j].Time)
	})
}

// FirstUnsorted returns the index of the first note whose time lies before
// its predecessor's, or -1 when the notes are chronological.
func (tb TimeBox) FirstUnsorted() int {
	for i := 1; i < len(tb.Notes); i++ {
		if tb.Notes[i].Time.Before(tb.Notes[i-1].Time) {
			return i
		}
	}
	return -1
}
