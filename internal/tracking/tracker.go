// Package tracking holds the time-box state machine, load-time validation and
// the listing engine over finished time boxes. It never logs or prints;
// callers decide how to surface its results.
package tracking

import (
	"errors"
	"strings"
	"time"

	"github.com/Tiliavir/timebox-tracker/internal/model"
)

// Tracker owns the active time box, if any, and the finished ones. Every
// TimeBox it hands out is a copy.
type Tracker struct {
	active   *model.TimeBox
	finished []model.TimeBox

	now func() time.Time
	loc *time.Location
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now as the source of note timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLocation sets the location whose calendar dates list filters match
// against. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) { t.loc = loc }
}

// New returns an idle tracker without history.
func New(opts ...Option) *Tracker {
	t := &Tracker{now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Restore validates s and builds a tracker from it. Missing notes are fatal.
// Unsorted notes are repaired by sorting and reported through the returned
// *UnsortedNoteError so the caller can warn about it.
func Restore(s model.Snapshot, opts ...Option) (*Tracker, *UnsortedNoteError, error) {
	s = cloneSnapshot(s)

	var repaired *UnsortedNoteError
	if err := Validate(s); err != nil {
		var unsorted *UnsortedNoteError
		if !errors.As(err, &unsorted) {
			return nil, nil, err
		}
		Normalize(&s)
		repaired = unsorted
	}

	t := New(opts...)
	t.active = s.Active
	t.finished = s.Finished
	return t, repaired, nil
}

// Snapshot returns a copy of the tracker state suitable for persisting.
func (t *Tracker) Snapshot() model.Snapshot {
	return cloneSnapshot(model.Snapshot{Active: t.active, Finished: t.finished})
}

// Now returns the current instant of the tracker's clock in UTC.
func (t *Tracker) Now() time.Time {
	return t.now().UTC()
}

// Location returns the location used for calendar-date filtering.
func (t *Tracker) Location() *time.Location {
	return t.loc
}

// Active returns the active time box and whether there is one.
func (t *Tracker) Active() (model.TimeBox, bool) {
	if t.active == nil {
		return model.TimeBox{}, false
	}
	return t.active.Clone(), true
}

// Begin starts a new active time box with description as its first note.
func (t *Tracker) Begin(description string) (model.TimeBox, error) {
	if t.active != nil {
		return model.TimeBox{}, ErrActiveTimeBoxExists
	}
	tb := model.NewTimeBox(t.note(description))
	t.active = &tb
	return tb.Clone(), nil
}

// PushNote appends a note to the active time box.
func (t *Tracker) PushNote(description string) (model.TimeBox, error) {
	if t.active == nil {
		return model.TimeBox{}, ErrNoActiveTimeBox
	}
	t.active.Notes = append(t.active.Notes, t.note(description))
	return t.active.Clone(), nil
}

// Amend replaces the description of the active time box's last note.
func (t *Tracker) Amend(description string) (model.TimeBox, error) {
	if t.active == nil {
		return model.TimeBox{}, ErrNoActiveTimeBox
	}
	if len(t.active.Notes) == 0 {
		return model.TimeBox{}, ErrActiveTimeBoxMissingNote
	}
	t.active.Notes[len(t.active.Notes)-1].Description = strings.TrimSpace(description)
	return t.active.Clone(), nil
}

// End moves the active time box to the finished ones.
func (t *Tracker) End() (model.TimeBox, error) {
	if t.active == nil {
		return model.TimeBox{}, ErrNoActiveTimeBox
	}
	tb := *t.active
	t.active = nil
	t.finished = append(t.finished, tb)
	return tb.Clone(), nil
}

// Resume makes the last stored finished time box active again, unchanged.
// Called right after End it reopens the box that was just ended.
func (t *Tracker) Resume() (model.TimeBox, error) {
	if t.active != nil {
		return model.TimeBox{}, ErrActiveTimeBoxExists
	}
	if len(t.finished) == 0 {
		return model.TimeBox{}, ErrNoTimeBox
	}
	last := len(t.finished) - 1
	tb := t.finished[last]
	t.finished = t.finished[:last]
	t.active = &tb
	return tb.Clone(), nil
}

// Cancel discards the active time box and returns it.
func (t *Tracker) Cancel() (model.TimeBox, error) {
	if t.active == nil {
		return model.TimeBox{}, ErrNoActiveTimeBox
	}
	tb := *t.active
	t.active = nil
	return tb, nil
}

// Clear removes all finished time boxes and returns how many were removed.
// It does nothing and returns 0 while a time box is active.
func (t *Tracker) Clear() int {
	if t.active != nil {
		return 0
	}
	n := len(t.finished)
	t.finished = nil
	return n
}

func (t *Tracker) note(description string) model.Note {
	return model.Note{Time: t.Now(), Description: description}
}

func cloneSnapshot(s model.Snapshot) model.Snapshot {
	out := model.Snapshot{}
	if s.Active != nil {
		c := s.Active.Clone()
		out.Active = &c
	}
	out.Finished = make([]model.TimeBox, len(s.Finished))
	for i, tb := range s.Finished {
		out.Finished[i] = tb.Clone()
	}
	return out
}
