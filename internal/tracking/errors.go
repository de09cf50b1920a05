package tracking

import (
	"errors"
	"fmt"
	"time"

	"github.com/Tiliavir/timebox-tracker/internal/model"
)

// State violations returned by the tracker operations.
var (
	ErrActiveTimeBoxExists = errors.New("an active time box exists already")
	ErrNoActiveTimeBox     = errors.New("no active time box")
	ErrNoTimeBox           = errors.New("no finished time box")
)

// ErrActiveTimeBoxMissingNote means the active time box has no notes.
var ErrActiveTimeBoxMissingNote = errors.New("active time box has no notes")

// MissingNoteError reports a finished time box without notes.
type MissingNoteError struct {
	Index int
}

func (e *MissingNoteError) Error() string {
	return fmt.Sprintf("finished time box at index %d has no notes", e.Index)
}

func (e *MissingNoteError) Unwrap() error { return model.ErrMissingNote }

// UnsortedNoteError names a note whose time lies before the note preceding
// it. For finished time boxes the predecessor may be the start of the
// previous box.
type UnsortedNoteError struct {
	Note model.Note
}

func (e *UnsortedNoteError) Error() string {
	return fmt.Sprintf("note %q at %s is earlier than the note before it",
		e.Note.Description, e.Note.Time.Format(time.RFC3339))
}
