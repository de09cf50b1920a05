package tracking

import (
	"sort"

	"github.com/Tiliavir/timebox-tracker/internal/model"
)

// Validate checks the invariants of a snapshot read from disk, where hand
// edits may have broken them:
//
//  1. the active time box has at least one note
//  2. every finished time box has at least one note
//  3. notes of the active time box are chronological
//  4. notes of every finished time box are chronological, and the finished
//     time boxes are ordered by their start
//
// Missing notes are reported before ordering problems, so a returned
// *UnsortedNoteError means Normalize can make the snapshot valid.
func Validate(s model.Snapshot) error {
	if s.Active != nil && len(s.Active.Notes) == 0 {
		return ErrActiveTimeBoxMissingNote
	}
	for i, tb := range s.Finished {
		if len(tb.Notes) == 0 {
			return &MissingNoteError{Index: i}
		}
	}

	if s.Active != nil {
		if i := s.Active.FirstUnsorted(); i >= 0 {
			return &UnsortedNoteError{Note: s.Active.Notes[i]}
		}
	}
	for i, tb := range s.Finished {
		if j := tb.FirstUnsorted(); j >= 0 {
			return &UnsortedNoteError{Note: tb.Notes[j]}
		}
		if i > 0 && tb.Notes[0].Time.Before(s.Finished[i-1].Notes[0].Time) {
			return &UnsortedNoteError{Note: tb.Notes[0]}
		}
	}
	return nil
}

// Normalize sorts the notes of every time box by time and the finished time
// boxes by their start. Sorting is stable. Time boxes without notes sort
// first.
func Normalize(s *model.Snapshot) {
	if s.Active != nil {
		s.Active.SortNotes()
	}
	for i := range s.Finished {
		s.Finished[i].SortNotes()
	}
	sortByStart(s.Finished, Ascending)
}

func sortByStart(boxes []model.TimeBox, order SortOrder) {
	sort.SliceStable(boxes, func(i, j int) bool {
		a, _ := boxes[i].Start()
		b, _ := boxes[j].Start()
		if order == Descending {
			return b.Before(a)
		}
		return a.Before(b)
	})
}
