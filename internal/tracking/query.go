package tracking

import (
	"fmt"
	"math"
	"strings"

	"github.com/Tiliavir/timebox-tracker/internal/model"
	"github.com/Tiliavir/timebox-tracker/internal/timecalc"
)

// SortOrder orders finished time boxes by their start.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// ParseSortOrder accepts "ascending"/"asc" and "descending"/"desc".
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("invalid sort order %q: use ascending or descending", s)
}

// ListFilter selects finished time boxes by the calendar date of their start.
// It holds either a single date or an inclusive range; build it with OnDate or
// Between.
type ListFilter struct {
	From  timecalc.Date
	To    timecalc.Date
	Range bool
}

// OnDate matches time boxes started on d.
func OnDate(d timecalc.Date) ListFilter {
	return ListFilter{From: d, To: d}
}

// Between matches time boxes started on any day in [from, to].
func Between(from, to timecalc.Date) ListFilter {
	return ListFilter{From: from, To: to, Range: true}
}

// Matches reports whether d satisfies the filter.
func (f ListFilter) Matches(d timecalc.Date) bool {
	return !d.Before(f.From) && !d.After(f.To)
}

func (f ListFilter) String() string {
	if !f.Range {
		return f.From.String()
	}
	return f.From.String() + ".." + f.To.String()
}

// TakeAll requests every matching time box.
const TakeAll = math.MaxInt

// ListOptions controls one query over the finished time boxes. Pagination
// applies after filtering and sorting.
type ListOptions struct {
	Skip   int
	Take   int
	Order  SortOrder
	Filter *ListFilter
}

// DefaultListOptions returns the first page of 25, newest first, unfiltered.
func DefaultListOptions() ListOptions {
	return ListOptions{Skip: 0, Take: 25, Order: Descending}
}

// Page returns o with Skip and Take set for the zero-based page of size.
// Pages beyond the int range saturate to an empty result.
func (o ListOptions) Page(page, size int) ListOptions {
	if size > 0 && page > math.MaxInt/size {
		o.Skip = math.MaxInt
	} else {
		o.Skip = page * size
	}
	o.Take = size
	return o
}

// ListResult is one page of finished time boxes. Total counts all finished
// time boxes regardless of filter and pagination.
type ListResult struct {
	Total int
	Items []model.TimeBox
}

// Finished filters, sorts and paginates the finished time boxes.
func (t *Tracker) Finished(opts ListOptions) ListResult {
	items := make([]model.TimeBox, 0, len(t.finished))
	for _, tb := range t.finished {
		if opts.Filter != nil {
			start, err := tb.Start()
			if err != nil || !opts.Filter.Matches(timecalc.DateOf(start.In(t.loc))) {
				continue
			}
		}
		items = append(items, tb.Clone())
	}

	sortByStart(items, opts.Order)

	return ListResult{
		Total: len(t.finished),
		Items: paginate(items, opts.Skip, opts.Take),
	}
}

func paginate(items []model.TimeBox, skip, take int) []model.TimeBox {
	skip = max(skip, 0)
	take = max(take, 0)
	if skip >= len(items) {
		return []model.TimeBox{}
	}
	items = items[skip:]
	if take < len(items) {
		items = items[:take]
	}
	return items
}
