package cmd

import (
	"fmt"
	"strings"

	"github.com/Tiliavir/timebox-tracker/internal/timecalc"
	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

const filterHelp = `Filter by date or date range. Accepts:
  today, yesterday or a date: YYYY-MM-DD
  this-week, last-week, this-month, last-month or a range: YYYY-MM-DD..YYYY-MM-DD`

// parseDateFilter turns a named period, a date or a range into a filter
// relative to today.
func parseDateFilter(s string, today timecalc.Date) (tracking.ListFilter, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "today":
		return tracking.OnDate(today), nil
	case "yesterday":
		return tracking.OnDate(today.AddDays(-1)), nil
	case "this-week":
		return tracking.Between(timecalc.WeekRange(today)), nil
	case "last-week":
		return tracking.Between(timecalc.WeekRange(today.AddDays(-7))), nil
	case "this-month":
		return tracking.Between(timecalc.MonthRange(today)), nil
	case "last-month":
		return tracking.Between(timecalc.PreviousMonthRange(today)), nil
	default:
		if from, to, ok := strings.Cut(v, ".."); ok {
			return parseRange(from, to)
		}
		d, err := timecalc.ParseDate(v)
		if err != nil {
			return tracking.ListFilter{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
		}
		return tracking.OnDate(d), nil
	}
}

func parseRange(fromStr, toStr string) (tracking.ListFilter, error) {
	from, err := timecalc.ParseDate(fromStr)
	if err != nil {
		return tracking.ListFilter{}, fmt.Errorf("invalid start date %q: range must be YYYY-MM-DD..YYYY-MM-DD", fromStr)
	}
	to, err := timecalc.ParseDate(toStr)
	if err != nil {
		return tracking.ListFilter{}, fmt.Errorf("invalid end date %q: range must be YYYY-MM-DD..YYYY-MM-DD", toStr)
	}
	if from.After(to) {
		return tracking.ListFilter{}, fmt.Errorf("start date %s must not be after end date %s", from, to)
	}
	return tracking.Between(from, to), nil
}
