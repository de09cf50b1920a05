package timecalc_test

import (
	"testing"
	"time"

	"github.com/Tiliavir/timebox-tracker/internal/timecalc"
)

func date(y int, m time.Month, d int) timecalc.Date {
	return timecalc.Date{Year: y, Month: m, Day: d}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m"},
		{90, "1m"},
		{3600, "1h 0m"},
		{3661, "1h 1m"},
		{5400, "1h 30m"},
	}
	for _, tt := range tests {
		got := timecalc.FormatDuration(time.Duration(tt.seconds) * time.Second)
		if got != tt.want {
			t.Errorf("FormatDuration(%ds) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatDurationHHMMSS(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{61, "00:01:01"},
		{3661, "01:01:01"},
	}
	for _, tt := range tests {
		got := timecalc.FormatDurationHHMMSS(time.Duration(tt.seconds) * time.Second)
		if got != tt.want {
			t.Errorf("FormatDurationHHMMSS(%ds) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	if got := timecalc.FormatHours(1.5); got != "1.50h" {
		t.Errorf("FormatHours(1.5) = %q, want %q", got, "1.50h")
	}
	if got := timecalc.FormatHours(1.0 / 3.0); got != "0.33h" {
		t.Errorf("FormatHours(1/3) = %q, want %q", got, "0.33h")
	}
}

func TestWeekRange(t *testing.T) {
	// 2026-02-27 is a Friday (week 9).
	monday, sunday := timecalc.WeekRange(date(2026, 2, 27))

	if monday != date(2026, 2, 23) {
		t.Errorf("WeekRange monday = %v, want 2026-02-23", monday)
	}
	if sunday != date(2026, 3, 1) {
		t.Errorf("WeekRange sunday = %v, want 2026-03-01", sunday)
	}
}

func TestWeekRangeOnSunday(t *testing.T) {
	monday, sunday := timecalc.WeekRange(date(2026, 3, 1))
	if monday != date(2026, 2, 23) || sunday != date(2026, 3, 1) {
		t.Errorf("WeekRange(Sunday) = %v..%v, want 2026-02-23..2026-03-01", monday, sunday)
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		in        timecalc.Date
		wantFirst timecalc.Date
		wantLast  timecalc.Date
	}{
		{date(2026, 2, 14), date(2026, 2, 1), date(2026, 2, 28)},
		{date(2024, 2, 14), date(2024, 2, 1), date(2024, 2, 29)},
		{date(2026, 12, 31), date(2026, 12, 1), date(2026, 12, 31)},
		{date(2026, 1, 1), date(2026, 1, 1), date(2026, 1, 31)},
	}
	for _, tt := range tests {
		first, last := timecalc.MonthRange(tt.in)
		if first != tt.wantFirst || last != tt.wantLast {
			t.Errorf("MonthRange(%v) = %v..%v, want %v..%v", tt.in, first, last, tt.wantFirst, tt.wantLast)
		}
	}
}

func TestPreviousMonthRange(t *testing.T) {
	tests := []struct {
		in        timecalc.Date
		wantFirst timecalc.Date
		wantLast  timecalc.Date
	}{
		{date(2026, 1, 15), date(2025, 12, 1), date(2025, 12, 31)},
		{date(2026, 3, 31), date(2026, 2, 1), date(2026, 2, 28)},
		{date(2026, 12, 1), date(2026, 11, 1), date(2026, 11, 30)},
	}
	for _, tt := range tests {
		first, last := timecalc.PreviousMonthRange(tt.in)
		if first != tt.wantFirst || last != tt.wantLast {
			t.Errorf("PreviousMonthRange(%v) = %v..%v, want %v..%v", tt.in, first, last, tt.wantFirst, tt.wantLast)
		}
	}
}

func TestDateCompare(t *testing.T) {
	a := date(2026, 2, 27)
	b := date(2026, 2, 28)
	c := date(2027, 1, 1)

	if !a.Before(b) || !b.Before(c) || !c.After(a) {
		t.Error("Date ordering is wrong")
	}
	if a.Compare(a) != 0 {
		t.Error("Compare: expected equal dates to compare as 0")
	}
}

func TestDateOfUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	instant := time.Date(2026, 2, 27, 23, 30, 0, 0, time.UTC)

	if got := timecalc.DateOf(instant); got != date(2026, 2, 27) {
		t.Errorf("DateOf(UTC) = %v, want 2026-02-27", got)
	}
	if got := timecalc.DateOf(instant.In(loc)); got != date(2026, 2, 28) {
		t.Errorf("DateOf(UTC+2) = %v, want 2026-02-28", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := timecalc.ParseDate("2024-01-05")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d != date(2024, 1, 5) || d.String() != "2024-01-05" {
		t.Errorf("ParseDate = %v, want 2024-01-05", d)
	}
	if _, err := timecalc.ParseDate("2024-13-01"); err == nil {
		t.Error("ParseDate: expected error for invalid month")
	}
}

func TestISOWeekLabel(t *testing.T) {
	got := timecalc.ISOWeekLabel(date(2026, 2, 27))
	if got != "2026-W09" {
		t.Errorf("ISOWeekLabel = %q, want %q", got, "2026-W09")
	}
}

func TestGenerateID(t *testing.T) {
	ts := time.Date(2026, 2, 27, 8, 32, 10, 0, time.UTC)
	id := timecalc.GenerateID(ts)
	if len(id) != len("20260227-083210-xxxxx") {
		t.Errorf("GenerateID length = %d, want %d", len(id), len("20260227-083210-xxxxx"))
	}
	if id[:15] != "20260227-083210" {
		t.Errorf("GenerateID prefix = %q, want %q", id[:15], "20260227-083210")
	}
}
