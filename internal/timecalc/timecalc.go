package timecalc

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns d shifted by n days. Month and year boundaries roll over.
func (d Date) AddDays(n int) Date {
	return DateOf(d.In(time.UTC).AddDate(0, 0, n))
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.In(time.UTC).Weekday()
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// WeekRange returns the Monday and Sunday of the ISO week containing d.
func WeekRange(d Date) (Date, Date) {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := d.AddDays(-(wd - 1))
	return monday, monday.AddDays(6)
}

// MonthRange returns the first and last day of the month containing d.
func MonthRange(d Date) (Date, Date) {
	first := Date{Year: d.Year, Month: d.Month, Day: 1}
	// AddDate normalizes December+1 into January of the next year.
	next := DateOf(first.In(time.UTC).AddDate(0, 1, 0))
	return first, next.AddDays(-1)
}

// PreviousMonthRange returns the first and last day of the month before the
// one containing d.
func PreviousMonthRange(d Date) (Date, Date) {
	first := Date{Year: d.Year, Month: d.Month, Day: 1}
	return MonthRange(first.AddDays(-1))
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(d Date) string {
	year, week := d.In(time.UTC).ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// GenerateID creates a unique ID based on timestamp and random suffix.
func GenerateID(t time.Time) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffix := make([]byte, 5)
	for i := range suffix {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		suffix[i] = chars[n.Int64()]
	}
	return fmt.Sprintf("%s-%s", t.Format("20060102-150405"), string(suffix))
}

// FormatDuration formats d as a human-readable string like "1h 40m" or "45m" or "30s".
func FormatDuration(d time.Duration) string {
	seconds := int64(d.Seconds())
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// FormatDurationHHMMSS formats d as HH:MM:SS.
func FormatDurationHHMMSS(d time.Duration) string {
	seconds := int64(d.Seconds())
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatHours formats fractional hours with two decimals, e.g. "1.50h".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2fh", hours)
}
