package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Tiliavir/timebox-tracker/internal/model"
	"github.com/Tiliavir/timebox-tracker/internal/timecalc"
)

// Report formats accepted by Report.
const (
	ReportMarkdown = "md"
	ReportCSV      = "csv"
	ReportJSON     = "json"
)

// DayTotal sums the time boxes started on one calendar day.
type DayTotal struct {
	Date    timecalc.Date
	Count   int
	Seconds int64
}

// Hours returns the total as fractional hours.
func (d DayTotal) Hours() float64 {
	return float64(d.Seconds) / 3600
}

// DayTotals aggregates items by the local date of their start. Days appear in
// the order they are first seen.
func DayTotals(items []model.TimeBox, loc *time.Location) ([]DayTotal, error) {
	var out []DayTotal
	index := map[timecalc.Date]int{}
	for _, tb := range items {
		start, err := tb.Start()
		if err != nil {
			return nil, err
		}
		d, err := tb.Duration()
		if err != nil {
			return nil, err
		}
		day := timecalc.DateOf(start.In(loc))
		i, seen := index[day]
		if !seen {
			i = len(out)
			index[day] = i
			out = append(out, DayTotal{Date: day})
		}
		out[i].Count++
		out[i].Seconds += int64(d.Seconds())
	}
	return out, nil
}

type reportDay struct {
	Date      string  `json:"date"`
	TimeBoxes int     `json:"time_boxes"`
	Hours     float64 `json:"hours"`
}

type reportDoc struct {
	Range      string      `json:"range"`
	Days       []reportDay `json:"days"`
	TotalHours float64     `json:"total_hours"`
}

// Report writes the day totals under title in one of the report formats.
func Report(w io.Writer, format, title string, days []DayTotal) error {
	var total int64
	for _, d := range days {
		total += d.Seconds
	}

	switch format {
	case ReportCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"date", "time_boxes", "hours"}); err != nil {
			return err
		}
		for _, d := range days {
			if err := cw.Write([]string{
				d.Date.String(),
				strconv.Itoa(d.Count),
				fmt.Sprintf("%.2f", d.Hours()),
			}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case ReportJSON:
		doc := reportDoc{Range: title, Days: make([]reportDay, 0, len(days)), TotalHours: float64(total) / 3600}
		for _, d := range days {
			doc.Days = append(doc.Days, reportDay{Date: d.Date.String(), TimeBoxes: d.Count, Hours: d.Hours()})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case ReportMarkdown:
		const rule = "--------------------------------"
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, rule)
		for _, d := range days {
			label := fmt.Sprintf("%s %s", d.Date, d.Date.Weekday().String()[:3])
			fmt.Fprintf(w, "%-20s%s\n", label, timecalc.FormatDuration(time.Duration(d.Seconds)*time.Second))
		}
		fmt.Fprintln(w, rule)
		_, err := fmt.Fprintf(w, "%-20s%s\n", "Total", timecalc.FormatDuration(time.Duration(total)*time.Second))
		return err
	}
	return fmt.Errorf("unknown report format %q: use md, csv or json", format)
}
