package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/timebox-tracker/internal/model"
)

// Record is the exported view of a finished time box, including its derived
// fields.
type Record struct {
	TimeStart time.Time    `json:"time_start" yaml:"time_start"`
	TimeStop  time.Time    `json:"time_stop" yaml:"time_stop"`
	Hours     float64      `json:"hours" yaml:"hours"`
	Notes     []model.Note `json:"notes" yaml:"notes"`
}

// Records converts time boxes to records with times in loc.
func Records(items []model.TimeBox, loc *time.Location) ([]Record, error) {
	out := make([]Record, 0, len(items))
	for _, tb := range items {
		start, err := tb.Start()
		if err != nil {
			return nil, err
		}
		stop, err := tb.Stop()
		if err != nil {
			return nil, err
		}
		hours, err := tb.DurationHours()
		if err != nil {
			return nil, err
		}
		notes := make([]model.Note, len(tb.Notes))
		for i, n := range tb.Notes {
			notes[i] = model.Note{Time: n.Time.In(loc), Description: n.Description}
		}
		out = append(out, Record{
			TimeStart: start.In(loc),
			TimeStop:  stop.In(loc),
			Hours:     hours,
			Notes:     notes,
		})
	}
	return out, nil
}

// CSV writes one semicolon-separated line per time box:
// time_start;time_stop;hours;description. The description lists every note
// as "- text" on its own line.
func CSV(w io.Writer, items []model.TimeBox, loc *time.Location) error {
	records, err := Records(items, loc)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write([]string{"time_start", "time_stop", "hours", "description"}); err != nil {
		return err
	}
	for _, r := range records {
		lines := make([]string, len(r.Notes))
		for i, n := range r.Notes {
			lines[i] = "- " + n.Description
		}
		if err := cw.Write([]string{
			r.TimeStart.Format(time.RFC3339),
			r.TimeStop.Format(time.RFC3339),
			fmt.Sprintf("%.2f", r.Hours),
			strings.Join(lines, "\n"),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSON writes the records as an indented JSON array.
func JSON(w io.Writer, items []model.TimeBox, loc *time.Location) error {
	records, err := Records(items, loc)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// YAML writes the records as a YAML sequence.
func YAML(w io.Writer, items []model.TimeBox, loc *time.Location) error {
	records, err := Records(items, loc)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}

// Debug dumps the raw time boxes.
func Debug(w io.Writer, items []model.TimeBox) error {
	for i, tb := range items {
		if _, err := fmt.Fprintf(w, "%d: %+v\n", i, tb); err != nil {
			return err
		}
	}
	return nil
}
