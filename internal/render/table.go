// Package render turns time boxes into tables and export formats.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Tiliavir/timebox-tracker/internal/model"
	"github.com/Tiliavir/timebox-tracker/internal/timecalc"
)

// DateFormat is the layout of note times in tables.
const DateFormat = "2006-01-02 15:04"

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)
var footerStyle = cellStyle.Bold(true)

// FinishedTable renders one row per time box, one line per note, with the
// summed hours in the last row.
func FinishedTable(items []model.TimeBox, loc *time.Location) (string, error) {
	var total float64
	for _, tb := range items {
		h, err := tb.DurationHours()
		if err != nil {
			return "", err
		}
		total += h
	}
	return notesTable(items, "total "+timecalc.FormatHours(total), loc), nil
}

// ActiveTable renders the active time box. The footer shows the hours
// spanned by its notes and the hours elapsed until now.
func ActiveTable(tb model.TimeBox, now time.Time, loc *time.Location) (string, error) {
	hours, err := tb.DurationHours()
	if err != nil {
		return "", err
	}
	active, err := tb.ActiveHours(now)
	if err != nil {
		return "", err
	}
	footer := fmt.Sprintf("tasks %s, %s active", timecalc.FormatHours(hours), timecalc.FormatHours(active))
	return notesTable([]model.TimeBox{tb}, footer, loc), nil
}

func notesTable(items []model.TimeBox, footer string, loc *time.Location) string {
	rows := make([][]string, 0, len(items)+1)
	for _, tb := range items {
		rows = append(rows, boxRow(tb, loc))
	}
	rows = append(rows, []string{footer, ""})
	last := len(rows) - 1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers("At", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == last:
				return footerStyle
			}
			return cellStyle
		})
	return t.String()
}

// boxRow lays out the notes of tb as two aligned multi-line cells. Only the
// first line of a multi-line description carries the note's time.
func boxRow(tb model.TimeBox, loc *time.Location) []string {
	var at, desc []string
	for _, n := range tb.Notes {
		stamp := n.Time.In(loc).Format(DateFormat)
		lines := strings.Split(n.Description, "\n")
		for i, line := range lines {
			if i == 0 {
				at = append(at, stamp)
			} else {
				at = append(at, "")
			}
			desc = append(desc, line)
		}
	}
	return []string{strings.Join(at, "\n"), strings.Join(desc, "\n")}
}
