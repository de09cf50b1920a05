package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timebox-tracker/internal/model"
	"github.com/Tiliavir/timebox-tracker/internal/timecalc"
	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "End the active time box",
	Args:  cobra.NoArgs,
	RunE:  runEnd,
}

func runEnd(cmd *cobra.Command, args []string) error {
	return withTracker(func(t *tracking.Tracker) (bool, error) {
		tb, err := t.End()
		if err != nil {
			return false, activeRequired("end", err)
		}
		printEnded(cmd, tb)
		return true, nil
	})
}

// printEnded reports the notes and the span of an ended time box.
func printEnded(cmd *cobra.Command, tb model.TimeBox) {
	if len(tb.Notes) == 1 {
		slog.Warn("the time box has a single note, its duration is zero")
	}
	d, _ := tb.Duration()
	fmt.Fprintf(cmd.OutOrStdout(), "Ended time box with %d notes. Elapsed: %s\n",
		len(tb.Notes), timecalc.FormatDurationHHMMSS(d))
}
