package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all finished time boxes",
	Long:  "Removes all finished time boxes. Does nothing while a time box is active.",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	return withTracker(func(t *tracking.Tracker) (bool, error) {
		if _, active := t.Active(); active {
			slog.Warn("clearing did nothing because there is an active time box; end or cancel it first")
			return false, nil
		}
		n := t.Clear()
		if n == 0 {
			slog.Warn("clearing did nothing because there are no finished time boxes")
			return false, nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d finished time boxes\n", n)
		return true, nil
	})
}
