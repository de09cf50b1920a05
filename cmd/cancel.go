package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the active time box",
	Args:  cobra.NoArgs,
	RunE:  runCancel,
}

func runCancel(cmd *cobra.Command, args []string) error {
	return withTracker(func(t *tracking.Tracker) (bool, error) {
		tb, err := t.Cancel()
		if err != nil {
			return false, activeRequired("cancel", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Canceled time box with %d notes\n", len(tb.Notes))
		return true, nil
	})
}
