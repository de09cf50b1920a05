package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timebox-tracker/internal/render"
	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active time box",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withTracker(func(t *tracking.Tracker) (bool, error) {
		tb, ok := t.Active()
		if !ok {
			return false, activeRequired("show status", tracking.ErrNoActiveTimeBox)
		}
		table, err := render.ActiveTable(tb, t.Now(), t.Location())
		if err != nil {
			return false, err
		}
		fmt.Fprintln(cmd.OutOrStdout(), table)
		return false, nil
	})
}

// warnActive reminds the user of a pending time box after printing other
// output.
func warnActive(t *tracking.Tracker) {
	tb, ok := t.Active()
	if !ok {
		return
	}
	table, err := render.ActiveTable(tb, t.Now(), t.Location())
	if err != nil {
		return
	}
	slog.Warn("there is an active time box:\n" + table)
}
