package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Make the last finished time box active again",
	Long:  "Makes the last finished time box active again. Useful if you ended it too early.",
	Args:  cobra.NoArgs,
	RunE:  runResume,
}

func runResume(cmd *cobra.Command, args []string) error {
	return withTracker(func(t *tracking.Tracker) (bool, error) {
		tb, err := t.Resume()
		switch {
		case errors.Is(err, tracking.ErrActiveTimeBoxExists):
			return false, fmt.Errorf("cannot resume: %w; end or cancel it first", err)
		case errors.Is(err, tracking.ErrNoTimeBox):
			return false, fmt.Errorf("cannot resume: %w", err)
		case err != nil:
			return false, err
		}
		start, _ := tb.Start()
		fmt.Fprintf(cmd.OutOrStdout(), "Resumed time box started at %s\n",
			start.In(t.Location()).Format("2006-01-02 15:04"))
		return true, nil
	})
}
