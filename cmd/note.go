package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

var noteEnd bool

var noteCmd = &cobra.Command{
	Use:   "note <description>",
	Short: "Add a note to the active time box",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNote,
}

func init() {
	noteCmd.Flags().BoolVarP(&noteEnd, "end", "e", false, "End the time box after adding the note")
}

func runNote(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	return withTracker(func(t *tracking.Tracker) (bool, error) {
		tb, err := t.PushNote(description)
		if err != nil {
			return false, activeRequired("add a note", err)
		}
		if !noteEnd {
			fmt.Fprintf(cmd.OutOrStdout(), "Added note %d to the active time box\n", len(tb.Notes))
			return true, nil
		}
		ended, err := t.End()
		if err != nil {
			return false, err
		}
		printEnded(cmd, ended)
		return true, nil
	})
}

// activeRequired explains a failure caused by a missing active time box.
func activeRequired(action string, err error) error {
	if errors.Is(err, tracking.ErrNoActiveTimeBox) {
		return fmt.Errorf("cannot %s: %w; begin one with: tbt begin <description>", action, err)
	}
	return err
}
