package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

var amendCmd = &cobra.Command{
	Use:   "amend <description>",
	Short: "Replace the description of the last note",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAmend,
}

func runAmend(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	return withTracker(func(t *tracking.Tracker) (bool, error) {
		tb, err := t.Amend(description)
		if err != nil {
			return false, activeRequired("amend", err)
		}
		last := tb.Notes[len(tb.Notes)-1]
		fmt.Fprintf(cmd.OutOrStdout(), "Amended note: %s\n", last.Description)
		return true, nil
	})
}
