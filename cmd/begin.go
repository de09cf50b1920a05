package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

var beginCmd = &cobra.Command{
	Use:   "begin <description>",
	Short: "Begin a new time box",
	Long:  "Begin working on something. Creates a new active time box if there is none.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBegin,
}

func runBegin(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	return withTracker(func(t *tracking.Tracker) (bool, error) {
		tb, err := t.Begin(description)
		if errors.Is(err, tracking.ErrActiveTimeBoxExists) {
			return false, fmt.Errorf("cannot begin: %w; end or cancel it first", err)
		}
		if err != nil {
			return false, err
		}
		start, _ := tb.Start()
		fmt.Fprintf(cmd.OutOrStdout(), "Began time box at %s\n", start.In(t.Location()).Format("15:04:05"))
		return true, nil
	})
}
