package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timebox-tracker/internal/render"
	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

var exportCmd = &cobra.Command{
	Use:       "export [csv|json|yaml|debug]",
	Short:     "Export all finished time boxes to stdout",
	Long:      "Generates output for other tools. Time boxes are exported oldest first.",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"csv", "json", "yaml", "debug"},
	RunE:      runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format := "csv"
	if len(args) == 1 {
		format = args[0]
	}
	return withTracker(func(t *tracking.Tracker) (bool, error) {
		opts := tracking.ListOptions{Take: tracking.TakeAll, Order: tracking.Ascending}
		items := t.Finished(opts).Items
		if len(items) == 0 {
			slog.Warn("exporting did nothing because there are no finished time boxes")
		}

		out := cmd.OutOrStdout()
		var err error
		switch format {
		case "json":
			err = render.JSON(out, items, t.Location())
		case "yaml":
			err = render.YAML(out, items, t.Location())
		case "debug":
			err = render.Debug(out, items)
		case "csv":
			err = render.CSV(out, items, t.Location())
		default:
			err = fmt.Errorf("unknown export format %q", format)
		}
		if err != nil {
			return false, err
		}
		warnActive(t)
		return false, nil
	})
}
