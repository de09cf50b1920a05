package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/timebox-tracker/internal/render"
	"github.com/Tiliavir/timebox-tracker/internal/timecalc"
	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

var (
	reportDate   string
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show hours per day",
	Long:  "Sums the finished time boxes per local day. Defaults to this week.",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportDate, "date", "d", "this-week", filterHelp)
	reportCmd.Flags().StringVar(&reportFormat, "format", render.ReportMarkdown, "Output format: md, csv, json")
}

func runReport(cmd *cobra.Command, args []string) error {
	return withTracker(func(t *tracking.Tracker) (bool, error) {
		today := timecalc.DateOf(t.Now().In(t.Location()))
		f, err := parseDateFilter(reportDate, today)
		if err != nil {
			return false, err
		}

		items := t.Finished(tracking.ListOptions{Take: tracking.TakeAll, Order: tracking.Ascending, Filter: &f}).Items
		days, err := render.DayTotals(items, t.Location())
		if err != nil {
			return false, err
		}
		if err := render.Report(cmd.OutOrStdout(), reportFormat, reportTitle(f), days); err != nil {
			return false, err
		}
		warnActive(t)
		return false, nil
	})
}

// reportTitle names a whole ISO week by its label, anything else by its
// date range.
func reportTitle(f tracking.ListFilter) string {
	if from, to := timecalc.WeekRange(f.From); f.Range && from == f.From && to == f.To {
		return "Week " + timecalc.ISOWeekLabel(f.From)
	}
	return f.String()
}
