package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timebox-tracker/internal/render"
	"github.com/Tiliavir/timebox-tracker/internal/timecalc"
	"github.com/Tiliavir/timebox-tracker/internal/tracking"
)

var (
	listAll   bool
	listPage  int
	listLimit int
	listDate  string
	listOrder string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List finished time boxes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "List all finished time boxes")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 0, "Zero-based page number")
	listCmd.Flags().IntVarP(&listLimit, "limit", "l", 0, "Time boxes per page (default from config, 25)")
	listCmd.Flags().StringVarP(&listDate, "date", "d", "", filterHelp)
	listCmd.Flags().StringVar(&listOrder, "order", "", "Sort order: ascending, descending (default from config)")
}

// listOptions builds the query from the list flags and the config defaults.
func listOptions(today timecalc.Date) (tracking.ListOptions, error) {
	order := cfg.List.Order
	if listOrder != "" {
		order = listOrder
	}
	sortOrder, err := tracking.ParseSortOrder(order)
	if err != nil {
		return tracking.ListOptions{}, err
	}

	limit := cfg.List.PageSize
	if listLimit > 0 {
		limit = listLimit
	}
	if listPage < 0 {
		return tracking.ListOptions{}, fmt.Errorf("invalid page %d: must not be negative", listPage)
	}

	opts := tracking.DefaultListOptions().Page(listPage, limit)
	if listAll {
		opts.Skip, opts.Take = 0, tracking.TakeAll
	}
	opts.Order = sortOrder

	if listDate != "" {
		f, err := parseDateFilter(listDate, today)
		if err != nil {
			return tracking.ListOptions{}, err
		}
		opts.Filter = &f
	}
	return opts, nil
}

func runList(cmd *cobra.Command, args []string) error {
	return withTracker(func(t *tracking.Tracker) (bool, error) {
		opts, err := listOptions(timecalc.DateOf(t.Now().In(t.Location())))
		if err != nil {
			return false, err
		}
		res := t.Finished(opts)
		if len(res.Items) == 0 {
			slog.Warn("listing did nothing because no finished time boxes match", "total", res.Total)
			warnActive(t)
			return false, nil
		}

		table, err := render.FinishedTable(res.Items, t.Location())
		if err != nil {
			return false, err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, table)
		fmt.Fprintf(out, "%d of %d time boxes\n", len(res.Items), res.Total)
		warnActive(t)
		return false, nil
	})
}
