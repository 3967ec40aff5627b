package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/noamashri/workhours/internal/output"
	"github.com/noamashri/workhours/internal/timecalc"
	"github.com/noamashri/workhours/internal/validate"
	"github.com/noamashri/workhours/internal/view"
)

// monthCmd represents the month command.
var monthCmd = &cobra.Command{
	Use:     "month [YYYY-MM]",
	Aliases: []string{"m"},
	Short:   "Show a monthly roll-up",
	Long: `Show all shifts of a month sorted by date, with total hours, entry
count and average. Defaults to the current month.

Examples:
  workhours month
  workhours month 2024-03`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

func runMonth(cmd *cobra.Command, args []string) error {
	month, err := selectMonth(args)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.NewMonthResponse(month))
	}

	ctx.CLIFormatter().PrintMonthTable(month)
	return nil
}

// selectMonth builds the month view for the selected year-month: the
// optional argument when given, otherwise the current calendar month.
// Export and clear go through the same path so they always act on
// exactly the filtered set a month view would display.
func selectMonth(args []string) (view.Month, error) {
	yearMonth := timecalc.MonthString(time.Now())
	if len(args) > 0 {
		yearMonth = args[0]
	}
	if err := validate.YearMonth(yearMonth); err != nil {
		return view.Month{}, err
	}

	entries, err := loadEntries()
	if err != nil {
		return view.Month{}, err
	}
	return view.NewMonth(entries, yearMonth), nil
}
