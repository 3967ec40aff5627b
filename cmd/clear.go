package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	apperrors "github.com/noamashri/workhours/internal/errors"
	"github.com/noamashri/workhours/internal/logging"
	"github.com/noamashri/workhours/internal/output"
	"github.com/noamashri/workhours/internal/tui"
	"github.com/noamashri/workhours/internal/view"
	"github.com/noamashri/workhours/internal/workflow"
)

// Clear command flags.
var clearFlagYes bool

// clearCmd represents the clear command.
var clearCmd = &cobra.Command{
	Use:   "clear [YYYY-MM]",
	Short: "Remove all shifts of a month",
	Long: `Remove every shift of the selected month. The removal only happens
after an explicit confirmation; dismissing the prompt in any way leaves
all entries untouched.

Examples:
  workhours clear 2024-03
  workhours clear 2024-03 --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearFlagYes, "yes", "y", false, "Confirm the removal without prompting")

	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	month, err := selectMonth(args)
	if err != nil {
		return err
	}

	// Refuse before arming anything; an empty target is a user message,
	// not a destructive operation.
	if month.Empty() {
		return apperrors.NewUserError(
			fmt.Sprintf("No entries for %s", month.YearMonth),
			"Nothing to clear, see 'workhours month'")
	}

	flow := workflow.NewClearMonth(ctx.Entries)
	flow.Request(month.YearMonth)

	confirmed, err := confirmClear(month)
	if err != nil {
		flow.Cancel()
		return err
	}
	if !confirmed {
		flow.Cancel()
		if !ctx.IsJSON() {
			ctx.CLIFormatter().Muted("Cancelled. No entries were removed.")
		}
		return nil
	}

	remaining, removed, err := flow.Confirm()
	if err != nil {
		return err
	}

	logging.Info("month cleared", "month", month.YearMonth, "removed", removed)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(&output.ClearResponse{
			Status:    "cleared",
			YearMonth: month.YearMonth,
			Removed:   removed,
			Remaining: len(remaining),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Removed %d entries for %s", removed, month.YearMonth))
	cli.Println("")

	// Re-render the month view from the post-clear snapshot.
	cli.PrintMonthTable(view.NewMonth(remaining, month.YearMonth))
	return nil
}

// confirmClear obtains the explicit confirmation: --yes for scripts,
// otherwise an interactive prompt when stdin is a terminal. Without a
// terminal there is no way to confirm interactively and the clear is
// dismissed.
func confirmClear(month view.Month) (bool, error) {
	if clearFlagYes {
		return true, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, apperrors.NewUserError(
			"Refusing to clear without confirmation",
			"Run interactively or pass --yes to confirm")
	}

	question := fmt.Sprintf("Remove all %d entries (%s hours) for %s?",
		month.Totals.Count, output.FormatHours(month.Totals.Total), month.YearMonth)
	return tui.Confirm(question)
}
