package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/noamashri/workhours/internal/errors"
	"github.com/noamashri/workhours/internal/export"
	"github.com/noamashri/workhours/internal/logging"
	"github.com/noamashri/workhours/internal/output"
)

// Export command flags.
var exportFlagOutput string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export [YYYY-MM]",
	Aliases: []string{"x", "csv"},
	Short:   "Export a month to a spreadsheet file",
	Long: `Export the selected month's shifts as a comma-delimited table that
spreadsheet tools open directly. Defaults to the current month and to
the file name work-hours-<YYYY-MM>.csv in the working directory.

Examples:
  workhours export
  workhours export 2024-03
  workhours export 2024-03 -o /tmp/march.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (default work-hours-<YYYY-MM>.csv)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	month, err := selectMonth(args)
	if err != nil {
		return err
	}

	table, err := export.DelimitedTable(month.Entries)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNothingToExport) {
			return apperrors.NewUserError(
				fmt.Sprintf("No entries to export for %s", month.YearMonth),
				"Pick a month that has entries, see 'workhours month'")
		}
		return err
	}

	filename := exportFlagOutput
	if filename == "" {
		filename = export.Filename(month.YearMonth)
	}

	if err := os.WriteFile(filename, []byte(table), 0644); err != nil {
		return apperrors.NewSystemError("failed to write export file", err)
	}

	logging.Info("month exported", "month", month.YearMonth, "file", filename, "count", month.Totals.Count)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(&output.ExportResponse{
			Status:    "exported",
			YearMonth: month.YearMonth,
			File:      filename,
			Count:     month.Totals.Count,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Exported %d entries for %s to %s", month.Totals.Count, month.YearMonth, filename))
	return nil
}
