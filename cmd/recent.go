package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/noamashri/workhours/internal/logging"
	"github.com/noamashri/workhours/internal/model"
	"github.com/noamashri/workhours/internal/output"
	"github.com/noamashri/workhours/internal/storage"
	"github.com/noamashri/workhours/internal/timecalc"
	"github.com/noamashri/workhours/internal/view"
)

// recentCmd represents the recent command.
var recentCmd = &cobra.Command{
	Use:     "recent",
	Aliases: []string{"r", "ls"},
	Short:   "Show the most recent shifts",
	Long: `Show the five most recent shifts, today's rollup when a shift was
recorded today, and the locations seen so far.`,
	RunE: runRecent,
}

func init() {
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	entries, err := loadEntries()
	if err != nil {
		return err
	}

	today := timecalc.DateString(time.Now())
	recent := viewRecent(entries)
	status := viewToday(entries, today)
	suggestions := view.LocationSuggestions(entries)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(&output.RecentResponse{
			Entries:     recent,
			Today:       output.NewTodayOutput(status),
			Suggestions: suggestions,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title("Recent entries")

	if len(recent) == 0 {
		cli.Muted("No entries yet. Add your first shift.")
		return nil
	}

	cli.PrintEntryList(recent)
	cli.Println("")
	cli.PrintTodayStatus(status)
	cli.PrintSuggestions(suggestions)
	return nil
}

// loadEntries reads the collection, tolerating a corrupt block: the
// session continues on an empty collection but the corruption is
// reported instead of being silently discarded.
func loadEntries() ([]model.Entry, error) {
	entries, err := ctx.Entries.Load()
	if err != nil {
		if !storage.IsCorruptData(err) {
			return nil, err
		}
		logging.Error("stored entries are corrupt, continuing with an empty collection", "error", err)
		if !ctx.IsJSON() {
			ctx.CLIFormatter().Warning("Stored entries could not be read and are being ignored: " + err.Error())
		}
	}
	return entries, nil
}

func viewRecent(entries []model.Entry) []model.Entry {
	return view.Recent(entries, view.DefaultRecentLimit)
}

func viewToday(entries []model.Entry, today string) *view.TodayStatus {
	return view.Today(entries, today)
}
