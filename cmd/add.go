package cmd

import (
	"fmt"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/spf13/cobra"

	apperrors "github.com/noamashri/workhours/internal/errors"
	"github.com/noamashri/workhours/internal/logging"
	"github.com/noamashri/workhours/internal/model"
	"github.com/noamashri/workhours/internal/output"
	"github.com/noamashri/workhours/internal/timecalc"
	"github.com/noamashri/workhours/internal/validate"
)

// Add command flags.
var (
	addFlagDate     string
	addFlagLocation string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:     "add START END",
	Aliases: []string{"a", "log"},
	Short:   "Record a work shift",
	Long: `Record a work shift with its start and end time. Saving a shift for a
date that already has one replaces it; each date carries at most one
shift.

The date defaults to today and also accepts natural language.

Examples:
  workhours add 09:00 17:30
  workhours add 09:00 17:30 --location "Tel Aviv"
  workhours add 08:00 16:00 --date 2024-03-01
  workhours add 08:00 16:00 --date yesterday`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFlagDate, "date", "d", "", "Shift date (default today)")
	addCmd.Flags().StringVarP(&addFlagLocation, "location", "l", "", "Where the shift took place")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	start, end := args[0], args[1]

	if err := validate.ClockTime("start", start); err != nil {
		return err
	}
	if err := validate.ClockTime("end", end); err != nil {
		return err
	}
	if err := validate.Location(addFlagLocation); err != nil {
		return err
	}

	date, err := resolveDate(addFlagDate)
	if err != nil {
		return err
	}

	res, err := ctx.Entries.Upsert(model.Draft{
		Date:     date,
		Start:    start,
		End:      end,
		Location: addFlagLocation,
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrEndNotAfterStart) {
			return apperrors.NewUserErrorWithField("end", end,
				"End time must be after start time",
				"Overnight shifts are not supported; record them as two entries")
		}
		return err
	}

	logging.Debug("entry saved", "date", res.Entry.Date, "hours", res.Entry.Hours, "replaced", res.Replaced)

	// The save is complete; every view below derives from the persisted
	// snapshot, never from pre-save state.
	today := timecalc.DateString(time.Now())
	status := viewToday(res.Entries, today)
	recent := viewRecent(res.Entries)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(&output.SaveResponse{
			Status:   "saved",
			Entry:    res.Entry,
			Replaced: res.Replaced,
			Today:    output.NewTodayOutput(status),
			Recent:   recent,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Saved %s: %s → %s (%s hours)",
		res.Entry.Date, res.Entry.Start, res.Entry.End, output.FormatHours(res.Entry.Hours)))
	if res.Replaced {
		cli.Muted("Replaced the previous entry for that date.")
	}
	cli.PrintTodayStatus(status)

	if len(recent) > 0 {
		cli.Println("")
		cli.Title("Recent entries")
		cli.PrintEntryList(recent)
	}
	return nil
}

// resolveDate turns the --date flag into a canonical YYYY-MM-DD string.
// An empty flag means today; canonical dates pass through validation;
// anything else goes through natural language parsing.
func resolveDate(flag string) (string, error) {
	if flag == "" {
		return timecalc.DateString(time.Now()), nil
	}

	if err := validate.Date(flag); err == nil {
		return flag, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	parsed, err := dateparser.Parse(cfg, flag)
	if err != nil {
		return "", apperrors.NewUserErrorWithField("date", flag,
			"Invalid date",
			"Use YYYY-MM-DD or natural language like 'yesterday'")
	}
	return timecalc.DateString(parsed.Time), nil
}
