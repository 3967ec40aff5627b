// Package timecalc converts wall-clock time pairs into fractional hours.
package timecalc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ComputeHours returns the span between two HH:MM wall-clock times as
// fractional hours (90 minutes -> 1.5). A shift ending at or before its
// start yields 0: there is no overnight wrap-around, such a pair is
// simply invalid input.
func ComputeHours(start, end string) (float64, error) {
	startMinutes, err := parseClock(start)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", start, err)
	}
	endMinutes, err := parseClock(end)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", end, err)
	}

	diff := endMinutes - startMinutes
	if diff <= 0 {
		return 0, nil
	}
	return float64(diff) / 60, nil
}

// parseClock parses a 24-hour HH:MM string into minutes since midnight.
func parseClock(value string) (int, error) {
	hh, mm, ok := strings.Cut(value, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, fmt.Errorf("expected HH:MM")
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("hour out of range")
	}

	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("minute out of range")
	}

	return hours*60 + minutes, nil
}

// DateString formats t as a canonical zero-padded calendar date in
// local time.
func DateString(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// MonthString formats t as a YYYY-MM year-month in local time.
func MonthString(t time.Time) string {
	return t.Local().Format("2006-01")
}
