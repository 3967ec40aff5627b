// Package validate provides input validation helpers for the workhours CLI.
package validate

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/noamashri/workhours/internal/errors"
)

// MaxLocationLength is the maximum length for a location label.
const MaxLocationLength = 128

var (
	// dateRegex enforces the zero-padded canonical form. Month prefix
	// filtering is only sound while every stored date matches it.
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	monthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

// Date validates a canonical YYYY-MM-DD calendar date.
func Date(date string) error {
	if !dateRegex.MatchString(date) {
		return errors.NewUserErrorWithField("date", date,
			"Invalid date",
			"Use YYYY-MM-DD, e.g. 2024-03-01")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.NewUserErrorWithField("date", date,
			"Invalid date",
			"That day does not exist on the calendar")
	}
	return nil
}

// ClockTime validates a 24-hour HH:MM wall-clock time for the named field.
func ClockTime(field, value string) error {
	if !clockRegex.MatchString(value) {
		return errors.NewUserErrorWithField(field, value,
			"Invalid time",
			"Use 24-hour HH:MM, e.g. 09:00 or 17:30")
	}
	return nil
}

// YearMonth validates a YYYY-MM month selector.
func YearMonth(yearMonth string) error {
	if !monthRegex.MatchString(yearMonth) {
		return errors.NewUserErrorWithField("month", yearMonth,
			"Invalid month",
			"Use YYYY-MM, e.g. 2024-03")
	}
	return nil
}

// Location validates the free-text location label. Empty is allowed.
func Location(location string) error {
	if utf8.RuneCountInString(location) > MaxLocationLength {
		return errors.NewUserError(
			"Location too long",
			"Locations must be 128 characters or fewer")
	}
	return nil
}
