// Package view derives display collections from the entry store: the
// recent list, location suggestions, today's rollup and the month view.
// All functions work on snapshots and never modify their input.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/noamashri/workhours/internal/model"
)

// DefaultRecentLimit is the number of entries shown on the recent list.
const DefaultRecentLimit = 5

// Recent returns the most recent entries, newest date first. An empty
// collection yields an empty list, never an error.
func Recent(entries []model.Entry, limit int) []model.Entry {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	sorted := sortedByDate(entries, false)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// LocationSuggestions returns the distinct, trimmed, non-empty location
// values across all entries in locale-aware order. Input-assist data
// only, not an authoritative list.
func LocationSuggestions(entries []model.Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	locations := make([]string, 0, len(entries))
	for _, e := range entries {
		loc := strings.TrimSpace(e.Location)
		if loc == "" {
			continue
		}
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		locations = append(locations, loc)
	}

	collate.New(language.Und, collate.Loose).SortStrings(locations)
	return locations
}

// TodayStatus is the rollup of hours recorded for a single day.
type TodayStatus struct {
	Date       string
	TotalHours float64
}

// Today sums the hours recorded for the given date. It returns nil when
// the day has no entries, which is distinct from a zero total: callers
// hide the rollup entirely instead of showing "0.00 hours".
func Today(entries []model.Entry, today string) *TodayStatus {
	var total float64
	found := false
	for _, e := range entries {
		if e.Date == today {
			total += e.Hours
			found = true
		}
	}
	if !found {
		return nil
	}
	return &TodayStatus{Date: today, TotalHours: total}
}

// sortedByDate returns a copy of entries ordered by date. Date strings
// are canonical zero-padded ISO, so lexicographic order is calendar
// order.
func sortedByDate(entries []model.Entry, ascending bool) []model.Entry {
	sorted := make([]model.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}
