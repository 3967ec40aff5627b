package view

import (
	"strings"

	"github.com/noamashri/workhours/internal/model"
)

// FilterByMonth keeps the entries whose date has the YYYY-MM prefix,
// sorted ascending by date. The prefix match is intentional and sound
// only because dates are stored in canonical zero-padded ISO form;
// input order never affects output order.
func FilterByMonth(entries []model.Entry, yearMonth string) []model.Entry {
	filtered := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Date, yearMonth) {
			filtered = append(filtered, e)
		}
	}
	return sortedByDate(filtered, true)
}

// Aggregates summarizes a filtered month.
type Aggregates struct {
	Total   float64
	Count   int
	Average float64
}

// Aggregate computes total, count and average hours over the filtered
// set. An empty set yields all zeroes.
func Aggregate(filtered []model.Entry) Aggregates {
	agg := Aggregates{Count: len(filtered)}
	for _, e := range filtered {
		agg.Total += e.Hours
	}
	if agg.Count > 0 {
		agg.Average = agg.Total / float64(agg.Count)
	}
	return agg
}

// Month carries the selected year-month together with its filtered
// entries and aggregates. Export and clear act on this snapshot so the
// exported or cleared set always matches what is displayed.
type Month struct {
	YearMonth string
	Entries   []model.Entry
	Totals    Aggregates
}

// NewMonth filters and aggregates the collection for yearMonth.
func NewMonth(entries []model.Entry, yearMonth string) Month {
	filtered := FilterByMonth(entries, yearMonth)
	return Month{
		YearMonth: yearMonth,
		Entries:   filtered,
		Totals:    Aggregate(filtered),
	}
}

// Empty reports whether the selected month has no entries.
func (m Month) Empty() bool {
	return len(m.Entries) == 0
}
