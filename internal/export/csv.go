// Package export serializes filtered entry sets into a
// spreadsheet-compatible delimited table.
package export

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/noamashri/workhours/internal/errors"
	"github.com/noamashri/workhours/internal/model"
)

// bom keeps non-Latin text readable when the file is opened by
// spreadsheet tools that sniff the encoding.
const bom = "\ufeff"

// Columns is the fixed header row of the exported table.
var Columns = []string{"date", "start", "end", "hours", "location"}

// DelimitedTable renders the filtered set in its given order as a
// comma-delimited table: a BOM, the header row, then one row per entry.
// Every cell is quote-wrapped with internal quotes doubled, and hours
// carry exactly two decimals. An empty set is rejected with
// ErrNothingToExport instead of producing a header-only file.
func DelimitedTable(filtered []model.Entry) (string, error) {
	if len(filtered) == 0 {
		return "", apperrors.ErrNothingToExport
	}

	var b strings.Builder
	b.WriteString(bom)
	writeRow(&b, Columns)

	for _, e := range filtered {
		b.WriteByte('\n')
		writeRow(&b, []string{
			e.Date,
			e.Start,
			e.End,
			strconv.FormatFloat(e.Hours, 'f', 2, 64),
			e.Location,
		})
	}

	return b.String(), nil
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
}

// Filename returns the conventional export file name for a month.
func Filename(yearMonth string) string {
	return fmt.Sprintf("work-hours-%s.csv", yearMonth)
}
