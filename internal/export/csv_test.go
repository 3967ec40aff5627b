package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/noamashri/workhours/internal/errors"
	"github.com/noamashri/workhours/internal/model"
)

func TestDelimitedTable(t *testing.T) {
	table, err := DelimitedTable([]model.Entry{
		{Date: "2024-03-01", Start: "09:00", End: "17:00", Location: "Office", Hours: 8},
		{Date: "2024-03-02", Start: "10:00", End: "11:30", Location: "", Hours: 1.5},
	})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(table, "\ufeff"))

	lines := strings.Split(strings.TrimPrefix(table, "\ufeff"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"date","start","end","hours","location"`, lines[0])
	assert.Equal(t, `"2024-03-01","09:00","17:00","8.00","Office"`, lines[1])
	assert.Equal(t, `"2024-03-02","10:00","11:30","1.50",""`, lines[2])
}

func TestDelimitedTableQuoteEscaping(t *testing.T) {
	table, err := DelimitedTable([]model.Entry{
		{Date: "2024-03-01", Start: "09:00", End: "17:00", Location: `Tel Aviv "Office"`, Hours: 8},
	})
	require.NoError(t, err)

	assert.Contains(t, table, `"Tel Aviv ""Office"""`)
}

func TestDelimitedTablePreservesOrder(t *testing.T) {
	table, err := DelimitedTable([]model.Entry{
		{Date: "2024-03-05", Hours: 1},
		{Date: "2024-03-01", Hours: 2},
	})
	require.NoError(t, err)

	// Rows come out in the filtered set's order, not re-sorted here.
	assert.Less(t, strings.Index(table, "2024-03-05"), strings.Index(table, "2024-03-01"))
}

func TestDelimitedTableEmpty(t *testing.T) {
	_, err := DelimitedTable(nil)
	assert.ErrorIs(t, err, apperrors.ErrNothingToExport)

	_, err = DelimitedTable([]model.Entry{})
	assert.ErrorIs(t, err, apperrors.ErrNothingToExport)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "work-hours-2024-03.csv", Filename("2024-03"))
}
