package timecalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHours(t *testing.T) {
	t.Run("regular_shift", func(t *testing.T) {
		hours, err := ComputeHours("09:00", "17:30")
		require.NoError(t, err)
		assert.Equal(t, 8.5, hours)
	})

	t.Run("fractional_hours", func(t *testing.T) {
		hours, err := ComputeHours("10:00", "11:30")
		require.NoError(t, err)
		assert.Equal(t, 1.5, hours)
	})

	t.Run("end_before_start_is_zero", func(t *testing.T) {
		hours, err := ComputeHours("10:00", "09:00")
		require.NoError(t, err)
		assert.Equal(t, 0.0, hours)
	})

	t.Run("end_equals_start_is_zero", func(t *testing.T) {
		hours, err := ComputeHours("09:00", "09:00")
		require.NoError(t, err)
		assert.Equal(t, 0.0, hours)
	})

	t.Run("no_overnight_wraparound", func(t *testing.T) {
		// 22:00 -> 06:00 is not an eight hour shift, it is invalid.
		hours, err := ComputeHours("22:00", "06:00")
		require.NoError(t, err)
		assert.Equal(t, 0.0, hours)
	})

	t.Run("full_day_boundaries", func(t *testing.T) {
		hours, err := ComputeHours("00:00", "23:59")
		require.NoError(t, err)
		assert.InDelta(t, 23.983, hours, 0.001)
	})
}

func TestComputeHoursInvalidInput(t *testing.T) {
	invalid := []string{"", "9:00", "09:0", "09-00", "24:00", "09:60", "ab:cd", "09:00:00"}

	for _, v := range invalid {
		t.Run(v, func(t *testing.T) {
			_, err := ComputeHours(v, "17:00")
			assert.Error(t, err)

			_, err = ComputeHours("09:00", v)
			assert.Error(t, err)
		})
	}
}

func TestDateString(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 13, 45, 0, 0, time.Local)
	assert.Equal(t, "2024-03-05", DateString(ts))
	assert.Equal(t, "2024-03", MonthString(ts))
}
