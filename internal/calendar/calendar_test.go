package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	instant := time.Date(2024, time.February, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-05", FormatDate(instant))
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		n        int
		expected string
	}{
		{
			name:     "should add days within a month",
			start:    time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
			n:        10,
			expected: "2024-01-11",
		},
		{
			name:     "should subtract days across a month boundary",
			start:    time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
			n:        -1,
			expected: "2024-02-29",
		},
		{
			name:     "should handle year rollover",
			start:    time.Date(2023, time.December, 31, 9, 0, 0, 0, time.UTC),
			n:        1,
			expected: "2024-01-01",
		},
		{
			name:     "should be a no-op for zero days",
			start:    time.Date(2024, time.June, 15, 23, 30, 0, 0, time.UTC),
			n:        0,
			expected: "2024-06-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(AddDays(tt.start, tt.n)))
		})
	}
}

func TestAddDays_DSTStability(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// US DST starts 2024-03-10: the day is 23 hours long, so naive
	// 24-hour arithmetic from midnight drifts a calendar day.
	tests := []struct {
		name     string
		start    time.Time
		n        int
		expected string
	}{
		{
			name:     "should cross spring-forward without losing a day",
			start:    time.Date(2024, time.March, 9, 0, 30, 0, 0, loc),
			n:        2,
			expected: "2024-03-11",
		},
		{
			name:     "should cross fall-back without gaining a day",
			start:    time.Date(2024, time.November, 2, 23, 30, 0, 0, loc),
			n:        2,
			expected: "2024-11-04",
		},
		{
			name:     "should step back across spring-forward",
			start:    time.Date(2024, time.March, 11, 0, 30, 0, 0, loc),
			n:        -1,
			expected: "2024-03-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(AddDays(tt.start, tt.n)))
		})
	}

	t.Run("chained single-day steps match one multi-day step", func(t *testing.T) {
		start := time.Date(2024, time.March, 8, 0, 15, 0, 0, loc)
		stepped := start
		for i := 0; i < 5; i++ {
			stepped = AddDays(stepped, 1)
		}
		assert.Equal(t, FormatDate(AddDays(start, 5)), FormatDate(stepped))
	})
}

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		ok       bool
	}{
		{name: "should match a full name", input: "Sunday", expected: 0, ok: true},
		{name: "should match case-insensitively", input: "monday", expected: 1, ok: true},
		{name: "should match a unique prefix", input: "Tu", expected: 2, ok: true},
		{name: "should match a three-letter abbreviation", input: "Wed", expected: 3, ok: true},
		{name: "should reject an ambiguous prefix", input: "T", ok: false},
		{name: "should reject an ambiguous S prefix", input: "S", ok: false},
		{name: "should reject an unknown name", input: "Someday", ok: false},
		{name: "should reject the empty string", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, ok := WeekdayIndex(tt.input)

			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, index)
			}
		})
	}
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Tuesday", WeekdayName(2, false))
	assert.Equal(t, "Tue", WeekdayName(2, true))
	assert.Equal(t, "", WeekdayName(7, false))
}

func TestWeekdayRoundTrip(t *testing.T) {
	for i := 0; i < 7; i++ {
		index, ok := WeekdayIndex(WeekdayName(i, true))
		require.True(t, ok)
		assert.Equal(t, i, index)
	}
}
