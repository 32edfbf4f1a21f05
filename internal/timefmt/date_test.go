package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOfWeek(t *testing.T) {
	// 2024-06-02 was a Sunday.
	cases := map[string]int{
		"2024-06-02": 0,
		"2024-06-03": 1,
		"2024-06-08": 6,
	}
	for date, want := range cases {
		got, err := DayOfWeek(date)
		require.NoError(t, err)
		assert.Equal(t, want, got, "DayOfWeek(%q)", date)
	}

	_, err := DayOfWeek("06/02/2024")
	assert.Error(t, err)
}

func TestWeekOffset(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC) // Wednesday

	cases := map[string]int{
		"2024-06-02": 0,  // Sunday of the same week
		"2024-06-08": 0,  // Saturday of the same week
		"2024-06-09": 1,  // next Sunday
		"2024-06-20": 2,
		"2024-06-01": -1, // Saturday of the previous week
	}
	for date, want := range cases {
		got, err := WeekOffset(now, date)
		require.NoError(t, err)
		assert.Equal(t, want, got, "WeekOffset(%q)", date)
	}
}

func TestWeekOffsetNonUTCZone(t *testing.T) {
	// The same Wednesday wall-clock time in zones either side of UTC; week
	// arithmetic must follow the calendar day, not the instant.
	west := time.Date(2024, 6, 5, 10, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))
	east := time.Date(2024, 6, 5, 10, 0, 0, 0, time.FixedZone("UTC+5", 5*3600))

	for _, now := range []time.Time{west, east} {
		got, err := WeekOffset(now, "2024-06-09") // next Sunday
		require.NoError(t, err)
		assert.Equal(t, 1, got, "next week from %s", now.Location())

		got, err = WeekOffset(now, "2024-06-01") // Saturday of the previous week
		require.NoError(t, err)
		assert.Equal(t, -1, got, "previous week from %s", now.Location())

		got, err = WeekOffset(now, "2024-06-05")
		require.NoError(t, err)
		assert.Equal(t, 0, got, "same day from %s", now.Location())
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 6, 5, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, 6, 5, 23, 59, 0, 0, time.UTC)
	c := time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC)
	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
