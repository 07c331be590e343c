package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestWeekWindowAlwaysSundayToSaturday(t *testing.T) {
	// Sweep two full weeks of anchors so every weekday is covered.
	for i := 0; i < 14; i++ {
		anchor := localDate(2025, time.August, 1).AddDate(0, 0, i)

		days := WeekWindow(anchor)

		require.Equal(t, time.Sunday, days[0].Weekday(), "anchor %s", anchor)
		require.Equal(t, time.Saturday, days[6].Weekday(), "anchor %s", anchor)
		for j := 1; j < DaysPerWeek; j++ {
			require.Equal(t, days[j-1].AddDate(0, 0, 1), days[j], "days must be consecutive")
		}
	}
}

func TestWeekWindowContainsAnchorDay(t *testing.T) {
	anchor := time.Date(2025, time.August, 7, 14, 30, 0, 0, time.Local) // a Thursday

	days := WeekWindow(anchor)

	assert.Equal(t, localDate(2025, time.August, 3), days[0])
	assert.Equal(t, localDate(2025, time.August, 9), days[6])
	assert.Equal(t, localDate(2025, time.August, 7), days[4])
}

func TestWeekWindowAnchorOnSunday(t *testing.T) {
	anchor := localDate(2025, time.August, 3)

	days := WeekWindow(anchor)

	assert.Equal(t, anchor, days[0])
}

func TestOccupiesInclusiveBounds(t *testing.T) {
	start := time.Date(2025, time.August, 7, 22, 0, 0, 0, time.Local)
	end := time.Date(2025, time.August, 9, 6, 0, 0, 0, time.Local)

	assert.False(t, Occupies(start, end, localDate(2025, time.August, 6)))
	// Time of day must not matter: the midnight-anchored day still counts.
	assert.True(t, Occupies(start, end, localDate(2025, time.August, 7)))
	assert.True(t, Occupies(start, end, localDate(2025, time.August, 8)))
	assert.True(t, Occupies(start, end, localDate(2025, time.August, 9)))
	assert.False(t, Occupies(start, end, localDate(2025, time.August, 10)))
}

func TestOccupiesSingleDayBooking(t *testing.T) {
	start := time.Date(2025, time.August, 7, 9, 0, 0, 0, time.Local)
	end := time.Date(2025, time.August, 7, 17, 0, 0, 0, time.Local)

	assert.True(t, Occupies(start, end, localDate(2025, time.August, 7)))
	assert.False(t, Occupies(start, end, localDate(2025, time.August, 8)))
}

func TestRangeLabel(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{"same month", localDate(2025, time.August, 3), localDate(2025, time.August, 9), "August 2025"},
		{"cross month", localDate(2025, time.July, 27), localDate(2025, time.August, 2), "Jul - Aug 2025"},
		{"cross year", localDate(2025, time.December, 28), localDate(2026, time.January, 3), "Dec - Jan 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangeLabel(tt.start, tt.end))
		})
	}
}

func TestDurationDaysRoundsUp(t *testing.T) {
	start := time.Date(2025, time.August, 7, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.August, 9, 15, 0, 0, 0, time.UTC)

	// 2d5h rounds up to the next whole day.
	assert.Equal(t, 3, DurationDays(start, end))
}

func TestDurationDaysExactDays(t *testing.T) {
	start := time.Date(2025, time.August, 7, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, DurationDays(start, start.Add(48*time.Hour)))
	assert.Equal(t, 0, DurationDays(start, start))
}

func TestDurationDaysAbsolute(t *testing.T) {
	start := time.Date(2025, time.August, 7, 10, 0, 0, 0, time.UTC)
	end := start.Add(-30 * time.Hour)

	assert.Equal(t, 2, DurationDays(start, end))
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2025, time.August, 7, 0, 1, 0, 0, time.Local)
	b := time.Date(2025, time.August, 7, 23, 59, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, b.Add(2*time.Minute)))
}
