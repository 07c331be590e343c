// Package calendar holds the pure date math behind the week dashboard:
// the Sunday-anchored week window, calendar-day range membership and the
// header label for a week range.
//
// Range membership is calendar-day based throughout: both the queried day
// and the booking endpoints are truncated to local midnight before
// comparison, so a booking starting late in the evening still occupies its
// first calendar day.
package calendar

import (
	"math"
	"time"
)

// DaysPerWeek is the size of the displayed window.
const DaysPerWeek = 7

// DayOf truncates t to local midnight.
func DayOf(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// WeekWindow returns the seven days of the Sunday-to-Saturday week
// containing the anchor, each at local midnight.
func WeekWindow(anchor time.Time) [DaysPerWeek]time.Time {
	start := DayOf(anchor).AddDate(0, 0, -int(anchor.In(time.Local).Weekday()))

	var days [DaysPerWeek]time.Time
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// Occupies reports whether day falls inside the booking range, inclusive on
// both ends and compared by calendar day.
func Occupies(start, end, day time.Time) bool {
	d := DayOf(day)
	return !d.Before(DayOf(start)) && !d.After(DayOf(end))
}

// RangeLabel renders the header for a week span: "August 2025" when start
// and end share a month, "Jul - Aug 2025" otherwise.
func RangeLabel(start, end time.Time) string {
	if start.Month() == end.Month() && start.Year() == end.Year() {
		return start.Format("January 2006")
	}
	return start.Format("Jan") + " - " + end.Format("Jan 2006")
}

// DurationDays is the booking duration in whole days: the absolute distance
// between the endpoints divided by 24h, rounded up.
func DurationDays(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}
