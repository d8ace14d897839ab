// Package dates holds calendar-day arithmetic used by streak and check-in
// bookkeeping. All functions are pure and total.
package dates

import "time"

// DayStart normalizes t to 00:00:00 of its calendar date, keeping t's location.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether a and b fall on the same calendar date.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsConsecutiveDay reports whether b falls on the calendar day right after a.
func IsConsecutiveDay(a, b time.Time) bool {
	return IsSameDay(DayStart(a).AddDate(0, 0, 1), b)
}

// DaysBetween returns the number of calendar days separating the day-starts
// of a and b. Order-independent, never negative.
func DaysBetween(a, b time.Time) int {
	start := DayStart(a)
	end := DayStart(b)
	if end.Before(start) {
		start, end = end, start
	}
	// Rounding absorbs DST transitions, which make some days 23 or 25 hours.
	return int(end.Sub(start).Hours()/24 + 0.5)
}
