// Package period provides UTC week/month boundary math shared by the rollup
// and review services. All boundaries are half-open: [start, end).
package period

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the wire format for dates (ISO 8601 calendar date).
const DateLayout = "2006-01-02"

// WeekStart returns the Monday 00:00 UTC of the week containing t.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	// time.Weekday: Sunday == 0; shift so Monday == 0.
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset)
}

// WeekEnd returns the exclusive end of the week containing t.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 7)
}

// MonthStart returns the 1st 00:00 UTC of the month containing t.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the exclusive end of the month containing t.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, 0)
}

// InRange reports whether t falls inside [start, end).
func InRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// MinutesBetween returns the rounded minute count from a to b, never negative.
func MinutesBetween(a, b time.Time) int {
	m := math.Round(b.Sub(a).Minutes())
	if m < 0 {
		return 0
	}
	return int(m)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// WeekStartsInMonth returns the Monday of every week whose start falls inside
// the month containing monthStart. Monthly allocation averages the weekly
// plans of exactly these weeks.
func WeekStartsInMonth(monthStart time.Time) []time.Time {
	start := MonthStart(monthStart)
	end := MonthEnd(monthStart)

	first := WeekStart(start)
	if first.Before(start) {
		first = first.AddDate(0, 0, 7)
	}

	var weeks []time.Time
	for w := first; w.Before(end); w = w.AddDate(0, 0, 7) {
		weeks = append(weeks, w)
	}
	return weeks
}

// ParseDate parses an ISO YYYY-MM-DD date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}
