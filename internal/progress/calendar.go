package progress

import (
	"fmt"
	"time"
)

// TrackedFloor is the earliest date the product aggregates over. Entries
// before it still exist in the store but are excluded from every derived
// view (streaks, goals, records, achievements, month reviews).
var TrackedFloor = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)

// WeekBounds returns the Sunday-anchored week containing t: Sunday 00:00:00
// through Saturday 23:59:59.999 in t's location. Every component that
// buckets activity by week goes through this function.
func WeekBounds(t time.Time) (start, end time.Time) {
	daysSinceSunday := int(t.Weekday()) // Sunday == 0
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	start = start.AddDate(0, 0, -daysSinceSunday)
	end = start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}

// WeekStart is WeekBounds truncated to the anchor Sunday.
func WeekStart(t time.Time) time.Time {
	start, _ := WeekBounds(t)
	return start
}

// WeekID renders the Sunday-anchored week identifier, e.g. "2026-W05".
// Week 1 is the week containing January 1, so the week that straddles a
// year boundary is labeled with the incoming year.
func WeekID(t time.Time) string {
	start := WeekStart(t)
	year := start.Year()
	nextJan1 := time.Date(year+1, time.January, 1, 0, 0, 0, 0, start.Location())
	if start.AddDate(0, 0, 7).After(nextJan1) {
		year++
	}
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, start.Location())
	week := 1
	for d := WeekStart(jan1); d.Before(start); d = d.AddDate(0, 0, 7) {
		week++
	}
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthBounds returns the first instant of (year, month) and the first
// instant of the following month.
func MonthBounds(year int, month time.Month) (start, next time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	next = start.AddDate(0, 1, 0)
	return start, next
}

// MonthTracked reports whether (year, month) is at or after the tracked
// data floor. Months before the floor are excluded from monthly views.
func MonthTracked(year int, month time.Month) bool {
	start, _ := MonthBounds(year, month)
	return !start.Before(TrackedFloor)
}

// daysRemainingInMonth counts calendar days from now to the end of its
// month, inclusive of today.
func daysRemainingInMonth(now time.Time) int {
	_, next := MonthBounds(now.Year(), now.Month())
	lastDay := next.AddDate(0, 0, -1).Day()
	return lastDay - now.Day() + 1
}

// daysRemainingInYear counts calendar days from now to December 31,
// inclusive of today.
func daysRemainingInYear(now time.Time) int {
	return daysInYear(now.Year()) - now.YearDay() + 1
}

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local).YearDay()
}

func daysInMonth(year int, month time.Month) int {
	_, next := MonthBounds(year, month)
	return next.AddDate(0, 0, -1).Day()
}
