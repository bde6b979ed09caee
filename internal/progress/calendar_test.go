package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekBoundsAnchorsOnSunday(t *testing.T) {
	start, end := WeekBounds(testNow)

	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local), start)
	assert.True(t, end.Before(start.AddDate(0, 0, 7)))
	assert.Equal(t, time.Saturday, end.Weekday())
}

func TestWeekBoundsSundayMapsToItself(t *testing.T) {
	sunday := time.Date(2026, time.March, 15, 23, 59, 0, 0, time.Local)
	start, _ := WeekBounds(sunday)
	assert.Equal(t, 15, start.Day())
}

func TestWeekBoundsPartition(t *testing.T) {
	// Every day of a given week resolves to the same anchor.
	anchor := WeekStart(day(2026, time.March, 15))
	for offset := 0; offset < 7; offset++ {
		d := day(2026, time.March, 15+offset)
		assert.Equal(t, anchor, WeekStart(d), "day %s", d)
	}
	next := WeekStart(day(2026, time.March, 22))
	assert.Equal(t, anchor.AddDate(0, 0, 7), next)
}

func TestWeekID(t *testing.T) {
	// Week 1 starts on 2025-12-28, the Sunday of the week containing Jan 1.
	assert.Equal(t, "2026-W12", WeekID(testNow))
	assert.Equal(t, "2026-W01", WeekID(day(2026, time.January, 1)))
}

func TestWeekIDYearBoundary(t *testing.T) {
	// The week straddling the boundary carries the incoming year, and every
	// day of it resolves to the same id.
	assert.Equal(t, "2026-W01", WeekID(day(2025, time.December, 28)))
	assert.Equal(t, "2026-W01", WeekID(day(2025, time.December, 31)))
	assert.Equal(t, "2026-W01", WeekID(day(2026, time.January, 3)))
	assert.Equal(t, "2026-W02", WeekID(day(2026, time.January, 4)))

	// Late December already belongs to the next year's week 1.
	assert.Equal(t, "2027-W01", WeekID(day(2026, time.December, 27)))
	assert.Equal(t, "2027-W01", WeekID(day(2026, time.December, 31)))
	assert.Equal(t, "2026-W52", WeekID(day(2026, time.December, 26)))
}

func TestMonthBounds(t *testing.T) {
	start, next := MonthBounds(2026, time.February)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), next)
}

func TestMonthTracked(t *testing.T) {
	assert.False(t, MonthTracked(2025, time.December))
	assert.True(t, MonthTracked(2026, time.January))
	assert.True(t, MonthTracked(2026, time.August))
}

func TestDaysRemaining(t *testing.T) {
	// March 18 to March 31 inclusive of today.
	assert.Equal(t, 14, daysRemainingInMonth(testNow))
	assert.Equal(t, 289, daysRemainingInYear(testNow))
}
