package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"runzenAPI/internal/run"
)

func TestSummaryEmptyHistory(t *testing.T) {
	s := Summary(nil, testNow)

	assert.Zero(t, s.TotalRuns)
	assert.Zero(t, s.TotalKm)
	assert.Equal(t, "0:00", s.AveragePace)
	assert.Zero(t, s.CurrentStreak)
	assert.Zero(t, s.LongestStreak)
}

func TestSummaryBucketsWeekAndMonth(t *testing.T) {
	runs := []run.Entry{
		testRun(day(2026, time.January, 10), run.Type10K, 3000),
		testRun(day(2026, time.March, 2), run.Type5K, 1500),
		testRun(day(2026, time.March, 16), run.Type5K, 1500), // this week
	}

	s := Summary(runs, testNow)

	assert.Equal(t, 3, s.TotalRuns)
	assert.Equal(t, 20.0, s.TotalKm)
	assert.Equal(t, 1, s.RunsThisWeek)
	assert.Equal(t, 5.0, s.KmThisWeek)
	assert.Equal(t, 2, s.RunsThisMonth)
	assert.Equal(t, 10.0, s.KmThisMonth)
	// 6000s over 20km.
	assert.Equal(t, "5:00", s.AveragePace)
}

func TestSummaryIgnoresRunsBeforeTrackedFloor(t *testing.T) {
	runs := []run.Entry{
		testRun(day(2025, time.December, 20), run.Type10K, 3000),
		testRun(day(2026, time.March, 2), run.Type5K, 1500),
	}

	s := Summary(runs, testNow)

	assert.Equal(t, 1, s.TotalRuns)
	assert.Equal(t, 5.0, s.TotalKm)
}
