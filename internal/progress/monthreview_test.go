package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runzenAPI/internal/run"
	"runzenAPI/internal/steps"
	"runzenAPI/internal/weight"
)

func TestMonthInReviewEmptyMonth(t *testing.T) {
	review := MonthInReview(nil, nil, nil, 2026, time.February, testNow)

	assert.Equal(t, "February 2026", review.Month)
	assert.False(t, review.ShouldShow)
	assert.Zero(t, review.TotalRuns)
	assert.Equal(t, "0:00", review.AveragePace)
	assert.Nil(t, review.Weight)
}

func TestMonthInReviewTotals(t *testing.T) {
	treadmill := testRun(day(2026, time.February, 10), run.Type5K, 1500)
	treadmill.Category = run.CategoryTreadmill
	runs := []run.Entry{
		testRun(day(2026, time.February, 2), run.Type10K, 3000),
		treadmill,
		testRun(day(2026, time.March, 1), run.Type10K, 3000), // next month
	}
	stepEntries := []steps.Entry{
		testSteps(day(2026, time.February, 5), 21000),
		testSteps(day(2026, time.February, 6), 16000),
	}
	weights := []weight.Entry{
		testWeight(day(2026, time.February, 1), 205),
		testWeight(day(2026, time.February, 27), 203),
	}

	review := MonthInReview(runs, stepEntries, weights, 2026, time.February, testNow)

	assert.True(t, review.ShouldShow)
	assert.Equal(t, 2, review.TotalRuns)
	assert.Equal(t, 15.0, review.TotalKm)
	assert.Equal(t, 4500, review.TotalDurationSeconds)
	assert.Equal(t, "5:00", review.AveragePace)
	assert.Equal(t, 1, review.OutdoorRuns)
	assert.Equal(t, 1, review.TreadmillRuns)
	assert.Equal(t, 1, review.RunsByType[run.Type10K])
	assert.Equal(t, 2, review.StepDays15K)
	assert.Equal(t, 1, review.StepDays20K)
	assert.Zero(t, review.StepDays25K)

	require.NotNil(t, review.Weight)
	assert.Equal(t, 205.0, review.Weight.StartWeight)
	assert.Equal(t, 203.0, review.Weight.EndWeight)
	assert.Equal(t, -2.0, review.Weight.WeightChange)
	assert.Equal(t, "down", review.Weight.Trend)
	assert.Equal(t, 2, review.Weight.EntriesCount)
}

func TestMonthInReviewDeltasVsPriorMonth(t *testing.T) {
	runs := []run.Entry{
		testRun(day(2026, time.January, 10), run.Type10K, 3000),
		testRun(day(2026, time.February, 5), run.Type10K, 3000),
		testRun(day(2026, time.February, 12), run.Type21K, 7500),
	}

	review := MonthInReview(runs, nil, nil, 2026, time.February, testNow)

	assert.Equal(t, 1, review.RunsVsLastMonth)
	assert.Equal(t, 21.0, review.KmVsLastMonth)
}

func TestMonthInReviewJanuaryHasNoPriorMonth(t *testing.T) {
	runs := []run.Entry{testRun(day(2026, time.January, 10), run.Type10K, 3000)}

	review := MonthInReview(runs, nil, nil, 2026, time.January, testNow)

	// December 2025 is before the tracked floor, so the deltas are absolute.
	assert.Equal(t, 1, review.RunsVsLastMonth)
	assert.Equal(t, 10.0, review.KmVsLastMonth)
}

func TestMonthInReviewBestStreakWithinMonth(t *testing.T) {
	var runs []run.Entry
	runs = append(runs, completeWeek(day(2026, time.February, 1))...)
	runs = append(runs, completeWeek(day(2026, time.February, 8))...)
	// Week of Feb 15 incomplete, then one more complete week.
	runs = append(runs, completeWeek(day(2026, time.February, 22))...)

	review := MonthInReview(runs, nil, nil, 2026, time.February, testNow)

	assert.Equal(t, 2, review.BestStreak)
}

func TestMonthInReviewFutureMonthNeverShows(t *testing.T) {
	runs := []run.Entry{testRun(day(2026, time.June, 2), run.Type10K, 3000)}

	review := MonthInReview(runs, nil, nil, 2026, time.June, testNow)

	assert.False(t, review.ShouldShow)
}
