package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runzenAPI/internal/run"
	"runzenAPI/internal/user"
)

func TestGoalsEmptyHistory(t *testing.T) {
	g := Goals(nil, user.DefaultGoals(uuid.New()), testNow)

	assert.Equal(t, user.DefaultYearlyKmGoal, g.Yearly.GoalKm)
	assert.Zero(t, g.Yearly.CurrentKm)
	assert.Equal(t, user.DefaultYearlyKmGoal, g.Yearly.RemainingKm)
	assert.Zero(t, g.Yearly.Percent)
	assert.False(t, g.Yearly.OnTrack)
	assert.Equal(t, "March", g.Monthly.MonthName)
	assert.Zero(t, g.MonthlyGoalsHit)
}

func TestGoalsMidMonthProgress(t *testing.T) {
	goals := user.DefaultGoals(uuid.New())
	goals.MonthlyKmGoal = 100
	runs := []run.Entry{
		testRun(day(2026, time.March, 2), run.Type21K, 7500),
		testRun(day(2026, time.March, 10), run.Type21K, 7500),
		testRun(day(2026, time.March, 16), run.Type10K, 3300),
	}

	g := Goals(runs, goals, testNow)

	assert.Equal(t, 52.0, g.Monthly.CurrentKm)
	assert.Equal(t, 48.0, g.Monthly.RemainingKm)
	assert.Equal(t, 52.0, g.Monthly.Percent)
	assert.Equal(t, 14, g.Monthly.DaysRemaining)
	assert.False(t, g.Monthly.IsComplete)
	// 18 of 31 days elapsed needs 58.06km to be on pace.
	assert.False(t, g.Monthly.OnTrack)
}

func TestGoalsPercentNotClampedAt100(t *testing.T) {
	goals := user.DefaultGoals(uuid.New())
	goals.MonthlyKmGoal = 50
	runs := []run.Entry{
		testRun(day(2026, time.March, 2), run.Type21K, 7500),
		testRun(day(2026, time.March, 5), run.Type21K, 7500),
		testRun(day(2026, time.March, 10), run.Type18K, 6400),
	}

	g := Goals(runs, goals, testNow)

	require.Equal(t, 60.0, g.Monthly.CurrentKm)
	assert.Equal(t, 120.0, g.Monthly.Percent)
	assert.Zero(t, g.Monthly.RemainingKm)
	assert.True(t, g.Monthly.IsComplete)
	assert.True(t, g.Monthly.OnTrack)
}

func TestGoalsRecomputeAfterBackdatedRun(t *testing.T) {
	goals := user.DefaultGoals(uuid.New())
	goals.YearlyKmGoal = 1000
	runs := []run.Entry{testRun(day(2026, time.March, 2), run.Type10K, 3300)}

	before := Goals(runs, goals, testNow)
	runs = append(runs, testRun(day(2026, time.January, 10), run.Type21K, 7500))
	after := Goals(runs, goals, testNow)

	assert.Equal(t, before.Yearly.CurrentKm+21, after.Yearly.CurrentKm)
	// The January run lands in January's bucket, not March's.
	assert.Equal(t, before.Monthly.CurrentKm, after.Monthly.CurrentKm)
}

func TestMonthlyGoalsHitCountsFromTrackedFloor(t *testing.T) {
	var runs []run.Entry
	// January: five 21ks meet a 100km goal.
	for d := 2; d <= 30; d += 7 {
		runs = append(runs, testRun(day(2026, time.January, d), run.Type21K, 7500))
	}
	// February: 42km falls short.
	runs = append(runs, testRun(day(2026, time.February, 3), run.Type21K, 7500))
	runs = append(runs, testRun(day(2026, time.February, 15), run.Type21K, 7500))
	// March so far: 105km meets it.
	for d := 1; d <= 15; d += 3 {
		runs = append(runs, testRun(day(2026, time.March, d), run.Type21K, 7500))
	}

	assert.Equal(t, 2, MonthlyGoalsHit(runs, 100, testNow))
	assert.Zero(t, MonthlyGoalsHit(runs, 0, testNow))
}
