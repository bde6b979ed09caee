package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runzenAPI/internal/run"
	"runzenAPI/internal/steps"
)

func TestCatalogShape(t *testing.T) {
	require.Len(t, Catalog, 50)

	seen := make(map[string]bool, len(Catalog))
	perCategory := make(map[string]int)
	for _, a := range Catalog {
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Description)
		assert.NotEmpty(t, a.Emoji)
		require.NotNil(t, a.Check, "id %s", a.ID)
		perCategory[a.Category]++
	}

	assert.Equal(t, 7, perCategory[CategoryMilestone])
	assert.Equal(t, 7, perCategory[CategoryDistance])
	assert.Equal(t, 6, perCategory[CategoryDistanceType])
	assert.Equal(t, 7, perCategory[CategorySpecialist])
	assert.Equal(t, 6, perCategory[CategoryStreak])
	assert.Equal(t, 5, perCategory[CategoryGoals])
	assert.Equal(t, 3, perCategory[CategoryRunCategory])
	assert.Equal(t, 9, perCategory[CategorySteps])
}

func TestEvaluateAchievementsEmptyHistory(t *testing.T) {
	agg := BuildAggregates(nil, nil, 100, testNow)
	data := EvaluateAchievements(agg)

	assert.Equal(t, 50, data.Total)
	assert.Zero(t, data.UnlockedCount)
	assert.Empty(t, data.Unlocked)
	assert.Len(t, data.Locked, 50)
}

func TestEvaluateAchievementsPartition(t *testing.T) {
	runs := []run.Entry{testRun(day(2026, time.March, 2), run.Type5K, 1600)}
	data := EvaluateAchievements(BuildAggregates(runs, nil, 100, testNow))

	assert.Equal(t, data.Total, len(data.Unlocked)+len(data.Locked))
	assert.Equal(t, len(data.Unlocked), data.UnlockedCount)

	ids := func(list []AchievementStatus) map[string]bool {
		m := make(map[string]bool, len(list))
		for _, a := range list {
			m[a.ID] = true
		}
		return m
	}
	unlocked := ids(data.Unlocked)
	assert.True(t, unlocked["first_run"])
	assert.True(t, unlocked["first_5k"])
	assert.True(t, unlocked["first_outdoor"])
	assert.False(t, unlocked["runs_5"])
	locked := ids(data.Locked)
	assert.True(t, locked["runs_5"])
	assert.False(t, locked["first_run"])
}

func TestEvaluateAchievementsMonotonic(t *testing.T) {
	var runs []run.Entry
	prev := 0
	for i := 0; i < 12; i++ {
		runs = append(runs, testRun(day(2026, time.January, 2+i*2), run.Type10K, 3300))
		data := EvaluateAchievements(BuildAggregates(runs, nil, 100, testNow))
		assert.GreaterOrEqual(t, data.UnlockedCount, prev)
		prev = data.UnlockedCount
	}
}

func TestBuildAggregatesStepDaysCollapsePerDate(t *testing.T) {
	entries := []steps.Entry{
		testSteps(day(2026, time.March, 2), 16000),
		testSteps(day(2026, time.March, 2), 21000), // same day, keep max
		testSteps(day(2026, time.March, 3), 26000),
		testSteps(day(2026, time.March, 4), 12000),
	}

	agg := BuildAggregates(nil, entries, 100, testNow)

	assert.Equal(t, 2, agg.StepDays15K)
	assert.Equal(t, 2, agg.StepDays20K)
	assert.Equal(t, 1, agg.StepDays25K)
}

func TestBuildAggregatesCategorySplit(t *testing.T) {
	treadmill := testRun(day(2026, time.March, 2), run.Type5K, 1600)
	treadmill.Category = run.CategoryTreadmill
	runs := []run.Entry{
		treadmill,
		testRun(day(2026, time.March, 3), run.Type5K, 1600),
	}

	agg := BuildAggregates(runs, nil, 100, testNow)

	assert.Equal(t, 1, agg.TreadmillRuns)
	assert.Equal(t, 1, agg.OutdoorRuns)
	assert.Equal(t, 2, agg.TotalRuns)
	assert.Equal(t, 10.0, agg.TotalKm)
}
