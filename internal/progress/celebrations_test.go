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

func celebrationTypes(list []run.Celebration) []string {
	types := make([]string, 0, len(list))
	for _, c := range list {
		types = append(types, c.Type)
	}
	return types
}

func TestDetectRunCelebrationsFirstRun(t *testing.T) {
	first := testRun(day(2026, time.March, 16), run.Type5K, 1600)

	out := DetectRunCelebrations([]run.Entry{first}, first, user.DefaultGoals(uuid.New()), testNow)

	require.Equal(t, []string{run.CelebrationPersonalBest}, celebrationTypes(out))
	assert.Contains(t, out[0].Message, "First 5k completed")
}

func TestDetectRunCelebrationsImprovedRecordMessage(t *testing.T) {
	old := testRun(day(2026, time.March, 2), run.Type5K, 1600)
	faster := testRun(day(2026, time.March, 16), run.Type5K, 1500)
	history := []run.Entry{old, faster}

	out := DetectRunCelebrations(history, faster, user.DefaultGoals(uuid.New()), testNow)

	require.Equal(t, []string{run.CelebrationPersonalBest}, celebrationTypes(out))
	assert.Contains(t, out[0].Message, "New personal best")
}

func TestDetectRunCelebrationsWeekCompletion(t *testing.T) {
	sunday := day(2026, time.March, 15)
	history := []run.Entry{
		testRun(sunday, run.Type10K, 3300),
		testRun(sunday.AddDate(0, 0, 1), run.Type5K, 1600),
	}
	// Slower than both earlier runs at its distance, so no PB fires.
	closing := testRun(sunday.AddDate(0, 0, 2), run.Type5K, 1700)
	history = append(history, closing)

	out := DetectRunCelebrations(history, closing, user.DefaultGoals(uuid.New()), testNow)

	require.Equal(t, []string{run.CelebrationStreak}, celebrationTypes(out))
	assert.Contains(t, out[0].Message, "streak")
}

func TestDetectRunCelebrationsMonthlyGoalCrossing(t *testing.T) {
	goals := user.DefaultGoals(uuid.New())
	goals.MonthlyKmGoal = 40
	history := []run.Entry{
		testRun(day(2026, time.March, 2), run.Type21K, 7600),
		testRun(day(2026, time.March, 9), run.Type10K, 3400),
	}
	// 31km so far; this run crosses 40.
	crossing := testRun(day(2026, time.March, 16), run.Type10K, 3500)
	history = append(history, crossing)

	out := DetectRunCelebrations(history, crossing, goals, testNow)

	assert.Contains(t, celebrationTypes(out), run.CelebrationMonthlyGoal)
}

func TestDetectRunCelebrationsAlreadyPastGoalStaysQuiet(t *testing.T) {
	goals := user.DefaultGoals(uuid.New())
	goals.MonthlyKmGoal = 20
	history := []run.Entry{
		testRun(day(2026, time.March, 2), run.Type21K, 7600),
	}
	after := testRun(day(2026, time.March, 16), run.Type21K, 7700)
	history = append(history, after)

	out := DetectRunCelebrations(history, after, goals, testNow)

	assert.NotContains(t, celebrationTypes(out), run.CelebrationMonthlyGoal)
}

func TestDetectRunCelebrationsIgnoresUntrackedMonths(t *testing.T) {
	goals := user.DefaultGoals(uuid.New())
	goals.MonthlyKmGoal = 20
	history := []run.Entry{
		testRun(day(2025, time.November, 3), run.Type5K, 1600),
	}
	// Backdated into a month before tracking started; the 21k would push
	// that month past the goal line if the floor were ignored.
	backdated := testRun(day(2025, time.November, 10), run.Type21K, 7700)
	history = append(history, backdated)

	out := DetectRunCelebrations(history, backdated, goals, testNow)

	assert.NotContains(t, celebrationTypes(out), run.CelebrationMonthlyGoal)
}

func TestDetectStepCelebrations(t *testing.T) {
	assert.Empty(t, DetectStepCelebrations(testSteps(day(2026, time.March, 16), 14999)))

	out := DetectStepCelebrations(testSteps(day(2026, time.March, 16), 15000))
	require.Len(t, out, 1)
	assert.Equal(t, run.CelebrationHighSteps, out[0].Type)
}
