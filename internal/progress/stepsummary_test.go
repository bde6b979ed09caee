package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runzenAPI/internal/steps"
)

func TestStepsSummaryEmpty(t *testing.T) {
	s := StepsSummary(nil, testNow)

	// The current month is always present, zeroed when nothing is logged.
	require.NotNil(t, s.CurrentMonth)
	assert.Equal(t, "Mar 2026", s.CurrentMonth.Month)
	assert.Zero(t, s.CurrentMonth.TotalEntries)
	assert.Empty(t, s.MonthlyHistory)
	assert.Zero(t, s.AllTime.TotalEntries)
}

func TestStepsSummaryGroupsByMonth(t *testing.T) {
	entries := []steps.Entry{
		testSteps(day(2026, time.March, 2), 16000),
		testSteps(day(2026, time.March, 3), 21000),
		testSteps(day(2026, time.February, 10), 26000),
		testSteps(day(2026, time.February, 11), 9000),
		testSteps(day(2026, time.January, 5), 15500),
	}

	s := StepsSummary(entries, testNow)

	require.NotNil(t, s.CurrentMonth)
	assert.Equal(t, "Mar 2026", s.CurrentMonth.Month)
	assert.Equal(t, 2, s.CurrentMonth.TotalEntries)
	assert.Equal(t, 2, s.CurrentMonth.Days15K)
	assert.Equal(t, 1, s.CurrentMonth.Days20K)
	assert.Equal(t, 21000, s.CurrentMonth.Highest)

	// History is newest first and includes the current month.
	require.Len(t, s.MonthlyHistory, 3)
	assert.Equal(t, "Mar 2026", s.MonthlyHistory[0].Month)
	assert.Equal(t, "Feb 2026", s.MonthlyHistory[1].Month)
	assert.Equal(t, "Jan 2026", s.MonthlyHistory[2].Month)
	assert.Equal(t, 1, s.MonthlyHistory[1].Days25K)

	assert.Equal(t, 5, s.AllTime.TotalEntries)
	assert.Equal(t, 4, s.AllTime.Days15K)
	assert.Equal(t, 2, s.AllTime.Days20K)
	assert.Equal(t, 1, s.AllTime.Days25K)
}

func TestStepsSummarySameDayEntriesCollapseForThresholds(t *testing.T) {
	entries := []steps.Entry{
		testSteps(day(2026, time.March, 2), 9000),
		testSteps(day(2026, time.March, 2), 17000),
	}

	s := StepsSummary(entries, testNow)

	require.NotNil(t, s.CurrentMonth)
	assert.Equal(t, 2, s.CurrentMonth.TotalEntries)
	assert.Equal(t, 1, s.CurrentMonth.Days15K)
}
