package progress

import (
	"time"

	"github.com/google/uuid"

	"runzenAPI/internal/run"
	"runzenAPI/internal/steps"
	"runzenAPI/internal/weight"
)

// testNow is a Wednesday; its week anchor Sunday is 2026-03-15.
var testNow = time.Date(2026, time.March, 18, 12, 0, 0, 0, time.Local)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 9, 0, 0, 0, time.Local)
}

func testRun(at time.Time, t run.Type, durationSeconds int) run.Entry {
	return run.Entry{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		RunType:         t,
		DurationSeconds: durationSeconds,
		DistanceKm:      run.Distances[t],
		CompletedAt:     at,
		Category:        run.CategoryOutdoor,
	}
}

// completeWeek returns one long run and two short runs inside the week that
// starts on the given Sunday.
func completeWeek(sunday time.Time) []run.Entry {
	return []run.Entry{
		testRun(sunday.AddDate(0, 0, 1), run.Type10K, 3300),
		testRun(sunday.AddDate(0, 0, 3), run.Type5K, 1600),
		testRun(sunday.AddDate(0, 0, 5), run.Type5K, 1650),
	}
}

func testSteps(at time.Time, count int) steps.Entry {
	return steps.Entry{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		StepCount:    count,
		RecordedDate: at,
	}
}

func testWeight(at time.Time, lbs float64) weight.Entry {
	return weight.Entry{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		WeightLbs:  lbs,
		RecordedAt: at,
	}
}
