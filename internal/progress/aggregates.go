package progress

import (
	"time"

	"runzenAPI/internal/run"
	"runzenAPI/internal/steps"
)

// AggregateStats is the shared input for every achievement predicate. It is
// built once per evaluation pass so rule checks stay O(1) regardless of
// history size.
type AggregateStats struct {
	TotalRuns       int
	TotalKm         float64
	RunsByType      map[run.Type]int
	LongestStreak   int
	MonthlyGoalsHit int
	OutdoorRuns     int
	TreadmillRuns   int
	StepDays15K     int
	StepDays20K     int
	StepDays25K     int
}

// BuildAggregates folds the full tracked history into the aggregate stats
// the achievement engine evaluates against. monthlyTarget is the user's
// monthly km goal (used for the goals category).
func BuildAggregates(runs []run.Entry, stepEntries []steps.Entry, monthlyTarget float64, now time.Time) *AggregateStats {
	agg := &AggregateStats{
		RunsByType: make(map[run.Type]int, len(run.Types)),
	}
	for _, r := range runs {
		if r.CompletedAt.Before(TrackedFloor) {
			continue
		}
		agg.TotalRuns++
		agg.TotalKm += r.DistanceKm
		agg.RunsByType[r.RunType]++
		switch r.Category {
		case run.CategoryTreadmill:
			agg.TreadmillRuns++
		default:
			agg.OutdoorRuns++
		}
	}

	// High-step days are counted per calendar date; several entries on the
	// same date collapse into that date's max.
	bestByDate := make(map[string]int)
	for _, e := range stepEntries {
		if e.RecordedDate.Before(TrackedFloor) {
			continue
		}
		key := e.RecordedDate.Format("2006-01-02")
		if e.StepCount > bestByDate[key] {
			bestByDate[key] = e.StepCount
		}
	}
	for _, count := range bestByDate {
		if count >= steps.Threshold15K {
			agg.StepDays15K++
		}
		if count >= steps.Threshold20K {
			agg.StepDays20K++
		}
		if count >= steps.Threshold25K {
			agg.StepDays25K++
		}
	}

	_, agg.LongestStreak = Streaks(runs, now)
	agg.MonthlyGoalsHit = MonthlyGoalsHit(runs, monthlyTarget, now)
	return agg
}
