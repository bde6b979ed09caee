package progress

import (
	"sort"
	"time"

	"runzenAPI/internal/run"
	"runzenAPI/internal/steps"
	"runzenAPI/internal/weight"
)

// WeightReview summarizes weight movement inside one month.
type WeightReview struct {
	StartWeight  float64 `json:"start_weight"`
	EndWeight    float64 `json:"end_weight"`
	WeightChange float64 `json:"weight_change"`
	Trend        string  `json:"trend"` // "down", "up", "stable"
	EntriesCount int     `json:"entries_count"`
}

// MonthReview is the /month-review response shape.
type MonthReview struct {
	Month                string               `json:"month"` // "January 2026"
	Year                 int                  `json:"year"`
	MonthNumber          int                  `json:"month_number"`
	ShouldShow           bool                 `json:"should_show"`
	TotalRuns            int                  `json:"total_runs"`
	TotalKm              float64              `json:"total_km"`
	TotalDurationSeconds int                  `json:"total_duration_seconds"`
	AveragePace          string               `json:"average_pace"`
	OutdoorRuns          int                  `json:"outdoor_runs"`
	TreadmillRuns        int                  `json:"treadmill_runs"`
	RunsByType           map[run.Type]int     `json:"runs_by_type"`
	StepDays15K          int                  `json:"step_days_15k"`
	StepDays20K          int                  `json:"step_days_20k"`
	StepDays25K          int                  `json:"step_days_25k"`
	BestStreak           int                  `json:"best_streak"`
	Weight               *WeightReview        `json:"weight"`
	KmVsLastMonth        float64              `json:"km_vs_last_month"`
	RunsVsLastMonth      int                  `json:"runs_vs_last_month"`
}

// MonthInReview rolls up one calendar month. Month-over-month deltas come
// from aggregating the prior month with the same inputs; months before the
// tracked floor never recurse and never show.
func MonthInReview(runs []run.Entry, stepEntries []steps.Entry, weights []weight.Entry, year int, month time.Month, now time.Time) *MonthReview {
	review := buildMonthReview(runs, stepEntries, weights, year, month, now)
	prevStart, _ := MonthBounds(year, month)
	prevStart = prevStart.AddDate(0, -1, 0)
	if MonthTracked(prevStart.Year(), prevStart.Month()) {
		prev := buildMonthReview(runs, stepEntries, weights, prevStart.Year(), prevStart.Month(), now)
		review.KmVsLastMonth = round1(review.TotalKm - prev.TotalKm)
		review.RunsVsLastMonth = review.TotalRuns - prev.TotalRuns
	} else {
		review.KmVsLastMonth = review.TotalKm
		review.RunsVsLastMonth = review.TotalRuns
	}
	return review
}

func buildMonthReview(runs []run.Entry, stepEntries []steps.Entry, weights []weight.Entry, year int, month time.Month, now time.Time) *MonthReview {
	start, next := MonthBounds(year, month)
	review := &MonthReview{
		Month:       month.String() + " " + start.Format("2006"),
		Year:        year,
		MonthNumber: int(month),
		RunsByType:  make(map[run.Type]int),
	}

	inMonth := func(t time.Time) bool {
		return !t.Before(start) && t.Before(next) && !t.Before(TrackedFloor)
	}

	var totalSeconds int
	for _, r := range runs {
		if !inMonth(r.CompletedAt) {
			continue
		}
		review.TotalRuns++
		review.TotalKm += r.DistanceKm
		totalSeconds += r.DurationSeconds
		review.RunsByType[r.RunType]++
		switch r.Category {
		case run.CategoryTreadmill:
			review.TreadmillRuns++
		default:
			review.OutdoorRuns++
		}
	}
	review.TotalDurationSeconds = totalSeconds
	review.AveragePace = FormatPace(totalSeconds, review.TotalKm)
	review.TotalKm = round1(review.TotalKm)

	hasSteps := false
	bestByDate := make(map[string]int)
	for _, e := range stepEntries {
		if !inMonth(e.RecordedDate) {
			continue
		}
		hasSteps = true
		key := e.RecordedDate.Format("2006-01-02")
		if e.StepCount > bestByDate[key] {
			bestByDate[key] = e.StepCount
		}
	}
	for _, count := range bestByDate {
		if count >= steps.Threshold15K {
			review.StepDays15K++
		}
		if count >= steps.Threshold20K {
			review.StepDays20K++
		}
		if count >= steps.Threshold25K {
			review.StepDays25K++
		}
	}

	review.BestStreak = bestStreakInMonth(runs, start, next)
	review.Weight = weightReviewInMonth(weights, inMonth)

	hasActivity := review.TotalRuns > 0 || hasSteps || review.Weight != nil
	review.ShouldShow = MonthTracked(year, month) && hasActivity && !start.After(now)
	return review
}

// bestStreakInMonth is the longest chain of consecutive complete weeks whose
// anchor Sunday falls inside the month.
func bestStreakInMonth(runs []run.Entry, start, next time.Time) int {
	weeks := groupByWeek(runs)
	quotas := make([]*weekQuota, 0, len(weeks))
	for _, q := range weeks {
		if q.start.Before(start) || !q.start.Before(next) {
			continue
		}
		quotas = append(quotas, q)
	}
	sort.Slice(quotas, func(i, j int) bool { return quotas[i].start.Before(quotas[j].start) })

	best, streak := 0, 0
	var prev time.Time
	for _, q := range quotas {
		if !q.complete() {
			streak = 0
			prev = time.Time{}
			continue
		}
		if !prev.IsZero() && prev.AddDate(0, 0, 7).Equal(q.start) {
			streak++
		} else {
			streak = 1
		}
		if streak > best {
			best = streak
		}
		prev = q.start
	}
	return best
}

func weightReviewInMonth(weights []weight.Entry, inMonth func(time.Time) bool) *WeightReview {
	var entries []weight.Entry
	for _, w := range weights {
		if inMonth(w.RecordedAt) {
			entries = append(entries, w)
		}
	}
	if len(entries) == 0 {
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].RecordedAt.Before(entries[j].RecordedAt) })

	startW := entries[0].WeightLbs
	endW := entries[len(entries)-1].WeightLbs
	change := round1(endW - startW)
	trend := "stable"
	switch {
	case change <= -0.5:
		trend = "down"
	case change >= 0.5:
		trend = "up"
	}
	return &WeightReview{
		StartWeight:  startW,
		EndWeight:    endW,
		WeightChange: change,
		Trend:        trend,
		EntriesCount: len(entries),
	}
}
