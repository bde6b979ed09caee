package progress

import (
	"sort"
	"time"

	"runzenAPI/internal/user"
	"runzenAPI/internal/weight"
)

// trendWindow is how many recent entries the trend looks at, and
// trendEpsilon is the dead band below which the trend reads "stable".
const (
	trendWindow  = 3
	trendEpsilon = 0.5
)

// onTrackBufferLbs is the slack allowed over the linear glide path from the
// start weight to the goal weight before on_track flips false.
const onTrackBufferLbs = 2.0

// WeightProgress summarizes movement toward the user's weight goal. With no
// entries it reports the configured start weight as current and zero loss.
func WeightProgress(entries []weight.Entry, goals *user.Goals, now time.Time) *weight.Progress {
	if goals == nil {
		goals = &user.Goals{}
	}
	sorted := sortedByDate(trackedWeights(entries))
	startW := valueOr(goals.StartWeightLbs, weight.DefaultStartLbs)
	goalW := valueOr(goals.GoalWeightLbs, weight.DefaultGoalLbs)

	p := &weight.Progress{
		StartWeight:   startW,
		CurrentWeight: startW,
		GoalWeight:    goalW,
		Trend:         "stable",
		EntriesCount:  len(sorted),
	}
	if len(sorted) > 0 {
		p.CurrentWeight = sorted[len(sorted)-1].WeightLbs
	}

	p.WeightLost = round1(p.StartWeight - p.CurrentWeight)
	p.WeightToLose = round1(p.CurrentWeight - p.GoalWeight)
	if p.WeightToLose < 0 {
		p.WeightToLose = 0
	}

	totalToLose := p.StartWeight - p.GoalWeight
	if totalToLose > 0 {
		p.PercentComplete = round1(p.WeightLost / totalToLose * 100)
		if p.PercentComplete < 0 {
			p.PercentComplete = 0
		}
	}

	p.Trend = weightTrend(sorted)
	p.OnTrack = weightOnTrack(sorted, goals, startW, goalW, p.CurrentWeight, now)
	return p
}

func valueOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

// WeightChart shapes entries for the client-side chart, oldest first.
func WeightChart(entries []weight.Entry) []weight.ChartPoint {
	sorted := sortedByDate(trackedWeights(entries))
	points := make([]weight.ChartPoint, 0, len(sorted))
	for _, e := range sorted {
		points = append(points, weight.ChartPoint{
			Date:   e.RecordedAt.Format("2006-01-02"),
			Weight: e.WeightLbs,
			Label:  e.RecordedAt.Format("Jan 2"),
		})
	}
	return points
}

func trackedWeights(entries []weight.Entry) []weight.Entry {
	out := make([]weight.Entry, 0, len(entries))
	for _, e := range entries {
		if e.RecordedAt.Before(TrackedFloor) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func sortedByDate(entries []weight.Entry) []weight.Entry {
	sorted := make([]weight.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].RecordedAt.Before(sorted[j].RecordedAt) })
	return sorted
}

// weightTrend compares the newest entry against the oldest of the last
// trendWindow entries.
func weightTrend(sorted []weight.Entry) string {
	if len(sorted) < 2 {
		return "stable"
	}
	window := sorted
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}
	delta := window[len(window)-1].WeightLbs - window[0].WeightLbs
	switch {
	case delta <= -trendEpsilon:
		return "down"
	case delta >= trendEpsilon:
		return "up"
	}
	return "stable"
}

// weightOnTrack checks the current weight against a straight line from the
// start weight at the first entry to the goal weight at the goal date.
func weightOnTrack(sorted []weight.Entry, goals *user.Goals, startW, goalW, current float64, now time.Time) bool {
	if goals.WeightGoalDate == nil || len(sorted) == 0 {
		return current <= startW
	}
	startDate := sorted[0].RecordedAt
	total := goals.WeightGoalDate.Sub(startDate)
	if total <= 0 {
		return current <= goalW+onTrackBufferLbs
	}
	elapsed := now.Sub(startDate)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > total {
		elapsed = total
	}
	frac := float64(elapsed) / float64(total)
	expected := startW - (startW-goalW)*frac
	return current <= expected+onTrackBufferLbs
}
