package progress

import (
	"fmt"
	"sort"
	"time"

	"runzenAPI/internal/run"
)

// Weekly streak quota: one long run (10km or more) plus two short runs
// (under 10km). A long run never fills a short-run slot.
const (
	LongRunMinKm    = 10.0
	LongRunsNeeded  = 1
	ShortRunsNeeded = 2
)

const weekKeyLayout = "2006-01-02"

// WeeklyStreakProgress is the /streak response shape.
type WeeklyStreakProgress struct {
	LongRunsCompleted  int    `json:"long_runs_completed"`
	LongRunsNeeded     int    `json:"long_runs_needed"`
	ShortRunsCompleted int    `json:"short_runs_completed"`
	ShortRunsNeeded    int    `json:"short_runs_needed"`
	IsComplete         bool   `json:"is_complete"`
	CurrentStreak      int    `json:"current_streak"`
	LongestStreak      int    `json:"longest_streak"`
	Message            string `json:"message"`
}

// weekQuota tallies one week's runs against the streak quota.
type weekQuota struct {
	start     time.Time
	longRuns  int
	shortRuns int
}

func (q weekQuota) complete() bool {
	return q.longRuns >= LongRunsNeeded && q.shortRuns >= ShortRunsNeeded
}

func (q *weekQuota) add(r run.Entry) {
	if r.DistanceKm >= LongRunMinKm {
		q.longRuns++
	} else {
		q.shortRuns++
	}
}

// groupByWeek buckets tracked runs by their anchor Sunday, keyed by the
// Sunday's date string. Runs before the tracked floor are ignored.
func groupByWeek(runs []run.Entry) map[string]*weekQuota {
	weeks := make(map[string]*weekQuota)
	for _, r := range runs {
		if r.CompletedAt.Before(TrackedFloor) {
			continue
		}
		start := WeekStart(r.CompletedAt)
		key := start.Format(weekKeyLayout)
		q, ok := weeks[key]
		if !ok {
			q = &weekQuota{start: start}
			weeks[key] = q
		}
		q.add(r)
	}
	return weeks
}

func weekComplete(weeks map[string]*weekQuota, start time.Time) bool {
	q, ok := weeks[start.Format(weekKeyLayout)]
	return ok && q.complete()
}

// Streaks derives (current, longest) weekly streaks from the full run
// history. The current streak counts backward from this week; an
// in-progress, not-yet-complete current week does not break the chain, it
// just isn't counted yet. The longest streak scans all history
// chronologically and is independent of the current pointer.
func Streaks(runs []run.Entry, now time.Time) (current, longest int) {
	weeks := groupByWeek(runs)
	if len(weeks) == 0 {
		return 0, 0
	}

	expected := WeekStart(now)
	if weekComplete(weeks, expected) {
		current++
	}
	// Whether or not the current week counted, continue from last week.
	expected = expected.AddDate(0, 0, -7)
	for weekComplete(weeks, expected) {
		current++
		expected = expected.AddDate(0, 0, -7)
	}

	quotas := make([]*weekQuota, 0, len(weeks))
	for _, q := range weeks {
		quotas = append(quotas, q)
	}
	sort.Slice(quotas, func(i, j int) bool { return quotas[i].start.Before(quotas[j].start) })

	var streak int
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
		if streak > longest {
			longest = streak
		}
		prev = q.start
	}
	return current, longest
}

// WeekProgress reports quota progress for the week containing now, plus the
// user's current and longest streaks and a human-readable status line.
func WeekProgress(runs []run.Entry, now time.Time) *WeeklyStreakProgress {
	start, end := WeekBounds(now)
	var q weekQuota
	for _, r := range runs {
		if r.CompletedAt.Before(TrackedFloor) || r.CompletedAt.Before(start) || r.CompletedAt.After(end) {
			continue
		}
		q.add(r)
	}

	current, longest := Streaks(runs, now)

	p := &WeeklyStreakProgress{
		LongRunsCompleted:  q.longRuns,
		LongRunsNeeded:     LongRunsNeeded,
		ShortRunsCompleted: q.shortRuns,
		ShortRunsNeeded:    ShortRunsNeeded,
		IsComplete:         q.complete(),
		CurrentStreak:      current,
		LongestStreak:      longest,
	}
	p.Message = streakMessage(q)
	return p
}

func streakMessage(q weekQuota) string {
	if q.complete() {
		return "🎉 Week complete! Streak secured!"
	}
	var needs []string
	if q.longRuns < LongRunsNeeded {
		needs = append(needs, "1 long run (10k+)")
	}
	if q.shortRuns < ShortRunsNeeded {
		remaining := ShortRunsNeeded - q.shortRuns
		plural := ""
		if remaining > 1 {
			plural = "s"
		}
		needs = append(needs, fmt.Sprintf("%d short run%s", remaining, plural))
	}
	msg := "Need: " + needs[0]
	if len(needs) == 2 {
		msg += " and " + needs[1]
	}
	return msg
}
