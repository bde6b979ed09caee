package progress

import (
	"fmt"
	"strings"
	"time"

	"runzenAPI/internal/run"
	"runzenAPI/internal/steps"
	"runzenAPI/internal/user"
)

// DetectRunCelebrations fires the one-shot celebration events for a freshly
// created run. history includes the new run; detection compares the state
// with and without it, so backdated edits later never re-fire.
func DetectRunCelebrations(history []run.Entry, newRun run.Entry, goals *user.Goals, now time.Time) []run.Celebration {
	var out []run.Celebration

	if isPB, prType := CheckPersonalBest(history, newRun); isPB {
		msg := fmt.Sprintf("New personal best for %s! 🏆", newRun.RunType)
		if strings.HasPrefix(prType, "first_") {
			msg = fmt.Sprintf("First %s completed! 🎉", newRun.RunType)
		}
		out = append(out, run.Celebration{
			Type:    run.CelebrationPersonalBest,
			Message: msg,
		})
	}

	before := withoutRun(history, newRun)
	if weekCompletedBy(before, history, newRun.CompletedAt) {
		current, _ := Streaks(history, now)
		out = append(out, run.Celebration{
			Type:    run.CelebrationStreak,
			Message: fmt.Sprintf("Week complete! %d week streak! 🔥", current),
		})
	}

	if goals != nil && goals.MonthlyKmGoal > 0 && crossedMonthlyGoal(before, history, newRun.CompletedAt, goals.MonthlyKmGoal) {
		out = append(out, run.Celebration{
			Type:    run.CelebrationMonthlyGoal,
			Message: fmt.Sprintf("Monthly goal of %.0fkm reached! 🎯", goals.MonthlyKmGoal),
		})
	}

	return out
}

// DetectStepCelebrations fires for a freshly logged high-step day.
func DetectStepCelebrations(entry steps.Entry) []run.Celebration {
	if entry.StepCount < steps.Threshold15K {
		return nil
	}
	return []run.Celebration{{
		Type:    run.CelebrationHighSteps,
		Message: fmt.Sprintf("%d steps in a day! 👟", entry.StepCount),
	}}
}

func withoutRun(history []run.Entry, target run.Entry) []run.Entry {
	out := make([]run.Entry, 0, len(history))
	for _, r := range history {
		if r.ID == target.ID {
			continue
		}
		out = append(out, r)
	}
	return out
}

// weekCompletedBy reports whether the week containing at was incomplete
// before the new run and complete after it.
func weekCompletedBy(before, after []run.Entry, at time.Time) bool {
	return !weekCompleteAt(before, at) && weekCompleteAt(after, at)
}

func weekCompleteAt(runs []run.Entry, at time.Time) bool {
	key := WeekStart(at).Format(weekKeyLayout)
	q, ok := groupByWeek(runs)[key]
	return ok && q.complete()
}

// crossedMonthlyGoal reports whether the new run pushed the month's total
// distance over the goal line.
func crossedMonthlyGoal(before, after []run.Entry, at time.Time, goalKm float64) bool {
	return monthKm(before, at) < goalKm && monthKm(after, at) >= goalKm
}

func monthKm(runs []run.Entry, at time.Time) float64 {
	start, next := MonthBounds(at.Year(), at.Month())
	var km float64
	for _, r := range runs {
		if r.CompletedAt.Before(TrackedFloor) {
			continue
		}
		if !r.CompletedAt.Before(start) && r.CompletedAt.Before(next) {
			km += r.DistanceKm
		}
	}
	return km
}
