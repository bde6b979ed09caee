package progress

import (
	"time"

	"runzenAPI/internal/run"
	"runzenAPI/internal/user"
)

// HorizonProgress reports goal progress for one period (year or month).
// Percent is intentionally not clamped at 100: a month run past its goal
// legitimately reads as 120%.
type HorizonProgress struct {
	GoalKm        float64 `json:"goal_km"`
	CurrentKm     float64 `json:"current_km"`
	RemainingKm   float64 `json:"remaining_km"`
	Percent       float64 `json:"percent"`
	DaysRemaining int     `json:"days_remaining"`
	OnTrack       bool    `json:"on_track"`
	MonthName     string  `json:"month_name,omitempty"`
	IsComplete    bool    `json:"is_complete,omitempty"`
}

// GoalsProgress is the /goals response shape.
type GoalsProgress struct {
	Yearly          HorizonProgress `json:"yearly"`
	Monthly         HorizonProgress `json:"monthly"`
	MonthlyGoalsHit int             `json:"monthly_goals_hit"`
}

// Goals derives yearly and monthly goal progress from the run history.
// Pace-to-date (on_track) compares current km against the fraction of the
// period that has elapsed.
func Goals(runs []run.Entry, goals *user.Goals, now time.Time) *GoalsProgress {
	yearlyTarget := goals.YearlyKmGoal
	if yearlyTarget <= 0 {
		yearlyTarget = user.DefaultYearlyKmGoal
	}
	monthlyTarget := goals.MonthlyKmGoal
	if monthlyTarget <= 0 {
		monthlyTarget = user.DefaultMonthlyKmGoal
	}

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	monthStart, _ := MonthBounds(now.Year(), now.Month())

	var yearlyKm, monthlyKm float64
	for _, r := range runs {
		if r.CompletedAt.Before(TrackedFloor) || r.CompletedAt.After(now) {
			continue
		}
		if !r.CompletedAt.Before(yearStart) {
			yearlyKm += r.DistanceKm
		}
		if !r.CompletedAt.Before(monthStart) {
			monthlyKm += r.DistanceKm
		}
	}

	yearFraction := float64(now.YearDay()) / float64(daysInYear(now.Year()))
	monthFraction := float64(now.Day()) / float64(daysInMonth(now.Year(), now.Month()))

	return &GoalsProgress{
		Yearly: HorizonProgress{
			GoalKm:        yearlyTarget,
			CurrentKm:     round1(yearlyKm),
			RemainingKm:   round1(max0(yearlyTarget - yearlyKm)),
			Percent:       round1(100 * yearlyKm / yearlyTarget),
			DaysRemaining: daysRemainingInYear(now),
			OnTrack:       yearlyKm >= yearlyTarget*yearFraction,
		},
		Monthly: HorizonProgress{
			GoalKm:        monthlyTarget,
			CurrentKm:     round1(monthlyKm),
			RemainingKm:   round1(max0(monthlyTarget - monthlyKm)),
			Percent:       round1(100 * monthlyKm / monthlyTarget),
			DaysRemaining: daysRemainingInMonth(now),
			OnTrack:       monthlyKm >= monthlyTarget*monthFraction,
			MonthName:     now.Month().String(),
			IsComplete:    monthlyKm >= monthlyTarget,
		},
		MonthlyGoalsHit: MonthlyGoalsHit(runs, monthlyTarget, now),
	}
}

// MonthlyGoalsHit counts months from the tracked floor through the current
// month whose run distance met the monthly goal.
func MonthlyGoalsHit(runs []run.Entry, monthlyTarget float64, now time.Time) int {
	if monthlyTarget <= 0 {
		return 0
	}
	hit := 0
	cursor, _ := MonthBounds(TrackedFloor.Year(), TrackedFloor.Month())
	currentStart, _ := MonthBounds(now.Year(), now.Month())
	for !cursor.After(currentStart) {
		next := cursor.AddDate(0, 1, 0)
		var km float64
		for _, r := range runs {
			if !r.CompletedAt.Before(cursor) && r.CompletedAt.Before(next) {
				km += r.DistanceKm
			}
		}
		if km >= monthlyTarget {
			hit++
		}
		cursor = next
	}
	return hit
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
