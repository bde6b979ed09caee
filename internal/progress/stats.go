package progress

import (
	"time"

	"runzenAPI/internal/run"
)

// Stats is the /stats response shape.
type Stats struct {
	TotalRuns     int     `json:"total_runs"`
	TotalKm       float64 `json:"total_km"`
	CurrentStreak int     `json:"current_streak"`
	LongestStreak int     `json:"longest_streak"`
	AveragePace   string  `json:"average_pace"`
	RunsThisWeek  int     `json:"runs_this_week"`
	KmThisWeek    float64 `json:"km_this_week"`
	RunsThisMonth int     `json:"runs_this_month"`
	KmThisMonth   float64 `json:"km_this_month"`
}

// Summary recomputes the headline statistics from the full run history. A
// user with no tracked runs gets zeros and a "0:00" pace, never an error.
func Summary(runs []run.Entry, now time.Time) *Stats {
	weekStart, _ := WeekBounds(now)
	monthStart, _ := MonthBounds(now.Year(), now.Month())

	s := &Stats{}
	var totalSeconds int
	for _, r := range runs {
		if r.CompletedAt.Before(TrackedFloor) {
			continue
		}
		s.TotalRuns++
		s.TotalKm += r.DistanceKm
		totalSeconds += r.DurationSeconds
		if !r.CompletedAt.Before(weekStart) {
			s.RunsThisWeek++
			s.KmThisWeek += r.DistanceKm
		}
		if !r.CompletedAt.Before(monthStart) {
			s.RunsThisMonth++
			s.KmThisMonth += r.DistanceKm
		}
	}

	s.AveragePace = FormatPace(totalSeconds, s.TotalKm)
	s.TotalKm = round2(s.TotalKm)
	s.KmThisWeek = round2(s.KmThisWeek)
	s.KmThisMonth = round2(s.KmThisMonth)
	s.CurrentStreak, s.LongestStreak = Streaks(runs, now)
	return s
}
