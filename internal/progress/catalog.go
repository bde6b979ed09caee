package progress

import "runzenAPI/internal/run"

// Achievement categories.
const (
	CategoryMilestone    = "milestone"
	CategoryDistance     = "distance"
	CategoryDistanceType = "distance_type"
	CategorySpecialist   = "specialist"
	CategoryStreak       = "streak"
	CategoryGoals        = "goals"
	CategoryRunCategory  = "category"
	CategorySteps        = "steps"
)

// Achievement is one catalog entry. Check is a pure predicate over the
// shared aggregates; unlock state is never stored, only derived.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Emoji       string
	Category    string
	Check       func(*AggregateStats) bool
}

func runCount(n int) func(*AggregateStats) bool {
	return func(s *AggregateStats) bool { return s.TotalRuns >= n }
}

func totalKm(km float64) func(*AggregateStats) bool {
	return func(s *AggregateStats) bool { return s.TotalKm >= km }
}

func typeCount(t run.Type, n int) func(*AggregateStats) bool {
	return func(s *AggregateStats) bool { return s.RunsByType[t] >= n }
}

func longestStreak(weeks int) func(*AggregateStats) bool {
	return func(s *AggregateStats) bool { return s.LongestStreak >= weeks }
}

func goalsHit(n int) func(*AggregateStats) bool {
	return func(s *AggregateStats) bool { return s.MonthlyGoalsHit >= n }
}

// Catalog is the static achievement catalog. Adding a rule means appending
// here; the engine evaluates the list generically.
var Catalog = []Achievement{
	// Run count milestones
	{ID: "first_run", Name: "First Steps", Description: "Complete your first run", Emoji: "👟", Category: CategoryMilestone, Check: runCount(1)},
	{ID: "runs_5", Name: "Getting Hooked", Description: "Complete 5 runs", Emoji: "🔥", Category: CategoryMilestone, Check: runCount(5)},
	{ID: "runs_10", Name: "Double Digits", Description: "Complete 10 runs", Emoji: "🔟", Category: CategoryMilestone, Check: runCount(10)},
	{ID: "runs_25", Name: "Quarter Century", Description: "Complete 25 runs", Emoji: "⭐", Category: CategoryMilestone, Check: runCount(25)},
	{ID: "runs_50", Name: "Fifty Club", Description: "Complete 50 runs", Emoji: "🌟", Category: CategoryMilestone, Check: runCount(50)},
	{ID: "runs_100", Name: "Century Runner", Description: "Complete 100 runs", Emoji: "💫", Category: CategoryMilestone, Check: runCount(100)},
	{ID: "runs_200", Name: "Relentless", Description: "Complete 200 runs", Emoji: "🏛️", Category: CategoryMilestone, Check: runCount(200)},

	// Cumulative distance
	{ID: "km_50", Name: "Getting Started", Description: "Run 50km total", Emoji: "🌱", Category: CategoryDistance, Check: totalKm(50)},
	{ID: "km_100", Name: "Century", Description: "Run 100km total", Emoji: "💯", Category: CategoryDistance, Check: totalKm(100)},
	{ID: "km_250", Name: "Quarter Thousand", Description: "Run 250km total", Emoji: "🏃", Category: CategoryDistance, Check: totalKm(250)},
	{ID: "km_500", Name: "Half Way There", Description: "Run 500km total", Emoji: "🔥", Category: CategoryDistance, Check: totalKm(500)},
	{ID: "km_750", Name: "Three Quarters", Description: "Run 750km total", Emoji: "🚴", Category: CategoryDistance, Check: totalKm(750)},
	{ID: "km_1000", Name: "Thousand Club", Description: "Run 1000km total", Emoji: "👑", Category: CategoryDistance, Check: totalKm(1000)},
	{ID: "km_1500", Name: "Beyond The Goal", Description: "Run 1500km total", Emoji: "🌌", Category: CategoryDistance, Check: totalKm(1500)},

	// First completion per distance type
	{ID: "first_3k", Name: "Quick Start", Description: "Complete your first 3k", Emoji: "🐇", Category: CategoryDistanceType, Check: typeCount(run.Type3K, 1)},
	{ID: "first_5k", Name: "Park Runner", Description: "Complete your first 5k", Emoji: "🌳", Category: CategoryDistanceType, Check: typeCount(run.Type5K, 1)},
	{ID: "first_10k", Name: "Into The Double Digits", Description: "Complete your first 10k", Emoji: "🏅", Category: CategoryDistanceType, Check: typeCount(run.Type10K, 1)},
	{ID: "first_15k", Name: "Going Long", Description: "Complete your first 15k", Emoji: "🎖️", Category: CategoryDistanceType, Check: typeCount(run.Type15K, 1)},
	{ID: "first_18k", Name: "Almost There", Description: "Complete your first 18k", Emoji: "🦾", Category: CategoryDistanceType, Check: typeCount(run.Type18K, 1)},
	{ID: "first_21k", Name: "Half Marathoner", Description: "Complete your first 21k", Emoji: "🏆", Category: CategoryDistanceType, Check: typeCount(run.Type21K, 1)},

	// Repetition rewards
	{ID: "ten_3ks", Name: "3K Regular", Description: "Complete ten 3k runs", Emoji: "🥉", Category: CategorySpecialist, Check: typeCount(run.Type3K, 10)},
	{ID: "ten_5ks", Name: "5K Regular", Description: "Complete ten 5k runs", Emoji: "🥈", Category: CategorySpecialist, Check: typeCount(run.Type5K, 10)},
	{ID: "ten_10ks", Name: "10K Specialist", Description: "Complete ten 10k runs", Emoji: "🥇", Category: CategorySpecialist, Check: typeCount(run.Type10K, 10)},
	{ID: "ten_15ks", Name: "15K Specialist", Description: "Complete ten 15k runs", Emoji: "🎯", Category: CategorySpecialist, Check: typeCount(run.Type15K, 10)},
	{ID: "five_21ks", Name: "Half Marathon Habit", Description: "Complete five 21k runs", Emoji: "🦁", Category: CategorySpecialist, Check: typeCount(run.Type21K, 5)},
	{ID: "twentyfive_10ks", Name: "10K Veteran", Description: "Complete twenty-five 10k runs", Emoji: "🛡️", Category: CategorySpecialist, Check: typeCount(run.Type10K, 25)},
	{ID: "fifty_10ks", Name: "10K Master", Description: "Complete fifty 10k runs", Emoji: "⚔️", Category: CategorySpecialist, Check: typeCount(run.Type10K, 50)},

	// Weekly streaks
	{ID: "streak_2", Name: "Consistency", Description: "Achieve a 2-week streak", Emoji: "🔥", Category: CategoryStreak, Check: longestStreak(2)},
	{ID: "streak_4", Name: "Month Strong", Description: "Achieve a 4-week streak", Emoji: "💪", Category: CategoryStreak, Check: longestStreak(4)},
	{ID: "streak_8", Name: "Unstoppable", Description: "Achieve an 8-week streak", Emoji: "⚡", Category: CategoryStreak, Check: longestStreak(8)},
	{ID: "streak_12", Name: "Quarter Year", Description: "Achieve a 12-week streak", Emoji: "🚀", Category: CategoryStreak, Check: longestStreak(12)},
	{ID: "streak_16", Name: "Iron Will", Description: "Achieve a 16-week streak", Emoji: "🤖", Category: CategoryStreak, Check: longestStreak(16)},
	{ID: "streak_26", Name: "Half Year Streak", Description: "Achieve a 26-week streak", Emoji: "🌗", Category: CategoryStreak, Check: longestStreak(26)},

	// Monthly goals
	{ID: "monthly_goal_1", Name: "Goal Getter", Description: "Hit your monthly km goal", Emoji: "🎯", Category: CategoryGoals, Check: goalsHit(1)},
	{ID: "monthly_goal_3", Name: "Hat Trick", Description: "Hit your monthly goal 3 times", Emoji: "🎩", Category: CategoryGoals, Check: goalsHit(3)},
	{ID: "monthly_goal_6", Name: "Half Year Hero", Description: "Hit your monthly goal 6 times", Emoji: "🦸", Category: CategoryGoals, Check: goalsHit(6)},
	{ID: "monthly_goal_9", Name: "Three Quarters Strong", Description: "Hit your monthly goal 9 times", Emoji: "🏗️", Category: CategoryGoals, Check: goalsHit(9)},
	{ID: "monthly_goal_12", Name: "Perfect Year", Description: "Hit your monthly goal 12 times", Emoji: "🗓️", Category: CategoryGoals, Check: goalsHit(12)},

	// Outdoor / treadmill
	{ID: "first_outdoor", Name: "Fresh Air", Description: "Complete your first outdoor run", Emoji: "🌤️", Category: CategoryRunCategory, Check: func(s *AggregateStats) bool { return s.OutdoorRuns >= 1 }},
	{ID: "first_treadmill", Name: "Belt It Out", Description: "Complete your first treadmill run", Emoji: "🏠", Category: CategoryRunCategory, Check: func(s *AggregateStats) bool { return s.TreadmillRuns >= 1 }},
	{ID: "all_weather", Name: "All-Weather Runner", Description: "Complete 5 outdoor and 5 treadmill runs", Emoji: "🌦️", Category: CategoryRunCategory, Check: func(s *AggregateStats) bool { return s.OutdoorRuns >= 5 && s.TreadmillRuns >= 5 }},

	// High-step days
	{ID: "steps_15k_1", Name: "Step It Up", Description: "Log a 15,000+ step day", Emoji: "👣", Category: CategorySteps, Check: func(s *AggregateStats) bool { return s.StepDays15K >= 1 }},
	{ID: "steps_15k_10", Name: "Walking Habit", Description: "Log ten 15,000+ step days", Emoji: "🚶", Category: CategorySteps, Check: func(s *AggregateStats) bool { return s.StepDays15K >= 10 }},
	{ID: "steps_15k_25", Name: "Daily Mover", Description: "Log twenty-five 15,000+ step days", Emoji: "🧭", Category: CategorySteps, Check: func(s *AggregateStats) bool { return s.StepDays15K >= 25 }},
	{ID: "steps_20k_1", Name: "Big Day Out", Description: "Log a 20,000+ step day", Emoji: "🗺️", Category: CategorySteps, Check: func(s *AggregateStats) bool { return s.StepDays20K >= 1 }},
	{ID: "steps_20k_10", Name: "Long Hauler", Description: "Log ten 20,000+ step days", Emoji: "🥾", Category: CategorySteps, Check: func(s *AggregateStats) bool { return s.StepDays20K >= 10 }},
	{ID: "steps_20k_25", Name: "Distance Walker", Description: "Log twenty-five 20,000+ step days", Emoji: "⛰️", Category: CategorySteps, Check: func(s *AggregateStats) bool { return s.StepDays20K >= 25 }},
	{ID: "steps_25k_1", Name: "Marathon Walker", Description: "Log a 25,000+ step day", Emoji: "🌋", Category: CategorySteps, Check: func(s *AggregateStats) bool { return s.StepDays25K >= 1 }},
	{ID: "steps_25k_10", Name: "Ultra Walker", Description: "Log ten 25,000+ step days", Emoji: "🏔️", Category: CategorySteps, Check: func(s *AggregateStats) bool { return s.StepDays25K >= 10 }},
	{ID: "steps_25k_25", Name: "Pathfinder", Description: "Log twenty-five 25,000+ step days", Emoji: "🌠", Category: CategorySteps, Check: func(s *AggregateStats) bool { return s.StepDays25K >= 25 }},
}
