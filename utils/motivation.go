package utils

import "time"

// Motivation is one encouragement payload for the /motivation endpoint.
type Motivation struct {
	Message     string `json:"message"`
	Emoji       string `json:"emoji"`
	Achievement string `json:"achievement,omitempty"`
}

var motivationalMessages = []Motivation{
	{Message: "Every run makes you stronger!", Emoji: "💪"},
	{Message: "You're building something amazing!", Emoji: "🌟"},
	{Message: "One step at a time, one run at a time!", Emoji: "👟"},
	{Message: "Your future self will thank you!", Emoji: "🙏"},
	{Message: "Progress, not perfection!", Emoji: "📈"},
	{Message: "You showed up. That's what matters!", Emoji: "🎯"},
	{Message: "The hardest part is over - you started!", Emoji: "🚀"},
	{Message: "Running is moving meditation!", Emoji: "🧘"},
}

var milestoneMessages = map[int]Motivation{
	1:   {Message: "First run complete! The journey begins!", Emoji: "🎉", Achievement: "First Steps"},
	5:   {Message: "5 runs done! You're getting hooked!", Emoji: "🔥", Achievement: "Getting Started"},
	10:  {Message: "Double digits! You're a runner now!", Emoji: "🏆", Achievement: "Double Digits"},
	25:  {Message: "25 runs! Consistency is your superpower!", Emoji: "⭐", Achievement: "Quarter Century"},
	50:  {Message: "50 runs! You're unstoppable!", Emoji: "🚀", Achievement: "Half Century"},
	100: {Message: "100 RUNS! You're a legend!", Emoji: "👑", Achievement: "Century Club"},
}

// MilestoneMessage returns the milestone payload when totalRuns sits exactly
// on a milestone.
func MilestoneMessage(totalRuns int) (*Motivation, bool) {
	m, ok := milestoneMessages[totalRuns]
	if !ok {
		return nil, false
	}
	return &m, true
}

// DailyMotivation rotates through the encouragement pool by calendar day, so
// repeated calls on the same day return the same line.
func DailyMotivation(now time.Time) *Motivation {
	m := motivationalMessages[now.YearDay()%len(motivationalMessages)]
	return &m
}
