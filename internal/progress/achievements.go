package progress

// AchievementStatus is one catalog entry with its derived unlock state.
type AchievementStatus struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Category    string `json:"category"`
	Unlocked    bool   `json:"unlocked"`
}

// AchievementsData is the /achievements response shape. Every catalog entry
// lands in exactly one of the two lists.
type AchievementsData struct {
	Unlocked      []AchievementStatus `json:"unlocked"`
	Locked        []AchievementStatus `json:"locked"`
	Total         int                 `json:"total"`
	UnlockedCount int                 `json:"unlocked_count"`
}

// EvaluateAchievements checks the whole catalog against one aggregate pass.
// Evaluation is stateless and idempotent; unlock state is never persisted.
func EvaluateAchievements(agg *AggregateStats) *AchievementsData {
	data := &AchievementsData{
		Unlocked: []AchievementStatus{},
		Locked:   []AchievementStatus{},
		Total:    len(Catalog),
	}
	for _, a := range Catalog {
		status := AchievementStatus{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Emoji:       a.Emoji,
			Category:    a.Category,
			Unlocked:    a.Check(agg),
		}
		if status.Unlocked {
			data.Unlocked = append(data.Unlocked, status)
		} else {
			data.Locked = append(data.Locked, status)
		}
	}
	data.UnlockedCount = len(data.Unlocked)
	return data
}
