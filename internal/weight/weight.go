package weight

import (
	"time"

	"github.com/google/uuid"
)

// MaxWeightLbs bounds accepted weight entries; values outside (0, 500] are
// rejected as validation errors.
const MaxWeightLbs = 500.0

// Fallback start and goal weights used until the user sets their own.
const (
	DefaultStartLbs = 209.0
	DefaultGoalLbs  = 180.0
)

type Entry struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	WeightLbs  float64   `json:"weight_lbs" db:"weight_lbs"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
	Notes      *string   `json:"notes" db:"notes"`
}

type CreateRequest struct {
	WeightLbs  float64    `json:"weight_lbs"`
	RecordedAt *time.Time `json:"recorded_at"`
	Notes      *string    `json:"notes"`
}

// Progress summarizes movement toward the configured weight goal.
type Progress struct {
	StartWeight     float64 `json:"start_weight"`
	CurrentWeight   float64 `json:"current_weight"`
	GoalWeight      float64 `json:"goal_weight"`
	WeightLost      float64 `json:"weight_lost"`
	WeightToLose    float64 `json:"weight_to_lose"`
	PercentComplete float64 `json:"percent_complete"`
	OnTrack         bool    `json:"on_track"`
	Trend           string  `json:"trend"` // "down", "up", "stable"
	EntriesCount    int     `json:"entries_count"`
}

type ChartPoint struct {
	Date   string  `json:"date"` // "2026-01-10"
	Weight float64 `json:"weight"`
	Label  string  `json:"label"` // "Jan 10"
}
