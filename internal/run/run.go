package run

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	Type3K  Type = "3k"
	Type5K  Type = "5k"
	Type10K Type = "10k"
	Type15K Type = "15k"
	Type18K Type = "18k"
	Type21K Type = "21k"
)

// Types lists every run type in display order. Personal records and the
// achievement catalog iterate this, so the order is part of the API shape.
var Types = []Type{Type3K, Type5K, Type10K, Type15K, Type18K, Type21K}

// Distances maps a run type to its distance in kilometers. Distance is a
// pure function of the type; editing run_type re-derives distance_km.
var Distances = map[Type]float64{
	Type3K:  3.0,
	Type5K:  5.0,
	Type10K: 10.0,
	Type15K: 15.0,
	Type18K: 18.0,
	Type21K: 21.0,
}

func IsValidType(t Type) bool {
	_, ok := Distances[t]
	return ok
}

const (
	CategoryOutdoor   = "outdoor"
	CategoryTreadmill = "treadmill"
)

type Entry struct {
	ID              uuid.UUID `json:"id" db:"id"`
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	RunType         Type      `json:"run_type" db:"run_type"`
	DurationSeconds int       `json:"duration_seconds" db:"duration_seconds"`
	DistanceKm      float64   `json:"distance_km" db:"distance_km"`
	CompletedAt     time.Time `json:"completed_at" db:"completed_at"`
	Category        string    `json:"category" db:"category"`
	Notes           *string   `json:"notes" db:"notes"`
}

type CreateRequest struct {
	RunType         Type       `json:"run_type"`
	DurationSeconds int        `json:"duration_seconds"`
	Notes           *string    `json:"notes"`
	CompletedAt     *time.Time `json:"completed_at"`
	Category        string     `json:"category"`
}

type UpdateRequest struct {
	RunType         *Type   `json:"run_type"`
	DurationSeconds *int    `json:"duration_seconds"`
	Notes           *string `json:"notes"`
	Category        *string `json:"category"`
}

// Celebration is attached to mutation responses so the client can surface
// what the new entry just unlocked.
type Celebration struct {
	Type    string `json:"type"` // personal_best, streak, monthly_goal, high_steps
	Message string `json:"message"`
}

const (
	CelebrationPersonalBest = "personal_best"
	CelebrationStreak       = "streak"
	CelebrationMonthlyGoal  = "monthly_goal"
	CelebrationHighSteps    = "high_steps"
)

// Response is the API shape for a single run, with derived display fields.
type Response struct {
	ID                uuid.UUID     `json:"id"`
	RunType           Type          `json:"run_type"`
	DurationSeconds   int           `json:"duration_seconds"`
	DistanceKm        float64       `json:"distance_km"`
	CompletedAt       time.Time     `json:"completed_at"`
	Category          string        `json:"category"`
	Notes             *string       `json:"notes"`
	PacePerKm         string        `json:"pace_per_km"`
	FormattedDuration string        `json:"formatted_duration"`
	IsPersonalBest    bool          `json:"is_personal_best"`
	PRType            *string       `json:"pr_type"`
	Celebrations      []Celebration `json:"celebrations,omitempty"`
}
