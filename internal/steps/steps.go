package steps

import (
	"time"

	"github.com/google/uuid"
)

// High-step-day thresholds shared by the summary endpoint, the achievement
// engine and the month review.
const (
	Threshold15K = 15000
	Threshold20K = 20000
	Threshold25K = 25000
)

type Entry struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	StepCount    int       `json:"step_count" db:"step_count"`
	RecordedDate time.Time `json:"recorded_date" db:"recorded_date"`
	Notes        *string   `json:"notes" db:"notes"`
}

type CreateRequest struct {
	StepCount    int        `json:"step_count"`
	RecordedDate *time.Time `json:"recorded_date"`
	Notes        *string    `json:"notes"`
}

// MonthSummary counts high-step days inside one calendar month.
type MonthSummary struct {
	Month        string `json:"month"` // "Jan 2026"
	TotalEntries int    `json:"total_entries"`
	Days15K      int    `json:"days_15k"`
	Days20K      int    `json:"days_20k"`
	Days25K      int    `json:"days_25k"`
	Highest      int    `json:"highest"`
}

type AllTimeSummary struct {
	Days15K      int `json:"days_15k"`
	Days20K      int `json:"days_20k"`
	Days25K      int `json:"days_25k"`
	TotalEntries int `json:"total_entries"`
}

type Summary struct {
	CurrentMonth   *MonthSummary  `json:"current_month"`
	MonthlyHistory []MonthSummary `json:"monthly_history"`
	AllTime        AllTimeSummary `json:"all_time"`
}
