package plan

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyPlan holds the run types a user intends to complete in one week.
// Week ids look like "2026-W05" and are Sunday-anchored.
type WeeklyPlan struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	WeekID      string    `json:"week_id" db:"week_id"`
	PlannedRuns []string  `json:"planned_runs" db:"planned_runs"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CreateRequest struct {
	WeekID      string   `json:"week_id"`
	PlannedRuns []string `json:"planned_runs"`
}
