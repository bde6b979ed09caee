package circle

import (
	"time"

	"github.com/google/uuid"
)

// MaxMembers caps circle size; joins beyond this are rejected.
const MaxMembers = 10

type Circle struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	InviteCode string    `json:"invite_code" db:"invite_code"`
	CreatedBy  uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type Membership struct {
	CircleID uuid.UUID `json:"circle_id" db:"circle_id"`
	UserID   uuid.UUID `json:"user_id" db:"user_id"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

type Summary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	InviteCode  string    `json:"invite_code"`
	MemberCount int       `json:"member_count"`
	IsCreator   bool      `json:"is_creator"`
	JoinedAt    time.Time `json:"joined_at"`
}

// Member is one leaderboard row inside a circle, ranked by monthly km.
type Member struct {
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Handle      *string   `json:"handle"`
	TotalRuns   int       `json:"total_runs"`
	TotalKm     float64   `json:"total_km"`
	MonthlyKm   float64   `json:"monthly_km"`
	MonthlyRuns int       `json:"monthly_runs"`
	IsYou       bool      `json:"is_you"`
	Rank        int       `json:"rank"`
}

type Details struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	InviteCode  string    `json:"invite_code"`
	MemberCount int       `json:"member_count"`
	Members     []*Member `json:"members"`
	CreatedBy   uuid.UUID `json:"created_by"`
}
