package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	Name               *string   `json:"name"`
	Handle             *string   `json:"handle"`
	HashedPassword     string    `json:"-"`
	OnboardingComplete bool      `json:"onboarding_complete"`
	CreatedAt          time.Time `json:"created_at"`
}

type SignupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token is the auth response envelope for signup and login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}

const (
	DefaultYearlyKmGoal  = 1000.0
	DefaultMonthlyKmGoal = 100.0
)

// Goals is the per-user goal configuration, upserted as a singleton row.
type Goals struct {
	UserID         uuid.UUID  `json:"-"`
	StartWeightLbs *float64   `json:"start_weight_lbs"`
	GoalWeightLbs  *float64   `json:"goal_weight_lbs"`
	WeightGoalDate *time.Time `json:"weight_goal_date"`
	YearlyKmGoal   float64    `json:"yearly_km_goal"`
	MonthlyKmGoal  float64    `json:"monthly_km_goal"`
}

// DefaultGoals returns the goal configuration used before a user has
// completed onboarding.
func DefaultGoals(userID uuid.UUID) *Goals {
	return &Goals{
		UserID:        userID,
		YearlyKmGoal:  DefaultYearlyKmGoal,
		MonthlyKmGoal: DefaultMonthlyKmGoal,
	}
}

type UpdateGoalsRequest struct {
	StartWeightLbs *float64   `json:"start_weight_lbs"`
	GoalWeightLbs  *float64   `json:"goal_weight_lbs"`
	WeightGoalDate *time.Time `json:"weight_goal_date"`
	YearlyKmGoal   *float64   `json:"yearly_km_goal"`
	MonthlyKmGoal  *float64   `json:"monthly_km_goal"`
}
