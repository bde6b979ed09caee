package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"runzenAPI/internal/user"
	"runzenAPI/middleware"
)

const minPasswordLength = 6

type UserService struct {
	db *pgxpool.Pool
}

func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Signup(ctx context.Context, req *user.SignupRequest) (*user.Token, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email")
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}

	query := `
	INSERT INTO users (id, email, name, hashed_password, onboarding_complete, created_at)
	VALUES ($1, $2, $3, $4, false, $5)
	RETURNING id, email, name, handle, onboarding_complete, created_at
	`

	err = s.db.QueryRow(ctx, query, u.ID, u.Email, u.Name, string(hashed), u.CreatedAt).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Handle,
		&u.OnboardingComplete,
		&u.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, fmt.Errorf("email already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := middleware.IssueToken(u.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("New signup: %s", u.Email)
	return &user.Token{AccessToken: token, TokenType: "bearer", User: u}, nil
}

func (s *UserService) Login(ctx context.Context, req *user.LoginRequest) (*user.Token, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	query := `
	SELECT id, email, name, handle, hashed_password, onboarding_complete, created_at
	FROM users
	WHERE email = $1
	`

	u := &user.User{}
	err := s.db.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Handle,
		&u.HashedPassword,
		&u.OnboardingComplete,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incorrect email or password")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(req.Password)) != nil {
		return nil, fmt.Errorf("incorrect email or password")
	}
	u.HashedPassword = ""

	token, err := middleware.IssueToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &user.Token{AccessToken: token, TokenType: "bearer", User: u}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	query := `
	SELECT id, email, name, handle, onboarding_complete, created_at
	FROM users
	WHERE id = $1
	`

	u := &user.User{}
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Handle,
		&u.OnboardingComplete,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (s *UserService) CompleteOnboarding(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	_, err := s.db.Exec(ctx, `UPDATE users SET onboarding_complete = true WHERE id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to complete onboarding: %w", err)
	}
	return s.GetUserByID(ctx, userID)
}

// GetGoals returns the user's goal configuration, falling back to defaults
// when the user has never set any.
func (s *UserService) GetGoals(ctx context.Context, userID uuid.UUID) (*user.Goals, error) {
	query := `
	SELECT user_id, start_weight_lbs, goal_weight_lbs, weight_goal_date, yearly_km_goal, monthly_km_goal
	FROM user_goals
	WHERE user_id = $1
	`

	g := &user.Goals{}
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&g.UserID,
		&g.StartWeightLbs,
		&g.GoalWeightLbs,
		&g.WeightGoalDate,
		&g.YearlyKmGoal,
		&g.MonthlyKmGoal,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.DefaultGoals(userID), nil
		}
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}
	return g, nil
}

// UpdateGoals upserts the singleton goals row, only touching fields present
// in the request.
func (s *UserService) UpdateGoals(ctx context.Context, userID uuid.UUID, req *user.UpdateGoalsRequest) (*user.Goals, error) {
	if req.YearlyKmGoal != nil && *req.YearlyKmGoal <= 0 {
		return nil, fmt.Errorf("yearly_km_goal must be positive")
	}
	if req.MonthlyKmGoal != nil && *req.MonthlyKmGoal <= 0 {
		return nil, fmt.Errorf("monthly_km_goal must be positive")
	}

	current, err := s.GetGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.StartWeightLbs != nil {
		current.StartWeightLbs = req.StartWeightLbs
	}
	if req.GoalWeightLbs != nil {
		current.GoalWeightLbs = req.GoalWeightLbs
	}
	if req.WeightGoalDate != nil {
		current.WeightGoalDate = req.WeightGoalDate
	}
	if req.YearlyKmGoal != nil {
		current.YearlyKmGoal = *req.YearlyKmGoal
	}
	if req.MonthlyKmGoal != nil {
		current.MonthlyKmGoal = *req.MonthlyKmGoal
	}

	query := `
	INSERT INTO user_goals (user_id, start_weight_lbs, goal_weight_lbs, weight_goal_date, yearly_km_goal, monthly_km_goal)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (user_id) DO UPDATE SET
		start_weight_lbs = EXCLUDED.start_weight_lbs,
		goal_weight_lbs = EXCLUDED.goal_weight_lbs,
		weight_goal_date = EXCLUDED.weight_goal_date,
		yearly_km_goal = EXCLUDED.yearly_km_goal,
		monthly_km_goal = EXCLUDED.monthly_km_goal
	`

	_, err = s.db.Exec(ctx, query, userID, current.StartWeightLbs, current.GoalWeightLbs,
		current.WeightGoalDate, current.YearlyKmGoal, current.MonthlyKmGoal)
	if err != nil {
		return nil, fmt.Errorf("failed to update goals: %w", err)
	}
	return current, nil
}

// SetHandle claims a unique handle for the user.
func (s *UserService) SetHandle(ctx context.Context, userID uuid.UUID, handle string) (*user.User, error) {
	handle = strings.ToLower(strings.TrimSpace(handle))
	if len(handle) < 3 || len(handle) > 30 {
		return nil, fmt.Errorf("handle must be 3-30 characters")
	}
	for _, c := range handle {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return nil, fmt.Errorf("handle may only contain letters, numbers and underscores")
		}
	}

	_, err := s.db.Exec(ctx, `UPDATE users SET handle = $1 WHERE id = $2`, handle, userID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, fmt.Errorf("handle already taken")
		}
		return nil, fmt.Errorf("failed to set handle: %w", err)
	}
	return s.GetUserByID(ctx, userID)
}

// CheckHandle reports whether a handle is still available.
func (s *UserService) CheckHandle(ctx context.Context, handle string) (bool, error) {
	handle = strings.ToLower(strings.TrimSpace(handle))

	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE handle = $1)`, handle).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check handle: %w", err)
	}
	return !exists, nil
}
