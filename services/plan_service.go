package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"runzenAPI/internal/plan"
	"runzenAPI/internal/progress"
	"runzenAPI/internal/run"
)

type PlanService struct {
	db  *pgxpool.Pool
	now func() time.Time
}

func NewPlanService(db *pgxpool.Pool) *PlanService {
	return &PlanService{db: db, now: time.Now}
}

var weekIDPattern = regexp.MustCompile(`^\d{4}-W\d{2}$`)

// Upsert replaces the user's plan for the given week.
func (s *PlanService) Upsert(ctx context.Context, userID uuid.UUID, req *plan.CreateRequest) (*plan.WeeklyPlan, error) {
	weekID := req.WeekID
	if weekID == "" {
		weekID = progress.WeekID(s.now())
	}
	if !weekIDPattern.MatchString(weekID) {
		return nil, fmt.Errorf("invalid week_id: %s", weekID)
	}
	if len(req.PlannedRuns) == 0 || len(req.PlannedRuns) > 14 {
		return nil, fmt.Errorf("planned_runs must hold 1-14 entries")
	}
	for _, t := range req.PlannedRuns {
		if !run.IsValidType(run.Type(t)) {
			return nil, fmt.Errorf("invalid run_type in plan: %s", t)
		}
	}

	p := &plan.WeeklyPlan{
		ID:          uuid.New(),
		UserID:      userID,
		WeekID:      weekID,
		PlannedRuns: req.PlannedRuns,
		CreatedAt:   s.now(),
	}

	query := `
	INSERT INTO weekly_plans (id, user_id, week_id, planned_runs, created_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (user_id, week_id) DO UPDATE SET
		planned_runs = EXCLUDED.planned_runs,
		created_at = EXCLUDED.created_at
	RETURNING id
	`
	err := s.db.QueryRow(ctx, query, p.ID, p.UserID, p.WeekID, p.PlannedRuns, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}
	return p, nil
}

func (s *PlanService) Get(ctx context.Context, userID uuid.UUID, weekID string) (*plan.WeeklyPlan, error) {
	if !weekIDPattern.MatchString(weekID) {
		return nil, fmt.Errorf("invalid week_id: %s", weekID)
	}

	p := &plan.WeeklyPlan{}
	err := s.db.QueryRow(ctx, `
	SELECT id, user_id, week_id, planned_runs, created_at
	FROM weekly_plans
	WHERE user_id = $1 AND week_id = $2
	`, userID, weekID).Scan(&p.ID, &p.UserID, &p.WeekID, &p.PlannedRuns, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("plan not found")
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return p, nil
}

// Current returns the plan for the week containing now.
func (s *PlanService) Current(ctx context.Context, userID uuid.UUID) (*plan.WeeklyPlan, error) {
	return s.Get(ctx, userID, progress.WeekID(s.now()))
}
