package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"runzenAPI/internal/progress"
	"runzenAPI/internal/run"
	"runzenAPI/utils"
)

// ProgressService serves every derived read. Nothing here is persisted:
// each call loads the user's history and recomputes from scratch, so edits
// and deletes anywhere in the past are always reflected.
type ProgressService struct {
	db            *pgxpool.Pool
	userService   *UserService
	stepsService  *StepsService
	weightService *WeightService
	now           func() time.Time
}

func NewProgressService(db *pgxpool.Pool, userService *UserService, stepsService *StepsService, weightService *WeightService) *ProgressService {
	return &ProgressService{
		db:            db,
		userService:   userService,
		stepsService:  stepsService,
		weightService: weightService,
		now:           time.Now,
	}
}

func (s *ProgressService) loadRuns(ctx context.Context, userID uuid.UUID) ([]run.Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM runs WHERE user_id = $1 ORDER BY completed_at`, runColumns)
	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run history: %w", err)
	}
	defer rows.Close()

	var out []run.Entry
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *ProgressService) Stats(ctx context.Context, userID uuid.UUID) (*progress.Stats, error) {
	runs, err := s.loadRuns(ctx, userID)
	if err != nil {
		return nil, err
	}
	return progress.Summary(runs, s.now()), nil
}

func (s *ProgressService) Streak(ctx context.Context, userID uuid.UUID) (*progress.WeeklyStreakProgress, error) {
	runs, err := s.loadRuns(ctx, userID)
	if err != nil {
		return nil, err
	}
	return progress.WeekProgress(runs, s.now()), nil
}

func (s *ProgressService) Goals(ctx context.Context, userID uuid.UUID) (*progress.GoalsProgress, error) {
	runs, err := s.loadRuns(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.userService.GetGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return progress.Goals(runs, goals, s.now()), nil
}

func (s *ProgressService) PersonalRecords(ctx context.Context, userID uuid.UUID) (map[run.Type]*progress.PersonalRecord, error) {
	runs, err := s.loadRuns(ctx, userID)
	if err != nil {
		return nil, err
	}
	return progress.PersonalRecords(runs), nil
}

func (s *ProgressService) Achievements(ctx context.Context, userID uuid.UUID) (*progress.AchievementsData, error) {
	runs, err := s.loadRuns(ctx, userID)
	if err != nil {
		return nil, err
	}
	stepEntries, err := s.stepsService.loadAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.userService.GetGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	agg := progress.BuildAggregates(runs, stepEntries, goals.MonthlyKmGoal, s.now())
	return progress.EvaluateAchievements(agg), nil
}

// MonthReview aggregates one calendar month. Zero month/year default to the
// current month.
func (s *ProgressService) MonthReview(ctx context.Context, userID uuid.UUID, year, month int) (*progress.MonthReview, error) {
	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month: %d", month)
	}

	runs, err := s.loadRuns(ctx, userID)
	if err != nil {
		return nil, err
	}
	stepEntries, err := s.stepsService.loadAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	weights, err := s.weightService.loadAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	return progress.MonthInReview(runs, stepEntries, weights, year, time.Month(month), now), nil
}

// Motivation returns the milestone message when the user sits exactly on a
// run-count milestone, otherwise a rotating encouragement line.
func (s *ProgressService) Motivation(ctx context.Context, userID uuid.UUID) (*utils.Motivation, error) {
	runs, err := s.loadRuns(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := progress.Summary(runs, s.now())

	if msg, ok := utils.MilestoneMessage(stats.TotalRuns); ok {
		return msg, nil
	}
	return utils.DailyMotivation(s.now()), nil
}
