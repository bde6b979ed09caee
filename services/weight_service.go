package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"runzenAPI/internal/progress"
	"runzenAPI/internal/weight"
)

type WeightService struct {
	db          *pgxpool.Pool
	userService *UserService
	now         func() time.Time
}

func NewWeightService(db *pgxpool.Pool, userService *UserService) *WeightService {
	return &WeightService{db: db, userService: userService, now: time.Now}
}

func (s *WeightService) Create(ctx context.Context, userID uuid.UUID, req *weight.CreateRequest) (*weight.Entry, error) {
	if req.WeightLbs <= 0 || req.WeightLbs > weight.MaxWeightLbs {
		return nil, fmt.Errorf("weight_lbs must be between 0 and %.0f", weight.MaxWeightLbs)
	}

	recordedAt := s.now()
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	entry := &weight.Entry{
		ID:         uuid.New(),
		UserID:     userID,
		WeightLbs:  req.WeightLbs,
		RecordedAt: recordedAt,
		Notes:      req.Notes,
	}

	query := `
	INSERT INTO weights (id, user_id, weight_lbs, recorded_at, notes)
	VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.Exec(ctx, query, entry.ID, entry.UserID, entry.WeightLbs, entry.RecordedAt, entry.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to create weight entry: %w", err)
	}
	return entry, nil
}

func (s *WeightService) List(ctx context.Context, userID uuid.UUID, limit int) ([]weight.Entry, error) {
	if limit <= 0 || limit > 365 {
		limit = 90
	}

	query := `
	SELECT id, user_id, weight_lbs, recorded_at, notes
	FROM weights
	WHERE user_id = $1
	ORDER BY recorded_at DESC
	LIMIT $2
	`
	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list weight entries: %w", err)
	}
	defer rows.Close()

	out := []weight.Entry{}
	for rows.Next() {
		var e weight.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.WeightLbs, &e.RecordedAt, &e.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan weight entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *WeightService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM weights WHERE id = $1 AND user_id = $2`, entryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete weight entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("weight entry not found")
	}
	return nil
}

func (s *WeightService) Progress(ctx context.Context, userID uuid.UUID) (*weight.Progress, error) {
	entries, err := s.loadAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.userService.GetGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return progress.WeightProgress(entries, goals, s.now()), nil
}

func (s *WeightService) Chart(ctx context.Context, userID uuid.UUID) ([]weight.ChartPoint, error) {
	entries, err := s.loadAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return progress.WeightChart(entries), nil
}

func (s *WeightService) loadAll(ctx context.Context, userID uuid.UUID) ([]weight.Entry, error) {
	query := `
	SELECT id, user_id, weight_lbs, recorded_at, notes
	FROM weights
	WHERE user_id = $1
	ORDER BY recorded_at
	`
	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load weight history: %w", err)
	}
	defer rows.Close()

	var out []weight.Entry
	for rows.Next() {
		var e weight.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.WeightLbs, &e.RecordedAt, &e.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan weight entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
