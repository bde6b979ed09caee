package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"runzenAPI/internal/progress"
	"runzenAPI/internal/run"
	"runzenAPI/internal/steps"
)

type StepsService struct {
	db  *pgxpool.Pool
	now func() time.Time
}

func NewStepsService(db *pgxpool.Pool) *StepsService {
	return &StepsService{db: db, now: time.Now}
}

// StepsResponse pairs a stored entry with the celebrations it triggered.
type StepsResponse struct {
	steps.Entry
	Celebrations []run.Celebration `json:"celebrations,omitempty"`
}

func (s *StepsService) Create(ctx context.Context, userID uuid.UUID, req *steps.CreateRequest) (*StepsResponse, error) {
	if req.StepCount <= 0 {
		return nil, fmt.Errorf("step_count must be positive")
	}

	recordedDate := s.now()
	if req.RecordedDate != nil {
		recordedDate = *req.RecordedDate
	}

	entry := steps.Entry{
		ID:           uuid.New(),
		UserID:       userID,
		StepCount:    req.StepCount,
		RecordedDate: recordedDate,
		Notes:        req.Notes,
	}

	query := `
	INSERT INTO step_entries (id, user_id, step_count, recorded_date, notes)
	VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.Exec(ctx, query, entry.ID, entry.UserID, entry.StepCount, entry.RecordedDate, entry.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to create step entry: %w", err)
	}

	return &StepsResponse{
		Entry:        entry,
		Celebrations: progress.DetectStepCelebrations(entry),
	}, nil
}

func (s *StepsService) List(ctx context.Context, userID uuid.UUID, limit int) ([]steps.Entry, error) {
	if limit <= 0 || limit > 365 {
		limit = 90
	}

	query := `
	SELECT id, user_id, step_count, recorded_date, notes
	FROM step_entries
	WHERE user_id = $1
	ORDER BY recorded_date DESC
	LIMIT $2
	`
	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list step entries: %w", err)
	}
	defer rows.Close()

	out := []steps.Entry{}
	for rows.Next() {
		var e steps.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.StepCount, &e.RecordedDate, &e.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan step entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *StepsService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM step_entries WHERE id = $1 AND user_id = $2`, entryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete step entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("step entry not found")
	}
	return nil
}

// Summary folds the full step history into current-month, per-month and
// all-time threshold counts.
func (s *StepsService) Summary(ctx context.Context, userID uuid.UUID) (*steps.Summary, error) {
	entries, err := s.loadAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return progress.StepsSummary(entries, s.now()), nil
}

func (s *StepsService) loadAll(ctx context.Context, userID uuid.UUID) ([]steps.Entry, error) {
	query := `
	SELECT id, user_id, step_count, recorded_date, notes
	FROM step_entries
	WHERE user_id = $1
	ORDER BY recorded_date
	`
	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load step history: %w", err)
	}
	defer rows.Close()

	var out []steps.Entry
	for rows.Next() {
		var e steps.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.StepCount, &e.RecordedDate, &e.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan step entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
