package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"runzenAPI/internal/progress"
	"runzenAPI/internal/run"
)

type RunService struct {
	db          *pgxpool.Pool
	userService *UserService
	now         func() time.Time
}

func NewRunService(db *pgxpool.Pool, userService *UserService) *RunService {
	return &RunService{db: db, userService: userService, now: time.Now}
}

const runColumns = `id, user_id, run_type, duration_seconds, distance_km, completed_at, category, notes`

func scanRun(row pgx.Row) (*run.Entry, error) {
	r := &run.Entry{}
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.RunType,
		&r.DurationSeconds,
		&r.DistanceKm,
		&r.CompletedAt,
		&r.Category,
		&r.Notes,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func validateRunInput(runType run.Type, durationSeconds int, category string) error {
	if !run.IsValidType(runType) {
		return fmt.Errorf("invalid run_type: %s", runType)
	}
	if durationSeconds <= 0 {
		return fmt.Errorf("duration_seconds must be positive")
	}
	if category != run.CategoryOutdoor && category != run.CategoryTreadmill {
		return fmt.Errorf("invalid category: %s", category)
	}
	return nil
}

// Create inserts a run and derives its personal-best flag and celebrations
// in the same transaction. The owning user row is locked first so two
// concurrent submissions for the same user serialize and both see a
// consistent history.
func (s *RunService) Create(ctx context.Context, userID uuid.UUID, req *run.CreateRequest) (*run.Response, error) {
	category := req.Category
	if category == "" {
		category = run.CategoryOutdoor
	}
	if err := validateRunInput(req.RunType, req.DurationSeconds, category); err != nil {
		return nil, err
	}

	completedAt := s.now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	goals, err := s.userService.GetGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockUserRow(ctx, tx, userID); err != nil {
		return nil, err
	}

	newRun := &run.Entry{
		ID:              uuid.New(),
		UserID:          userID,
		RunType:         req.RunType,
		DurationSeconds: req.DurationSeconds,
		DistanceKm:      run.Distances[req.RunType],
		CompletedAt:     completedAt,
		Category:        category,
		Notes:           req.Notes,
	}

	query := `
	INSERT INTO runs (id, user_id, run_type, duration_seconds, distance_km, completed_at, category, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.Exec(ctx, query, newRun.ID, newRun.UserID, newRun.RunType, newRun.DurationSeconds,
		newRun.DistanceKm, newRun.CompletedAt, newRun.Category, newRun.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	history, err := loadRunsTx(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit run: %w", err)
	}

	resp := toRunResponse(newRun)
	isPB, prType := progress.CheckPersonalBest(history, *newRun)
	resp.IsPersonalBest = isPB
	if isPB {
		resp.PRType = &prType
	}
	resp.Celebrations = progress.DetectRunCelebrations(history, *newRun, goals, s.now())
	return resp, nil
}

// List returns the user's runs newest first, optionally filtered by type.
func (s *RunService) List(ctx context.Context, userID uuid.UUID, runType run.Type, limit, offset int) ([]*run.Response, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM runs WHERE user_id = $1`, runColumns)
	args := []interface{}{userID}
	if runType != "" {
		if !run.IsValidType(runType) {
			return nil, fmt.Errorf("invalid run_type: %s", runType)
		}
		query += ` AND run_type = $2`
		args = append(args, runType)
	}
	query += fmt.Sprintf(` ORDER BY completed_at DESC LIMIT %d OFFSET %d`, limit, offset)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	out := []*run.Response{}
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		out = append(out, toRunResponse(r))
	}
	return out, rows.Err()
}

func (s *RunService) Get(ctx context.Context, userID, runID uuid.UUID) (*run.Response, error) {
	query := fmt.Sprintf(`SELECT %s FROM runs WHERE id = $1 AND user_id = $2`, runColumns)
	r, err := scanRun(s.db.QueryRow(ctx, query, runID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("run not found")
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return toRunResponse(r), nil
}

// Update edits a run in place. Changing run_type re-derives distance_km, so
// streaks, goals and records downstream recompute from the new value.
// Celebrations never fire on edits.
func (s *RunService) Update(ctx context.Context, userID, runID uuid.UUID, req *run.UpdateRequest) (*run.Response, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockUserRow(ctx, tx, userID); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM runs WHERE id = $1 AND user_id = $2`, runColumns)
	r, err := scanRun(tx.QueryRow(ctx, query, runID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("run not found")
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if req.RunType != nil {
		r.RunType = *req.RunType
		r.DistanceKm = run.Distances[r.RunType]
	}
	if req.DurationSeconds != nil {
		r.DurationSeconds = *req.DurationSeconds
	}
	if req.Category != nil {
		r.Category = *req.Category
	}
	if req.Notes != nil {
		r.Notes = req.Notes
	}
	if err := validateRunInput(r.RunType, r.DurationSeconds, r.Category); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
	UPDATE runs SET run_type = $1, duration_seconds = $2, distance_km = $3, category = $4, notes = $5
	WHERE id = $6 AND user_id = $7
	`, r.RunType, r.DurationSeconds, r.DistanceKm, r.Category, r.Notes, r.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update run: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit run update: %w", err)
	}
	return toRunResponse(r), nil
}

func (s *RunService) Delete(ctx context.Context, userID, runID uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM runs WHERE id = $1 AND user_id = $2`, runID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("run not found")
	}
	return nil
}

func toRunResponse(r *run.Entry) *run.Response {
	return &run.Response{
		ID:                r.ID,
		RunType:           r.RunType,
		DurationSeconds:   r.DurationSeconds,
		DistanceKm:        r.DistanceKm,
		CompletedAt:       r.CompletedAt,
		Category:          r.Category,
		Notes:             r.Notes,
		PacePerKm:         progress.FormatPace(r.DurationSeconds, r.DistanceKm),
		FormattedDuration: progress.FormatDuration(r.DurationSeconds),
	}
}

func lockUserRow(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("user not found")
		}
		return fmt.Errorf("failed to lock user row: %w", err)
	}
	return nil
}

func loadRunsTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID) ([]run.Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM runs WHERE user_id = $1 ORDER BY completed_at`, runColumns)
	rows, err := tx.Query(ctx, query, userID)
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
