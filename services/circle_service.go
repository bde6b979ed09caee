package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"runzenAPI/internal/circle"
	"runzenAPI/internal/progress"
)

type CircleService struct {
	db  *pgxpool.Pool
	now func() time.Time
}

func NewCircleService(db *pgxpool.Pool) *CircleService {
	return &CircleService{db: db, now: time.Now}
}

const inviteCodeChars = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

func newInviteCode() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = inviteCodeChars[rand.Intn(len(inviteCodeChars))]
	}
	return string(b)
}

func (s *CircleService) Create(ctx context.Context, userID uuid.UUID, name string) (*circle.Circle, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 50 {
		return nil, fmt.Errorf("circle name must be 1-50 characters")
	}

	c := &circle.Circle{
		ID:         uuid.New(),
		Name:       name,
		InviteCode: newInviteCode(),
		CreatedBy:  userID,
		CreatedAt:  s.now(),
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
	INSERT INTO circles (id, name, invite_code, created_by, created_at)
	VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.Name, c.InviteCode, c.CreatedBy, c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create circle: %w", err)
	}

	_, err = tx.Exec(ctx, `
	INSERT INTO circle_memberships (circle_id, user_id, joined_at)
	VALUES ($1, $2, $3)
	`, c.ID, userID, c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add creator membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit circle: %w", err)
	}
	return c, nil
}

// Join adds the user to the circle behind an invite code. The circle row is
// locked so concurrent joins cannot push membership past the cap.
func (s *CircleService) Join(ctx context.Context, userID uuid.UUID, inviteCode string) (*circle.Circle, error) {
	inviteCode = strings.ToUpper(strings.TrimSpace(inviteCode))

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	c := &circle.Circle{}
	err = tx.QueryRow(ctx, `
	SELECT id, name, invite_code, created_by, created_at
	FROM circles
	WHERE invite_code = $1
	FOR UPDATE
	`, inviteCode).Scan(&c.ID, &c.Name, &c.InviteCode, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("circle not found")
		}
		return nil, fmt.Errorf("failed to find circle: %w", err)
	}

	var memberCount int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM circle_memberships WHERE circle_id = $1`, c.ID).Scan(&memberCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	if memberCount >= circle.MaxMembers {
		return nil, fmt.Errorf("circle is full")
	}

	_, err = tx.Exec(ctx, `
	INSERT INTO circle_memberships (circle_id, user_id, joined_at)
	VALUES ($1, $2, $3)
	`, c.ID, userID, s.now())
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, fmt.Errorf("already a member")
		}
		return nil, fmt.Errorf("failed to join circle: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit join: %w", err)
	}
	return c, nil
}

func (s *CircleService) Leave(ctx context.Context, userID, circleID uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `
	DELETE FROM circle_memberships WHERE circle_id = $1 AND user_id = $2
	`, circleID, userID)
	if err != nil {
		return fmt.Errorf("failed to leave circle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("not a member")
	}

	// Empty circles disappear.
	_, err = s.db.Exec(ctx, `
	DELETE FROM circles WHERE id = $1
	AND NOT EXISTS (SELECT 1 FROM circle_memberships WHERE circle_id = $1)
	`, circleID)
	if err != nil {
		return fmt.Errorf("failed to clean up circle: %w", err)
	}
	return nil
}

func (s *CircleService) List(ctx context.Context, userID uuid.UUID) ([]*circle.Summary, error) {
	query := `
	SELECT c.id, c.name, c.invite_code, c.created_by, m.joined_at,
	       (SELECT COUNT(*) FROM circle_memberships WHERE circle_id = c.id) AS member_count
	FROM circles c
	JOIN circle_memberships m ON m.circle_id = c.id
	WHERE m.user_id = $1
	ORDER BY m.joined_at
	`
	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list circles: %w", err)
	}
	defer rows.Close()

	out := []*circle.Summary{}
	for rows.Next() {
		sum := &circle.Summary{}
		var createdBy uuid.UUID
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.InviteCode, &createdBy, &sum.JoinedAt, &sum.MemberCount); err != nil {
			return nil, fmt.Errorf("failed to scan circle: %w", err)
		}
		sum.IsCreator = createdBy == userID
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Details returns the circle with its member leaderboard ranked by
// this month's distance.
func (s *CircleService) Details(ctx context.Context, userID, circleID uuid.UUID) (*circle.Details, error) {
	var isMember bool
	err := s.db.QueryRow(ctx, `
	SELECT EXISTS(SELECT 1 FROM circle_memberships WHERE circle_id = $1 AND user_id = $2)
	`, circleID, userID).Scan(&isMember)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, fmt.Errorf("not a member")
	}

	d := &circle.Details{}
	err = s.db.QueryRow(ctx, `
	SELECT id, name, invite_code, created_by FROM circles WHERE id = $1
	`, circleID).Scan(&d.ID, &d.Name, &d.InviteCode, &d.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("circle not found")
		}
		return nil, fmt.Errorf("failed to get circle: %w", err)
	}

	monthStart, monthNext := progress.MonthBounds(s.now().Year(), s.now().Month())

	query := `
	SELECT u.id, COALESCE(u.name, u.email), u.handle,
	       COUNT(r.id) AS total_runs,
	       COALESCE(SUM(r.distance_km), 0) AS total_km,
	       COUNT(r.id) FILTER (WHERE r.completed_at >= $2 AND r.completed_at < $3) AS monthly_runs,
	       COALESCE(SUM(r.distance_km) FILTER (WHERE r.completed_at >= $2 AND r.completed_at < $3), 0) AS monthly_km
	FROM circle_memberships m
	JOIN users u ON u.id = m.user_id
	LEFT JOIN runs r ON r.user_id = u.id
	WHERE m.circle_id = $1
	GROUP BY u.id, u.name, u.email, u.handle
	`
	rows, err := s.db.Query(ctx, query, circleID, monthStart, monthNext)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		m := &circle.Member{}
		if err := rows.Scan(&m.UserID, &m.Name, &m.Handle, &m.TotalRuns, &m.TotalKm, &m.MonthlyRuns, &m.MonthlyKm); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		m.IsYou = m.UserID == userID
		d.Members = append(d.Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(d.Members, func(i, j int) bool {
		if d.Members[i].MonthlyKm != d.Members[j].MonthlyKm {
			return d.Members[i].MonthlyKm > d.Members[j].MonthlyKm
		}
		return d.Members[i].TotalKm > d.Members[j].TotalKm
	})
	for i, m := range d.Members {
		m.Rank = i + 1
	}
	d.MemberCount = len(d.Members)
	return d, nil
}
