package helpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"runzenAPI/middleware"
)

// SetupTestDB creates a test database connection
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL or DATABASE_URL must be set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	return pool
}

// CleanupTestDB cleans up test data
func CleanupTestDB(t *testing.T, pool *pgxpool.Pool) {
	ctx := context.Background()
	_, err := pool.Exec(ctx, "DELETE FROM users WHERE email LIKE 'test%@example.com'")
	if err != nil {
		t.Logf("Warning: failed to cleanup test data: %v", err)
	}
	pool.Close()
}

// CreateTestUser inserts a user row and returns its id with a valid bearer
// token for it. JWT_SECRET must be set before calling.
func CreateTestUser(t *testing.T, pool *pgxpool.Pool, email string) (uuid.UUID, string) {
	ctx := context.Background()
	userID := uuid.New()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	_, err = pool.Exec(ctx, `
	INSERT INTO users (id, email, name, hashed_password, onboarding_complete, created_at)
	VALUES ($1, $2, 'Test User', $3, true, $4)
	`, userID, email, string(hashed), time.Now())
	if err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}

	token, err := middleware.IssueToken(userID)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return userID, token
}

// TestEmail namespaces an address so CleanupTestDB catches it.
func TestEmail(prefix string) string {
	return fmt.Sprintf("test%s-%d@example.com", prefix, time.Now().UnixNano())
}
