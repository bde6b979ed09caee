package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runzenAPI/handlers"
	"runzenAPI/internal/user"
	"runzenAPI/middleware"
	"runzenAPI/services"
	"runzenAPI/tests/helpers"
)

func TestSignupAndLogin(t *testing.T) {
	// Setup
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	userService := services.NewUserService(pool)
	authHandler := handlers.NewAuthHandler(userService)

	email := helpers.TestEmail("signup")

	// Sign up
	signupData := `{"email": "` + email + `", "password": "password123", "name": "Test Runner"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(signupData))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	authHandler.Signup(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code, "signup should succeed: %s", rr.Body.String())

	var signupToken user.Token
	err := json.Unmarshal(rr.Body.Bytes(), &signupToken)
	require.NoError(t, err)
	assert.NotEmpty(t, signupToken.AccessToken)
	assert.Equal(t, "bearer", signupToken.TokenType)
	require.NotNil(t, signupToken.User)
	assert.Equal(t, email, signupToken.User.Email)

	// Duplicate signup is rejected
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(signupData))
	req.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()

	authHandler.Signup(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Log in with the right password
	loginData := `{"email": "` + email + `", "password": "password123"}`
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(loginData))
	req.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()

	authHandler.Login(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var loginToken user.Token
	err = json.Unmarshal(rr.Body.Bytes(), &loginToken)
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken.AccessToken)

	// Wrong password gets 401
	badLogin := `{"email": "` + email + `", "password": "wrongpassword"}`
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(badLogin))
	req.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()

	authHandler.Login(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Token works through the auth middleware
	protected := middleware.AuthMiddleware(http.HandlerFunc(authHandler.Me))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+loginToken.AccessToken)
	rr = httptest.NewRecorder()

	protected.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	var me user.User
	err = json.Unmarshal(rr.Body.Bytes(), &me)
	require.NoError(t, err)
	assert.Equal(t, email, me.Email)
}

func TestMe_Unauthenticated(t *testing.T) {
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	userService := services.NewUserService(pool)
	authHandler := handlers.NewAuthHandler(userService)
	protected := middleware.AuthMiddleware(http.HandlerFunc(authHandler.Me))

	// No Authorization header
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rr := httptest.NewRecorder()

	protected.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Garbage token
	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rr = httptest.NewRecorder()

	protected.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Contains(t, response["error"], "Invalid or expired token")
}

func TestSignup_Validation(t *testing.T) {
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	userService := services.NewUserService(pool)
	ctx := context.Background()

	// Password too short
	_, err := userService.Signup(ctx, &user.SignupRequest{
		Email:    helpers.TestEmail("short"),
		Password: "abc",
	})
	assert.Error(t, err)

	// Email without an @
	_, err = userService.Signup(ctx, &user.SignupRequest{
		Email:    "not-an-email",
		Password: "password123",
	})
	assert.Error(t, err)
}
