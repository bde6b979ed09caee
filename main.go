package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	gorilllaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"runzenAPI/handlers"
	"runzenAPI/middleware"
	"runzenAPI/services"

	_ "net/http/pprof"
)

var (
	dbPool          *pgxpool.Pool
	userService     *services.UserService
	runService      *services.RunService
	stepsService    *services.StepsService
	weightService   *services.WeightService
	progressService *services.ProgressService
	circleService   *services.CircleService
	planService     *services.PlanService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		log.Fatal("Failed to parse database URL:", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("Failed to create connection pool:", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Successfully connected to Postgres")

	userService = services.NewUserService(dbPool)
	runService = services.NewRunService(dbPool, userService)
	stepsService = services.NewStepsService(dbPool)
	weightService = services.NewWeightService(dbPool, userService)
	progressService = services.NewProgressService(dbPool, userService, stepsService, weightService)
	circleService = services.NewCircleService(dbPool)
	planService = services.NewPlanService(dbPool)

	middleware.InitPrometheus()
}

func main() {
	defer func() {
		log.Println("Closing database connection pool...")
		dbPool.Close()
	}()

	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	runHandler := handlers.NewRunHandler(runService)
	stepsHandler := handlers.NewStepsHandler(stepsService)
	weightHandler := handlers.NewWeightHandler(weightService)
	progressHandler := handlers.NewProgressHandler(progressService)
	circleHandler := handlers.NewCircleHandler(circleService)
	planHandler := handlers.NewPlanHandler(planService)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()

	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))
	r.PathPrefix("/debug/pprof/").Handler(middleware.PprofSecurityMiddleware(http.DefaultServeMux))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "error": "database connection failed"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "runzen-api"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// -------------------------------------------------------------------------
	// PROTECTED ROUTES (REQUIRE AUTH HEADER)
	// -------------------------------------------------------------------------
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)

	protected.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	protected.HandleFunc("/runs", runHandler.CreateRun).Methods("POST")
	protected.HandleFunc("/runs", runHandler.ListRuns).Methods("GET")
	protected.HandleFunc("/runs/{id}", runHandler.GetRun).Methods("GET")
	protected.HandleFunc("/runs/{id}", runHandler.UpdateRun).Methods("PUT")
	protected.HandleFunc("/runs/{id}", runHandler.DeleteRun).Methods("DELETE")

	protected.HandleFunc("/stats", progressHandler.GetStats).Methods("GET")
	protected.HandleFunc("/streak", progressHandler.GetStreak).Methods("GET")
	protected.HandleFunc("/goals", progressHandler.GetGoals).Methods("GET")
	protected.HandleFunc("/personal-records", progressHandler.GetPersonalRecords).Methods("GET")
	protected.HandleFunc("/achievements", progressHandler.GetAchievements).Methods("GET")
	protected.HandleFunc("/month-review", progressHandler.GetMonthReview).Methods("GET")
	protected.HandleFunc("/motivation", progressHandler.GetMotivation).Methods("GET")

	protected.HandleFunc("/steps", stepsHandler.CreateSteps).Methods("POST")
	protected.HandleFunc("/steps", stepsHandler.ListSteps).Methods("GET")
	protected.HandleFunc("/steps/summary", stepsHandler.GetSummary).Methods("GET")
	protected.HandleFunc("/steps/{id}", stepsHandler.DeleteSteps).Methods("DELETE")

	protected.HandleFunc("/weights", weightHandler.CreateWeight).Methods("POST")
	protected.HandleFunc("/weights", weightHandler.ListWeights).Methods("GET")
	protected.HandleFunc("/weights/{id}", weightHandler.DeleteWeight).Methods("DELETE")
	protected.HandleFunc("/weight-progress", weightHandler.GetProgress).Methods("GET")
	protected.HandleFunc("/weight-chart", weightHandler.GetChart).Methods("GET")

	protected.HandleFunc("/user/goals", userHandler.GetGoals).Methods("GET")
	protected.HandleFunc("/user/goals", userHandler.UpdateGoals).Methods("POST")
	protected.HandleFunc("/user/complete-onboarding", userHandler.CompleteOnboarding).Methods("POST")
	protected.HandleFunc("/user/handle", userHandler.SetHandle).Methods("POST")
	protected.HandleFunc("/user/handle/{handle}", userHandler.CheckHandle).Methods("GET")

	protected.HandleFunc("/circles", circleHandler.CreateCircle).Methods("POST")
	protected.HandleFunc("/circles", circleHandler.ListCircles).Methods("GET")
	protected.HandleFunc("/circles/join", circleHandler.JoinCircle).Methods("POST")
	protected.HandleFunc("/circles/{id}", circleHandler.GetCircle).Methods("GET")
	protected.HandleFunc("/circles/{id}/leave", circleHandler.LeaveCircle).Methods("DELETE")

	protected.HandleFunc("/plans", planHandler.UpsertPlan).Methods("POST")
	protected.HandleFunc("/plans/current", planHandler.GetCurrentPlan).Methods("GET")
	protected.HandleFunc("/plans/{weekID}", planHandler.GetPlan).Methods("GET")

	// CORS configuration
	corsHandler := gorilllaHandlers.CORS(
		gorilllaHandlers.AllowedOrigins([]string{"*"}),
		gorilllaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilllaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorilllaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorilllaHandlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3333"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
