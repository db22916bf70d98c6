package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-api/internal/config"
	"github.com/stemsi/trivia-api/internal/database"
	"github.com/stemsi/trivia-api/internal/handler"
	"github.com/stemsi/trivia-api/internal/logger"
	"github.com/stemsi/trivia-api/internal/metrics"
	"github.com/stemsi/trivia-api/internal/middleware"
	"github.com/stemsi/trivia-api/internal/repository"
	"github.com/stemsi/trivia-api/internal/router"
	"github.com/stemsi/trivia-api/internal/service"
	"github.com/stemsi/trivia-api/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("store", cfg.StoreDriver).
		Msg("Starting Trivia API")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Initialize Repositories ───────────────────────────────────────
	var (
		questionRepo repository.QuestionRepository
		categoryRepo repository.CategoryRepository
		dbPinger     handler.Pinger
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store := repository.NewMemoryStore(repository.DefaultCategories, repository.SampleQuestions)
		questionRepo = store.Questions()
		categoryRepo = store.Categories()
		log.Warn().Msg("Using in-memory store, data is lost on restart")
	default:
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		questionRepo = repository.NewQuestionRepository(pool)
		categoryRepo = repository.NewCategoryRepository(pool)
		dbPinger = pool
	}

	// ─── Connect to Redis (rate limiting) ──────────────────────────────
	var limiter *middleware.RateLimiter
	if cfg.RateLimitEnabled() {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		limiter = middleware.NewRateLimiter(middleware.NewRedisCounter(rdb), cfg.RateLimitPerMinute, time.Minute, log)
	} else {
		log.Info().
			Bool("redis_configured", cfg.RedisURL != "").
			Int("rate_limit_per_minute", cfg.RateLimitPerMinute).
			Msg("Rate limiting disabled")
	}

	// ─── Metrics ───────────────────────────────────────────────────────
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// ─── Initialize Services ──────────────────────────────────────────
	questionService := service.NewQuestionService(questionRepo, categoryRepo, log)
	categoryService := service.NewCategoryService(categoryRepo)
	quizService := service.NewQuizService(questionRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Category: handler.NewCategoryHandler(categoryService, questionService, log),
		Question: handler.NewQuestionHandler(questionService, categoryService, log),
		Quiz:     handler.NewQuizHandler(quizService, m, log),
		Health:   handler.NewHealthHandler(dbPinger, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg, router.Options{
		Log:         log,
		Metrics:     m,
		Gatherer:    reg,
		RateLimiter: limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
