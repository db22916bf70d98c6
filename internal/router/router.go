package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-api/internal/config"
	"github.com/stemsi/trivia-api/internal/handler"
	"github.com/stemsi/trivia-api/internal/metrics"
	"github.com/stemsi/trivia-api/internal/middleware"
	"github.com/stemsi/trivia-api/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Category *handler.CategoryHandler
	Question *handler.QuestionHandler
	Quiz     *handler.QuizHandler
	Health   *handler.HealthHandler
}

// Options carries the cross-cutting pieces of the engine. Nil fields are skipped.
type Options struct {
	Log         zerolog.Logger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	RateLimiter *middleware.RateLimiter
}

// SetupRouter configures the Gin engine with every route and middleware.
func SetupRouter(handlers *Handlers, cfg *config.Config, opts Options) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		opts.Log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Handler panicked")
		response.AbortFail(c, http.StatusInternalServerError)
	}))

	// ─── CORS ──────────────────────────────────────────────────────────
	// Restrict to AllowedOrigins when set; otherwise allow all (*).
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())

	// /metrics negotiates its own gzip encoding.
	router.Use(middleware.CompressionWithConfig(middleware.CompressionConfig{
		MinLength: middleware.DefaultCompressionConfig.MinLength,
		Skipper:   func(c *gin.Context) bool { return c.Request.URL.Path == "/metrics" },
	}))
	router.Use(middleware.RequestLogger(opts.Log))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
	}

	router.NoRoute(response.NotFound)
	router.NoMethod(response.MethodNotAllowed)

	router.GET("/health", handlers.Health.Health)
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(opts.Gatherer)))
	}

	api := router.Group("")
	if opts.RateLimiter != nil {
		api.Use(opts.RateLimiter.Middleware())
	}
	{
		api.GET("/categories", handlers.Category.GetAll)
		api.GET("/categories/:id/questions", handlers.Category.ListQuestions)

		api.GET("/questions", handlers.Question.ListQuestions)
		api.POST("/questions", handlers.Question.CreateQuestion)
		api.GET("/questions/search", handlers.Question.SearchQuestions)
		api.POST("/questions/search", handlers.Question.SearchQuestionsByBody)
		api.GET("/questions/:id", handlers.Question.GetQuestion)
		api.DELETE("/questions/:id", handlers.Question.DeleteQuestion)

		api.POST("/quizzes", handlers.Quiz.NextQuestion)
	}

	return router
}
