package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-api/internal/metrics"
	"github.com/stemsi/trivia-api/internal/model"
	"github.com/stemsi/trivia-api/internal/response"
	"github.com/stemsi/trivia-api/internal/service"
	"github.com/stemsi/trivia-api/internal/validator"
)

// QuizHandler serves quiz rounds.
type QuizHandler struct {
	quizService *service.QuizService
	metrics     *metrics.Metrics
	log         zerolog.Logger
}

// NewQuizHandler creates a new QuizHandler. m may be nil.
func NewQuizHandler(quizService *service.QuizService, m *metrics.Metrics, log zerolog.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		metrics:     m,
		log:         log.With().Str("component", "quiz_handler").Logger(),
	}
}

// NextQuestion godoc
// POST /quizzes
// Body: {"quiz_category": 0 | N | {"id": N}, "previous_questions": [ids]}
// Responds with a random unseen question, or "question": null once the
// pool is exhausted.
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req model.QuizRequest
	if err := validator.Bind(c, &req); err != nil {
		if validator.IsMalformed(err) {
			response.Fail(c, http.StatusBadRequest)
			return
		}
		h.log.Warn().Err(err).Msg("Invalid quiz payload")
		response.Fail(c, http.StatusUnprocessableEntity)
		return
	}

	q, err := h.quizService.NextQuestion(c.Request.Context(), int(req.QuizCategory), req.PreviousQuestions)
	if err != nil {
		h.log.Error().Err(err).Int("category", int(req.QuizCategory)).Msg("Failed to draw quiz question")
		response.Fail(c, http.StatusUnprocessableEntity)
		return
	}
	h.metrics.ObserveQuizDraw(q != nil)

	response.Success(c, http.StatusOK, gin.H{"question": q})
}
