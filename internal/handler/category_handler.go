package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-api/internal/response"
	"github.com/stemsi/trivia-api/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
	log             zerolog.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, questionService *service.QuestionService, log zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
		log:             log.With().Str("component", "category_handler").Logger(),
	}
}

// GetAll godoc
// GET /categories
func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.categoryService.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list categories")
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

// ListQuestions godoc
// GET /categories/:id/questions
// Unknown categories yield an empty list, not an error.
func (h *CategoryHandler) ListQuestions(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest)
		return
	}

	questions, err := h.questionService.ListByCategory(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int("category", id).Msg("Failed to list category questions")
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"questions":        questions,
		"total_questions":  len(questions),
		"current_category": id,
	})
}
