package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-api/internal/model"
	"github.com/stemsi/trivia-api/internal/response"
	"github.com/stemsi/trivia-api/internal/service"
	"github.com/stemsi/trivia-api/internal/validator"
)

// QuestionHandler handles question listing, lookup, search and mutation.
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
	log             zerolog.Logger
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService, categoryService *service.CategoryService, log zerolog.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
		log:             log.With().Str("component", "question_handler").Logger(),
	}
}

// ListQuestions godoc
// GET /questions?page=N
// Lists one page of questions ordered by id. A page past the end is a 404.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := service.ParsePage(c.Query("page"))

	result, err := h.questionService.ListPage(c.Request.Context(), page)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			response.Fail(c, http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("page", page).Msg("Failed to list questions")
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	categories, err := h.categoryService.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list categories")
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"categories":       categories,
		"current_category": nil,
	})
}

// GetQuestion godoc
// GET /questions/:id
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound)
		return
	}

	q, err := h.questionService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			response.Fail(c, http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("question_id", id).Msg("Failed to get question")
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"question": q})
}

// DeleteQuestion godoc
// DELETE /questions/:id?page=N
// Deletes a question and returns the requested page of what remains.
// Every failure, including an unknown id, is reported as 422.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusUnprocessableEntity)
		return
	}

	result, err := h.questionService.Delete(c.Request.Context(), id, service.ParsePage(c.Query("page")))
	if err != nil {
		h.log.Warn().Err(err).Int("question_id", id).Msg("Failed to delete question")
		response.Fail(c, http.StatusUnprocessableEntity)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"deleted":         id,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// CreateQuestion godoc
// POST /questions
// Creates a question. Unparseable JSON is a 400; any other failure is a 422.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req model.CreateQuestionRequest
	if err := validator.Bind(c, &req); err != nil {
		if validator.IsMalformed(err) {
			response.Fail(c, http.StatusBadRequest)
			return
		}
		h.log.Warn().Interface("fields", validator.TranslateErrors(err)).Msg("Invalid question payload")
		response.Fail(c, http.StatusUnprocessableEntity)
		return
	}

	q := &model.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}

	result, err := h.questionService.Create(c.Request.Context(), q, service.ParsePage(c.Query("page")))
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to create question")
		response.Fail(c, http.StatusUnprocessableEntity)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"created":         q.ID,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// SearchQuestions godoc
// GET /questions/search?q=term
// Returns every question containing term. No match is an empty 200.
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	h.search(c, c.Query("q"))
}

// SearchQuestionsByBody godoc
// POST /questions/search
// Same as SearchQuestions with the term in {"searchTerm": "..."}.
func (h *QuestionHandler) SearchQuestionsByBody(c *gin.Context) {
	var req model.SearchQuestionsRequest
	if err := validator.Bind(c, &req); err != nil {
		if validator.IsMalformed(err) {
			response.Fail(c, http.StatusBadRequest)
			return
		}
		response.Fail(c, http.StatusUnprocessableEntity)
		return
	}
	h.search(c, req.SearchTerm)
}

func (h *QuestionHandler) search(c *gin.Context, term string) {
	questions, err := h.questionService.Search(c.Request.Context(), term)
	if err != nil {
		h.log.Error().Err(err).Str("term", term).Msg("Failed to search questions")
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"questions":        questions,
		"total_questions":  len(questions),
		"current_category": nil,
	})
}
