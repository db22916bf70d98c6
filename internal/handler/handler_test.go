package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-api/internal/model"
	"github.com/stemsi/trivia-api/internal/repository"
	"github.com/stemsi/trivia-api/internal/response"
	"github.com/stemsi/trivia-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("connection refused")

// brokenQuestions fails every call after embedding a working repository for
// the methods a test does not care about.
type brokenQuestions struct {
	repository.QuestionRepository
}

func (brokenQuestions) List(context.Context, repository.QuestionFilter) ([]model.Question, error) {
	return nil, errStore
}

func (brokenQuestions) GetByID(context.Context, int) (*model.Question, error) {
	return nil, errStore
}

func (brokenQuestions) Create(context.Context, *model.Question) error {
	return errStore
}

func (brokenQuestions) Delete(context.Context, int) error {
	return errStore
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func newBrokenEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()
	store := repository.NewMemoryStore(repository.DefaultCategories, nil)
	questions := brokenQuestions{store.Questions()}

	questionService := service.NewQuestionService(questions, store.Categories(), log)
	categoryService := service.NewCategoryService(store.Categories())
	qh := NewQuestionHandler(questionService, categoryService, log)
	ch := NewCategoryHandler(categoryService, questionService, log)
	quiz := NewQuizHandler(service.NewQuizService(questions, log), nil, log)

	r := gin.New()
	r.GET("/questions", qh.ListQuestions)
	r.POST("/questions", qh.CreateQuestion)
	r.GET("/questions/search", qh.SearchQuestions)
	r.GET("/questions/:id", qh.GetQuestion)
	r.DELETE("/questions/:id", qh.DeleteQuestion)
	r.GET("/categories/:id/questions", ch.ListQuestions)
	r.POST("/quizzes", quiz.NextQuestion)
	return r
}

func serve(r http.Handler, method, path, body string) (int, response.ErrorBody) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out response.ErrorBody
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func TestStoreFailuresOnMutationsAreUnprocessable(t *testing.T) {
	r := newBrokenEngine()

	cases := []struct {
		method, path, body string
	}{
		{http.MethodDelete, "/questions/3", ""},
		{http.MethodPost, "/questions", `{"question":"q","answer":"a","category":1,"difficulty":2}`},
		{http.MethodPost, "/quizzes", `{"quiz_category":1,"previous_questions":[]}`},
	}
	for _, tc := range cases {
		code, body := serve(r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusUnprocessableEntity, code, tc.path)
		assert.False(t, body.Success)
		assert.Equal(t, "Unprocessable", body.Message)
	}
}

func TestStoreFailuresOnReadsAreInternal(t *testing.T) {
	r := newBrokenEngine()

	for _, path := range []string{"/questions", "/questions/search?q=x", "/questions/4", "/categories/1/questions"} {
		code, body := serve(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusInternalServerError, code, path)
		assert.Equal(t, "internal server error", body.Message)
		assert.NotContains(t, body.Message, errStore.Error())
	}
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tc := range []struct {
		pinger Pinger
		code   int
	}{
		{nil, http.StatusOK},
		{fakePinger{}, http.StatusOK},
		{fakePinger{err: errStore}, http.StatusServiceUnavailable},
	} {
		r := gin.New()
		r.GET("/health", NewHealthHandler(tc.pinger, zerolog.Nop()).Health)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, tc.code, w.Code)
	}
}
