package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/trivia-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindBody(t *testing.T, body string, dst interface{}) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return Bind(c, dst)
}

func TestBindCreateQuestion(t *testing.T) {
	Setup()

	var req model.CreateQuestionRequest
	err := bindBody(t, `{"question":"Where is Taj Mahal located?","answer":"Agra","category":4,"difficulty":1}`, &req)
	require.NoError(t, err)
	assert.Equal(t, 4, req.Category)
}

func TestBindValidationErrors(t *testing.T) {
	Setup()

	var req model.CreateQuestionRequest
	err := bindBody(t, `{"question":"Where?","category":4,"difficulty":9}`, &req)
	require.Error(t, err)
	assert.False(t, IsMalformed(err))

	fields := TranslateErrors(err)
	assert.Contains(t, fields, "answer")
	assert.Contains(t, fields, "difficulty")
	assert.NotContains(t, fields, "question")
}

func TestIsMalformed(t *testing.T) {
	var req model.CreateQuestionRequest

	assert.True(t, IsMalformed(bindBody(t, `{"question": `, &req)))
	assert.True(t, IsMalformed(bindBody(t, `not json`, &req)))
	assert.True(t, IsMalformed(bindBody(t, ``, &req)))
	assert.False(t, IsMalformed(bindBody(t, `{"question":"q","answer":"a","category":"four","difficulty":1}`, &req)))

	var quiz model.QuizRequest
	assert.False(t, IsMalformed(bindBody(t, `{"quiz_category": "science"}`, &quiz)))
}
