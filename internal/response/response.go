package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Success sends {"success": true} merged with the operation's fields.
func Success(c *gin.Context, statusCode int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Fail sends the error body for statusCode.
func Fail(c *gin.Context, statusCode int) {
	c.JSON(statusCode, newErrorBody(statusCode))
}

// AbortFail aborts the middleware chain and sends the error body for statusCode.
func AbortFail(c *gin.Context, statusCode int) {
	c.AbortWithStatusJSON(statusCode, newErrorBody(statusCode))
}

// NotFound is installed as the engine's NoRoute handler.
func NotFound(c *gin.Context) {
	Fail(c, http.StatusNotFound)
}

// MethodNotAllowed is installed as the engine's NoMethod handler.
func MethodNotAllowed(c *gin.Context) {
	Fail(c, http.StatusMethodNotAllowed)
}

func newErrorBody(statusCode int) ErrorBody {
	return ErrorBody{
		Success: false,
		Error:   statusCode,
		Message: GetMessage(statusCode),
	}
}
