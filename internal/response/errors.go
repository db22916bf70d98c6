package response

import "net/http"

// GetMessage returns the fixed message reported for an error status.
func GetMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusNotFound:
		return "Resource Not Found"
	case http.StatusMethodNotAllowed:
		return "method not allowed"
	case http.StatusUnprocessableEntity:
		return "Unprocessable"
	case http.StatusTooManyRequests:
		return "too many requests"
	default:
		return "internal server error"
	}
}
