package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/pkg/apperr"
)

// APIResponse is the uniform success envelope.
type APIResponse[T any] struct {
	StatusCode int    `json:"statusCode"`
	Data       T      `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// APIError is the uniform error envelope.
type APIError struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
	Success    bool     `json:"success"`
}

// Success writes the success envelope with the given status.
func Success[T any](c *gin.Context, status int, data T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, APIResponse[T]{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// Fail writes the error envelope with an explicit status and message.
func Fail(c *gin.Context, status int, message string, details ...string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	if details == nil {
		details = []string{}
	}
	c.JSON(status, APIError{
		StatusCode: status,
		Message:    message,
		Errors:     details,
		Success:    false,
	})
}

// AbortFail is Fail plus request abortion, for middleware.
func AbortFail(c *gin.Context, status int, message string, details ...string) {
	Fail(c, status, message, details...)
	c.Abort()
}

// FromError is the single translation point from service errors to HTTP.
// Unknown errors become a generic 500 so no internal detail reaches clients.
func FromError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		Fail(c, ae.Kind.Status(), ae.Message, ae.Errors...)
		return
	}
	Fail(c, http.StatusInternalServerError, "internal server error")
}
