package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error carries an HTTP status code alongside the message shown to the
// caller. Every store operation that rejects a request returns one of
// these; anything else bubbling up is treated as an internal error.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// BadRequest covers NotFound-style dangling ids too: missing events,
// messages and replies surface as 400, not 404.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Respond writes err as a JSON error response. Unknown error values are
// masked as 500 so store internals never leak to the client.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
