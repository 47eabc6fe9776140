package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform error body: a msg plus, for field validation
// failures, the individual messages.
type Response struct {
	Msg    string   `json:"msg"`
	Errors []string `json:"errors,omitempty"`
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, resp Response) {
	c.JSON(statusCode, resp)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, msg string) {
	if msg == "" {
		msg = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, Response{Msg: msg})
}

// ValidationFailed sends a 400 response carrying field-level messages
func ValidationFailed(c *gin.Context, msgs []string) {
	RespondWithError(c, http.StatusBadRequest, Response{Msg: "Validation failed", Errors: msgs})
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, msg string) {
	if msg == "" {
		msg = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, Response{Msg: msg})
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, msg string) {
	if msg == "" {
		msg = "Access denied"
	}
	RespondWithError(c, http.StatusForbidden, Response{Msg: msg})
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, msg string) {
	if msg == "" {
		msg = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, Response{Msg: msg})
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, msg string) {
	if msg == "" {
		msg = "Resource conflict"
	}
	RespondWithError(c, http.StatusConflict, Response{Msg: msg})
}

// InternalError sends a 500 response. Internals are never echoed to the
// caller; log the underlying error at the call site instead.
func InternalError(c *gin.Context, msg string) {
	if msg == "" {
		msg = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, Response{Msg: msg})
}
