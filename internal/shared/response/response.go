package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the error payload shape. Success responses serialize the
// entity (or list) directly; every error response carries a "detail"
// member holding either a human-readable message or, for validation
// failures, a field→message map.
type Body struct {
	Detail interface{} `json:"detail"`
}

// Error writes an error response with a plain message detail.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Body{Detail: message})
}

// ErrorWithDetails writes an error response with a structured detail,
// e.g. a per-field validation report.
func ErrorWithDetails(c *gin.Context, statusCode int, details interface{}) {
	c.JSON(statusCode, Body{Detail: details})
}

// Common error responses

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// UnprocessableEntity reports a validation failure. The details value
// should identify each offending field.
func UnprocessableEntity(c *gin.Context, details interface{}) {
	ErrorWithDetails(c, http.StatusUnprocessableEntity, details)
}

// InternalServerError deliberately carries a fixed message so store
// internals are never leaked to the client.
func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}
