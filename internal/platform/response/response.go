package response

import (
	"net/http"
	"time"

	"github.com/fieldhouse/service-booking/internal/domain"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Errors    []string  `json:"errors"`
}

func newErrorResponse(message string, errs []string) ErrorResponse {
	return ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
		Errors:    errs,
	}
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest writes a 400 validation response.
func BadRequest(c *gin.Context, errs ...string) {
	c.JSON(http.StatusBadRequest, newErrorResponse("Validation failed", errs))
}

// Error maps a domain error to its HTTP status by kind. Untyped errors
// surface as 500 with a generic message.
func Error(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, newErrorResponse("Resource not found", []string{err.Error()}))
	case domain.KindValidation, domain.KindQuotaExceeded, domain.KindConflict, domain.KindAlreadyExists:
		c.JSON(http.StatusBadRequest, newErrorResponse("Business rule violation", []string{err.Error()}))
	default:
		c.JSON(http.StatusInternalServerError, newErrorResponse("Internal server error", []string{"an unexpected error occurred"}))
	}
}
