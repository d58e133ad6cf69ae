package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"webintake-backend-go/internal/core"
)

// mapServiceError maps errors from the core services to HTTP status codes and
// an ErrorResponse body. Every member of the error taxonomy is distinguishable
// by status code, never by parsing message text.
func mapServiceError(c *gin.Context, err error) {
	var validationErr *core.ValidationError
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.As(err, &validationErr):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: "Validation failed", Fields: validationErr.Fields}
	case errors.Is(err, core.ErrUnauthenticated):
		statusCode = http.StatusUnauthorized
		errResponse = ErrorResponse{Error: core.ErrUnauthenticated.Error()}
	case errors.Is(err, core.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		errResponse = ErrorResponse{Error: core.ErrInvalidCredentials.Error()}
	case errors.Is(err, core.ErrUnauthorized):
		statusCode = http.StatusForbidden
		errResponse = ErrorResponse{Error: core.ErrUnauthorized.Error()}
	case errors.Is(err, core.ErrProjectNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrProjectNotFound.Error()}
	case errors.Is(err, core.ErrUserNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrUserNotFound.Error()}
	case errors.Is(err, core.ErrUsernameTaken):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: core.ErrUsernameTaken.Error()}
	case errors.Is(err, core.ErrEmailAccountLimit):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: core.ErrEmailAccountLimit.Error()}
	case errors.Is(err, core.ErrInvalidPaymentType):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: core.ErrInvalidPaymentType.Error()}
	default:
		// Persistence and other unexpected failures are fatal to the request;
		// the detail stays server-side.
		log.Printf("Internal Server Error: %v", err)
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred."}
	}
	c.JSON(statusCode, errResponse)
}
