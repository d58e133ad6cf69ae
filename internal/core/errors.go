package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by the core services. Handlers map these to HTTP
// status codes with errors.Is; callers never have to parse message text.
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrUnauthorized       = errors.New("operation requires admin privileges")
	ErrProjectNotFound    = errors.New("project not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailAccountLimit  = errors.New("maximum accounts reached for this email address")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPaymentType = errors.New("payment type must be \"advance\" or \"full\"")
	ErrIdentifierConflict = errors.New("could not derive a unique project identifier")
)

// ValidationError reports missing or malformed input fields by name.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing fields: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError returns a ValidationError for the given field names.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
