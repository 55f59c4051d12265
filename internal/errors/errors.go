package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error kinds
const (
	// Request missing required fields or malformed input
	KindValidation = "VALIDATION_ERROR"

	// Unique-constraint violation (duplicate email)
	KindConflict = "CONFLICT_ERROR"

	// Credential mismatch or unknown account
	KindAuthentication = "AUTHENTICATION_ERROR"

	// Unexpected store failure during read or write
	KindPersistence = "PERSISTENCE_ERROR"
)

// APIError carries an error kind through the service layer to the request
// boundary, where it is serialized as {"error": message}.
type APIError struct {
	Kind    string
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// New creates a new APIError
func New(kind, message string) *APIError {
	return &APIError{
		Kind:    kind,
		Message: message,
	}
}

// Validation creates a ValidationError
func Validation(message string) *APIError {
	return New(KindValidation, message)
}

// Conflict creates a ConflictError
func Conflict(message string) *APIError {
	return New(KindConflict, message)
}

// Authentication creates an AuthenticationError
func Authentication(message string) *APIError {
	return New(KindAuthentication, message)
}

// Persistence creates a PersistenceError wrapping the underlying detail
func Persistence(message string) *APIError {
	return New(KindPersistence, message)
}

// Respond writes err as a JSON {"error": message} body with the status code
// matching its kind. Unknown error values become a 500 without leaking
// internals.
func Respond(c *gin.Context, err error) {
	apiErr, ok := err.(*APIError)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch apiErr.Kind {
	case KindValidation, KindConflict:
		status = http.StatusBadRequest
	case KindAuthentication:
		status = http.StatusUnauthorized
	case KindPersistence:
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{"error": apiErr.Message})
}

// BadRequest sends a 400 validation response directly
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
