package domain

import "errors"

// Help request errors
var (
	// ErrRequestNotFound signals a lookup by public id matched nothing.
	// This is an expected outcome, not a failure; callers map it to a
	// plain not-found response and do not log it as an error.
	ErrRequestNotFound = errors.New("help request not found")

	// Validation errors
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidRequestType = errors.New("invalid request type")
	ErrInvalidUrgency     = errors.New("invalid urgency")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidCoordinates = errors.New("coordinates out of range")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorageQuery       = errors.New("storage query failed")
)

// FieldError carries a per-field validation failure for echoing back to the
// submitter.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// NewFieldError creates a field-level validation error
func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
