package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "help request not found")

	assert.Equal(t, ErrCodeNotFound, err.Code)
	assert.Equal(t, "help request not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Nil(t, err.Cause)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrCodeValidationFailed, "field %s is invalid", "urgency")

	assert.Equal(t, ErrCodeValidationFailed, err.Code)
	assert.Equal(t, "field urgency is invalid", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeDatabaseError, "query failed", cause)

	assert.Equal(t, ErrCodeDatabaseError, err.Code)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.ErrorIs(t, err, cause)
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without cause",
			err:      New(ErrCodeNotFound, "not here"),
			expected: "NOT_FOUND: not here",
		},
		{
			name:     "with cause",
			err:      Wrap(ErrCodeDatabaseError, "query failed", errors.New("boom")),
			expected: "DATABASE_ERROR: query failed (caused by: boom)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_WithDetails(t *testing.T) {
	err := New(ErrCodeValidationFailed, "validation failed").
		WithDetails("people_affected must be at least 1")

	assert.Equal(t, "people_affected must be at least 1", err.Details)
}

func TestAsAppError(t *testing.T) {
	appErr := New(ErrCodeBadRequest, "duplicate submission")
	wrapped := fmt.Errorf("outer: %w", appErr)

	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeBadRequest, got.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestGetHTTPStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", New(ErrCodeNotFound, "x"), http.StatusNotFound},
		{"validation", New(ErrCodeValidationFailed, "x"), http.StatusBadRequest},
		{"rate limit", New(ErrCodeRateLimitExceeded, "x"), http.StatusTooManyRequests},
		{"service unavailable", New(ErrCodeServiceUnavailable, "x"), http.StatusServiceUnavailable},
		{"database", New(ErrCodeDatabaseError, "x"), http.StatusInternalServerError},
		{"plain error falls back to 500", errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatusCode(tt.err))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, GetErrorCode(New(ErrCodeNotFound, "x")))
	assert.Equal(t, ErrCodeInternalError, GetErrorCode(errors.New("plain")))
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := NewDatabaseError(cause)

	assert.Equal(t, ErrCodeDatabaseError, err.Code)
	assert.ErrorIs(t, err, cause)
}
