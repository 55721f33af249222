package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithCause(t *testing.T) {
	cause := stderrors.New("connection reset")

	err := ErrLogWrite.WithCause(cause)

	assert.ErrorIs(t, err, ErrLogWrite)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "LOG_WRITE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "connection reset", appErr.Details())
}

func TestBaseError_WithCauseNil(t *testing.T) {
	assert.Same(t, ErrNoTokens, ErrNoTokens.WithCause(nil))
}

func TestBaseError_WithDetails(t *testing.T) {
	err := ErrValidationFailed.WithDetails("token is required")

	assert.Equal(t, "token is required", err.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), err.ErrorCode())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := stderrors.New("deadlock detected")

	err := NewDatabaseExecuteError(cause, "failed to insert")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to insert", err.Details())
}

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrNoTokens.WithDetails("no recipient has a registered device")

	assert.ErrorIs(t, detailed, ErrNoTokens)
	assert.NotErrorIs(t, detailed, ErrFetch)
	assert.ErrorIs(t, ErrFetch.WithCause(stderrors.New("timeout")), ErrFetch)
}
