package errors

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorPassthrough(t *testing.T) {
	assert.Same(t, ErrStudentNotFound, FromError(ErrStudentNotFound))

	wrapped := fmt.Errorf("outer: %w", ErrNotEnrolledInCareer)
	assert.Equal(t, http.StatusPreconditionFailed, FromError(wrapped).Status)
}

func TestFromErrorConnection(t *testing.T) {
	appErr := FromError(driver.ErrBadConn)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Status)
	assert.Equal(t, ErrUnavailable.Code, appErr.Code)
}

func TestFromErrorFallback(t *testing.T) {
	appErr := FromError(errors.New("boom"))
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestClone(t *testing.T) {
	clone := Clone(ErrValidation, "id must be a positive integer")
	assert.Equal(t, "id must be a positive integer", clone.Message)
	assert.Equal(t, http.StatusBadRequest, clone.Status)
	assert.Equal(t, "validation failed", ErrValidation.Message)
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Wrap(cause, "X", http.StatusInternalServerError, "wrapped")
	assert.True(t, errors.Is(err, cause))
}
