package errors

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for the enrollment domain.
var (
	ErrStudentNotFound       = New("STUDENT_NOT_FOUND", http.StatusNotFound, "student not found")
	ErrCareerNotFound        = New("CAREER_NOT_FOUND", http.StatusNotFound, "career not found")
	ErrSubjectNotFound       = New("SUBJECT_NOT_FOUND", http.StatusNotFound, "subject not found")
	ErrCareerSubjectNotFound = New("CAREER_SUBJECT_NOT_FOUND", http.StatusNotFound, "subject is not offered in this career")
	ErrRecordNotFound        = New("RECORD_NOT_FOUND", http.StatusNotFound, "enrollment record not found")
	ErrNotEnrolledInCareer   = New("NOT_ENROLLED_IN_CAREER", http.StatusPreconditionFailed, "student is not enrolled in this career")
	ErrAlreadyEnrolled       = New("ALREADY_ENROLLED", http.StatusConflict, "student is already enrolled")
	ErrValidation            = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrUnavailable           = New("STORAGE_UNAVAILABLE", http.StatusServiceUnavailable, "storage temporarily unavailable")
	ErrInternal              = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrCacheMiss             = New("CACHE_MISS", http.StatusNotFound, "cache miss")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if IsConnection(err) {
		return Wrap(err, ErrUnavailable.Code, ErrUnavailable.Status, ErrUnavailable.Message)
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// IsConnection reports whether err indicates the storage backend is
// unreachable rather than a bad query.
func IsConnection(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
