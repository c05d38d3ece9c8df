package models

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrFileNotFound        = errors.New("file not found")
	ErrConcurrencyConflict = errors.New("application was modified by another request")
	ErrStatusUpdateBusy    = errors.New("another status update is in progress")
)

// ValidationError is reported back to the caller as-is.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UploadError means the record is stored but one of its files is not.
type UploadError struct {
	Message       string
	ApplicationID string
	Cause         error
}

func (e UploadError) Error() string {
	return e.Message
}

func (e UploadError) Unwrap() error {
	return e.Cause
}

func IsValidationError(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsUploadError(err error) (UploadError, bool) {
	var target UploadError
	ok := errors.As(err, &target)
	return target, ok
}
