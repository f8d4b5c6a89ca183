// Package errors provides consistent error types for healthdash.
// It separates UserError (fixable by the user) from SystemError (local
// system issues) and classifies remote-service failures, which the
// fail-soft layers log and swallow rather than surface.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrInvalidClockTime   = errors.New("invalid clock time")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrOutOfRange         = errors.New("value out of range")
	ErrUnknownSetting     = errors.New("unknown setting")
	ErrUnknownStretch     = errors.New("unknown stretch type")
	ErrStoreUnavailable   = errors.New("remote store unavailable")
	ErrStoreNotConfigured = errors.New("remote store not configured")
	ErrNotFound           = errors.New("record not found")
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrDatabaseCorrupted  = errors.New("local cache corrupted")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrDiskFull           = errors.New("disk full: unable to write to local cache")
)

// UserError represents an error that the user can fix.
// Examples: invalid input, out-of-range settings, unknown stretch names.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
	Cause      error  // Sentinel or underlying error (optional)
}

func (e *UserError) Error() string {
	msg := e.Message
	if e.Field != "" && e.Value != "" {
		msg = fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return msg
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// WithCause attaches a sentinel or underlying error.
func (e *UserError) WithCause(cause error) *UserError {
	e.Cause = cause
	return e
}

// SystemError represents a system-level error that the user cannot directly fix.
// Examples: unreadable cache directory, corrupted local database.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
	}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}
