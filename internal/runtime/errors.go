package runtime

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	apperrors "github.com/manav03panchal/healthdash/internal/errors"
)

// DiskFullError represents a disk full condition with additional context.
type DiskFullError struct {
	Op      string // The operation that failed (e.g., "open", "write")
	Path    string // The path involved, if known
	wrapped error
}

func (e *DiskFullError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("disk full during %s on %s: %v", e.Op, e.Path, e.wrapped)
	}
	return fmt.Sprintf("disk full during %s: %v", e.Op, e.wrapped)
}

// Unwrap exposes both the sentinel and the underlying error.
func (e *DiskFullError) Unwrap() []error {
	return []error{apperrors.ErrDiskFull, e.wrapped}
}

// NewDiskFullError creates a new DiskFullError.
func NewDiskFullError(op, path string, err error) *DiskFullError {
	return &DiskFullError{
		Op:      op,
		Path:    path,
		wrapped: err,
	}
}

var diskFullPatterns = []string{
	"no space left on device",
	"disk full",
	"enospc",
	"not enough space",
	"insufficient disk space",
	"out of disk space",
}

// IsDiskFullError checks if an error indicates a disk full condition.
// It checks for ENOSPC and common disk full message patterns.
func IsDiskFullError(err error) bool {
	if err == nil {
		return false
	}

	var diskFullErr *DiskFullError
	if errors.As(err, &diskFullErr) {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno == syscall.ENOSPC {
		return true
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range diskFullPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// WrapDiskFullError wraps an error as a DiskFullError if it indicates disk full.
// Other errors are returned unchanged.
func WrapDiskFullError(err error, op, path string) error {
	if err == nil {
		return nil
	}
	if IsDiskFullError(err) {
		return NewDiskFullError(op, path, err)
	}
	return err
}
