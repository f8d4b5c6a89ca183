package errors

import (
	"context"
	"errors"
	"net"
	"net/url"
	"syscall"
)

// Category represents the type of error for display and handling purposes.
type Category int

const (
	// CategoryUnknown is the default for unclassified errors.
	CategoryUnknown Category = iota
	// CategoryUser indicates an error the user can fix (bad input, missing args).
	CategoryUser
	// CategorySystem indicates a local system-level error (disk, permissions).
	CategorySystem
	// CategoryRemote indicates a weather or store call failed. These are
	// attempted exactly once and handled by falling back to local state.
	CategoryRemote
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategorySystem:
		return "system"
	case CategoryRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Classify determines the category of an error.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	if IsUserError(err) {
		return CategoryUser
	}
	if IsSystemError(err) {
		return CategorySystem
	}
	if isRemote(err) {
		return CategoryRemote
	}
	if isSystemLevel(err) {
		return CategorySystem
	}
	return CategoryUnknown
}

// isSystemLevel checks if an error is a local system-level error.
func isSystemLevel(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOSPC, syscall.EACCES, syscall.EPERM, syscall.EIO, syscall.EROFS:
			return true
		}
	}
	return errors.Is(err, ErrDatabaseCorrupted) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrDiskFull)
}

// isRemote checks if an error came from a network or remote-store call.
func isRemote(err error) bool {
	if errors.Is(err, ErrStoreUnavailable) ||
		errors.Is(err, ErrStoreNotConfigured) ||
		errors.Is(err, ErrNetworkUnavailable) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ETIMEDOUT:
			return true
		}
	}
	return false
}

// IsRemote returns true if the error is a remote-call failure.
func IsRemote(err error) bool {
	return Classify(err) == CategoryRemote
}

// FormatByCategory returns a user-appropriate error message based on category.
func FormatByCategory(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	switch Classify(err) {
	case CategoryUser:
		if suggestion := GetSuggestion(err); suggestion != "" {
			return msg + "\n\nTry: " + suggestion
		}
		return msg
	case CategorySystem:
		if suggestion := GetSuggestion(err); suggestion != "" {
			return "System error: " + msg + "\n\n" + suggestion
		}
		return "System error: " + msg
	case CategoryRemote:
		return msg + " (using local data)"
	default:
		return msg
	}
}
