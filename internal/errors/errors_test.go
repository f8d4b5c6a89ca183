package errors

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// UserError Tests
// =============================================================================

func TestNewUserError(t *testing.T) {
	err := NewUserError("invalid input", "try again")
	assert.NotNil(t, err)
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "try again", err.Suggestion)
}

func TestUserErrorError(t *testing.T) {
	t.Run("without_field", func(t *testing.T) {
		err := NewUserError("invalid input", "")
		assert.Equal(t, "invalid input", err.Error())
	})

	t.Run("with_field", func(t *testing.T) {
		err := NewUserErrorWithField("sleep_time", "25:00", "invalid clock time", "")
		assert.Equal(t, "invalid clock time: '25:00'", err.Error())
	})
}

func TestUserErrorWithCause(t *testing.T) {
	err := NewUserError("bad amount", "").WithCause(ErrInvalidAmount)
	assert.True(t, errors.Is(err, ErrInvalidAmount))
	assert.True(t, IsUserError(fmt.Errorf("drink: %w", err)))
}

func TestIsUserError(t *testing.T) {
	assert.True(t, IsUserError(NewUserError("test", "")))
	assert.False(t, IsUserError(errors.New("plain error")))
	assert.False(t, IsUserError(nil))
}

// =============================================================================
// SystemError Tests
// =============================================================================

func TestSystemError(t *testing.T) {
	cause := errors.New("disk on fire")

	t.Run("without_op", func(t *testing.T) {
		err := NewSystemError("cache write failed", cause)
		assert.Equal(t, "cache write failed", err.Error())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("with_op", func(t *testing.T) {
		err := NewSystemErrorWithOp("save_preferences", "cache write failed", cause)
		assert.Equal(t, "cache write failed during save_preferences", err.Error())
		assert.True(t, IsSystemError(err))
	})
}

// =============================================================================
// Classification Tests
// =============================================================================

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"nil", nil, CategoryUnknown},
		{"user", NewUserError("x", ""), CategoryUser},
		{"system", NewSystemError("x", nil), CategorySystem},
		{"store_unavailable", Wrap(ErrStoreUnavailable, "get preferences"), CategoryRemote},
		{"not_found", ErrNotFound, CategoryRemote},
		{"deadline", context.DeadlineExceeded, CategoryRemote},
		{"conn_refused", syscall.ECONNREFUSED, CategoryRemote},
		{"no_space", syscall.ENOSPC, CategorySystem},
		{"corrupted", ErrDatabaseCorrupted, CategorySystem},
		{"plain", errors.New("plain"), CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "user", CategoryUser.String())
	assert.Equal(t, "system", CategorySystem.String())
	assert.Equal(t, "remote", CategoryRemote.String())
	assert.Equal(t, "unknown", CategoryUnknown.String())
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote(ErrStoreNotConfigured))
	assert.False(t, IsRemote(ErrInvalidAmount))
}

func TestFormatByCategory(t *testing.T) {
	assert.Equal(t, "", FormatByCategory(nil))

	user := NewUserError("bad input", "do better")
	assert.Equal(t, "bad input\n\nTry: do better", FormatByCategory(user))

	sys := NewSystemError("cache broken", ErrDatabaseCorrupted)
	assert.Contains(t, FormatByCategory(sys), "System error: cache broken")

	assert.Equal(t, "remote store unavailable (using local data)", FormatByCategory(ErrStoreUnavailable))
	assert.Equal(t, "plain", FormatByCategory(errors.New("plain")))
}

// =============================================================================
// Suggestion Tests
// =============================================================================

func TestGetSuggestion(t *testing.T) {
	assert.Equal(t, "", GetSuggestion(nil))
	assert.Equal(t, Suggestions[ErrInvalidClockTime], GetSuggestion(Wrap(ErrInvalidClockTime, "sleep_time")))
	assert.Equal(t, "custom", GetSuggestion(NewUserError("x", "custom").WithCause(ErrInvalidAmount)))
	assert.Equal(t, "", GetSuggestion(errors.New("plain")))
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "plain", FormatError(errors.New("plain")))
	msg := FormatError(ErrUnknownStretch)
	assert.Contains(t, msg, "unknown stretch type")
	assert.Contains(t, msg, "stretch list")
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ctx"))
	assert.Nil(t, Wrapf(nil, "ctx %d", 1))
	err := Wrapf(ErrNotFound, "preferences %s", "abc")
	assert.Equal(t, "preferences abc: record not found", err.Error())
	assert.True(t, Is(err, ErrNotFound))
}
