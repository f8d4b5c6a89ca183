package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/model"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.ClockTime
	}{
		{"24h", "22:00", model.ClockTime{Hour: 22}},
		{"24h_single_digit_hour", "6:30", model.ClockTime{Hour: 6, Minute: 30}},
		{"bare_hour", "7", model.ClockTime{Hour: 7}},
		{"pm", "10pm", model.ClockTime{Hour: 22}},
		{"pm_minutes_spaced", "10:30 pm", model.ClockTime{Hour: 22, Minute: 30}},
		{"am_upper", "6:45AM", model.ClockTime{Hour: 6, Minute: 45}},
		{"dotted_minutes", "6.15am", model.ClockTime{Hour: 6, Minute: 15}},
		{"noon_12pm", "12pm", model.ClockTime{Hour: 12}},
		{"midnight_12am", "12am", model.ClockTime{Hour: 0}},
		{"padded", "  23:59 ", model.ClockTime{Hour: 23, Minute: 59}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, input := range []string{"", "24", "13pm", "0am", "10:75pm", "not a time at all",
		"25:00", "24:00", "12:75", "12.75", "99:99", "2026-01-01", "10/11"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseClock(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidClockTime))
		})
	}
}

func TestNormalizeClock(t *testing.T) {
	got, err := NormalizeClock("9:05pm")
	require.NoError(t, err)
	assert.Equal(t, "21:05", got)

	_, err = NormalizeClock("")
	assert.Error(t, err)
}

func TestParseErrorFormatting(t *testing.T) {
	err := NewClockError("25:99")
	assert.Equal(t, "invalid time '25:99': could not parse time of day", err.Error())

	formatted := err.FormatWithExamples()
	assert.Contains(t, formatted, "Valid examples:")
	assert.Contains(t, formatted, "  - 10pm")

	ue := err.ToUserError()
	assert.Equal(t, "time", ue.Field)
	assert.Equal(t, "25:99", ue.Value)
	assert.True(t, errors.Is(ue, errors.ErrInvalidClockTime))

	noSuggestion := &ParseError{Field: "interval", Input: "x", Examples: IntervalExamples}
	assert.Equal(t, "Try: 45, 90m, 1h", noSuggestion.ToUserError().Suggestion)
}
