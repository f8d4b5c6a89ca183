package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		valid    bool
	}{
		// Standard Go duration formats
		{"go_duration_hours", "2h", 120, true},
		{"go_duration_minutes", "30m", 30, true},
		{"go_duration_combined", "1h30m", 90, true},

		// Human-readable formats
		{"hours_hour", "1 hour", 60, true},
		{"hours_hrs", "2hrs", 120, true},
		{"minutes_min", "45min", 45, true},
		{"minutes_minutes", "45 minutes", 45, true},
		{"combined_spaced", "1h 15m", 75, true},

		// Decimal values
		{"decimal_hours", "1.5h", 90, true},

		// Just numbers (default to minutes)
		{"number_only", "45", 45, true},
		{"decimal_number", "22.6", 23, true},

		// Edge cases - invalid
		{"empty_string", "", 0, false},
		{"whitespace_only", "   ", 0, false},
		{"invalid_format", "abc", 0, false},
		{"zero", "0", 0, false},
		{"seconds_round_to_zero", "10s", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInterval(tt.input)
			if !tt.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
