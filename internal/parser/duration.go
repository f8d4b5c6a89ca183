package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// intervalPattern matches interval expressions like "45", "90m", "1h30m", "1.5 hours".
var intervalPattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(h|hr|hrs|hour|hours|m|min|mins|minute|minutes)?\s*(?:(\d+(?:\.\d+)?)\s*(m|min|mins|minute|minutes))?$`)

// ParseInterval parses a reminder interval and returns whole minutes.
// Supports formats like:
//   - "45" (minutes when no unit is given)
//   - "90m" or "90 minutes"
//   - "1h30m" or "1 hour 30 minutes"
//   - "1.5h"
func ParseInterval(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, NewIntervalError(input)
	}

	// Try standard Go duration format first (e.g., "1h30m")
	if d, err := time.ParseDuration(input); err == nil {
		return toMinutes(input, d)
	}

	matches := intervalPattern.FindStringSubmatch(input)
	if matches == nil {
		return 0, NewIntervalError(input)
	}

	var total time.Duration

	if matches[1] != "" {
		value, _ := strconv.ParseFloat(matches[1], 64)
		total += unitToDuration(value, strings.ToLower(matches[2]))
	}

	if matches[3] != "" {
		value, _ := strconv.ParseFloat(matches[3], 64)
		total += unitToDuration(value, strings.ToLower(matches[4]))
	}

	return toMinutes(input, total)
}

func toMinutes(input string, d time.Duration) (int, error) {
	minutes := int(math.Round(d.Minutes()))
	if minutes <= 0 {
		return 0, NewIntervalError(input)
	}
	return minutes, nil
}

// unitToDuration converts a value and unit to a duration.
func unitToDuration(value float64, unit string) time.Duration {
	switch unit {
	case "h", "hr", "hrs", "hour", "hours":
		return time.Duration(value * float64(time.Hour))
	default:
		// Default to minutes
		return time.Duration(value * float64(time.Minute))
	}
}
