// Package parser turns user input (times of day, drink amounts, reminder
// intervals) into typed values.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/healthdash/internal/model"
)

// meridiemPattern matches "10pm", "10:30 pm", "6.45am".
var meridiemPattern = regexp.MustCompile(`(?i)^(\d{1,2})(?:[:.](\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)$`)

// numericClockPattern matches digit-only forms such as "25:00" or "12.75".
var numericClockPattern = regexp.MustCompile(`^\d{1,2}[:.]\d{1,2}$`)

// letterPattern guards the dateparser fallback; it reads bare numbers as dates.
var letterPattern = regexp.MustCompile(`\pL`)

// ParseClock parses a time of day. Accepts 24-hour "HH:MM", a bare hour,
// 12-hour forms with am/pm, and anything go-dateparser resolves to a time
// ("noon", "midnight").
func ParseClock(input string) (model.ClockTime, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return model.ClockTime{}, NewClockError(input)
	}

	if c, err := model.ParseClockTime(input); err == nil {
		return c, nil
	}
	if numericClockPattern.MatchString(input) {
		return model.ClockTime{}, NewClockError(input)
	}

	if h, err := strconv.Atoi(input); err == nil {
		if h >= 0 && h <= 23 {
			return model.ClockTime{Hour: h}, nil
		}
		return model.ClockTime{}, NewClockError(input)
	}

	if m := meridiemPattern.FindStringSubmatch(input); m != nil {
		return parseMeridiem(input, m)
	}

	if !letterPattern.MatchString(input) {
		return model.ClockTime{}, NewClockError(input)
	}
	return parseNatural(input)
}

func parseMeridiem(input string, m []string) (model.ClockTime, error) {
	h, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if h < 1 || h > 12 || minute > 59 {
		return model.ClockTime{}, NewClockError(input)
	}
	pm := strings.HasPrefix(strings.ToLower(m[3]), "p")
	switch {
	case h == 12 && !pm:
		h = 0
	case h != 12 && pm:
		h += 12
	}
	return model.ClockTime{Hour: h, Minute: minute}, nil
}

// parseNatural resolves a phrase against a fixed reference day so only the
// time-of-day component of the result matters.
func parseNatural(input string) (model.ClockTime, error) {
	ref := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := &dateparser.Configuration{
		CurrentTime: ref,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return model.ClockTime{}, NewClockError(input)
	}
	return model.ClockTime{Hour: result.Time.Hour(), Minute: result.Time.Minute()}, nil
}

// NormalizeClock parses input and returns it in canonical "HH:MM" form.
func NormalizeClock(input string) (string, error) {
	c, err := ParseClock(input)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}
