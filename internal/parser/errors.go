package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/healthdash/internal/errors"
)

// ParseError represents an input parsing error with helpful suggestions.
type ParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
	Cause      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// FormatWithExamples returns the error message with example suggestions.
func (e *ParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// ClockExamples provides example clock-time formats.
var ClockExamples = []string{
	"22:00",
	"6:30",
	"10pm",
	"6:45 am",
	"noon",
}

// AmountExamples provides example hydration amount formats.
var AmountExamples = []string{
	"250",
	"500ml",
	"0.75l",
	"12oz",
}

// IntervalExamples provides example reminder interval formats.
var IntervalExamples = []string{
	"45",
	"90m",
	"1h",
	"1.5h",
}

// NewClockError creates a clock-time parse error with standard examples.
func NewClockError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "time",
		Message:    "could not parse time of day",
		Examples:   ClockExamples,
		Suggestion: "Use 24-hour HH:MM or a time like '10pm'.",
		Cause:      errors.ErrInvalidClockTime,
	}
}

// NewAmountError creates an amount parse error with standard examples.
func NewAmountError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "amount",
		Message:    "could not parse amount",
		Examples:   AmountExamples,
		Suggestion: "Amounts are millilitres unless a unit (ml, cl, l, oz) is given.",
		Cause:      errors.ErrInvalidAmount,
	}
}

// NewIntervalError creates an interval parse error with standard examples.
func NewIntervalError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "interval",
		Message:    "could not parse interval",
		Examples:   IntervalExamples,
		Suggestion: "Intervals are minutes unless a unit (h, m) is given.",
	}
}

// ToUserError converts a ParseError to a UserError for consistent handling.
func (e *ParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if len(e.Examples) > 0 && suggestion == "" {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}

	return errors.NewUserErrorWithField(e.Field, e.Input, e.Message, suggestion).WithCause(e.Cause)
}
