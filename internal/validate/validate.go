// Package validate provides input validation helpers for healthdash settings
// and log entries.
package validate

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/model"
)

const (
	// MaxURLLength is the maximum length for a remote store URL.
	MaxURLLength = 2048
	// MaxAmountML is the largest single hydration entry accepted.
	MaxAmountML = 5000
	// MaxStretchMinutes is the longest stretch session accepted.
	MaxStretchMinutes = 120
)

// Range is an inclusive numeric range for a preference field.
type Range struct {
	Min, Max float64
	Unit     string
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s%s", trim(r.Min), trim(r.Max), r.Unit)
}

// Preference field ranges.
var (
	TempRange              = Range{0, 50, "°C"}
	HumidityRange          = Range{0, 100, "%"}
	UVRange                = Range{0, 15, ""}
	HydrationIntervalRange = Range{15, 240, " min"}
	StretchIntervalRange   = Range{10, 120, " min"}
)

// Preferences validates every field of a preferences record.
func Preferences(p model.Preferences) error {
	if err := Float("hydration_threshold_temp", p.HydrationThresholdTemp, TempRange); err != nil {
		return err
	}
	if err := Float("hydration_threshold_humidity", p.HydrationThresholdHumidity, HumidityRange); err != nil {
		return err
	}
	if err := Float("hydration_threshold_uv", p.HydrationThresholdUV, UVRange); err != nil {
		return err
	}
	if err := InRange("hydration_interval", p.HydrationInterval, HydrationIntervalRange); err != nil {
		return err
	}
	if err := InRange("stretch_interval", p.StretchInterval, StretchIntervalRange); err != nil {
		return err
	}
	if err := ClockTime("sleep_time", p.SleepTime); err != nil {
		return err
	}
	return ClockTime("wake_time", p.WakeTime)
}

// Float validates that a float lies within r.
func Float(field string, value float64, r Range) error {
	if !r.Contains(value) {
		return errors.NewUserErrorWithField(field, trim(value),
			"Value out of range",
			fmt.Sprintf("%s must be between %s", field, r)).WithCause(errors.ErrOutOfRange)
	}
	return nil
}

// InRange validates that an integer lies within r.
func InRange(field string, value int, r Range) error {
	return Float(field, float64(value), r)
}

// ClockTime validates a 24-hour "HH:MM" value.
func ClockTime(field, value string) error {
	if _, err := model.ParseClockTime(value); err != nil {
		return errors.NewUserErrorWithField(field, value,
			"Invalid time",
			"Use 24-hour HH:MM, e.g. 22:00").WithCause(errors.ErrInvalidClockTime)
	}
	return nil
}

// Amount validates a hydration amount in millilitres.
func Amount(ml int) error {
	if ml <= 0 || ml > MaxAmountML {
		return errors.NewUserErrorWithField("amount", strconv.Itoa(ml),
			"Invalid amount",
			fmt.Sprintf("Amount must be between 1 and %d ml", MaxAmountML)).WithCause(errors.ErrInvalidAmount)
	}
	return nil
}

// StretchMinutes validates a stretch duration in minutes.
func StretchMinutes(minutes int) error {
	if minutes <= 0 || minutes > MaxStretchMinutes {
		return errors.NewUserErrorWithField("duration", strconv.Itoa(minutes),
			"Invalid stretch duration",
			fmt.Sprintf("Duration must be between 1 and %d minutes", MaxStretchMinutes)).WithCause(errors.ErrOutOfRange)
	}
	return nil
}

// RemoteURL validates the base URL of a remote store.
func RemoteURL(rawURL string) error {
	if rawURL == "" {
		return errors.NewUserError("URL cannot be empty", "Set HEALTHDASH_REST_URL")
	}
	if len(rawURL) > MaxURLLength {
		return errors.NewUserError("URL too long", "URLs must be 2048 characters or fewer")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL format",
			"Provide a valid URL starting with https://")
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL scheme",
			"URLs must use https:// (or http:// for localhost)")
	}

	hostname := parsed.Hostname()
	if hostname == "" {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL: missing hostname",
			"Provide a valid URL like https://project.supabase.co")
	}

	isLocalhost := hostname == "localhost" || hostname == "127.0.0.1" || hostname == "::1"
	if parsed.Scheme == "http" && !isLocalhost {
		return errors.NewUserErrorWithField("url", rawURL,
			"HTTP not allowed for external URLs",
			"Use https:// for remote stores. HTTP is only allowed for localhost.")
	}
	return nil
}

func trim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
