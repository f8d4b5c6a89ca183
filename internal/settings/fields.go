package settings

import (
	"sort"
	"strconv"
	"strings"

	"github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/parser"
	"github.com/manav03panchal/healthdash/internal/validate"
)

// Field describes one editable preference.
type Field struct {
	Key         string
	Description string
	Range       string
	get         func(model.Preferences) string
	set         func(*model.Preferences, string) error
}

// Get returns the field's value in p, formatted for display.
func (f Field) Get(p model.Preferences) string { return f.get(p) }

// Set parses value and stores it in p. The result is not range-checked;
// callers validate the whole record.
func (f Field) Set(p *model.Preferences, value string) error { return f.set(p, value) }

var fields = []Field{
	{
		Key:         "hydration_threshold_temp",
		Description: "Remind to drink above this temperature (°C)",
		Range:       validate.TempRange.String(),
		get:         func(p model.Preferences) string { return formatFloat(p.HydrationThresholdTemp) },
		set: func(p *model.Preferences, v string) error {
			f, err := parseFloat("hydration_threshold_temp", v)
			p.HydrationThresholdTemp = f
			return err
		},
	},
	{
		Key:         "hydration_threshold_humidity",
		Description: "Remind to drink below this humidity (%)",
		Range:       validate.HumidityRange.String(),
		get:         func(p model.Preferences) string { return formatFloat(p.HydrationThresholdHumidity) },
		set: func(p *model.Preferences, v string) error {
			f, err := parseFloat("hydration_threshold_humidity", v)
			p.HydrationThresholdHumidity = f
			return err
		},
	},
	{
		Key:         "hydration_threshold_uv",
		Description: "Remind to drink above this UV index",
		Range:       validate.UVRange.String(),
		get:         func(p model.Preferences) string { return formatFloat(p.HydrationThresholdUV) },
		set: func(p *model.Preferences, v string) error {
			f, err := parseFloat("hydration_threshold_uv", v)
			p.HydrationThresholdUV = f
			return err
		},
	},
	{
		Key:         "hydration_interval",
		Description: "Minutes between hydration reminders",
		Range:       validate.HydrationIntervalRange.String(),
		get:         func(p model.Preferences) string { return strconv.Itoa(p.HydrationInterval) },
		set: func(p *model.Preferences, v string) error {
			n, err := parser.ParseInterval(v)
			if err != nil {
				return asUserError(err)
			}
			p.HydrationInterval = n
			return nil
		},
	},
	{
		Key:         "stretch_interval",
		Description: "Minutes between stretch reminders",
		Range:       validate.StretchIntervalRange.String(),
		get:         func(p model.Preferences) string { return strconv.Itoa(p.StretchInterval) },
		set: func(p *model.Preferences, v string) error {
			n, err := parser.ParseInterval(v)
			if err != nil {
				return asUserError(err)
			}
			p.StretchInterval = n
			return nil
		},
	},
	{
		Key:         "sleep_time",
		Description: "Bedtime",
		Range:       "HH:MM",
		get:         func(p model.Preferences) string { return p.SleepTime },
		set: func(p *model.Preferences, v string) error {
			c, err := parser.NormalizeClock(v)
			if err != nil {
				return asUserError(err)
			}
			p.SleepTime = c
			return nil
		},
	},
	{
		Key:         "wake_time",
		Description: "Wake-up time",
		Range:       "HH:MM",
		get:         func(p model.Preferences) string { return p.WakeTime },
		set: func(p *model.Preferences, v string) error {
			c, err := parser.NormalizeClock(v)
			if err != nil {
				return asUserError(err)
			}
			p.WakeTime = c
			return nil
		},
	},
}

// Fields returns every editable preference in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Keys returns the field keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	sort.Strings(keys)
	return keys
}

// Lookup finds a field by key. Dashes and case are ignored.
func Lookup(key string) (Field, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
	for _, f := range fields {
		if f.Key == norm {
			return f, nil
		}
	}
	return Field{}, errors.NewUserErrorWithField("key", key,
		"Unknown setting",
		"Valid settings: "+strings.Join(Keys(), ", ")).WithCause(errors.ErrUnknownSetting)
}

// Apply sets key to value on a copy of p and validates the result.
func Apply(p model.Preferences, key, value string) (model.Preferences, error) {
	f, err := Lookup(key)
	if err != nil {
		return p, err
	}
	if err := f.Set(&p, value); err != nil {
		return p, err
	}
	if err := validate.Preferences(p); err != nil {
		return p, err
	}
	return p, nil
}

func parseFloat(field, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, errors.NewUserErrorWithField(field, v,
			"Not a number",
			"Provide a numeric value, e.g. 25").WithCause(errors.ErrOutOfRange)
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func asUserError(err error) error {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return pe.ToUserError()
	}
	return err
}
