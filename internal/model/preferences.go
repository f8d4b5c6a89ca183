package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Preference defaults.
const (
	DefaultThresholdTemp     = 25.0
	DefaultThresholdHumidity = 60.0
	DefaultThresholdUV       = 6.0
	DefaultHydrationInterval = 60
	DefaultStretchInterval   = 30
	DefaultSleepTime         = "22:00"
	DefaultWakeTime          = "06:00"
)

// Preferences is the singleton settings record shared by the local cache
// and the remote store. Last writer wins.
type Preferences struct {
	Key string `json:"-"`

	HydrationThresholdTemp     float64 `json:"hydration_threshold_temp"`
	HydrationThresholdHumidity float64 `json:"hydration_threshold_humidity"`
	HydrationThresholdUV       float64 `json:"hydration_threshold_uv"`
	// HydrationInterval is the hydration reminder cooldown in minutes.
	HydrationInterval int `json:"hydration_interval"`
	// StretchInterval is the stretch reminder countdown in minutes.
	StretchInterval int       `json:"stretch_interval"`
	SleepTime       string    `json:"sleep_time"`
	WakeTime        string    `json:"wake_time"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}

// SetKey sets the database key for the preferences.
func (p *Preferences) SetKey(key string) {
	p.Key = key
}

// GetKey returns the database key for the preferences.
func (p *Preferences) GetKey() string {
	if p.Key == "" {
		return KeyPreferences
	}
	return p.Key
}

// DefaultPreferences returns the built-in preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Key:                        KeyPreferences,
		HydrationThresholdTemp:     DefaultThresholdTemp,
		HydrationThresholdHumidity: DefaultThresholdHumidity,
		HydrationThresholdUV:       DefaultThresholdUV,
		HydrationInterval:          DefaultHydrationInterval,
		StretchInterval:            DefaultStretchInterval,
		SleepTime:                  DefaultSleepTime,
		WakeTime:                   DefaultWakeTime,
	}
}

// WithDefaults returns a copy with every absent field defaulted.
// Zero numeric fields and empty clock times count as absent.
func (p Preferences) WithDefaults() Preferences {
	d := DefaultPreferences()
	if p.HydrationThresholdTemp == 0 {
		p.HydrationThresholdTemp = d.HydrationThresholdTemp
	}
	if p.HydrationThresholdHumidity == 0 {
		p.HydrationThresholdHumidity = d.HydrationThresholdHumidity
	}
	if p.HydrationThresholdUV == 0 {
		p.HydrationThresholdUV = d.HydrationThresholdUV
	}
	if p.HydrationInterval <= 0 {
		p.HydrationInterval = d.HydrationInterval
	}
	if p.StretchInterval <= 0 {
		p.StretchInterval = d.StretchInterval
	}
	if p.SleepTime == "" {
		p.SleepTime = d.SleepTime
	}
	if p.WakeTime == "" {
		p.WakeTime = d.WakeTime
	}
	if p.Key == "" {
		p.Key = KeyPreferences
	}
	return p
}

// HydrationCooldown returns the hydration interval as a duration.
func (p Preferences) HydrationCooldown() time.Duration {
	return time.Duration(p.HydrationInterval) * time.Minute
}

// StretchCountdown returns the stretch interval as a duration.
func (p Preferences) StretchCountdown() time.Duration {
	return time.Duration(p.StretchInterval) * time.Minute
}

// PreferencesPatch is a partial preferences record. Nil fields are absent.
type PreferencesPatch struct {
	HydrationThresholdTemp     *float64
	HydrationThresholdHumidity *float64
	HydrationThresholdUV       *float64
	HydrationInterval          *int
	StretchInterval            *int
	SleepTime                  *string
	WakeTime                   *string
	UpdatedAt                  *time.Time
}

// Merge applies every present field of patch over p (shallow merge) and
// returns the result.
func (p Preferences) Merge(patch PreferencesPatch) Preferences {
	if patch.HydrationThresholdTemp != nil {
		p.HydrationThresholdTemp = *patch.HydrationThresholdTemp
	}
	if patch.HydrationThresholdHumidity != nil {
		p.HydrationThresholdHumidity = *patch.HydrationThresholdHumidity
	}
	if patch.HydrationThresholdUV != nil {
		p.HydrationThresholdUV = *patch.HydrationThresholdUV
	}
	if patch.HydrationInterval != nil {
		p.HydrationInterval = *patch.HydrationInterval
	}
	if patch.StretchInterval != nil {
		p.StretchInterval = *patch.StretchInterval
	}
	if patch.SleepTime != nil {
		p.SleepTime = *patch.SleepTime
	}
	if patch.WakeTime != nil {
		p.WakeTime = *patch.WakeTime
	}
	if patch.UpdatedAt != nil {
		p.UpdatedAt = *patch.UpdatedAt
	}
	return p
}

// Patch returns a patch with every field of p present.
func (p Preferences) Patch() PreferencesPatch {
	return PreferencesPatch{
		HydrationThresholdTemp:     &p.HydrationThresholdTemp,
		HydrationThresholdHumidity: &p.HydrationThresholdHumidity,
		HydrationThresholdUV:       &p.HydrationThresholdUV,
		HydrationInterval:          &p.HydrationInterval,
		StretchInterval:            &p.StretchInterval,
		SleepTime:                  &p.SleepTime,
		WakeTime:                   &p.WakeTime,
	}
}

// ClockTime is a wall-clock time of day in 24-hour form.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "HH:MM".
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: hour out of range", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: minute out of range", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// String formats the clock time as HH:MM.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On returns the clock time on the calendar day of t, in t's location.
func (c ClockTime) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

// Sleep returns the parsed sleep time, falling back to the default.
func (p Preferences) Sleep() ClockTime {
	if c, err := ParseClockTime(p.SleepTime); err == nil {
		return c
	}
	c, _ := ParseClockTime(DefaultSleepTime)
	return c
}

// Wake returns the parsed wake time, falling back to the default.
func (p Preferences) Wake() ClockTime {
	if c, err := ParseClockTime(p.WakeTime); err == nil {
		return c
	}
	c, _ := ParseClockTime(DefaultWakeTime)
	return c
}
