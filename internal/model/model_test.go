package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Preferences Tests
// =============================================================================

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()

	assert.Equal(t, KeyPreferences, p.GetKey())
	assert.Equal(t, 25.0, p.HydrationThresholdTemp)
	assert.Equal(t, 60.0, p.HydrationThresholdHumidity)
	assert.Equal(t, 6.0, p.HydrationThresholdUV)
	assert.Equal(t, 60, p.HydrationInterval)
	assert.Equal(t, 30, p.StretchInterval)
	assert.Equal(t, "22:00", p.SleepTime)
	assert.Equal(t, "06:00", p.WakeTime)
}

func TestPreferencesSetGetKey(t *testing.T) {
	p := &Preferences{}
	assert.Equal(t, KeyPreferences, p.GetKey())

	p.SetKey("other")
	assert.Equal(t, "other", p.GetKey())
}

func TestPreferencesWithDefaults(t *testing.T) {
	t.Run("empty_record", func(t *testing.T) {
		p := Preferences{}.WithDefaults()
		assert.Equal(t, *DefaultPreferences(), p)
	})

	t.Run("keeps_present_fields", func(t *testing.T) {
		p := Preferences{HydrationThresholdTemp: 28, SleepTime: "23:15"}.WithDefaults()
		assert.Equal(t, 28.0, p.HydrationThresholdTemp)
		assert.Equal(t, "23:15", p.SleepTime)
		assert.Equal(t, DefaultHydrationInterval, p.HydrationInterval)
		assert.Equal(t, DefaultWakeTime, p.WakeTime)
	})

	t.Run("negative_intervals_defaulted", func(t *testing.T) {
		p := Preferences{HydrationInterval: -5, StretchInterval: -1}.WithDefaults()
		assert.Equal(t, DefaultHydrationInterval, p.HydrationInterval)
		assert.Equal(t, DefaultStretchInterval, p.StretchInterval)
	})
}

func TestPreferencesMerge(t *testing.T) {
	local := *DefaultPreferences()
	temp := 31.0
	sleep := "23:30"
	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	merged := local.Merge(PreferencesPatch{
		HydrationThresholdTemp: &temp,
		SleepTime:              &sleep,
		UpdatedAt:              &stamp,
	})

	assert.Equal(t, 31.0, merged.HydrationThresholdTemp)
	assert.Equal(t, "23:30", merged.SleepTime)
	assert.Equal(t, stamp, merged.UpdatedAt)
	// Absent fields keep the local value.
	assert.Equal(t, local.HydrationThresholdHumidity, merged.HydrationThresholdHumidity)
	assert.Equal(t, local.WakeTime, merged.WakeTime)
	// Receiver is untouched.
	assert.Equal(t, 25.0, local.HydrationThresholdTemp)
}

func TestPreferencesPatchRoundTrip(t *testing.T) {
	src := Preferences{
		HydrationThresholdTemp:     27,
		HydrationThresholdHumidity: 40,
		HydrationThresholdUV:       5,
		HydrationInterval:          45,
		StretchInterval:            20,
		SleepTime:                  "21:30",
		WakeTime:                   "05:45",
	}
	got := DefaultPreferences().Merge(src.Patch())
	got.Key = ""
	assert.Equal(t, src, got)
}

func TestPreferencesDurations(t *testing.T) {
	p := DefaultPreferences()
	assert.Equal(t, time.Hour, p.HydrationCooldown())
	assert.Equal(t, 30*time.Minute, p.StretchCountdown())
}

// =============================================================================
// ClockTime Tests
// =============================================================================

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		input   string
		want    ClockTime
		wantErr bool
	}{
		{"22:00", ClockTime{22, 0}, false},
		{"06:30", ClockTime{6, 30}, false},
		{"0:05", ClockTime{0, 5}, false},
		{" 23:59 ", ClockTime{23, 59}, false},
		{"24:00", ClockTime{}, true},
		{"12:60", ClockTime{}, true},
		{"noon", ClockTime{}, true},
		{"", ClockTime{}, true},
		{"1:2:3", ClockTime{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClockTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockTimeStringAndOn(t *testing.T) {
	c := ClockTime{Hour: 7, Minute: 5}
	assert.Equal(t, "07:05", c.String())

	day := time.Date(2026, 5, 10, 15, 42, 10, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 5, 10, 7, 5, 0, 0, time.UTC), c.On(day))
}

func TestPreferencesSleepWakeFallback(t *testing.T) {
	p := Preferences{SleepTime: "garbage", WakeTime: "07:15"}
	assert.Equal(t, ClockTime{22, 0}, p.Sleep())
	assert.Equal(t, ClockTime{7, 15}, p.Wake())
}

// =============================================================================
// Weather Tests
// =============================================================================

func TestDefaultWeather(t *testing.T) {
	w := DefaultWeather()
	assert.Equal(t, 20, w.TemperatureC)
	assert.Equal(t, 50.0, w.Humidity)
	assert.Equal(t, 3.0, w.UVIndex)
	assert.Equal(t, 0, w.WeatherCode)
	assert.True(t, w.IsDay)
}

// =============================================================================
// Log Tests
// =============================================================================

func TestTotalHydration(t *testing.T) {
	logs := []HydrationLog{{AmountML: 250}, {AmountML: 500}}
	assert.Equal(t, 750, TotalHydration(logs))
	assert.Equal(t, 0, TotalHydration(nil))
}

func TestHydrationStatus(t *testing.T) {
	tests := []struct {
		total int
		want  HydrationLevel
	}{
		{0, HydrationLow},
		{599, HydrationLow},
		{600, HydrationModerate},
		{1399, HydrationModerate},
		{1400, HydrationGood},
		{5000, HydrationGood},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HydrationStatus(tt.total), "total=%d", tt.total)
	}
}

func TestHydrationProgressCapped(t *testing.T) {
	assert.Equal(t, 50.0, HydrationProgress(1000))
	assert.Equal(t, 100.0, HydrationProgress(4000))
	assert.Equal(t, 0.0, HydrationProgress(-10))
}

// =============================================================================
// Stretch Catalog Tests
// =============================================================================

func TestStretchTypes(t *testing.T) {
	types := StretchTypes()
	require.Len(t, types, 5)
	assert.Equal(t, "Neck & Shoulders", types[0].Name)
	assert.Equal(t, 10, types[4].DurationMin)

	// Returned slice is a copy.
	types[0].Name = "changed"
	assert.Equal(t, "Neck & Shoulders", StretchTypes()[0].Name)
}

func TestReminderMenu(t *testing.T) {
	menu := ReminderMenu()
	require.Len(t, menu, ReminderMenuSize)
	assert.Equal(t, "Leg Stretch", menu[2].Name)
}

func TestFindStretchType(t *testing.T) {
	tests := []struct {
		query string
		want  string
		found bool
	}{
		{"Neck & Shoulders", "Neck & Shoulders", true},
		{"neck", "Neck & Shoulders", true},
		{"b", "Back Stretch", true},
		{"full-body", "Full Body", true},
		{"EYE REST", "Eye Rest", true},
		{"yoga", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := FindStretchType(tt.query)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestStretchDuration(t *testing.T) {
	assert.Equal(t, 2, StretchDuration("Eye Rest"))
	assert.Equal(t, DefaultStretchMinutes, StretchDuration("unknown"))
	assert.Equal(t, 10*time.Minute, StretchTypes()[4].Duration())
}
