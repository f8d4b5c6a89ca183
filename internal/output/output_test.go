package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/reminder"
)

func newBufferFormatter(format Format) (*Formatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Formatter{Writer: &buf, Format: format, ColorMode: ColorNever}, &buf
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestNewFormatter(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatCLI, "cli": FormatCLI, "JSON": FormatJSON, " plain ": FormatPlain} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("yaml")
	assert.Error(t, err)
}

func TestParseColorMode(t *testing.T) {
	got, err := ParseColorMode("always")
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, got)

	got, err = ParseColorMode("")
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, got)

	_, err = ParseColorMode("rainbow")
	assert.Error(t, err)
}

func TestFormatterIsColorEnabled(t *testing.T) {
	t.Run("color_always", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways}
		assert.True(t, f.IsColorEnabled())
	})

	t.Run("color_never", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorNever}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("color_auto_non_terminal", func(t *testing.T) {
		f := &Formatter{Writer: &bytes.Buffer{}, ColorMode: ColorAuto}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("plain_never_colors", func(t *testing.T) {
		f := &Formatter{Format: FormatPlain, ColorMode: ColorAlways}
		assert.False(t, f.IsColorEnabled())
	})
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "8h", FormatHours(8))
	assert.Equal(t, "7.5h", FormatHours(7.5))
	assert.Equal(t, "0.3h", FormatHours(0.3))
	assert.Equal(t, "23°C", FormatTemperature(23))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(0, 10))
	assert.Equal(t, "█████░░░░░", ProgressBar(50, 10))
	assert.Equal(t, "██████████", ProgressBar(150, 10))
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(-5, 10))
}

func TestNewPrinter(t *testing.T) {
	f, _ := newBufferFormatter(FormatJSON)
	assert.IsType(t, &JSONFormatter{}, NewPrinter(f))

	f.Format = FormatPlain
	assert.IsType(t, &PlainFormatter{}, NewPrinter(f))

	f.Format = FormatCLI
	assert.IsType(t, &CLIFormatter{}, NewPrinter(f))
}

// =============================================================================
// CLI Tests
// =============================================================================

func hotWeather() WeatherView {
	return WeatherView{
		Snapshot: model.WeatherSnapshot{TemperatureC: 32, Humidity: 25, UVIndex: 7, WeatherCode: 0, IsDay: true},
		Location: "40.7128,-74.0060",
		Alerts: []model.WeatherAlert{
			{Level: model.AlertWarning, Message: "High temperature today. Stay hydrated and avoid prolonged sun exposure."},
			{Level: model.AlertInfo, Message: "Low humidity detected. Increase water intake to prevent dehydration."},
		},
		Live: true,
	}
}

func TestCLIWeather(t *testing.T) {
	f, buf := newBufferFormatter(FormatCLI)
	require.NoError(t, NewCLIFormatter(f).Weather(hotWeather()))

	out := buf.String()
	assert.Contains(t, out, "Weather @ 40.7128,-74.0060")
	assert.Contains(t, out, "32°C")
	assert.Contains(t, out, "Clear sky")
	assert.Contains(t, out, "Humidity: 25%")
	assert.Contains(t, out, "⚠ High temperature today")
	assert.Contains(t, out, "ℹ Low humidity detected")
	assert.NotContains(t, out, "unreachable")
}

func TestCLIWeatherDefaults(t *testing.T) {
	f, buf := newBufferFormatter(FormatCLI)
	require.NoError(t, NewCLIFormatter(f).Weather(WeatherView{Snapshot: model.DefaultWeather()}))
	assert.Contains(t, buf.String(), "showing defaults")
}

func TestCLIHydration(t *testing.T) {
	f, buf := newBufferFormatter(FormatCLI)
	require.NoError(t, NewCLIFormatter(f).Hydration(HydrationView{AmountML: 500, TotalML: 1500, Synced: false}))

	out := buf.String()
	assert.Contains(t, out, "✓ Logged 500ml of water")
	assert.Contains(t, out, "1500ml / 2000ml")
	assert.Contains(t, out, "Good hydration")
	assert.Contains(t, out, "Not synced")
}

func TestCLIStretchTypes(t *testing.T) {
	f, buf := newBufferFormatter(FormatCLI)
	require.NoError(t, NewCLIFormatter(f).StretchTypes(model.StretchTypes()))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Neck & Shoulders")
	assert.Contains(t, out, "10 min")
}

func TestCLIToday(t *testing.T) {
	f, buf := newBufferFormatter(FormatCLI)
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	v := TodayView{
		Date:      at,
		Store:     "memory",
		Hydration: []model.HydrationLog{{AmountML: 500, LoggedAt: at}, {AmountML: 500, LoggedAt: at}},
		Stretches: []model.StretchLog{{Type: "Eye Rest", DurationMin: 2, LoggedAt: at}},
	}
	require.NoError(t, NewCLIFormatter(f).Today(v))

	out := buf.String()
	assert.Contains(t, out, "Today, 2026-03-14")
	assert.Contains(t, out, "1000ml / 2000ml")
	assert.Contains(t, out, "Moderate hydration")
	assert.Contains(t, out, "Stretches: 1")
	assert.Contains(t, out, "09:30  Eye Rest (2 min)")
	assert.Contains(t, out, "Store: memory")
}

func TestCLISleep(t *testing.T) {
	f, buf := newBufferFormatter(FormatCLI)
	stats := reminder.SleepStats(time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC), *model.DefaultPreferences())
	require.NoError(t, NewCLIFormatter(f).Sleep(stats))

	out := buf.String()
	assert.Contains(t, out, "Bedtime: 22:00")
	assert.Contains(t, out, "Wake up: 06:00")
	assert.Contains(t, out, "Until bedtime: 7h")
	assert.Contains(t, out, "8h (healthy)")
	assert.Contains(t, out, reminder.RecAfternoon)
}

func TestCLISettingsAndSaved(t *testing.T) {
	f, buf := newBufferFormatter(FormatCLI)
	c := NewCLIFormatter(f)
	require.NoError(t, c.Settings(SettingsView{
		Rows:   []SettingRow{{Key: "sleep_time", Value: "22:00", Description: "Bedtime"}},
		Source: "cache",
		Store:  "offline",
	}))
	require.NoError(t, c.Saved(SavedView{Action: "updated", Key: "sleep_time", Value: "23:00", Synced: false}))

	out := buf.String()
	assert.Contains(t, out, "sleep_time")
	assert.Contains(t, out, "Loaded from cache, store: offline")
	assert.Contains(t, out, "✓ Set sleep_time = 23:00")
	assert.Contains(t, out, "saved locally instead")
}

func TestCLIError(t *testing.T) {
	f, buf := newBufferFormatter(FormatCLI)
	err := apperrors.NewUserError("unknown stretch type", "Run 'healthdash stretch list' to see stretch types.")
	require.NoError(t, NewCLIFormatter(f).Error(err))

	out := buf.String()
	assert.Contains(t, out, "✗ unknown stretch type")
	assert.Contains(t, out, "Try: Run 'healthdash stretch list'")
}

func TestPrintTableEmpty(t *testing.T) {
	f, buf := newBufferFormatter(FormatCLI)
	NewCLIFormatter(f).PrintTable([]string{"A"}, nil)
	assert.Empty(t, buf.String())
}

// =============================================================================
// JSON Tests
// =============================================================================

func TestJSONWeather(t *testing.T) {
	f, buf := newBufferFormatter(FormatJSON)
	require.NoError(t, NewJSONFormatter(f).Weather(hotWeather()))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, float64(32), resp["temperature"])
	assert.Equal(t, "Clear sky", resp["description"])
	assert.Equal(t, "clear", resp["condition"])
	assert.Equal(t, true, resp["live"])
	assert.Len(t, resp["alerts"], 2)
}

func TestJSONWeatherEmptyAlerts(t *testing.T) {
	f, buf := newBufferFormatter(FormatJSON)
	require.NoError(t, NewJSONFormatter(f).Weather(WeatherView{Snapshot: model.DefaultWeather()}))
	assert.Contains(t, buf.String(), `"alerts": []`)
}

func TestJSONHydration(t *testing.T) {
	f, buf := newBufferFormatter(FormatJSON)
	require.NoError(t, NewJSONFormatter(f).Hydration(HydrationView{AmountML: 250, TotalML: 500, Synced: true}))

	var resp HydrationResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "logged", resp.Status)
	assert.Equal(t, 500, resp.TodayTotalML)
	assert.Equal(t, 2000, resp.GoalML)
	assert.InDelta(t, 25.0, resp.Progress, 0.001)
	assert.Equal(t, "Low hydration", resp.Level)
	assert.True(t, resp.Synced)
}

func TestJSONToday(t *testing.T) {
	f, buf := newBufferFormatter(FormatJSON)
	require.NoError(t, NewJSONFormatter(f).Today(TodayView{Date: time.Now(), Store: "offline"}))

	var resp TodayResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, 0, resp.HydrationML)
	assert.NotNil(t, resp.Hydration)
	assert.NotNil(t, resp.Stretches)
	assert.Contains(t, buf.String(), `"stretches": []`)
}

func TestJSONSleep(t *testing.T) {
	f, buf := newBufferFormatter(FormatJSON)
	stats := reminder.Stats{SleepTime: "22:00", WakeTime: "06:00", Duration: 8, Quality: reminder.QualityHealthy}
	require.NoError(t, NewJSONFormatter(f).Sleep(stats))

	var resp reminder.Stats
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, stats, resp)
}

func TestJSONError(t *testing.T) {
	f, buf := newBufferFormatter(FormatJSON)
	err := apperrors.NewUserError("bad amount", "").WithCause(apperrors.ErrInvalidAmount)
	require.NoError(t, NewJSONFormatter(f).Error(err))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "user", resp.Category)
	assert.Equal(t, "bad amount", resp.Error)
	assert.Contains(t, resp.Suggestion, "millilitres")
}

// =============================================================================
// Plain Tests
// =============================================================================

func TestPlainWeather(t *testing.T) {
	f, buf := newBufferFormatter(FormatPlain)
	require.NoError(t, NewPlainFormatter(f).Weather(hotWeather()))

	out := buf.String()
	assert.Contains(t, out, "temperature\t32\n")
	assert.Contains(t, out, "description\tClear sky\n")
	assert.Contains(t, out, "alert\twarning: High temperature")
}

func TestPlainToday(t *testing.T) {
	f, buf := newBufferFormatter(FormatPlain)
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, NewPlainFormatter(f).Today(TodayView{
		Date:      at,
		Hydration: []model.HydrationLog{{AmountML: 300, LoggedAt: at}},
		Stretches: []model.StretchLog{{Type: "Leg Stretch", DurationMin: 5, LoggedAt: at}},
	}))

	out := buf.String()
	assert.Contains(t, out, "hydration_ml\t300\n")
	assert.Contains(t, out, "water\t2026-03-14T09:30:00Z\t300\n")
	assert.Contains(t, out, "stretch\t2026-03-14T09:30:00Z\tLeg Stretch\t5\n")
}

func TestPlainSettings(t *testing.T) {
	f, buf := newBufferFormatter(FormatPlain)
	require.NoError(t, NewPlainFormatter(f).Settings(SettingsView{Rows: []SettingRow{
		{Key: "hydration_interval", Value: "60"},
		{Key: "wake_time", Value: "06:00"},
	}}))
	assert.Equal(t, "hydration_interval\t60\nwake_time\t06:00\n", buf.String())
}

func TestPlainError(t *testing.T) {
	f, buf := newBufferFormatter(FormatPlain)
	require.NoError(t, NewPlainFormatter(f).Error(errors.New("boom")))
	assert.Equal(t, "error\tboom\n", buf.String())
}
