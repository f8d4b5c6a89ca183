package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/healthdash/internal/model"
)

var base = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func mildWeather() model.WeatherSnapshot {
	return model.WeatherSnapshot{TemperatureC: 20, Humidity: 70, UVIndex: 2, IsDay: true}
}

func TestHydrationDue(t *testing.T) {
	prefs := *model.DefaultPreferences()

	tests := []struct {
		name    string
		last    time.Time
		weather model.WeatherSnapshot
		want    bool
	}{
		{"mild weather never fires", time.Time{}, mildWeather(), false},
		{"hot and never reminded", time.Time{}, model.WeatherSnapshot{TemperatureC: 26, Humidity: 70}, true},
		{"temperature at threshold", time.Time{}, model.WeatherSnapshot{TemperatureC: 25, Humidity: 70}, false},
		{"dry air", time.Time{}, model.WeatherSnapshot{TemperatureC: 20, Humidity: 59}, true},
		{"strong uv", time.Time{}, model.WeatherSnapshot{TemperatureC: 20, Humidity: 70, UVIndex: 6.5}, true},
		{"within cooldown", base.Add(-59 * time.Minute), model.WeatherSnapshot{TemperatureC: 30, Humidity: 70}, false},
		{"cooldown elapsed", base.Add(-60 * time.Minute), model.WeatherSnapshot{TemperatureC: 30, Humidity: 70}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HydrationDue(base, tt.last, tt.weather, prefs))
		})
	}
}

func TestHydrationDueDefaultsZeroPreferences(t *testing.T) {
	hot := model.WeatherSnapshot{TemperatureC: 26, Humidity: 70}
	assert.True(t, HydrationDue(base, time.Time{}, hot, model.Preferences{}))
	assert.False(t, HydrationDue(base, time.Time{}, mildWeather(), model.Preferences{}))
}

func TestHydrationGate(t *testing.T) {
	prefs := *model.DefaultPreferences()
	hot := model.WeatherSnapshot{TemperatureC: 31, Humidity: 70}
	var g HydrationGate

	require.True(t, g.Evaluate(base, hot, prefs))
	assert.True(t, g.Visible())
	assert.Equal(t, base, g.LastReminder)

	assert.False(t, g.Evaluate(base.Add(10*time.Minute), hot, prefs), "cooldown suppresses a second prompt")

	g.Dismiss(base.Add(20 * time.Minute))
	assert.False(t, g.Visible())
	assert.Equal(t, base.Add(20*time.Minute), g.LastReminder)

	assert.False(t, g.Evaluate(base.Add(70*time.Minute), hot, prefs), "dismiss restarts the cooldown")
	assert.True(t, g.Evaluate(base.Add(80*time.Minute), hot, prefs))

	g.Logged()
	assert.False(t, g.Visible())
	assert.Equal(t, base.Add(80*time.Minute), g.LastReminder)
}

func TestStretchCycle_ReminderFlow(t *testing.T) {
	var c StretchCycle
	c.Arm(base, 30*time.Minute)
	assert.Equal(t, StretchWaiting, c.State())
	assert.Equal(t, base.Add(30*time.Minute), c.NextReminder())

	_, done := c.Tick(base.Add(29 * time.Minute))
	assert.False(t, done)
	assert.Equal(t, StretchWaiting, c.State())

	c.Tick(base.Add(30 * time.Minute))
	assert.Equal(t, StretchPrompting, c.State())

	skipAt := base.Add(31 * time.Minute)
	require.True(t, c.Skip(skipAt))
	assert.Equal(t, StretchWaiting, c.State())
	assert.Equal(t, skipAt.Add(30*time.Minute), c.NextReminder())
	assert.False(t, c.Skip(skipAt), "skip only applies to a visible prompt")
}

func TestStretchCycle_AutoComplete(t *testing.T) {
	var c StretchCycle
	c.Arm(base, 30*time.Minute)

	eye, ok := model.FindStretchType("Eye Rest")
	require.True(t, ok)
	require.NoError(t, c.Start(base, eye))
	assert.Equal(t, StretchActive, c.State())
	assert.Equal(t, 120, c.Remaining(base))
	assert.Equal(t, 119, c.Remaining(base.Add(time.Second)))

	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "Eye Rest", cur.Name)

	assert.Error(t, c.Start(base, eye))

	_, done := c.Tick(base.Add(119 * time.Second))
	assert.False(t, done)

	end := base.Add(2 * time.Minute)
	got, done := c.Tick(end)
	require.True(t, done)
	assert.Equal(t, Completion{Type: "Eye Rest", DurationMin: 2}, got)
	assert.Equal(t, StretchWaiting, c.State())
	assert.Equal(t, end.Add(30*time.Minute), c.NextReminder())
}

func TestStretchCycle_CompleteEarly(t *testing.T) {
	var c StretchCycle
	c.Arm(base, 15*time.Minute)

	_, ok := c.CompleteEarly(base)
	assert.False(t, ok)

	full, _ := model.FindStretchType("full")
	require.NoError(t, c.Start(base, full))

	at := base.Add(90 * time.Second)
	got, ok := c.CompleteEarly(at)
	require.True(t, ok)
	assert.Equal(t, "Full Body", got.Type)
	assert.Equal(t, 10, got.DurationMin, "logged duration is the catalog duration")
	assert.Equal(t, at.Add(15*time.Minute), c.NextReminder())
}

func TestStretchCycle_UnknownTypeLogsDefaultDuration(t *testing.T) {
	var c StretchCycle
	require.NoError(t, c.Start(base, model.StretchType{Name: "Wrist Circles", DurationMin: 1}))
	got, ok := c.Tick(base.Add(time.Minute))
	require.True(t, ok)
	assert.Equal(t, model.DefaultStretchMinutes, got.DurationMin)
}

func TestStretchCycle_ArmDuringStretch(t *testing.T) {
	var c StretchCycle
	c.Arm(base, 30*time.Minute)
	neck, _ := model.FindStretchType("n")
	require.NoError(t, c.Start(base, neck))

	c.Arm(base.Add(time.Minute), 45*time.Minute)
	assert.Equal(t, StretchActive, c.State())

	end := base.Add(5 * time.Minute)
	_, ok := c.Tick(end)
	require.True(t, ok)
	assert.Equal(t, end.Add(45*time.Minute), c.NextReminder())
}

func TestStretchCycle_Disarmed(t *testing.T) {
	var c StretchCycle
	c.Arm(base, 0)
	assert.True(t, c.NextReminder().IsZero())
	c.Tick(base.Add(24 * time.Hour))
	assert.Equal(t, StretchWaiting, c.State())
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "5:00", FormatCountdown(300))
	assert.Equal(t, "0:09", FormatCountdown(9))
	assert.Equal(t, "0:00", FormatCountdown(-3))
}

func clock(h, m int) model.ClockTime {
	return model.ClockTime{Hour: h, Minute: m}
}

func TestHoursUntil(t *testing.T) {
	now := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, 2.0, HoursUntil(now, clock(22, 0)))
	assert.Equal(t, 10.0, HoursUntil(now, clock(6, 0)))
	assert.Equal(t, 24.0, HoursUntil(now, clock(20, 0)), "equal time rolls to tomorrow")
	assert.Equal(t, 0.3, HoursUntil(now, clock(20, 20)))
	assert.Equal(t, 23.5, HoursUntil(now, clock(19, 30)))
}

func TestSleepDuration(t *testing.T) {
	assert.Equal(t, 8.0, SleepDuration(clock(22, 0), clock(6, 0)))
	assert.Equal(t, 7.5, SleepDuration(clock(23, 30), clock(7, 0)))
	assert.Equal(t, 1.0, SleepDuration(clock(23, 30), clock(0, 30)))
	assert.Equal(t, 8.0, SleepDuration(clock(0, 0), clock(8, 0)))
	assert.Equal(t, 24.0, SleepDuration(clock(7, 0), clock(7, 0)))
}

func TestRecommendation(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 3, 14, h, 15, 0, 0, time.UTC) }
	sleep := clock(22, 0)

	tests := []struct {
		hour int
		want string
	}{
		{21, RecEvening},
		{22, RecBedtime},
		{23, RecBedtime},
		{0, RecBedtime},
		{2, RecBedtime},
		{3, RecEvening},
		{6, RecEvening},
		{7, RecMorning},
		{10, RecMorning},
		{12, RecMaintain},
		{14, RecAfternoon},
		{16, RecAfternoon},
		{18, RecMaintain},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Recommendation(at(tt.hour), sleep), "hour %d", tt.hour)
	}
}

func TestSleepQuality(t *testing.T) {
	assert.Equal(t, QualityShort, SleepQuality(5.9))
	assert.Equal(t, QualityBorderline, SleepQuality(6))
	assert.Equal(t, QualityHealthy, SleepQuality(7))
	assert.Equal(t, QualityHealthy, SleepQuality(9))
	assert.Equal(t, QualityLong, SleepQuality(9.5))
	assert.Equal(t, "green", QualityHealthy.Color())
	assert.Equal(t, "red", QualityShort.Color())
}

func TestSleepStats(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	got := SleepStats(now, *model.DefaultPreferences())

	assert.Equal(t, "22:00", got.SleepTime)
	assert.Equal(t, "06:00", got.WakeTime)
	assert.Equal(t, 7.0, got.HoursUntilBedtime)
	assert.Equal(t, 15.0, got.HoursUntilWakeup)
	assert.Equal(t, 8.0, got.Duration)
	assert.Equal(t, QualityHealthy, got.Quality)
	assert.Equal(t, RecAfternoon, got.Recommendation)
}
