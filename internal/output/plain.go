package output

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/reminder"
	"github.com/manav03panchal/healthdash/internal/weather"
)

// PlainFormatter writes tab-separated key/value lines for scripts.
type PlainFormatter struct {
	*Formatter
}

// NewPlainFormatter creates a new plain formatter.
func NewPlainFormatter(f *Formatter) *PlainFormatter {
	return &PlainFormatter{Formatter: f}
}

func (p *PlainFormatter) kv(key string, value any) {
	p.Printf("%s\t%v\n", key, value)
}

func (p *PlainFormatter) row(cols ...string) {
	p.Println(strings.Join(cols, "\t"))
}

// Weather writes current conditions.
func (p *PlainFormatter) Weather(v WeatherView) error {
	s := v.Snapshot
	if v.Location != "" {
		p.kv("location", v.Location)
	}
	p.kv("temperature", s.TemperatureC)
	p.kv("humidity", s.Humidity)
	p.kv("uv_index", s.UVIndex)
	p.kv("weather_code", s.WeatherCode)
	p.kv("description", weather.Describe(s.WeatherCode))
	p.kv("is_day", s.IsDay)
	p.kv("live", v.Live)
	for _, a := range v.Alerts {
		p.kv("alert", fmt.Sprintf("%s: %s", a.Level, a.Message))
	}
	return nil
}

// Hydration writes a logged water entry.
func (p *PlainFormatter) Hydration(v HydrationView) error {
	p.kv("amount_ml", v.AmountML)
	p.kv("today_total_ml", v.TotalML)
	p.kv("synced", v.Synced)
	return nil
}

// Stretch writes a logged stretch.
func (p *PlainFormatter) Stretch(v StretchView) error {
	p.kv("type", v.Type)
	p.kv("duration_min", v.DurationMin)
	p.kv("today_count", v.Count)
	p.kv("synced", v.Synced)
	return nil
}

// StretchTypes writes one catalog entry per line.
func (p *PlainFormatter) StretchTypes(types []model.StretchType) error {
	for _, s := range types {
		p.row(s.Shortcut, s.Name, fmt.Sprint(s.DurationMin), s.Description)
	}
	return nil
}

// Today writes the day summary followed by one line per log entry.
func (p *PlainFormatter) Today(v TodayView) error {
	p.kv("date", FormatDate(v.Date))
	p.kv("hydration_ml", v.TotalML())
	p.kv("stretches", len(v.Stretches))
	for _, l := range v.Hydration {
		p.row("water", l.LoggedAt.Format(time.RFC3339), fmt.Sprint(l.AmountML))
	}
	for _, l := range v.Stretches {
		p.row("stretch", l.LoggedAt.Format(time.RFC3339), l.Type, fmt.Sprint(l.DurationMin))
	}
	return nil
}

// Sleep writes the sleep summary.
func (p *PlainFormatter) Sleep(s reminder.Stats) error {
	p.kv("sleep_time", s.SleepTime)
	p.kv("wake_time", s.WakeTime)
	p.kv("hours_until_bedtime", s.HoursUntilBedtime)
	p.kv("hours_until_wakeup", s.HoursUntilWakeup)
	p.kv("duration_hours", s.Duration)
	p.kv("quality", s.Quality)
	p.kv("recommendation", s.Recommendation)
	return nil
}

// Settings writes one key/value line per preference.
func (p *PlainFormatter) Settings(v SettingsView) error {
	for _, r := range v.Rows {
		p.kv(r.Key, r.Value)
	}
	return nil
}

// Saved writes the outcome of a preference change.
func (p *PlainFormatter) Saved(v SavedView) error {
	if v.Key != "" {
		p.kv(v.Key, v.Value)
	}
	p.kv("status", v.Action)
	p.kv("synced", v.Synced)
	return nil
}

// Error writes the error message.
func (p *PlainFormatter) Error(err error) error {
	p.kv("error", err.Error())
	if s := apperrors.GetSuggestion(err); s != "" {
		p.kv("suggestion", s)
	}
	return nil
}
