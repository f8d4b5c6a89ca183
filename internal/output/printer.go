package output

import (
	"time"

	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/reminder"
)

// WeatherView is the weather command result.
type WeatherView struct {
	Snapshot  model.WeatherSnapshot
	Location  string
	Alerts    []model.WeatherAlert
	Live      bool
	FetchedAt time.Time
}

// HydrationView is the result of logging water.
type HydrationView struct {
	AmountML int
	TotalML  int
	Synced   bool
}

// StretchView is the result of logging a stretch.
type StretchView struct {
	Type        string
	DurationMin int
	Count       int
	Synced      bool
}

// TodayView is the same-day summary.
type TodayView struct {
	Date      time.Time
	Store     string
	Hydration []model.HydrationLog
	Stretches []model.StretchLog
}

// TotalML sums the day's hydration.
func (v TodayView) TotalML() int {
	return model.TotalHydration(v.Hydration)
}

// SettingRow is one preference in the settings listing.
type SettingRow struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
	Range       string `json:"range,omitempty"`
}

// SettingsView is the settings listing.
type SettingsView struct {
	Rows   []SettingRow
	Source string
	Store  string
}

// SavedView is the result of changing preferences.
type SavedView struct {
	Action string
	Key    string
	Value  string
	Synced bool
}

// Printer renders command results in one output format.
type Printer interface {
	Weather(v WeatherView) error
	Hydration(v HydrationView) error
	Stretch(v StretchView) error
	StretchTypes(types []model.StretchType) error
	Today(v TodayView) error
	Sleep(s reminder.Stats) error
	Settings(v SettingsView) error
	Saved(v SavedView) error
	Error(err error) error
}

// NewPrinter returns the printer for the formatter's format.
func NewPrinter(f *Formatter) Printer {
	switch f.Format {
	case FormatJSON:
		return NewJSONFormatter(f)
	case FormatPlain:
		return NewPlainFormatter(f)
	default:
		return NewCLIFormatter(f)
	}
}
