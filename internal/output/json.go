package output

import (
	"time"

	apperrors "github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/reminder"
	"github.com/manav03panchal/healthdash/internal/weather"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// WeatherResponse represents the weather output in JSON.
type WeatherResponse struct {
	model.WeatherSnapshot
	Description string               `json:"description"`
	Condition   string               `json:"condition"`
	Location    string               `json:"location,omitempty"`
	Live        bool                 `json:"live"`
	FetchedAt   string               `json:"fetched_at,omitempty"`
	Alerts      []model.WeatherAlert `json:"alerts"`
}

// HydrationResponse represents a logged water entry in JSON.
type HydrationResponse struct {
	Status       string  `json:"status"`
	AmountML     int     `json:"amount_ml"`
	TodayTotalML int     `json:"today_total_ml"`
	GoalML       int     `json:"goal_ml"`
	Progress     float64 `json:"progress_percent"`
	Level        string  `json:"level"`
	Synced       bool    `json:"synced"`
}

// StretchResponse represents a logged stretch in JSON.
type StretchResponse struct {
	Status      string `json:"status"`
	Type        string `json:"type"`
	DurationMin int    `json:"duration_min"`
	TodayCount  int    `json:"today_count"`
	Synced      bool   `json:"synced"`
}

// StretchTypesResponse represents the stretch catalog in JSON.
type StretchTypesResponse struct {
	Stretches []model.StretchType `json:"stretches"`
}

// TodayResponse represents the day summary in JSON.
type TodayResponse struct {
	Date         string               `json:"date"`
	Store        string               `json:"store"`
	HydrationML  int                  `json:"hydration_ml"`
	GoalML       int                  `json:"goal_ml"`
	Level        string               `json:"level"`
	Hydration    []model.HydrationLog `json:"hydration"`
	StretchCount int                  `json:"stretch_count"`
	Stretches    []model.StretchLog   `json:"stretches"`
}

// SettingsResponse represents the settings listing in JSON.
type SettingsResponse struct {
	Settings []SettingRow `json:"settings"`
	Source   string       `json:"source,omitempty"`
	Store    string       `json:"store,omitempty"`
}

// SavedResponse represents a preference change in JSON.
type SavedResponse struct {
	Status string `json:"status"`
	Key    string `json:"key,omitempty"`
	Value  string `json:"value,omitempty"`
	Synced bool   `json:"synced"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Category   string `json:"category"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Weather outputs current conditions in JSON format.
func (j *JSONFormatter) Weather(v WeatherView) error {
	alerts := v.Alerts
	if alerts == nil {
		alerts = []model.WeatherAlert{}
	}
	resp := WeatherResponse{
		WeatherSnapshot: v.Snapshot,
		Description:     weather.Describe(v.Snapshot.WeatherCode),
		Condition:       string(weather.Classify(v.Snapshot.WeatherCode, v.Snapshot.IsDay)),
		Location:        v.Location,
		Live:            v.Live,
		Alerts:          alerts,
	}
	if !v.FetchedAt.IsZero() {
		resp.FetchedAt = v.FetchedAt.Format(time.RFC3339)
	}
	return j.JSON(resp)
}

// Hydration outputs a logged water entry in JSON format.
func (j *JSONFormatter) Hydration(v HydrationView) error {
	return j.JSON(HydrationResponse{
		Status:       "logged",
		AmountML:     v.AmountML,
		TodayTotalML: v.TotalML,
		GoalML:       model.DailyHydrationGoalML,
		Progress:     model.HydrationProgress(v.TotalML),
		Level:        string(model.HydrationStatus(v.TotalML)),
		Synced:       v.Synced,
	})
}

// Stretch outputs a logged stretch in JSON format.
func (j *JSONFormatter) Stretch(v StretchView) error {
	return j.JSON(StretchResponse{
		Status:      "logged",
		Type:        v.Type,
		DurationMin: v.DurationMin,
		TodayCount:  v.Count,
		Synced:      v.Synced,
	})
}

// StretchTypes outputs the stretch catalog in JSON format.
func (j *JSONFormatter) StretchTypes(types []model.StretchType) error {
	return j.JSON(StretchTypesResponse{Stretches: types})
}

// Today outputs the day summary in JSON format.
func (j *JSONFormatter) Today(v TodayView) error {
	hydration := v.Hydration
	if hydration == nil {
		hydration = []model.HydrationLog{}
	}
	stretches := v.Stretches
	if stretches == nil {
		stretches = []model.StretchLog{}
	}
	total := v.TotalML()
	return j.JSON(TodayResponse{
		Date:         FormatDate(v.Date),
		Store:        v.Store,
		HydrationML:  total,
		GoalML:       model.DailyHydrationGoalML,
		Level:        string(model.HydrationStatus(total)),
		Hydration:    hydration,
		StretchCount: len(stretches),
		Stretches:    stretches,
	})
}

// Sleep outputs the sleep summary in JSON format.
func (j *JSONFormatter) Sleep(s reminder.Stats) error {
	return j.JSON(s)
}

// Settings outputs the settings listing in JSON format.
func (j *JSONFormatter) Settings(v SettingsView) error {
	rows := v.Rows
	if rows == nil {
		rows = []SettingRow{}
	}
	return j.JSON(SettingsResponse{Settings: rows, Source: v.Source, Store: v.Store})
}

// Saved outputs a preference change in JSON format.
func (j *JSONFormatter) Saved(v SavedView) error {
	return j.JSON(SavedResponse{
		Status: v.Action,
		Key:    v.Key,
		Value:  v.Value,
		Synced: v.Synced,
	})
}

// Error outputs an error in JSON format.
func (j *JSONFormatter) Error(err error) error {
	return j.JSON(ErrorResponse{
		Status:     "error",
		Category:   apperrors.Classify(err).String(),
		Error:      err.Error(),
		Suggestion: apperrors.GetSuggestion(err),
	})
}
