// Package reminder holds the rules that decide when the dashboard nudges
// the user to drink, stretch, or head to bed.
package reminder

import (
	"time"

	"github.com/manav03panchal/healthdash/internal/model"
)

// HydrationDue reports whether a hydration reminder should fire.
// A zero last time means no reminder has fired yet.
func HydrationDue(now, last time.Time, w model.WeatherSnapshot, prefs model.Preferences) bool {
	prefs = prefs.WithDefaults()
	if !last.IsZero() {
		if now.Sub(last) < prefs.HydrationCooldown() {
			return false
		}
	}
	return HydrationWeatherTriggered(w, prefs)
}

// HydrationWeatherTriggered reports whether any weather threshold is crossed.
func HydrationWeatherTriggered(w model.WeatherSnapshot, prefs model.Preferences) bool {
	prefs = prefs.WithDefaults()
	return float64(w.TemperatureC) > prefs.HydrationThresholdTemp ||
		w.Humidity < prefs.HydrationThresholdHumidity ||
		w.UVIndex > prefs.HydrationThresholdUV
}

// HydrationGate tracks the visible hydration prompt and its cooldown.
type HydrationGate struct {
	LastReminder time.Time
	visible      bool
}

// Evaluate shows the prompt when a reminder is due and stamps the
// reminder time. It returns true only when the prompt newly fires.
func (g *HydrationGate) Evaluate(now time.Time, w model.WeatherSnapshot, prefs model.Preferences) bool {
	if !HydrationDue(now, g.LastReminder, w, prefs) {
		return false
	}
	g.visible = true
	g.LastReminder = now
	return true
}

// Dismiss hides the prompt and restarts the cooldown.
func (g *HydrationGate) Dismiss(now time.Time) {
	g.visible = false
	g.LastReminder = now
}

// Logged hides the prompt after water was recorded. The cooldown is
// left untouched.
func (g *HydrationGate) Logged() {
	g.visible = false
}

// Visible reports whether the prompt is showing.
func (g *HydrationGate) Visible() bool {
	return g.visible
}
