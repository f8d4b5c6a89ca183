package reminder

import (
	"math"
	"time"

	"github.com/manav03panchal/healthdash/internal/model"
)

// Sleep recommendation messages.
const (
	RecBedtime   = "It's bedtime! Wind down and prepare for sleep."
	RecEvening   = "Evening time - consider reducing screen brightness and avoiding caffeine."
	RecMorning   = "Good morning! Get some natural light to help regulate your circadian rhythm."
	RecAfternoon = "Afternoon dip is normal. Avoid long naps to maintain night sleep quality."
	RecMaintain  = "Maintain consistent energy with regular meals and movement."
)

// HoursUntil returns the hours from now until the next occurrence of the
// clock time, rounded to a tenth. A clock time at or before now rolls
// to tomorrow, so the result is never negative.
func HoursUntil(now time.Time, at model.ClockTime) float64 {
	next := at.On(now)
	if !next.After(now) {
		next = at.On(now.AddDate(0, 0, 1))
	}
	hours := next.Sub(now).Hours()
	return math.Round(hours*10) / 10
}

// SleepDuration returns the hours between sleep and wake, wrapping past
// midnight when wake is at or before sleep.
func SleepDuration(sleep, wake model.ClockTime) float64 {
	d := float64(wake.Hour-sleep.Hour) + float64(wake.Minute-sleep.Minute)/60
	if d <= 0 {
		d += 24
	}
	return d
}

// Recommendation picks the advice for the current hour.
func Recommendation(now time.Time, sleep model.ClockTime) string {
	h := now.Hour()
	switch {
	case h >= 21 || h <= 6:
		if h >= sleep.Hour || h <= 2 {
			return RecBedtime
		}
		return RecEvening
	case h <= 10:
		return RecMorning
	case h >= 14 && h <= 16:
		return RecAfternoon
	default:
		return RecMaintain
	}
}

// Quality grades a planned sleep duration.
type Quality string

const (
	QualityShort      Quality = "short"
	QualityBorderline Quality = "borderline"
	QualityHealthy    Quality = "healthy"
	QualityLong       Quality = "long"
)

// Color returns the display color for the band.
func (q Quality) Color() string {
	switch q {
	case QualityShort:
		return "red"
	case QualityBorderline:
		return "orange"
	case QualityHealthy:
		return "green"
	default:
		return "blue"
	}
}

// SleepQuality bands a sleep duration in hours.
func SleepQuality(hours float64) Quality {
	switch {
	case hours < 6:
		return QualityShort
	case hours < 7:
		return QualityBorderline
	case hours <= 9:
		return QualityHealthy
	default:
		return QualityLong
	}
}

// Stats is the sleep panel summary.
type Stats struct {
	SleepTime         string  `json:"sleep_time"`
	WakeTime          string  `json:"wake_time"`
	HoursUntilBedtime float64 `json:"hours_until_bedtime"`
	HoursUntilWakeup  float64 `json:"hours_until_wakeup"`
	Duration          float64 `json:"duration_hours"`
	Quality           Quality `json:"quality"`
	Recommendation    string  `json:"recommendation"`
}

// SleepStats computes the sleep panel for the given preferences.
func SleepStats(now time.Time, prefs model.Preferences) Stats {
	sleep, wake := prefs.Sleep(), prefs.Wake()
	dur := SleepDuration(sleep, wake)
	return Stats{
		SleepTime:         sleep.String(),
		WakeTime:          wake.String(),
		HoursUntilBedtime: HoursUntil(now, sleep),
		HoursUntilWakeup:  HoursUntil(now, wake),
		Duration:          dur,
		Quality:           SleepQuality(dur),
		Recommendation:    Recommendation(now, sleep),
	}
}
