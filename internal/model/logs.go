package model

import "time"

// DailyHydrationGoalML is the daily water intake goal.
const DailyHydrationGoalML = 2000

// HydrationLog is an append-only water intake entry.
type HydrationLog struct {
	ID              string    `json:"id"`
	AmountML        int       `json:"amount"`
	LoggedAt        time.Time `json:"logged_at"`
	WeatherTemp     *float64  `json:"weather_temp,omitempty"`
	WeatherHumidity *float64  `json:"weather_humidity,omitempty"`
}

// StretchLog is an append-only stretch entry.
type StretchLog struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	DurationMin int       `json:"duration"`
	LoggedAt    time.Time `json:"logged_at"`
}

// TotalHydration sums the amounts of the given entries.
func TotalHydration(logs []HydrationLog) int {
	total := 0
	for _, l := range logs {
		total += l.AmountML
	}
	return total
}

// HydrationLevel buckets the day's intake against the daily goal.
type HydrationLevel string

const (
	HydrationLow      HydrationLevel = "Low hydration"
	HydrationModerate HydrationLevel = "Moderate hydration"
	HydrationGood     HydrationLevel = "Good hydration"
)

// HydrationProgress returns the percentage of the daily goal reached, capped at 100.
func HydrationProgress(totalML int) float64 {
	pct := float64(totalML) / DailyHydrationGoalML * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// HydrationStatus returns the level for the given daily total.
func HydrationStatus(totalML int) HydrationLevel {
	pct := HydrationProgress(totalML)
	switch {
	case pct < 30:
		return HydrationLow
	case pct < 70:
		return HydrationModerate
	default:
		return HydrationGood
	}
}

// DailySummary is the only analytics the dashboard keeps: a same-day sum.
type DailySummary struct {
	Date        time.Time `json:"date"`
	HydrationML int       `json:"hydration_ml"`
	Stretches   int       `json:"stretches"`
}
