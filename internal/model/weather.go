package model

// WeatherSnapshot is a normalized current-conditions record. It is
// recomputed wholesale on every fetch.
type WeatherSnapshot struct {
	TemperatureC int     `json:"temperature"`
	Humidity     float64 `json:"humidity"`
	UVIndex      float64 `json:"uv_index"`
	WeatherCode  int     `json:"weather_code"`
	IsDay        bool    `json:"is_day"`
}

// DefaultWeather returns the snapshot used whenever a fetch fails.
func DefaultWeather() WeatherSnapshot {
	return WeatherSnapshot{
		TemperatureC: 20,
		Humidity:     50,
		UVIndex:      3,
		WeatherCode:  0,
		IsDay:        true,
	}
}

// AlertLevel is the severity of a weather health alert.
type AlertLevel string

const (
	AlertWarning AlertLevel = "warning"
	AlertInfo    AlertLevel = "info"
)

// WeatherAlert is a health hint derived from current conditions.
type WeatherAlert struct {
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
}
