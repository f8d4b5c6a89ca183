package weather

import "github.com/manav03panchal/healthdash/internal/model"

// Alert thresholds.
const (
	HighTemperatureC = 30
	StrongUV         = 6
	LowHumidity      = 30
)

// Alerts derives health alerts from a snapshot, in a fixed order:
// temperature, UV, humidity.
func Alerts(s model.WeatherSnapshot) []model.WeatherAlert {
	var alerts []model.WeatherAlert
	if s.TemperatureC > HighTemperatureC {
		alerts = append(alerts, model.WeatherAlert{
			Level:   model.AlertWarning,
			Message: "High temperature today. Stay hydrated and avoid prolonged sun exposure.",
		})
	}
	if s.UVIndex > StrongUV {
		alerts = append(alerts, model.WeatherAlert{
			Level:   model.AlertWarning,
			Message: "UV index is strong. Limit sun exposure and use sunscreen.",
		})
	}
	if s.Humidity < LowHumidity {
		alerts = append(alerts, model.WeatherAlert{
			Level:   model.AlertInfo,
			Message: "Low humidity detected. Increase water intake to prevent dehydration.",
		})
	}
	return alerts
}
