package weather

var descriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	95: "Thunderstorm",
	96: "Thunderstorm with hail",
	99: "Thunderstorm with heavy hail",
}

// Describe maps a WMO weather code to text.
func Describe(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return "Unknown"
}

// Condition is a coarse sky category used for icons.
type Condition string

const (
	ConditionClear  Condition = "clear"
	ConditionNight  Condition = "night"
	ConditionCloudy Condition = "cloudy"
	ConditionRain   Condition = "rain"
	ConditionOther  Condition = "other"
)

// Classify buckets a WMO code into a Condition.
func Classify(code int, isDay bool) Condition {
	switch {
	case code == 0 && isDay:
		return ConditionClear
	case code == 0:
		return ConditionNight
	case code <= 3:
		return ConditionCloudy
	case code >= 61 && code <= 82:
		return ConditionRain
	default:
		return ConditionOther
	}
}

// Icon returns a single glyph for the condition.
func (c Condition) Icon() string {
	switch c {
	case ConditionClear:
		return "☀"
	case ConditionNight:
		return "☾"
	case ConditionCloudy:
		return "☁"
	case ConditionRain:
		return "☂"
	default:
		return "≋"
	}
}
