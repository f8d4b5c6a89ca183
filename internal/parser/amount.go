package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// millilitres per fluid ounce (US).
const mlPerOunce = 29.5735

// amountPattern matches "250", "250ml", "0.75 l", "12oz".
var amountPattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(ml|millilitres?|milliliters?|cl|l|litres?|liters?|oz|ounces?)?$`)

// ParseAmount parses a hydration amount and returns whole millilitres.
func ParseAmount(input string) (int, error) {
	input = strings.TrimSpace(input)
	matches := amountPattern.FindStringSubmatch(input)
	if matches == nil {
		return 0, NewAmountError(input)
	}

	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, NewAmountError(input)
	}

	ml := value * unitToML(strings.ToLower(matches[2]))
	rounded := int(math.Round(ml))
	if rounded <= 0 {
		return 0, NewAmountError(input)
	}
	return rounded, nil
}

func unitToML(unit string) float64 {
	switch {
	case unit == "" || strings.HasPrefix(unit, "ml") || strings.HasPrefix(unit, "milli"):
		return 1
	case unit == "cl":
		return 10
	case unit == "oz" || strings.HasPrefix(unit, "ounce"):
		return mlPerOunce
	default:
		return 1000
	}
}
