package model

import (
	"strings"
	"time"
)

// StretchType is one entry of the stretch activity catalog.
type StretchType struct {
	Name        string `json:"name"`
	DurationMin int    `json:"duration"`
	Description string `json:"description"`
	// Shortcut is the dashboard key that starts this stretch.
	Shortcut string `json:"shortcut"`
}

// Duration returns the stretch length.
func (s StretchType) Duration() time.Duration {
	return time.Duration(s.DurationMin) * time.Minute
}

// DefaultStretchMinutes is used when a logged stretch type is unknown.
const DefaultStretchMinutes = 5

// ReminderMenuSize is how many catalog entries a stretch reminder offers.
const ReminderMenuSize = 3

var stretchCatalog = []StretchType{
	{Name: "Neck & Shoulders", DurationMin: 5, Description: "Gentle neck rolls and shoulder shrugs", Shortcut: "n"},
	{Name: "Back Stretch", DurationMin: 5, Description: "Seated spinal twist and back extension", Shortcut: "b"},
	{Name: "Leg Stretch", DurationMin: 5, Description: "Calf raises and leg extensions", Shortcut: "l"},
	{Name: "Eye Rest", DurationMin: 2, Description: "Look away from screen and blink exercises", Shortcut: "e"},
	{Name: "Full Body", DurationMin: 10, Description: "Complete stretching routine", Shortcut: "f"},
}

// StretchTypes returns a copy of the full catalog.
func StretchTypes() []StretchType {
	out := make([]StretchType, len(stretchCatalog))
	copy(out, stretchCatalog)
	return out
}

// ReminderMenu returns the stretches offered when a reminder fires.
func ReminderMenu() []StretchType {
	return StretchTypes()[:ReminderMenuSize]
}

// FindStretchType looks a stretch up by name, shortcut, or a
// case-insensitive slug such as "neck" or "full-body".
func FindStretchType(query string) (StretchType, bool) {
	q := normalizeStretchName(query)
	if q == "" {
		return StretchType{}, false
	}
	for _, s := range stretchCatalog {
		if s.Shortcut == q || normalizeStretchName(s.Name) == q {
			return s, true
		}
	}
	for _, s := range stretchCatalog {
		if strings.HasPrefix(normalizeStretchName(s.Name), q) {
			return s, true
		}
	}
	return StretchType{}, false
}

// StretchDuration returns the catalog duration for a stretch name.
func StretchDuration(name string) int {
	if s, ok := FindStretchType(name); ok {
		return s.DurationMin
	}
	return DefaultStretchMinutes
}

func normalizeStretchName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer("&", "", "-", "", "_", "", " ", "")
	return r.Replace(s)
}
