package validate

import (
	"strings"
	"unicode"
)

// MaxLabelLength bounds free-form labels such as custom stretch names.
const MaxLabelLength = 64

// SanitizeLabel trims a label, drops control characters and null bytes,
// and caps its length in runes.
func SanitizeLabel(s string) string {
	s = strings.TrimSpace(s)

	var sb strings.Builder
	n := 0
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		if n == MaxLabelLength {
			break
		}
		sb.WriteRune(r)
		n++
	}
	return strings.TrimSpace(sb.String())
}
