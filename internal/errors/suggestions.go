package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrInvalidClockTime:   "Use 24-hour HH:MM like '22:30', or a phrase like '10:30pm'.",
	ErrInvalidAmount:      "Give the amount in millilitres, e.g. '250', '500ml' or '0.75l'.",
	ErrOutOfRange:         "Run 'healthdash config get' to see the allowed ranges.",
	ErrUnknownSetting:     "Run 'healthdash config get' to list setting keys.",
	ErrUnknownStretch:     "Run 'healthdash stretch list' to see stretch types.",
	ErrStoreNotConfigured: "Set HEALTHDASH_REST_URL and HEALTHDASH_REST_KEY, or HEALTHDASH_POSTGRES_URL, to enable sync.",
	ErrStoreUnavailable:   "Changes were kept in the local cache. Retry once the store is reachable.",
	ErrNetworkUnavailable: "Check your internet connection.",
	ErrDatabaseCorrupted:  "Remove the local cache directory (~/.local/share/healthdash/) to rebuild it.",
	ErrPermissionDenied:   "Check file permissions in your data directory (~/.local/share/healthdash/).",
	ErrDiskFull:           "Free up disk space and try again. Changes already sent to the remote store are safe.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}
	return ""
}

// FormatError formats an error with its suggestion, if any.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
