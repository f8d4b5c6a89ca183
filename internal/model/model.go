// Package model defines the domain models for healthdash.
package model

// Model is the interface that all locally cached models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// Key constants for the local cache.
const (
	// KeyPreferences holds the serialized preferences object.
	KeyPreferences = "health-tracker-prefs"
)
