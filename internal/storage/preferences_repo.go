package storage

import (
	"encoding/json"
	"errors"

	"github.com/manav03panchal/healthdash/internal/logging"
	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/validate"
)

// PreferencesRepo provides operations for the cached Preferences singleton.
type PreferencesRepo struct {
	db *DB
}

// NewPreferencesRepo creates a new preferences repository.
func NewPreferencesRepo(db *DB) *PreferencesRepo {
	return &PreferencesRepo{db: db}
}

// Get retrieves the cached preferences, returning defaults if not set.
// A record that no longer decodes is treated as absent.
func (r *PreferencesRepo) Get() (*model.Preferences, error) {
	prefs := &model.Preferences{}
	err := r.db.Get(model.KeyPreferences, prefs)
	if err == nil {
		filled := prefs.WithDefaults()
		return &filled, nil
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		logging.Warn("cached preferences unreadable, using defaults", logging.KeyError, err)
		return model.DefaultPreferences(), nil
	}

	if !IsErrKeyNotFound(err) {
		return nil, err
	}

	// Return defaults (don't persist until explicitly set)
	return model.DefaultPreferences(), nil
}

// Set stores the full preferences record.
func (r *PreferencesRepo) Set(prefs *model.Preferences) error {
	if err := validate.Preferences(*prefs); err != nil {
		return err
	}
	stored := *prefs
	stored.SetKey(model.KeyPreferences)
	return r.db.Set(&stored)
}

// Reset removes the cached record so Get returns defaults again.
func (r *PreferencesRepo) Reset() error {
	return r.db.Delete(model.KeyPreferences)
}

// IsSet reports whether preferences have been persisted.
func (r *PreferencesRepo) IsSet() (bool, error) {
	return r.db.Exists(model.KeyPreferences)
}
