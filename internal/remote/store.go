// Package remote defines the hosted store that holds preferences and the
// append-only hydration and stretch logs, plus an offline stand-in.
package remote

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/model"
)

// PreferencesID is the fixed id of the single preferences row.
var PreferencesID = uuid.Nil

// ErrNotFound is returned by GetPreferences when no row exists.
var ErrNotFound = errors.ErrNotFound

// Store is a remote table API. Every method makes one attempt and returns
// the raw error; callers decide how to degrade.
type Store interface {
	// Name identifies the backend in logs.
	Name() string

	GetPreferences(ctx context.Context, id uuid.UUID) (*PreferencesRecord, error)
	UpsertPreferences(ctx context.Context, rec PreferencesRecord) error

	InsertHydration(ctx context.Context, in HydrationInsert) error
	InsertStretch(ctx context.Context, in StretchInsert) error

	// ListHydrationSince returns entries logged at or after since, newest first.
	ListHydrationSince(ctx context.Context, since time.Time) ([]model.HydrationLog, error)
	// ListStretchSince returns entries logged at or after since, newest first.
	ListStretchSince(ctx context.Context, since time.Time) ([]model.StretchLog, error)

	Close() error
}

// HydrationInsert is a new hydration_logs row. The store assigns id and logged_at.
type HydrationInsert struct {
	AmountML        int      `json:"amount"`
	WeatherTemp     *float64 `json:"weather_temp,omitempty"`
	WeatherHumidity *float64 `json:"weather_humidity,omitempty"`
}

// StretchInsert is a new stretch_logs row. The store assigns id and logged_at.
type StretchInsert struct {
	Type        string `json:"type"`
	DurationMin int    `json:"duration"`
}
