package remote

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/model"
)

// Offline is the Store used when no remote backend is configured.
// Every call fails with ErrStoreNotConfigured.
type Offline struct{}

// NewOffline returns an offline store.
func NewOffline() *Offline { return &Offline{} }

func (*Offline) Name() string { return "offline" }

func (*Offline) GetPreferences(context.Context, uuid.UUID) (*PreferencesRecord, error) {
	return nil, errors.ErrStoreNotConfigured
}

func (*Offline) UpsertPreferences(context.Context, PreferencesRecord) error {
	return errors.ErrStoreNotConfigured
}

func (*Offline) InsertHydration(context.Context, HydrationInsert) error {
	return errors.ErrStoreNotConfigured
}

func (*Offline) InsertStretch(context.Context, StretchInsert) error {
	return errors.ErrStoreNotConfigured
}

func (*Offline) ListHydrationSince(context.Context, time.Time) ([]model.HydrationLog, error) {
	return nil, errors.ErrStoreNotConfigured
}

func (*Offline) ListStretchSince(context.Context, time.Time) ([]model.StretchLog, error) {
	return nil, errors.ErrStoreNotConfigured
}

func (*Offline) Close() error { return nil }
