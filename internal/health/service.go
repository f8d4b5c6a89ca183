// Package health is the fail-soft layer over the remote store. Every
// operation logs its failure and returns a neutral value (nil, false or an
// empty slice) instead of an error.
package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/manav03panchal/healthdash/internal/logging"
	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/remote"
	"github.com/manav03panchal/healthdash/internal/scheduler"
	"github.com/manav03panchal/healthdash/internal/validate"
)

// Service reads and writes preferences and daily logs.
type Service struct {
	store remote.Store
	clock scheduler.Clock
	log   *slog.Logger
}

// NewService creates a service over store. A nil store behaves as offline.
func NewService(store remote.Store, clock scheduler.Clock) *Service {
	if store == nil {
		store = remote.NewOffline()
	}
	if clock == nil {
		clock = scheduler.SystemClock{}
	}
	return &Service{
		store: store,
		clock: clock,
		log:   logging.Component("health").With(logging.KeyStore, store.Name()),
	}
}

// StoreName identifies the backing store.
func (s *Service) StoreName() string {
	return s.store.Name()
}

// GetPreferencesPatch fetches only the fields the remote row has set. It
// reports false on any failure, including when no row exists yet.
func (s *Service) GetPreferencesPatch(ctx context.Context) (model.PreferencesPatch, bool) {
	rec, err := s.store.GetPreferences(ctx, remote.PreferencesID)
	if err != nil {
		s.log.Warn("error fetching preferences", logging.KeyError, err)
		return model.PreferencesPatch{}, false
	}
	return rec.Patch(), true
}

// UpdatePreferences upserts prefs on the fixed id with updated_at set to now.
func (s *Service) UpdatePreferences(ctx context.Context, prefs model.Preferences) bool {
	rec := remote.RecordFromPreferences(remote.PreferencesID, prefs, s.clock.Now())
	if err := s.store.UpsertPreferences(ctx, rec); err != nil {
		s.log.Warn("error updating preferences", logging.KeyError, err)
		return false
	}
	return true
}

// LogHydration records a water intake entry with the conditions at the time.
func (s *Service) LogHydration(ctx context.Context, amountML int, temp, humidity *float64) bool {
	if err := validate.Amount(amountML); err != nil {
		s.log.Warn("error logging hydration", logging.KeyError, err)
		return false
	}
	err := s.store.InsertHydration(ctx, remote.HydrationInsert{
		AmountML:        amountML,
		WeatherTemp:     temp,
		WeatherHumidity: humidity,
	})
	if err != nil {
		s.log.Warn("error logging hydration", logging.KeyAmount, amountML, logging.KeyError, err)
		return false
	}
	logging.LogOperation("log_hydration", logging.KeyStore, s.store.Name(), logging.KeyAmount, amountML)
	return true
}

// LogStretch records a completed stretch.
func (s *Service) LogStretch(ctx context.Context, stretchType string, durationMin int) bool {
	stretchType = validate.SanitizeLabel(stretchType)
	if stretchType == "" {
		s.log.Warn("error logging stretch", logging.KeyError, "empty stretch type")
		return false
	}
	if err := validate.StretchMinutes(durationMin); err != nil {
		s.log.Warn("error logging stretch", logging.KeyError, err)
		return false
	}
	err := s.store.InsertStretch(ctx, remote.StretchInsert{Type: stretchType, DurationMin: durationMin})
	if err != nil {
		s.log.Warn("error logging stretch", logging.KeyStretch, stretchType, logging.KeyError, err)
		return false
	}
	logging.LogOperation("log_stretch", logging.KeyStore, s.store.Name(), logging.KeyStretch, stretchType)
	return true
}

// GetTodayHydrationLogs returns today's entries, newest first.
func (s *Service) GetTodayHydrationLogs(ctx context.Context) []model.HydrationLog {
	logs, err := s.store.ListHydrationSince(ctx, StartOfDay(s.clock.Now()))
	if err != nil {
		s.log.Warn("error fetching hydration logs", logging.KeyError, err)
		return []model.HydrationLog{}
	}
	if logs == nil {
		return []model.HydrationLog{}
	}
	return logs
}

// GetTodayStretchLogs returns today's entries, newest first.
func (s *Service) GetTodayStretchLogs(ctx context.Context) []model.StretchLog {
	logs, err := s.store.ListStretchSince(ctx, StartOfDay(s.clock.Now()))
	if err != nil {
		s.log.Warn("error fetching stretch logs", logging.KeyError, err)
		return []model.StretchLog{}
	}
	if logs == nil {
		return []model.StretchLog{}
	}
	return logs
}

// TodaySummary sums today's hydration and counts today's stretches.
func (s *Service) TodaySummary(ctx context.Context) model.DailySummary {
	hydration := s.GetTodayHydrationLogs(ctx)
	stretches := s.GetTodayStretchLogs(ctx)
	return model.DailySummary{
		Date:        StartOfDay(s.clock.Now()),
		HydrationML: model.TotalHydration(hydration),
		Stretches:   len(stretches),
	}
}

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
