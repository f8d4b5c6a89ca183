// Package settings owns the single in-session preferences object and keeps
// the local cache and the remote store in step with it.
package settings

import (
	"context"
	"sync"

	"github.com/manav03panchal/healthdash/internal/health"
	"github.com/manav03panchal/healthdash/internal/logging"
	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/storage"
	"github.com/manav03panchal/healthdash/internal/validate"
)

// Source reports where the current preferences came from.
type Source string

const (
	SourceDefaults Source = "defaults"
	SourceCache    Source = "cache"
	SourceRemote   Source = "remote"
)

// Manager holds the current preferences.
type Manager struct {
	cache  *storage.PreferencesRepo
	remote *health.Service

	mu      sync.RWMutex
	current model.Preferences
	source  Source
}

// NewManager creates a manager seeded with the defaults.
func NewManager(cache *storage.PreferencesRepo, remote *health.Service) *Manager {
	return &Manager{
		cache:   cache,
		remote:  remote,
		current: *model.DefaultPreferences(),
		source:  SourceDefaults,
	}
}

// Load reads the cached preferences, shallow-merges any fields the remote
// row has set over them, writes the merge back to the cache and makes it
// current. When the remote is unreachable the cached value stands.
func (m *Manager) Load(ctx context.Context) model.Preferences {
	local, err := m.cache.Get()
	if err != nil {
		logging.Warn("error reading cached preferences", logging.KeyError, err)
		local = model.DefaultPreferences()
	}
	cached, err := m.cache.IsSet()
	if err != nil {
		logging.Warn("error checking cached preferences", logging.KeyError, err)
	}

	merged := *local
	localSource := SourceDefaults
	if cached {
		localSource = SourceCache
	}
	source := localSource

	if patch, ok := m.remote.GetPreferencesPatch(ctx); ok {
		merged = local.Merge(patch).WithDefaults()
		source = SourceRemote
		if err := validate.Preferences(merged); err != nil {
			logging.Warn("remote preferences invalid, keeping local", logging.KeyError, err)
			merged = *local
			source = localSource
		} else if err := m.cache.Set(&merged); err != nil {
			logging.Warn("error caching preferences", logging.KeyError, err)
		}
	}

	m.mu.Lock()
	m.current = merged
	m.source = source
	m.mu.Unlock()
	return merged
}

// Save validates prefs, makes them current and writes them to the cache,
// then attempts the remote write. It returns whether the remote write
// succeeded; a validation or cache failure is returned as an error.
func (m *Manager) Save(ctx context.Context, prefs model.Preferences) (bool, error) {
	prefs = prefs.WithDefaults()
	if err := validate.Preferences(prefs); err != nil {
		return false, err
	}
	if err := m.cache.Set(&prefs); err != nil {
		return false, err
	}

	m.mu.Lock()
	m.current = prefs
	m.source = SourceCache
	m.mu.Unlock()

	if !m.remote.UpdatePreferences(ctx, prefs) {
		logging.Warn("saved locally instead")
		return false, nil
	}

	m.mu.Lock()
	m.source = SourceRemote
	m.mu.Unlock()
	return true, nil
}

// Reset restores the defaults locally and remotely.
func (m *Manager) Reset(ctx context.Context) (bool, error) {
	if err := m.cache.Reset(); err != nil {
		return false, err
	}
	return m.Save(ctx, *model.DefaultPreferences())
}

// Current returns a copy of the current preferences.
func (m *Manager) Current() model.Preferences {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Source reports where Current came from.
func (m *Manager) Source() Source {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.source
}
