package remote

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/manav03panchal/healthdash/internal/model"
)

// Memory is an in-process Store. It backs tests and `--store memory`
// sessions that should not touch the network.
type Memory struct {
	mu        sync.Mutex
	now       func() time.Time
	prefs     map[uuid.UUID]PreferencesRecord
	hydration []model.HydrationLog
	stretches []model.StretchLog
	err       error
	calls     int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		now:   time.Now,
		prefs: make(map[uuid.UUID]PreferencesRecord),
	}
}

// SetNow overrides the clock used for logged_at.
func (m *Memory) SetNow(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// FailWith makes every subsequent call return err; nil restores normal operation.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many Store methods have been invoked.
func (m *Memory) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *Memory) enter() error {
	m.mu.Lock()
	m.calls++
	return m.err
}

func (*Memory) Name() string { return "memory" }

func (m *Memory) GetPreferences(_ context.Context, id uuid.UUID) (*PreferencesRecord, error) {
	err := m.enter()
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	rec, ok := m.prefs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

// UpsertPreferences merges present fields into the existing row.
func (m *Memory) UpsertPreferences(_ context.Context, rec PreferencesRecord) error {
	err := m.enter()
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	cur := m.prefs[rec.ID]
	cur.ID = rec.ID
	if rec.HydrationThresholdTemp != nil {
		cur.HydrationThresholdTemp = rec.HydrationThresholdTemp
	}
	if rec.HydrationThresholdHumidity != nil {
		cur.HydrationThresholdHumidity = rec.HydrationThresholdHumidity
	}
	if rec.HydrationThresholdUV != nil {
		cur.HydrationThresholdUV = rec.HydrationThresholdUV
	}
	if rec.HydrationInterval != nil {
		cur.HydrationInterval = rec.HydrationInterval
	}
	if rec.StretchInterval != nil {
		cur.StretchInterval = rec.StretchInterval
	}
	if rec.SleepTime != nil {
		cur.SleepTime = rec.SleepTime
	}
	if rec.WakeTime != nil {
		cur.WakeTime = rec.WakeTime
	}
	if rec.UpdatedAt != nil {
		cur.UpdatedAt = rec.UpdatedAt
	}
	m.prefs[rec.ID] = cur
	return nil
}

func (m *Memory) InsertHydration(_ context.Context, in HydrationInsert) error {
	err := m.enter()
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	m.hydration = append(m.hydration, model.HydrationLog{
		ID:              uuid.NewString(),
		AmountML:        in.AmountML,
		LoggedAt:        m.now(),
		WeatherTemp:     in.WeatherTemp,
		WeatherHumidity: in.WeatherHumidity,
	})
	return nil
}

func (m *Memory) InsertStretch(_ context.Context, in StretchInsert) error {
	err := m.enter()
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	m.stretches = append(m.stretches, model.StretchLog{
		ID:          uuid.NewString(),
		Type:        in.Type,
		DurationMin: in.DurationMin,
		LoggedAt:    m.now(),
	})
	return nil
}

func (m *Memory) ListHydrationSince(_ context.Context, since time.Time) ([]model.HydrationLog, error) {
	err := m.enter()
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := []model.HydrationLog{}
	for _, l := range m.hydration {
		if !l.LoggedAt.Before(since) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].LoggedAt.After(out[j].LoggedAt) })
	return out, nil
}

func (m *Memory) ListStretchSince(_ context.Context, since time.Time) ([]model.StretchLog, error) {
	err := m.enter()
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := []model.StretchLog{}
	for _, l := range m.stretches {
		if !l.LoggedAt.Before(since) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].LoggedAt.After(out[j].LoggedAt) })
	return out, nil
}

// AddHydration appends a pre-dated entry.
func (m *Memory) AddHydration(l model.HydrationLog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hydration = append(m.hydration, l)
}

// AddStretch appends a pre-dated entry.
func (m *Memory) AddStretch(l model.StretchLog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stretches = append(m.stretches, l)
}

func (*Memory) Close() error { return nil }
