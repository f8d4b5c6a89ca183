// Package postgres implements remote.Store directly over a Postgres
// database using a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manav03panchal/healthdash/internal/logging"
	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/remote"
)

// Schema creates the tables the store needs. Statements are idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS preferences (
	id uuid PRIMARY KEY,
	hydration_threshold_temp double precision,
	hydration_threshold_humidity double precision,
	hydration_threshold_uv double precision,
	hydration_interval integer,
	stretch_interval integer,
	sleep_time text,
	wake_time text,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS hydration_logs (
	id uuid PRIMARY KEY,
	amount integer NOT NULL,
	weather_temp double precision,
	weather_humidity double precision,
	logged_at timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS hydration_logs_logged_at_idx ON hydration_logs (logged_at DESC);
CREATE TABLE IF NOT EXISTS stretch_logs (
	id uuid PRIMARY KEY,
	type text NOT NULL,
	duration integer NOT NULL,
	logged_at timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS stretch_logs_logged_at_idx ON stretch_logs (logged_at DESC);
`

const (
	selectPreferences = `
		SELECT id::text, hydration_threshold_temp, hydration_threshold_humidity,
			hydration_threshold_uv, hydration_interval, stretch_interval,
			sleep_time::text, wake_time::text, updated_at
		FROM preferences
		WHERE id = $1
	`

	// upsertPreferences keeps the stored value for every NULL (absent) field.
	upsertPreferences = `
		INSERT INTO preferences (
			id, hydration_threshold_temp, hydration_threshold_humidity,
			hydration_threshold_uv, hydration_interval, stretch_interval,
			sleep_time, wake_time, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, now()))
		ON CONFLICT (id) DO UPDATE SET
			hydration_threshold_temp = COALESCE(EXCLUDED.hydration_threshold_temp, preferences.hydration_threshold_temp),
			hydration_threshold_humidity = COALESCE(EXCLUDED.hydration_threshold_humidity, preferences.hydration_threshold_humidity),
			hydration_threshold_uv = COALESCE(EXCLUDED.hydration_threshold_uv, preferences.hydration_threshold_uv),
			hydration_interval = COALESCE(EXCLUDED.hydration_interval, preferences.hydration_interval),
			stretch_interval = COALESCE(EXCLUDED.stretch_interval, preferences.stretch_interval),
			sleep_time = COALESCE(EXCLUDED.sleep_time, preferences.sleep_time),
			wake_time = COALESCE(EXCLUDED.wake_time, preferences.wake_time),
			updated_at = EXCLUDED.updated_at
	`

	insertHydration = `
		INSERT INTO hydration_logs (id, amount, weather_temp, weather_humidity)
		VALUES ($1, $2, $3, $4)
	`

	insertStretch = `
		INSERT INTO stretch_logs (id, type, duration)
		VALUES ($1, $2, $3)
	`

	listHydration = `
		SELECT id::text, amount, weather_temp, weather_humidity, logged_at
		FROM hydration_logs
		WHERE logged_at >= $1
		ORDER BY logged_at DESC
	`

	listStretch = `
		SELECT id::text, type, duration, logged_at
		FROM stretch_logs
		WHERE logged_at >= $1
		ORDER BY logged_at DESC
	`
)

// DB is the subset of pgxpool.Pool the store uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is a Postgres-backed remote.Store.
type Store struct {
	db    DB
	close func()
}

var _ remote.Store = (*Store)(nil)

// New wraps an existing connection or pool.
func New(db DB) *Store {
	return &Store{db: db}
}

// Open creates a pool for databaseURL and verifies it with a ping.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse postgres url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logging.Warn("postgres ping failed", logging.KeyURL, logging.MaskURL(databaseURL), logging.KeyError, err)
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return &Store{db: pool, close: pool.Close}, nil
}

// Migrate applies Schema.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("migrate postgres schema: %w", err)
	}
	return nil
}

func (s *Store) Name() string { return "postgres" }

// Close releases the pool if Open created it.
func (s *Store) Close() error {
	if s.close != nil {
		s.close()
	}
	return nil
}

func (s *Store) GetPreferences(ctx context.Context, id uuid.UUID) (*remote.PreferencesRecord, error) {
	var (
		rec   remote.PreferencesRecord
		rowID string
	)
	err := s.db.QueryRow(ctx, selectPreferences, id.String()).Scan(
		&rowID,
		&rec.HydrationThresholdTemp,
		&rec.HydrationThresholdHumidity,
		&rec.HydrationThresholdUV,
		&rec.HydrationInterval,
		&rec.StretchInterval,
		&rec.SleepTime,
		&rec.WakeTime,
		&rec.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, remote.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query preferences: %w", err)
	}

	parsed, err := uuid.Parse(rowID)
	if err != nil {
		return nil, fmt.Errorf("parse preferences id: %w", err)
	}
	rec.ID = parsed
	return &rec, nil
}

func (s *Store) UpsertPreferences(ctx context.Context, rec remote.PreferencesRecord) error {
	_, err := s.db.Exec(ctx, upsertPreferences, upsertArgs(rec)...)
	if err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}

func upsertArgs(rec remote.PreferencesRecord) []any {
	return []any{
		rec.ID.String(),
		rec.HydrationThresholdTemp,
		rec.HydrationThresholdHumidity,
		rec.HydrationThresholdUV,
		rec.HydrationInterval,
		rec.StretchInterval,
		rec.SleepTime,
		rec.WakeTime,
		rec.UpdatedAt,
	}
}

func (s *Store) InsertHydration(ctx context.Context, in remote.HydrationInsert) error {
	_, err := s.db.Exec(ctx, insertHydration, uuid.NewString(), in.AmountML, in.WeatherTemp, in.WeatherHumidity)
	if err != nil {
		return fmt.Errorf("insert hydration log: %w", err)
	}
	return nil
}

func (s *Store) InsertStretch(ctx context.Context, in remote.StretchInsert) error {
	_, err := s.db.Exec(ctx, insertStretch, uuid.NewString(), in.Type, in.DurationMin)
	if err != nil {
		return fmt.Errorf("insert stretch log: %w", err)
	}
	return nil
}

func (s *Store) ListHydrationSince(ctx context.Context, since time.Time) ([]model.HydrationLog, error) {
	rows, err := s.db.Query(ctx, listHydration, since)
	if err != nil {
		return nil, fmt.Errorf("query hydration logs: %w", err)
	}
	defer rows.Close()

	logs := []model.HydrationLog{}
	for rows.Next() {
		var l model.HydrationLog
		if err := rows.Scan(&l.ID, &l.AmountML, &l.WeatherTemp, &l.WeatherHumidity, &l.LoggedAt); err != nil {
			return nil, fmt.Errorf("scan hydration log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hydration logs: %w", err)
	}
	return logs, nil
}

func (s *Store) ListStretchSince(ctx context.Context, since time.Time) ([]model.StretchLog, error) {
	rows, err := s.db.Query(ctx, listStretch, since)
	if err != nil {
		return nil, fmt.Errorf("query stretch logs: %w", err)
	}
	defer rows.Close()

	logs := []model.StretchLog{}
	for rows.Next() {
		var l model.StretchLog
		if err := rows.Scan(&l.ID, &l.Type, &l.DurationMin, &l.LoggedAt); err != nil {
			return nil, fmt.Errorf("scan stretch log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stretch logs: %w", err)
	}
	return logs, nil
}
