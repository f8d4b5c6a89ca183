// Package config provides centralized configuration for healthdash runtime values.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backend names.
const (
	StoreAuto     = "auto"
	StoreOffline  = "offline"
	StoreREST     = "rest"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// RuntimeConfig holds all runtime configuration values read from the
// environment (and an optional .env file).
type RuntimeConfig struct {
	// Database is the local cache path; ":memory:" keeps it in memory.
	// Empty selects the XDG data directory.
	Database string `env:"HEALTHDASH_DATABASE"`

	Remote   RemoteConfig   `envPrefix:"HEALTHDASH_"`
	Location LocationConfig `envPrefix:"HEALTHDASH_"`
	HTTP     HTTPConfig     `envPrefix:"HEALTHDASH_HTTP_"`
	Refresh  RefreshConfig  `envPrefix:"HEALTHDASH_REFRESH_"`
}

// RemoteConfig selects and configures the remote preference/log store.
type RemoteConfig struct {
	// Store is one of auto, offline, memory, rest, postgres.
	// auto picks postgres when a DSN is set, then rest, else offline.
	Store string `env:"STORE" envDefault:"auto"`

	// RESTURL is the base URL of a PostgREST/Supabase project.
	RESTURL string `env:"REST_URL"`

	// RESTPath is the table API prefix under RESTURL.
	RESTPath string `env:"REST_PATH" envDefault:"/rest/v1"`

	// RESTKey is the anon API key sent with every REST request.
	RESTKey string `env:"REST_KEY"`

	// PostgresURL is a pgx connection string.
	PostgresURL string `env:"POSTGRES_URL"`
}

// LocationConfig holds weather location settings.
type LocationConfig struct {
	Latitude  *float64 `env:"LATITUDE"`
	Longitude *float64 `env:"LONGITUDE"`

	// IPLocate enables IP geolocation when no coordinates are configured.
	IPLocate bool `env:"IP_LOCATE" envDefault:"false"`

	// IPLocateURL is the IP geolocation endpoint.
	IPLocateURL string `env:"IP_LOCATE_URL" envDefault:"https://ipapi.co/json/"`

	// WeatherURL is the Open-Meteo base URL.
	WeatherURL string `env:"WEATHER_URL" envDefault:"https://api.open-meteo.com"`
}

// HTTPConfig holds HTTP client configuration.
type HTTPConfig struct {
	// Timeout is the per-request timeout for weather and REST calls.
	// Default: 10s
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// RefreshConfig holds the dashboard refresh periods.
type RefreshConfig struct {
	// Weather is how often the dashboard refetches weather.
	// Default: 30m
	Weather time.Duration `env:"WEATHER" envDefault:"30m"`

	// Clock is the UI tick period.
	// Default: 1s
	Clock time.Duration `env:"CLOCK" envDefault:"1s"`

	// Sleep is how often the sleep recommendation is recomputed.
	// Default: 1m
	Sleep time.Duration `env:"SLEEP" envDefault:"1m"`
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Remote: RemoteConfig{Store: StoreAuto, RESTPath: "/rest/v1"},
		Location: LocationConfig{
			IPLocateURL: "https://ipapi.co/json/",
			WeatherURL:  "https://api.open-meteo.com",
		},
		HTTP: HTTPConfig{Timeout: 10 * time.Second},
		Refresh: RefreshConfig{
			Weather: 30 * time.Minute,
			Clock:   time.Second,
			Sleep:   time.Minute,
		},
	}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv loads the first existing file from paths into the process
// environment. Variables already set are not overridden. It returns the
// path that was loaded, or "" when none exists.
func LoadDotEnv(paths ...string) (string, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return "", fmt.Errorf("load %s: %w", p, err)
		}
		return p, nil
	}
	return "", nil
}

// Load reads an optional .env file then parses the environment.
func Load() (*RuntimeConfig, error) {
	if _, err := LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg := &RuntimeConfig{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints the env tags cannot express.
func (c *RuntimeConfig) Validate() error {
	switch c.Remote.Store {
	case StoreAuto, StoreOffline, StoreMemory:
	case StoreREST:
		if c.Remote.RESTURL == "" {
			return fmt.Errorf("HEALTHDASH_STORE=rest requires HEALTHDASH_REST_URL")
		}
	case StorePostgres:
		if c.Remote.PostgresURL == "" {
			return fmt.Errorf("HEALTHDASH_STORE=postgres requires HEALTHDASH_POSTGRES_URL")
		}
	default:
		return fmt.Errorf("unknown HEALTHDASH_STORE %q (want auto, offline, memory, rest or postgres)", c.Remote.Store)
	}
	if (c.Location.Latitude == nil) != (c.Location.Longitude == nil) {
		return fmt.Errorf("HEALTHDASH_LATITUDE and HEALTHDASH_LONGITUDE must be set together")
	}
	if lat := c.Location.Latitude; lat != nil && (*lat < -90 || *lat > 90) {
		return fmt.Errorf("HEALTHDASH_LATITUDE out of range: %v", *lat)
	}
	if lon := c.Location.Longitude; lon != nil && (*lon < -180 || *lon > 180) {
		return fmt.Errorf("HEALTHDASH_LONGITUDE out of range: %v", *lon)
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("HEALTHDASH_HTTP_TIMEOUT must be positive")
	}
	if c.Refresh.Weather <= 0 || c.Refresh.Clock <= 0 || c.Refresh.Sleep <= 0 {
		return fmt.Errorf("refresh periods must be positive")
	}
	return nil
}

// StoreBackend resolves "auto" to a concrete backend name.
func (c *RuntimeConfig) StoreBackend() string {
	store := strings.ToLower(c.Remote.Store)
	if store != StoreAuto && store != "" {
		return store
	}
	switch {
	case c.Remote.PostgresURL != "":
		return StorePostgres
	case c.Remote.RESTURL != "":
		return StoreREST
	default:
		return StoreOffline
	}
}

// HasCoordinates reports whether static coordinates are configured.
func (c *RuntimeConfig) HasCoordinates() bool {
	return c.Location.Latitude != nil && c.Location.Longitude != nil
}
