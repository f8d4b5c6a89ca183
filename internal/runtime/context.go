// Package runtime wires configuration, the local cache, the remote store,
// and the services every command needs.
package runtime

import (
	"context"
	"time"

	"github.com/manav03panchal/healthdash/internal/config"
	"github.com/manav03panchal/healthdash/internal/health"
	"github.com/manav03panchal/healthdash/internal/logging"
	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/output"
	"github.com/manav03panchal/healthdash/internal/remote"
	"github.com/manav03panchal/healthdash/internal/remote/postgres"
	"github.com/manav03panchal/healthdash/internal/remote/rest"
	"github.com/manav03panchal/healthdash/internal/scheduler"
	"github.com/manav03panchal/healthdash/internal/settings"
	"github.com/manav03panchal/healthdash/internal/storage"
	"github.com/manav03panchal/healthdash/internal/weather"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	DB        *storage.DB
	Formatter *output.Formatter
	Clock     scheduler.Clock

	Prefs    *storage.PreferencesRepo
	Store    remote.Store
	Health   *health.Service
	Settings *settings.Manager

	Weather  *weather.Client
	Locators []weather.Locator

	// CacheFallback is set when the on-disk cache was locked by another
	// process and an in-memory cache is used instead.
	CacheFallback bool

	Debug bool
}

// Options configures the runtime context.
type Options struct {
	// Config is the loaded environment configuration. Nil uses defaults.
	Config    *config.RuntimeConfig
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool

	// Clock overrides the wall clock.
	Clock scheduler.Clock
	// Store overrides the configured remote store.
	Store remote.Store
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(ctx context.Context, opts Options) (*Context, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultRuntimeConfig()
	}

	if cfg.Database != "" {
		if cfg.Database == storage.MemoryPath {
			opts.InMemory = true
		} else {
			opts.DBPath = cfg.Database
		}
	}
	if opts.DBPath == "" && !opts.InMemory {
		opts.DBPath = storage.DefaultPath()
	}

	db, fellBack, err := storage.OpenWithFallback(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, WrapDiskFullError(err, "open", opts.DBPath)
	}

	clock := opts.Clock
	if clock == nil {
		clock = scheduler.SystemClock{}
	}

	store := opts.Store
	if store == nil {
		store = OpenStore(ctx, cfg)
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	prefs := storage.NewPreferencesRepo(db)
	svc := health.NewService(store, clock)

	return &Context{
		Config:        cfg,
		DB:            db,
		Formatter:     formatter,
		Clock:         clock,
		Prefs:         prefs,
		Store:         store,
		Health:        svc,
		Settings:      settings.NewManager(prefs, svc),
		Weather:       weather.NewClient(cfg.Location.WeatherURL, cfg.HTTP.Timeout),
		Locators:      Locators(cfg),
		CacheFallback: fellBack,
		Debug:         opts.Debug,
	}, nil
}

// OpenStore builds the configured remote store. A store that cannot be
// opened degrades to offline so the app keeps working on cached data.
func OpenStore(ctx context.Context, cfg *config.RuntimeConfig) remote.Store {
	log := logging.Component("runtime")
	backend := cfg.StoreBackend()

	switch backend {
	case config.StoreMemory:
		return remote.NewMemory()
	case config.StoreREST:
		log.Debug("using rest store",
			logging.KeyURL, logging.MaskURL(cfg.Remote.RESTURL),
			"api_key", logging.MaskSecret(cfg.Remote.RESTKey))
		return rest.New(cfg.Remote.RESTURL, cfg.Remote.RESTPath, cfg.Remote.RESTKey, cfg.HTTP.Timeout)
	case config.StorePostgres:
		openCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.Timeout)
		defer cancel()
		store, err := postgres.Open(openCtx, cfg.Remote.PostgresURL)
		if err != nil {
			log.Warn("postgres store unavailable, running offline",
				logging.KeyURL, logging.MaskURL(cfg.Remote.PostgresURL), logging.KeyError, err)
			return remote.NewOffline()
		}
		if err := store.Migrate(openCtx); err != nil {
			log.Warn("postgres schema check failed", logging.KeyError, err)
		}
		return store
	default:
		return remote.NewOffline()
	}
}

// Locators returns the location lookup chain for the configuration:
// configured coordinates first, then IP geolocation when enabled.
func Locators(cfg *config.RuntimeConfig) []weather.Locator {
	var locators []weather.Locator
	if cfg.HasCoordinates() {
		locators = append(locators, weather.StaticLocator{Coords: &weather.Coordinates{
			Latitude:  *cfg.Location.Latitude,
			Longitude: *cfg.Location.Longitude,
		}})
	}
	if cfg.Location.IPLocate {
		locators = append(locators, weather.NewIPLocator(cfg.Location.IPLocateURL, cfg.HTTP.Timeout))
	}
	return locators
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			logging.Warn("closing remote store", logging.KeyError, err)
		}
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// Printer returns the printer for the selected output format.
func (c *Context) Printer() output.Printer {
	return output.NewPrinter(c.Formatter)
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}

// Now returns the current time from the context clock.
func (c *Context) Now() time.Time {
	return c.Clock.Now()
}

// Coordinates resolves the weather location.
func (c *Context) Coordinates(ctx context.Context) weather.Coordinates {
	return weather.Resolve(ctx, c.Locators...)
}

// CurrentWeather fetches conditions for the resolved location. On failure
// it returns the default snapshot with Live unset.
func (c *Context) CurrentWeather(ctx context.Context) output.WeatherView {
	coords := c.Coordinates(ctx)
	snap, err := c.Weather.Fetch(ctx, coords)
	live := err == nil
	if err != nil {
		logging.Warn("weather fetch failed, using defaults", logging.KeyError, err)
		snap = model.DefaultWeather()
	}
	return output.WeatherView{
		Snapshot:  snap,
		Location:  coords.String(),
		Alerts:    weather.Alerts(snap),
		Live:      live,
		FetchedAt: c.Now(),
	}
}
