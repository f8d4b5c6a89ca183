package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/manav03panchal/healthdash/internal/logging"
)

// DefaultIPLocateURL is the IP geolocation endpoint.
const DefaultIPLocateURL = "https://ipapi.co/json/"

// ErrNoLocation is returned by a Locator that has nothing to offer.
var ErrNoLocation = errors.New("no location available")

// Locator resolves the user's coordinates.
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// StaticLocator returns fixed, configured coordinates.
type StaticLocator struct {
	Coords *Coordinates
}

// Locate returns the configured coordinates or ErrNoLocation.
func (s StaticLocator) Locate(context.Context) (Coordinates, error) {
	if s.Coords == nil {
		return Coordinates{}, ErrNoLocation
	}
	return *s.Coords, nil
}

// IPLocator looks up approximate coordinates from the caller's public IP.
type IPLocator struct {
	URL        string
	HTTPClient *http.Client
}

// NewIPLocator creates an IP locator with a request timeout.
func NewIPLocator(url string, timeout time.Duration) *IPLocator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &IPLocator{URL: url, HTTPClient: &http.Client{Timeout: timeout}}
}

type ipLocateResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Error     bool     `json:"error"`
	Reason    string   `json:"reason"`
}

// Locate queries the geolocation endpoint.
func (l *IPLocator) Locate(ctx context.Context) (Coordinates, error) {
	endpoint := strings.TrimSpace(l.URL)
	if endpoint == "" {
		endpoint = DefaultIPLocateURL
	}
	httpClient := l.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("create ip locate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("execute ip locate request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Coordinates{}, fmt.Errorf("read ip locate response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Coordinates{}, fmt.Errorf("ip locate request failed with status %d", resp.StatusCode)
	}

	var parsed ipLocateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Coordinates{}, fmt.Errorf("decode ip locate response: %w", err)
	}
	if parsed.Error {
		return Coordinates{}, fmt.Errorf("ip locate: %s", parsed.Reason)
	}
	if parsed.Latitude == nil || parsed.Longitude == nil {
		return Coordinates{}, ErrNoLocation
	}
	return Coordinates{Latitude: *parsed.Latitude, Longitude: *parsed.Longitude}, nil
}

// Resolve tries each locator in order and returns the first success.
// When every locator fails (or none is given) it returns DefaultCoordinates;
// failures are logged, never surfaced.
func Resolve(ctx context.Context, locators ...Locator) Coordinates {
	log := logging.Component("location")
	for _, l := range locators {
		if l == nil {
			continue
		}
		coords, err := l.Locate(ctx)
		if err == nil {
			return coords
		}
		if !errors.Is(err, ErrNoLocation) {
			logging.WarnContext(ctx, "location lookup failed", logging.KeyComponent, "location", logging.KeyError, err)
		}
	}
	log.Debug("using default coordinates", "coords", DefaultCoordinates.String())
	return DefaultCoordinates
}
