// Package weather fetches current conditions from Open-Meteo and derives
// health alerts from them.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/manav03panchal/healthdash/internal/logging"
	"github.com/manav03panchal/healthdash/internal/model"
)

const (
	// DefaultBaseURL is the public Open-Meteo API.
	DefaultBaseURL = "https://api.open-meteo.com"

	currentFields = "temperature_2m,relative_humidity_2m,uv_index,weather_code,is_day"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

// DefaultCoordinates is used when no location can be resolved (New York City).
var DefaultCoordinates = Coordinates{Latitude: 40.7128, Longitude: -74.0060}

// Client fetches current weather conditions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with the given base URL and request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type forecastResponse struct {
	Current struct {
		Temperature float64  `json:"temperature_2m"`
		Humidity    float64  `json:"relative_humidity_2m"`
		UVIndex     *float64 `json:"uv_index"`
		WeatherCode int      `json:"weather_code"`
		IsDay       int      `json:"is_day"`
	} `json:"current"`
}

// Current returns the current conditions at coords. It never fails: any
// transport, status or decode error is logged and DefaultWeather returned.
func (c *Client) Current(ctx context.Context, coords Coordinates) model.WeatherSnapshot {
	snap, err := c.Fetch(ctx, coords)
	if err != nil {
		logging.Component("weather").Warn("weather fetch failed, using defaults",
			logging.KeyError, err)
		return model.DefaultWeather()
	}
	return snap
}

// Fetch performs a single request and reports any failure.
func (c *Client) Fetch(ctx context.Context, coords Coordinates) (model.WeatherSnapshot, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	q.Set("current", currentFields)
	q.Set("timezone", "auto")
	endpoint := base + "/v1/forecast?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("create weather request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logging.DebugLog("fetching weather", logging.KeyURL, endpoint)
	resp, err := httpClient.Do(req)
	if err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("execute weather request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("read weather response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.WeatherSnapshot{}, fmt.Errorf("weather request failed with status %d", resp.StatusCode)
	}

	var parsed forecastResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("decode weather response: %w", err)
	}

	cur := parsed.Current
	uv := 0.0
	if cur.UVIndex != nil {
		uv = *cur.UVIndex
	}
	return model.WeatherSnapshot{
		TemperatureC: roundHalfUp(cur.Temperature),
		Humidity:     cur.Humidity,
		UVIndex:      uv,
		WeatherCode:  cur.WeatherCode,
		IsDay:        cur.IsDay == 1,
	}, nil
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
