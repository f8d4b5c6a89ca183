// Package rest implements remote.Store over a PostgREST table API such as
// the one Supabase exposes.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/logging"
	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/remote"
)

const (
	// DefaultPath is the Supabase table API prefix.
	DefaultPath = "/rest/v1"

	tablePreferences = "preferences"
	tableHydration   = "hydration_logs"
	tableStretch     = "stretch_logs"
)

// APIError is a non-2xx response from the table API.
type APIError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("rest store request failed with status %d", e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	return msg
}

// Unwrap classifies every API error as a remote-store failure.
func (e *APIError) Unwrap() error {
	return errors.ErrStoreUnavailable
}

// Client talks to a PostgREST endpoint.
type Client struct {
	BaseURL    string
	Path       string
	APIKey     string
	HTTPClient *http.Client
}

// New creates a client with the given request timeout.
func New(baseURL, path, apiKey string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    baseURL,
		Path:       path,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

var _ remote.Store = (*Client)(nil)

func (c *Client) Name() string { return "rest" }

func (c *Client) Close() error { return nil }

// GetPreferences selects the row with the given id.
func (c *Client) GetPreferences(ctx context.Context, id uuid.UUID) (*remote.PreferencesRecord, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", "eq."+id.String())

	var rows []remote.PreferencesRecord
	if err := c.do(ctx, http.MethodGet, tablePreferences, q, nil, "", &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, remote.ErrNotFound
	}
	return &rows[0], nil
}

// UpsertPreferences inserts or merges the record on its primary key.
func (c *Client) UpsertPreferences(ctx context.Context, rec remote.PreferencesRecord) error {
	return c.do(ctx, http.MethodPost, tablePreferences, nil, rec,
		"resolution=merge-duplicates,return=minimal", nil)
}

func (c *Client) InsertHydration(ctx context.Context, in remote.HydrationInsert) error {
	return c.do(ctx, http.MethodPost, tableHydration, nil, in, "return=minimal", nil)
}

func (c *Client) InsertStretch(ctx context.Context, in remote.StretchInsert) error {
	return c.do(ctx, http.MethodPost, tableStretch, nil, in, "return=minimal", nil)
}

func (c *Client) ListHydrationSince(ctx context.Context, since time.Time) ([]model.HydrationLog, error) {
	logs := []model.HydrationLog{}
	if err := c.do(ctx, http.MethodGet, tableHydration, sinceQuery(since), nil, "", &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) ListStretchSince(ctx context.Context, since time.Time) ([]model.StretchLog, error) {
	logs := []model.StretchLog{}
	if err := c.do(ctx, http.MethodGet, tableStretch, sinceQuery(since), nil, "", &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// sinceQuery filters logged_at >= since, newest first. The bound carries
// its offset so the server compares instants.
func sinceQuery(since time.Time) url.Values {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("logged_at", "gte."+since.Format(time.RFC3339))
	q.Set("order", "logged_at.desc")
	return q
}

func (c *Client) endpoint(table string, q url.Values) string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	path := c.Path
	if path == "" {
		path = DefaultPath
	}
	u := base
	if prefix := strings.Trim(path, "/"); prefix != "" {
		u += "/" + prefix
	}
	u += "/" + table
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, method, table string, q url.Values, body any, prefer string, out any) error {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", table, err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.endpoint(table, q)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create %s request: %w", table, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}
	if c.APIKey != "" {
		req.Header.Set("apikey", c.APIKey)
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	logging.DebugContext(req.Context(), "rest request", logging.KeyOperation, method, logging.KeyURL, endpoint)
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute %s request: %w", table, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", table, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.Unmarshal(respBody, apiErr)
		apiErr.Status = resp.StatusCode
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s response: %w", table, err)
	}
	return nil
}
