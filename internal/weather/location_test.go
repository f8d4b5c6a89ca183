package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingLocator struct{ err error }

func (f failingLocator) Locate(context.Context) (Coordinates, error) {
	return Coordinates{}, f.err
}

func TestStaticLocator(t *testing.T) {
	_, err := StaticLocator{}.Locate(context.Background())
	assert.ErrorIs(t, err, ErrNoLocation)

	want := Coordinates{Latitude: 1, Longitude: 2}
	got, err := StaticLocator{Coords: &want}.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestIPLocator(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ip":"203.0.113.1","latitude":48.8566,"longitude":2.3522}`))
	}))
	defer ts.Close()

	l := &IPLocator{URL: ts.URL, HTTPClient: ts.Client()}
	got, err := l.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Coordinates{Latitude: 48.8566, Longitude: 2.3522}, got)
}

func TestIPLocatorErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"status", http.StatusTooManyRequests, `{}`},
		{"reported_error", http.StatusOK, `{"error":true,"reason":"RateLimited"}`},
		{"missing_fields", http.StatusOK, `{"ip":"203.0.113.1"}`},
		{"bad_json", http.StatusOK, `nope`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			l := &IPLocator{URL: ts.URL, HTTPClient: ts.Client()}
			_, err := l.Locate(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	paris := Coordinates{Latitude: 48.8566, Longitude: 2.3522}

	assert.Equal(t, DefaultCoordinates, Resolve(ctx))
	assert.Equal(t, DefaultCoordinates, Resolve(ctx, nil, StaticLocator{}))
	assert.Equal(t, DefaultCoordinates, Resolve(ctx, failingLocator{errors.New("denied")}))
	assert.Equal(t, paris, Resolve(ctx, StaticLocator{}, failingLocator{errors.New("x")}, StaticLocator{Coords: &paris}))
}

func TestCoordinatesString(t *testing.T) {
	assert.Equal(t, "40.7128,-74.0060", DefaultCoordinates.String())
}

func TestNewIPLocator(t *testing.T) {
	l := NewIPLocator("http://example.test/json", 0)
	assert.Equal(t, "http://example.test/json", l.URL)
	require.NotNil(t, l.HTTPClient)
	assert.Equal(t, 10*time.Second, l.HTTPClient.Timeout)
}
