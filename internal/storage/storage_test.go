package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/model"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.True(t, db.InMemory())
		assert.NoError(t, db.Close())
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.Equal(t, "", db.Path())
		db.Close()
	})

	t.Run("memory_path", func(t *testing.T) {
		db, err := Open(Options{Path: MemoryPath})
		require.NoError(t, err)
		assert.True(t, db.InMemory())
		db.Close()
	})

	t.Run("on_disk", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "db")
		db, err := Open(Options{Path: dir})
		require.NoError(t, err)
		assert.Equal(t, dir, db.Path())
		assert.False(t, db.InMemory())
		db.Close()
	})
}

func TestDBBadger(t *testing.T) {
	db := setupTestDB(t)
	assert.NotNil(t, db.Badger())
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "healthdash")
	assert.Contains(t, path, "db")
}

func TestCheckIntegrity(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.SetBytes("a", []byte("1")))
	assert.NoError(t, db.CheckIntegrity())

	var nilDB *DB
	err := nilDB.CheckIntegrity()
	assert.True(t, errors.Is(err, errors.ErrDatabaseCorrupted))
}

// =============================================================================
// CRUD Tests
// =============================================================================

func TestBytesRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetBytes("missing")
	assert.True(t, IsErrKeyNotFound(err))

	require.NoError(t, db.SetBytes("k", []byte("v")))
	got, err := db.GetBytes("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	exists, err := db.Exists("k")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, db.Delete("k"))
	exists, err = db.Exists("k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestJSONHelpers(t *testing.T) {
	db := setupTestDB(t)

	type snapshot struct {
		Temp int `json:"temp"`
	}
	require.NoError(t, db.SetJSON("weather:last", snapshot{Temp: 31}))

	var got snapshot
	require.NoError(t, db.GetJSON("weather:last", &got))
	assert.Equal(t, 31, got.Temp)
}

// =============================================================================
// PreferencesRepo Tests
// =============================================================================

func TestPreferencesRepoDefaultsWhenAbsent(t *testing.T) {
	repo := NewPreferencesRepo(setupTestDB(t))

	prefs, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPreferences(), prefs)

	set, err := repo.IsSet()
	require.NoError(t, err)
	assert.False(t, set, "defaults must not be persisted by Get")
}

func TestPreferencesRepoSetGet(t *testing.T) {
	repo := NewPreferencesRepo(setupTestDB(t))

	prefs := model.DefaultPreferences()
	prefs.HydrationThresholdTemp = 28
	prefs.StretchInterval = 45
	prefs.SleepTime = "23:30"
	require.NoError(t, repo.Set(prefs))

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, 28.0, got.HydrationThresholdTemp)
	assert.Equal(t, 45, got.StretchInterval)
	assert.Equal(t, "23:30", got.SleepTime)
	assert.Equal(t, model.KeyPreferences, got.GetKey())
}

func TestPreferencesRepoSetValidates(t *testing.T) {
	repo := NewPreferencesRepo(setupTestDB(t))

	prefs := model.DefaultPreferences()
	prefs.HydrationInterval = 5
	err := repo.Set(prefs)
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))

	set, _ := repo.IsSet()
	assert.False(t, set)
}

func TestPreferencesRepoFillsMissingFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPreferencesRepo(db)

	require.NoError(t, db.SetBytes(model.KeyPreferences, []byte(`{"hydration_interval":90}`)))

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, 90, got.HydrationInterval)
	assert.Equal(t, model.DefaultStretchInterval, got.StretchInterval)
	assert.Equal(t, model.DefaultSleepTime, got.SleepTime)
}

func TestPreferencesRepoCorruptRecord(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPreferencesRepo(db)

	require.NoError(t, db.SetBytes(model.KeyPreferences, []byte(`{not json`)))

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPreferences(), got)
}

func TestPreferencesRepoReset(t *testing.T) {
	repo := NewPreferencesRepo(setupTestDB(t))

	prefs := model.DefaultPreferences()
	prefs.WakeTime = "07:15"
	require.NoError(t, repo.Set(prefs))
	require.NoError(t, repo.Reset())

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultWakeTime, got.WakeTime)
}

// =============================================================================
// Fallback Tests
// =============================================================================

func TestOpenWithFallback(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")

	first, usedMemory, err := OpenWithFallback(Options{Path: dir})
	require.NoError(t, err)
	assert.False(t, usedMemory)
	defer first.Close()

	second, usedMemory, err := OpenWithFallback(Options{Path: dir})
	require.NoError(t, err)
	assert.True(t, usedMemory)
	assert.True(t, second.InMemory())
	second.Close()
}

func TestIsLocked(t *testing.T) {
	assert.False(t, IsLocked(nil))
	assert.False(t, IsLocked(errors.New("boom")))
	assert.True(t, IsLocked(errors.New("Cannot acquire directory lock on \"/tmp/x\".  Another process is using this Badger database.")))
}
