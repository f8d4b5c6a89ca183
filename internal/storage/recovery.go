package storage

import (
	"fmt"
	"strings"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/logging"
)

// CheckIntegrity reads every value once to detect corruption.
func (d *DB) CheckIntegrity() error {
	if d == nil || d.db == nil {
		return errors.NewSystemError("database not initialized", errors.ErrDatabaseCorrupted)
	}
	return d.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			if err := item.Value(func([]byte) error { return nil }); err != nil {
				return errors.NewSystemError(
					fmt.Sprintf("corrupted value at key: %s", item.Key()),
					errors.ErrDatabaseCorrupted)
			}
		}
		return nil
	})
}

// IsLocked reports whether err means another process holds the database.
func IsLocked(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Cannot acquire directory lock")
}

// OpenWithFallback opens the database at opts and falls back to an
// in-memory database when the on-disk one is locked by another healthdash
// process or fails its integrity check. The second result reports whether
// the fallback was used.
func OpenWithFallback(opts Options) (*DB, bool, error) {
	db, err := Open(opts)
	if err != nil {
		if !IsLocked(err) {
			return nil, false, err
		}
		logging.Warn("local cache in use by another process, using memory",
			logging.KeyError, err)
		mem, memErr := Open(Options{InMemory: true})
		return mem, true, memErr
	}

	if err := db.CheckIntegrity(); err != nil {
		logging.Warn("local cache failed integrity check, using memory",
			logging.KeyError, err)
		db.Close()
		mem, memErr := Open(Options{InMemory: true})
		return mem, true, memErr
	}
	return db, false, nil
}
