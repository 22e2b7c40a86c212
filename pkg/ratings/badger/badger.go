// Package badger provides a local tier backed by an embedded Badger
// database through badgerhold.
package badger

import (
	"os"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/errors"
)

// entry is the record stored per key.
type entry struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// Store is a badgerhold-backed key-value store.
type Store struct {
	store *badgerhold.Store
	path  string
}

// Open opens or creates the database in dir.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.NewConfigError("local store", "badger directory is required", nil)
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = dir
	options.ValueDir = dir
	options.Logger = nil

	store, err := badgerhold.Open(options)
	if err != nil {
		return nil, errors.WrapResource("open", "badger store", dir, err)
	}
	return &Store{store: store, path: dir}, nil
}

// Path returns the database directory.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var e entry
	err := s.store.Get(key, &e)
	if err == badgerhold.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WrapResource("read", "badger store", key, err)
	}
	return e.Value, true, nil
}

// Put replaces the value stored under key.
func (s *Store) Put(key string, value []byte) error {
	e := entry{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := s.store.Upsert(key, &e); err != nil {
		return errors.WrapResource("write", "badger store", key, err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
