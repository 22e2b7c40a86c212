// Package memory provides an in-process local tier. Nothing survives the
// process, which makes it the default for tests and remote-only setups.
package memory

import (
	"sync"

	"github.com/agentstation/tripmap/pkg/errors"
)

// Store is a map-backed key-value store.
type Store struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// New creates an empty Store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, false, errors.WrapResource("read", "local store", key, errClosed)
	}
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put stores a copy of value under key.
func (s *Store) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.WrapResource("write", "local store", key, errClosed)
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Close marks the store closed. Later calls fail.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

var errClosed = errors.New("store closed")
