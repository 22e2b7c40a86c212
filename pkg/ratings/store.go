package ratings

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/logging"
	"github.com/agentstation/tripmap/pkg/ratings/memory"
)

// ChangeFunc is called with a snapshot of the cache whenever it changes.
// It runs with no store lock held and may write to the store.
type ChangeFunc func(Mapping)

// Store is the two-tier rating store.
//
// Writes for the same name are serialized in call order and the toggle of a
// queued write is computed when it starts. A remote resync replaces the
// cache except for names whose own write is still running, which keep their
// optimistic value until that write settles.
type Store struct {
	remote Remote
	local  Local
	key    string
	logger *zerolog.Logger

	// persist keeps local writes from landing out of order
	persist sync.Mutex

	mu       sync.RWMutex
	cache    Mapping
	inflight map[string]Rating
	onChange []ChangeFunc

	// snapshots waiting for delivery, and whether a goroutine is delivering
	pending    []Mapping
	delivering bool

	queue *keyQueue
}

// Option configures a Store.
type Option func(*Store)

// WithRemote sets the authoritative tier. Without one every write goes to
// the local tier.
func WithRemote(remote Remote) Option {
	return func(s *Store) {
		s.remote = remote
	}
}

// WithLocal sets the fallback tier. The default is an in-memory store.
func WithLocal(local Local) Option {
	return func(s *Store) {
		s.local = local
	}
}

// WithKey overrides the key the mapping is stored under in the local tier.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithLogger sets the logger used for absorbed failures.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithOnChange registers a callback for cache changes.
func WithOnChange(fn ChangeFunc) Option {
	return func(s *Store) {
		s.onChange = append(s.onChange, fn)
	}
}

// NewStore creates a Store with an empty cache.
func NewStore(opts ...Option) *Store {
	s := &Store{
		key:      constants.RatingsKey,
		cache:    Mapping{},
		inflight: make(map[string]Rating),
		queue:    newKeyQueue(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.local == nil {
		s.local = memory.New()
	}
	if s.logger == nil {
		s.logger = logging.Default()
	}
	return s
}

// OnChange registers a callback for cache changes.
func (s *Store) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Local returns the fallback tier.
func (s *Store) Local() Local {
	return s.local
}

// Get returns the cached rating for name.
func (s *Store) Get(name string) Rating {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[name]
}

// Snapshot returns a copy of the cache.
func (s *Store) Snapshot() Mapping {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Clone()
}

// Load fills the cache from the remote tier, or from the local tier when the
// remote fails. A remote mapping is taken verbatim. A missing local copy
// yields an empty cache. Load makes one attempt and never returns an error
// for an unavailable tier.
func (s *Store) Load(ctx context.Context) Mapping {
	if s.remote != nil {
		m, err := s.remote.Fetch(ctx)
		if err == nil {
			s.replace(m.Clone())
			s.notify()
			return s.Snapshot()
		}
		s.logger.Warn().Err(err).Msg("rating service unavailable, loading local ratings")
	}

	m, err := ReadMapping(s.local, s.key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("local ratings unreadable, starting empty")
	}
	s.replace(m)
	s.notify()
	return s.Snapshot()
}

// SetRating toggles the rating for name with star and returns the cache
// after the write settles. star must be in [1,5]. The only errors are an
// invalid star or ctx ending while the write waits behind an earlier write
// for the same name.
func (s *Store) SetRating(ctx context.Context, name string, star Rating) (Mapping, error) {
	if star < constants.MinStar || star > constants.MaxStar {
		return nil, errors.NewValidationError("star", int(star), "must be between 1 and 5")
	}
	if name == "" {
		return nil, errors.NewValidationError("name", name, "is required")
	}

	release, err := s.queue.acquire(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() {
		release()
		s.notify()
	}()

	value := s.optimistic(name, star)
	logger := s.logger.With().Str("venue", name).Int("star", int(value)).Logger()

	if s.remote != nil {
		remote, err := s.remote.Set(ctx, name, value)
		if err == nil {
			s.resync(name, remote)
			logger.Debug().Msg("rating stored remotely")
			return s.Snapshot(), nil
		}
		logger.Warn().Err(err).Msg("rating service unavailable, storing rating locally")
	}

	s.settleLocal(name, logger)
	return s.Snapshot(), nil
}

// optimistic applies the toggle to the cache and marks name in flight.
func (s *Store) optimistic(name string, star Rating) Rating {
	var value Rating
	s.change(func() {
		value = s.cache[name].Toggle(star)
		s.cache.set(name, value)
		s.inflight[name] = value
	})
	return value
}

// resync replaces the cache with the remote mapping, keeping the optimistic
// values of other names that are still in flight.
func (s *Store) resync(name string, remote Mapping) {
	s.change(func() {
		delete(s.inflight, name)
		next := remote.Clone()
		for other, value := range s.inflight {
			next.set(other, value)
		}
		s.cache = next
	})
}

// settleLocal persists the cache to the local tier.
func (s *Store) settleLocal(name string, logger zerolog.Logger) {
	s.persist.Lock()
	defer s.persist.Unlock()

	s.mu.Lock()
	delete(s.inflight, name)
	snapshot := s.cache.Clone()
	s.mu.Unlock()

	if err := WriteMapping(s.local, s.key, snapshot); err != nil {
		logger.Error().Err(err).Msg("failed to persist ratings locally")
	}
}

func (s *Store) replace(m Mapping) {
	s.change(func() {
		s.cache = m
	})
}

// change applies update under the cache lock and queues the resulting
// snapshot for the listeners. Callers deliver it with notify once they hold
// no locks and no queue turn.
func (s *Store) change(update func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	update()
	s.pending = append(s.pending, s.cache.Clone())
}

// notify delivers queued snapshots in update order. Only one goroutine
// delivers at a time; a listener that writes again, or a concurrent writer,
// leaves its snapshot to the goroutine already delivering.
func (s *Store) notify() {
	s.mu.Lock()
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	defer func() {
		s.mu.Lock()
		s.delivering = false
		s.mu.Unlock()
	}()

	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		hooks := s.onChange
		s.mu.Unlock()

		for _, fn := range hooks {
			fn(next)
		}

		s.mu.Lock()
	}
	s.mu.Unlock()
}
