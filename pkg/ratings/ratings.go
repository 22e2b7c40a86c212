// Package ratings persists per-venue star ratings through two tiers: a
// remote authoritative service and a local fallback store.
//
// The Store keeps an in-memory cache that is updated optimistically on
// every toggle. A successful remote write replaces the cache with the
// mapping the service returns; a failed one persists the cache locally.
// Remote failures are logged and absorbed, never returned.
package ratings

import (
	"context"
	"encoding/json"
	"maps"
	"sort"

	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/errors"
)

// Rating is a star count in [0,5]. Zero means unrated.
type Rating int

// Unrated is the value of every name absent from a Mapping.
const Unrated Rating = 0

// Valid reports whether r is inside [0,5].
func (r Rating) Valid() bool {
	return r >= Unrated && r <= constants.MaxStar
}

// Toggle returns the rating that results from clicking star when the
// current value is r: the same star clears it, any other star replaces it.
func (r Rating) Toggle(star Rating) Rating {
	if r == star {
		return Unrated
	}
	return star
}

// Mapping holds ratings by venue name. Absent names are unrated.
type Mapping map[string]Rating

// Get returns the rating for name.
func (m Mapping) Get(name string) Rating {
	return m[name]
}

// Clone returns a copy of m. A nil mapping clones to an empty one.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	maps.Copy(out, m)
	return out
}

// Names returns the rated names in lexical order.
func (m Mapping) Names() []string {
	names := make([]string, 0, len(m))
	for name, r := range m {
		if r != Unrated {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// set stores r under name, dropping the key for Unrated.
func (m Mapping) set(name string, r Rating) {
	if r == Unrated {
		delete(m, name)
		return
	}
	m[name] = r
}

// Remote is the authoritative rating service.
type Remote interface {
	// Fetch returns the full mapping.
	Fetch(ctx context.Context) (Mapping, error)
	// Set stores one rating and returns the full updated mapping.
	Set(ctx context.Context, name string, star Rating) (Mapping, error)
}

// Local is a persistent key-value store used as the fallback tier.
// Get reports found=false for a key that was never written.
type Local interface {
	Get(key string) (value []byte, found bool, err error)
	Put(key string, value []byte) error
	Close() error
}

// ReadMapping decodes the mapping stored under key. A missing key yields an
// empty mapping.
func ReadMapping(local Local, key string) (Mapping, error) {
	data, found, err := local.Get(key)
	if err != nil {
		return Mapping{}, err
	}
	if !found || len(data) == 0 {
		return Mapping{}, nil
	}
	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return Mapping{}, errors.WrapParse("json", key, err)
	}
	if m == nil {
		m = Mapping{}
	}
	return m, nil
}

// WriteMapping encodes m and stores it under key.
func WriteMapping(local Local, key string, m Mapping) error {
	data, err := json.Marshal(m)
	if err != nil {
		return errors.WrapParse("json", key, err)
	}
	return local.Put(key, data)
}
