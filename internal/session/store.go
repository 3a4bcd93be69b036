// Package session holds the per-client table snapshots between requests.
//
// Every browser tab gets its own key and its own snapshot of the last
// uploaded table. Storage is strictly in-memory: restarting the server
// forgets everything, and entries expire after a fixed inactivity window.
// The store is injected into the web layer so the core interpretation logic
// stays independent of session lifecycle.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long an untouched session survives.
const DefaultTTL = 24 * time.Hour

// Snapshot is the immutable table held for one session: the assigned header
// names and the raw data rows. Callers must not mutate either slice.
type Snapshot struct {
	Headers []string
	Rows    [][]string
}

type entry struct {
	snap     Snapshot
	lastUsed time.Time
}

// Store is a TTL-bounded key→snapshot map, safe for concurrent use.
// Writes are last-write-wins per key; keys are expected to be used by a
// single client sequentially.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration

	now func() time.Time // injectable for tests
}

// NewStore creates a store whose entries expire after ttl of inactivity.
// A non-positive ttl uses DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// NewKey returns a fresh opaque session key.
func (s *Store) NewKey() string {
	return uuid.New().String()
}

// Get returns the snapshot for key and refreshes its expiry. The second
// return is false when the key is unknown or has expired. Every access also
// sweeps expired entries; with one sweep per request there is no need for a
// background janitor.
func (s *Store) Get(key string) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	e, ok := s.entries[key]
	if !ok {
		return Snapshot{}, false
	}
	e.lastUsed = now
	return e.snap, true
}

// Put stores the snapshot under key, replacing any previous one.
func (s *Store) Put(key string, snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)
	s.entries[key] = &entry{snap: snap, lastUsed: now}
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(s.now())
	return len(s.entries)
}

func (s *Store) sweepLocked(now time.Time) {
	for key, e := range s.entries {
		if now.Sub(e.lastUsed) > s.ttl {
			delete(s.entries, key)
		}
	}
}
