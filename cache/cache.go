// Package cache provides the bounded, time-expiring memo sitting in front of
// the resolve pipeline. It is a pure accelerator: disabling it never changes
// an outcome, only latency.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Key identifies one memoized resolve: raw input, target format, locale, and
// the feature-flag set. The flags change which pipeline stages run, so two
// calls differing only in flags are distinct resolves and must not share an
// entry.
type Key struct {
	Input  string
	Format string
	Locale string

	NaturalLanguage bool
	RelativeDate    bool
	SmartCorrection bool
}

// Value is the memoized half of an outcome: the resolved date (or the fact
// that resolution declined) plus the strategy that produced it. The
// formatted string is re-derived by the caller on every hit.
type Value struct {
	Resolved bool
	Date     time.Time
	Strategy string
}

// Store is a capacity-bounded map with insertion-order eviction and lazy TTL
// expiry. Despite the informal "LRU" naming such caches tend to get, lookups
// do not promote entries: on overflow the oldest-inserted entry goes first.
// Entries are never mutated in place, only replaced or evicted.
type Store struct {
	capacity int
	ttl      time.Duration

	mu      sync.Mutex
	entries map[Key]*entry
	order   *list.List // front = oldest inserted
}

type entry struct {
	key        Key
	value      Value
	insertedAt time.Time
	element    *list.Element
}

// DefaultCapacity and DefaultTTL bound a store constructed with
// non-positive arguments.
const (
	DefaultCapacity = 500
	DefaultTTL      = 5 * time.Minute
)

// New creates a store. Non-positive capacity or TTL fall back to the
// defaults.
func New(capacity int, ttl time.Duration) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[Key]*entry),
		order:    list.New(),
	}
}

// Get returns the memoized value for key. Entries past their TTL are treated
// as absent and dropped on the spot rather than swept proactively.
func (s *Store) Get(key Key) (Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return Value{}, false
	}
	if time.Since(e.insertedAt) > s.ttl {
		s.removeEntry(e)
		return Value{}, false
	}
	return e.value, true
}

// Put memoizes a value. An existing entry for the key is replaced, which
// also refreshes its insertion position. On overflow the single
// oldest-inserted entry is evicted first.
func (s *Store) Put(key Key, value Value) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.removeEntry(e)
	}
	for len(s.entries) >= s.capacity {
		s.evictOldest()
	}

	e := &entry{key: key, value: value, insertedAt: time.Now()}
	e.element = s.order.PushBack(e)
	s.entries[key] = e
}

// GetOrCompute is the lookup path the resolver uses: pass-through to compute
// on miss or expiry, memoizing the computed value.
func (s *Store) GetOrCompute(key Key, compute func() Value) Value {
	if v, ok := s.Get(key); ok {
		return v
	}
	v := compute()
	s.Put(key, v)
	return v
}

// Size returns the number of live entries, expired ones included until a
// lookup touches them.
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear drops every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[Key]*entry)
	s.order.Init()
}

// CleanupExpired removes all expired entries and reports how many went.
func (s *Store) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var toDelete []*entry
	for _, e := range s.entries {
		if time.Since(e.insertedAt) > s.ttl {
			toDelete = append(toDelete, e)
		}
	}
	for _, e := range toDelete {
		s.removeEntry(e)
	}
	return len(toDelete)
}

// Must hold mu.
func (s *Store) evictOldest() {
	oldest := s.order.Front()
	if oldest == nil {
		return
	}
	s.removeEntry(oldest.Value.(*entry))
}

// Must hold mu.
func (s *Store) removeEntry(e *entry) {
	s.order.Remove(e.element)
	delete(s.entries, e.key)
}
