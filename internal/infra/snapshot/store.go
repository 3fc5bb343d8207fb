package snapshot

import (
	"sync"
	"time"

	"booking-calculator/internal/pkg/clock"
)

type Storage[K comparable, V any] interface {

	// Get returns the value associated with the key.
	// Expired entries are reported as missing.
	Get(key K) (V, bool)

	// Set stores the value and restarts its time to live.
	Set(key K, value V)

	// Delete drops the value associated with the key.
	Delete(key K)

	// Sweep removes every expired entry and returns how many were removed.
	Sweep() int

	// Len returns the number of entries, expired ones included.
	Len() int

	// GetOrSet returns the live value for the key, storing newValue() first
	// when there is none, and restarts its time to live.
	GetOrSet(key K, newValue func() V) V
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLStorage is an in-memory map whose entries expire ttl after they were
// last set. It is safe for concurrent use.
type TTLStorage[K comparable, V any] struct {
	mu      sync.RWMutex
	storage map[K]entry[V]
	ttl     time.Duration
	clock   clock.Clock
}

func NewTTLStorage[K comparable, V any](ttl time.Duration, clk clock.Clock) *TTLStorage[K, V] {
	return &TTLStorage[K, V]{
		storage: make(map[K]entry[V]),
		ttl:     ttl,
		clock:   clk,
	}
}

func (s *TTLStorage[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.storage[key]
	if !ok || s.expired(e) {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (s *TTLStorage[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.storage[key] = entry[V]{value: value, expiresAt: s.clock.Now().Add(s.ttl)}
}

func (s *TTLStorage[K, V]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.storage, key)
}

func (s *TTLStorage[K, V]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.storage {
		if s.expired(e) {
			delete(s.storage, key)
			removed++
		}
	}
	return removed
}

func (s *TTLStorage[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.storage)
}

func (s *TTLStorage[K, V]) GetOrSet(key K, newValue func() V) V {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.storage[key]
	if !ok || s.expired(e) {
		e.value = newValue()
	}
	e.expiresAt = s.clock.Now().Add(s.ttl)
	s.storage[key] = e
	return e.value
}

func (s *TTLStorage[K, V]) expired(e entry[V]) bool {
	return !s.clock.Now().Before(e.expiresAt)
}
