package ratelimiter

import (
	"math"
	"sync"
	"time"
)

type bucket struct {
	tokens   float64
	lastFill time.Time
	lastSeen time.Time
}

// bucketStore keeps one bucket per source key, evicting entries that have not
// been seen within the TTL. Eviction happens opportunistically on access.
type bucketStore struct {
	mu  sync.Mutex
	ttl time.Duration

	entries   map[string]*bucket
	lastSweep time.Time
}

func newBucketStore(ttl time.Duration) *bucketStore {
	return &bucketStore{
		ttl:       ttl,
		entries:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

func (s *bucketStore) take(key string, ratePerSecond float64, maxBurst int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.refill(key, ratePerSecond, maxBurst)
	if b.tokens < 1 {
		return false
	}

	b.tokens--
	return true
}

func (s *bucketStore) remaining(key string, ratePerSecond float64, maxBurst int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.refill(key, ratePerSecond, maxBurst)
	return int(b.tokens)
}

// refill must be called with the lock held.
func (s *bucketStore) refill(key string, ratePerSecond float64, maxBurst int) *bucket {
	now := time.Now()
	s.maybeSweep(now)

	b, ok := s.entries[key]
	if !ok {
		b = &bucket{tokens: float64(maxBurst), lastFill: now}
		s.entries[key] = b
	}

	elapsed := now.Sub(b.lastFill).Seconds()
	b.tokens = math.Min(float64(maxBurst), b.tokens+elapsed*ratePerSecond)
	b.lastFill = now
	b.lastSeen = now

	return b
}

func (s *bucketStore) maybeSweep(now time.Time) {
	if now.Sub(s.lastSweep) < s.ttl {
		return
	}

	for key, b := range s.entries {
		if now.Sub(b.lastSeen) > s.ttl {
			delete(s.entries, key)
		}
	}
	s.lastSweep = now
}
