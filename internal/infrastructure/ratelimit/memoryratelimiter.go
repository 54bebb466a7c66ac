package ratelimit

import (
	"context"
	"sync"
	"time"
)

// sweepInterval bounds how often stale window records are purged.
const sweepInterval = 10 * time.Minute

type windowRecord struct {
	count   int
	resetAt time.Time
}

// MemoryRateLimiter is the in-process fallback used when Redis is not
// configured. Counters reset on restart and are not shared between
// instances; stale entries are swept periodically so the map stays bounded.
type MemoryRateLimiter struct {
	mu        sync.Mutex
	records   map[string]*windowRecord
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		records:   make(map[string]*windowRecord),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.maybeSweep(now)

	mapKey := key + ":" + window.String()

	record, ok := l.records[mapKey]
	if !ok || now.After(record.resetAt) {
		l.records[mapKey] = &windowRecord{count: 1, resetAt: now.Add(window)}
		return true, nil
	}

	if record.count >= limit {
		return false, nil
	}

	record.count++
	return true, nil
}

func (l *MemoryRateLimiter) Reset(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for mapKey := range l.records {
		if len(mapKey) >= len(key) && mapKey[:len(key)] == key {
			delete(l.records, mapKey)
		}
	}
	return nil
}

// maybeSweep drops records whose window has long elapsed. Called with the
// mutex held.
func (l *MemoryRateLimiter) maybeSweep(now time.Time) {
	if now.Sub(l.lastSweep) < sweepInterval {
		return
	}
	l.lastSweep = now

	for mapKey, record := range l.records {
		if now.After(record.resetAt) {
			delete(l.records, mapKey)
		}
	}
}
