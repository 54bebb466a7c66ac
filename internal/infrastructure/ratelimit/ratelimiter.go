// Package ratelimit provides fixed-window submission counters keyed by
// submitter identity. The limiter is coarse abuse deterrence, not a hard
// security boundary.
package ratelimit

import (
	"context"
	"time"
)

// RateLimiter bounds how often a key may pass within a window. Allow
// reports whether the attempt is admitted; the attempt itself is counted
// either way.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Reset(ctx context.Context, key string) error
}

// Policy couples a ceiling with its window so callers configure limits in
// one place.
type Policy struct {
	Limit  int
	Window time.Duration
}
