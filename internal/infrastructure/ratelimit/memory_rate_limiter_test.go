package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "203.0.113.7", 5, 15*time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "203.0.113.7", 5, 15*time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "6th attempt should be denied")
}

func TestMemoryRateLimiter_ResetsAfterWindow(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	current := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "203.0.113.7", 5, 15*time.Minute)
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "203.0.113.7", 5, 15*time.Minute)
	require.NoError(t, err)
	require.False(t, allowed)

	current = current.Add(15*time.Minute + time.Second)

	allowed, err = limiter.Allow(ctx, "203.0.113.7", 5, 15*time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "attempt after the window should reset the counter")

	// Counter restarted at 1, so four more attempts fit
	for i := 0; i < 4; i++ {
		allowed, err = limiter.Allow(ctx, "203.0.113.7", 5, 15*time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, err = limiter.Allow(ctx, "203.0.113.7", 5, 15*time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestMemoryRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "a@x.ac.uk|+447700900123", 3, 30*time.Minute)
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "a@x.ac.uk|+447700900123", 3, 30*time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "b@x.ac.uk|+447700900456", 3, 30*time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "a different identity pair should not be throttled")
}

func TestMemoryRateLimiter_Reset(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := limiter.Allow(ctx, "203.0.113.7", 5, 15*time.Minute)
		require.NoError(t, err)
	}

	require.NoError(t, limiter.Reset(ctx, "203.0.113.7"))

	allowed, err := limiter.Allow(ctx, "203.0.113.7", 5, 15*time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_SweepDropsStaleRecords(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	current := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }
	limiter.lastSweep = current
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		_, err := limiter.Allow(ctx, string(rune('a'+i%26))+string(rune('0'+i/26)), 5, time.Minute)
		require.NoError(t, err)
	}
	assert.Len(t, limiter.records, 100)

	current = current.Add(sweepInterval + time.Minute)
	_, err := limiter.Allow(ctx, "fresh", 5, time.Minute)
	require.NoError(t, err)

	assert.Len(t, limiter.records, 1, "stale windows should be swept")
}
