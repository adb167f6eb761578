package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryLimiter_ThresholdAndWindow(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	limiter := NewMemoryLimiter(testPolicy, clock.Now)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, "ada"))
	}
	limited, _ := limiter.IsLimited(ctx, "ada")
	assert.True(t, limited)

	clock.Advance(15*time.Minute - time.Second)
	limited, _ = limiter.IsLimited(ctx, "ada")
	assert.True(t, limited)

	clock.Advance(time.Second)
	limited, _ = limiter.IsLimited(ctx, "ada")
	assert.False(t, limited, "window ends exactly 15 minutes after the last failure")
}

func TestMemoryLimiter_ExpiredCounterRestarts(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	limiter := NewMemoryLimiter(testPolicy, clock.Now)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, "ada"))
	}
	clock.Advance(16 * time.Minute)
	require.NoError(t, limiter.RecordFailure(ctx, "ada"))

	limited, _ := limiter.IsLimited(ctx, "ada")
	assert.False(t, limited)
}

func TestMemoryLimiter_ClearAndPurge(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	limiter := NewMemoryLimiter(testPolicy, clock.Now)
	ctx := context.Background()

	require.NoError(t, limiter.RecordFailure(ctx, "ada"))
	require.NoError(t, limiter.RecordFailure(ctx, "bob"))
	require.NoError(t, limiter.Clear(ctx, "ada"))

	clock.Advance(time.Hour)
	assert.Equal(t, 1, limiter.Purge())
	assert.Equal(t, 0, limiter.Purge())
}

func TestMemoryLimiter_ConcurrentFailures(t *testing.T) {
	limiter := NewMemoryLimiter(Policy{MaxFailures: 100, Window: time.Minute}, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = limiter.RecordFailure(ctx, "ada")
		}()
	}
	wg.Wait()

	limited, err := limiter.IsLimited(ctx, "ada")
	require.NoError(t, err)
	assert.True(t, limited)
}
