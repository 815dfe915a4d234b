package embedding

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Wait(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 5})

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, r.Wait(ctx))
	}
}

func TestRateLimiter_WaitRespectsCancellation(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1})

	ctx := context.Background()
	require.NoError(t, r.Wait(ctx)) // consumes the burst

	ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.Error(t, r.Wait(ctx))
}

func TestRateLimiter_BackoffAfter429(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1000, BurstSize: 10})
	r.RecordRateLimitError(60)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, r.Wait(ctx))
}

func TestNewRateLimiter_ZeroConfigFallsBack(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{})
	require.NotNil(t, r)
	assert.NoError(t, r.Wait(context.Background()))
}
