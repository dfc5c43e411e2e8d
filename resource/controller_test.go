package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Workers(t *testing.T) {
	c := NewController(Config{MaxWorkers: 2})
	assert.Equal(t, int64(2), c.MaxWorkers())

	require.NoError(t, c.Acquire(context.Background()))
	require.NoError(t, c.Acquire(context.Background()))
	assert.Equal(t, int64(2), c.Active())

	// Third should fail without blocking
	assert.False(t, c.TryAcquire())

	// And time out when blocking
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := c.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	c.Release()
	assert.Equal(t, int64(1), c.Active())
	assert.True(t, c.TryAcquire())

	c.Release()
	c.Release()
	assert.Equal(t, int64(0), c.Active())
}

func TestController_DefaultWorkers(t *testing.T) {
	c := NewController(Config{})
	assert.Equal(t, int64(1), c.MaxWorkers())

	assert.True(t, c.TryAcquire())
	assert.False(t, c.TryAcquire())
	c.Release()
}

func TestController_RateLimit(t *testing.T) {
	// One token per hour, burst one: the first start passes, the second waits.
	c := NewController(Config{MaxWorkers: 4, EvaluationsPerSec: 1.0 / 3600})

	require.NoError(t, c.Acquire(context.Background()))
	c.Release()

	assert.False(t, c.TryAcquire())
	assert.Equal(t, int64(0), c.Active())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := c.Acquire(ctx)
	require.Error(t, err)
	assert.Equal(t, int64(0), c.Active())

	// The worker slot taken before the failed wait was returned.
	assert.True(t, c.workers.TryAcquire(4))
}
