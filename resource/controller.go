// Package resource bounds how hard a sweep drives the machine: how many grid
// points are evaluated at once and how many evaluations start per second.
package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the maximum number of concurrent evaluations.
	// If 0, defaults to 1.
	MaxWorkers int64

	// EvaluationsPerSec caps how many evaluations may start per second.
	// If 0, unlimited.
	EvaluationsPerSec float64
}

// Controller hands out worker slots and paces evaluation starts.
type Controller struct {
	cfg Config

	workers *semaphore.Weighted
	active  atomic.Int64

	limiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	c := &Controller{
		cfg:     cfg,
		workers: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.EvaluationsPerSec > 0 {
		burst := int(cfg.EvaluationsPerSec)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.EvaluationsPerSec), burst)
	}

	return c
}

// MaxWorkers returns the configured worker limit.
func (c *Controller) MaxWorkers() int64 {
	return c.cfg.MaxWorkers
}

// Acquire waits for a free worker slot and for the rate limiter.
// On success the caller must call Release.
func (c *Controller) Acquire(ctx context.Context) error {
	if err := c.workers.Acquire(ctx, 1); err != nil {
		return err
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.workers.Release(1)
			return err
		}
	}
	c.active.Add(1)
	return nil
}

// TryAcquire reserves a worker slot without blocking. It fails when no slot
// is free or the rate limiter has no token.
func (c *Controller) TryAcquire() bool {
	if !c.workers.TryAcquire(1) {
		return false
	}
	if c.limiter != nil && !c.limiter.Allow() {
		c.workers.Release(1)
		return false
	}
	c.active.Add(1)
	return true
}

// Release returns a worker slot.
func (c *Controller) Release() {
	c.active.Add(-1)
	c.workers.Release(1)
}

// Active returns the number of slots currently held.
func (c *Controller) Active() int64 {
	return c.active.Load()
}
