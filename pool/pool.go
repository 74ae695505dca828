package pool

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// Config configures the pool.
type Config struct {
	// MaxConcurrent caps the number of units running at once.
	// Default: 0 (unbounded; the pool grows with demand)
	MaxConcurrent int

	// MaxWait is the maximum time Submit waits for a slot when the
	// pool is at capacity.
	// Default: 0 (no waiting, fail immediately)
	MaxWait time.Duration
}

// Pool runs units of work on their own goroutines.
type Pool struct {
	config Config
	sem    *semaphore.Weighted // nil when unbounded

	mu        sync.Mutex
	active    int
	maxActive int
	rejected  int64
}

// New creates a new pool.
func New(config Config) *Pool {
	p := &Pool{config: config}
	if config.MaxConcurrent > 0 {
		p.sem = semaphore.NewWeighted(int64(config.MaxConcurrent))
	}
	return p
}

// Handle represents an in-flight or completed unit of work.
type Handle[T any] struct {
	done   chan struct{}
	cancel context.CancelFunc

	// value and err are written once, before done is closed.
	value T
	err   error
}

// Submit runs fn on its own goroutine and returns a handle on its
// eventual result. The unit receives a context derived from ctx that is
// cancelled when a bounded Await gives up on it.
//
// With an unbounded pool Submit never blocks. With a concurrency cap it
// fails with ErrPoolFull when no slot is available within Config.MaxWait.
func Submit[T any](ctx context.Context, p *Pool, fn func(context.Context) (T, error)) (*Handle[T], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}

	if err := p.acquire(ctx); err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	h := &Handle[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		// Release the slot before the handle resolves so a caller that
		// observes completion also observes the freed capacity.
		defer close(h.done)
		defer cancel()
		defer p.release()
		defer func() {
			if r := recover(); r != nil {
				h.err = fmt.Errorf("pool: unit of work panicked: %v\n%s", r, debug.Stack())
			}
		}()

		h.value, h.err = fn(runCtx)
	}()

	return h, nil
}

// Await blocks until the handle resolves, maxWait elapses, or ctx is
// cancelled, whichever comes first. A maxWait of zero or less waits
// indefinitely.
//
// When the wait is abandoned (timeout or cancellation) the unit's
// context is cancelled; the goroutine keeps its slot until the unit
// actually returns.
func (h *Handle[T]) Await(ctx context.Context, maxWait time.Duration) (T, error) {
	var zero T

	var timeout <-chan time.Time
	if maxWait > 0 {
		timer := time.NewTimer(maxWait)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-h.done:
		return h.value, h.err
	case <-timeout:
		h.cancel()
		return zero, ErrAwaitTimeout
	case <-ctx.Done():
		h.cancel()
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the unit of work has resolved.
func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

func (p *Pool) acquire(ctx context.Context) error {
	if p.sem == nil {
		p.markActive()
		return nil
	}

	// Fast path: try non-blocking acquire
	if p.sem.TryAcquire(1) {
		p.markActive()
		return nil
	}

	// No immediate slot available
	if p.config.MaxWait <= 0 {
		p.markRejected()
		return ErrPoolFull
	}

	// Wait for a slot
	waitCtx, cancel := context.WithTimeout(ctx, p.config.MaxWait)
	defer cancel()

	if err := p.sem.Acquire(waitCtx, 1); err != nil {
		p.markRejected()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrPoolFull
	}

	p.markActive()
	return nil
}

func (p *Pool) release() {
	p.mu.Lock()
	p.active--
	p.mu.Unlock()

	if p.sem != nil {
		p.sem.Release(1)
	}
}

func (p *Pool) markActive() {
	p.mu.Lock()
	p.active++
	if p.active > p.maxActive {
		p.maxActive = p.active
	}
	p.mu.Unlock()
}

func (p *Pool) markRejected() {
	p.mu.Lock()
	p.rejected++
	p.mu.Unlock()
}

// Stats returns a snapshot of pool statistics.
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	return PoolStats{
		Active:        p.active,
		MaxActive:     p.maxActive,
		MaxConcurrent: p.config.MaxConcurrent,
		Rejected:      p.rejected,
	}
}

// PoolStats contains pool statistics.
type PoolStats struct {
	Active        int
	MaxActive     int
	MaxConcurrent int // zero when unbounded
	Rejected      int64
}
