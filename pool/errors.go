package pool

import "errors"

// Sentinel errors for pool operations.
var (
	// ErrPoolFull is returned when the pool is at capacity and no slot
	// frees up within the configured wait.
	ErrPoolFull = errors.New("pool: at capacity")

	// ErrAwaitTimeout is returned when a bounded wait on a handle
	// elapses before the unit of work resolves.
	ErrAwaitTimeout = errors.New("pool: wait deadline exceeded")

	// ErrNilFunc is returned when a nil unit of work is submitted.
	ErrNilFunc = errors.New("pool: unit of work is required")
)
