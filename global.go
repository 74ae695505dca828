package invoke

import (
	"context"
	"log"
	"sync"
)

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// Default returns the shared, lazy-initialized default engine.
// It uses New() if SetDefault has not been called.
func Default() *Engine {
	defaultOnce.Do(func() {
		if defaultEngine == nil {
			eng, err := New()
			if err != nil {
				// New without options cannot fail: the no-op meter
				// never rejects instrument creation.
				panic(err)
			}
			defaultEngine = eng
		}
	})
	return defaultEngine
}

// SetDefault configures the default engine.
// It must be called before Default() is used (e.g. at startup).
// If called after initialization, it logs a warning and does nothing.
func SetDefault(e *Engine) {
	if e == nil {
		return
	}

	// Check if already initialized to provide a warning.
	// Note: This check is not strictly race-free vs Default, but sufficient for startup-time verification.
	if defaultEngine != nil {
		log.Printf("invoke: SetDefault called after default engine already initialized; ignoring.")
		return
	}

	defaultOnce.Do(func() {
		defaultEngine = e
	})
}

// Do runs one invocation on the default engine.
func Do[T any](ctx context.Context, u Unit[T]) (T, error) {
	return Execute(ctx, Default(), u)
}
