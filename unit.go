package invoke

import (
	"context"

	"github.com/jonwraymond/invoke/conform"
	"github.com/jonwraymond/invoke/instrument"
)

// Unit is a deferred computation together with the configuration
// declared for it. It is immutable once constructed; the engine reads
// it and never mutates it.
type Unit[T any] struct {
	// Fn is the computation. It must honor ctx cancellation if it is
	// to stop when a bounded wait abandons it.
	Fn func(ctx context.Context) (T, error)

	// Conform declares the retry and wait policy. Nil means exactly
	// one attempt with an unbounded wait.
	Conform *conform.Config

	// Instrument declares the instrumentation and the label it reports
	// under. Nil means no instrumentation at all.
	Instrument *instrument.Descriptor
}
