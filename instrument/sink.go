package instrument

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/invoke/observe"
)

// Sink receives lifecycle notifications for one invocation's attempts.
//
// Contract:
//   - Ordering: every OnStart is followed by exactly one of
//     OnSuccess/OnFailure before the next OnStart; attempts never
//     overlap, so implementations need no internal locking.
//   - Context: OnStart may return a derived context (a tracing sink
//     attaches its span); the engine threads it through the attempt.
//   - Errors: sinks must not influence the invocation outcome.
type Sink interface {
	OnStart(ctx context.Context) context.Context
	OnSuccess(ctx context.Context, result any)
	OnFailure(ctx context.Context, err error)
}

// noopSink is inert. Used when no descriptor is declared.
type noopSink struct{}

func (noopSink) OnStart(ctx context.Context) context.Context { return ctx }
func (noopSink) OnSuccess(ctx context.Context, result any)   {}
func (noopSink) OnFailure(ctx context.Context, err error)    {}

// Noop returns a sink that ignores every lifecycle call.
func Noop() Sink { return noopSink{} }

// New builds the sink for one invocation from its descriptor.
//
// A nil descriptor yields the no-op sink. Otherwise one sub-sink per
// enabled capability is composed, notified in a fixed order: timing,
// tracing, logging, counting.
func New(desc *Descriptor, ins *Instruments, logger observe.Logger, tracer trace.Tracer) Sink {
	if desc == nil {
		return Noop()
	}

	var sinks []Sink
	if desc.Timed && ins != nil {
		sinks = append(sinks, &timingSink{ins: ins, desc: *desc})
	}
	if desc.Traced && tracer != nil {
		sinks = append(sinks, &tracingSink{tracer: tracer, desc: *desc})
	}
	if desc.Logged && logger != nil {
		sinks = append(sinks, &loggingSink{logger: logger.WithOperation(desc.Category, desc.Operation)})
	}
	if desc.Counted && ins != nil {
		sinks = append(sinks, &countingSink{ins: ins, desc: *desc})
	}

	if len(sinks) == 0 {
		return Noop()
	}
	return Compose(sinks...)
}

// Compose fans lifecycle calls out to each sink in order. A panic in
// one sink is recovered so it cannot abort the invocation or starve the
// remaining sinks.
func Compose(sinks ...Sink) Sink {
	return &composite{sinks: sinks}
}

type composite struct {
	sinks []Sink
}

func (c *composite) OnStart(ctx context.Context) context.Context {
	for _, s := range c.sinks {
		ctx = guardStart(s, ctx)
	}
	return ctx
}

func (c *composite) OnSuccess(ctx context.Context, result any) {
	for _, s := range c.sinks {
		guard(func() { s.OnSuccess(ctx, result) })
	}
}

func (c *composite) OnFailure(ctx context.Context, err error) {
	for _, s := range c.sinks {
		guard(func() { s.OnFailure(ctx, err) })
	}
}

func guardStart(s Sink, ctx context.Context) context.Context {
	out := ctx
	guard(func() { out = s.OnStart(ctx) })
	return out
}

func guard(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
