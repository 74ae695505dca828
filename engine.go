package invoke

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/invoke/conform"
	"github.com/jonwraymond/invoke/instrument"
	"github.com/jonwraymond/invoke/observe"
	"github.com/jonwraymond/invoke/pool"
)

// Engine orchestrates invocations: it resolves each unit's policy and
// sink, submits attempts to the pool, and applies the retry and wait
// bounds. Safe for concurrent use; one engine is meant to be shared.
type Engine struct {
	pool        *pool.Pool
	instruments *instrument.Instruments
	logger      observe.Logger
	tracer      trace.Tracer
	backoff     *backoffPolicy
}

type engineConfig struct {
	pool    *pool.Pool
	meter   metric.Meter
	logger  observe.Logger
	tracer  trace.Tracer
	backoff *BackoffConfig
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithObserver wires the engine's telemetry to an Observer: its meter
// backs the counters and timers, its logger backs the logging sink, and
// its tracer backs attempt spans.
func WithObserver(obs observe.Observer) Option {
	return func(c *engineConfig) {
		c.meter = obs.Meter()
		c.logger = obs.Logger()
		c.tracer = obs.Tracer()
	}
}

// WithMeter sets the meter backing the engine's counters and timers.
func WithMeter(m metric.Meter) Option {
	return func(c *engineConfig) {
		c.meter = m
	}
}

// WithLogger sets the logger backing the logging sink.
func WithLogger(l observe.Logger) Option {
	return func(c *engineConfig) {
		c.logger = l
	}
}

// WithTracer sets the tracer backing attempt spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *engineConfig) {
		c.tracer = t
	}
}

// WithPool sets the pool attempts run on. Pools are shared
// process-wide state; several engines may use one pool.
func WithPool(p *pool.Pool) Option {
	return func(c *engineConfig) {
		c.pool = p
	}
}

// WithBackoff adds a pause between failed attempts.
func WithBackoff(cfg BackoffConfig) Option {
	return func(c *engineConfig) {
		c.backoff = &cfg
	}
}

// New creates an Engine. Without options it runs attempts on an
// unbounded pool, logs at info to stderr, and keeps counters on a
// no-op meter.
func New(opts ...Option) (*Engine, error) {
	var cfg engineConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.pool == nil {
		cfg.pool = pool.New(pool.Config{})
	}
	if cfg.meter == nil {
		cfg.meter = noop.NewMeterProvider().Meter("invoke")
	}
	if cfg.logger == nil {
		cfg.logger = observe.NewLogger("info")
	}

	ins, err := instrument.NewInstruments(cfg.meter)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		pool:        cfg.pool,
		instruments: ins,
		logger:      cfg.logger,
		tracer:      cfg.tracer,
	}
	if cfg.backoff != nil {
		e.backoff = newBackoffPolicy(*cfg.backoff)
	}
	return e, nil
}

// Pool returns the pool attempts run on.
func (e *Engine) Pool() *pool.Pool {
	return e.pool
}

// Execute runs one logical invocation of u on e.
//
// The caller blocks until a value or the final failure is available,
// while each attempt's computation runs on a pool worker. Attempts are
// strictly sequential; each gets its own start and terminal
// instrumentation events, in order. A bounded wait that elapses counts
// as an attempt failure (the abandoned attempt's context is cancelled)
// and consumes one attempt like any other error.
//
// On a successful attempt the value is returned and remaining attempts
// are forfeited. Once the budget is exhausted Execute returns a *Error
// wrapping the most recent cause. Cancellation of ctx ends the
// invocation without consuming the remaining budget.
func Execute[T any](ctx context.Context, e *Engine, u Unit[T]) (T, error) {
	var zero T
	if u.Fn == nil {
		return zero, ErrNilUnit
	}

	policy := conform.Resolve(u.Conform)
	sink := instrument.New(u.Instrument, e.instruments, e.logger, e.tracer)

	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		if attempt > 1 {
			if err := e.pause(ctx, attempt-1); err != nil {
				return zero, err
			}
		}

		actx := sink.OnStart(ctx)

		var result T
		h, err := pool.Submit(actx, e.pool, u.Fn)
		if err == nil {
			result, err = h.Await(actx, policy.MaxWait)
		}

		if err == nil {
			sink.OnSuccess(actx, result)
			return result, nil
		}

		sink.OnFailure(actx, err)
		lastErr = err

		// The caller gave up; further attempts cannot help.
		if errors.Is(err, context.Canceled) {
			return zero, err
		}
	}

	return zero, &Error{Attempts: policy.MaxAttempts, Cause: lastErr}
}

// pause waits out the backoff delay after the given number of completed
// attempts, or returns early when ctx is cancelled.
func (e *Engine) pause(ctx context.Context, completed int) error {
	if e.backoff == nil {
		return nil
	}

	delay := e.backoff.delay(completed)
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
