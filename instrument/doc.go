// Package instrument provides the lifecycle sinks the invocation engine
// notifies around each attempt: timing, tracing, logging, and counting,
// selected per call by a Descriptor and fanned out by a composite.
//
// Counter and timer aggregates are process-wide, keyed by the
// (category, operation) label; the sinks themselves are built fresh for
// each invocation and hold only the transient state one attempt needs.
package instrument
