// Package observe provides the telemetry bootstrap for the invocation
// engine: a structured logger, and OpenTelemetry tracer/meter providers
// wired to configurable exporters.
//
// It is a pure instrumentation library: no execution, no transport, no
// I/O beyond exporter setup. Consumers hand the Observer to invoke.New
// so the engine's instrumentation sinks have somewhere to report.
package observe
