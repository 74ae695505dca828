// Package conform holds the declarative conformance configuration for a
// unit of work and resolves it into the immutable per-invocation policy
// the engine enforces (attempt budget, per-attempt wait bound).
//
// It is pure data and normalization: no execution, no clocks, no I/O.
package conform
