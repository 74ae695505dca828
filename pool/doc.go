// Package pool provides the execution context for units of work: an
// elastic goroutine pool that accepts a deferred computation and returns
// a handle on its eventual result.
//
// The pool grows with demand; an optional concurrency cap turns it into
// a bulkhead. Waiting on a handle can be bounded; when the bound elapses
// the attempt's context is cancelled so abandoned work is told to stop
// rather than left running blind.
package pool
