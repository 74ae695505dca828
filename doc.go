// Package invoke executes units of work under declarative conformance
// and instrumentation: a call is submitted to a worker pool, retried up
// to a bounded number of attempts, optionally held to a per-attempt
// wait bound, and surrounded by timing, logging, counting, and tracing
// lifecycle events.
//
// Configuration travels with the unit of work rather than living at the
// call site:
//
//	profile, err := invoke.Execute(ctx, eng, invoke.Unit[UserProfile]{
//		Fn: func(ctx context.Context) (UserProfile, error) {
//			return profileService.ByProfileID(ctx, profileID)
//		},
//		Conform:    &conform.Config{RetryCount: 2, MaxWaitTime: 100},
//		Instrument: instrument.NewDescriptor("userprofile", "byProfileId"),
//	})
//
// A unit with no configuration runs exactly once, waits indefinitely,
// and emits nothing. On exhaustion the caller receives a single *Error
// wrapping the cause of the final attempt; intermediate causes are not
// retained.
package invoke
