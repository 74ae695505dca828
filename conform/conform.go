package conform

import "time"

// Config is the conformance configuration declared alongside a unit of
// work. The zero value requests a single attempt with no wait bound.
type Config struct {
	// RetryCount is the declared attempt budget. Zero or negative
	// values mean "exactly one attempt".
	RetryCount int

	// MaxWaitTime bounds how long each attempt may be waited on,
	// expressed in units of MaxWaitTimeUnit. Zero or negative disables
	// the bound (the wait is unbounded).
	MaxWaitTime int64

	// MaxWaitTimeUnit is the unit MaxWaitTime is expressed in.
	// Default: time.Millisecond
	MaxWaitTimeUnit time.Duration
}

// Policy is the resolved conformance policy for one invocation.
// Immutable; its lifetime is a single invocation.
type Policy struct {
	// MaxAttempts is the total attempt budget, always >= 1.
	MaxAttempts int

	// MaxWait bounds the wait for each individual attempt.
	// Zero means wait indefinitely.
	MaxWait time.Duration
}

// Identity is the policy applied when no configuration is declared:
// exactly one attempt, unbounded wait.
func Identity() Policy {
	return Policy{MaxAttempts: 1}
}

// Resolve derives the policy for one invocation from cfg.
//
// A nil cfg yields the identity policy. A declared RetryCount of zero
// is normalized to one attempt; a MaxWaitTime of zero or less leaves
// the wait unbounded.
func Resolve(cfg *Config) Policy {
	if cfg == nil {
		return Identity()
	}

	p := Policy{MaxAttempts: cfg.RetryCount}
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}

	if cfg.MaxWaitTime > 0 {
		unit := cfg.MaxWaitTimeUnit
		if unit <= 0 {
			unit = time.Millisecond
		}
		p.MaxWait = time.Duration(cfg.MaxWaitTime) * unit
	}

	return p
}

// Bounded reports whether each attempt's wait has an upper bound.
func (p Policy) Bounded() bool {
	return p.MaxWait > 0
}
