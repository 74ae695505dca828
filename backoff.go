package invoke

import (
	"math"
	"math/rand/v2"
	"time"
)

// BackoffStrategy defines how delays increase between attempts.
type BackoffStrategy int

const (
	// BackoffExponential doubles the delay each attempt with jitter.
	BackoffExponential BackoffStrategy = iota
	// BackoffLinear increases delay linearly.
	BackoffLinear
	// BackoffConstant uses the same delay for all retries.
	BackoffConstant
)

// BackoffConfig configures the pause between failed attempts. The
// engine applies no backoff unless one is configured; retries follow
// their failure immediately.
type BackoffConfig struct {
	// InitialDelay is the delay before the first retry.
	// Default: 100ms
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	// Default: 30s
	MaxDelay time.Duration

	// Multiplier is the backoff multiplier for exponential backoff.
	// Default: 2.0
	Multiplier float64

	// Strategy is the backoff strategy.
	// Default: BackoffExponential
	Strategy BackoffStrategy

	// Jitter adds randomness to delays to prevent thundering herd.
	Jitter bool
}

type backoffPolicy struct {
	config BackoffConfig
}

func newBackoffPolicy(config BackoffConfig) *backoffPolicy {
	// Apply defaults
	if config.InitialDelay <= 0 {
		config.InitialDelay = 100 * time.Millisecond
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = 30 * time.Second
	}
	if config.Multiplier <= 0 {
		config.Multiplier = 2.0
	}

	return &backoffPolicy{config: config}
}

// delay returns the pause after the given number of completed attempts.
func (b *backoffPolicy) delay(completed int) time.Duration {
	var delay time.Duration

	switch b.config.Strategy {
	case BackoffConstant:
		delay = b.config.InitialDelay

	case BackoffLinear:
		delay = b.config.InitialDelay * time.Duration(completed)

	case BackoffExponential:
		multiplier := math.Pow(b.config.Multiplier, float64(completed-1))
		delay = time.Duration(float64(b.config.InitialDelay) * multiplier)
	}

	// Cap at max delay
	if delay > b.config.MaxDelay {
		delay = b.config.MaxDelay
	}

	// Add jitter if enabled
	if b.config.Jitter && delay > 0 {
		// Add up to 25% jitter
		// #nosec G404 -- jitter is non-cryptographic timing variance.
		jitter := time.Duration(rand.Int64N(int64(delay / 4)))
		delay = delay + jitter
	}

	return delay
}
