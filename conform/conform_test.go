package conform

import (
	"testing"
	"time"
)

func TestResolve_NilConfig(t *testing.T) {
	p := Resolve(nil)

	if p.MaxAttempts != 1 {
		t.Errorf("MaxAttempts = %d, want 1", p.MaxAttempts)
	}
	if p.MaxWait != 0 {
		t.Errorf("MaxWait = %v, want 0", p.MaxWait)
	}
	if p.Bounded() {
		t.Error("identity policy should not be bounded")
	}
}

func TestResolve_ZeroRetryCountMeansOneAttempt(t *testing.T) {
	p := Resolve(&Config{RetryCount: 0})

	if p.MaxAttempts != 1 {
		t.Errorf("MaxAttempts = %d, want 1", p.MaxAttempts)
	}
}

func TestResolve_NegativeRetryCountMeansOneAttempt(t *testing.T) {
	p := Resolve(&Config{RetryCount: -3})

	if p.MaxAttempts != 1 {
		t.Errorf("MaxAttempts = %d, want 1", p.MaxAttempts)
	}
}

func TestResolve_RetryCountIsAttemptBudget(t *testing.T) {
	p := Resolve(&Config{RetryCount: 2})

	if p.MaxAttempts != 2 {
		t.Errorf("MaxAttempts = %d, want 2", p.MaxAttempts)
	}
}

func TestResolve_DefaultUnitIsMilliseconds(t *testing.T) {
	p := Resolve(&Config{MaxWaitTime: 100})

	if p.MaxWait != 100*time.Millisecond {
		t.Errorf("MaxWait = %v, want 100ms", p.MaxWait)
	}
	if !p.Bounded() {
		t.Error("policy with MaxWaitTime should be bounded")
	}
}

func TestResolve_ExplicitUnit(t *testing.T) {
	p := Resolve(&Config{MaxWaitTime: 2, MaxWaitTimeUnit: time.Second})

	if p.MaxWait != 2*time.Second {
		t.Errorf("MaxWait = %v, want 2s", p.MaxWait)
	}
}

func TestResolve_ZeroWaitIsUnbounded(t *testing.T) {
	p := Resolve(&Config{RetryCount: 3, MaxWaitTime: 0})

	if p.MaxWait != 0 {
		t.Errorf("MaxWait = %v, want 0", p.MaxWait)
	}
	if p.Bounded() {
		t.Error("zero MaxWaitTime should leave the wait unbounded")
	}
}

func TestResolve_NegativeWaitIsUnbounded(t *testing.T) {
	p := Resolve(&Config{MaxWaitTime: -5})

	if p.MaxWait != 0 {
		t.Errorf("MaxWait = %v, want 0", p.MaxWait)
	}
}
