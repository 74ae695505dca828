package instrument

import "context"

// countingSink increments the process-wide success/failure counters.
// Failures whose root cause is a connection failure additionally bump
// the connect-failure counter; classification never changes retry or
// propagation behavior.
type countingSink struct {
	ins  *Instruments
	desc Descriptor
}

func (s *countingSink) OnStart(ctx context.Context) context.Context {
	return ctx
}

func (s *countingSink) OnSuccess(ctx context.Context, result any) {
	s.ins.addSuccess(ctx, s.desc)
}

func (s *countingSink) OnFailure(ctx context.Context, err error) {
	s.ins.addFailure(ctx, s.desc, err)
}
