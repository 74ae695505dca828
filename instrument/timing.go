package instrument

import (
	"context"
	"time"
)

// timingSink records elapsed time per attempt. The timer does not
// distinguish success from failure; both paths record under the same
// label.
type timingSink struct {
	ins  *Instruments
	desc Descriptor

	// start is the monotonic start of the current attempt. Attempts
	// are sequential, so a single field suffices.
	start time.Time
}

func (s *timingSink) OnStart(ctx context.Context) context.Context {
	s.start = time.Now()
	return ctx
}

func (s *timingSink) OnSuccess(ctx context.Context, result any) {
	s.ins.recordDuration(ctx, s.desc, time.Since(s.start))
}

func (s *timingSink) OnFailure(ctx context.Context, err error) {
	s.ins.recordDuration(ctx, s.desc, time.Since(s.start))
}
