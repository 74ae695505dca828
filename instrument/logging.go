package instrument

import (
	"context"
	"errors"

	"github.com/jonwraymond/invoke/observe"
)

// loggingSink emits structured lines around each attempt: info on start
// and success, warn on failure with a debug line carrying the full
// cause chain.
type loggingSink struct {
	logger observe.Logger
}

func (s *loggingSink) OnStart(ctx context.Context) context.Context {
	s.logger.Info(ctx, "executing call")
	return ctx
}

func (s *loggingSink) OnSuccess(ctx context.Context, result any) {
	s.logger.Info(ctx, "call succeeded")
}

func (s *loggingSink) OnFailure(ctx context.Context, err error) {
	s.logger.Warn(ctx, "call failed",
		observe.Field{Key: "error", Value: err.Error()},
	)
	s.logger.Debug(ctx, "call failure cause chain",
		observe.Field{Key: "causes", Value: causeChain(err)},
	)
}

// causeChain renders err and every wrapped cause, outermost first.
func causeChain(err error) []string {
	var chain []string
	for err != nil {
		chain = append(chain, err.Error())
		err = errors.Unwrap(err)
	}
	return chain
}
