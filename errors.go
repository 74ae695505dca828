package invoke

import (
	"errors"
	"fmt"
)

// ErrNilUnit is returned when a unit of work has no function.
var ErrNilUnit = errors.New("invoke: unit of work function is required")

// Error is the terminal failure returned once the attempt budget is
// exhausted. It wraps the cause of the last attempt only; earlier
// causes are discarded.
type Error struct {
	// Attempts is the number of attempts made.
	Attempts int

	// Cause is the failure of the final attempt.
	Cause error
}

func (e *Error) Error() string {
	if e.Attempts == 1 {
		return fmt.Sprintf("invoke: attempt failed: %v", e.Cause)
	}
	return fmt.Sprintf("invoke: all %d attempts failed: %v", e.Attempts, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
