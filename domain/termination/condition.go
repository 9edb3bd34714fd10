// Package termination provides stateful conditions that decide when a
// multi-agent conversation must stop.
//
// A condition is evaluated by the conversation loop with the batch of
// messages produced since the previous evaluation. When a condition is
// met it returns a StopMessage carrying the reason and the condition's
// name, and latches into a terminated state. Evaluating a terminated
// condition is a caller error and fails with ErrAlreadyTerminated until
// Reset is called.
package termination

import (
	"context"

	"github.com/TristanLib/autogen/domain/message"
)

// Condition is the contract every termination condition implements.
type Condition interface {
	// Name returns the stable identifying name of the condition. It is
	// used as the source of the stop directive the condition emits.
	Name() string

	// Terminated reports whether the condition has already been met.
	// It never mutates state.
	Terminated() bool

	// Evaluate inspects the messages produced since the last call and
	// returns a stop directive if the condition is now met, or nil.
	// The batch must be the incremental slice of new messages, in
	// conversation order, not the full history. Calling Evaluate on a
	// terminated condition returns ErrAlreadyTerminated.
	Evaluate(ctx context.Context, messages []message.Message) (*message.StopMessage, error)

	// Reset restores the condition to its initial, untriggered state.
	// It is idempotent and never fails.
	Reset()
}
