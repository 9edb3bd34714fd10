package termination

import (
	"context"
	"fmt"

	"github.com/TristanLib/autogen/domain/message"
)

// Func is a user-supplied predicate over a batch of messages. An error
// returned by the function propagates unchanged to the caller of
// Evaluate.
type Func func(ctx context.Context, messages []message.Message) (bool, error)

// FunctionalTermination terminates the conversation when a user-supplied
// function reports that the condition is met. It has no serializable
// configuration.
type FunctionalTermination struct {
	fn         Func
	terminated bool
}

// NewFunctionalTermination creates a condition driven by fn.
func NewFunctionalTermination(fn Func) (*FunctionalTermination, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: func must not be nil", ErrInvalidConfiguration)
	}
	return &FunctionalTermination{fn: fn}, nil
}

// Name returns the identifying name of the condition.
func (c *FunctionalTermination) Name() string {
	return "FunctionalTermination"
}

// Terminated reports whether the condition has been met.
func (c *FunctionalTermination) Terminated() bool {
	return c.terminated
}

// Evaluate fires when the predicate function returns true. Errors from
// the function are returned as-is, without marking the condition
// terminated.
func (c *FunctionalTermination) Evaluate(ctx context.Context, messages []message.Message) (*message.StopMessage, error) {
	if c.terminated {
		return nil, alreadyTerminated(c.Name())
	}
	met, err := c.fn(ctx, messages)
	if err != nil {
		return nil, err
	}
	if met {
		c.terminated = true
		return message.NewStopMessage(c.Name(), "Functional termination condition met"), nil
	}
	return nil, nil
}

// Reset clears the terminated state.
func (c *FunctionalTermination) Reset() {
	c.terminated = false
}
