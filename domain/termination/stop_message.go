package termination

import (
	"context"
	"encoding/json"

	"github.com/TristanLib/autogen/domain/message"
)

// ProviderStopMessage is the stable component identifier for
// StopMessageTermination.
const ProviderStopMessage = "autogen.termination.StopMessage"

// StopMessageTerminationConfig holds the serializable parameters of
// StopMessageTermination. It has no fields.
type StopMessageTerminationConfig struct{}

// StopMessageTermination terminates the conversation when a StopMessage
// is received.
type StopMessageTermination struct {
	terminated bool
}

// NewStopMessageTermination creates a condition that fires on the first
// StopMessage in a batch.
func NewStopMessageTermination() *StopMessageTermination {
	return &StopMessageTermination{}
}

// NewStopMessageFromConfig reconstructs the condition from serialized
// parameters.
func NewStopMessageFromConfig(raw json.RawMessage) (Condition, error) {
	return NewStopMessageTermination(), nil
}

// Name returns the identifying name of the condition.
func (c *StopMessageTermination) Name() string {
	return "StopMessageTermination"
}

// Terminated reports whether the condition has been met.
func (c *StopMessageTermination) Terminated() bool {
	return c.terminated
}

// Evaluate fires on the first StopMessage in the batch.
func (c *StopMessageTermination) Evaluate(ctx context.Context, messages []message.Message) (*message.StopMessage, error) {
	if c.terminated {
		return nil, alreadyTerminated(c.Name())
	}
	for _, m := range messages {
		if _, ok := m.(*message.StopMessage); ok {
			c.terminated = true
			return message.NewStopMessage(c.Name(), "Stop message received"), nil
		}
	}
	return nil, nil
}

// Reset clears the terminated state.
func (c *StopMessageTermination) Reset() {
	c.terminated = false
}

// Provider returns the component identifier.
func (c *StopMessageTermination) Provider() string {
	return ProviderStopMessage
}

// Config serializes the condition's configuration.
func (c *StopMessageTermination) Config() (json.RawMessage, error) {
	return json.Marshal(StopMessageTerminationConfig{})
}
