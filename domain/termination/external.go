package termination

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/TristanLib/autogen/domain/message"
)

// ProviderExternal is the stable component identifier for
// ExternalTermination.
const ProviderExternal = "autogen.termination.External"

// ExternalTerminationConfig holds the serializable parameters of
// ExternalTermination. It has no fields.
type ExternalTerminationConfig struct{}

// ExternalTermination terminates the conversation when Set has been
// called. Set may be invoked from any goroutine at any time; the pending
// flag is the only concurrency-sensitive state in this package. The next
// Evaluate call after Set fires regardless of batch content. Calling Set
// after the condition has fired has no observable effect until Reset.
type ExternalTermination struct {
	pending    atomic.Bool
	terminated bool
}

// NewExternalTermination creates an externally controlled condition.
func NewExternalTermination() *ExternalTermination {
	return &ExternalTermination{}
}

// NewExternalFromConfig reconstructs the condition from serialized
// parameters.
func NewExternalFromConfig(raw json.RawMessage) (Condition, error) {
	return NewExternalTermination(), nil
}

// Name returns the identifying name of the condition.
func (c *ExternalTermination) Name() string {
	return "ExternalTermination"
}

// Terminated reports whether the condition has been met.
func (c *ExternalTermination) Terminated() bool {
	return c.terminated
}

// Set arms the condition. Safe to call from a goroutine other than the
// one driving Evaluate.
func (c *ExternalTermination) Set() {
	c.pending.Store(true)
}

// Evaluate fires if Set has been called, regardless of batch content.
func (c *ExternalTermination) Evaluate(ctx context.Context, messages []message.Message) (*message.StopMessage, error) {
	if c.terminated {
		return nil, alreadyTerminated(c.Name())
	}
	if c.pending.Load() {
		c.terminated = true
		return message.NewStopMessage(c.Name(), "External termination requested"), nil
	}
	return nil, nil
}

// Reset clears the terminated state and the pending flag.
func (c *ExternalTermination) Reset() {
	c.terminated = false
	c.pending.Store(false)
}

// Provider returns the component identifier.
func (c *ExternalTermination) Provider() string {
	return ProviderExternal
}

// Config serializes the condition's configuration.
func (c *ExternalTermination) Config() (json.RawMessage, error) {
	return json.Marshal(ExternalTerminationConfig{})
}
