package termination

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TristanLib/autogen/domain/message"
)

// ProviderHandoff is the stable component identifier for
// HandoffTermination.
const ProviderHandoff = "autogen.termination.Handoff"

// HandoffTerminationConfig holds the serializable parameters of
// HandoffTermination.
type HandoffTerminationConfig struct {
	Target string `json:"target"`
}

// HandoffTermination terminates the conversation when a HandoffMessage
// with the configured target is received.
type HandoffTermination struct {
	target     string
	terminated bool
}

// NewHandoffTermination creates a condition that fires on a handoff to
// the given target.
func NewHandoffTermination(target string) (*HandoffTermination, error) {
	if target == "" {
		return nil, fmt.Errorf("%w: target must not be empty", ErrInvalidConfiguration)
	}
	return &HandoffTermination{target: target}, nil
}

// NewHandoffFromConfig reconstructs the condition from serialized
// parameters.
func NewHandoffFromConfig(raw json.RawMessage) (Condition, error) {
	var cfg HandoffTerminationConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return NewHandoffTermination(cfg.Target)
}

// Name returns the identifying name of the condition.
func (c *HandoffTermination) Name() string {
	return "HandoffTermination"
}

// Terminated reports whether the condition has been met.
func (c *HandoffTermination) Terminated() bool {
	return c.terminated
}

// Evaluate fires on the first handoff message targeting the configured
// agent.
func (c *HandoffTermination) Evaluate(ctx context.Context, messages []message.Message) (*message.StopMessage, error) {
	if c.terminated {
		return nil, alreadyTerminated(c.Name())
	}
	for _, m := range messages {
		if handoff, ok := m.(*message.HandoffMessage); ok && handoff.Target == c.target {
			c.terminated = true
			reason := fmt.Sprintf("Handoff to %s from %s detected.", c.target, handoff.Source())
			return message.NewStopMessage(c.Name(), reason), nil
		}
	}
	return nil, nil
}

// Reset clears the terminated state.
func (c *HandoffTermination) Reset() {
	c.terminated = false
}

// Provider returns the component identifier.
func (c *HandoffTermination) Provider() string {
	return ProviderHandoff
}

// Config serializes the condition's configuration.
func (c *HandoffTermination) Config() (json.RawMessage, error) {
	return json.Marshal(HandoffTerminationConfig{Target: c.target})
}
