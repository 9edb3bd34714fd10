package termination

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TristanLib/autogen/domain/message"
)

// ProviderTextMessage is the stable component identifier for
// TextMessageTermination.
const ProviderTextMessage = "autogen.termination.TextMessage"

// TextMessageTerminationConfig holds the serializable parameters of
// TextMessageTermination.
type TextMessageTerminationConfig struct {
	// Source restricts the condition to text messages from one agent.
	// Empty matches any source.
	Source string `json:"source,omitempty"`
}

// TextMessageTermination terminates the conversation when a TextMessage
// is received, optionally restricted to one source.
type TextMessageTermination struct {
	source     string
	terminated bool
}

// NewTextMessageTermination creates a condition that fires on the first
// text message from source. An empty source matches any agent.
func NewTextMessageTermination(source string) *TextMessageTermination {
	return &TextMessageTermination{source: source}
}

// NewTextMessageFromConfig reconstructs the condition from serialized
// parameters.
func NewTextMessageFromConfig(raw json.RawMessage) (Condition, error) {
	var cfg TextMessageTerminationConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return NewTextMessageTermination(cfg.Source), nil
}

// Name returns the identifying name of the condition.
func (c *TextMessageTermination) Name() string {
	return "TextMessageTermination"
}

// Terminated reports whether the condition has been met.
func (c *TextMessageTermination) Terminated() bool {
	return c.terminated
}

// Evaluate fires on the first qualifying text message in the batch.
func (c *TextMessageTermination) Evaluate(ctx context.Context, messages []message.Message) (*message.StopMessage, error) {
	if c.terminated {
		return nil, alreadyTerminated(c.Name())
	}
	for _, m := range messages {
		if _, ok := m.(*message.TextMessage); !ok {
			continue
		}
		if c.source == "" || m.Source() == c.source {
			c.terminated = true
			reason := fmt.Sprintf("Text message received from '%s'", m.Source())
			return message.NewStopMessage(c.Name(), reason), nil
		}
	}
	return nil, nil
}

// Reset clears the terminated state.
func (c *TextMessageTermination) Reset() {
	c.terminated = false
}

// Provider returns the component identifier.
func (c *TextMessageTermination) Provider() string {
	return ProviderTextMessage
}

// Config serializes the condition's configuration.
func (c *TextMessageTermination) Config() (json.RawMessage, error) {
	return json.Marshal(TextMessageTerminationConfig{Source: c.source})
}
