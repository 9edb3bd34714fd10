package termination

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TristanLib/autogen/domain/message"
)

// ProviderMaxMessage is the stable component identifier for
// MaxMessageTermination.
const ProviderMaxMessage = "autogen.termination.MaxMessage"

// MaxMessageTerminationConfig holds the serializable parameters of
// MaxMessageTermination.
type MaxMessageTerminationConfig struct {
	MaxMessages       int  `json:"max_messages"`
	IncludeAgentEvent bool `json:"include_agent_event"`
}

// MaxMessageTermination terminates the conversation once a maximum number
// of messages have been exchanged.
type MaxMessageTermination struct {
	maxMessages       int
	includeAgentEvent bool
	messageCount      int
}

// NewMaxMessageTermination creates a condition that fires once the running
// message count reaches maxMessages. When includeAgentEvent is false only
// chat messages count toward the total.
func NewMaxMessageTermination(maxMessages int, includeAgentEvent bool) (*MaxMessageTermination, error) {
	if maxMessages < 1 {
		return nil, fmt.Errorf("%w: max_messages must be at least 1, got %d", ErrInvalidConfiguration, maxMessages)
	}
	return &MaxMessageTermination{
		maxMessages:       maxMessages,
		includeAgentEvent: includeAgentEvent,
	}, nil
}

// NewMaxMessageFromConfig reconstructs the condition from serialized
// parameters.
func NewMaxMessageFromConfig(raw json.RawMessage) (Condition, error) {
	var cfg MaxMessageTerminationConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return NewMaxMessageTermination(cfg.MaxMessages, cfg.IncludeAgentEvent)
}

// Name returns the identifying name of the condition.
func (c *MaxMessageTermination) Name() string {
	return "MaxMessageTermination"
}

// Terminated reports whether the message ceiling has been reached.
func (c *MaxMessageTermination) Terminated() bool {
	return c.messageCount >= c.maxMessages
}

// Evaluate counts the qualifying messages in the batch and fires once the
// running total reaches the ceiling. The reported count is the
// post-increment total and may exceed the ceiling.
func (c *MaxMessageTermination) Evaluate(ctx context.Context, messages []message.Message) (*message.StopMessage, error) {
	if c.Terminated() {
		return nil, alreadyTerminated(c.Name())
	}
	for _, m := range messages {
		if c.includeAgentEvent {
			c.messageCount++
			continue
		}
		if _, ok := m.(message.ChatMessage); ok {
			c.messageCount++
		}
	}
	if c.messageCount >= c.maxMessages {
		reason := fmt.Sprintf("Maximum number of messages %d reached, current message count: %d",
			c.maxMessages, c.messageCount)
		return message.NewStopMessage(c.Name(), reason), nil
	}
	return nil, nil
}

// Reset zeroes the message count.
func (c *MaxMessageTermination) Reset() {
	c.messageCount = 0
}

// Provider returns the component identifier.
func (c *MaxMessageTermination) Provider() string {
	return ProviderMaxMessage
}

// Config serializes the condition's configuration.
func (c *MaxMessageTermination) Config() (json.RawMessage, error) {
	return json.Marshal(MaxMessageTerminationConfig{
		MaxMessages:       c.maxMessages,
		IncludeAgentEvent: c.includeAgentEvent,
	})
}
