package termination

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/TristanLib/autogen/domain/message"
)

// ProviderTextMention is the stable component identifier for
// TextMentionTermination.
const ProviderTextMention = "autogen.termination.TextMention"

// TextMentionTerminationConfig holds the serializable parameters of
// TextMentionTermination.
type TextMentionTerminationConfig struct {
	Text    string   `json:"text"`
	Sources []string `json:"sources,omitempty"`
}

// TextMentionTermination terminates the conversation when a specific text
// is mentioned in a message. An optional source list restricts which
// messages are scanned.
type TextMentionTermination struct {
	text       string
	sources    []string
	terminated bool
}

// NewTextMentionTermination creates a condition that fires when text
// appears in a message's rendering. If sources are given, only messages
// from those sources are scanned.
func NewTextMentionTermination(text string, sources ...string) (*TextMentionTermination, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text must not be empty", ErrInvalidConfiguration)
	}
	return &TextMentionTermination{text: text, sources: sources}, nil
}

// NewTextMentionFromConfig reconstructs the condition from serialized
// parameters.
func NewTextMentionFromConfig(raw json.RawMessage) (Condition, error) {
	var cfg TextMentionTerminationConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return NewTextMentionTermination(cfg.Text, cfg.Sources...)
}

// Name returns the identifying name of the condition.
func (c *TextMentionTermination) Name() string {
	return "TextMentionTermination"
}

// Terminated reports whether the condition has been met.
func (c *TextMentionTermination) Terminated() bool {
	return c.terminated
}

// Evaluate fires on the first message whose rendering contains the
// configured text, skipping messages outside the source list when one is
// configured.
func (c *TextMentionTermination) Evaluate(ctx context.Context, messages []message.Message) (*message.StopMessage, error) {
	if c.terminated {
		return nil, alreadyTerminated(c.Name())
	}
	for _, m := range messages {
		if len(c.sources) > 0 && !slices.Contains(c.sources, m.Source()) {
			continue
		}
		if strings.Contains(m.ToText(), c.text) {
			c.terminated = true
			return message.NewStopMessage(c.Name(), fmt.Sprintf("Text '%s' mentioned", c.text)), nil
		}
	}
	return nil, nil
}

// Reset clears the terminated state.
func (c *TextMentionTermination) Reset() {
	c.terminated = false
}

// Provider returns the component identifier.
func (c *TextMentionTermination) Provider() string {
	return ProviderTextMention
}

// Config serializes the condition's configuration.
func (c *TextMentionTermination) Config() (json.RawMessage, error) {
	return json.Marshal(TextMentionTerminationConfig{Text: c.text, Sources: c.sources})
}
