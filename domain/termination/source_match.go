package termination

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/TristanLib/autogen/domain/message"
)

// ProviderSourceMatch is the stable component identifier for
// SourceMatchTermination.
const ProviderSourceMatch = "autogen.termination.SourceMatch"

// SourceMatchTerminationConfig holds the serializable parameters of
// SourceMatchTermination.
type SourceMatchTerminationConfig struct {
	Sources []string `json:"sources"`
}

// SourceMatchTermination terminates the conversation after any of the
// configured sources responds.
type SourceMatchTermination struct {
	sources    []string
	terminated bool
}

// NewSourceMatchTermination creates a condition that fires on the first
// message from any of the given sources.
func NewSourceMatchTermination(sources ...string) (*SourceMatchTermination, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: at least one source must be provided", ErrInvalidConfiguration)
	}
	return &SourceMatchTermination{sources: sources}, nil
}

// NewSourceMatchFromConfig reconstructs the condition from serialized
// parameters.
func NewSourceMatchFromConfig(raw json.RawMessage) (Condition, error) {
	var cfg SourceMatchTerminationConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return NewSourceMatchTermination(cfg.Sources...)
}

// Name returns the identifying name of the condition.
func (c *SourceMatchTermination) Name() string {
	return "SourceMatchTermination"
}

// Terminated reports whether the condition has been met.
func (c *SourceMatchTermination) Terminated() bool {
	return c.terminated
}

// Evaluate fires on the first message whose source is in the configured
// set. An empty batch is a no-op.
func (c *SourceMatchTermination) Evaluate(ctx context.Context, messages []message.Message) (*message.StopMessage, error) {
	if c.terminated {
		return nil, alreadyTerminated(c.Name())
	}
	if len(messages) == 0 {
		return nil, nil
	}
	for _, m := range messages {
		if slices.Contains(c.sources, m.Source()) {
			c.terminated = true
			return message.NewStopMessage(c.Name(), fmt.Sprintf("'%s' answered", m.Source())), nil
		}
	}
	return nil, nil
}

// Reset clears the terminated state.
func (c *SourceMatchTermination) Reset() {
	c.terminated = false
}

// Provider returns the component identifier.
func (c *SourceMatchTermination) Provider() string {
	return ProviderSourceMatch
}

// Config serializes the condition's configuration.
func (c *SourceMatchTermination) Config() (json.RawMessage, error) {
	return json.Marshal(SourceMatchTerminationConfig{Sources: c.sources})
}
