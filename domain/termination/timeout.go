package termination

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TristanLib/autogen/domain/message"
)

// ProviderTimeout is the stable component identifier for
// TimeoutTermination.
const ProviderTimeout = "autogen.termination.Timeout"

// TimeoutTerminationConfig holds the serializable parameters of
// TimeoutTermination.
type TimeoutTerminationConfig struct {
	TimeoutSeconds float64 `json:"timeout_seconds"`
}

// TimeoutOption configures a TimeoutTermination.
type TimeoutOption func(*TimeoutTermination)

// WithClock sets the time source. Used by tests to simulate elapsed time.
func WithClock(clock Clock) TimeoutOption {
	return func(c *TimeoutTermination) {
		c.clock = clock
	}
}

// TimeoutTermination terminates the conversation once a wall-clock
// duration has elapsed since construction or the last reset, independent
// of message content. Evaluate may be called with an empty batch purely
// to re-check the clock.
type TimeoutTermination struct {
	timeout    time.Duration
	clock      Clock
	startTime  time.Time
	terminated bool
}

// NewTimeoutTermination creates a condition that fires once timeout has
// elapsed.
func NewTimeoutTermination(timeout time.Duration, opts ...TimeoutOption) (*TimeoutTermination, error) {
	if timeout < 0 {
		return nil, fmt.Errorf("%w: timeout must not be negative, got %v", ErrInvalidConfiguration, timeout)
	}
	c := &TimeoutTermination{
		timeout: timeout,
		clock:   SystemClock(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.startTime = c.clock.Now()
	return c, nil
}

// NewTimeoutFromConfig reconstructs the condition from serialized
// parameters.
func NewTimeoutFromConfig(raw json.RawMessage) (Condition, error) {
	var cfg TimeoutTerminationConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return NewTimeoutTermination(time.Duration(cfg.TimeoutSeconds * float64(time.Second)))
}

// Name returns the identifying name of the condition.
func (c *TimeoutTermination) Name() string {
	return "TimeoutTermination"
}

// Terminated reports whether the condition has been met.
func (c *TimeoutTermination) Terminated() bool {
	return c.terminated
}

// Evaluate fires once the configured duration has elapsed. The batch
// content is ignored.
func (c *TimeoutTermination) Evaluate(ctx context.Context, messages []message.Message) (*message.StopMessage, error) {
	if c.terminated {
		return nil, alreadyTerminated(c.Name())
	}
	if c.clock.Now().Sub(c.startTime) >= c.timeout {
		c.terminated = true
		return message.NewStopMessage(c.Name(), fmt.Sprintf("Timeout of %v reached", c.timeout)), nil
	}
	return nil, nil
}

// Reset clears the terminated state and recaptures the start time.
func (c *TimeoutTermination) Reset() {
	c.startTime = c.clock.Now()
	c.terminated = false
}

// Provider returns the component identifier.
func (c *TimeoutTermination) Provider() string {
	return ProviderTimeout
}

// Config serializes the condition's configuration.
func (c *TimeoutTermination) Config() (json.RawMessage, error) {
	return json.Marshal(TimeoutTerminationConfig{TimeoutSeconds: c.timeout.Seconds()})
}
