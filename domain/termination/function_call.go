package termination

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TristanLib/autogen/domain/message"
)

// ProviderFunctionCall is the stable component identifier for
// FunctionCallTermination.
const ProviderFunctionCall = "autogen.termination.FunctionCall"

// FunctionCallTerminationConfig holds the serializable parameters of
// FunctionCallTermination.
type FunctionCallTerminationConfig struct {
	FunctionName string `json:"function_name"`
}

// FunctionCallTermination terminates the conversation when a tool
// execution result for the configured function is received.
type FunctionCallTermination struct {
	functionName string
	terminated   bool
}

// NewFunctionCallTermination creates a condition that fires when a
// function with the given name has been executed.
func NewFunctionCallTermination(functionName string) (*FunctionCallTermination, error) {
	if functionName == "" {
		return nil, fmt.Errorf("%w: function_name must not be empty", ErrInvalidConfiguration)
	}
	return &FunctionCallTermination{functionName: functionName}, nil
}

// NewFunctionCallFromConfig reconstructs the condition from serialized
// parameters.
func NewFunctionCallFromConfig(raw json.RawMessage) (Condition, error) {
	var cfg FunctionCallTerminationConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return NewFunctionCallTermination(cfg.FunctionName)
}

// Name returns the identifying name of the condition.
func (c *FunctionCallTermination) Name() string {
	return "FunctionCallTermination"
}

// Terminated reports whether the condition has been met.
func (c *FunctionCallTermination) Terminated() bool {
	return c.terminated
}

// Evaluate fires on the first execution result entry whose name equals
// the configured function name.
func (c *FunctionCallTermination) Evaluate(ctx context.Context, messages []message.Message) (*message.StopMessage, error) {
	if c.terminated {
		return nil, alreadyTerminated(c.Name())
	}
	for _, m := range messages {
		event, ok := m.(*message.ToolCallExecutionEvent)
		if !ok {
			continue
		}
		for _, execution := range event.Content {
			if execution.Name == c.functionName {
				c.terminated = true
				reason := fmt.Sprintf("Function '%s' was executed.", c.functionName)
				return message.NewStopMessage(c.Name(), reason), nil
			}
		}
	}
	return nil, nil
}

// Reset clears the terminated state.
func (c *FunctionCallTermination) Reset() {
	c.terminated = false
}

// Provider returns the component identifier.
func (c *FunctionCallTermination) Provider() string {
	return ProviderFunctionCall
}

// Config serializes the condition's configuration.
func (c *FunctionCallTermination) Config() (json.RawMessage, error) {
	return json.Marshal(FunctionCallTerminationConfig{FunctionName: c.functionName})
}
