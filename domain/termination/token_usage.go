package termination

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TristanLib/autogen/domain/message"
)

// ProviderTokenUsage is the stable component identifier for
// TokenUsageTermination.
const ProviderTokenUsage = "autogen.termination.TokenUsage"

// TokenUsageTerminationConfig holds the serializable parameters of
// TokenUsageTermination. A zero ceiling means the ceiling is not set.
type TokenUsageTerminationConfig struct {
	MaxTotalToken      int `json:"max_total_token,omitempty"`
	MaxPromptToken     int `json:"max_prompt_token,omitempty"`
	MaxCompletionToken int `json:"max_completion_token,omitempty"`
}

// TokenUsageOption configures a TokenUsageTermination.
type TokenUsageOption func(*TokenUsageTermination)

// WithMaxTotalToken sets the ceiling on total (prompt plus completion)
// tokens.
func WithMaxTotalToken(n int) TokenUsageOption {
	return func(c *TokenUsageTermination) {
		c.maxTotal = n
	}
}

// WithMaxPromptToken sets the ceiling on prompt tokens.
func WithMaxPromptToken(n int) TokenUsageOption {
	return func(c *TokenUsageTermination) {
		c.maxPrompt = n
	}
}

// WithMaxCompletionToken sets the ceiling on completion tokens.
func WithMaxCompletionToken(n int) TokenUsageOption {
	return func(c *TokenUsageTermination) {
		c.maxCompletion = n
	}
}

// TokenUsageTermination terminates the conversation once any configured
// token ceiling is reached. Prompt, completion, and total tokens are
// accumulated independently from every message carrying a usage record.
type TokenUsageTermination struct {
	maxTotal      int
	maxPrompt     int
	maxCompletion int

	totalCount      int
	promptCount     int
	completionCount int
}

// NewTokenUsageTermination creates a condition with at least one token
// ceiling. Construction fails if no ceiling is configured.
func NewTokenUsageTermination(opts ...TokenUsageOption) (*TokenUsageTermination, error) {
	c := &TokenUsageTermination{}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxTotal == 0 && c.maxPrompt == 0 && c.maxCompletion == 0 {
		return nil, fmt.Errorf("%w: at least one of max_total_token, max_prompt_token, or max_completion_token must be provided", ErrInvalidConfiguration)
	}
	if c.maxTotal < 0 || c.maxPrompt < 0 || c.maxCompletion < 0 {
		return nil, fmt.Errorf("%w: token ceilings must be positive", ErrInvalidConfiguration)
	}
	return c, nil
}

// NewTokenUsageFromConfig reconstructs the condition from serialized
// parameters.
func NewTokenUsageFromConfig(raw json.RawMessage) (Condition, error) {
	var cfg TokenUsageTerminationConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	var opts []TokenUsageOption
	if cfg.MaxTotalToken != 0 {
		opts = append(opts, WithMaxTotalToken(cfg.MaxTotalToken))
	}
	if cfg.MaxPromptToken != 0 {
		opts = append(opts, WithMaxPromptToken(cfg.MaxPromptToken))
	}
	if cfg.MaxCompletionToken != 0 {
		opts = append(opts, WithMaxCompletionToken(cfg.MaxCompletionToken))
	}
	return NewTokenUsageTermination(opts...)
}

// Name returns the identifying name of the condition.
func (c *TokenUsageTermination) Name() string {
	return "TokenUsageTermination"
}

// Terminated reports whether any configured ceiling has been reached.
func (c *TokenUsageTermination) Terminated() bool {
	return (c.maxTotal > 0 && c.totalCount >= c.maxTotal) ||
		(c.maxPrompt > 0 && c.promptCount >= c.maxPrompt) ||
		(c.maxCompletion > 0 && c.completionCount >= c.maxCompletion)
}

// Evaluate accumulates the usage records in the batch and fires once any
// ceiling is reached.
func (c *TokenUsageTermination) Evaluate(ctx context.Context, messages []message.Message) (*message.StopMessage, error) {
	if c.Terminated() {
		return nil, alreadyTerminated(c.Name())
	}
	for _, m := range messages {
		if u := m.Usage(); u != nil {
			c.promptCount += u.PromptTokens
			c.completionCount += u.CompletionTokens
			c.totalCount += u.PromptTokens + u.CompletionTokens
		}
	}
	if c.Terminated() {
		reason := fmt.Sprintf("Token usage limit reached, total token count: %d, prompt token count: %d, completion token count: %d.",
			c.totalCount, c.promptCount, c.completionCount)
		return message.NewStopMessage(c.Name(), reason), nil
	}
	return nil, nil
}

// Reset zeroes all three running totals.
func (c *TokenUsageTermination) Reset() {
	c.totalCount = 0
	c.promptCount = 0
	c.completionCount = 0
}

// Provider returns the component identifier.
func (c *TokenUsageTermination) Provider() string {
	return ProviderTokenUsage
}

// Config serializes the condition's configuration.
func (c *TokenUsageTermination) Config() (json.RawMessage, error) {
	return json.Marshal(TokenUsageTerminationConfig{
		MaxTotalToken:      c.maxTotal,
		MaxPromptToken:     c.maxPrompt,
		MaxCompletionToken: c.maxCompletion,
	})
}
