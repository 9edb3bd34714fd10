// Package message provides the messages agents exchange in a conversation.
package message

import (
	"github.com/google/uuid"
)

// Usage records the token accounting attached to a model-produced message.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// Message is the interface implemented by every message kind exchanged in
// a conversation. The set of kinds is closed: new kinds are added here,
// not by external packages.
type Message interface {
	// ID returns the unique identifier of the message.
	ID() string

	// Source returns the name of the agent that produced the message.
	Source() string

	// ToText returns the textual rendering of the message content.
	ToText() string

	// Usage returns the token accounting for the message, or nil if the
	// message carries none.
	Usage() *Usage

	isMessage()
}

// ChatMessage marks messages addressed to other agents as part of the
// conversation proper.
type ChatMessage interface {
	Message
	isChatMessage()
}

// AgentEvent marks internal events emitted by agents, such as tool call
// requests and results. Events are observable but are not part of the
// chat transcript.
type AgentEvent interface {
	Message
	isAgentEvent()
}

// base holds the fields shared by every message kind.
type base struct {
	MessageID     string `json:"id"`
	MessageSource string `json:"source"`
	ModelsUsage   *Usage `json:"models_usage,omitempty"`
}

func newBase(source string) base {
	return base{
		MessageID:     uuid.NewString(),
		MessageSource: source,
	}
}

// ID returns the unique identifier of the message.
func (b *base) ID() string {
	return b.MessageID
}

// Source returns the name of the agent that produced the message.
func (b *base) Source() string {
	return b.MessageSource
}

// Usage returns the token accounting for the message, or nil.
func (b *base) Usage() *Usage {
	return b.ModelsUsage
}

func (b *base) isMessage() {}
