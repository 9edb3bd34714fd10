package message

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TextMessage is a plain text message produced by an agent.
type TextMessage struct {
	base
	Content string `json:"content"`
}

// NewTextMessage creates a text message from the given source.
func NewTextMessage(source, content string) *TextMessage {
	return &TextMessage{base: newBase(source), Content: content}
}

// WithUsage attaches token accounting to the message.
func (m *TextMessage) WithUsage(u Usage) *TextMessage {
	m.ModelsUsage = &u
	return m
}

// ToText returns the message content.
func (m *TextMessage) ToText() string {
	return m.Content
}

func (m *TextMessage) isChatMessage() {}

// StopMessage requests that the conversation stop. It doubles as the
// directive returned by a termination condition when it fires: Content
// carries the human-readable reason and Source the name of the condition.
type StopMessage struct {
	base
	Content string `json:"content"`
}

// NewStopMessage creates a stop message from the given source.
func NewStopMessage(source, content string) *StopMessage {
	return &StopMessage{base: newBase(source), Content: content}
}

// ToText returns the stop reason.
func (m *StopMessage) ToText() string {
	return m.Content
}

func (m *StopMessage) isChatMessage() {}

// HandoffMessage requests that the conversation be handed off to another
// agent.
type HandoffMessage struct {
	base
	Target  string `json:"target"`
	Content string `json:"content"`
}

// NewHandoffMessage creates a handoff message from source to target.
func NewHandoffMessage(source, target, content string) *HandoffMessage {
	return &HandoffMessage{base: newBase(source), Target: target, Content: content}
}

// ToText returns the handoff content.
func (m *HandoffMessage) ToText() string {
	return m.Content
}

func (m *HandoffMessage) isChatMessage() {}

// ToolCallSummaryMessage summarizes the results of a round of tool calls
// as part of the chat transcript.
type ToolCallSummaryMessage struct {
	base
	Content string `json:"content"`
}

// NewToolCallSummaryMessage creates a tool call summary message.
func NewToolCallSummaryMessage(source, content string) *ToolCallSummaryMessage {
	return &ToolCallSummaryMessage{base: newBase(source), Content: content}
}

// ToText returns the summary content.
func (m *ToolCallSummaryMessage) ToText() string {
	return m.Content
}

func (m *ToolCallSummaryMessage) isChatMessage() {}

// FunctionCall is a single tool invocation requested by an agent.
type FunctionCall struct {
	// ID is the unique identifier used to correlate the call with its result.
	ID string `json:"id"`
	// Name is the name of the function being called.
	Name string `json:"name"`
	// Arguments holds the structured call arguments.
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// FunctionExecutionResult is the outcome of a single tool invocation.
type FunctionExecutionResult struct {
	// CallID references the originating FunctionCall.
	CallID string `json:"call_id"`
	// Name is the name of the function that was executed.
	Name string `json:"name"`
	// Content is the textual result of the execution.
	Content string `json:"content"`
	// IsError indicates the execution failed.
	IsError bool `json:"is_error,omitempty"`
}

// ToolCallRequestEvent is emitted when an agent requests tool calls.
type ToolCallRequestEvent struct {
	base
	Content []FunctionCall `json:"content"`
}

// NewToolCallRequestEvent creates a tool call request event.
func NewToolCallRequestEvent(source string, calls ...FunctionCall) *ToolCallRequestEvent {
	return &ToolCallRequestEvent{base: newBase(source), Content: calls}
}

// WithUsage attaches token accounting to the event.
func (m *ToolCallRequestEvent) WithUsage(u Usage) *ToolCallRequestEvent {
	m.ModelsUsage = &u
	return m
}

// ToText renders the requested calls.
func (m *ToolCallRequestEvent) ToText() string {
	names := make([]string, len(m.Content))
	for i, call := range m.Content {
		names[i] = call.Name
	}
	return fmt.Sprintf("tool calls requested: %s", strings.Join(names, ", "))
}

func (m *ToolCallRequestEvent) isAgentEvent() {}

// ToolCallExecutionEvent is emitted when requested tool calls have been
// executed.
type ToolCallExecutionEvent struct {
	base
	Content []FunctionExecutionResult `json:"content"`
}

// NewToolCallExecutionEvent creates a tool call execution event.
func NewToolCallExecutionEvent(source string, results ...FunctionExecutionResult) *ToolCallExecutionEvent {
	return &ToolCallExecutionEvent{base: newBase(source), Content: results}
}

// ToText renders the execution results.
func (m *ToolCallExecutionEvent) ToText() string {
	parts := make([]string, len(m.Content))
	for i, result := range m.Content {
		parts[i] = fmt.Sprintf("%s: %s", result.Name, result.Content)
	}
	return strings.Join(parts, "\n")
}

func (m *ToolCallExecutionEvent) isAgentEvent() {}
