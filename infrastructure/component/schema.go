package component

import (
	"fmt"

	"github.com/TristanLib/autogen/domain/termination"
)

// JSONSchema represents a JSON Schema document for a provider's
// parameters.
type JSONSchema struct {
	Schema               string                 `json:"$schema,omitempty"`
	Title                string                 `json:"title,omitempty"`
	Description          string                 `json:"description,omitempty"`
	Type                 string                 `json:"type,omitempty"`
	Properties           map[string]*JSONSchema `json:"properties,omitempty"`
	Required             []string               `json:"required,omitempty"`
	Items                *JSONSchema            `json:"items,omitempty"`
	Default              any                    `json:"default,omitempty"`
	Minimum              *float64               `json:"minimum,omitempty"`
	AdditionalProperties *bool                  `json:"additionalProperties,omitempty"`
}

const schemaDraft = "https://json-schema.org/draft/2020-12/schema"

// Schema returns the parameter schema for a provider.
func Schema(provider string) (*JSONSchema, error) {
	schema, ok := schemas()[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
	return schema, nil
}

// Schemas returns the parameter schemas for every built-in provider.
func Schemas() map[string]*JSONSchema {
	return schemas()
}

func schemas() map[string]*JSONSchema {
	return map[string]*JSONSchema{
		termination.ProviderStopMessage: {
			Schema:      schemaDraft,
			Title:       "StopMessageTermination",
			Description: "Terminates when a stop message is received",
			Type:        "object",
		},
		termination.ProviderMaxMessage: {
			Schema:      schemaDraft,
			Title:       "MaxMessageTermination",
			Description: "Terminates after a maximum number of messages",
			Type:        "object",
			Required:    []string{"max_messages"},
			Properties: map[string]*JSONSchema{
				"max_messages": {
					Type:        "integer",
					Description: "Maximum number of messages allowed in the conversation",
					Minimum:     floatPtr(1),
				},
				"include_agent_event": {
					Type:        "boolean",
					Description: "Count agent events in addition to chat messages",
					Default:     false,
				},
			},
		},
		termination.ProviderTextMention: {
			Schema:      schemaDraft,
			Title:       "TextMentionTermination",
			Description: "Terminates when a specific text is mentioned",
			Type:        "object",
			Required:    []string{"text"},
			Properties: map[string]*JSONSchema{
				"text": {
					Type:        "string",
					Description: "Text to look for in message renderings",
				},
				"sources": {
					Type:        "array",
					Description: "Only scan messages from these sources",
					Items:       &JSONSchema{Type: "string"},
				},
			},
		},
		termination.ProviderTokenUsage: {
			Schema:      schemaDraft,
			Title:       "TokenUsageTermination",
			Description: "Terminates once a token usage ceiling is reached; at least one ceiling is required",
			Type:        "object",
			Properties: map[string]*JSONSchema{
				"max_total_token": {
					Type:        "integer",
					Description: "Ceiling on prompt plus completion tokens",
					Minimum:     floatPtr(1),
				},
				"max_prompt_token": {
					Type:        "integer",
					Description: "Ceiling on prompt tokens",
					Minimum:     floatPtr(1),
				},
				"max_completion_token": {
					Type:        "integer",
					Description: "Ceiling on completion tokens",
					Minimum:     floatPtr(1),
				},
			},
		},
		termination.ProviderHandoff: {
			Schema:      schemaDraft,
			Title:       "HandoffTermination",
			Description: "Terminates on a handoff to a specific target",
			Type:        "object",
			Required:    []string{"target"},
			Properties: map[string]*JSONSchema{
				"target": {
					Type:        "string",
					Description: "Target agent of the handoff",
				},
			},
		},
		termination.ProviderTimeout: {
			Schema:      schemaDraft,
			Title:       "TimeoutTermination",
			Description: "Terminates after a wall-clock duration",
			Type:        "object",
			Required:    []string{"timeout_seconds"},
			Properties: map[string]*JSONSchema{
				"timeout_seconds": {
					Type:        "number",
					Description: "Duration in seconds before terminating",
					Minimum:     floatPtr(0),
				},
			},
		},
		termination.ProviderExternal: {
			Schema:      schemaDraft,
			Title:       "ExternalTermination",
			Description: "Terminates when externally set",
			Type:        "object",
		},
		termination.ProviderSourceMatch: {
			Schema:      schemaDraft,
			Title:       "SourceMatchTermination",
			Description: "Terminates after a specific source responds",
			Type:        "object",
			Required:    []string{"sources"},
			Properties: map[string]*JSONSchema{
				"sources": {
					Type:        "array",
					Description: "Source names that terminate the conversation",
					Items:       &JSONSchema{Type: "string"},
				},
			},
		},
		termination.ProviderTextMessage: {
			Schema:      schemaDraft,
			Title:       "TextMessageTermination",
			Description: "Terminates when a text message is received",
			Type:        "object",
			Properties: map[string]*JSONSchema{
				"source": {
					Type:        "string",
					Description: "Only fire on text messages from this source; empty matches any",
				},
			},
		},
		termination.ProviderFunctionCall: {
			Schema:      schemaDraft,
			Title:       "FunctionCallTermination",
			Description: "Terminates when a named function has been executed",
			Type:        "object",
			Required:    []string{"function_name"},
			Properties: map[string]*JSONSchema{
				"function_name": {
					Type:        "string",
					Description: "Name of the function to look for in execution results",
				},
			},
		},
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
