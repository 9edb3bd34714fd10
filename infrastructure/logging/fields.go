package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Common field constructors for termination-condition logging.

// Condition adds a condition name field.
func Condition(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("condition", name)
	}
}

// Provider adds a component provider field.
func Provider(provider string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("provider", provider)
	}
}

// Reason adds a stop reason field.
func Reason(reason string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("reason", reason)
	}
}

// SpecFile adds a spec file path field.
func SpecFile(path string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("spec_file", path)
	}
}

// ConditionCount adds a condition count field.
func ConditionCount(count int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("condition_count", count)
	}
}

// MessageCount adds a message count field.
func MessageCount(count int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("message_count", count)
	}
}

// TokenCount adds a token count field.
func TokenCount(count int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("token_count", count)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}
