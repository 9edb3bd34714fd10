package termination

import (
	"context"
	"errors"
	"testing"

	"github.com/TristanLib/autogen/domain/message"
)

func TestStopMessageTermination_FiresOnStopMessage(t *testing.T) {
	t.Parallel()

	cond := NewStopMessageTermination()
	batch := []message.Message{
		message.NewTextMessage("agent", "working"),
		message.NewStopMessage("agent", "all done"),
	}

	directive, err := cond.Evaluate(context.Background(), batch)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if directive == nil {
		t.Fatal("should fire on a stop message")
	}
	if want := "Stop message received"; directive.Content != want {
		t.Errorf("reason = %q, want %q", directive.Content, want)
	}
}

func TestHandoffTermination_TargetFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		msg      message.Message
		wantFire bool
	}{
		{"matching target", "user", message.NewHandoffMessage("planner", "user", "over to you"), true},
		{"other target", "user", message.NewHandoffMessage("planner", "coder", "your turn"), false},
		{"non-handoff message", "user", message.NewTextMessage("user", "hello"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewHandoffTermination(tt.target)
			if err != nil {
				t.Fatal(err)
			}

			directive, err := cond.Evaluate(context.Background(), []message.Message{tt.msg})
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got := directive != nil; got != tt.wantFire {
				t.Errorf("fired = %v, want %v", got, tt.wantFire)
			}
		})
	}
}

func TestHandoffTermination_ReasonNamesBothParties(t *testing.T) {
	t.Parallel()

	cond, err := NewHandoffTermination("user")
	if err != nil {
		t.Fatal(err)
	}

	directive, err := cond.Evaluate(context.Background(),
		[]message.Message{message.NewHandoffMessage("planner", "user", "done")})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if directive == nil {
		t.Fatal("should fire")
	}
	if want := "Handoff to user from planner detected."; directive.Content != want {
		t.Errorf("reason = %q, want %q", directive.Content, want)
	}
}

func TestTextMessageTermination_SourceFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		msg      message.Message
		wantFire bool
	}{
		{"any source", "", message.NewTextMessage("anyone", "hi"), true},
		{"matching source", "critic", message.NewTextMessage("critic", "hi"), true},
		{"other source", "critic", message.NewTextMessage("writer", "hi"), false},
		{"stop message is not a text message", "", message.NewStopMessage("critic", "hi"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond := NewTextMessageTermination(tt.source)

			directive, err := cond.Evaluate(context.Background(), []message.Message{tt.msg})
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got := directive != nil; got != tt.wantFire {
				t.Errorf("fired = %v, want %v", got, tt.wantFire)
			}
		})
	}
}

func TestFunctionCallTermination_ScansExecutionEntries(t *testing.T) {
	t.Parallel()

	cond, err := NewFunctionCallTermination("approve")
	if err != nil {
		t.Fatal(err)
	}

	batch := []message.Message{
		message.NewToolCallRequestEvent("agent", message.FunctionCall{ID: "1", Name: "approve"}),
		message.NewToolCallExecutionEvent("agent",
			message.FunctionExecutionResult{CallID: "2", Name: "search", Content: "results"},
			message.FunctionExecutionResult{CallID: "3", Name: "approve", Content: "approved"},
		),
	}

	directive, err := cond.Evaluate(context.Background(), batch)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if directive == nil {
		t.Fatal("should fire on an execution entry with the configured name")
	}
	if want := "Function 'approve' was executed."; directive.Content != want {
		t.Errorf("reason = %q, want %q", directive.Content, want)
	}
}

func TestFunctionCallTermination_RequestAloneDoesNotFire(t *testing.T) {
	t.Parallel()

	cond, err := NewFunctionCallTermination("approve")
	if err != nil {
		t.Fatal(err)
	}

	// A request event for the function is not an execution result.
	batch := []message.Message{
		message.NewToolCallRequestEvent("agent", message.FunctionCall{ID: "1", Name: "approve"}),
	}
	directive, err := cond.Evaluate(context.Background(), batch)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if directive != nil {
		t.Error("a pending call must not trigger the condition")
	}
}

func TestFunctionalTermination_ErrorPropagatesUnchanged(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("user predicate failed")
	cond, err := NewFunctionalTermination(func(ctx context.Context, messages []message.Message) (bool, error) {
		return false, sentinel
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = cond.Evaluate(context.Background(), nil)
	if !errors.Is(err, sentinel) {
		t.Errorf("error = %v, want the predicate's own error", err)
	}
	if cond.Terminated() {
		t.Error("a predicate error must not terminate the condition")
	}
}

func TestConstructorValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor func() error
	}{
		{"handoff empty target", func() error { _, err := NewHandoffTermination(""); return err }},
		{"function call empty name", func() error { _, err := NewFunctionCallTermination(""); return err }},
		{"source match no sources", func() error { _, err := NewSourceMatchTermination(); return err }},
		{"functional nil func", func() error { _, err := NewFunctionalTermination(nil); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.ctor(); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("error = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}
