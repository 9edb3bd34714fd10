package termination

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/TristanLib/autogen/domain/message"
)

func TestMaxMessageTermination_Boundary(t *testing.T) {
	t.Parallel()

	cond, err := NewMaxMessageTermination(3, false)
	if err != nil {
		t.Fatalf("NewMaxMessageTermination() error = %v", err)
	}
	ctx := context.Background()

	for turn := 1; turn <= 2; turn++ {
		directive, err := cond.Evaluate(ctx, []message.Message{message.NewTextMessage("agent", "hi")})
		if err != nil {
			t.Fatalf("turn %d: Evaluate() error = %v", turn, err)
		}
		if directive != nil {
			t.Fatalf("turn %d: should not fire before the ceiling", turn)
		}
	}

	directive, err := cond.Evaluate(ctx, []message.Message{message.NewTextMessage("agent", "hi")})
	if err != nil {
		t.Fatalf("turn 3: Evaluate() error = %v", err)
	}
	if directive == nil {
		t.Fatal("turn 3: should fire at the ceiling")
	}
	if !strings.Contains(directive.Content, "current message count: 3") {
		t.Errorf("reason = %q, want post-increment count 3", directive.Content)
	}
}

func TestMaxMessageTermination_CountMayExceedCeiling(t *testing.T) {
	t.Parallel()

	cond, err := NewMaxMessageTermination(2, false)
	if err != nil {
		t.Fatal(err)
	}

	batch := []message.Message{
		message.NewTextMessage("a", "1"),
		message.NewTextMessage("b", "2"),
		message.NewTextMessage("c", "3"),
	}
	directive, err := cond.Evaluate(context.Background(), batch)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if directive == nil {
		t.Fatal("should fire")
	}
	// No clamping: the whole batch is counted before the check.
	if !strings.Contains(directive.Content, "current message count: 3") {
		t.Errorf("reason = %q, want count 3", directive.Content)
	}
}

func TestMaxMessageTermination_AgentEvents(t *testing.T) {
	t.Parallel()

	event := func() message.Message {
		return message.NewToolCallExecutionEvent("agent",
			message.FunctionExecutionResult{CallID: "1", Name: "f", Content: "ok"})
	}

	tests := []struct {
		name              string
		includeAgentEvent bool
		wantFire          bool
	}{
		{"events excluded by default", false, false},
		{"events counted when included", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewMaxMessageTermination(2, tt.includeAgentEvent)
			if err != nil {
				t.Fatal(err)
			}

			directive, err := cond.Evaluate(context.Background(), []message.Message{event(), event()})
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got := directive != nil; got != tt.wantFire {
				t.Errorf("fired = %v, want %v", got, tt.wantFire)
			}
		})
	}
}

func TestNewMaxMessageTermination_Invalid(t *testing.T) {
	t.Parallel()

	for _, max := range []int{0, -1} {
		t.Run(fmt.Sprintf("max=%d", max), func(t *testing.T) {
			_, err := NewMaxMessageTermination(max, false)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("error = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestMaxMessageTermination_ResetZeroesCount(t *testing.T) {
	t.Parallel()

	cond, err := NewMaxMessageTermination(2, false)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if _, err := cond.Evaluate(ctx, []message.Message{message.NewTextMessage("a", "1")}); err != nil {
		t.Fatal(err)
	}
	cond.Reset()

	directive, err := cond.Evaluate(ctx, []message.Message{message.NewTextMessage("a", "2")})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if directive != nil {
		t.Error("count should restart from zero after Reset")
	}
}
