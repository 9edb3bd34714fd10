package termination

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/TristanLib/autogen/domain/message"
)

func usageMessage(prompt, completion int) message.Message {
	return message.NewTextMessage("agent", "hi").
		WithUsage(message.Usage{PromptTokens: prompt, CompletionTokens: completion})
}

func TestNewTokenUsageTermination_RequiresACeiling(t *testing.T) {
	t.Parallel()

	_, err := NewTokenUsageTermination()
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestTokenUsageTermination_PromptCeilingIndependent(t *testing.T) {
	t.Parallel()

	cond, err := NewTokenUsageTermination(WithMaxPromptToken(10))
	if err != nil {
		t.Fatalf("NewTokenUsageTermination() error = %v", err)
	}
	ctx := context.Background()

	// Each turn carries 5 prompt and 100 completion tokens. The huge
	// completion total is irrelevant; only the prompt ceiling counts.
	directive, err := cond.Evaluate(ctx, []message.Message{usageMessage(5, 100)})
	if err != nil {
		t.Fatalf("turn 1: Evaluate() error = %v", err)
	}
	if directive != nil {
		t.Fatal("turn 1: prompt total 5 should not fire against ceiling 10")
	}

	directive, err = cond.Evaluate(ctx, []message.Message{usageMessage(5, 100)})
	if err != nil {
		t.Fatalf("turn 2: Evaluate() error = %v", err)
	}
	if directive == nil {
		t.Fatal("turn 2: prompt total 10 should fire")
	}
	if !strings.Contains(directive.Content, "prompt token count: 10") {
		t.Errorf("reason = %q, want prompt count 10", directive.Content)
	}
}

func TestTokenUsageTermination_Ceilings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []TokenUsageOption
		batch    []message.Message
		wantFire bool
	}{
		{
			name:     "total ceiling reached",
			opts:     []TokenUsageOption{WithMaxTotalToken(10)},
			batch:    []message.Message{usageMessage(5, 5)},
			wantFire: true,
		},
		{
			name:     "total ceiling not reached",
			opts:     []TokenUsageOption{WithMaxTotalToken(11)},
			batch:    []message.Message{usageMessage(5, 5)},
			wantFire: false,
		},
		{
			name:     "completion ceiling reached",
			opts:     []TokenUsageOption{WithMaxCompletionToken(4)},
			batch:    []message.Message{usageMessage(100, 4)},
			wantFire: true,
		},
		{
			name:     "messages without usage are ignored",
			opts:     []TokenUsageOption{WithMaxTotalToken(1)},
			batch:    []message.Message{message.NewTextMessage("agent", "no usage")},
			wantFire: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewTokenUsageTermination(tt.opts...)
			if err != nil {
				t.Fatalf("NewTokenUsageTermination() error = %v", err)
			}

			directive, err := cond.Evaluate(context.Background(), tt.batch)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got := directive != nil; got != tt.wantFire {
				t.Errorf("fired = %v, want %v", got, tt.wantFire)
			}
		})
	}
}

func TestTokenUsageTermination_ResetZeroesTotals(t *testing.T) {
	t.Parallel()

	cond, err := NewTokenUsageTermination(WithMaxTotalToken(10))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if _, err := cond.Evaluate(ctx, []message.Message{usageMessage(5, 5)}); err != nil {
		t.Fatal(err)
	}
	if !cond.Terminated() {
		t.Fatal("should be terminated")
	}

	cond.Reset()
	if cond.Terminated() {
		t.Fatal("Reset should clear all totals")
	}

	directive, err := cond.Evaluate(ctx, []message.Message{usageMessage(2, 2)})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if directive != nil {
		t.Error("totals should accumulate from zero after Reset")
	}
}
