package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/oppia/explord/internal/exploration"
)

func textInteraction() exploration.Interaction {
	return exploration.Interaction{
		ID: "TextInput",
		AnswerGroups: []exploration.AnswerGroup{
			{
				Rules: []exploration.RuleSpec{
					{Type: RuleEquals, Input: "3/4"},
					{Type: RuleEqualsIgnoringCase, Input: "three quarters"},
				},
				Outcome: exploration.Outcome{Dest: "Next", Feedback: "Correct!", LabelledAsCorrect: true},
			},
			{
				Rules:   []exploration.RuleSpec{{Type: RuleContains, Input: "half"}},
				Outcome: exploration.Outcome{Feedback: "Close, but check the second fraction."},
			},
		},
		DefaultOutcome: exploration.Outcome{Feedback: "Try again."},
	}
}

func TestClassifyMatchesGroupsInOrder(t *testing.T) {
	c := New()
	ctx := context.Background()
	in := textInteraction()

	tests := []struct {
		name     string
		answer   string
		feedback string
		correct  bool
	}{
		{"exact match", "3/4", "Correct!", true},
		{"leading whitespace trimmed", "  3/4  ", "Correct!", true},
		{"case-insensitive match", "Three Quarters", "Correct!", true},
		{"contains match", "maybe one half?", "Close, but check the second fraction.", false},
		{"no match falls to default", "7", "Try again.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := c.Classify(ctx, in, tt.answer)
			if err != nil {
				t.Fatalf("classify: %v", err)
			}
			if out.Feedback != tt.feedback {
				t.Errorf("feedback = %q, want %q", out.Feedback, tt.feedback)
			}
			if out.LabelledAsCorrect != tt.correct {
				t.Errorf("correct = %v, want %v", out.LabelledAsCorrect, tt.correct)
			}
		})
	}
}

func TestClassifyNumericEquals(t *testing.T) {
	c := New()
	ctx := context.Background()
	in := exploration.Interaction{
		ID: "NumericInput",
		AnswerGroups: []exploration.AnswerGroup{
			{
				Rules:   []exploration.RuleSpec{{Type: RuleNumericEquals, Input: "0.75"}},
				Outcome: exploration.Outcome{Dest: "Next", LabelledAsCorrect: true},
			},
		},
		DefaultOutcome: exploration.Outcome{Feedback: "Not quite."},
	}

	out, err := c.Classify(ctx, in, "0.7500000000001")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !out.LabelledAsCorrect {
		t.Error("expected near-equal float to match within tolerance")
	}

	out, err = c.Classify(ctx, in, "0.76")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if out.LabelledAsCorrect {
		t.Error("expected 0.76 to miss")
	}

	_, err = c.Classify(ctx, in, "three")
	var malformed *ErrMalformedAnswer
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want ErrMalformedAnswer", err)
	}
}

func TestClassifyEmptyAnswer(t *testing.T) {
	c := New()
	_, err := c.Classify(context.Background(), textInteraction(), "   ")
	var malformed *ErrMalformedAnswer
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want ErrMalformedAnswer", err)
	}
}

func TestClassifyContinueInteraction(t *testing.T) {
	c := New()
	in := exploration.Interaction{
		ID:             exploration.InteractionContinue,
		DefaultOutcome: exploration.Outcome{Dest: "Next"},
	}

	// Continue accepts anything, including an empty answer.
	out, err := c.Classify(context.Background(), in, "")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if out.Dest != "Next" {
		t.Errorf("dest = %q, want Next", out.Dest)
	}
}

func TestClassifyUnknownRuleType(t *testing.T) {
	c := New()
	in := exploration.Interaction{
		ID: "TextInput",
		AnswerGroups: []exploration.AnswerGroup{
			{
				Rules:   []exploration.RuleSpec{{Type: "IsWithinTolerance", Input: "1"}},
				Outcome: exploration.Outcome{Dest: "Next"},
			},
		},
	}
	if _, err := c.Classify(context.Background(), in, "1"); err == nil {
		t.Fatal("expected error for unknown rule type")
	}
}
