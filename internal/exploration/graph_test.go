package exploration

import (
	"errors"
	"testing"
)

func decodeFixture(t *testing.T) *Exploration {
	t.Helper()
	exp, err := Decode([]byte(fractionsLesson))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return exp
}

func TestStateGraphLookup(t *testing.T) {
	g := NewStateGraph(decodeFixture(t))

	if got := g.InitialState().Name; got != "Intro" {
		t.Errorf("initial state = %q, want Intro", got)
	}

	s, err := g.State("Wrap")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if !s.IsTerminal() {
		t.Error("expected Wrap to be terminal")
	}

	_, err = g.State("Missing")
	var notFound *ErrStateNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want ErrStateNotFound", err)
	}
	if notFound.StateName != "Missing" {
		t.Errorf("state name = %q", notFound.StateName)
	}
}

func TestResolveOutcome(t *testing.T) {
	g := NewStateGraph(decodeFixture(t))
	intro := g.InitialState()

	correct := g.ResolveOutcome(intro, Outcome{
		Dest: "Wrap", Feedback: "Correct!", LabelledAsCorrect: true,
	})
	if !correct.Correct || correct.Feedback != "Correct!" {
		t.Errorf("outcome = %+v", correct)
	}
	if correct.Dest.SameState || correct.Dest.StateName != "Wrap" {
		t.Errorf("dest = %+v, want Wrap", correct.Dest)
	}

	// A destination naming the source state folds into same-state.
	retry := g.ResolveOutcome(intro, Outcome{Dest: "Intro", Feedback: "Try again."})
	if !retry.Dest.SameState {
		t.Errorf("dest = %+v, want same state", retry.Dest)
	}
	if retry.Correct {
		t.Error("unlabelled outcome should not be correct")
	}

	// An empty destination also stays on the source state.
	empty := g.ResolveOutcome(intro, Outcome{Feedback: "Hm."})
	if !empty.Dest.SameState {
		t.Errorf("dest = %+v, want same state", empty.Dest)
	}
}
