package progress

import (
	"errors"
	"testing"

	"github.com/oppia/explord/internal/exploration"
)

func textState(name string) exploration.State {
	return exploration.State{
		Name:        name,
		Content:     "content for " + name,
		Interaction: exploration.Interaction{ID: "TextInput"},
	}
}

func terminalState(name string) exploration.State {
	return exploration.State{
		Name:        name,
		Content:     "the end",
		Interaction: exploration.Interaction{ID: exploration.InteractionEndExploration},
	}
}

func TestDeckResetAndPush(t *testing.T) {
	d := NewStateDeck()
	d.Reset(textState("Intro"))

	if !d.IsCurrentStateTopOfDeck() {
		t.Fatal("fresh deck cursor should sit at the frontier")
	}
	if got := d.CurrentState().Name; got != "Intro" {
		t.Errorf("current = %q, want Intro", got)
	}
	if !d.TopIsPending() {
		t.Error("non-terminal frontier should be pending")
	}

	if err := d.PushState(textState("Second"), true); err != nil {
		t.Fatalf("push: %v", err)
	}

	// The cursor stays on the just-completed entry after a push.
	if d.IsCurrentStateTopOfDeck() {
		t.Error("cursor should lag behind the new frontier")
	}
	if got := d.CurrentState().Name; got != "Intro" {
		t.Errorf("current = %q, want Intro", got)
	}
	if got := d.PendingTopState().Name; got != "Second" {
		t.Errorf("frontier = %q, want Second", got)
	}
}

func TestDeckPushRejectsSameName(t *testing.T) {
	d := NewStateDeck()
	d.Reset(textState("Intro"))

	if err := d.PushState(textState("Intro"), true); err == nil {
		t.Fatal("expected same-name push to fail when prohibited")
	}
	if err := d.PushState(textState("Intro"), false); err != nil {
		t.Fatalf("unprohibited push: %v", err)
	}
}

func TestDeckNavigation(t *testing.T) {
	d := NewStateDeck()
	d.Reset(textState("A"))
	if err := d.PushState(textState("B"), true); err != nil {
		t.Fatal(err)
	}
	if err := d.PushState(textState("C"), true); err != nil {
		t.Fatal(err)
	}

	// Cursor is at A (index 0) after two pushes from a fresh deck.
	if err := d.NavigateToPreviousState(); !errors.Is(err, ErrAtBeginning) {
		t.Fatalf("err = %v, want ErrAtBeginning", err)
	}

	if err := d.NavigateToNextState(); err != nil {
		t.Fatal(err)
	}
	if got := d.CurrentState().Name; got != "B" {
		t.Errorf("current = %q, want B", got)
	}
	if err := d.NavigateToNextState(); err != nil {
		t.Fatal(err)
	}
	if !d.IsCurrentStateTopOfDeck() {
		t.Error("cursor should now be at the frontier")
	}
	if err := d.NavigateToNextState(); !errors.Is(err, ErrAtFrontier) {
		t.Fatalf("err = %v, want ErrAtFrontier", err)
	}

	if err := d.NavigateToPreviousState(); err != nil {
		t.Fatal(err)
	}
	if got := d.CurrentState().Name; got != "B" {
		t.Errorf("current = %q, want B", got)
	}
}

func TestDeckAnswersAccumulateAtFrontier(t *testing.T) {
	d := NewStateDeck()
	d.Reset(textState("Intro"))

	d.SubmitAnswer(AnswerRecord{Answer: "1", Feedback: "No."})
	d.SubmitAnswer(AnswerRecord{Answer: "2", Feedback: "No."})
	if got := d.PendingAnswerCount(); got != 2 {
		t.Errorf("pending answers = %d, want 2", got)
	}

	d.SubmitAnswer(AnswerRecord{Answer: "3", Feedback: "Yes.", Correct: true})
	if err := d.PushState(textState("Second"), true); err != nil {
		t.Fatal(err)
	}

	// The completed view keeps the full answer history of that state.
	es := d.CurrentEphemeralState(HelpIndex{}, CheckpointUnsaved)
	completed, ok := es.(CompletedState)
	if !ok {
		t.Fatalf("ephemeral state = %T, want CompletedState", es)
	}
	if len(completed.Answers) != 3 {
		t.Errorf("answers = %d, want 3", len(completed.Answers))
	}
	if !completed.Answers[2].Correct {
		t.Error("last answer should be the correct one")
	}

	// The new frontier starts with no answers.
	if got := d.PendingAnswerCount(); got != 0 {
		t.Errorf("frontier answers = %d, want 0", got)
	}
}

func TestDeckEphemeralProjections(t *testing.T) {
	d := NewStateDeck()
	d.Reset(textState("Intro"))
	d.SubmitAnswer(AnswerRecord{Answer: "no", Feedback: "Try again."})

	help := HelpIndex{Kind: HelpAvailableHint, HintIndex: 0}
	es := d.CurrentEphemeralState(help, CheckpointSavedUnderLimit)
	pending, ok := es.(PendingState)
	if !ok {
		t.Fatalf("ephemeral state = %T, want PendingState", es)
	}
	if len(pending.WrongAnswers) != 1 {
		t.Errorf("wrong answers = %d, want 1", len(pending.WrongAnswers))
	}
	if pending.HelpIndex != help {
		t.Errorf("help = %+v, want %+v", pending.HelpIndex, help)
	}
	if pending.CheckpointStatus != CheckpointSavedUnderLimit {
		t.Errorf("status = %v", pending.CheckpointStatus)
	}

	if err := d.PushState(terminalState("End"), true); err != nil {
		t.Fatal(err)
	}
	if err := d.NavigateToNextState(); err != nil {
		t.Fatal(err)
	}

	es = d.CurrentEphemeralState(HelpIndex{}, CheckpointSavedUnderLimit)
	if _, ok := es.(TerminalState); !ok {
		t.Fatalf("ephemeral state = %T, want TerminalState", es)
	}
	if d.TopIsPending() {
		t.Error("terminal frontier must not be pending")
	}
}

func TestDeckCreateCheckpoint(t *testing.T) {
	d := NewStateDeck()
	d.Reset(textState("Intro"))
	d.SubmitAnswer(AnswerRecord{Answer: "no", Feedback: "Try again."})

	help := HelpIndex{Kind: HelpRevealedHint, HintIndex: 1}
	cp := d.CreateCheckpoint("fractions-101", 2, "Fractions", 5000, help)

	if cp.PendingStateName != "Intro" {
		t.Errorf("pending state = %q", cp.PendingStateName)
	}
	if len(cp.PendingAnswers) != 1 {
		t.Errorf("pending answers = %d, want 1", len(cp.PendingAnswers))
	}
	if cp.LastPlayedMs != 5000 {
		t.Errorf("last played = %d", cp.LastPlayedMs)
	}
	if cp.FirstCheckpointMs != 0 {
		t.Errorf("first checkpoint ms = %d, want 0 (store fills it)", cp.FirstCheckpointMs)
	}
	if cp.HelpIndex != help {
		t.Errorf("help = %+v", cp.HelpIndex)
	}

	// Snapshot answers are a copy, not an alias of deck state.
	cp.PendingAnswers[0].Answer = "mutated"
	fresh := d.CreateCheckpoint("fractions-101", 2, "Fractions", 6000, help)
	if fresh.PendingAnswers[0].Answer != "no" {
		t.Error("checkpoint answers must not alias deck entries")
	}
}
