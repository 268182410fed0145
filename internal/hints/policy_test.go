package hints

import (
	"errors"
	"testing"
	"time"

	"github.com/oppia/explord/internal/exploration"
	"github.com/oppia/explord/internal/progress"
)

// fakeClock drives the policy's elapsed-time gates without sleeping.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestPolicy(t *testing.T) (*Policy, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.UnixMilli(1_000_000)}
	p := NewPolicy(Config{
		WrongAnswersForHint: 2,
		HintDelay:           60 * time.Second,
		SolutionDelay:       30 * time.Second,
		Now:                 clock.Now,
	})
	return p, clock
}

func hintedState() exploration.State {
	return exploration.State{
		Name: "Q1",
		Interaction: exploration.Interaction{
			ID:       "TextInput",
			Hints:    []exploration.Hint{{Text: "first hint"}, {Text: "second hint"}},
			Solution: &exploration.Solution{CorrectAnswer: "42"},
		},
	}
}

func TestNoHelpInFreshState(t *testing.T) {
	p, _ := newTestPolicy(t)
	p.StartWatchingForHintsInNewState(hintedState())

	if got := p.CurrentHelpIndex(); got.Kind != progress.HelpNone {
		t.Errorf("help = %+v, want none", got)
	}
}

func TestHintUnlocksAfterWrongAnswers(t *testing.T) {
	p, _ := newTestPolicy(t)
	p.StartWatchingForHintsInNewState(hintedState())

	p.HandleWrongAnswerSubmission(1)
	if got := p.CurrentHelpIndex(); got.Kind != progress.HelpNone {
		t.Errorf("help after 1 wrong = %+v, want none", got)
	}

	p.HandleWrongAnswerSubmission(2)
	got := p.CurrentHelpIndex()
	if got.Kind != progress.HelpAvailableHint || got.HintIndex != 0 {
		t.Errorf("help after 2 wrong = %+v, want available hint 0", got)
	}
}

func TestHintUnlocksAfterDelay(t *testing.T) {
	p, clock := newTestPolicy(t)
	p.StartWatchingForHintsInNewState(hintedState())

	clock.advance(59 * time.Second)
	if got := p.CurrentHelpIndex(); got.Kind != progress.HelpNone {
		t.Errorf("help at 59s = %+v, want none", got)
	}

	clock.advance(time.Second)
	got := p.CurrentHelpIndex()
	if got.Kind != progress.HelpAvailableHint || got.HintIndex != 0 {
		t.Errorf("help at 60s = %+v, want available hint 0", got)
	}
}

func TestViewHintSequence(t *testing.T) {
	p, clock := newTestPolicy(t)
	p.StartWatchingForHintsInNewState(hintedState())
	p.HandleWrongAnswerSubmission(2)

	// Cannot skip ahead to a hint that is not the available one.
	var notAvail *ErrHelpNotAvailable
	if err := p.ViewHint(1); !errors.As(err, &notAvail) {
		t.Fatalf("err = %v, want ErrHelpNotAvailable", err)
	}

	if err := p.ViewHint(0); err != nil {
		t.Fatalf("view hint 0: %v", err)
	}
	got := p.CurrentHelpIndex()
	if got.Kind != progress.HelpRevealedHint || got.HintIndex != 0 {
		t.Errorf("help = %+v, want revealed hint 0", got)
	}

	// Viewing a hint rebases the clock; the next hint ripens on delay.
	clock.advance(60 * time.Second)
	got = p.CurrentHelpIndex()
	if got.Kind != progress.HelpAvailableHint || got.HintIndex != 1 {
		t.Errorf("help = %+v, want available hint 1", got)
	}
	if err := p.ViewHint(1); err != nil {
		t.Fatalf("view hint 1: %v", err)
	}
}

func TestSolutionGating(t *testing.T) {
	p, clock := newTestPolicy(t)
	p.StartWatchingForHintsInNewState(hintedState())
	p.HandleWrongAnswerSubmission(2)

	// Solution refuses while hints remain.
	var notAvail *ErrHelpNotAvailable
	if err := p.ViewSolution(); !errors.As(err, &notAvail) {
		t.Fatalf("err = %v, want ErrHelpNotAvailable", err)
	}

	if err := p.ViewHint(0); err != nil {
		t.Fatal(err)
	}
	clock.advance(60 * time.Second)
	if err := p.ViewHint(1); err != nil {
		t.Fatal(err)
	}

	// All hints out, but the solution delay has not elapsed.
	if err := p.ViewSolution(); err == nil {
		t.Fatal("expected solution to be gated by delay")
	}
	got := p.CurrentHelpIndex()
	if got.Kind != progress.HelpRevealedHint || got.HintIndex != 1 {
		t.Errorf("help = %+v, want revealed hint 1", got)
	}

	clock.advance(30 * time.Second)
	if got := p.CurrentHelpIndex(); got.Kind != progress.HelpShowSolution {
		t.Errorf("help = %+v, want show solution", got)
	}
	if err := p.ViewSolution(); err != nil {
		t.Fatalf("view solution: %v", err)
	}
	if got := p.CurrentHelpIndex(); got.Kind != progress.HelpEverythingRevealed {
		t.Errorf("help = %+v, want everything revealed", got)
	}
}

func TestStateWithoutHints(t *testing.T) {
	p, clock := newTestPolicy(t)
	p.StartWatchingForHintsInNewState(exploration.State{
		Name:        "Plain",
		Interaction: exploration.Interaction{ID: "TextInput"},
	})

	p.HandleWrongAnswerSubmission(5)
	clock.advance(10 * time.Minute)
	if got := p.CurrentHelpIndex(); got.Kind != progress.HelpNone {
		t.Errorf("help = %+v, want none for a hintless state", got)
	}
	if err := p.ViewHint(0); err == nil {
		t.Fatal("expected hint refusal for a hintless state")
	}
}

func TestFinishStateResets(t *testing.T) {
	p, _ := newTestPolicy(t)
	p.StartWatchingForHintsInNewState(hintedState())
	p.HandleWrongAnswerSubmission(2)
	if err := p.ViewHint(0); err != nil {
		t.Fatal(err)
	}

	next := hintedState()
	next.Name = "Q2"
	p.FinishState(next)

	if got := p.CurrentHelpIndex(); got.Kind != progress.HelpNone {
		t.Errorf("help after finish = %+v, want none", got)
	}
}

func TestNavigationRebasesClock(t *testing.T) {
	p, clock := newTestPolicy(t)
	p.StartWatchingForHintsInNewState(hintedState())

	clock.advance(59 * time.Second)
	p.NavigateToPreviousState()
	clock.advance(59 * time.Second)
	p.NavigateBackToLatestPendingState()
	clock.advance(59 * time.Second)

	// 177s of wall time, but each navigation rebased the timer.
	if got := p.CurrentHelpIndex(); got.Kind != progress.HelpNone {
		t.Errorf("help = %+v, want none after rebasing", got)
	}
}

func TestResumeFromSavedHelp(t *testing.T) {
	tests := []struct {
		name string
		help progress.HelpIndex
		want progress.HelpIndex
	}{
		{
			"revealed hint restores position",
			progress.HelpIndex{Kind: progress.HelpRevealedHint, HintIndex: 0},
			progress.HelpIndex{Kind: progress.HelpRevealedHint, HintIndex: 0},
		},
		{
			"everything revealed survives resume",
			progress.HelpIndex{Kind: progress.HelpEverythingRevealed},
			progress.HelpIndex{Kind: progress.HelpEverythingRevealed},
		},
		{
			"nothing revealed starts clean",
			progress.HelpIndex{},
			progress.HelpIndex{Kind: progress.HelpNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPolicy(t)
			p.ResumeHintsForSavedState(1, tt.help, hintedState())
			if got := p.CurrentHelpIndex(); got != tt.want {
				t.Errorf("help = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResumeShowSolutionRegatesDelay(t *testing.T) {
	p, clock := newTestPolicy(t)
	p.ResumeHintsForSavedState(2, progress.HelpIndex{Kind: progress.HelpShowSolution}, hintedState())

	// The offer does not survive the restart instantly; the delay runs
	// again from the resume point.
	got := p.CurrentHelpIndex()
	if got.Kind != progress.HelpRevealedHint || got.HintIndex != 1 {
		t.Errorf("help at resume = %+v, want revealed hint 1", got)
	}

	clock.advance(30 * time.Second)
	if got := p.CurrentHelpIndex(); got.Kind != progress.HelpShowSolution {
		t.Errorf("help after delay = %+v, want show solution", got)
	}
}
