// Package hints implements the default hint/solution reveal policy.
// Availability is computed on demand from wrong-answer counts and
// elapsed time, so the policy needs no background timers: the engine
// polls CurrentHelpIndex whenever it projects the session state.
package hints

import (
	"fmt"
	"time"

	"github.com/oppia/explord/internal/exploration"
	"github.com/oppia/explord/internal/progress"
)

// Config tunes when help surfaces.
type Config struct {
	// WrongAnswersForHint makes the first hint available after this many
	// wrong answers at the current state; each further hint needs one
	// more wrong answer (or the delay).
	WrongAnswersForHint int

	// HintDelay makes the next hint available after this much time at
	// the current state (or since the last reveal) regardless of answers.
	HintDelay time.Duration

	// SolutionDelay gates the solution after the last hint was revealed.
	SolutionDelay time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig mirrors the classic tutoring cadence: a hint after two
// wrong answers or a minute of struggle, the solution half a minute
// after the last hint.
func DefaultConfig() Config {
	return Config{
		WrongAnswersForHint: 2,
		HintDelay:           60 * time.Second,
		SolutionDelay:       30 * time.Second,
	}
}

// ErrHelpNotAvailable indicates a reveal request the policy has not
// unlocked yet.
type ErrHelpNotAvailable struct {
	What string
}

func (e *ErrHelpNotAvailable) Error() string {
	return fmt.Sprintf("%s is not available yet", e.What)
}

// Policy tracks help progress for the single state being watched. It is
// not internally synchronized: the session controller already serializes
// every call under its session lock.
type Policy struct {
	cfg Config

	state            exploration.State
	wrongAnswers     int
	revealedHints    int
	solutionRevealed bool
	rebasedAt        time.Time
}

// NewPolicy builds a policy; zero config fields fall back to defaults.
func NewPolicy(cfg Config) *Policy {
	def := DefaultConfig()
	if cfg.WrongAnswersForHint <= 0 {
		cfg.WrongAnswersForHint = def.WrongAnswersForHint
	}
	if cfg.HintDelay <= 0 {
		cfg.HintDelay = def.HintDelay
	}
	if cfg.SolutionDelay <= 0 {
		cfg.SolutionDelay = def.SolutionDelay
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Policy{cfg: cfg}
}

func (p *Policy) StartWatchingForHintsInNewState(state exploration.State) {
	p.state = state
	p.wrongAnswers = 0
	p.revealedHints = 0
	p.solutionRevealed = false
	p.rebasedAt = p.cfg.Now()
}

func (p *Policy) ResumeHintsForSavedState(pendingAnswerCount int, help progress.HelpIndex, state exploration.State) {
	p.state = state
	p.wrongAnswers = pendingAnswerCount
	p.rebasedAt = p.cfg.Now()

	switch help.Kind {
	case progress.HelpRevealedHint:
		p.revealedHints = help.HintIndex + 1
		p.solutionRevealed = false
	case progress.HelpEverythingRevealed:
		p.revealedHints = len(state.Interaction.Hints)
		p.solutionRevealed = true
	case progress.HelpShowSolution:
		p.revealedHints = len(state.Interaction.Hints)
		p.solutionRevealed = false
	default:
		p.revealedHints = 0
		p.solutionRevealed = false
	}
}

func (p *Policy) HandleWrongAnswerSubmission(wrongAnswerCount int) {
	p.wrongAnswers = wrongAnswerCount
}

func (p *Policy) FinishState(newState exploration.State) {
	p.StartWatchingForHintsInNewState(newState)
}

func (p *Policy) ViewHint(index int) error {
	help := p.CurrentHelpIndex()
	if help.Kind != progress.HelpAvailableHint || help.HintIndex != index {
		return &ErrHelpNotAvailable{What: fmt.Sprintf("hint %d", index)}
	}
	p.revealedHints = index + 1
	p.rebasedAt = p.cfg.Now()
	return nil
}

func (p *Policy) ViewSolution() error {
	if p.CurrentHelpIndex().Kind != progress.HelpShowSolution {
		return &ErrHelpNotAvailable{What: "the solution"}
	}
	p.solutionRevealed = true
	return nil
}

// NavigateToPreviousState rebases the elapsed-time clock: reviewing
// history should not silently ripen a hint.
func (p *Policy) NavigateToPreviousState() {
	p.rebasedAt = p.cfg.Now()
}

// NavigateBackToLatestPendingState rebases the clock on return to the
// frontier.
func (p *Policy) NavigateBackToLatestPendingState() {
	p.rebasedAt = p.cfg.Now()
}

// CurrentHelpIndex computes the current help position from the recorded
// reveals, the wrong-answer count and the elapsed time.
func (p *Policy) CurrentHelpIndex() progress.HelpIndex {
	hints := p.state.Interaction.Hints

	if p.solutionRevealed {
		return progress.HelpIndex{Kind: progress.HelpEverythingRevealed}
	}

	elapsed := p.cfg.Now().Sub(p.rebasedAt)

	if p.revealedHints >= len(hints) {
		// All hints (possibly zero) are out; the solution is next.
		if p.state.Interaction.Solution != nil && p.revealedHints > 0 && elapsed >= p.cfg.SolutionDelay {
			return progress.HelpIndex{Kind: progress.HelpShowSolution}
		}
		if p.revealedHints > 0 {
			return progress.HelpIndex{Kind: progress.HelpRevealedHint, HintIndex: p.revealedHints - 1}
		}
		return progress.HelpIndex{Kind: progress.HelpNone}
	}

	if p.wrongAnswers >= p.cfg.WrongAnswersForHint+p.revealedHints || elapsed >= p.cfg.HintDelay {
		return progress.HelpIndex{Kind: progress.HelpAvailableHint, HintIndex: p.revealedHints}
	}
	if p.revealedHints > 0 {
		return progress.HelpIndex{Kind: progress.HelpRevealedHint, HintIndex: p.revealedHints - 1}
	}
	return progress.HelpIndex{Kind: progress.HelpNone}
}
