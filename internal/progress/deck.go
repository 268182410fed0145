package progress

import (
	"fmt"

	"github.com/oppia/explord/internal/exploration"
)

// AnswerRecord is one submitted answer with the feedback it received.
type AnswerRecord struct {
	Answer   string `json:"answer"`
	Feedback string `json:"feedback"`
	Correct  bool   `json:"correct"`
}

// deckEntry is one visited state plus the answers submitted there.
type deckEntry struct {
	state   exploration.State
	answers []AnswerRecord
}

// StateDeck is the ordered history of states visited in the current
// session. The last entry is the frontier (the not-yet-completed state);
// every earlier entry was completed by a correct answer. A read cursor
// moves over the history for review navigation without discarding
// anything: the deck is append-only in the forward direction.
type StateDeck struct {
	entries []deckEntry
	cursor  int
}

// NewStateDeck creates an empty deck; Reset must run before use.
func NewStateDeck() *StateDeck {
	return &StateDeck{}
}

// Reset clears history and pushes initial as the sole pending entry.
func (d *StateDeck) Reset(initial exploration.State) {
	d.entries = []deckEntry{{state: initial}}
	d.cursor = 0
}

// PushState appends a new frontier entry. The read cursor stays put so a
// correct answer leaves the learner viewing the just-completed state.
// With prohibitSameStateName set, pushing a state named like the current
// frontier fails (guards against self-loop mis-navigation).
func (d *StateDeck) PushState(s exploration.State, prohibitSameStateName bool) error {
	if prohibitSameStateName && len(d.entries) > 0 && d.top().state.Name == s.Name {
		return fmt.Errorf("cannot push state %q: same name as the current frontier", s.Name)
	}
	d.entries = append(d.entries, deckEntry{state: s})
	return nil
}

// SubmitAnswer appends an answer to the frontier entry. The cursor does
// not move; both wrong answers and the final correct one land here.
func (d *StateDeck) SubmitAnswer(rec AnswerRecord) {
	d.top().answers = append(d.top().answers, rec)
}

// NavigateToPreviousState moves the read cursor one step back.
func (d *StateDeck) NavigateToPreviousState() error {
	if d.cursor == 0 {
		return ErrAtBeginning
	}
	d.cursor--
	return nil
}

// NavigateToNextState moves the read cursor one step forward.
func (d *StateDeck) NavigateToNextState() error {
	if d.cursor >= len(d.entries)-1 {
		return ErrAtFrontier
	}
	d.cursor++
	return nil
}

// IsCurrentStateTopOfDeck reports whether the cursor is at the frontier,
// i.e. the learner is not reviewing history.
func (d *StateDeck) IsCurrentStateTopOfDeck() bool {
	return d.cursor == len(d.entries)-1
}

// PendingTopState returns the state definition at the frontier.
func (d *StateDeck) PendingTopState() exploration.State {
	return d.top().state
}

// CurrentState returns the state definition at the read cursor.
func (d *StateDeck) CurrentState() exploration.State {
	return d.entries[d.cursor].state
}

// PendingAnswerCount returns how many answers were submitted at the
// frontier. While the frontier is pending all of them are wrong ones.
func (d *StateDeck) PendingAnswerCount() int {
	return len(d.top().answers)
}

// TopIsPending reports whether the frontier still awaits a correct
// answer, which is the only moment a checkpoint may be written.
func (d *StateDeck) TopIsPending() bool {
	return len(d.entries) > 0 && !d.top().state.IsTerminal()
}

// CurrentEphemeralState projects the entry at the read cursor into the
// tagged Pending/Completed/Terminal view.
func (d *StateDeck) CurrentEphemeralState(help HelpIndex, status CheckpointSaveStatus) EphemeralState {
	entry := d.entries[d.cursor]

	if !d.IsCurrentStateTopOfDeck() {
		return CompletedState{
			State:            entry.state,
			Answers:          copyAnswers(entry.answers),
			CheckpointStatus: status,
		}
	}
	if entry.state.IsTerminal() {
		return TerminalState{
			State:            entry.state,
			CheckpointStatus: status,
		}
	}
	return PendingState{
		State:            entry.state,
		WrongAnswers:     copyAnswers(entry.answers),
		HelpIndex:        help,
		CheckpointStatus: status,
	}
}

// CreateCheckpoint snapshots the frontier into a resumable checkpoint
// value. FirstCheckpointMs is left zero; the checkpoint store carries it
// forward from any prior save.
func (d *StateDeck) CreateCheckpoint(lessonID string, version int, title string, nowMs int64, help HelpIndex) ExplorationCheckpoint {
	return ExplorationCheckpoint{
		LessonID:         lessonID,
		LessonVersion:    version,
		LessonTitle:      title,
		LastPlayedMs:     nowMs,
		PendingStateName: d.top().state.Name,
		PendingAnswers:   copyAnswers(d.top().answers),
		HelpIndex:        help,
	}
}

func (d *StateDeck) top() *deckEntry {
	return &d.entries[len(d.entries)-1]
}

func copyAnswers(in []AnswerRecord) []AnswerRecord {
	if len(in) == 0 {
		return nil
	}
	out := make([]AnswerRecord, len(in))
	copy(out, in)
	return out
}
