package progress

import "github.com/oppia/explord/internal/exploration"

// CheckpointSaveStatus is the outcome of the most recent checkpoint save
// attempt, exposed through ephemeral-state projections for UI feedback.
type CheckpointSaveStatus int

const (
	CheckpointUnsaved CheckpointSaveStatus = iota
	CheckpointSavedUnderLimit
	CheckpointSavedOverLimit
)

func (s CheckpointSaveStatus) String() string {
	switch s {
	case CheckpointUnsaved:
		return "unsaved"
	case CheckpointSavedUnderLimit:
		return "saved_under_limit"
	case CheckpointSavedOverLimit:
		return "saved_over_limit"
	}
	return "unknown"
}

// Saved reports whether the last save attempt persisted a checkpoint.
func (s CheckpointSaveStatus) Saved() bool {
	return s != CheckpointUnsaved
}

// EphemeralState is the read-only projection of where the learner is
// right now. Exactly three variants exist; callers switch over them
// exhaustively.
type EphemeralState interface {
	ephemeralState()
}

// PendingState is a frontier state whose interaction still awaits a
// correct answer.
type PendingState struct {
	State            exploration.State
	WrongAnswers     []AnswerRecord
	HelpIndex        HelpIndex
	CheckpointStatus CheckpointSaveStatus
}

// CompletedState is a reviewed state whose interaction was already
// resolved; Answers lists every submission there in order, wrong ones
// first and the final correct one last.
type CompletedState struct {
	State            exploration.State
	Answers          []AnswerRecord
	CheckpointStatus CheckpointSaveStatus
}

// TerminalState means the lesson is finished; no further interaction.
type TerminalState struct {
	State            exploration.State
	CheckpointStatus CheckpointSaveStatus
}

func (PendingState) ephemeralState()   {}
func (CompletedState) ephemeralState() {}
func (TerminalState) ephemeralState()  {}
