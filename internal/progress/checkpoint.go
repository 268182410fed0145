package progress

import (
	"context"
	"fmt"
)

// ExplorationCheckpoint is a persisted, resumable snapshot of session
// progress: enough of the navigation log (the frontier's pending-answer
// history) to rebuild the Pending projection that existed when it was
// taken. Immutable value; each save replaces the prior one wholesale
// except FirstCheckpointMs, which the store carries forward.
type ExplorationCheckpoint struct {
	LessonID          string         `json:"lesson_id"`
	LessonVersion     int            `json:"lesson_version"`
	LessonTitle       string         `json:"lesson_title"`
	FirstCheckpointMs int64          `json:"first_checkpoint_ms"`
	LastPlayedMs      int64          `json:"last_played_ms"`
	PendingStateName  string         `json:"pending_state_name"`
	PendingAnswers    []AnswerRecord `json:"pending_answers,omitempty"`
	HelpIndex         HelpIndex      `json:"help_index"`
}

// SaveOutcome reports a completed checkpoint save. SizeOK is false when
// the learner's serialized checkpoint database exceeds its ceiling; the
// save still succeeded.
type SaveOutcome struct {
	SizeOK    bool
	TotalSize int64
}

// OldestCheckpoint identifies the least recently started saved session
// for a learner, for cleanup flows.
type OldestCheckpoint struct {
	LessonID      string
	LessonTitle   string
	LessonVersion int
}

// ErrCheckpointNotFound indicates no checkpoint exists for the pair.
type ErrCheckpointNotFound struct {
	LearnerID string
	LessonID  string
}

func (e *ErrCheckpointNotFound) Error() string {
	return fmt.Sprintf("no checkpoint for learner %q, lesson %q", e.LearnerID, e.LessonID)
}

// CheckpointStore persists the per-learner lesson-id -> checkpoint map.
// Save must tolerate at least one call in flight without blocking other
// store operations; two concurrent saves for the same pair resolve
// last-write-wins by completion order.
type CheckpointStore interface {
	Save(ctx context.Context, learnerID string, cp ExplorationCheckpoint) (SaveOutcome, error)
	Retrieve(ctx context.Context, learnerID, lessonID string) (ExplorationCheckpoint, error)
	RetrieveOldest(ctx context.Context, learnerID string) (OldestCheckpoint, error)
	Delete(ctx context.Context, learnerID, lessonID string) error
}
