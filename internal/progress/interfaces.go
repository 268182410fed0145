package progress

import (
	"context"

	"github.com/oppia/explord/internal/exploration"
)

// AnswerClassifier evaluates a raw answer against an interaction's rules
// and returns the matching outcome. The engine only consumes the result;
// rule evaluation itself is the classifier's business.
type AnswerClassifier interface {
	Classify(ctx context.Context, in exploration.Interaction, rawAnswer string) (exploration.Outcome, error)
}

// HintPolicy decides, from wrong-answer counts and elapsed time, when a
// hint or the solution becomes available. The engine calls these hooks at
// defined points and persists the resulting help index inside
// checkpoints; all timing and eligibility decisions belong to the policy.
type HintPolicy interface {
	StartWatchingForHintsInNewState(state exploration.State)
	ResumeHintsForSavedState(pendingAnswerCount int, help HelpIndex, state exploration.State)
	HandleWrongAnswerSubmission(wrongAnswerCount int)
	FinishState(newState exploration.State)
	ViewHint(index int) error
	ViewSolution() error
	NavigateToPreviousState()
	NavigateBackToLatestPendingState()
	CurrentHelpIndex() HelpIndex
}

// ProgressTracker is told when a session crosses the saved/not-saved
// boundary so dashboards can mark the lesson-in-story accordingly.
// Fire-and-forget; no return value is consumed.
type ProgressTracker interface {
	RecordInProgressSaved(learnerID, topicID, storyID, lessonID string, timestampMs int64)
	RecordInProgressNotSaved(learnerID, topicID, storyID, lessonID string, timestampMs int64)
}

// Event payloads appended to the analytics/fault log. The ent-backed
// implementation lives in internal/store.

type SessionEventData struct {
	SessionID string
	LearnerID string
	LessonID  string
	Action    string
}

type AnswerEventData struct {
	SessionID     string
	LessonID      string
	StateName     string
	Answer        string
	Feedback      string
	Correct       bool
	DestStateName string
}

type HintEventData struct {
	SessionID string
	LessonID  string
	StateName string
	HintIndex int
	Solution  bool
}

type CheckpointEventData struct {
	SessionID string
	LessonID  string
	Status    string
}

type FaultEventData struct {
	SessionID string
	Operation string
	Message   string
}

// EventRecorder appends engine events to a durable log. All appends are
// best-effort from the engine's point of view: failures are warned about,
// never surfaced to the caller.
type EventRecorder interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendHintEvent(ctx context.Context, data HintEventData) error
	AppendCheckpointEvent(ctx context.Context, data CheckpointEventData) error
	AppendFaultEvent(ctx context.Context, data FaultEventData) error
}
