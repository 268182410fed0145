package progress

import "github.com/oppia/explord/internal/exploration"

// ExplorationProgress is the single mutable aggregate describing the
// in-flight session. The controller replaces it wholesale on each
// BeginSession (never field by field) so nothing leaks between sessions,
// and mutates it only under the session lock. Callers must not assume
// object identity carries meaning across sessions.
type ExplorationProgress struct {
	SessionID string

	LearnerID string
	TopicID   string
	StoryID   string
	LessonID  string

	SavePartialProgress bool
	ResumeCheckpoint    *ExplorationCheckpoint

	Stage PlayStage
	Graph *exploration.StateGraph
	Deck  *StateDeck

	CheckpointStatus CheckpointSaveStatus
}
