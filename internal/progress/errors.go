package progress

import "errors"

// Precondition failures surfaced to callers. Each operation returns a
// distinct error so a UI can show an actionable message.
var (
	// ErrSessionActive is returned by BeginSession while a session is live.
	ErrSessionActive = errors.New("cannot begin session: finish previous session first")

	// ErrSessionNotStarted is returned when an operation needs a live
	// session and none exists.
	ErrSessionNotStarted = errors.New("session not started")

	// ErrLessonLoading is returned when an operation arrives before the
	// lesson finished loading.
	ErrLessonLoading = errors.New("lesson is still loading")

	// ErrSubmissionInFlight is returned when an answer submission is
	// already being processed.
	ErrSubmissionInFlight = errors.New("an answer submission is already in progress")

	// ErrStaleLoad is returned when the session changed while its lesson
	// was loading; the load result was discarded.
	ErrStaleLoad = errors.New("session changed while lesson was loading")

	// ErrAtBeginning is returned when navigating backward from the first
	// visited state.
	ErrAtBeginning = errors.New("already at the first state")

	// ErrAtFrontier is returned when navigating forward from the most
	// recent state.
	ErrAtFrontier = errors.New("already at the most recent state")
)
