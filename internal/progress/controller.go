// Package progress implements the play-session state machine and the
// checkpoint-synchronization engine: the stage guard over session
// lifecycle, the navigation log over visited states, the
// answer-submission pipeline, and the asynchronous checkpoint save path
// with its deliberate staleness window.
package progress

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oppia/explord/internal/exploration"
)

// Config wires a Controller's collaborators. Retriever, Classifier,
// HintPolicy and Checkpoints are required; Tracker and Events are
// optional, Now defaults to time.Now.
type Config struct {
	Retriever   exploration.Retriever
	Classifier  AnswerClassifier
	HintPolicy  HintPolicy
	Checkpoints CheckpointStore
	Tracker     ProgressTracker
	Events      EventRecorder
	Now         func() time.Time
}

// Controller orchestrates session start/stop, answer submission,
// hint/solution reveals, review navigation and checkpoint persistence.
// It is the only component that mutates the session aggregate, always
// under one session-wide lock. A checkpoint save is dispatched inside
// the triggering operation's critical section but reconciled in a later
// one, so the recorded save status is stale between the two; that gap is
// part of the contract, not something to close by blocking.
type Controller struct {
	mu sync.Mutex

	retriever   exploration.Retriever
	classifier  AnswerClassifier
	policy      HintPolicy
	checkpoints CheckpointStore
	tracker     ProgressTracker
	events      EventRecorder
	now         func() time.Time

	// progress is nil until the first BeginSession and replaced wholesale
	// on each subsequent one.
	progress *ExplorationProgress

	saves       sync.WaitGroup
	subscribers []chan struct{}
}

// NewController validates cfg and builds a controller with no session.
func NewController(cfg Config) (*Controller, error) {
	switch {
	case cfg.Retriever == nil:
		return nil, errors.New("progress: Config.Retriever is required")
	case cfg.Classifier == nil:
		return nil, errors.New("progress: Config.Classifier is required")
	case cfg.HintPolicy == nil:
		return nil, errors.New("progress: Config.HintPolicy is required")
	case cfg.Checkpoints == nil:
		return nil, errors.New("progress: Config.Checkpoints is required")
	}
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Controller{
		retriever:   cfg.Retriever,
		classifier:  cfg.Classifier,
		policy:      cfg.HintPolicy,
		checkpoints: cfg.Checkpoints,
		tracker:     cfg.Tracker,
		events:      cfg.Events,
		now:         nowFn,
	}, nil
}

// BeginSession starts a new play session for the given learner and
// lesson. Loading is lazy: it happens on the first CurrentEphemeralState
// call. Passing a resume checkpoint reconstructs the navigation log from
// it instead of starting at the lesson's initial state.
func (c *Controller) BeginSession(ctx context.Context, learnerID, topicID, storyID, lessonID string, savePartialProgress bool, resume *ExplorationCheckpoint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.progress != nil && c.progress.Stage != StageNotPlaying {
		c.reportFaultLocked(ctx, "beginSession", ErrSessionActive)
		return ErrSessionActive
	}

	p := &ExplorationProgress{
		SessionID:           uuid.NewString(),
		LearnerID:           learnerID,
		TopicID:             topicID,
		StoryID:             storyID,
		LessonID:            lessonID,
		SavePartialProgress: savePartialProgress,
		ResumeCheckpoint:    resume,
		Stage:               StageNotPlaying,
		Deck:                NewStateDeck(),
		CheckpointStatus:    CheckpointUnsaved,
	}
	p.advanceStage(StageLoadingLesson)
	c.progress = p

	action := "begin"
	if resume != nil {
		action = "resume"
	}
	c.logEvent(c.events != nil, func() error {
		return c.events.AppendSessionEvent(ctx, SessionEventData{
			SessionID: p.SessionID,
			LearnerID: p.LearnerID,
			LessonID:  p.LessonID,
			Action:    action,
		})
	})

	c.notifyLocked()
	return nil
}

// EndSession stops the current session. In-flight checkpoint saves are
// not cancelled; their completions reconcile against whatever session
// context exists by then.
func (c *Controller) EndSession(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.progress == nil || c.progress.Stage == StageNotPlaying {
		c.reportFaultLocked(ctx, "endSession", ErrSessionNotStarted)
		return ErrSessionNotStarted
	}

	p := c.progress
	c.logEvent(c.events != nil, func() error {
		return c.events.AppendSessionEvent(ctx, SessionEventData{
			SessionID: p.SessionID,
			LearnerID: p.LearnerID,
			LessonID:  p.LessonID,
			Action:    "end",
		})
	})

	p.advanceStage(StageNotPlaying)
	c.notifyLocked()
	return nil
}

// CurrentEphemeralState returns the projection of where the learner is
// right now. The first call after BeginSession performs the lesson load:
// the lock is released for the load itself and re-acquired to commit,
// discarding the result if the session changed in between.
func (c *Controller) CurrentEphemeralState(ctx context.Context) (EphemeralState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.progress == nil || c.progress.Stage == StageNotPlaying {
		c.reportFaultLocked(ctx, "currentEphemeralState", ErrSessionNotStarted)
		return nil, ErrSessionNotStarted
	}

	if c.progress.Stage == StageLoadingLesson {
		if err := c.finishLessonLoadLocked(ctx); err != nil {
			return nil, err
		}
	}

	p := c.progress
	return p.Deck.CurrentEphemeralState(c.policy.CurrentHelpIndex(), p.CheckpointStatus), nil
}

// finishLessonLoadLocked completes the lazy load. Called with the lock
// held; temporarily releases it around the retriever call.
func (c *Controller) finishLessonLoadLocked(ctx context.Context) error {
	sessionID := c.progress.SessionID
	lessonID := c.progress.LessonID

	c.mu.Unlock()
	exp, loadErr := c.retriever.LoadExploration(ctx, lessonID)
	c.mu.Lock()

	// Re-validate: another caller may have ended or replaced the session
	// while the lock was released. A stale result is discarded, never
	// applied.
	p := c.progress
	if p == nil || p.SessionID != sessionID {
		return ErrStaleLoad
	}
	if p.Stage != StageLoadingLesson {
		// Same session, but the stage moved on. When a concurrent reader
		// already committed this session's load, its result serves this
		// caller too; only a session that ended mid-load is stale.
		if p.Stage == StageViewingState {
			return nil
		}
		return ErrStaleLoad
	}

	if loadErr != nil {
		c.reportFaultLocked(ctx, "loadLesson", loadErr)
		return fmt.Errorf("load lesson %q: %w", lessonID, loadErr)
	}

	p.Graph = exploration.NewStateGraph(exp)

	resumed := false
	// A checkpoint from another lesson version is not resumable; the
	// graph it references may have changed shape.
	if rc := p.ResumeCheckpoint; rc != nil && rc.LessonVersion == exp.Version {
		if state, err := p.Graph.State(rc.PendingStateName); err == nil {
			p.Deck.Reset(state)
			for _, rec := range rc.PendingAnswers {
				p.Deck.SubmitAnswer(rec)
			}
			c.policy.ResumeHintsForSavedState(len(rc.PendingAnswers), rc.HelpIndex, state)
			resumed = true
		} else {
			// The checkpoint references a state this lesson version no
			// longer has; fall back to a fresh start.
			c.reportFaultLocked(ctx, "resumeCheckpoint", err)
		}
	}
	if !resumed {
		initial := p.Graph.InitialState()
		p.Deck.Reset(initial)
		c.policy.StartWatchingForHintsInNewState(initial)
	}

	p.advanceStage(StageViewingState)

	// A freshly started session must be checkpoint-recoverable from its
	// very first state.
	c.triggerCheckpointSaveLocked()
	c.notifyLocked()
	return nil
}

// SubmitAnswer classifies rawAnswer against the frontier state's
// interaction, records it in the navigation log, and advances the graph
// when the outcome names a destination. Whatever happens, the stage is
// back at viewing-state when this returns.
func (c *Controller) SubmitAnswer(ctx context.Context, rawAnswer string) (exploration.AnswerOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireViewingStageLocked(ctx, "submitAnswer"); err != nil {
		return exploration.AnswerOutcome{}, err
	}

	p := c.progress
	p.advanceStage(StageSubmittingAnswer)
	c.notifyLocked()

	frontier := p.Deck.PendingTopState()

	var result exploration.AnswerOutcome
	var submitErr error
	func() {
		defer func() {
			// Stuck-stage prevention: the save trigger and the reset to
			// viewing-state run even when classification failed.
			if frontier.Interaction.ID != exploration.InteractionContinue {
				c.triggerCheckpointSaveLocked()
			}
			p.advanceStage(StageViewingState)
			c.notifyLocked()
		}()

		outcome, err := c.classifier.Classify(ctx, frontier.Interaction, rawAnswer)
		if err != nil {
			submitErr = fmt.Errorf("classify answer: %w", err)
			c.reportFaultLocked(ctx, "submitAnswer", err)
			return
		}

		result = p.Graph.ResolveOutcome(frontier, outcome)
		p.Deck.SubmitAnswer(AnswerRecord{
			Answer:   rawAnswer,
			Feedback: result.Feedback,
			Correct:  result.Correct,
		})

		if !result.Dest.SameState {
			next, err := p.Graph.State(result.Dest.StateName)
			if err != nil {
				submitErr = fmt.Errorf("resolve destination: %w", err)
				c.reportFaultLocked(ctx, "submitAnswer", err)
				return
			}
			if err := p.Deck.PushState(next, true); err != nil {
				submitErr = fmt.Errorf("advance to %q: %w", next.Name, err)
				c.reportFaultLocked(ctx, "submitAnswer", err)
				return
			}
			c.policy.FinishState(next)
			if next.IsTerminal() {
				c.deleteCheckpointLocked()
			}
		} else if !result.Correct {
			c.policy.HandleWrongAnswerSubmission(p.Deck.PendingAnswerCount())
		}

		dest := ""
		if !result.Dest.SameState {
			dest = result.Dest.StateName
		}
		c.logEvent(c.events != nil, func() error {
			return c.events.AppendAnswerEvent(ctx, AnswerEventData{
				SessionID:     p.SessionID,
				LessonID:      p.LessonID,
				StateName:     frontier.Name,
				Answer:        rawAnswer,
				Feedback:      result.Feedback,
				Correct:       result.Correct,
				DestStateName: dest,
			})
		})
	}()

	if submitErr != nil {
		return exploration.AnswerOutcome{}, submitErr
	}
	return result, nil
}

// MoveToPreviousState moves the review cursor one state back.
func (c *Controller) MoveToPreviousState(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireViewingStageLocked(ctx, "moveToPreviousState"); err != nil {
		return err
	}
	if err := c.progress.Deck.NavigateToPreviousState(); err != nil {
		c.reportFaultLocked(ctx, "moveToPreviousState", err)
		return err
	}
	c.policy.NavigateToPreviousState()
	c.notifyLocked()
	return nil
}

// MoveToNextState moves the review cursor one state forward. Arriving
// back at the frontier rebases the hint timer and, since the frontier is
// by invariant pending, triggers a checkpoint save.
func (c *Controller) MoveToNextState(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireViewingStageLocked(ctx, "moveToNextState"); err != nil {
		return err
	}
	if err := c.progress.Deck.NavigateToNextState(); err != nil {
		c.reportFaultLocked(ctx, "moveToNextState", err)
		return err
	}
	if c.progress.Deck.IsCurrentStateTopOfDeck() {
		c.policy.NavigateBackToLatestPendingState()
		c.triggerCheckpointSaveLocked()
	}
	c.notifyLocked()
	return nil
}

// RevealHint asks the policy to reveal the hint at index, then persists
// the updated help index via a checkpoint save.
func (c *Controller) RevealHint(ctx context.Context, index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireViewingStageLocked(ctx, "revealHint"); err != nil {
		return err
	}
	if err := c.policy.ViewHint(index); err != nil {
		c.reportFaultLocked(ctx, "revealHint", err)
		return fmt.Errorf("reveal hint %d: %w", index, err)
	}

	p := c.progress
	c.logEvent(c.events != nil, func() error {
		return c.events.AppendHintEvent(ctx, HintEventData{
			SessionID: p.SessionID,
			LessonID:  p.LessonID,
			StateName: p.Deck.PendingTopState().Name,
			HintIndex: index,
		})
	})
	c.triggerCheckpointSaveLocked()
	c.notifyLocked()
	return nil
}

// RevealSolution asks the policy to reveal the solution, then persists
// the updated help index via a checkpoint save.
func (c *Controller) RevealSolution(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireViewingStageLocked(ctx, "revealSolution"); err != nil {
		return err
	}
	if err := c.policy.ViewSolution(); err != nil {
		c.reportFaultLocked(ctx, "revealSolution", err)
		return fmt.Errorf("reveal solution: %w", err)
	}

	p := c.progress
	c.logEvent(c.events != nil, func() error {
		return c.events.AppendHintEvent(ctx, HintEventData{
			SessionID: p.SessionID,
			LessonID:  p.LessonID,
			StateName: p.Deck.PendingTopState().Name,
			Solution:  true,
		})
	})
	c.triggerCheckpointSaveLocked()
	c.notifyLocked()
	return nil
}

// Subscribe returns a change-notification channel plus a func that stops
// the subscription. The channel carries a token whenever the observable
// session state may have changed; the current value is always pulled via
// CurrentEphemeralState. A fresh subscriber gets an immediate token so it
// reads the latest value without waiting for the next mutation.
// Notifications coalesce; slow consumers miss intermediate signals, never
// the final one. Unsubscribing is idempotent.
func (c *Controller) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	c.mu.Lock()
	c.subscribers = append(c.subscribers, ch)
	c.mu.Unlock()
	ch <- struct{}{}

	unsubscribe := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subscribers {
			if s == ch {
				c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
				return
			}
		}
	}
	return ch, unsubscribe
}

// Flush waits for all in-flight checkpoint saves to reconcile. For
// shutdown and tests only; no foreground operation ever blocks on a
// save.
func (c *Controller) Flush() {
	c.saves.Wait()
}

// requireViewingStageLocked maps the current stage to the operation's
// precondition error, reporting a fault when the stage is wrong.
func (c *Controller) requireViewingStageLocked(ctx context.Context, op string) error {
	var err error
	switch {
	case c.progress == nil || c.progress.Stage == StageNotPlaying:
		err = ErrSessionNotStarted
	case c.progress.Stage == StageLoadingLesson:
		err = ErrLessonLoading
	case c.progress.Stage == StageSubmittingAnswer:
		err = ErrSubmissionInFlight
	default:
		return nil
	}
	c.reportFaultLocked(ctx, op, err)
	return err
}

// triggerCheckpointSaveLocked snapshots the frontier and dispatches the
// save as a background task. It returns before the save completes; the
// completion re-enters the lock and reconciles. Between dispatch and
// reconciliation the recorded status is stale by construction.
func (c *Controller) triggerCheckpointSaveLocked() {
	p := c.progress
	if p == nil || !p.SavePartialProgress || p.Graph == nil {
		return
	}
	// Never checkpoint a terminal frontier: a checkpoint must resume
	// into a pending interaction.
	if !p.Deck.TopIsPending() {
		return
	}

	exp := p.Graph.Exploration()
	cp := p.Deck.CreateCheckpoint(p.LessonID, exp.Version, exp.Title, c.now().UnixMilli(), c.policy.CurrentHelpIndex())

	sessionID := p.SessionID
	learnerID := p.LearnerID

	c.saves.Add(1)
	go func() {
		defer c.saves.Done()
		outcome, err := c.checkpoints.Save(context.Background(), learnerID, cp)

		c.mu.Lock()
		defer c.mu.Unlock()
		c.reconcileCheckpointLocked(sessionID, outcome, err)
	}()
}

// reconcileCheckpointLocked applies a completed save's outcome to the
// session context as it exists now, which may have moved on since the
// save was dispatched. A completion for a session that no longer exists
// is a no-op.
func (c *Controller) reconcileCheckpointLocked(sessionID string, outcome SaveOutcome, saveErr error) {
	p := c.progress
	if p == nil || p.SessionID != sessionID {
		return
	}

	status := CheckpointUnsaved
	if saveErr == nil {
		if outcome.SizeOK {
			status = CheckpointSavedUnderLimit
		} else {
			status = CheckpointSavedOverLimit
		}
	} else {
		c.reportFaultLocked(context.Background(), "checkpointSave", saveErr)
	}

	if status == p.CheckpointStatus {
		return
	}
	prev := p.CheckpointStatus
	p.CheckpointStatus = status

	c.logEvent(c.events != nil, func() error {
		return c.events.AppendCheckpointEvent(context.Background(), CheckpointEventData{
			SessionID: p.SessionID,
			LessonID:  p.LessonID,
			Status:    status.String(),
		})
	})

	if prev.Saved() != status.Saved() && c.tracker != nil {
		ts := c.now().UnixMilli()
		if status.Saved() {
			c.tracker.RecordInProgressSaved(p.LearnerID, p.TopicID, p.StoryID, p.LessonID, ts)
		} else {
			c.tracker.RecordInProgressNotSaved(p.LearnerID, p.TopicID, p.StoryID, p.LessonID, ts)
		}
	}
	c.notifyLocked()
}

// deleteCheckpointLocked removes the learner's checkpoint for the
// current lesson after it was finished. Best-effort background cleanup;
// a leftover checkpoint only costs storage.
func (c *Controller) deleteCheckpointLocked() {
	p := c.progress
	if p == nil || !p.SavePartialProgress {
		return
	}
	learnerID, lessonID := p.LearnerID, p.LessonID

	c.saves.Add(1)
	go func() {
		defer c.saves.Done()
		if err := c.checkpoints.Delete(context.Background(), learnerID, lessonID); err != nil {
			var notFound *ErrCheckpointNotFound
			if !errors.As(err, &notFound) {
				fmt.Fprintf(os.Stderr, "warning: delete finished-lesson checkpoint: %v\n", err)
			}
		}
	}()
}

func (c *Controller) reportFaultLocked(ctx context.Context, op string, faultErr error) {
	if c.events == nil {
		return
	}
	sessionID := ""
	if c.progress != nil {
		sessionID = c.progress.SessionID
	}
	c.logEvent(true, func() error {
		return c.events.AppendFaultEvent(ctx, FaultEventData{
			SessionID: sessionID,
			Operation: op,
			Message:   faultErr.Error(),
		})
	})
}

// logEvent runs append when enabled and warns on failure without ever
// failing the calling operation.
func (c *Controller) logEvent(enabled bool, append func() error) {
	if !enabled {
		return
	}
	if err := append(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record session event: %v\n", err)
	}
}

func (c *Controller) notifyLocked() {
	for _, ch := range c.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
