package progress

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/oppia/explord/internal/exploration"
)

// threeStateLesson builds A -> B -> End with a text interaction at each
// non-terminal state.
func threeStateLesson() *exploration.Exploration {
	return &exploration.Exploration{
		ID:            "lesson-1",
		Version:       1,
		Title:         "Test Lesson",
		InitStateName: "A",
		States: map[string]exploration.State{
			"A": {
				Name:    "A",
				Content: "first question",
				Interaction: exploration.Interaction{
					ID:             "TextInput",
					DefaultOutcome: exploration.Outcome{Dest: "A", Feedback: "Try again."},
					Hints:          []exploration.Hint{{Text: "hint one"}, {Text: "hint two"}},
					Solution:       &exploration.Solution{CorrectAnswer: "right"},
				},
			},
			"B": {
				Name:    "B",
				Content: "second question",
				Interaction: exploration.Interaction{
					ID:             "TextInput",
					DefaultOutcome: exploration.Outcome{Dest: "B", Feedback: "Not yet."},
				},
			},
			"End": {
				Name:    "End",
				Content: "done",
				Interaction: exploration.Interaction{
					ID: exploration.InteractionEndExploration,
				},
			},
		},
	}
}

type fakeRetriever struct {
	exp *exploration.Exploration
	err error
}

func (r *fakeRetriever) LoadExploration(ctx context.Context, lessonID string) (*exploration.Exploration, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.exp, nil
}

// fakeClassifier treats "right" as the correct answer routing A->B and
// B->End, and anything else as wrong staying put.
type fakeClassifier struct {
	err error
}

func (c *fakeClassifier) Classify(ctx context.Context, in exploration.Interaction, rawAnswer string) (exploration.Outcome, error) {
	if c.err != nil {
		return exploration.Outcome{}, c.err
	}
	if rawAnswer != "right" {
		return in.DefaultOutcome, nil
	}
	next := "B"
	if in.DefaultOutcome.Dest == "B" {
		next = "End"
	}
	return exploration.Outcome{Dest: next, Feedback: "Correct!", LabelledAsCorrect: true}, nil
}

type fakePolicy struct {
	help HelpIndex

	started  []string
	resumed  int
	wrong    []int
	finished []string
	backward int
	rebased  int

	viewHintErr     error
	viewSolutionErr error
	viewedHints     []int
	viewedSolution  bool
}

func (p *fakePolicy) StartWatchingForHintsInNewState(s exploration.State) {
	p.started = append(p.started, s.Name)
}
func (p *fakePolicy) ResumeHintsForSavedState(n int, h HelpIndex, s exploration.State) {
	p.resumed++
	p.help = h
}
func (p *fakePolicy) HandleWrongAnswerSubmission(n int) { p.wrong = append(p.wrong, n) }
func (p *fakePolicy) FinishState(s exploration.State)   { p.finished = append(p.finished, s.Name) }
func (p *fakePolicy) ViewHint(index int) error {
	if p.viewHintErr != nil {
		return p.viewHintErr
	}
	p.viewedHints = append(p.viewedHints, index)
	return nil
}
func (p *fakePolicy) ViewSolution() error {
	if p.viewSolutionErr != nil {
		return p.viewSolutionErr
	}
	p.viewedSolution = true
	return nil
}
func (p *fakePolicy) NavigateToPreviousState()          { p.backward++ }
func (p *fakePolicy) NavigateBackToLatestPendingState() { p.rebased++ }
func (p *fakePolicy) CurrentHelpIndex() HelpIndex       { return p.help }

type fakeStore struct {
	mu      sync.Mutex
	saves   []ExplorationCheckpoint
	deletes []string
	sizeOK  bool
	saveErr error

	// When set, Save blocks until the channel closes. Lets tests hold a
	// save in flight across session boundaries.
	gate chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{sizeOK: true}
}

func (s *fakeStore) setGate(gate chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate = gate
}

func (s *fakeStore) Save(ctx context.Context, learnerID string, cp ExplorationCheckpoint) (SaveOutcome, error) {
	s.mu.Lock()
	gate := s.gate
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return SaveOutcome{}, s.saveErr
	}
	s.saves = append(s.saves, cp)
	return SaveOutcome{SizeOK: s.sizeOK, TotalSize: 100}, nil
}

func (s *fakeStore) Retrieve(ctx context.Context, learnerID, lessonID string) (ExplorationCheckpoint, error) {
	return ExplorationCheckpoint{}, &ErrCheckpointNotFound{LearnerID: learnerID, LessonID: lessonID}
}

func (s *fakeStore) RetrieveOldest(ctx context.Context, learnerID string) (OldestCheckpoint, error) {
	return OldestCheckpoint{}, &ErrCheckpointNotFound{LearnerID: learnerID}
}

func (s *fakeStore) Delete(ctx context.Context, learnerID, lessonID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, lessonID)
	return nil
}

func (s *fakeStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saves)
}

func (s *fakeStore) lastSave() ExplorationCheckpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves[len(s.saves)-1]
}

type fakeTracker struct {
	mu       sync.Mutex
	saved    int
	notSaved int
}

func (t *fakeTracker) RecordInProgressSaved(learnerID, topicID, storyID, lessonID string, ts int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.saved++
}

func (t *fakeTracker) RecordInProgressNotSaved(learnerID, topicID, storyID, lessonID string, ts int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notSaved++
}

type testRig struct {
	ctrl    *Controller
	store   *fakeStore
	policy  *fakePolicy
	tracker *fakeTracker
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	store := newFakeStore()
	policy := &fakePolicy{}
	tracker := &fakeTracker{}
	ctrl, err := NewController(Config{
		Retriever:   &fakeRetriever{exp: threeStateLesson()},
		Classifier:  &fakeClassifier{},
		HintPolicy:  policy,
		Checkpoints: store,
		Tracker:     tracker,
		Now:         func() time.Time { return time.UnixMilli(1_000_000) },
	})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return &testRig{ctrl: ctrl, store: store, policy: policy, tracker: tracker}
}

func (r *testRig) begin(t *testing.T, resume *ExplorationCheckpoint) {
	t.Helper()
	err := r.ctrl.BeginSession(context.Background(), "learner-1", "topic-1", "story-1", "lesson-1", true, resume)
	if err != nil {
		t.Fatalf("begin session: %v", err)
	}
}

func TestNewControllerRequiresCollaborators(t *testing.T) {
	_, err := NewController(Config{})
	if err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestBeginSessionLoadsLazily(t *testing.T) {
	rig := newTestRig(t)
	rig.begin(t, nil)

	// Nothing is loaded until the first state read.
	if len(rig.policy.started) != 0 {
		t.Fatal("policy should not be engaged before the first read")
	}

	es, err := rig.ctrl.CurrentEphemeralState(context.Background())
	if err != nil {
		t.Fatalf("current state: %v", err)
	}
	pending, ok := es.(PendingState)
	if !ok {
		t.Fatalf("state = %T, want PendingState", es)
	}
	if pending.State.Name != "A" {
		t.Errorf("state = %q, want A", pending.State.Name)
	}
	if len(rig.policy.started) != 1 || rig.policy.started[0] != "A" {
		t.Errorf("policy started = %v, want [A]", rig.policy.started)
	}

	// The initial view dispatches a checkpoint save.
	rig.ctrl.Flush()
	if got := rig.store.saveCount(); got != 1 {
		t.Errorf("saves = %d, want 1", got)
	}
	if got := rig.store.lastSave().PendingStateName; got != "A" {
		t.Errorf("saved state = %q, want A", got)
	}
}

func TestBeginSessionRejectsConcurrentSession(t *testing.T) {
	rig := newTestRig(t)
	rig.begin(t, nil)

	err := rig.ctrl.BeginSession(context.Background(), "learner-1", "topic-1", "story-1", "lesson-1", true, nil)
	if !errors.Is(err, ErrSessionActive) {
		t.Fatalf("err = %v, want ErrSessionActive", err)
	}

	// Ending the first session frees the slot.
	if err := rig.ctrl.EndSession(context.Background()); err != nil {
		t.Fatal(err)
	}
	rig.begin(t, nil)
}

func TestOperationsRequireSession(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()

	if _, err := rig.ctrl.CurrentEphemeralState(ctx); !errors.Is(err, ErrSessionNotStarted) {
		t.Errorf("current state err = %v", err)
	}
	if _, err := rig.ctrl.SubmitAnswer(ctx, "x"); !errors.Is(err, ErrSessionNotStarted) {
		t.Errorf("submit err = %v", err)
	}
	if err := rig.ctrl.MoveToPreviousState(ctx); !errors.Is(err, ErrSessionNotStarted) {
		t.Errorf("previous err = %v", err)
	}
	if err := rig.ctrl.EndSession(ctx); !errors.Is(err, ErrSessionNotStarted) {
		t.Errorf("end err = %v", err)
	}
}

// gatedRetriever blocks every load until the gate closes and signals each
// entry, so tests can hold several loads in flight at once.
type gatedRetriever struct {
	exp     *exploration.Exploration
	entered chan struct{}
	gate    chan struct{}
}

func (r *gatedRetriever) LoadExploration(ctx context.Context, lessonID string) (*exploration.Exploration, error) {
	r.entered <- struct{}{}
	<-r.gate
	return r.exp, nil
}

func TestConcurrentFirstReadsShareOneLoad(t *testing.T) {
	retr := &gatedRetriever{
		exp:     threeStateLesson(),
		entered: make(chan struct{}, 2),
		gate:    make(chan struct{}),
	}
	store := newFakeStore()
	ctrl, err := NewController(Config{
		Retriever:   retr,
		Classifier:  &fakeClassifier{},
		HintPolicy:  &fakePolicy{},
		Checkpoints: store,
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := ctrl.BeginSession(ctx, "learner-1", "", "", "lesson-1", true, nil); err != nil {
		t.Fatal(err)
	}

	type result struct {
		es  EphemeralState
		err error
	}
	results := make(chan result, 2)
	read := func() {
		es, err := ctrl.CurrentEphemeralState(ctx)
		results <- result{es, err}
	}

	// Start the readers one at a time so both are blocked inside the
	// retriever before the gate opens.
	go read()
	<-retr.entered
	go read()
	<-retr.entered
	close(retr.gate)

	// Both readers observe the same committed load; the one whose result
	// is discarded still succeeds.
	for i := 0; i < 2; i++ {
		res := <-results
		if res.err != nil {
			t.Fatalf("reader %d: %v", i, res.err)
		}
		pending, ok := res.es.(PendingState)
		if !ok {
			t.Fatalf("reader %d state = %T, want PendingState", i, res.es)
		}
		if pending.State.Name != "A" {
			t.Errorf("reader %d state = %q, want A", i, pending.State.Name)
		}
	}
}

func TestSubmitWrongAnswer(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	rig.begin(t, nil)
	if _, err := rig.ctrl.CurrentEphemeralState(ctx); err != nil {
		t.Fatal(err)
	}
	// Let the initial-view save settle so save ordering is deterministic.
	rig.ctrl.Flush()

	out, err := rig.ctrl.SubmitAnswer(ctx, "wrong")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Correct || !out.Dest.SameState {
		t.Errorf("outcome = %+v, want wrong same-state", out)
	}
	if out.Feedback != "Try again." {
		t.Errorf("feedback = %q", out.Feedback)
	}

	es, err := rig.ctrl.CurrentEphemeralState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	pending := es.(PendingState)
	if len(pending.WrongAnswers) != 1 {
		t.Errorf("wrong answers = %d, want 1", len(pending.WrongAnswers))
	}
	if got := rig.policy.wrong; len(got) != 1 || got[0] != 1 {
		t.Errorf("policy wrong-answer calls = %v, want [1]", got)
	}

	// Initial view plus the submission each dispatched a save.
	rig.ctrl.Flush()
	if got := rig.store.saveCount(); got != 2 {
		t.Errorf("saves = %d, want 2", got)
	}
	if got := len(rig.store.lastSave().PendingAnswers); got != 1 {
		t.Errorf("saved pending answers = %d, want 1", got)
	}
}

func TestSubmitCorrectAnswerAdvances(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	rig.begin(t, nil)
	if _, err := rig.ctrl.CurrentEphemeralState(ctx); err != nil {
		t.Fatal(err)
	}
	rig.ctrl.Flush()

	out, err := rig.ctrl.SubmitAnswer(ctx, "right")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Correct || out.Dest.StateName != "B" {
		t.Fatalf("outcome = %+v, want correct -> B", out)
	}

	// The learner is left viewing the completed state, not auto-advanced.
	es, err := rig.ctrl.CurrentEphemeralState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	completed, ok := es.(CompletedState)
	if !ok {
		t.Fatalf("state = %T, want CompletedState", es)
	}
	if completed.State.Name != "A" {
		t.Errorf("state = %q, want A", completed.State.Name)
	}

	if err := rig.ctrl.MoveToNextState(ctx); err != nil {
		t.Fatal(err)
	}
	es, err = rig.ctrl.CurrentEphemeralState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	pending, ok := es.(PendingState)
	if !ok {
		t.Fatalf("state = %T, want PendingState", es)
	}
	if pending.State.Name != "B" {
		t.Errorf("state = %q, want B", pending.State.Name)
	}
	if rig.policy.rebased != 1 {
		t.Errorf("rebase calls = %d, want 1", rig.policy.rebased)
	}
	if got := rig.policy.finished; len(got) != 1 || got[0] != "B" {
		t.Errorf("finished = %v, want [B]", got)
	}

	// Saves: initial view, the submission, and arrival at the new frontier.
	rig.ctrl.Flush()
	if got := rig.store.saveCount(); got != 3 {
		t.Errorf("saves = %d, want 3", got)
	}
	if got := rig.store.lastSave().PendingStateName; got != "B" {
		t.Errorf("saved state = %q, want B", got)
	}
}

func TestFinishLessonDeletesCheckpoint(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	rig.begin(t, nil)
	if _, err := rig.ctrl.CurrentEphemeralState(ctx); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if _, err := rig.ctrl.SubmitAnswer(ctx, "right"); err != nil {
			t.Fatal(err)
		}
		if err := rig.ctrl.MoveToNextState(ctx); err != nil {
			t.Fatal(err)
		}
	}

	es, err := rig.ctrl.CurrentEphemeralState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := es.(TerminalState); !ok {
		t.Fatalf("state = %T, want TerminalState", es)
	}

	rig.ctrl.Flush()
	if got := rig.store.deletes; len(got) != 1 || got[0] != "lesson-1" {
		t.Errorf("deletes = %v, want [lesson-1]", got)
	}
}

func TestSubmitRejectedOutsideViewingStage(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	rig.begin(t, nil)

	// Still loading: the lesson has never been read.
	if _, err := rig.ctrl.SubmitAnswer(ctx, "x"); !errors.Is(err, ErrLessonLoading) {
		t.Fatalf("err = %v, want ErrLessonLoading", err)
	}
}

func TestSubmitClassifierErrorKeepsViewingStage(t *testing.T) {
	store := newFakeStore()
	policy := &fakePolicy{}
	ctrl, err := NewController(Config{
		Retriever:   &fakeRetriever{exp: threeStateLesson()},
		Classifier:  &fakeClassifier{err: errors.New("cannot parse")},
		HintPolicy:  policy,
		Checkpoints: store,
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := ctrl.BeginSession(ctx, "learner-1", "", "", "lesson-1", true, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := ctrl.CurrentEphemeralState(ctx); err != nil {
		t.Fatal(err)
	}

	if _, err := ctrl.SubmitAnswer(ctx, "???"); err == nil {
		t.Fatal("expected classification error")
	}

	// The stage must have been restored: another submission is accepted
	// (and fails the same way), not rejected as in-flight.
	if _, err := ctrl.SubmitAnswer(ctx, "???"); errors.Is(err, ErrSubmissionInFlight) {
		t.Fatal("stage stuck in submitting-answer after a failed submission")
	}
}

func TestNavigationBounds(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	rig.begin(t, nil)
	if _, err := rig.ctrl.CurrentEphemeralState(ctx); err != nil {
		t.Fatal(err)
	}

	if err := rig.ctrl.MoveToPreviousState(ctx); !errors.Is(err, ErrAtBeginning) {
		t.Errorf("err = %v, want ErrAtBeginning", err)
	}
	if err := rig.ctrl.MoveToNextState(ctx); !errors.Is(err, ErrAtFrontier) {
		t.Errorf("err = %v, want ErrAtFrontier", err)
	}
}

func TestResumeFromCheckpoint(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()

	resume := &ExplorationCheckpoint{
		LessonID:         "lesson-1",
		LessonVersion:    1,
		PendingStateName: "B",
		PendingAnswers: []AnswerRecord{
			{Answer: "5", Feedback: "Not yet."},
		},
		HelpIndex: HelpIndex{Kind: HelpAvailableHint, HintIndex: 0},
	}
	rig.begin(t, resume)

	es, err := rig.ctrl.CurrentEphemeralState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	pending, ok := es.(PendingState)
	if !ok {
		t.Fatalf("state = %T, want PendingState", es)
	}
	if pending.State.Name != "B" {
		t.Errorf("state = %q, want B", pending.State.Name)
	}
	if len(pending.WrongAnswers) != 1 {
		t.Errorf("wrong answers = %d, want 1", len(pending.WrongAnswers))
	}
	if rig.policy.resumed != 1 {
		t.Errorf("resume calls = %d, want 1", rig.policy.resumed)
	}
	if len(rig.policy.started) != 0 {
		t.Errorf("fresh-state calls = %v, want none on resume", rig.policy.started)
	}
}

func TestResumeIgnoredAcrossLessonVersions(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()

	resume := &ExplorationCheckpoint{
		LessonID:         "lesson-1",
		LessonVersion:    99,
		PendingStateName: "B",
	}
	rig.begin(t, resume)

	es, err := rig.ctrl.CurrentEphemeralState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got := es.(PendingState).State.Name; got != "A" {
		t.Errorf("state = %q, want fresh start at A for a stale version", got)
	}
}

func TestResumeFallsBackWhenStateGone(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()

	resume := &ExplorationCheckpoint{
		LessonID:         "lesson-1",
		LessonVersion:    1,
		PendingStateName: "RemovedInThisVersion",
	}
	rig.begin(t, resume)

	es, err := rig.ctrl.CurrentEphemeralState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	pending, ok := es.(PendingState)
	if !ok {
		t.Fatalf("state = %T, want PendingState", es)
	}
	if pending.State.Name != "A" {
		t.Errorf("state = %q, want fresh start at A", pending.State.Name)
	}
	if len(rig.policy.started) != 1 {
		t.Errorf("fresh-state calls = %v, want one", rig.policy.started)
	}
}

func TestCheckpointStatusReconciliation(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	rig.begin(t, nil)

	es, err := rig.ctrl.CurrentEphemeralState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// The save is dispatched but not yet reconciled: the status observed
	// in the same critical section is still unsaved.
	if got := es.(PendingState).CheckpointStatus; got != CheckpointUnsaved {
		t.Errorf("status before reconcile = %v, want unsaved", got)
	}

	rig.ctrl.Flush()
	es, err = rig.ctrl.CurrentEphemeralState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got := es.(PendingState).CheckpointStatus; got != CheckpointSavedUnderLimit {
		t.Errorf("status after reconcile = %v, want saved-under-limit", got)
	}

	rig.tracker.mu.Lock()
	saved := rig.tracker.saved
	rig.tracker.mu.Unlock()
	if saved != 1 {
		t.Errorf("tracker saved calls = %d, want 1 (boundary crossing only)", saved)
	}
}

func TestCheckpointStatusOverLimit(t *testing.T) {
	rig := newTestRig(t)
	rig.store.sizeOK = false
	ctx := context.Background()
	rig.begin(t, nil)

	if _, err := rig.ctrl.CurrentEphemeralState(ctx); err != nil {
		t.Fatal(err)
	}
	rig.ctrl.Flush()

	es, err := rig.ctrl.CurrentEphemeralState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got := es.(PendingState).CheckpointStatus; got != CheckpointSavedOverLimit {
		t.Errorf("status = %v, want saved-over-limit", got)
	}

	// Over-limit still counts as saved for the tracker.
	rig.tracker.mu.Lock()
	saved := rig.tracker.saved
	rig.tracker.mu.Unlock()
	if saved != 1 {
		t.Errorf("tracker saved calls = %d, want 1", saved)
	}
}

func TestStaleSaveCompletionIgnored(t *testing.T) {
	rig := newTestRig(t)
	gate := make(chan struct{})
	rig.store.setGate(gate)
	ctx := context.Background()
	rig.begin(t, nil)

	// Dispatch a save that blocks in the store.
	if _, err := rig.ctrl.CurrentEphemeralState(ctx); err != nil {
		t.Fatal(err)
	}

	// Replace the session while that save is in flight.
	if err := rig.ctrl.EndSession(ctx); err != nil {
		t.Fatal(err)
	}
	rig.store.setGate(nil)
	rig.begin(t, nil)

	// Saves for the new session run unblocked.
	if _, err := rig.ctrl.CurrentEphemeralState(ctx); err != nil {
		t.Fatal(err)
	}

	// Release the stale save and let everything reconcile.
	close(gate)
	rig.ctrl.Flush()
	es, err := rig.ctrl.CurrentEphemeralState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got := es.(PendingState).CheckpointStatus; got != CheckpointSavedUnderLimit {
		t.Errorf("status = %v, want the new session's own save applied", got)
	}
}

func TestSavesDisabledWithoutPartialProgress(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	err := rig.ctrl.BeginSession(ctx, "learner-1", "", "", "lesson-1", false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rig.ctrl.CurrentEphemeralState(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := rig.ctrl.SubmitAnswer(ctx, "wrong"); err != nil {
		t.Fatal(err)
	}

	rig.ctrl.Flush()
	if got := rig.store.saveCount(); got != 0 {
		t.Errorf("saves = %d, want 0 when partial progress is off", got)
	}
}

func TestRevealHintAndSolution(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()
	rig.begin(t, nil)
	if _, err := rig.ctrl.CurrentEphemeralState(ctx); err != nil {
		t.Fatal(err)
	}

	if err := rig.ctrl.RevealHint(ctx, 0); err != nil {
		t.Fatalf("reveal hint: %v", err)
	}
	if got := rig.policy.viewedHints; len(got) != 1 || got[0] != 0 {
		t.Errorf("viewed hints = %v, want [0]", got)
	}

	if err := rig.ctrl.RevealSolution(ctx); err != nil {
		t.Fatalf("reveal solution: %v", err)
	}
	if !rig.policy.viewedSolution {
		t.Error("solution was not revealed")
	}

	// Initial view plus each reveal dispatched a save.
	rig.ctrl.Flush()
	if got := rig.store.saveCount(); got != 3 {
		t.Errorf("saves = %d, want 3", got)
	}
}

func TestRevealHintPolicyRefusal(t *testing.T) {
	rig := newTestRig(t)
	rig.policy.viewHintErr = errors.New("hint not available yet")
	ctx := context.Background()
	rig.begin(t, nil)
	if _, err := rig.ctrl.CurrentEphemeralState(ctx); err != nil {
		t.Fatal(err)
	}

	if err := rig.ctrl.RevealHint(ctx, 0); err == nil {
		t.Fatal("expected policy refusal to surface")
	}
}

func TestSubscribeDeliversImmediateToken(t *testing.T) {
	rig := newTestRig(t)
	ch, unsubscribe := rig.ctrl.Subscribe()
	defer unsubscribe()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no immediate token on subscribe")
	}

	rig.begin(t, nil)
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no token after session change")
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	rig := newTestRig(t)
	ch, unsubscribe := rig.ctrl.Subscribe()
	<-ch // drain the immediate token

	unsubscribe()
	unsubscribe() // idempotent

	rig.begin(t, nil)
	select {
	case <-ch:
		t.Fatal("token delivered after unsubscribe")
	default:
	}

	// A concurrent subscription is unaffected.
	other, cancel := rig.ctrl.Subscribe()
	defer cancel()
	<-other
	if err := rig.ctrl.EndSession(context.Background()); err != nil {
		t.Fatal(err)
	}
	select {
	case <-other:
	case <-time.After(time.Second):
		t.Fatal("live subscriber missed a notification")
	}
}
