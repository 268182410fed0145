package store

import (
	"context"
	"testing"

	"github.com/oppia/explord/internal/checkpoint"
	"github.com/oppia/explord/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is skipped here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCheckpointRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.CheckpointRepo()
	ctx := context.Background()

	// Absent row reads as nil, not an error.
	rec, err := repo.Get(ctx, "learner-1", "lesson-1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record when none exist")
	}

	want := &checkpoint.Record{
		LearnerID:     "learner-1",
		LessonID:      "lesson-1",
		LessonTitle:   "Ratios",
		LessonVersion: 3,
		Payload:       []byte(`{"pending_state_name":"Intro"}`),
		FirstSavedMs:  1000,
		LastPlayedMs:  2000,
	}
	if err := repo.Put(ctx, want); err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err = repo.Get(ctx, "learner-1", "lesson-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected non-nil record")
	}
	if rec.LessonTitle != "Ratios" || rec.LessonVersion != 3 {
		t.Errorf("record = %+v, want title Ratios version 3", rec)
	}
	if string(rec.Payload) != string(want.Payload) {
		t.Errorf("payload = %s, want %s", rec.Payload, want.Payload)
	}
}

func TestCheckpointRepoPutReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.CheckpointRepo()
	ctx := context.Background()

	first := &checkpoint.Record{
		LearnerID: "learner-1", LessonID: "lesson-1",
		LessonTitle: "Ratios", LessonVersion: 1,
		Payload: []byte("one"), FirstSavedMs: 100, LastPlayedMs: 100,
	}
	if err := repo.Put(ctx, first); err != nil {
		t.Fatalf("put first: %v", err)
	}

	second := &checkpoint.Record{
		LearnerID: "learner-1", LessonID: "lesson-1",
		LessonTitle: "Ratios", LessonVersion: 1,
		Payload: []byte("two"), FirstSavedMs: 100, LastPlayedMs: 200,
	}
	if err := repo.Put(ctx, second); err != nil {
		t.Fatalf("put second: %v", err)
	}

	all, err := repo.All(ctx, "learner-1")
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len(all) = %d, want 1 (replace, not append)", len(all))
	}
	if string(all[0].Payload) != "two" {
		t.Errorf("payload = %s, want two", all[0].Payload)
	}
	if all[0].LastPlayedMs != 200 {
		t.Errorf("last played = %d, want 200", all[0].LastPlayedMs)
	}
}

func TestCheckpointRepoDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.CheckpointRepo()
	ctx := context.Background()

	rec := &checkpoint.Record{
		LearnerID: "learner-1", LessonID: "lesson-1",
		LessonTitle: "Ratios", LessonVersion: 1,
		Payload: []byte("x"), FirstSavedMs: 1, LastPlayedMs: 1,
	}
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Delete(ctx, "learner-1", "lesson-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := repo.Get(ctx, "learner-1", "lesson-1")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil record after delete")
	}

	// Deleting a missing row is not an error.
	if err := repo.Delete(ctx, "learner-1", "lesson-1"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestEventRepoAppends(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, progress.SessionEventData{
		SessionID: "sess-1", LearnerID: "learner-1", LessonID: "lesson-1", Action: "begin",
	}); err != nil {
		t.Fatalf("append session event: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, progress.AnswerEventData{
		SessionID: "sess-1", LessonID: "lesson-1", StateName: "Intro",
		Answer: "4", Feedback: "Correct!", Correct: true, DestStateName: "Second",
	}); err != nil {
		t.Fatalf("append answer event: %v", err)
	}
	if err := repo.AppendHintEvent(ctx, progress.HintEventData{
		SessionID: "sess-1", LessonID: "lesson-1", StateName: "Intro", HintIndex: 0,
	}); err != nil {
		t.Fatalf("append hint event: %v", err)
	}
	if err := repo.AppendCheckpointEvent(ctx, progress.CheckpointEventData{
		SessionID: "sess-1", LessonID: "lesson-1", Status: "saved_under_limit",
	}); err != nil {
		t.Fatalf("append checkpoint event: %v", err)
	}
	if err := repo.AppendFaultEvent(ctx, progress.FaultEventData{
		Operation: "submitAnswer", Message: "session not started",
	}); err != nil {
		t.Fatalf("append fault event: %v", err)
	}

	n, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count session events: %v", err)
	}
	if n != 1 {
		t.Errorf("session events = %d, want 1", n)
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}
	ctx := context.Background()

	var prev int64 = -1
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}
