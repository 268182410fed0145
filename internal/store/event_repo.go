package store

import (
	"context"
	"fmt"

	"github.com/oppia/explord/ent"
	"github.com/oppia/explord/internal/progress"
)

// eventRepo implements progress.EventRecorder over the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data progress.SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetLessonID(data.LessonID).
		SetAction(data.Action).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data progress.AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetStateName(data.StateName).
		SetAnswer(data.Answer).
		SetCorrect(data.Correct)
	if data.Feedback != "" {
		builder = builder.SetFeedback(data.Feedback)
	}
	if data.DestStateName != "" {
		builder = builder.SetDestStateName(data.DestStateName)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendHintEvent(ctx context.Context, data progress.HintEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.HintEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetStateName(data.StateName).
		SetHintIndex(data.HintIndex).
		SetSolution(data.Solution).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendCheckpointEvent(ctx context.Context, data progress.CheckpointEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CheckpointEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetStatus(data.Status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save checkpoint event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendFaultEvent(ctx context.Context, data progress.FaultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.FaultEvent.Create().
		SetSequence(seqNum).
		SetOperation(data.Operation).
		SetMessage(data.Message)
	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save fault event: %w", err)
	}
	return nil
}
