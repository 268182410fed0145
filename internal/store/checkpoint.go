package store

import (
	"context"
	"fmt"

	"github.com/oppia/explord/ent"
	entcheckpoint "github.com/oppia/explord/ent/checkpoint"
	"github.com/oppia/explord/internal/checkpoint"
)

// checkpointRepo implements checkpoint.Repo over the ent client.
type checkpointRepo struct {
	client *ent.Client
}

func (r *checkpointRepo) Get(ctx context.Context, learnerID, lessonID string) (*checkpoint.Record, error) {
	row, err := r.client.Checkpoint.Query().
		Where(
			entcheckpoint.LearnerID(learnerID),
			entcheckpoint.LessonID(lessonID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query checkpoint: %w", err)
	}
	return recordFromRow(row), nil
}

func (r *checkpointRepo) Put(ctx context.Context, rec *checkpoint.Record) error {
	existing, err := r.client.Checkpoint.Query().
		Where(
			entcheckpoint.LearnerID(rec.LearnerID),
			entcheckpoint.LessonID(rec.LessonID),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetLessonTitle(rec.LessonTitle).
			SetLessonVersion(rec.LessonVersion).
			SetPayload(rec.Payload).
			SetFirstSavedMs(rec.FirstSavedMs).
			SetLastPlayedMs(rec.LastPlayedMs).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update checkpoint: %w", err)
		}
		return nil

	case ent.IsNotFound(err):
		_, err = r.client.Checkpoint.Create().
			SetLearnerID(rec.LearnerID).
			SetLessonID(rec.LessonID).
			SetLessonTitle(rec.LessonTitle).
			SetLessonVersion(rec.LessonVersion).
			SetPayload(rec.Payload).
			SetFirstSavedMs(rec.FirstSavedMs).
			SetLastPlayedMs(rec.LastPlayedMs).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create checkpoint: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("query checkpoint: %w", err)
	}
}

func (r *checkpointRepo) All(ctx context.Context, learnerID string) ([]*checkpoint.Record, error) {
	rows, err := r.client.Checkpoint.Query().
		Where(entcheckpoint.LearnerID(learnerID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query checkpoints: %w", err)
	}

	recs := make([]*checkpoint.Record, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, recordFromRow(row))
	}
	return recs, nil
}

func (r *checkpointRepo) Delete(ctx context.Context, learnerID, lessonID string) error {
	_, err := r.client.Checkpoint.Delete().
		Where(
			entcheckpoint.LearnerID(learnerID),
			entcheckpoint.LessonID(lessonID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete checkpoint: %w", err)
	}
	return nil
}

func recordFromRow(row *ent.Checkpoint) *checkpoint.Record {
	return &checkpoint.Record{
		LearnerID:     row.LearnerID,
		LessonID:      row.LessonID,
		LessonTitle:   row.LessonTitle,
		LessonVersion: row.LessonVersion,
		Payload:       row.Payload,
		FirstSavedMs:  row.FirstSavedMs,
		LastPlayedMs:  row.LastPlayedMs,
	}
}
