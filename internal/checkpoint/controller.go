// Package checkpoint persists the per-learner lesson-id -> checkpoint
// map with a serialized-size ceiling. The ceiling is advisory: a save
// that pushes a learner's checkpoint database over it still succeeds and
// is reported through the save outcome, never rejected.
package checkpoint

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oppia/explord/internal/progress"
)

// DefaultSizeLimitBytes is the ceiling on a learner's serialized
// checkpoint database.
const DefaultSizeLimitBytes = 2 * 1024 * 1024

// Controller implements progress.CheckpointStore over a Repo.
type Controller struct {
	repo      Repo
	sizeLimit int64
}

// Option configures a Controller.
type Option func(*Controller)

// WithSizeLimit overrides the serialized-size ceiling.
func WithSizeLimit(limit int64) Option {
	return func(c *Controller) { c.sizeLimit = limit }
}

// NewController builds a checkpoint controller over repo.
func NewController(repo Repo, opts ...Option) *Controller {
	c := &Controller{
		repo:      repo,
		sizeLimit: DefaultSizeLimitBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Save persists cp for the learner, replacing any prior checkpoint for
// the same lesson. The first-checkpoint timestamp is carried forward
// from the prior row when one exists, so re-saving without intervening
// progress keeps it stable. The returned outcome reports whether the
// learner's whole serialized checkpoint database still fits the ceiling.
func (c *Controller) Save(ctx context.Context, learnerID string, cp progress.ExplorationCheckpoint) (progress.SaveOutcome, error) {
	prior, err := c.repo.Get(ctx, learnerID, cp.LessonID)
	if err != nil {
		return progress.SaveOutcome{}, fmt.Errorf("load prior checkpoint: %w", err)
	}

	if prior != nil {
		cp.FirstCheckpointMs = prior.FirstSavedMs
	} else {
		cp.FirstCheckpointMs = cp.LastPlayedMs
	}

	payload, err := json.Marshal(cp)
	if err != nil {
		return progress.SaveOutcome{}, fmt.Errorf("serialize checkpoint: %w", err)
	}

	rec := &Record{
		LearnerID:     learnerID,
		LessonID:      cp.LessonID,
		LessonTitle:   cp.LessonTitle,
		LessonVersion: cp.LessonVersion,
		Payload:       payload,
		FirstSavedMs:  cp.FirstCheckpointMs,
		LastPlayedMs:  cp.LastPlayedMs,
	}
	if err := c.repo.Put(ctx, rec); err != nil {
		return progress.SaveOutcome{}, fmt.Errorf("save checkpoint: %w", err)
	}

	total, err := c.databaseSize(ctx, learnerID)
	if err != nil {
		return progress.SaveOutcome{}, fmt.Errorf("measure checkpoint database: %w", err)
	}
	return progress.SaveOutcome{
		SizeOK:    total <= c.sizeLimit,
		TotalSize: total,
	}, nil
}

// Retrieve returns the learner's checkpoint for the lesson.
func (c *Controller) Retrieve(ctx context.Context, learnerID, lessonID string) (progress.ExplorationCheckpoint, error) {
	rec, err := c.repo.Get(ctx, learnerID, lessonID)
	if err != nil {
		return progress.ExplorationCheckpoint{}, fmt.Errorf("load checkpoint: %w", err)
	}
	if rec == nil {
		return progress.ExplorationCheckpoint{}, &progress.ErrCheckpointNotFound{
			LearnerID: learnerID,
			LessonID:  lessonID,
		}
	}

	var cp progress.ExplorationCheckpoint
	if err := json.Unmarshal(rec.Payload, &cp); err != nil {
		return progress.ExplorationCheckpoint{}, fmt.Errorf("deserialize checkpoint: %w", err)
	}
	return cp, nil
}

// RetrieveOldest returns the saved session the learner started earliest,
// by first-checkpoint timestamp. Cleanup flows offer this one first.
func (c *Controller) RetrieveOldest(ctx context.Context, learnerID string) (progress.OldestCheckpoint, error) {
	recs, err := c.repo.All(ctx, learnerID)
	if err != nil {
		return progress.OldestCheckpoint{}, fmt.Errorf("list checkpoints: %w", err)
	}
	if len(recs) == 0 {
		return progress.OldestCheckpoint{}, &progress.ErrCheckpointNotFound{LearnerID: learnerID}
	}

	oldest := recs[0]
	for _, r := range recs[1:] {
		if r.FirstSavedMs < oldest.FirstSavedMs {
			oldest = r
		}
	}
	return progress.OldestCheckpoint{
		LessonID:      oldest.LessonID,
		LessonTitle:   oldest.LessonTitle,
		LessonVersion: oldest.LessonVersion,
	}, nil
}

// Delete removes the learner's checkpoint for the lesson.
func (c *Controller) Delete(ctx context.Context, learnerID, lessonID string) error {
	if err := c.repo.Delete(ctx, learnerID, lessonID); err != nil {
		return fmt.Errorf("delete checkpoint: %w", err)
	}
	return nil
}

// List returns every checkpoint row for a learner, for display.
func (c *Controller) List(ctx context.Context, learnerID string) ([]*Record, error) {
	recs, err := c.repo.All(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list checkpoints: %w", err)
	}
	return recs, nil
}

// databaseSize sums the serialized size of the learner's checkpoints.
func (c *Controller) databaseSize(ctx context.Context, learnerID string) (int64, error) {
	recs, err := c.repo.All(ctx, learnerID)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, r := range recs {
		total += int64(len(r.Payload))
	}
	return total, nil
}
