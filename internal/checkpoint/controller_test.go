package checkpoint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oppia/explord/internal/progress"
)

// memRepo is an in-memory Repo for exercising the controller without a
// database.
type memRepo struct {
	rows map[string]map[string]*Record
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[string]map[string]*Record)}
}

func (m *memRepo) Get(ctx context.Context, learnerID, lessonID string) (*Record, error) {
	rec, ok := m.rows[learnerID][lessonID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memRepo) Put(ctx context.Context, rec *Record) error {
	if m.rows[rec.LearnerID] == nil {
		m.rows[rec.LearnerID] = make(map[string]*Record)
	}
	cp := *rec
	m.rows[rec.LearnerID][rec.LessonID] = &cp
	return nil
}

func (m *memRepo) All(ctx context.Context, learnerID string) ([]*Record, error) {
	var out []*Record
	for _, rec := range m.rows[learnerID] {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memRepo) Delete(ctx context.Context, learnerID, lessonID string) error {
	delete(m.rows[learnerID], lessonID)
	return nil
}

func sampleCheckpoint(lessonID string, lastPlayedMs int64) progress.ExplorationCheckpoint {
	return progress.ExplorationCheckpoint{
		LessonID:         lessonID,
		LessonVersion:    1,
		LessonTitle:      "Lesson " + lessonID,
		LastPlayedMs:     lastPlayedMs,
		PendingStateName: "Intro",
		HelpIndex:        progress.HelpIndex{Kind: progress.HelpNone},
	}
}

func TestSaveAndRetrieve(t *testing.T) {
	c := NewController(newMemRepo())
	ctx := context.Background()

	out, err := c.Save(ctx, "learner-1", sampleCheckpoint("lesson-1", 1000))
	require.NoError(t, err)
	assert.True(t, out.SizeOK)
	assert.Greater(t, out.TotalSize, int64(0))

	cp, err := c.Retrieve(ctx, "learner-1", "lesson-1")
	require.NoError(t, err)
	assert.Equal(t, "lesson-1", cp.LessonID)
	assert.Equal(t, "Intro", cp.PendingStateName)
	assert.Equal(t, int64(1000), cp.LastPlayedMs)
}

func TestRetrieveNotFound(t *testing.T) {
	c := NewController(newMemRepo())

	_, err := c.Retrieve(context.Background(), "learner-1", "lesson-1")
	var notFound *progress.ErrCheckpointNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "lesson-1", notFound.LessonID)
}

func TestFirstCheckpointTimestampIsStable(t *testing.T) {
	c := NewController(newMemRepo())
	ctx := context.Background()

	_, err := c.Save(ctx, "learner-1", sampleCheckpoint("lesson-1", 1000))
	require.NoError(t, err)

	// A later save replaces the payload but keeps the original
	// first-checkpoint timestamp.
	_, err = c.Save(ctx, "learner-1", sampleCheckpoint("lesson-1", 5000))
	require.NoError(t, err)

	cp, err := c.Retrieve(ctx, "learner-1", "lesson-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), cp.FirstCheckpointMs)
	assert.Equal(t, int64(5000), cp.LastPlayedMs)
}

func TestSizeCeilingIsAdvisory(t *testing.T) {
	repo := newMemRepo()
	c := NewController(repo, WithSizeLimit(220))
	ctx := context.Background()

	out, err := c.Save(ctx, "learner-1", sampleCheckpoint("lesson-1", 1000))
	require.NoError(t, err)
	require.True(t, out.SizeOK, "one checkpoint should fit the test limit")

	// The second save pushes the learner's total over the ceiling. It is
	// still persisted, only reported as over limit.
	out, err = c.Save(ctx, "learner-1", sampleCheckpoint("lesson-2", 2000))
	require.NoError(t, err)
	assert.False(t, out.SizeOK)
	assert.Greater(t, out.TotalSize, int64(220))

	cp, err := c.Retrieve(ctx, "learner-1", "lesson-2")
	require.NoError(t, err)
	assert.Equal(t, "lesson-2", cp.LessonID)
}

func TestSizeCeilingBoundary(t *testing.T) {
	repo := newMemRepo()
	c := NewController(repo)
	ctx := context.Background()

	out, err := c.Save(ctx, "learner-1", sampleCheckpoint("lesson-1", 1000))
	require.NoError(t, err)

	// Exactly at the limit still counts as OK; one byte over does not.
	exact := NewController(repo, WithSizeLimit(out.TotalSize))
	outAt, err := exact.Save(ctx, "learner-1", sampleCheckpoint("lesson-1", 1000))
	require.NoError(t, err)
	assert.True(t, outAt.SizeOK)

	under := NewController(repo, WithSizeLimit(out.TotalSize-1))
	outOver, err := under.Save(ctx, "learner-1", sampleCheckpoint("lesson-1", 1000))
	require.NoError(t, err)
	assert.False(t, outOver.SizeOK)
}

func TestRetrieveOldest(t *testing.T) {
	c := NewController(newMemRepo())
	ctx := context.Background()

	_, err := c.RetrieveOldest(ctx, "learner-1")
	var notFound *progress.ErrCheckpointNotFound
	require.ErrorAs(t, err, &notFound)

	// First-save order, not last-played order, decides the oldest.
	_, err = c.Save(ctx, "learner-1", sampleCheckpoint("lesson-new", 100))
	require.NoError(t, err)
	_, err = c.Save(ctx, "learner-1", sampleCheckpoint("lesson-old", 50))
	require.NoError(t, err)
	_, err = c.Save(ctx, "learner-1", sampleCheckpoint("lesson-new", 900))
	require.NoError(t, err)

	oldest, err := c.RetrieveOldest(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, "lesson-old", oldest.LessonID)
	assert.Equal(t, "Lesson lesson-old", oldest.LessonTitle)
}

func TestDeleteAndList(t *testing.T) {
	c := NewController(newMemRepo())
	ctx := context.Background()

	_, err := c.Save(ctx, "learner-1", sampleCheckpoint("lesson-1", 1000))
	require.NoError(t, err)
	_, err = c.Save(ctx, "learner-1", sampleCheckpoint("lesson-2", 2000))
	require.NoError(t, err)

	recs, err := c.List(ctx, "learner-1")
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	require.NoError(t, c.Delete(ctx, "learner-1", "lesson-1"))

	recs, err = c.List(ctx, "learner-1")
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	_, err = c.Retrieve(ctx, "learner-1", "lesson-1")
	var notFound *progress.ErrCheckpointNotFound
	assert.True(t, errors.As(err, &notFound))
}
