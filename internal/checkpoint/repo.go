package checkpoint

import "context"

// Record is one persisted checkpoint row. Payload is the serialized
// snapshot; the surrounding columns are denormalized for listing and
// ordering without deserializing payloads.
type Record struct {
	LearnerID     string
	LessonID      string
	LessonTitle   string
	LessonVersion int
	Payload       []byte
	FirstSavedMs  int64
	LastPlayedMs  int64
}

// Repo is the storage the controller runs on. The ent/SQLite
// implementation lives in internal/store; tests substitute an in-memory
// one.
type Repo interface {
	// Get returns the row for the pair, or nil when none exists.
	Get(ctx context.Context, learnerID, lessonID string) (*Record, error)

	// Put inserts or replaces the row for (r.LearnerID, r.LessonID).
	Put(ctx context.Context, r *Record) error

	// All returns every row for the learner, in no particular order.
	All(ctx context.Context, learnerID string) ([]*Record, error)

	// Delete removes the row for the pair. Deleting a missing row is not
	// an error.
	Delete(ctx context.Context, learnerID, lessonID string) error
}
