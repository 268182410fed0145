package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint is one resumable progress snapshot for a (learner, lesson)
// pair. At most one row exists per pair; saves replace the payload in
// place while first_saved_ms is carried forward from the prior row.
type Checkpoint struct {
	ent.Schema
}

func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Profile the checkpoint belongs to"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson the checkpoint resumes"),
		field.String("lesson_title").
			NotEmpty(),
		field.Int("lesson_version").
			Comment("Lesson version at save time; resumption across versions is denied upstream"),
		field.Bytes("payload").
			Comment("Serialized checkpoint snapshot (JSON)"),
		field.Int64("first_saved_ms").
			Comment("Epoch millis of the first checkpoint ever saved for this session"),
		field.Int64("last_played_ms").
			Comment("Epoch millis of the most recent save"),
	}
}

func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "lesson_id").Unique(),
		index.Fields("learner_id"),
	}
}
