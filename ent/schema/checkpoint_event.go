package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckpointEvent records the outcome of a background checkpoint save.
type CheckpointEvent struct {
	ent.Schema
}

func (CheckpointEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CheckpointEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("lesson_id").NotEmpty(),
		field.String("status").
			NotEmpty().
			Comment("unsaved, saved_under_limit or saved_over_limit"),
	}
}

func (CheckpointEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
