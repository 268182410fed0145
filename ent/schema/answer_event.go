package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answer submission at a lesson state.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("lesson_id").NotEmpty(),
		field.String("state_name").NotEmpty(),
		field.String("answer").NotEmpty(),
		field.String("feedback").
			Optional().
			Comment("Feedback text shown for this answer"),
		field.Bool("correct"),
		field.String("dest_state_name").
			Optional().
			Comment("Destination state for a correct answer; empty for same-state outcomes"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id", "state_name"),
	}
}
