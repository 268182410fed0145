package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FaultEvent records a non-fatal failure absorbed by the session engine:
// precondition violations surfaced to callers, classifier errors, and
// background checkpoint save failures.
type FaultEvent struct {
	ent.Schema
}

func (FaultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FaultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Optional().
			Comment("Empty for faults raised outside an active session"),
		field.String("operation").
			NotEmpty().
			Comment("Controller operation that absorbed the fault"),
		field.String("message").NotEmpty(),
	}
}

func (FaultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("operation"),
	}
}
