// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "state_name", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "feedback", Type: field.TypeString, Nullable: true},
		{Name: "correct", Type: field.TypeBool},
		{Name: "dest_state_name", Type: field.TypeString, Nullable: true},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_lesson_id_state_name",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4], AnswerEventsColumns[5]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "lesson_title", Type: field.TypeString},
		{Name: "lesson_version", Type: field.TypeInt},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "first_saved_ms", Type: field.TypeInt64},
		{Name: "last_played_ms", Type: field.TypeInt64},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_learner_id_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{CheckpointsColumns[1], CheckpointsColumns[2]},
			},
			{
				Name:    "checkpoint_learner_id",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[1]},
			},
		},
	}
	// CheckpointEventsColumns holds the columns for the "checkpoint_events" table.
	CheckpointEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
	}
	// CheckpointEventsTable holds the schema information for the "checkpoint_events" table.
	CheckpointEventsTable = &schema.Table{
		Name:       "checkpoint_events",
		Columns:    CheckpointEventsColumns,
		PrimaryKey: []*schema.Column{CheckpointEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkpointevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CheckpointEventsColumns[1]},
			},
			{
				Name:    "checkpointevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CheckpointEventsColumns[2]},
			},
			{
				Name:    "checkpointevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{CheckpointEventsColumns[3]},
			},
		},
	}
	// FaultEventsColumns holds the columns for the "fault_events" table.
	FaultEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "operation", Type: field.TypeString},
		{Name: "message", Type: field.TypeString},
	}
	// FaultEventsTable holds the schema information for the "fault_events" table.
	FaultEventsTable = &schema.Table{
		Name:       "fault_events",
		Columns:    FaultEventsColumns,
		PrimaryKey: []*schema.Column{FaultEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "faultevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{FaultEventsColumns[1]},
			},
			{
				Name:    "faultevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{FaultEventsColumns[2]},
			},
			{
				Name:    "faultevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{FaultEventsColumns[3]},
			},
			{
				Name:    "faultevent_operation",
				Unique:  false,
				Columns: []*schema.Column{FaultEventsColumns[4]},
			},
		},
	}
	// HintEventsColumns holds the columns for the "hint_events" table.
	HintEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "state_name", Type: field.TypeString},
		{Name: "hint_index", Type: field.TypeInt, Default: 0},
		{Name: "solution", Type: field.TypeBool, Default: false},
	}
	// HintEventsTable holds the schema information for the "hint_events" table.
	HintEventsTable = &schema.Table{
		Name:       "hint_events",
		Columns:    HintEventsColumns,
		PrimaryKey: []*schema.Column{HintEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[1]},
			},
			{
				Name:    "hintevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[2]},
			},
			{
				Name:    "hintevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[3]},
			},
			{
				Name:    "hintevent_lesson_id_state_name",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[4], HintEventsColumns[5]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		CheckpointsTable,
		CheckpointEventsTable,
		FaultEventsTable,
		HintEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
