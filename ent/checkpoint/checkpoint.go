// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the checkpoint type in the database.
	Label = "checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldLessonTitle holds the string denoting the lesson_title field in the database.
	FieldLessonTitle = "lesson_title"
	// FieldLessonVersion holds the string denoting the lesson_version field in the database.
	FieldLessonVersion = "lesson_version"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldFirstSavedMs holds the string denoting the first_saved_ms field in the database.
	FieldFirstSavedMs = "first_saved_ms"
	// FieldLastPlayedMs holds the string denoting the last_played_ms field in the database.
	FieldLastPlayedMs = "last_played_ms"
	// Table holds the table name of the checkpoint in the database.
	Table = "checkpoints"
)

// Columns holds all SQL columns for checkpoint fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldLessonID,
	FieldLessonTitle,
	FieldLessonVersion,
	FieldPayload,
	FieldFirstSavedMs,
	FieldLastPlayedMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// LessonTitleValidator is a validator for the "lesson_title" field. It is called by the builders before save.
	LessonTitleValidator func(string) error
)

// OrderOption defines the ordering options for the Checkpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByLessonTitle orders the results by the lesson_title field.
func ByLessonTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonTitle, opts...).ToFunc()
}

// ByLessonVersion orders the results by the lesson_version field.
func ByLessonVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonVersion, opts...).ToFunc()
}

// ByFirstSavedMs orders the results by the first_saved_ms field.
func ByFirstSavedMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSavedMs, opts...).ToFunc()
}

// ByLastPlayedMs orders the results by the last_played_ms field.
func ByLastPlayedMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPlayedMs, opts...).ToFunc()
}
