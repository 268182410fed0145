// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"entgo.io/ent/dialect/sql"
	"github.com/oppia/explord/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldLearnerID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldLessonID, v))
}

// LessonTitle applies equality check predicate on the "lesson_title" field. It's identical to LessonTitleEQ.
func LessonTitle(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldLessonTitle, v))
}

// LessonVersion applies equality check predicate on the "lesson_version" field. It's identical to LessonVersionEQ.
func LessonVersion(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldLessonVersion, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldPayload, v))
}

// FirstSavedMs applies equality check predicate on the "first_saved_ms" field. It's identical to FirstSavedMsEQ.
func FirstSavedMs(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldFirstSavedMs, v))
}

// LastPlayedMs applies equality check predicate on the "last_played_ms" field. It's identical to LastPlayedMsEQ.
func LastPlayedMs(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldLastPlayedMs, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldLearnerID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldLessonID, v))
}

// LessonTitleEQ applies the EQ predicate on the "lesson_title" field.
func LessonTitleEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldLessonTitle, v))
}

// LessonTitleNEQ applies the NEQ predicate on the "lesson_title" field.
func LessonTitleNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldLessonTitle, v))
}

// LessonTitleIn applies the In predicate on the "lesson_title" field.
func LessonTitleIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldLessonTitle, vs...))
}

// LessonTitleNotIn applies the NotIn predicate on the "lesson_title" field.
func LessonTitleNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldLessonTitle, vs...))
}

// LessonTitleGT applies the GT predicate on the "lesson_title" field.
func LessonTitleGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldLessonTitle, v))
}

// LessonTitleGTE applies the GTE predicate on the "lesson_title" field.
func LessonTitleGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldLessonTitle, v))
}

// LessonTitleLT applies the LT predicate on the "lesson_title" field.
func LessonTitleLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldLessonTitle, v))
}

// LessonTitleLTE applies the LTE predicate on the "lesson_title" field.
func LessonTitleLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldLessonTitle, v))
}

// LessonTitleContains applies the Contains predicate on the "lesson_title" field.
func LessonTitleContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldLessonTitle, v))
}

// LessonTitleHasPrefix applies the HasPrefix predicate on the "lesson_title" field.
func LessonTitleHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldLessonTitle, v))
}

// LessonTitleHasSuffix applies the HasSuffix predicate on the "lesson_title" field.
func LessonTitleHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldLessonTitle, v))
}

// LessonTitleEqualFold applies the EqualFold predicate on the "lesson_title" field.
func LessonTitleEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldLessonTitle, v))
}

// LessonTitleContainsFold applies the ContainsFold predicate on the "lesson_title" field.
func LessonTitleContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldLessonTitle, v))
}

// LessonVersionEQ applies the EQ predicate on the "lesson_version" field.
func LessonVersionEQ(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldLessonVersion, v))
}

// LessonVersionNEQ applies the NEQ predicate on the "lesson_version" field.
func LessonVersionNEQ(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldLessonVersion, v))
}

// LessonVersionIn applies the In predicate on the "lesson_version" field.
func LessonVersionIn(vs ...int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldLessonVersion, vs...))
}

// LessonVersionNotIn applies the NotIn predicate on the "lesson_version" field.
func LessonVersionNotIn(vs ...int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldLessonVersion, vs...))
}

// LessonVersionGT applies the GT predicate on the "lesson_version" field.
func LessonVersionGT(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldLessonVersion, v))
}

// LessonVersionGTE applies the GTE predicate on the "lesson_version" field.
func LessonVersionGTE(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldLessonVersion, v))
}

// LessonVersionLT applies the LT predicate on the "lesson_version" field.
func LessonVersionLT(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldLessonVersion, v))
}

// LessonVersionLTE applies the LTE predicate on the "lesson_version" field.
func LessonVersionLTE(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldLessonVersion, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldPayload, v))
}

// FirstSavedMsEQ applies the EQ predicate on the "first_saved_ms" field.
func FirstSavedMsEQ(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldFirstSavedMs, v))
}

// FirstSavedMsNEQ applies the NEQ predicate on the "first_saved_ms" field.
func FirstSavedMsNEQ(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldFirstSavedMs, v))
}

// FirstSavedMsIn applies the In predicate on the "first_saved_ms" field.
func FirstSavedMsIn(vs ...int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldFirstSavedMs, vs...))
}

// FirstSavedMsNotIn applies the NotIn predicate on the "first_saved_ms" field.
func FirstSavedMsNotIn(vs ...int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldFirstSavedMs, vs...))
}

// FirstSavedMsGT applies the GT predicate on the "first_saved_ms" field.
func FirstSavedMsGT(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldFirstSavedMs, v))
}

// FirstSavedMsGTE applies the GTE predicate on the "first_saved_ms" field.
func FirstSavedMsGTE(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldFirstSavedMs, v))
}

// FirstSavedMsLT applies the LT predicate on the "first_saved_ms" field.
func FirstSavedMsLT(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldFirstSavedMs, v))
}

// FirstSavedMsLTE applies the LTE predicate on the "first_saved_ms" field.
func FirstSavedMsLTE(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldFirstSavedMs, v))
}

// LastPlayedMsEQ applies the EQ predicate on the "last_played_ms" field.
func LastPlayedMsEQ(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldLastPlayedMs, v))
}

// LastPlayedMsNEQ applies the NEQ predicate on the "last_played_ms" field.
func LastPlayedMsNEQ(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldLastPlayedMs, v))
}

// LastPlayedMsIn applies the In predicate on the "last_played_ms" field.
func LastPlayedMsIn(vs ...int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldLastPlayedMs, vs...))
}

// LastPlayedMsNotIn applies the NotIn predicate on the "last_played_ms" field.
func LastPlayedMsNotIn(vs ...int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldLastPlayedMs, vs...))
}

// LastPlayedMsGT applies the GT predicate on the "last_played_ms" field.
func LastPlayedMsGT(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldLastPlayedMs, v))
}

// LastPlayedMsGTE applies the GTE predicate on the "last_played_ms" field.
func LastPlayedMsGTE(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldLastPlayedMs, v))
}

// LastPlayedMsLT applies the LT predicate on the "last_played_ms" field.
func LastPlayedMsLT(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldLastPlayedMs, v))
}

// LastPlayedMsLTE applies the LTE predicate on the "last_played_ms" field.
func LastPlayedMsLTE(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldLastPlayedMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.NotPredicates(p))
}
