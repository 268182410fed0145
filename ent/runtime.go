// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/oppia/explord/ent/answerevent"
	"github.com/oppia/explord/ent/checkpoint"
	"github.com/oppia/explord/ent/checkpointevent"
	"github.com/oppia/explord/ent/faultevent"
	"github.com/oppia/explord/ent/hintevent"
	"github.com/oppia/explord/ent/schema"
	"github.com/oppia/explord/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescLessonID is the schema descriptor for lesson_id field.
	answereventDescLessonID := answereventFields[1].Descriptor()
	// answerevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	answerevent.LessonIDValidator = answereventDescLessonID.Validators[0].(func(string) error)
	// answereventDescStateName is the schema descriptor for state_name field.
	answereventDescStateName := answereventFields[2].Descriptor()
	// answerevent.StateNameValidator is a validator for the "state_name" field. It is called by the builders before save.
	answerevent.StateNameValidator = answereventDescStateName.Validators[0].(func(string) error)
	// answereventDescAnswer is the schema descriptor for answer field.
	answereventDescAnswer := answereventFields[3].Descriptor()
	// answerevent.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	answerevent.AnswerValidator = answereventDescAnswer.Validators[0].(func(string) error)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescLearnerID is the schema descriptor for learner_id field.
	checkpointDescLearnerID := checkpointFields[0].Descriptor()
	// checkpoint.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	checkpoint.LearnerIDValidator = checkpointDescLearnerID.Validators[0].(func(string) error)
	// checkpointDescLessonID is the schema descriptor for lesson_id field.
	checkpointDescLessonID := checkpointFields[1].Descriptor()
	// checkpoint.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	checkpoint.LessonIDValidator = checkpointDescLessonID.Validators[0].(func(string) error)
	// checkpointDescLessonTitle is the schema descriptor for lesson_title field.
	checkpointDescLessonTitle := checkpointFields[2].Descriptor()
	// checkpoint.LessonTitleValidator is a validator for the "lesson_title" field. It is called by the builders before save.
	checkpoint.LessonTitleValidator = checkpointDescLessonTitle.Validators[0].(func(string) error)
	checkpointeventMixin := schema.CheckpointEvent{}.Mixin()
	checkpointeventMixinFields0 := checkpointeventMixin[0].Fields()
	_ = checkpointeventMixinFields0
	checkpointeventFields := schema.CheckpointEvent{}.Fields()
	_ = checkpointeventFields
	// checkpointeventDescTimestamp is the schema descriptor for timestamp field.
	checkpointeventDescTimestamp := checkpointeventMixinFields0[1].Descriptor()
	// checkpointevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	checkpointevent.DefaultTimestamp = checkpointeventDescTimestamp.Default.(func() time.Time)
	// checkpointeventDescSessionID is the schema descriptor for session_id field.
	checkpointeventDescSessionID := checkpointeventFields[0].Descriptor()
	// checkpointevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	checkpointevent.SessionIDValidator = checkpointeventDescSessionID.Validators[0].(func(string) error)
	// checkpointeventDescLessonID is the schema descriptor for lesson_id field.
	checkpointeventDescLessonID := checkpointeventFields[1].Descriptor()
	// checkpointevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	checkpointevent.LessonIDValidator = checkpointeventDescLessonID.Validators[0].(func(string) error)
	// checkpointeventDescStatus is the schema descriptor for status field.
	checkpointeventDescStatus := checkpointeventFields[2].Descriptor()
	// checkpointevent.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	checkpointevent.StatusValidator = checkpointeventDescStatus.Validators[0].(func(string) error)
	faulteventMixin := schema.FaultEvent{}.Mixin()
	faulteventMixinFields0 := faulteventMixin[0].Fields()
	_ = faulteventMixinFields0
	faulteventFields := schema.FaultEvent{}.Fields()
	_ = faulteventFields
	// faulteventDescTimestamp is the schema descriptor for timestamp field.
	faulteventDescTimestamp := faulteventMixinFields0[1].Descriptor()
	// faultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	faultevent.DefaultTimestamp = faulteventDescTimestamp.Default.(func() time.Time)
	// faulteventDescOperation is the schema descriptor for operation field.
	faulteventDescOperation := faulteventFields[1].Descriptor()
	// faultevent.OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	faultevent.OperationValidator = faulteventDescOperation.Validators[0].(func(string) error)
	// faulteventDescMessage is the schema descriptor for message field.
	faulteventDescMessage := faulteventFields[2].Descriptor()
	// faultevent.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	faultevent.MessageValidator = faulteventDescMessage.Validators[0].(func(string) error)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescLessonID is the schema descriptor for lesson_id field.
	hinteventDescLessonID := hinteventFields[1].Descriptor()
	// hintevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	hintevent.LessonIDValidator = hinteventDescLessonID.Validators[0].(func(string) error)
	// hinteventDescStateName is the schema descriptor for state_name field.
	hinteventDescStateName := hinteventFields[2].Descriptor()
	// hintevent.StateNameValidator is a validator for the "state_name" field. It is called by the builders before save.
	hintevent.StateNameValidator = hinteventDescStateName.Validators[0].(func(string) error)
	// hinteventDescHintIndex is the schema descriptor for hint_index field.
	hinteventDescHintIndex := hinteventFields[3].Descriptor()
	// hintevent.DefaultHintIndex holds the default value on creation for the hint_index field.
	hintevent.DefaultHintIndex = hinteventDescHintIndex.Default.(int)
	// hinteventDescSolution is the schema descriptor for solution field.
	hinteventDescSolution := hinteventFields[4].Descriptor()
	// hintevent.DefaultSolution holds the default value on creation for the solution field.
	hintevent.DefaultSolution = hinteventDescSolution.Default.(bool)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLearnerID is the schema descriptor for learner_id field.
	sessioneventDescLearnerID := sessioneventFields[1].Descriptor()
	// sessionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionevent.LearnerIDValidator = sessioneventDescLearnerID.Validators[0].(func(string) error)
	// sessioneventDescLessonID is the schema descriptor for lesson_id field.
	sessioneventDescLessonID := sessioneventFields[2].Descriptor()
	// sessionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	sessionevent.LessonIDValidator = sessioneventDescLessonID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
}
