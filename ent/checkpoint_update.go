// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oppia/explord/ent/checkpoint"
	"github.com/oppia/explord/ent/predicate"
)

// CheckpointUpdate is the builder for updating Checkpoint entities.
type CheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointMutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdate) Where(ps ...predicate.Checkpoint) *CheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *CheckpointUpdate) SetLearnerID(v string) *CheckpointUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableLearnerID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *CheckpointUpdate) SetLessonID(v string) *CheckpointUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableLessonID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *CheckpointUpdate) SetLessonTitle(v string) *CheckpointUpdate {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableLessonTitle(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// SetLessonVersion sets the "lesson_version" field.
func (_u *CheckpointUpdate) SetLessonVersion(v int) *CheckpointUpdate {
	_u.mutation.ResetLessonVersion()
	_u.mutation.SetLessonVersion(v)
	return _u
}

// SetNillableLessonVersion sets the "lesson_version" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableLessonVersion(v *int) *CheckpointUpdate {
	if v != nil {
		_u.SetLessonVersion(*v)
	}
	return _u
}

// AddLessonVersion adds value to the "lesson_version" field.
func (_u *CheckpointUpdate) AddLessonVersion(v int) *CheckpointUpdate {
	_u.mutation.AddLessonVersion(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *CheckpointUpdate) SetPayload(v []byte) *CheckpointUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetFirstSavedMs sets the "first_saved_ms" field.
func (_u *CheckpointUpdate) SetFirstSavedMs(v int64) *CheckpointUpdate {
	_u.mutation.ResetFirstSavedMs()
	_u.mutation.SetFirstSavedMs(v)
	return _u
}

// SetNillableFirstSavedMs sets the "first_saved_ms" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableFirstSavedMs(v *int64) *CheckpointUpdate {
	if v != nil {
		_u.SetFirstSavedMs(*v)
	}
	return _u
}

// AddFirstSavedMs adds value to the "first_saved_ms" field.
func (_u *CheckpointUpdate) AddFirstSavedMs(v int64) *CheckpointUpdate {
	_u.mutation.AddFirstSavedMs(v)
	return _u
}

// SetLastPlayedMs sets the "last_played_ms" field.
func (_u *CheckpointUpdate) SetLastPlayedMs(v int64) *CheckpointUpdate {
	_u.mutation.ResetLastPlayedMs()
	_u.mutation.SetLastPlayedMs(v)
	return _u
}

// SetNillableLastPlayedMs sets the "last_played_ms" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableLastPlayedMs(v *int64) *CheckpointUpdate {
	if v != nil {
		_u.SetLastPlayedMs(*v)
	}
	return _u
}

// AddLastPlayedMs adds value to the "last_played_ms" field.
func (_u *CheckpointUpdate) AddLastPlayedMs(v int64) *CheckpointUpdate {
	_u.mutation.AddLastPlayedMs(v)
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdate) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := checkpoint.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := checkpoint.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonTitle(); ok {
		if err := checkpoint.LessonTitleValidator(v); err != nil {
			return &ValidationError{Name: "lesson_title", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.lesson_title": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(checkpoint.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(checkpoint.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(checkpoint.FieldLessonTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonVersion(); ok {
		_spec.SetField(checkpoint.FieldLessonVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonVersion(); ok {
		_spec.AddField(checkpoint.FieldLessonVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(checkpoint.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.FirstSavedMs(); ok {
		_spec.SetField(checkpoint.FieldFirstSavedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFirstSavedMs(); ok {
		_spec.AddField(checkpoint.FieldFirstSavedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastPlayedMs(); ok {
		_spec.SetField(checkpoint.FieldLastPlayedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastPlayedMs(); ok {
		_spec.AddField(checkpoint.FieldLastPlayedMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointUpdateOne is the builder for updating a single Checkpoint entity.
type CheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *CheckpointUpdateOne) SetLearnerID(v string) *CheckpointUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableLearnerID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *CheckpointUpdateOne) SetLessonID(v string) *CheckpointUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableLessonID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *CheckpointUpdateOne) SetLessonTitle(v string) *CheckpointUpdateOne {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableLessonTitle(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// SetLessonVersion sets the "lesson_version" field.
func (_u *CheckpointUpdateOne) SetLessonVersion(v int) *CheckpointUpdateOne {
	_u.mutation.ResetLessonVersion()
	_u.mutation.SetLessonVersion(v)
	return _u
}

// SetNillableLessonVersion sets the "lesson_version" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableLessonVersion(v *int) *CheckpointUpdateOne {
	if v != nil {
		_u.SetLessonVersion(*v)
	}
	return _u
}

// AddLessonVersion adds value to the "lesson_version" field.
func (_u *CheckpointUpdateOne) AddLessonVersion(v int) *CheckpointUpdateOne {
	_u.mutation.AddLessonVersion(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *CheckpointUpdateOne) SetPayload(v []byte) *CheckpointUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetFirstSavedMs sets the "first_saved_ms" field.
func (_u *CheckpointUpdateOne) SetFirstSavedMs(v int64) *CheckpointUpdateOne {
	_u.mutation.ResetFirstSavedMs()
	_u.mutation.SetFirstSavedMs(v)
	return _u
}

// SetNillableFirstSavedMs sets the "first_saved_ms" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableFirstSavedMs(v *int64) *CheckpointUpdateOne {
	if v != nil {
		_u.SetFirstSavedMs(*v)
	}
	return _u
}

// AddFirstSavedMs adds value to the "first_saved_ms" field.
func (_u *CheckpointUpdateOne) AddFirstSavedMs(v int64) *CheckpointUpdateOne {
	_u.mutation.AddFirstSavedMs(v)
	return _u
}

// SetLastPlayedMs sets the "last_played_ms" field.
func (_u *CheckpointUpdateOne) SetLastPlayedMs(v int64) *CheckpointUpdateOne {
	_u.mutation.ResetLastPlayedMs()
	_u.mutation.SetLastPlayedMs(v)
	return _u
}

// SetNillableLastPlayedMs sets the "last_played_ms" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableLastPlayedMs(v *int64) *CheckpointUpdateOne {
	if v != nil {
		_u.SetLastPlayedMs(*v)
	}
	return _u
}

// AddLastPlayedMs adds value to the "last_played_ms" field.
func (_u *CheckpointUpdateOne) AddLastPlayedMs(v int64) *CheckpointUpdateOne {
	_u.mutation.AddLastPlayedMs(v)
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdateOne) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdateOne) Where(ps ...predicate.Checkpoint) *CheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointUpdateOne) Select(field string, fields ...string) *CheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Checkpoint entity.
func (_u *CheckpointUpdateOne) Save(ctx context.Context) (*Checkpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdateOne) SaveX(ctx context.Context) *Checkpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := checkpoint.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := checkpoint.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonTitle(); ok {
		if err := checkpoint.LessonTitleValidator(v); err != nil {
			return &ValidationError{Name: "lesson_title", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.lesson_title": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckpointUpdateOne) sqlSave(ctx context.Context) (_node *Checkpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Checkpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpoint.FieldID)
		for _, f := range fields {
			if !checkpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpoint.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(checkpoint.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(checkpoint.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(checkpoint.FieldLessonTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonVersion(); ok {
		_spec.SetField(checkpoint.FieldLessonVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonVersion(); ok {
		_spec.AddField(checkpoint.FieldLessonVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(checkpoint.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.FirstSavedMs(); ok {
		_spec.SetField(checkpoint.FieldFirstSavedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFirstSavedMs(); ok {
		_spec.AddField(checkpoint.FieldFirstSavedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastPlayedMs(); ok {
		_spec.SetField(checkpoint.FieldLastPlayedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastPlayedMs(); ok {
		_spec.AddField(checkpoint.FieldLastPlayedMs, field.TypeInt64, value)
	}
	_node = &Checkpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
