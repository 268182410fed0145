// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oppia/explord/ent/hintevent"
	"github.com/oppia/explord/ent/predicate"
)

// HintEventUpdate is the builder for updating HintEvent entities.
type HintEventUpdate struct {
	config
	hooks    []Hook
	mutation *HintEventMutation
}

// Where appends a list predicates to the HintEventUpdate builder.
func (_u *HintEventUpdate) Where(ps ...predicate.HintEvent) *HintEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *HintEventUpdate) SetSessionID(v string) *HintEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableSessionID(v *string) *HintEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *HintEventUpdate) SetLessonID(v string) *HintEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableLessonID(v *string) *HintEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetStateName sets the "state_name" field.
func (_u *HintEventUpdate) SetStateName(v string) *HintEventUpdate {
	_u.mutation.SetStateName(v)
	return _u
}

// SetNillableStateName sets the "state_name" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableStateName(v *string) *HintEventUpdate {
	if v != nil {
		_u.SetStateName(*v)
	}
	return _u
}

// SetHintIndex sets the "hint_index" field.
func (_u *HintEventUpdate) SetHintIndex(v int) *HintEventUpdate {
	_u.mutation.ResetHintIndex()
	_u.mutation.SetHintIndex(v)
	return _u
}

// SetNillableHintIndex sets the "hint_index" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableHintIndex(v *int) *HintEventUpdate {
	if v != nil {
		_u.SetHintIndex(*v)
	}
	return _u
}

// AddHintIndex adds value to the "hint_index" field.
func (_u *HintEventUpdate) AddHintIndex(v int) *HintEventUpdate {
	_u.mutation.AddHintIndex(v)
	return _u
}

// SetSolution sets the "solution" field.
func (_u *HintEventUpdate) SetSolution(v bool) *HintEventUpdate {
	_u.mutation.SetSolution(v)
	return _u
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableSolution(v *bool) *HintEventUpdate {
	if v != nil {
		_u.SetSolution(*v)
	}
	return _u
}

// Mutation returns the HintEventMutation object of the builder.
func (_u *HintEventUpdate) Mutation() *HintEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HintEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HintEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HintEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HintEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HintEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := hintevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "HintEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := hintevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "HintEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateName(); ok {
		if err := hintevent.StateNameValidator(v); err != nil {
			return &ValidationError{Name: "state_name", err: fmt.Errorf(`ent: validator failed for field "HintEvent.state_name": %w`, err)}
		}
	}
	return nil
}

func (_u *HintEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hintevent.Table, hintevent.Columns, sqlgraph.NewFieldSpec(hintevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(hintevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(hintevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateName(); ok {
		_spec.SetField(hintevent.FieldStateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintIndex(); ok {
		_spec.SetField(hintevent.FieldHintIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintIndex(); ok {
		_spec.AddField(hintevent.FieldHintIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(hintevent.FieldSolution, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hintevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HintEventUpdateOne is the builder for updating a single HintEvent entity.
type HintEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HintEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *HintEventUpdateOne) SetSessionID(v string) *HintEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableSessionID(v *string) *HintEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *HintEventUpdateOne) SetLessonID(v string) *HintEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableLessonID(v *string) *HintEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetStateName sets the "state_name" field.
func (_u *HintEventUpdateOne) SetStateName(v string) *HintEventUpdateOne {
	_u.mutation.SetStateName(v)
	return _u
}

// SetNillableStateName sets the "state_name" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableStateName(v *string) *HintEventUpdateOne {
	if v != nil {
		_u.SetStateName(*v)
	}
	return _u
}

// SetHintIndex sets the "hint_index" field.
func (_u *HintEventUpdateOne) SetHintIndex(v int) *HintEventUpdateOne {
	_u.mutation.ResetHintIndex()
	_u.mutation.SetHintIndex(v)
	return _u
}

// SetNillableHintIndex sets the "hint_index" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableHintIndex(v *int) *HintEventUpdateOne {
	if v != nil {
		_u.SetHintIndex(*v)
	}
	return _u
}

// AddHintIndex adds value to the "hint_index" field.
func (_u *HintEventUpdateOne) AddHintIndex(v int) *HintEventUpdateOne {
	_u.mutation.AddHintIndex(v)
	return _u
}

// SetSolution sets the "solution" field.
func (_u *HintEventUpdateOne) SetSolution(v bool) *HintEventUpdateOne {
	_u.mutation.SetSolution(v)
	return _u
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableSolution(v *bool) *HintEventUpdateOne {
	if v != nil {
		_u.SetSolution(*v)
	}
	return _u
}

// Mutation returns the HintEventMutation object of the builder.
func (_u *HintEventUpdateOne) Mutation() *HintEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the HintEventUpdate builder.
func (_u *HintEventUpdateOne) Where(ps ...predicate.HintEvent) *HintEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HintEventUpdateOne) Select(field string, fields ...string) *HintEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HintEvent entity.
func (_u *HintEventUpdateOne) Save(ctx context.Context) (*HintEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HintEventUpdateOne) SaveX(ctx context.Context) *HintEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HintEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HintEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HintEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := hintevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "HintEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := hintevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "HintEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateName(); ok {
		if err := hintevent.StateNameValidator(v); err != nil {
			return &ValidationError{Name: "state_name", err: fmt.Errorf(`ent: validator failed for field "HintEvent.state_name": %w`, err)}
		}
	}
	return nil
}

func (_u *HintEventUpdateOne) sqlSave(ctx context.Context) (_node *HintEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hintevent.Table, hintevent.Columns, sqlgraph.NewFieldSpec(hintevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HintEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hintevent.FieldID)
		for _, f := range fields {
			if !hintevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hintevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(hintevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(hintevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateName(); ok {
		_spec.SetField(hintevent.FieldStateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintIndex(); ok {
		_spec.SetField(hintevent.FieldHintIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintIndex(); ok {
		_spec.AddField(hintevent.FieldHintIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(hintevent.FieldSolution, field.TypeBool, value)
	}
	_node = &HintEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hintevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
