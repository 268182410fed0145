// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oppia/explord/ent/faultevent"
	"github.com/oppia/explord/ent/predicate"
)

// FaultEventUpdate is the builder for updating FaultEvent entities.
type FaultEventUpdate struct {
	config
	hooks    []Hook
	mutation *FaultEventMutation
}

// Where appends a list predicates to the FaultEventUpdate builder.
func (_u *FaultEventUpdate) Where(ps ...predicate.FaultEvent) *FaultEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *FaultEventUpdate) SetSessionID(v string) *FaultEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FaultEventUpdate) SetNillableSessionID(v *string) *FaultEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *FaultEventUpdate) ClearSessionID() *FaultEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetOperation sets the "operation" field.
func (_u *FaultEventUpdate) SetOperation(v string) *FaultEventUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *FaultEventUpdate) SetNillableOperation(v *string) *FaultEventUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *FaultEventUpdate) SetMessage(v string) *FaultEventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *FaultEventUpdate) SetNillableMessage(v *string) *FaultEventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// Mutation returns the FaultEventMutation object of the builder.
func (_u *FaultEventUpdate) Mutation() *FaultEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FaultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FaultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FaultEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FaultEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FaultEventUpdate) check() error {
	if v, ok := _u.mutation.Operation(); ok {
		if err := faultevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "FaultEvent.operation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := faultevent.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "FaultEvent.message": %w`, err)}
		}
	}
	return nil
}

func (_u *FaultEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(faultevent.Table, faultevent.Columns, sqlgraph.NewFieldSpec(faultevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(faultevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(faultevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(faultevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(faultevent.FieldMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{faultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FaultEventUpdateOne is the builder for updating a single FaultEvent entity.
type FaultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FaultEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *FaultEventUpdateOne) SetSessionID(v string) *FaultEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FaultEventUpdateOne) SetNillableSessionID(v *string) *FaultEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *FaultEventUpdateOne) ClearSessionID() *FaultEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetOperation sets the "operation" field.
func (_u *FaultEventUpdateOne) SetOperation(v string) *FaultEventUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *FaultEventUpdateOne) SetNillableOperation(v *string) *FaultEventUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *FaultEventUpdateOne) SetMessage(v string) *FaultEventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *FaultEventUpdateOne) SetNillableMessage(v *string) *FaultEventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// Mutation returns the FaultEventMutation object of the builder.
func (_u *FaultEventUpdateOne) Mutation() *FaultEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the FaultEventUpdate builder.
func (_u *FaultEventUpdateOne) Where(ps ...predicate.FaultEvent) *FaultEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FaultEventUpdateOne) Select(field string, fields ...string) *FaultEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FaultEvent entity.
func (_u *FaultEventUpdateOne) Save(ctx context.Context) (*FaultEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FaultEventUpdateOne) SaveX(ctx context.Context) *FaultEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FaultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FaultEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FaultEventUpdateOne) check() error {
	if v, ok := _u.mutation.Operation(); ok {
		if err := faultevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "FaultEvent.operation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := faultevent.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "FaultEvent.message": %w`, err)}
		}
	}
	return nil
}

func (_u *FaultEventUpdateOne) sqlSave(ctx context.Context) (_node *FaultEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(faultevent.Table, faultevent.Columns, sqlgraph.NewFieldSpec(faultevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FaultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, faultevent.FieldID)
		for _, f := range fields {
			if !faultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != faultevent.FieldID {
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
		_spec.SetField(faultevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(faultevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(faultevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(faultevent.FieldMessage, field.TypeString, value)
	}
	_node = &FaultEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{faultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
