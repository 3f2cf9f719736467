// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/valet-assistant/valet/ent/memoryevent"
	"github.com/valet-assistant/valet/ent/predicate"
)

// MemoryEventUpdate is the builder for updating MemoryEvent entities.
type MemoryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryEventMutation
}

// Where appends a list predicates to the MemoryEventUpdate builder.
func (_u *MemoryEventUpdate) Where(ps ...predicate.MemoryEvent) *MemoryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *MemoryEventUpdate) SetEventType(v memoryevent.EventType) *MemoryEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *MemoryEventUpdate) SetNillableEventType(v *memoryevent.EventType) *MemoryEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetActor sets the "actor" field.
func (_u *MemoryEventUpdate) SetActor(v string) *MemoryEventUpdate {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *MemoryEventUpdate) SetNillableActor(v *string) *MemoryEventUpdate {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *MemoryEventUpdate) SetReason(v string) *MemoryEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *MemoryEventUpdate) SetNillableReason(v *string) *MemoryEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *MemoryEventUpdate) ClearReason() *MemoryEventUpdate {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the MemoryEventMutation object of the builder.
func (_u *MemoryEventUpdate) Mutation() *MemoryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := memoryevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "MemoryEvent.event_type": %w`, err)}
		}
	}
	if _u.mutation.MemoryCleared() && len(_u.mutation.MemoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MemoryEvent.memory"`)
	}
	return nil
}

func (_u *MemoryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryevent.Table, memoryevent.Columns, sqlgraph.NewFieldSpec(memoryevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(memoryevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(memoryevent.FieldActor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(memoryevent.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(memoryevent.FieldReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryEventUpdateOne is the builder for updating a single MemoryEvent entity.
type MemoryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryEventMutation
}

// SetEventType sets the "event_type" field.
func (_u *MemoryEventUpdateOne) SetEventType(v memoryevent.EventType) *MemoryEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *MemoryEventUpdateOne) SetNillableEventType(v *memoryevent.EventType) *MemoryEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetActor sets the "actor" field.
func (_u *MemoryEventUpdateOne) SetActor(v string) *MemoryEventUpdateOne {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *MemoryEventUpdateOne) SetNillableActor(v *string) *MemoryEventUpdateOne {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *MemoryEventUpdateOne) SetReason(v string) *MemoryEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *MemoryEventUpdateOne) SetNillableReason(v *string) *MemoryEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *MemoryEventUpdateOne) ClearReason() *MemoryEventUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the MemoryEventMutation object of the builder.
func (_u *MemoryEventUpdateOne) Mutation() *MemoryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryEventUpdate builder.
func (_u *MemoryEventUpdateOne) Where(ps ...predicate.MemoryEvent) *MemoryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryEventUpdateOne) Select(field string, fields ...string) *MemoryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryEvent entity.
func (_u *MemoryEventUpdateOne) Save(ctx context.Context) (*MemoryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryEventUpdateOne) SaveX(ctx context.Context) *MemoryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := memoryevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "MemoryEvent.event_type": %w`, err)}
		}
	}
	if _u.mutation.MemoryCleared() && len(_u.mutation.MemoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MemoryEvent.memory"`)
	}
	return nil
}

func (_u *MemoryEventUpdateOne) sqlSave(ctx context.Context) (_node *MemoryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryevent.Table, memoryevent.Columns, sqlgraph.NewFieldSpec(memoryevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryevent.FieldID)
		for _, f := range fields {
			if !memoryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memoryevent.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(memoryevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(memoryevent.FieldActor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(memoryevent.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(memoryevent.FieldReason, field.TypeString)
	}
	_node = &MemoryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
