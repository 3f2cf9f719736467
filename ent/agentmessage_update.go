// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/valet-assistant/valet/ent/agentmessage"
	"github.com/valet-assistant/valet/ent/predicate"
)

// AgentMessageUpdate is the builder for updating AgentMessage entities.
type AgentMessageUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMessageMutation
}

// Where appends a list predicates to the AgentMessageUpdate builder.
func (_u *AgentMessageUpdate) Where(ps ...predicate.AgentMessage) *AgentMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentMessageUpdate) SetRole(v agentmessage.Role) *AgentMessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentMessageUpdate) SetNillableRole(v *agentmessage.Role) *AgentMessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *AgentMessageUpdate) SetContent(v string) *AgentMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *AgentMessageUpdate) SetNillableContent(v *string) *AgentMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetModality sets the "modality" field.
func (_u *AgentMessageUpdate) SetModality(v agentmessage.Modality) *AgentMessageUpdate {
	_u.mutation.SetModality(v)
	return _u
}

// SetNillableModality sets the "modality" field if the given value is not nil.
func (_u *AgentMessageUpdate) SetNillableModality(v *agentmessage.Modality) *AgentMessageUpdate {
	if v != nil {
		_u.SetModality(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentMessageUpdate) SetStatus(v agentmessage.Status) *AgentMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentMessageUpdate) SetNillableStatus(v *agentmessage.Status) *AgentMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *AgentMessageUpdate) SetIdempotencyKey(v string) *AgentMessageUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *AgentMessageUpdate) SetNillableIdempotencyKey(v *string) *AgentMessageUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *AgentMessageUpdate) ClearIdempotencyKey() *AgentMessageUpdate {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *AgentMessageUpdate) SetTraceID(v string) *AgentMessageUpdate {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *AgentMessageUpdate) SetNillableTraceID(v *string) *AgentMessageUpdate {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *AgentMessageUpdate) ClearTraceID() *AgentMessageUpdate {
	_u.mutation.ClearTraceID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentMessageUpdate) SetMetadata(v map[string]interface{}) *AgentMessageUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentMessageUpdate) ClearMetadata() *AgentMessageUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentMessageUpdate) SetUpdatedAt(v time.Time) *AgentMessageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentMessageMutation object of the builder.
func (_u *AgentMessageUpdate) Mutation() *AgentMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentMessageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentMessageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentmessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentMessageUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := agentmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentMessage.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Modality(); ok {
		if err := agentmessage.ModalityValidator(v); err != nil {
			return &ValidationError{Name: "modality", err: fmt.Errorf(`ent: validator failed for field "AgentMessage.modality": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agentmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentMessage.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentMessage.session"`)
	}
	return nil
}

func (_u *AgentMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentmessage.Table, agentmessage.Columns, sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(agentmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Modality(); ok {
		_spec.SetField(agentmessage.FieldModality, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(agentmessage.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(agentmessage.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(agentmessage.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(agentmessage.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agentmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agentmessage.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentmessage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentMessageUpdateOne is the builder for updating a single AgentMessage entity.
type AgentMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMessageMutation
}

// SetRole sets the "role" field.
func (_u *AgentMessageUpdateOne) SetRole(v agentmessage.Role) *AgentMessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentMessageUpdateOne) SetNillableRole(v *agentmessage.Role) *AgentMessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *AgentMessageUpdateOne) SetContent(v string) *AgentMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *AgentMessageUpdateOne) SetNillableContent(v *string) *AgentMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetModality sets the "modality" field.
func (_u *AgentMessageUpdateOne) SetModality(v agentmessage.Modality) *AgentMessageUpdateOne {
	_u.mutation.SetModality(v)
	return _u
}

// SetNillableModality sets the "modality" field if the given value is not nil.
func (_u *AgentMessageUpdateOne) SetNillableModality(v *agentmessage.Modality) *AgentMessageUpdateOne {
	if v != nil {
		_u.SetModality(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentMessageUpdateOne) SetStatus(v agentmessage.Status) *AgentMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentMessageUpdateOne) SetNillableStatus(v *agentmessage.Status) *AgentMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *AgentMessageUpdateOne) SetIdempotencyKey(v string) *AgentMessageUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *AgentMessageUpdateOne) SetNillableIdempotencyKey(v *string) *AgentMessageUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *AgentMessageUpdateOne) ClearIdempotencyKey() *AgentMessageUpdateOne {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *AgentMessageUpdateOne) SetTraceID(v string) *AgentMessageUpdateOne {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *AgentMessageUpdateOne) SetNillableTraceID(v *string) *AgentMessageUpdateOne {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *AgentMessageUpdateOne) ClearTraceID() *AgentMessageUpdateOne {
	_u.mutation.ClearTraceID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentMessageUpdateOne) SetMetadata(v map[string]interface{}) *AgentMessageUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentMessageUpdateOne) ClearMetadata() *AgentMessageUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentMessageUpdateOne) SetUpdatedAt(v time.Time) *AgentMessageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentMessageMutation object of the builder.
func (_u *AgentMessageUpdateOne) Mutation() *AgentMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentMessageUpdate builder.
func (_u *AgentMessageUpdateOne) Where(ps ...predicate.AgentMessage) *AgentMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentMessageUpdateOne) Select(field string, fields ...string) *AgentMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentMessage entity.
func (_u *AgentMessageUpdateOne) Save(ctx context.Context) (*AgentMessage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentMessageUpdateOne) SaveX(ctx context.Context) *AgentMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentMessageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentmessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := agentmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentMessage.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Modality(); ok {
		if err := agentmessage.ModalityValidator(v); err != nil {
			return &ValidationError{Name: "modality", err: fmt.Errorf(`ent: validator failed for field "AgentMessage.modality": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agentmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentMessage.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentMessage.session"`)
	}
	return nil
}

func (_u *AgentMessageUpdateOne) sqlSave(ctx context.Context) (_node *AgentMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentmessage.Table, agentmessage.Columns, sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentmessage.FieldID)
		for _, f := range fields {
			if !agentmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentmessage.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(agentmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Modality(); ok {
		_spec.SetField(agentmessage.FieldModality, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(agentmessage.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(agentmessage.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(agentmessage.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(agentmessage.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agentmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agentmessage.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentmessage.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
