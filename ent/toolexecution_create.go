// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/valet-assistant/valet/ent/confirmation"
	"github.com/valet-assistant/valet/ent/session"
	"github.com/valet-assistant/valet/ent/toolexecution"
)

// ToolExecutionCreate is the builder for creating a ToolExecution entity.
type ToolExecutionCreate struct {
	config
	mutation *ToolExecutionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ToolExecutionCreate) SetSessionID(v string) *ToolExecutionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ToolExecutionCreate) SetUserID(v string) *ToolExecutionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ToolExecutionCreate) SetToolName(v string) *ToolExecutionCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *ToolExecutionCreate) SetInput(v map[string]interface{}) *ToolExecutionCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ToolExecutionCreate) SetStatus(v toolexecution.Status) *ToolExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableStatus(v *toolexecution.Status) *ToolExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *ToolExecutionCreate) SetIdempotencyKey(v string) *ToolExecutionCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *ToolExecutionCreate) SetResult(v map[string]interface{}) *ToolExecutionCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetError sets the "error" field.
func (_c *ToolExecutionCreate) SetError(v string) *ToolExecutionCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableError(v *string) *ToolExecutionCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *ToolExecutionCreate) SetErrorCode(v string) *ToolExecutionCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableErrorCode(v *string) *ToolExecutionCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *ToolExecutionCreate) SetTraceID(v string) *ToolExecutionCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableTraceID(v *string) *ToolExecutionCreate {
	if v != nil {
		_c.SetTraceID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ToolExecutionCreate) SetStartedAt(v time.Time) *ToolExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableStartedAt(v *time.Time) *ToolExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ToolExecutionCreate) SetFinishedAt(v time.Time) *ToolExecutionCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableFinishedAt(v *time.Time) *ToolExecutionCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolExecutionCreate) SetCreatedAt(v time.Time) *ToolExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableCreatedAt(v *time.Time) *ToolExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolExecutionCreate) SetID(v string) *ToolExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *ToolExecutionCreate) SetSession(v *Session) *ToolExecutionCreate {
	return _c.SetSessionID(v.ID)
}

// AddConfirmationIDs adds the "confirmations" edge to the Confirmation entity by IDs.
func (_c *ToolExecutionCreate) AddConfirmationIDs(ids ...string) *ToolExecutionCreate {
	_c.mutation.AddConfirmationIDs(ids...)
	return _c
}

// AddConfirmations adds the "confirmations" edges to the Confirmation entity.
func (_c *ToolExecutionCreate) AddConfirmations(v ...*Confirmation) *ToolExecutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConfirmationIDs(ids...)
}

// Mutation returns the ToolExecutionMutation object of the builder.
func (_c *ToolExecutionCreate) Mutation() *ToolExecutionMutation {
	return _c.mutation
}

// Save creates the ToolExecution in the database.
func (_c *ToolExecutionCreate) Save(ctx context.Context) (*ToolExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolExecutionCreate) SaveX(ctx context.Context) *ToolExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := toolexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolExecutionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ToolExecution.session_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ToolExecution.user_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ToolExecution.tool_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ToolExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := toolexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`ent: missing required field "ToolExecution.idempotency_key"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolExecution.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ToolExecution.session"`)}
	}
	return nil
}

func (_c *ToolExecutionCreate) sqlSave(ctx context.Context) (*ToolExecution, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ToolExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolExecutionCreate) createSpec() (*ToolExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolexecution.Table, sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(toolexecution.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(toolexecution.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(toolexecution.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(toolexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(toolexecution.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(toolexecution.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(toolexecution.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(toolexecution.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(toolexecution.FieldTraceID, field.TypeString, value)
		_node.TraceID = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(toolexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(toolexecution.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   toolexecution.SessionTable,
			Columns: []string{toolexecution.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConfirmationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   toolexecution.ConfirmationsTable,
			Columns: []string{toolexecution.ConfirmationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(confirmation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ToolExecutionCreateBulk is the builder for creating many ToolExecution entities in bulk.
type ToolExecutionCreateBulk struct {
	config
	err      error
	builders []*ToolExecutionCreate
}

// Save creates the ToolExecution entities in the database.
func (_c *ToolExecutionCreateBulk) Save(ctx context.Context) ([]*ToolExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolExecutionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ToolExecutionCreateBulk) SaveX(ctx context.Context) []*ToolExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
