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
	"github.com/valet-assistant/valet/ent/toolexecution"
)

// ConfirmationCreate is the builder for creating a Confirmation entity.
type ConfirmationCreate struct {
	config
	mutation *ConfirmationMutation
	hooks    []Hook
}

// SetToolExecutionID sets the "tool_execution_id" field.
func (_c *ConfirmationCreate) SetToolExecutionID(v string) *ConfirmationCreate {
	_c.mutation.SetToolExecutionID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ConfirmationCreate) SetSessionID(v string) *ConfirmationCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ConfirmationCreate) SetUserID(v string) *ConfirmationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ConfirmationCreate) SetToolName(v string) *ConfirmationCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetArgs sets the "args" field.
func (_c *ConfirmationCreate) SetArgs(v map[string]interface{}) *ConfirmationCreate {
	_c.mutation.SetArgs(v)
	return _c
}

// SetDecisionType sets the "decision_type" field.
func (_c *ConfirmationCreate) SetDecisionType(v string) *ConfirmationCreate {
	_c.mutation.SetDecisionType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConfirmationCreate) SetStatus(v confirmation.Status) *ConfirmationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConfirmationCreate) SetNillableStatus(v *confirmation.Status) *ConfirmationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ConfirmationCreate) SetPrompt(v string) *ConfirmationCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetRequiredPhrase sets the "required_phrase" field.
func (_c *ConfirmationCreate) SetRequiredPhrase(v string) *ConfirmationCreate {
	_c.mutation.SetRequiredPhrase(v)
	return _c
}

// SetNillableRequiredPhrase sets the "required_phrase" field if the given value is not nil.
func (_c *ConfirmationCreate) SetNillableRequiredPhrase(v *string) *ConfirmationCreate {
	if v != nil {
		_c.SetRequiredPhrase(*v)
	}
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *ConfirmationCreate) SetRiskScore(v int) *ConfirmationCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetReasonCode sets the "reason_code" field.
func (_c *ConfirmationCreate) SetReasonCode(v string) *ConfirmationCreate {
	_c.mutation.SetReasonCode(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ConfirmationCreate) SetExpiresAt(v time.Time) *ConfirmationCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ConfirmationCreate) SetResolvedAt(v time.Time) *ConfirmationCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ConfirmationCreate) SetNillableResolvedAt(v *time.Time) *ConfirmationCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *ConfirmationCreate) SetTraceID(v string) *ConfirmationCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_c *ConfirmationCreate) SetNillableTraceID(v *string) *ConfirmationCreate {
	if v != nil {
		_c.SetTraceID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConfirmationCreate) SetCreatedAt(v time.Time) *ConfirmationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConfirmationCreate) SetNillableCreatedAt(v *time.Time) *ConfirmationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConfirmationCreate) SetID(v string) *ConfirmationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecutionID sets the "execution" edge to the ToolExecution entity by ID.
func (_c *ConfirmationCreate) SetExecutionID(id string) *ConfirmationCreate {
	_c.mutation.SetExecutionID(id)
	return _c
}

// SetExecution sets the "execution" edge to the ToolExecution entity.
func (_c *ConfirmationCreate) SetExecution(v *ToolExecution) *ConfirmationCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the ConfirmationMutation object of the builder.
func (_c *ConfirmationCreate) Mutation() *ConfirmationMutation {
	return _c.mutation
}

// Save creates the Confirmation in the database.
func (_c *ConfirmationCreate) Save(ctx context.Context) (*Confirmation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConfirmationCreate) SaveX(ctx context.Context) *Confirmation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfirmationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfirmationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConfirmationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := confirmation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := confirmation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConfirmationCreate) check() error {
	if _, ok := _c.mutation.ToolExecutionID(); !ok {
		return &ValidationError{Name: "tool_execution_id", err: errors.New(`ent: missing required field "Confirmation.tool_execution_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Confirmation.session_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Confirmation.user_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "Confirmation.tool_name"`)}
	}
	if _, ok := _c.mutation.DecisionType(); !ok {
		return &ValidationError{Name: "decision_type", err: errors.New(`ent: missing required field "Confirmation.decision_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Confirmation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := confirmation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Confirmation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Confirmation.prompt"`)}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "Confirmation.risk_score"`)}
	}
	if _, ok := _c.mutation.ReasonCode(); !ok {
		return &ValidationError{Name: "reason_code", err: errors.New(`ent: missing required field "Confirmation.reason_code"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Confirmation.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Confirmation.created_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "Confirmation.execution"`)}
	}
	return nil
}

func (_c *ConfirmationCreate) sqlSave(ctx context.Context) (*Confirmation, error) {
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
			return nil, fmt.Errorf("unexpected Confirmation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConfirmationCreate) createSpec() (*Confirmation, *sqlgraph.CreateSpec) {
	var (
		_node = &Confirmation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(confirmation.Table, sqlgraph.NewFieldSpec(confirmation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(confirmation.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(confirmation.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(confirmation.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Args(); ok {
		_spec.SetField(confirmation.FieldArgs, field.TypeJSON, value)
		_node.Args = value
	}
	if value, ok := _c.mutation.DecisionType(); ok {
		_spec.SetField(confirmation.FieldDecisionType, field.TypeString, value)
		_node.DecisionType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(confirmation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(confirmation.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.RequiredPhrase(); ok {
		_spec.SetField(confirmation.FieldRequiredPhrase, field.TypeString, value)
		_node.RequiredPhrase = &value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(confirmation.FieldRiskScore, field.TypeInt, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.ReasonCode(); ok {
		_spec.SetField(confirmation.FieldReasonCode, field.TypeString, value)
		_node.ReasonCode = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(confirmation.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(confirmation.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(confirmation.FieldTraceID, field.TypeString, value)
		_node.TraceID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(confirmation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   confirmation.ExecutionTable,
			Columns: []string{confirmation.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ToolExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConfirmationCreateBulk is the builder for creating many Confirmation entities in bulk.
type ConfirmationCreateBulk struct {
	config
	err      error
	builders []*ConfirmationCreate
}

// Save creates the Confirmation entities in the database.
func (_c *ConfirmationCreateBulk) Save(ctx context.Context) ([]*Confirmation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Confirmation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConfirmationMutation)
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
func (_c *ConfirmationCreateBulk) SaveX(ctx context.Context) []*Confirmation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfirmationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfirmationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
