// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/valet-assistant/valet/ent/policydecision"
)

// PolicyDecisionCreate is the builder for creating a PolicyDecision entity.
type PolicyDecisionCreate struct {
	config
	mutation *PolicyDecisionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *PolicyDecisionCreate) SetSessionID(v string) *PolicyDecisionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PolicyDecisionCreate) SetUserID(v string) *PolicyDecisionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *PolicyDecisionCreate) SetToolName(v string) *PolicyDecisionCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *PolicyDecisionCreate) SetDecision(v string) *PolicyDecisionCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *PolicyDecisionCreate) SetRiskScore(v int) *PolicyDecisionCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetReasonCode sets the "reason_code" field.
func (_c *PolicyDecisionCreate) SetReasonCode(v string) *PolicyDecisionCreate {
	_c.mutation.SetReasonCode(v)
	return _c
}

// SetIntentSummary sets the "intent_summary" field.
func (_c *PolicyDecisionCreate) SetIntentSummary(v string) *PolicyDecisionCreate {
	_c.mutation.SetIntentSummary(v)
	return _c
}

// SetNillableIntentSummary sets the "intent_summary" field if the given value is not nil.
func (_c *PolicyDecisionCreate) SetNillableIntentSummary(v *string) *PolicyDecisionCreate {
	if v != nil {
		_c.SetIntentSummary(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *PolicyDecisionCreate) SetMode(v policydecision.Mode) *PolicyDecisionCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *PolicyDecisionCreate) SetNillableMode(v *policydecision.Mode) *PolicyDecisionCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetToolExecutionID sets the "tool_execution_id" field.
func (_c *PolicyDecisionCreate) SetToolExecutionID(v string) *PolicyDecisionCreate {
	_c.mutation.SetToolExecutionID(v)
	return _c
}

// SetNillableToolExecutionID sets the "tool_execution_id" field if the given value is not nil.
func (_c *PolicyDecisionCreate) SetNillableToolExecutionID(v *string) *PolicyDecisionCreate {
	if v != nil {
		_c.SetToolExecutionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PolicyDecisionCreate) SetCreatedAt(v time.Time) *PolicyDecisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PolicyDecisionCreate) SetNillableCreatedAt(v *time.Time) *PolicyDecisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PolicyDecisionCreate) SetID(v string) *PolicyDecisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PolicyDecisionMutation object of the builder.
func (_c *PolicyDecisionCreate) Mutation() *PolicyDecisionMutation {
	return _c.mutation
}

// Save creates the PolicyDecision in the database.
func (_c *PolicyDecisionCreate) Save(ctx context.Context) (*PolicyDecision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PolicyDecisionCreate) SaveX(ctx context.Context) *PolicyDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicyDecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicyDecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PolicyDecisionCreate) defaults() {
	if _, ok := _c.mutation.Mode(); !ok {
		v := policydecision.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := policydecision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PolicyDecisionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PolicyDecision.session_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PolicyDecision.user_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "PolicyDecision.tool_name"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "PolicyDecision.decision"`)}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "PolicyDecision.risk_score"`)}
	}
	if _, ok := _c.mutation.ReasonCode(); !ok {
		return &ValidationError{Name: "reason_code", err: errors.New(`ent: missing required field "PolicyDecision.reason_code"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "PolicyDecision.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := policydecision.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "PolicyDecision.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PolicyDecision.created_at"`)}
	}
	return nil
}

func (_c *PolicyDecisionCreate) sqlSave(ctx context.Context) (*PolicyDecision, error) {
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
			return nil, fmt.Errorf("unexpected PolicyDecision.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PolicyDecisionCreate) createSpec() (*PolicyDecision, *sqlgraph.CreateSpec) {
	var (
		_node = &PolicyDecision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(policydecision.Table, sqlgraph.NewFieldSpec(policydecision.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(policydecision.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(policydecision.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(policydecision.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(policydecision.FieldDecision, field.TypeString, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(policydecision.FieldRiskScore, field.TypeInt, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.ReasonCode(); ok {
		_spec.SetField(policydecision.FieldReasonCode, field.TypeString, value)
		_node.ReasonCode = value
	}
	if value, ok := _c.mutation.IntentSummary(); ok {
		_spec.SetField(policydecision.FieldIntentSummary, field.TypeString, value)
		_node.IntentSummary = &value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(policydecision.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.ToolExecutionID(); ok {
		_spec.SetField(policydecision.FieldToolExecutionID, field.TypeString, value)
		_node.ToolExecutionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(policydecision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PolicyDecisionCreateBulk is the builder for creating many PolicyDecision entities in bulk.
type PolicyDecisionCreateBulk struct {
	config
	err      error
	builders []*PolicyDecisionCreate
}

// Save creates the PolicyDecision entities in the database.
func (_c *PolicyDecisionCreateBulk) Save(ctx context.Context) ([]*PolicyDecision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PolicyDecision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PolicyDecisionMutation)
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
func (_c *PolicyDecisionCreateBulk) SaveX(ctx context.Context) []*PolicyDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicyDecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicyDecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
