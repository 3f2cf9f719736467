// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/valet-assistant/valet/ent/policydecision"
	"github.com/valet-assistant/valet/ent/predicate"
)

// PolicyDecisionUpdate is the builder for updating PolicyDecision entities.
type PolicyDecisionUpdate struct {
	config
	hooks    []Hook
	mutation *PolicyDecisionMutation
}

// Where appends a list predicates to the PolicyDecisionUpdate builder.
func (_u *PolicyDecisionUpdate) Where(ps ...predicate.PolicyDecision) *PolicyDecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *PolicyDecisionUpdate) SetDecision(v string) *PolicyDecisionUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *PolicyDecisionUpdate) SetNillableDecision(v *string) *PolicyDecisionUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *PolicyDecisionUpdate) SetRiskScore(v int) *PolicyDecisionUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *PolicyDecisionUpdate) SetNillableRiskScore(v *int) *PolicyDecisionUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *PolicyDecisionUpdate) AddRiskScore(v int) *PolicyDecisionUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *PolicyDecisionUpdate) SetReasonCode(v string) *PolicyDecisionUpdate {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *PolicyDecisionUpdate) SetNillableReasonCode(v *string) *PolicyDecisionUpdate {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// SetIntentSummary sets the "intent_summary" field.
func (_u *PolicyDecisionUpdate) SetIntentSummary(v string) *PolicyDecisionUpdate {
	_u.mutation.SetIntentSummary(v)
	return _u
}

// SetNillableIntentSummary sets the "intent_summary" field if the given value is not nil.
func (_u *PolicyDecisionUpdate) SetNillableIntentSummary(v *string) *PolicyDecisionUpdate {
	if v != nil {
		_u.SetIntentSummary(*v)
	}
	return _u
}

// ClearIntentSummary clears the value of the "intent_summary" field.
func (_u *PolicyDecisionUpdate) ClearIntentSummary() *PolicyDecisionUpdate {
	_u.mutation.ClearIntentSummary()
	return _u
}

// SetMode sets the "mode" field.
func (_u *PolicyDecisionUpdate) SetMode(v policydecision.Mode) *PolicyDecisionUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *PolicyDecisionUpdate) SetNillableMode(v *policydecision.Mode) *PolicyDecisionUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetToolExecutionID sets the "tool_execution_id" field.
func (_u *PolicyDecisionUpdate) SetToolExecutionID(v string) *PolicyDecisionUpdate {
	_u.mutation.SetToolExecutionID(v)
	return _u
}

// SetNillableToolExecutionID sets the "tool_execution_id" field if the given value is not nil.
func (_u *PolicyDecisionUpdate) SetNillableToolExecutionID(v *string) *PolicyDecisionUpdate {
	if v != nil {
		_u.SetToolExecutionID(*v)
	}
	return _u
}

// ClearToolExecutionID clears the value of the "tool_execution_id" field.
func (_u *PolicyDecisionUpdate) ClearToolExecutionID() *PolicyDecisionUpdate {
	_u.mutation.ClearToolExecutionID()
	return _u
}

// Mutation returns the PolicyDecisionMutation object of the builder.
func (_u *PolicyDecisionUpdate) Mutation() *PolicyDecisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PolicyDecisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolicyDecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PolicyDecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolicyDecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolicyDecisionUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := policydecision.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "PolicyDecision.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *PolicyDecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(policydecision.Table, policydecision.Columns, sqlgraph.NewFieldSpec(policydecision.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(policydecision.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(policydecision.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(policydecision.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(policydecision.FieldReasonCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntentSummary(); ok {
		_spec.SetField(policydecision.FieldIntentSummary, field.TypeString, value)
	}
	if _u.mutation.IntentSummaryCleared() {
		_spec.ClearField(policydecision.FieldIntentSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(policydecision.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ToolExecutionID(); ok {
		_spec.SetField(policydecision.FieldToolExecutionID, field.TypeString, value)
	}
	if _u.mutation.ToolExecutionIDCleared() {
		_spec.ClearField(policydecision.FieldToolExecutionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{policydecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PolicyDecisionUpdateOne is the builder for updating a single PolicyDecision entity.
type PolicyDecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PolicyDecisionMutation
}

// SetDecision sets the "decision" field.
func (_u *PolicyDecisionUpdateOne) SetDecision(v string) *PolicyDecisionUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *PolicyDecisionUpdateOne) SetNillableDecision(v *string) *PolicyDecisionUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *PolicyDecisionUpdateOne) SetRiskScore(v int) *PolicyDecisionUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *PolicyDecisionUpdateOne) SetNillableRiskScore(v *int) *PolicyDecisionUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *PolicyDecisionUpdateOne) AddRiskScore(v int) *PolicyDecisionUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *PolicyDecisionUpdateOne) SetReasonCode(v string) *PolicyDecisionUpdateOne {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *PolicyDecisionUpdateOne) SetNillableReasonCode(v *string) *PolicyDecisionUpdateOne {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// SetIntentSummary sets the "intent_summary" field.
func (_u *PolicyDecisionUpdateOne) SetIntentSummary(v string) *PolicyDecisionUpdateOne {
	_u.mutation.SetIntentSummary(v)
	return _u
}

// SetNillableIntentSummary sets the "intent_summary" field if the given value is not nil.
func (_u *PolicyDecisionUpdateOne) SetNillableIntentSummary(v *string) *PolicyDecisionUpdateOne {
	if v != nil {
		_u.SetIntentSummary(*v)
	}
	return _u
}

// ClearIntentSummary clears the value of the "intent_summary" field.
func (_u *PolicyDecisionUpdateOne) ClearIntentSummary() *PolicyDecisionUpdateOne {
	_u.mutation.ClearIntentSummary()
	return _u
}

// SetMode sets the "mode" field.
func (_u *PolicyDecisionUpdateOne) SetMode(v policydecision.Mode) *PolicyDecisionUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *PolicyDecisionUpdateOne) SetNillableMode(v *policydecision.Mode) *PolicyDecisionUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetToolExecutionID sets the "tool_execution_id" field.
func (_u *PolicyDecisionUpdateOne) SetToolExecutionID(v string) *PolicyDecisionUpdateOne {
	_u.mutation.SetToolExecutionID(v)
	return _u
}

// SetNillableToolExecutionID sets the "tool_execution_id" field if the given value is not nil.
func (_u *PolicyDecisionUpdateOne) SetNillableToolExecutionID(v *string) *PolicyDecisionUpdateOne {
	if v != nil {
		_u.SetToolExecutionID(*v)
	}
	return _u
}

// ClearToolExecutionID clears the value of the "tool_execution_id" field.
func (_u *PolicyDecisionUpdateOne) ClearToolExecutionID() *PolicyDecisionUpdateOne {
	_u.mutation.ClearToolExecutionID()
	return _u
}

// Mutation returns the PolicyDecisionMutation object of the builder.
func (_u *PolicyDecisionUpdateOne) Mutation() *PolicyDecisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PolicyDecisionUpdate builder.
func (_u *PolicyDecisionUpdateOne) Where(ps ...predicate.PolicyDecision) *PolicyDecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PolicyDecisionUpdateOne) Select(field string, fields ...string) *PolicyDecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PolicyDecision entity.
func (_u *PolicyDecisionUpdateOne) Save(ctx context.Context) (*PolicyDecision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolicyDecisionUpdateOne) SaveX(ctx context.Context) *PolicyDecision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PolicyDecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolicyDecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolicyDecisionUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := policydecision.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "PolicyDecision.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *PolicyDecisionUpdateOne) sqlSave(ctx context.Context) (_node *PolicyDecision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(policydecision.Table, policydecision.Columns, sqlgraph.NewFieldSpec(policydecision.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PolicyDecision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, policydecision.FieldID)
		for _, f := range fields {
			if !policydecision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != policydecision.FieldID {
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
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(policydecision.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(policydecision.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(policydecision.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(policydecision.FieldReasonCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntentSummary(); ok {
		_spec.SetField(policydecision.FieldIntentSummary, field.TypeString, value)
	}
	if _u.mutation.IntentSummaryCleared() {
		_spec.ClearField(policydecision.FieldIntentSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(policydecision.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ToolExecutionID(); ok {
		_spec.SetField(policydecision.FieldToolExecutionID, field.TypeString, value)
	}
	if _u.mutation.ToolExecutionIDCleared() {
		_spec.ClearField(policydecision.FieldToolExecutionID, field.TypeString)
	}
	_node = &PolicyDecision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{policydecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
