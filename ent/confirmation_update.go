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
	"github.com/valet-assistant/valet/ent/confirmation"
	"github.com/valet-assistant/valet/ent/predicate"
)

// ConfirmationUpdate is the builder for updating Confirmation entities.
type ConfirmationUpdate struct {
	config
	hooks    []Hook
	mutation *ConfirmationMutation
}

// Where appends a list predicates to the ConfirmationUpdate builder.
func (_u *ConfirmationUpdate) Where(ps ...predicate.Confirmation) *ConfirmationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArgs sets the "args" field.
func (_u *ConfirmationUpdate) SetArgs(v map[string]interface{}) *ConfirmationUpdate {
	_u.mutation.SetArgs(v)
	return _u
}

// ClearArgs clears the value of the "args" field.
func (_u *ConfirmationUpdate) ClearArgs() *ConfirmationUpdate {
	_u.mutation.ClearArgs()
	return _u
}

// SetDecisionType sets the "decision_type" field.
func (_u *ConfirmationUpdate) SetDecisionType(v string) *ConfirmationUpdate {
	_u.mutation.SetDecisionType(v)
	return _u
}

// SetNillableDecisionType sets the "decision_type" field if the given value is not nil.
func (_u *ConfirmationUpdate) SetNillableDecisionType(v *string) *ConfirmationUpdate {
	if v != nil {
		_u.SetDecisionType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConfirmationUpdate) SetStatus(v confirmation.Status) *ConfirmationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConfirmationUpdate) SetNillableStatus(v *confirmation.Status) *ConfirmationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ConfirmationUpdate) SetPrompt(v string) *ConfirmationUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ConfirmationUpdate) SetNillablePrompt(v *string) *ConfirmationUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetRequiredPhrase sets the "required_phrase" field.
func (_u *ConfirmationUpdate) SetRequiredPhrase(v string) *ConfirmationUpdate {
	_u.mutation.SetRequiredPhrase(v)
	return _u
}

// SetNillableRequiredPhrase sets the "required_phrase" field if the given value is not nil.
func (_u *ConfirmationUpdate) SetNillableRequiredPhrase(v *string) *ConfirmationUpdate {
	if v != nil {
		_u.SetRequiredPhrase(*v)
	}
	return _u
}

// ClearRequiredPhrase clears the value of the "required_phrase" field.
func (_u *ConfirmationUpdate) ClearRequiredPhrase() *ConfirmationUpdate {
	_u.mutation.ClearRequiredPhrase()
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *ConfirmationUpdate) SetRiskScore(v int) *ConfirmationUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *ConfirmationUpdate) SetNillableRiskScore(v *int) *ConfirmationUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *ConfirmationUpdate) AddRiskScore(v int) *ConfirmationUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *ConfirmationUpdate) SetReasonCode(v string) *ConfirmationUpdate {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *ConfirmationUpdate) SetNillableReasonCode(v *string) *ConfirmationUpdate {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ConfirmationUpdate) SetExpiresAt(v time.Time) *ConfirmationUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ConfirmationUpdate) SetNillableExpiresAt(v *time.Time) *ConfirmationUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ConfirmationUpdate) SetResolvedAt(v time.Time) *ConfirmationUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ConfirmationUpdate) SetNillableResolvedAt(v *time.Time) *ConfirmationUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ConfirmationUpdate) ClearResolvedAt() *ConfirmationUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *ConfirmationUpdate) SetTraceID(v string) *ConfirmationUpdate {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *ConfirmationUpdate) SetNillableTraceID(v *string) *ConfirmationUpdate {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *ConfirmationUpdate) ClearTraceID() *ConfirmationUpdate {
	_u.mutation.ClearTraceID()
	return _u
}

// Mutation returns the ConfirmationMutation object of the builder.
func (_u *ConfirmationUpdate) Mutation() *ConfirmationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConfirmationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfirmationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConfirmationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfirmationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfirmationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := confirmation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Confirmation.status": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Confirmation.execution"`)
	}
	return nil
}

func (_u *ConfirmationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(confirmation.Table, confirmation.Columns, sqlgraph.NewFieldSpec(confirmation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Args(); ok {
		_spec.SetField(confirmation.FieldArgs, field.TypeJSON, value)
	}
	if _u.mutation.ArgsCleared() {
		_spec.ClearField(confirmation.FieldArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.DecisionType(); ok {
		_spec.SetField(confirmation.FieldDecisionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(confirmation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(confirmation.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequiredPhrase(); ok {
		_spec.SetField(confirmation.FieldRequiredPhrase, field.TypeString, value)
	}
	if _u.mutation.RequiredPhraseCleared() {
		_spec.ClearField(confirmation.FieldRequiredPhrase, field.TypeString)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(confirmation.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(confirmation.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(confirmation.FieldReasonCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(confirmation.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(confirmation.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(confirmation.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(confirmation.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(confirmation.FieldTraceID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{confirmation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConfirmationUpdateOne is the builder for updating a single Confirmation entity.
type ConfirmationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConfirmationMutation
}

// SetArgs sets the "args" field.
func (_u *ConfirmationUpdateOne) SetArgs(v map[string]interface{}) *ConfirmationUpdateOne {
	_u.mutation.SetArgs(v)
	return _u
}

// ClearArgs clears the value of the "args" field.
func (_u *ConfirmationUpdateOne) ClearArgs() *ConfirmationUpdateOne {
	_u.mutation.ClearArgs()
	return _u
}

// SetDecisionType sets the "decision_type" field.
func (_u *ConfirmationUpdateOne) SetDecisionType(v string) *ConfirmationUpdateOne {
	_u.mutation.SetDecisionType(v)
	return _u
}

// SetNillableDecisionType sets the "decision_type" field if the given value is not nil.
func (_u *ConfirmationUpdateOne) SetNillableDecisionType(v *string) *ConfirmationUpdateOne {
	if v != nil {
		_u.SetDecisionType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConfirmationUpdateOne) SetStatus(v confirmation.Status) *ConfirmationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConfirmationUpdateOne) SetNillableStatus(v *confirmation.Status) *ConfirmationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ConfirmationUpdateOne) SetPrompt(v string) *ConfirmationUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ConfirmationUpdateOne) SetNillablePrompt(v *string) *ConfirmationUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetRequiredPhrase sets the "required_phrase" field.
func (_u *ConfirmationUpdateOne) SetRequiredPhrase(v string) *ConfirmationUpdateOne {
	_u.mutation.SetRequiredPhrase(v)
	return _u
}

// SetNillableRequiredPhrase sets the "required_phrase" field if the given value is not nil.
func (_u *ConfirmationUpdateOne) SetNillableRequiredPhrase(v *string) *ConfirmationUpdateOne {
	if v != nil {
		_u.SetRequiredPhrase(*v)
	}
	return _u
}

// ClearRequiredPhrase clears the value of the "required_phrase" field.
func (_u *ConfirmationUpdateOne) ClearRequiredPhrase() *ConfirmationUpdateOne {
	_u.mutation.ClearRequiredPhrase()
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *ConfirmationUpdateOne) SetRiskScore(v int) *ConfirmationUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *ConfirmationUpdateOne) SetNillableRiskScore(v *int) *ConfirmationUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *ConfirmationUpdateOne) AddRiskScore(v int) *ConfirmationUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *ConfirmationUpdateOne) SetReasonCode(v string) *ConfirmationUpdateOne {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *ConfirmationUpdateOne) SetNillableReasonCode(v *string) *ConfirmationUpdateOne {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ConfirmationUpdateOne) SetExpiresAt(v time.Time) *ConfirmationUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ConfirmationUpdateOne) SetNillableExpiresAt(v *time.Time) *ConfirmationUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ConfirmationUpdateOne) SetResolvedAt(v time.Time) *ConfirmationUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ConfirmationUpdateOne) SetNillableResolvedAt(v *time.Time) *ConfirmationUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ConfirmationUpdateOne) ClearResolvedAt() *ConfirmationUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *ConfirmationUpdateOne) SetTraceID(v string) *ConfirmationUpdateOne {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *ConfirmationUpdateOne) SetNillableTraceID(v *string) *ConfirmationUpdateOne {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *ConfirmationUpdateOne) ClearTraceID() *ConfirmationUpdateOne {
	_u.mutation.ClearTraceID()
	return _u
}

// Mutation returns the ConfirmationMutation object of the builder.
func (_u *ConfirmationUpdateOne) Mutation() *ConfirmationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConfirmationUpdate builder.
func (_u *ConfirmationUpdateOne) Where(ps ...predicate.Confirmation) *ConfirmationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConfirmationUpdateOne) Select(field string, fields ...string) *ConfirmationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Confirmation entity.
func (_u *ConfirmationUpdateOne) Save(ctx context.Context) (*Confirmation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfirmationUpdateOne) SaveX(ctx context.Context) *Confirmation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConfirmationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfirmationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfirmationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := confirmation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Confirmation.status": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Confirmation.execution"`)
	}
	return nil
}

func (_u *ConfirmationUpdateOne) sqlSave(ctx context.Context) (_node *Confirmation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(confirmation.Table, confirmation.Columns, sqlgraph.NewFieldSpec(confirmation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Confirmation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, confirmation.FieldID)
		for _, f := range fields {
			if !confirmation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != confirmation.FieldID {
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
	if value, ok := _u.mutation.Args(); ok {
		_spec.SetField(confirmation.FieldArgs, field.TypeJSON, value)
	}
	if _u.mutation.ArgsCleared() {
		_spec.ClearField(confirmation.FieldArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.DecisionType(); ok {
		_spec.SetField(confirmation.FieldDecisionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(confirmation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(confirmation.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequiredPhrase(); ok {
		_spec.SetField(confirmation.FieldRequiredPhrase, field.TypeString, value)
	}
	if _u.mutation.RequiredPhraseCleared() {
		_spec.ClearField(confirmation.FieldRequiredPhrase, field.TypeString)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(confirmation.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(confirmation.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(confirmation.FieldReasonCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(confirmation.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(confirmation.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(confirmation.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(confirmation.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(confirmation.FieldTraceID, field.TypeString)
	}
	_node = &Confirmation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{confirmation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
