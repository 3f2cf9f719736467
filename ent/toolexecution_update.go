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
	"github.com/valet-assistant/valet/ent/toolexecution"
)

// ToolExecutionUpdate is the builder for updating ToolExecution entities.
type ToolExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ToolExecutionMutation
}

// Where appends a list predicates to the ToolExecutionUpdate builder.
func (_u *ToolExecutionUpdate) Where(ps ...predicate.ToolExecution) *ToolExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInput sets the "input" field.
func (_u *ToolExecutionUpdate) SetInput(v map[string]interface{}) *ToolExecutionUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *ToolExecutionUpdate) ClearInput() *ToolExecutionUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolExecutionUpdate) SetStatus(v toolexecution.Status) *ToolExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableStatus(v *toolexecution.Status) *ToolExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ToolExecutionUpdate) SetResult(v map[string]interface{}) *ToolExecutionUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ToolExecutionUpdate) ClearResult() *ToolExecutionUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *ToolExecutionUpdate) SetError(v string) *ToolExecutionUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableError(v *string) *ToolExecutionUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ToolExecutionUpdate) ClearError() *ToolExecutionUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *ToolExecutionUpdate) SetErrorCode(v string) *ToolExecutionUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableErrorCode(v *string) *ToolExecutionUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *ToolExecutionUpdate) ClearErrorCode() *ToolExecutionUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *ToolExecutionUpdate) SetTraceID(v string) *ToolExecutionUpdate {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableTraceID(v *string) *ToolExecutionUpdate {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *ToolExecutionUpdate) ClearTraceID() *ToolExecutionUpdate {
	_u.mutation.ClearTraceID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ToolExecutionUpdate) SetStartedAt(v time.Time) *ToolExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableStartedAt(v *time.Time) *ToolExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ToolExecutionUpdate) ClearStartedAt() *ToolExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ToolExecutionUpdate) SetFinishedAt(v time.Time) *ToolExecutionUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ToolExecutionUpdate) SetNillableFinishedAt(v *time.Time) *ToolExecutionUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ToolExecutionUpdate) ClearFinishedAt() *ToolExecutionUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddConfirmationIDs adds the "confirmations" edge to the Confirmation entity by IDs.
func (_u *ToolExecutionUpdate) AddConfirmationIDs(ids ...string) *ToolExecutionUpdate {
	_u.mutation.AddConfirmationIDs(ids...)
	return _u
}

// AddConfirmations adds the "confirmations" edges to the Confirmation entity.
func (_u *ToolExecutionUpdate) AddConfirmations(v ...*Confirmation) *ToolExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConfirmationIDs(ids...)
}

// Mutation returns the ToolExecutionMutation object of the builder.
func (_u *ToolExecutionUpdate) Mutation() *ToolExecutionMutation {
	return _u.mutation
}

// ClearConfirmations clears all "confirmations" edges to the Confirmation entity.
func (_u *ToolExecutionUpdate) ClearConfirmations() *ToolExecutionUpdate {
	_u.mutation.ClearConfirmations()
	return _u
}

// RemoveConfirmationIDs removes the "confirmations" edge to Confirmation entities by IDs.
func (_u *ToolExecutionUpdate) RemoveConfirmationIDs(ids ...string) *ToolExecutionUpdate {
	_u.mutation.RemoveConfirmationIDs(ids...)
	return _u
}

// RemoveConfirmations removes "confirmations" edges to Confirmation entities.
func (_u *ToolExecutionUpdate) RemoveConfirmations(v ...*Confirmation) *ToolExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConfirmationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolExecution.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolExecution.session"`)
	}
	return nil
}

func (_u *ToolExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolexecution.Table, toolexecution.Columns, sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(toolexecution.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(toolexecution.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(toolexecution.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(toolexecution.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(toolexecution.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(toolexecution.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(toolexecution.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(toolexecution.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(toolexecution.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(toolexecution.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(toolexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(toolexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(toolexecution.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(toolexecution.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.ConfirmationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConfirmationsIDs(); len(nodes) > 0 && !_u.mutation.ConfirmationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConfirmationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolExecutionUpdateOne is the builder for updating a single ToolExecution entity.
type ToolExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolExecutionMutation
}

// SetInput sets the "input" field.
func (_u *ToolExecutionUpdateOne) SetInput(v map[string]interface{}) *ToolExecutionUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *ToolExecutionUpdateOne) ClearInput() *ToolExecutionUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolExecutionUpdateOne) SetStatus(v toolexecution.Status) *ToolExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableStatus(v *toolexecution.Status) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ToolExecutionUpdateOne) SetResult(v map[string]interface{}) *ToolExecutionUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ToolExecutionUpdateOne) ClearResult() *ToolExecutionUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *ToolExecutionUpdateOne) SetError(v string) *ToolExecutionUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableError(v *string) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ToolExecutionUpdateOne) ClearError() *ToolExecutionUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *ToolExecutionUpdateOne) SetErrorCode(v string) *ToolExecutionUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableErrorCode(v *string) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *ToolExecutionUpdateOne) ClearErrorCode() *ToolExecutionUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *ToolExecutionUpdateOne) SetTraceID(v string) *ToolExecutionUpdateOne {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableTraceID(v *string) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *ToolExecutionUpdateOne) ClearTraceID() *ToolExecutionUpdateOne {
	_u.mutation.ClearTraceID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ToolExecutionUpdateOne) SetStartedAt(v time.Time) *ToolExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ToolExecutionUpdateOne) ClearStartedAt() *ToolExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ToolExecutionUpdateOne) SetFinishedAt(v time.Time) *ToolExecutionUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ToolExecutionUpdateOne) SetNillableFinishedAt(v *time.Time) *ToolExecutionUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ToolExecutionUpdateOne) ClearFinishedAt() *ToolExecutionUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddConfirmationIDs adds the "confirmations" edge to the Confirmation entity by IDs.
func (_u *ToolExecutionUpdateOne) AddConfirmationIDs(ids ...string) *ToolExecutionUpdateOne {
	_u.mutation.AddConfirmationIDs(ids...)
	return _u
}

// AddConfirmations adds the "confirmations" edges to the Confirmation entity.
func (_u *ToolExecutionUpdateOne) AddConfirmations(v ...*Confirmation) *ToolExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConfirmationIDs(ids...)
}

// Mutation returns the ToolExecutionMutation object of the builder.
func (_u *ToolExecutionUpdateOne) Mutation() *ToolExecutionMutation {
	return _u.mutation
}

// ClearConfirmations clears all "confirmations" edges to the Confirmation entity.
func (_u *ToolExecutionUpdateOne) ClearConfirmations() *ToolExecutionUpdateOne {
	_u.mutation.ClearConfirmations()
	return _u
}

// RemoveConfirmationIDs removes the "confirmations" edge to Confirmation entities by IDs.
func (_u *ToolExecutionUpdateOne) RemoveConfirmationIDs(ids ...string) *ToolExecutionUpdateOne {
	_u.mutation.RemoveConfirmationIDs(ids...)
	return _u
}

// RemoveConfirmations removes "confirmations" edges to Confirmation entities.
func (_u *ToolExecutionUpdateOne) RemoveConfirmations(v ...*Confirmation) *ToolExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConfirmationIDs(ids...)
}

// Where appends a list predicates to the ToolExecutionUpdate builder.
func (_u *ToolExecutionUpdateOne) Where(ps ...predicate.ToolExecution) *ToolExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolExecutionUpdateOne) Select(field string, fields ...string) *ToolExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolExecution entity.
func (_u *ToolExecutionUpdateOne) Save(ctx context.Context) (*ToolExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolExecutionUpdateOne) SaveX(ctx context.Context) *ToolExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolExecution.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolExecution.session"`)
	}
	return nil
}

func (_u *ToolExecutionUpdateOne) sqlSave(ctx context.Context) (_node *ToolExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolexecution.Table, toolexecution.Columns, sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolexecution.FieldID)
		for _, f := range fields {
			if !toolexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolexecution.FieldID {
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
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(toolexecution.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(toolexecution.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(toolexecution.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(toolexecution.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(toolexecution.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(toolexecution.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(toolexecution.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(toolexecution.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(toolexecution.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(toolexecution.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(toolexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(toolexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(toolexecution.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(toolexecution.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.ConfirmationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConfirmationsIDs(); len(nodes) > 0 && !_u.mutation.ConfirmationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConfirmationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ToolExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
