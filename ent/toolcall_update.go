// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/valet-assistant/valet/ent/predicate"
	"github.com/valet-assistant/valet/ent/toolcall"
)

// ToolCallUpdate is the builder for updating ToolCall entities.
type ToolCallUpdate struct {
	config
	hooks    []Hook
	mutation *ToolCallMutation
}

// Where appends a list predicates to the ToolCallUpdate builder.
func (_u *ToolCallUpdate) Where(ps ...predicate.ToolCall) *ToolCallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArgs sets the "args" field.
func (_u *ToolCallUpdate) SetArgs(v map[string]interface{}) *ToolCallUpdate {
	_u.mutation.SetArgs(v)
	return _u
}

// ClearArgs clears the value of the "args" field.
func (_u *ToolCallUpdate) ClearArgs() *ToolCallUpdate {
	_u.mutation.ClearArgs()
	return _u
}

// SetResult sets the "result" field.
func (_u *ToolCallUpdate) SetResult(v map[string]interface{}) *ToolCallUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ToolCallUpdate) ClearResult() *ToolCallUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolCallUpdate) SetStatus(v toolcall.Status) *ToolCallUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableStatus(v *toolcall.Status) *ToolCallUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *ToolCallUpdate) SetErrorCode(v string) *ToolCallUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableErrorCode(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *ToolCallUpdate) ClearErrorCode() *ToolCallUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetExecuted sets the "executed" field.
func (_u *ToolCallUpdate) SetExecuted(v bool) *ToolCallUpdate {
	_u.mutation.SetExecuted(v)
	return _u
}

// SetNillableExecuted sets the "executed" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableExecuted(v *bool) *ToolCallUpdate {
	if v != nil {
		_u.SetExecuted(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ToolCallUpdate) SetLatencyMs(v int64) *ToolCallUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableLatencyMs(v *int64) *ToolCallUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ToolCallUpdate) AddLatencyMs(v int64) *ToolCallUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetToolExecutionID sets the "tool_execution_id" field.
func (_u *ToolCallUpdate) SetToolExecutionID(v string) *ToolCallUpdate {
	_u.mutation.SetToolExecutionID(v)
	return _u
}

// SetNillableToolExecutionID sets the "tool_execution_id" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableToolExecutionID(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetToolExecutionID(*v)
	}
	return _u
}

// ClearToolExecutionID clears the value of the "tool_execution_id" field.
func (_u *ToolCallUpdate) ClearToolExecutionID() *ToolCallUpdate {
	_u.mutation.ClearToolExecutionID()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *ToolCallUpdate) SetTraceID(v string) *ToolCallUpdate {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableTraceID(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *ToolCallUpdate) ClearTraceID() *ToolCallUpdate {
	_u.mutation.ClearTraceID()
	return _u
}

// Mutation returns the ToolCallMutation object of the builder.
func (_u *ToolCallUpdate) Mutation() *ToolCallMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolCallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolCallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolCallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolCallUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolCallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolcall.Table, toolcall.Columns, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Args(); ok {
		_spec.SetField(toolcall.FieldArgs, field.TypeJSON, value)
	}
	if _u.mutation.ArgsCleared() {
		_spec.ClearField(toolcall.FieldArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(toolcall.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(toolcall.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(toolcall.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(toolcall.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.Executed(); ok {
		_spec.SetField(toolcall.FieldExecuted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(toolcall.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(toolcall.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ToolExecutionID(); ok {
		_spec.SetField(toolcall.FieldToolExecutionID, field.TypeString, value)
	}
	if _u.mutation.ToolExecutionIDCleared() {
		_spec.ClearField(toolcall.FieldToolExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(toolcall.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(toolcall.FieldTraceID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolCallUpdateOne is the builder for updating a single ToolCall entity.
type ToolCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolCallMutation
}

// SetArgs sets the "args" field.
func (_u *ToolCallUpdateOne) SetArgs(v map[string]interface{}) *ToolCallUpdateOne {
	_u.mutation.SetArgs(v)
	return _u
}

// ClearArgs clears the value of the "args" field.
func (_u *ToolCallUpdateOne) ClearArgs() *ToolCallUpdateOne {
	_u.mutation.ClearArgs()
	return _u
}

// SetResult sets the "result" field.
func (_u *ToolCallUpdateOne) SetResult(v map[string]interface{}) *ToolCallUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ToolCallUpdateOne) ClearResult() *ToolCallUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolCallUpdateOne) SetStatus(v toolcall.Status) *ToolCallUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableStatus(v *toolcall.Status) *ToolCallUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *ToolCallUpdateOne) SetErrorCode(v string) *ToolCallUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableErrorCode(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *ToolCallUpdateOne) ClearErrorCode() *ToolCallUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetExecuted sets the "executed" field.
func (_u *ToolCallUpdateOne) SetExecuted(v bool) *ToolCallUpdateOne {
	_u.mutation.SetExecuted(v)
	return _u
}

// SetNillableExecuted sets the "executed" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableExecuted(v *bool) *ToolCallUpdateOne {
	if v != nil {
		_u.SetExecuted(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ToolCallUpdateOne) SetLatencyMs(v int64) *ToolCallUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableLatencyMs(v *int64) *ToolCallUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ToolCallUpdateOne) AddLatencyMs(v int64) *ToolCallUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetToolExecutionID sets the "tool_execution_id" field.
func (_u *ToolCallUpdateOne) SetToolExecutionID(v string) *ToolCallUpdateOne {
	_u.mutation.SetToolExecutionID(v)
	return _u
}

// SetNillableToolExecutionID sets the "tool_execution_id" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableToolExecutionID(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetToolExecutionID(*v)
	}
	return _u
}

// ClearToolExecutionID clears the value of the "tool_execution_id" field.
func (_u *ToolCallUpdateOne) ClearToolExecutionID() *ToolCallUpdateOne {
	_u.mutation.ClearToolExecutionID()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *ToolCallUpdateOne) SetTraceID(v string) *ToolCallUpdateOne {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableTraceID(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *ToolCallUpdateOne) ClearTraceID() *ToolCallUpdateOne {
	_u.mutation.ClearTraceID()
	return _u
}

// Mutation returns the ToolCallMutation object of the builder.
func (_u *ToolCallUpdateOne) Mutation() *ToolCallMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolCallUpdate builder.
func (_u *ToolCallUpdateOne) Where(ps ...predicate.ToolCall) *ToolCallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolCallUpdateOne) Select(field string, fields ...string) *ToolCallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolCall entity.
func (_u *ToolCallUpdateOne) Save(ctx context.Context) (*ToolCall, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolCallUpdateOne) SaveX(ctx context.Context) *ToolCall {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolCallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolCallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolCallUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolCallUpdateOne) sqlSave(ctx context.Context) (_node *ToolCall, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolcall.Table, toolcall.Columns, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolcall.FieldID)
		for _, f := range fields {
			if !toolcall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolcall.FieldID {
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
		_spec.SetField(toolcall.FieldArgs, field.TypeJSON, value)
	}
	if _u.mutation.ArgsCleared() {
		_spec.ClearField(toolcall.FieldArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(toolcall.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(toolcall.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(toolcall.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(toolcall.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.Executed(); ok {
		_spec.SetField(toolcall.FieldExecuted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(toolcall.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(toolcall.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ToolExecutionID(); ok {
		_spec.SetField(toolcall.FieldToolExecutionID, field.TypeString, value)
	}
	if _u.mutation.ToolExecutionIDCleared() {
		_spec.ClearField(toolcall.FieldToolExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(toolcall.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(toolcall.FieldTraceID, field.TypeString)
	}
	_node = &ToolCall{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
