// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/valet-assistant/valet/ent/agentmessage"
	"github.com/valet-assistant/valet/ent/session"
)

// AgentMessageCreate is the builder for creating a AgentMessage entity.
type AgentMessageCreate struct {
	config
	mutation *AgentMessageMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AgentMessageCreate) SetSessionID(v string) *AgentMessageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AgentMessageCreate) SetUserID(v string) *AgentMessageCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *AgentMessageCreate) SetRole(v agentmessage.Role) *AgentMessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *AgentMessageCreate) SetContent(v string) *AgentMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetModality sets the "modality" field.
func (_c *AgentMessageCreate) SetModality(v agentmessage.Modality) *AgentMessageCreate {
	_c.mutation.SetModality(v)
	return _c
}

// SetNillableModality sets the "modality" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableModality(v *agentmessage.Modality) *AgentMessageCreate {
	if v != nil {
		_c.SetModality(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentMessageCreate) SetStatus(v agentmessage.Status) *AgentMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableStatus(v *agentmessage.Status) *AgentMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *AgentMessageCreate) SetIdempotencyKey(v string) *AgentMessageCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableIdempotencyKey(v *string) *AgentMessageCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *AgentMessageCreate) SetTraceID(v string) *AgentMessageCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableTraceID(v *string) *AgentMessageCreate {
	if v != nil {
		_c.SetTraceID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AgentMessageCreate) SetMetadata(v map[string]interface{}) *AgentMessageCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentMessageCreate) SetCreatedAt(v time.Time) *AgentMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableCreatedAt(v *time.Time) *AgentMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentMessageCreate) SetUpdatedAt(v time.Time) *AgentMessageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableUpdatedAt(v *time.Time) *AgentMessageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentMessageCreate) SetID(v string) *AgentMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *AgentMessageCreate) SetSession(v *Session) *AgentMessageCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the AgentMessageMutation object of the builder.
func (_c *AgentMessageCreate) Mutation() *AgentMessageMutation {
	return _c.mutation
}

// Save creates the AgentMessage in the database.
func (_c *AgentMessageCreate) Save(ctx context.Context) (*AgentMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentMessageCreate) SaveX(ctx context.Context) *AgentMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentMessageCreate) defaults() {
	if _, ok := _c.mutation.Modality(); !ok {
		v := agentmessage.DefaultModality
		_c.mutation.SetModality(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := agentmessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentmessage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentMessageCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AgentMessage.session_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AgentMessage.user_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "AgentMessage.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := agentmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentMessage.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "AgentMessage.content"`)}
	}
	if _, ok := _c.mutation.Modality(); !ok {
		return &ValidationError{Name: "modality", err: errors.New(`ent: missing required field "AgentMessage.modality"`)}
	}
	if v, ok := _c.mutation.Modality(); ok {
		if err := agentmessage.ModalityValidator(v); err != nil {
			return &ValidationError{Name: "modality", err: fmt.Errorf(`ent: validator failed for field "AgentMessage.modality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentMessage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentMessage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentMessage.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "AgentMessage.session"`)}
	}
	return nil
}

func (_c *AgentMessageCreate) sqlSave(ctx context.Context) (*AgentMessage, error) {
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
			return nil, fmt.Errorf("unexpected AgentMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentMessageCreate) createSpec() (*AgentMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentmessage.Table, sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(agentmessage.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(agentmessage.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(agentmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Modality(); ok {
		_spec.SetField(agentmessage.FieldModality, field.TypeEnum, value)
		_node.Modality = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentmessage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(agentmessage.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = &value
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(agentmessage.FieldTraceID, field.TypeString, value)
		_node.TraceID = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(agentmessage.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentmessage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentmessage.SessionTable,
			Columns: []string{agentmessage.SessionColumn},
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
	return _node, _spec
}

// AgentMessageCreateBulk is the builder for creating many AgentMessage entities in bulk.
type AgentMessageCreateBulk struct {
	config
	err      error
	builders []*AgentMessageCreate
}

// Save creates the AgentMessage entities in the database.
func (_c *AgentMessageCreateBulk) Save(ctx context.Context) ([]*AgentMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMessageMutation)
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
func (_c *AgentMessageCreateBulk) SaveX(ctx context.Context) []*AgentMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
