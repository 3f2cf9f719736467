package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolExecution holds the schema definition for the ToolExecution entity.
// One row per logical tool invocation. The (user_id, idempotency_key)
// unique constraint is the exactly-once reservation: retries land on the
// same row and read its terminal state instead of running again.
type ToolExecution struct {
	ent.Schema
}

// Fields of the ToolExecution.
func (ToolExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("tool_name").
			Immutable(),
		field.JSON("input", map[string]interface{}{}).
			Optional().
			Comment("Redacted argument snapshot"),
		field.Enum("status").
			Values("requested", "policy_denied", "awaiting_confirmation",
				"confirmed", "running", "succeeded", "failed", "cancelled", "expired").
			Default("requested").
			Comment("Transitions are compare-and-set serialized; terminal states absorbing"),
		field.String("idempotency_key").
			Immutable(),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Redacted result payload for succeeded executions"),
		field.String("error").
			Optional().
			Nillable().
			Comment("Truncated to 256 chars"),
		field.String("error_code").
			Optional().
			Nillable(),
		field.String("trace_id").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ToolExecution.
func (ToolExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("executions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("confirmations", Confirmation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ToolExecution.
func (ToolExecution) Indexes() []ent.Index {
	return []ent.Index{
		// Exactly-once reservation
		index.Fields("user_id", "idempotency_key").
			Unique(),

		index.Fields("session_id", "created_at"),
		index.Fields("status"),

		// Partial index for the stale-RUNNING sweep
		index.Fields("started_at").
			Annotations(entsql.IndexWhere("status = 'running'")),
	}
}
