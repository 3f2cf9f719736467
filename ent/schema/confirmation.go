package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Confirmation holds the schema definition for the Confirmation entity.
// A confirmation gates one tool execution behind explicit user approval.
// At most one PENDING confirmation exists per session; creating a new one
// cancels the rest.
type Confirmation struct {
	ent.Schema
}

// Fields of the Confirmation.
func (Confirmation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("confirmation_id").
			Unique().
			Immutable(),
		field.String("tool_execution_id").
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("tool_name").
			Immutable(),
		field.JSON("args", map[string]interface{}{}).
			Optional().
			Comment("Redacted argument snapshot the user is approving"),
		field.String("decision_type").
			Comment("Policy decision that required this confirmation"),
		field.Enum("status").
			Values("pending", "accepted", "rejected", "expired", "cancelled", "consumed").
			Default("pending"),
		field.Text("prompt"),
		field.String("required_phrase").
			Optional().
			Nillable().
			Comment("Exact phrase the user must say; escalations only"),
		field.Int("risk_score"),
		field.String("reason_code"),
		field.Time("expires_at"),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.String("trace_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Confirmation.
func (Confirmation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", ToolExecution.Type).
			Ref("confirmations").
			Field("tool_execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Confirmation.
func (Confirmation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "status"),
		index.Fields("user_id"),

		// Partial index for the expiry sweep
		index.Fields("expires_at").
			Annotations(entsql.IndexWhere("status = 'pending'")),
	}
}
