package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentMessage holds the schema definition for the AgentMessage entity.
// One row per conversation message; user turns carry an idempotency key so
// a retried submission maps onto the same row.
type AgentMessage struct {
	ent.Schema
}

// Fields of the AgentMessage.
func (AgentMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant", "system"),
		field.Text("content"),
		field.Enum("modality").
			Values("text", "voice").
			Default("text"),
		field.Enum("status").
			Values("created", "processing", "completed", "failed").
			Default("completed"),
		field.String("idempotency_key").
			Optional().
			Nillable().
			Comment("Deduplicates retried user turns within a session"),
		field.String("trace_id").
			Optional().
			Nillable().
			Comment("Correlates a user message with its assistant reply"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentMessage.
func (AgentMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentMessage.
func (AgentMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Transcript reads: ordered by created_at, ties broken by id
		index.Fields("session_id", "created_at"),
		index.Fields("trace_id"),

		// The partial unique index on (session_id, idempotency_key)
		// WHERE idempotency_key IS NOT NULL is created via migration SQL —
		// see pkg/database/migrations.go.
	}
}
