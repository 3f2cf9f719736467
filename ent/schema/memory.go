package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/pgvector/pgvector-go"
)

// Memory holds the schema definition for the Memory entity.
// Long-lived user facts with a 1536-dim embedding for similarity search.
// Content is redacted before it reaches this table; content_hash backs
// the dedup-on-write behavior.
type Memory struct {
	ent.Schema
}

// Fields of the Memory.
func (Memory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable().
			Comment("Session the memory was captured in, if any"),
		field.Enum("type").
			Values("fact", "preference", "task", "summary",
				"contact", "project", "note", "document").
			Default("fact"),
		field.String("source").
			Default("api").
			Comment("Who wrote it: user, agent, or api"),
		field.Text("content").
			Comment("Redacted before storage"),
		field.String("content_hash").
			Comment("SHA-256 hex of redacted content; dedup key per user"),
		field.Other("embedding", pgvector.Vector{}).
			SchemaType(map[string]string{
				dialect.Postgres: "vector(1536)",
			}),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Bool("is_deleted").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("expires_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Memory.
func (Memory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("memories").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("events", MemoryEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Memory.
func (Memory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "type"),

		// Partial index for the retention sweep
		index.Fields("expires_at").
			Annotations(entsql.IndexWhere("expires_at IS NOT NULL AND NOT is_deleted")),

		// The HNSW index on embedding and the partial unique index on
		// (user_id, content_hash) WHERE NOT is_deleted are created via
		// migration SQL — see pkg/database/migrations.go.
	}
}
