package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryEvent holds the schema definition for the MemoryEvent entity.
// Append-only audit trail of memory lifecycle: rows are inserted, never
// updated or deleted (short of cascading with their memory).
type MemoryEvent struct {
	ent.Schema
}

// Fields of the MemoryEvent.
func (MemoryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("memory_id").
			Immutable(),
		field.Enum("event_type").
			Values("created", "updated", "deleted", "retrieved", "expired"),
		field.String("actor").
			Comment("Who triggered it: user, agent, api or system"),
		field.String("reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MemoryEvent.
func (MemoryEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("memory", Memory.Type).
			Ref("events").
			Field("memory_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MemoryEvent.
func (MemoryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("memory_id", "created_at"),
		index.Fields("user_id", "created_at"),
	}
}
