package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// A session is one conversation surface (text or voice) owned by a user.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("modality").
			Values("text", "voice").
			Default("text"),
		field.JSON("scopes_override", []string{}).
			Optional().
			Comment("When set, replaces the user's scopes for this session"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_activity_at").
			Default(time.Now),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("revoked_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("sessions").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", AgentMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("executions", ToolExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "last_activity_at"),

		// Partial index for sweeping idle sessions
		index.Fields("last_activity_at").
			Annotations(entsql.IndexWhere("revoked_at IS NULL")),
	}
}
