package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("email").
			Optional().
			Nillable(),
		field.String("display_name").
			Optional().
			Nillable(),
		field.JSON("scopes", []string{}).
			Comment("Capability tokens, e.g. tool.email.send"),
		field.JSON("settings", map[string]interface{}{}).
			Optional(),
		field.Bool("is_superuser").
			Default(false),
		field.Bool("is_active").
			Default(true),
		field.String("api_key_hash").
			Optional().
			Nillable().
			Comment("SHA-256 of the API key; key itself is never stored"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sessions", Session.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("memories", Memory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		// Lookup by API key hash on every authenticated request.
		// Uniqueness (WHERE api_key_hash IS NOT NULL) is enforced via
		// migration SQL — see pkg/database/migrations.go.
		index.Fields("api_key_hash"),
		index.Fields("is_active"),
	}
}
