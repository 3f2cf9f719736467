package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event is an append-only feed row backing real-time notifications and
// catch-up reads. Rows are written by pkg/events in the same
// transaction as the Postgres NOTIFY; the bigserial id gives clients a
// monotone cursor.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),

		// Empty for global (non-session) events.
		field.String("session_id").
			Optional(),

		field.String("channel").
			NotEmpty(),

		field.JSON("payload", map[string]interface{}{}),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("session_id", "id"),
		index.Fields("created_at"),
	}
}
