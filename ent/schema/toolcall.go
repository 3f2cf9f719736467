package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolCall holds the schema definition for the ToolCall entity.
// One audit row per runtime attempt — including attempts that never
// reached a handler (unknown tool, validation failure, policy denial,
// guard rejection). The executed flag separates rows whose handler
// actually ran; guard queries count only those.
type ToolCall struct {
	ent.Schema
}

// Fields of the ToolCall.
func (ToolCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("call_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("tool_name").
			Immutable(),
		field.JSON("args", map[string]interface{}{}).
			Optional().
			Comment("Redacted argument snapshot"),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Redacted result snapshot"),
		field.Enum("status").
			Values("success", "error", "needs_confirmation"),
		field.String("error_code").
			Optional().
			Nillable(),
		field.Bool("executed").
			Default(false),
		field.Int64("latency_ms").
			Default(0),
		field.String("tool_execution_id").
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

// Indexes of the ToolCall.
func (ToolCall) Indexes() []ent.Index {
	return []ent.Index{
		// Guard queries scan (session, tool) within a time window
		index.Fields("session_id", "tool_name", "created_at"),
		index.Fields("session_id", "created_at"),
	}
}
