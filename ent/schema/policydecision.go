package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PolicyDecision holds the schema definition for the PolicyDecision
// entity. Pure audit trail: decisions are recorded here but never read
// back for control flow.
type PolicyDecision struct {
	ent.Schema
}

// Fields of the PolicyDecision.
func (PolicyDecision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("decision_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("tool_name").
			Immutable(),
		field.String("decision").
			Comment("ALLOW, ALLOW_WITH_CONFIRMATION, ESCALATE or DENY"),
		field.Int("risk_score").
			Comment("0-100"),
		field.String("reason_code"),
		field.Text("intent_summary").
			Optional().
			Nillable(),
		field.Enum("mode").
			Values("enforce", "audit").
			Default("enforce"),
		field.String("tool_execution_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PolicyDecision.
func (PolicyDecision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("tool_name"),
		index.Fields("decision"),
	}
}
