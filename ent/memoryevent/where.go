// Code generated by ent, DO NOT EDIT.

package memoryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/valet-assistant/valet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldUserID, v))
}

// MemoryID applies equality check predicate on the "memory_id" field. It's identical to MemoryIDEQ.
func MemoryID(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldMemoryID, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldActor, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldContainsFold(FieldUserID, v))
}

// MemoryIDEQ applies the EQ predicate on the "memory_id" field.
func MemoryIDEQ(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldMemoryID, v))
}

// MemoryIDNEQ applies the NEQ predicate on the "memory_id" field.
func MemoryIDNEQ(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNEQ(FieldMemoryID, v))
}

// MemoryIDIn applies the In predicate on the "memory_id" field.
func MemoryIDIn(vs ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldIn(FieldMemoryID, vs...))
}

// MemoryIDNotIn applies the NotIn predicate on the "memory_id" field.
func MemoryIDNotIn(vs ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNotIn(FieldMemoryID, vs...))
}

// MemoryIDGT applies the GT predicate on the "memory_id" field.
func MemoryIDGT(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGT(FieldMemoryID, v))
}

// MemoryIDGTE applies the GTE predicate on the "memory_id" field.
func MemoryIDGTE(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGTE(FieldMemoryID, v))
}

// MemoryIDLT applies the LT predicate on the "memory_id" field.
func MemoryIDLT(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLT(FieldMemoryID, v))
}

// MemoryIDLTE applies the LTE predicate on the "memory_id" field.
func MemoryIDLTE(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLTE(FieldMemoryID, v))
}

// MemoryIDContains applies the Contains predicate on the "memory_id" field.
func MemoryIDContains(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldContains(FieldMemoryID, v))
}

// MemoryIDHasPrefix applies the HasPrefix predicate on the "memory_id" field.
func MemoryIDHasPrefix(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldHasPrefix(FieldMemoryID, v))
}

// MemoryIDHasSuffix applies the HasSuffix predicate on the "memory_id" field.
func MemoryIDHasSuffix(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldHasSuffix(FieldMemoryID, v))
}

// MemoryIDEqualFold applies the EqualFold predicate on the "memory_id" field.
func MemoryIDEqualFold(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEqualFold(FieldMemoryID, v))
}

// MemoryIDContainsFold applies the ContainsFold predicate on the "memory_id" field.
func MemoryIDContainsFold(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldContainsFold(FieldMemoryID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldHasSuffix(FieldActor, v))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldContainsFold(FieldActor, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMemory applies the HasEdge predicate on the "memory" edge.
func HasMemory() predicate.MemoryEvent {
	return predicate.MemoryEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MemoryTable, MemoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMemoryWith applies the HasEdge predicate on the "memory" edge with a given conditions (other predicates).
func HasMemoryWith(preds ...predicate.Memory) predicate.MemoryEvent {
	return predicate.MemoryEvent(func(s *sql.Selector) {
		step := newMemoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MemoryEvent) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MemoryEvent) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MemoryEvent) predicate.MemoryEvent {
	return predicate.MemoryEvent(sql.NotPredicates(p))
}
