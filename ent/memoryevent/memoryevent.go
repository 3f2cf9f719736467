// Code generated by ent, DO NOT EDIT.

package memoryevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the memoryevent type in the database.
	Label = "memory_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldMemoryID holds the string denoting the memory_id field in the database.
	FieldMemoryID = "memory_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldActor holds the string denoting the actor field in the database.
	FieldActor = "actor"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMemory holds the string denoting the memory edge name in mutations.
	EdgeMemory = "memory"
	// MemoryFieldID holds the string denoting the ID field of the Memory.
	MemoryFieldID = "memory_id"
	// Table holds the table name of the memoryevent in the database.
	Table = "memory_events"
	// MemoryTable is the table that holds the memory relation/edge.
	MemoryTable = "memory_events"
	// MemoryInverseTable is the table name for the Memory entity.
	// It exists in this package in order to avoid circular dependency with the "memory" package.
	MemoryInverseTable = "memories"
	// MemoryColumn is the table column denoting the memory relation/edge.
	MemoryColumn = "memory_id"
)

// Columns holds all SQL columns for memoryevent fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldMemoryID,
	FieldEventType,
	FieldActor,
	FieldReason,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeCreated   EventType = "created"
	EventTypeUpdated   EventType = "updated"
	EventTypeDeleted   EventType = "deleted"
	EventTypeRetrieved EventType = "retrieved"
	EventTypeExpired   EventType = "expired"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeCreated, EventTypeUpdated, EventTypeDeleted, EventTypeRetrieved, EventTypeExpired:
		return nil
	default:
		return fmt.Errorf("memoryevent: invalid enum value for event_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the MemoryEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByMemoryID orders the results by the memory_id field.
func ByMemoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByActor orders the results by the actor field.
func ByActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActor, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMemoryField orders the results by memory field.
func ByMemoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMemoryStep(), sql.OrderByField(field, opts...))
	}
}
func newMemoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MemoryInverseTable, MemoryFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MemoryTable, MemoryColumn),
	)
}
