// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/valet-assistant/valet/ent/memory"
	"github.com/valet-assistant/valet/ent/memoryevent"
)

// MemoryEvent is the model entity for the MemoryEvent schema.
type MemoryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// MemoryID holds the value of the "memory_id" field.
	MemoryID string `json:"memory_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType memoryevent.EventType `json:"event_type,omitempty"`
	// Who triggered it: user, agent, api or system
	Actor string `json:"actor,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason *string `json:"reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MemoryEventQuery when eager-loading is set.
	Edges        MemoryEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MemoryEventEdges holds the relations/edges for other nodes in the graph.
type MemoryEventEdges struct {
	// Memory holds the value of the memory edge.
	Memory *Memory `json:"memory,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MemoryOrErr returns the Memory value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MemoryEventEdges) MemoryOrErr() (*Memory, error) {
	if e.Memory != nil {
		return e.Memory, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: memory.Label}
	}
	return nil, &NotLoadedError{edge: "memory"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MemoryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case memoryevent.FieldID, memoryevent.FieldUserID, memoryevent.FieldMemoryID, memoryevent.FieldEventType, memoryevent.FieldActor, memoryevent.FieldReason:
			values[i] = new(sql.NullString)
		case memoryevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MemoryEvent fields.
func (_m *MemoryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case memoryevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case memoryevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case memoryevent.FieldMemoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field memory_id", values[i])
			} else if value.Valid {
				_m.MemoryID = value.String
			}
		case memoryevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = memoryevent.EventType(value.String)
			}
		case memoryevent.FieldActor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor", values[i])
			} else if value.Valid {
				_m.Actor = value.String
			}
		case memoryevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = new(string)
				*_m.Reason = value.String
			}
		case memoryevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MemoryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MemoryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMemory queries the "memory" edge of the MemoryEvent entity.
func (_m *MemoryEvent) QueryMemory() *MemoryQuery {
	return NewMemoryEventClient(_m.config).QueryMemory(_m)
}

// Update returns a builder for updating this MemoryEvent.
// Note that you need to call MemoryEvent.Unwrap() before calling this method if this MemoryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MemoryEvent) Update() *MemoryEventUpdateOne {
	return NewMemoryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MemoryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MemoryEvent) Unwrap() *MemoryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MemoryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MemoryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MemoryEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("memory_id=")
	builder.WriteString(_m.MemoryID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	builder.WriteString("actor=")
	builder.WriteString(_m.Actor)
	builder.WriteString(", ")
	if v := _m.Reason; v != nil {
		builder.WriteString("reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MemoryEvents is a parsable slice of MemoryEvent.
type MemoryEvents []*MemoryEvent
