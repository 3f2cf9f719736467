// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentMessage is the predicate function for agentmessage builders.
type AgentMessage func(*sql.Selector)

// Confirmation is the predicate function for confirmation builders.
type Confirmation func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Memory is the predicate function for memory builders.
type Memory func(*sql.Selector)

// MemoryEvent is the predicate function for memoryevent builders.
type MemoryEvent func(*sql.Selector)

// PolicyDecision is the predicate function for policydecision builders.
type PolicyDecision func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// ToolCall is the predicate function for toolcall builders.
type ToolCall func(*sql.Selector)

// ToolExecution is the predicate function for toolexecution builders.
type ToolExecution func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
