// Package events is the ops feed: turn and policy milestones are
// appended to the events table and broadcast over PostgreSQL NOTIFY in
// the same transaction, so a LISTENing process sees exactly the rows
// that committed. Reconnecting consumers catch up through the events
// table (services.EventService) using the bigserial id as a cursor;
// the NOTIFY payload carries that id as db_event_id.
//
// NOTIFY payloads are capped below PostgreSQL's 8000-byte limit. An
// oversized payload is replaced by a small envelope with the routing
// fields and truncated=true; the full payload is always in the table.
package events

// Persistent event types (stored in the events table + NOTIFY).
const (
	// EventTypeTurnCompleted fires once per finished orchestrator turn,
	// whatever the outcome.
	EventTypeTurnCompleted = "turn.completed"

	// Confirmation lifecycle.
	EventTypeConfirmationCreated  = "confirmation.created"
	EventTypeConfirmationResolved = "confirmation.resolved"

	// EventTypePolicyDenied fires when a tool invocation is rejected by
	// policy or a guard.
	EventTypePolicyDenied = "policy.denied"
)

// GlobalEventsChannel carries a transient copy of every published event
// so one LISTEN covers all sessions. Durable rows live on the session
// channel.
const GlobalEventsChannel = "events"

// SessionChannel returns the NOTIFY channel for one session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}
