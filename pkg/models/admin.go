package models

import "time"

// SystemStats is the operator-facing rollup returned by the admin stats
// endpoint. Status maps are keyed by the stored enum values.
type SystemStats struct {
	Users                int            `json:"users"`
	Sessions             int            `json:"sessions"`
	ActiveSessions       int            `json:"active_sessions"`
	Messages             int            `json:"messages"`
	ExecutionsByStatus   map[string]int `json:"executions_by_status"`
	DecisionCounts       map[string]int `json:"decision_counts"`
	ToolCallsByStatus    map[string]int `json:"tool_calls_by_status"`
	ActiveMemories       int            `json:"active_memories"`
	PendingConfirmations int            `json:"pending_confirmations"`
}

// SessionSummary is the operator-facing rollup of one session: counters
// plus a redacted tail of the conversation.
type SessionSummary struct {
	SessionID          string               `json:"session_id"`
	UserID             string               `json:"user_id"`
	State              string               `json:"state"`
	Modality           string               `json:"modality"`
	CreatedAt          time.Time            `json:"created_at"`
	LastActivityAt     time.Time            `json:"last_activity_at"`
	MessageCount       int                  `json:"message_count"`
	ToolCallCount      int                  `json:"tool_call_count"`
	ExecutionsByStatus map[string]int       `json:"executions_by_status"`
	Denials            int                  `json:"denials"`
	Pending            *PendingConfirmation `json:"pending_confirmation,omitempty"`
	RecentMessages     []MessagePreview     `json:"recent_messages"`
}
