// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentMessagesColumns holds the columns for the "agent_messages" table.
	AgentMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "modality", Type: field.TypeEnum, Enums: []string{"text", "voice"}, Default: "text"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "processing", "completed", "failed"}, Default: "completed"},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// AgentMessagesTable holds the schema information for the "agent_messages" table.
	AgentMessagesTable = &schema.Table{
		Name:       "agent_messages",
		Columns:    AgentMessagesColumns,
		PrimaryKey: []*schema.Column{AgentMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_messages_sessions_messages",
				Columns:    []*schema.Column{AgentMessagesColumns[11]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentmessage_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentMessagesColumns[11], AgentMessagesColumns[9]},
			},
			{
				Name:    "agentmessage_trace_id",
				Unique:  false,
				Columns: []*schema.Column{AgentMessagesColumns[7]},
			},
		},
	}
	// ConfirmationsColumns holds the columns for the "confirmations" table.
	ConfirmationsColumns = []*schema.Column{
		{Name: "confirmation_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "args", Type: field.TypeJSON, Nullable: true},
		{Name: "decision_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "rejected", "expired", "cancelled", "consumed"}, Default: "pending"},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "required_phrase", Type: field.TypeString, Nullable: true},
		{Name: "risk_score", Type: field.TypeInt},
		{Name: "reason_code", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tool_execution_id", Type: field.TypeString},
	}
	// ConfirmationsTable holds the schema information for the "confirmations" table.
	ConfirmationsTable = &schema.Table{
		Name:       "confirmations",
		Columns:    ConfirmationsColumns,
		PrimaryKey: []*schema.Column{ConfirmationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "confirmations_tool_executions_confirmations",
				Columns:    []*schema.Column{ConfirmationsColumns[15]},
				RefColumns: []*schema.Column{ToolExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "confirmation_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{ConfirmationsColumns[1], ConfirmationsColumns[6]},
			},
			{
				Name:    "confirmation_user_id",
				Unique:  false,
				Columns: []*schema.Column{ConfirmationsColumns[2]},
			},
			{
				Name:    "confirmation_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ConfirmationsColumns[11]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'pending'",
				},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_session_id_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// MemoriesColumns holds the columns for the "memories" table.
	MemoriesColumns = []*schema.Column{
		{Name: "memory_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"fact", "preference", "task", "summary", "contact", "project", "note", "document"}, Default: "fact"},
		{Name: "source", Type: field.TypeString, Default: "api"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "embedding", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "vector(1536)"}},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// MemoriesTable holds the schema information for the "memories" table.
	MemoriesTable = &schema.Table{
		Name:       "memories",
		Columns:    MemoriesColumns,
		PrimaryKey: []*schema.Column{MemoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "memories_users_memories",
				Columns:    []*schema.Column{MemoriesColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "memory_user_id_type",
				Unique:  false,
				Columns: []*schema.Column{MemoriesColumns[12], MemoriesColumns[2]},
			},
			{
				Name:    "memory_expires_at",
				Unique:  false,
				Columns: []*schema.Column{MemoriesColumns[11]},
				Annotation: &entsql.IndexAnnotation{
					Where: "expires_at IS NOT NULL AND NOT is_deleted",
				},
			},
		},
	}
	// MemoryEventsColumns holds the columns for the "memory_events" table.
	MemoryEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"created", "updated", "deleted", "retrieved", "expired"}},
		{Name: "actor", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "memory_id", Type: field.TypeString},
	}
	// MemoryEventsTable holds the schema information for the "memory_events" table.
	MemoryEventsTable = &schema.Table{
		Name:       "memory_events",
		Columns:    MemoryEventsColumns,
		PrimaryKey: []*schema.Column{MemoryEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "memory_events_memories_events",
				Columns:    []*schema.Column{MemoryEventsColumns[6]},
				RefColumns: []*schema.Column{MemoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "memoryevent_memory_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MemoryEventsColumns[6], MemoryEventsColumns[5]},
			},
			{
				Name:    "memoryevent_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MemoryEventsColumns[1], MemoryEventsColumns[5]},
			},
		},
	}
	// PolicyDecisionsColumns holds the columns for the "policy_decisions" table.
	PolicyDecisionsColumns = []*schema.Column{
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "decision", Type: field.TypeString},
		{Name: "risk_score", Type: field.TypeInt},
		{Name: "reason_code", Type: field.TypeString},
		{Name: "intent_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"enforce", "audit"}, Default: "enforce"},
		{Name: "tool_execution_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PolicyDecisionsTable holds the schema information for the "policy_decisions" table.
	PolicyDecisionsTable = &schema.Table{
		Name:       "policy_decisions",
		Columns:    PolicyDecisionsColumns,
		PrimaryKey: []*schema.Column{PolicyDecisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "policydecision_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PolicyDecisionsColumns[1], PolicyDecisionsColumns[10]},
			},
			{
				Name:    "policydecision_tool_name",
				Unique:  false,
				Columns: []*schema.Column{PolicyDecisionsColumns[3]},
			},
			{
				Name:    "policydecision_decision",
				Unique:  false,
				Columns: []*schema.Column{PolicyDecisionsColumns[4]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "modality", Type: field.TypeEnum, Enums: []string{"text", "voice"}, Default: "text"},
		{Name: "scopes_override", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "last_activity_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_users_sessions",
				Columns:    []*schema.Column{SessionsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[8]},
			},
			{
				Name:    "session_user_id_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[8], SessionsColumns[5]},
			},
			{
				Name:    "session_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "revoked_at IS NULL",
				},
			},
		},
	}
	// ToolCallsColumns holds the columns for the "tool_calls" table.
	ToolCallsColumns = []*schema.Column{
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "args", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "error", "needs_confirmation"}},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "executed", Type: field.TypeBool, Default: false},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "tool_execution_id", Type: field.TypeString, Nullable: true},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ToolCallsTable holds the schema information for the "tool_calls" table.
	ToolCallsTable = &schema.Table{
		Name:       "tool_calls",
		Columns:    ToolCallsColumns,
		PrimaryKey: []*schema.Column{ToolCallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "toolcall_session_id_tool_name_created_at",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[1], ToolCallsColumns[3], ToolCallsColumns[12]},
			},
			{
				Name:    "toolcall_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[1], ToolCallsColumns[12]},
			},
		},
	}
	// ToolExecutionsColumns holds the columns for the "tool_executions" table.
	ToolExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"requested", "policy_denied", "awaiting_confirmation", "confirmed", "running", "succeeded", "failed", "cancelled", "expired"}, Default: "requested"},
		{Name: "idempotency_key", Type: field.TypeString},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ToolExecutionsTable holds the schema information for the "tool_executions" table.
	ToolExecutionsTable = &schema.Table{
		Name:       "tool_executions",
		Columns:    ToolExecutionsColumns,
		PrimaryKey: []*schema.Column{ToolExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tool_executions_sessions_executions",
				Columns:    []*schema.Column{ToolExecutionsColumns[13]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "toolexecution_user_id_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{ToolExecutionsColumns[1], ToolExecutionsColumns[5]},
			},
			{
				Name:    "toolexecution_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ToolExecutionsColumns[13], ToolExecutionsColumns[12]},
			},
			{
				Name:    "toolexecution_status",
				Unique:  false,
				Columns: []*schema.Column{ToolExecutionsColumns[4]},
			},
			{
				Name:    "toolexecution_started_at",
				Unique:  false,
				Columns: []*schema.Column{ToolExecutionsColumns[10]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'running'",
				},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "scopes", Type: field.TypeJSON},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "is_superuser", Type: field.TypeBool, Default: false},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "api_key_hash", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_api_key_hash",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
			{
				Name:    "user_is_active",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentMessagesTable,
		ConfirmationsTable,
		EventsTable,
		MemoriesTable,
		MemoryEventsTable,
		PolicyDecisionsTable,
		SessionsTable,
		ToolCallsTable,
		ToolExecutionsTable,
		UsersTable,
	}
)

func init() {
	AgentMessagesTable.ForeignKeys[0].RefTable = SessionsTable
	ConfirmationsTable.ForeignKeys[0].RefTable = ToolExecutionsTable
	MemoriesTable.ForeignKeys[0].RefTable = UsersTable
	MemoryEventsTable.ForeignKeys[0].RefTable = MemoriesTable
	SessionsTable.ForeignKeys[0].RefTable = UsersTable
	ToolExecutionsTable.ForeignKeys[0].RefTable = SessionsTable
}
