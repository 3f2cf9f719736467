// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/valet-assistant/valet/ent/agentmessage"
	"github.com/valet-assistant/valet/ent/confirmation"
	"github.com/valet-assistant/valet/ent/event"
	"github.com/valet-assistant/valet/ent/memory"
	"github.com/valet-assistant/valet/ent/memoryevent"
	"github.com/valet-assistant/valet/ent/policydecision"
	"github.com/valet-assistant/valet/ent/schema"
	"github.com/valet-assistant/valet/ent/session"
	"github.com/valet-assistant/valet/ent/toolcall"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentmessageFields := schema.AgentMessage{}.Fields()
	_ = agentmessageFields
	// agentmessageDescCreatedAt is the schema descriptor for created_at field.
	agentmessageDescCreatedAt := agentmessageFields[10].Descriptor()
	// agentmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentmessage.DefaultCreatedAt = agentmessageDescCreatedAt.Default.(func() time.Time)
	// agentmessageDescUpdatedAt is the schema descriptor for updated_at field.
	agentmessageDescUpdatedAt := agentmessageFields[11].Descriptor()
	// agentmessage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentmessage.DefaultUpdatedAt = agentmessageDescUpdatedAt.Default.(func() time.Time)
	// agentmessage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentmessage.UpdateDefaultUpdatedAt = agentmessageDescUpdatedAt.UpdateDefault.(func() time.Time)
	confirmationFields := schema.Confirmation{}.Fields()
	_ = confirmationFields
	// confirmationDescCreatedAt is the schema descriptor for created_at field.
	confirmationDescCreatedAt := confirmationFields[15].Descriptor()
	// confirmation.DefaultCreatedAt holds the default value on creation for the created_at field.
	confirmation.DefaultCreatedAt = confirmationDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescChannel is the schema descriptor for channel field.
	eventDescChannel := eventFields[2].Descriptor()
	// event.ChannelValidator is a validator for the "channel" field. It is called by the builders before save.
	event.ChannelValidator = eventDescChannel.Validators[0].(func(string) error)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	memoryFields := schema.Memory{}.Fields()
	_ = memoryFields
	// memoryDescSource is the schema descriptor for source field.
	memoryDescSource := memoryFields[4].Descriptor()
	// memory.DefaultSource holds the default value on creation for the source field.
	memory.DefaultSource = memoryDescSource.Default.(string)
	// memoryDescIsDeleted is the schema descriptor for is_deleted field.
	memoryDescIsDeleted := memoryFields[9].Descriptor()
	// memory.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	memory.DefaultIsDeleted = memoryDescIsDeleted.Default.(bool)
	// memoryDescCreatedAt is the schema descriptor for created_at field.
	memoryDescCreatedAt := memoryFields[10].Descriptor()
	// memory.DefaultCreatedAt holds the default value on creation for the created_at field.
	memory.DefaultCreatedAt = memoryDescCreatedAt.Default.(func() time.Time)
	// memoryDescUpdatedAt is the schema descriptor for updated_at field.
	memoryDescUpdatedAt := memoryFields[11].Descriptor()
	// memory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	memory.DefaultUpdatedAt = memoryDescUpdatedAt.Default.(func() time.Time)
	// memory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	memory.UpdateDefaultUpdatedAt = memoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	memoryeventFields := schema.MemoryEvent{}.Fields()
	_ = memoryeventFields
	// memoryeventDescCreatedAt is the schema descriptor for created_at field.
	memoryeventDescCreatedAt := memoryeventFields[6].Descriptor()
	// memoryevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryevent.DefaultCreatedAt = memoryeventDescCreatedAt.Default.(func() time.Time)
	policydecisionFields := schema.PolicyDecision{}.Fields()
	_ = policydecisionFields
	// policydecisionDescCreatedAt is the schema descriptor for created_at field.
	policydecisionDescCreatedAt := policydecisionFields[10].Descriptor()
	// policydecision.DefaultCreatedAt holds the default value on creation for the created_at field.
	policydecision.DefaultCreatedAt = policydecisionDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[5].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
	// sessionDescLastActivityAt is the schema descriptor for last_activity_at field.
	sessionDescLastActivityAt := sessionFields[6].Descriptor()
	// session.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	session.DefaultLastActivityAt = sessionDescLastActivityAt.Default.(func() time.Time)
	toolcallFields := schema.ToolCall{}.Fields()
	_ = toolcallFields
	// toolcallDescExecuted is the schema descriptor for executed field.
	toolcallDescExecuted := toolcallFields[8].Descriptor()
	// toolcall.DefaultExecuted holds the default value on creation for the executed field.
	toolcall.DefaultExecuted = toolcallDescExecuted.Default.(bool)
	// toolcallDescLatencyMs is the schema descriptor for latency_ms field.
	toolcallDescLatencyMs := toolcallFields[9].Descriptor()
	// toolcall.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	toolcall.DefaultLatencyMs = toolcallDescLatencyMs.Default.(int64)
	// toolcallDescCreatedAt is the schema descriptor for created_at field.
	toolcallDescCreatedAt := toolcallFields[12].Descriptor()
	// toolcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolcall.DefaultCreatedAt = toolcallDescCreatedAt.Default.(func() time.Time)
	toolexecutionFields := schema.ToolExecution{}.Fields()
	_ = toolexecutionFields
	// toolexecutionDescCreatedAt is the schema descriptor for created_at field.
	toolexecutionDescCreatedAt := toolexecutionFields[13].Descriptor()
	// toolexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolexecution.DefaultCreatedAt = toolexecutionDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescIsSuperuser is the schema descriptor for is_superuser field.
	userDescIsSuperuser := userFields[5].Descriptor()
	// user.DefaultIsSuperuser holds the default value on creation for the is_superuser field.
	user.DefaultIsSuperuser = userDescIsSuperuser.Default.(bool)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[6].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[9].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
