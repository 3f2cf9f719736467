package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/session"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/database"
	"github.com/valet-assistant/valet/pkg/models"
	testdb "github.com/valet-assistant/valet/test/database"
)

// newTestDB creates an isolated database for one test.
func newTestDB(t *testing.T) *database.Client {
	t.Helper()
	return testdb.NewTestClient(t)
}

// createTestUser inserts a user with the default scope set unless overridden.
func createTestUser(t *testing.T, client *ent.Client, id string, scopes ...string) *ent.User {
	t.Helper()
	if len(scopes) == 0 {
		scopes = models.DefaultUserScopes
	}
	user, err := client.User.Create().
		SetID(id).
		SetScopes(scopes).
		Save(context.Background())
	require.NoError(t, err)
	return user
}

// createTestSession inserts an active text session owned by userID.
func createTestSession(t *testing.T, client *ent.Client, userID, id string) *ent.Session {
	t.Helper()
	sess, err := client.Session.Create().
		SetID(id).
		SetUserID(userID).
		SetModality(session.ModalityText).
		Save(context.Background())
	require.NoError(t, err)
	return sess
}

// createTestExecution inserts a tool execution row in the given status.
func createTestExecution(t *testing.T, client *ent.Client, sessionID, userID, toolName string, status toolexecution.Status) *ent.ToolExecution {
	t.Helper()
	exec, err := client.ToolExecution.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetUserID(userID).
		SetToolName(toolName).
		SetIdempotencyKey(uuid.New().String()).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return exec
}
