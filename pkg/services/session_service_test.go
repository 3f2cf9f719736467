package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent/agentmessage"
	"github.com/valet-assistant/valet/ent/confirmation"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/models"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := newTestDB(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")

	t.Run("creates text session by default", func(t *testing.T) {
		sess, err := service.CreateSession(ctx, "user-1", models.CreateSessionRequest{})
		require.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, "user-1", sess.UserID)
		assert.Equal(t, "text", string(sess.Modality))
		assert.Nil(t, sess.RevokedAt)
		assert.Nil(t, sess.ExpiresAt)
		assert.True(t, SessionActive(sess, time.Now()))
	})

	t.Run("creates voice session with metadata", func(t *testing.T) {
		sess, err := service.CreateSession(ctx, "user-1", models.CreateSessionRequest{
			Modality: models.ModalityVoice,
			Metadata: map[string]any{"device": "kitchen-speaker"},
		})
		require.NoError(t, err)
		assert.Equal(t, "voice", string(sess.Modality))
		assert.Equal(t, "kitchen-speaker", sess.Metadata["device"])
	})

	t.Run("rejects unknown modality", func(t *testing.T) {
		_, err := service.CreateSession(ctx, "user-1", models.CreateSessionRequest{Modality: "video"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects missing user id", func(t *testing.T) {
		_, err := service.CreateSession(ctx, "", models.CreateSessionRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_GetOwnedSession(t *testing.T) {
	client := newTestDB(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "owner")
	createTestUser(t, client.Client, "intruder")
	createTestSession(t, client.Client, "owner", "sess-owned")

	t.Run("owner sees the session", func(t *testing.T) {
		sess, err := service.GetOwnedSession(ctx, "owner", "sess-owned")
		require.NoError(t, err)
		assert.Equal(t, "sess-owned", sess.ID)
	})

	t.Run("foreign session reads as not found", func(t *testing.T) {
		_, err := service.GetOwnedSession(ctx, "intruder", "sess-owned")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing session reads as not found", func(t *testing.T) {
		_, err := service.GetOwnedSession(ctx, "owner", "no-such-session")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_GetActiveSession(t *testing.T) {
	client := newTestDB(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")

	t.Run("active session passes", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-live")
		sess, err := service.GetActiveSession(ctx, "user-1", "sess-live")
		require.NoError(t, err)
		assert.Equal(t, "sess-live", sess.ID)
	})

	t.Run("revoked session is inactive", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-revoked")
		require.NoError(t, service.RevokeSession(ctx, "user-1", "sess-revoked"))

		_, err := service.GetActiveSession(ctx, "user-1", "sess-revoked")
		assert.ErrorIs(t, err, ErrSessionInactive)
	})

	t.Run("expired session is inactive", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-expired")
		past := time.Now().Add(-time.Hour)
		require.NoError(t, client.Session.UpdateOneID("sess-expired").SetExpiresAt(past).Exec(ctx))

		_, err := service.GetActiveSession(ctx, "user-1", "sess-expired")
		assert.ErrorIs(t, err, ErrSessionInactive)
	})

	t.Run("future expiry stays active", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-future")
		future := time.Now().Add(time.Hour)
		require.NoError(t, client.Session.UpdateOneID("sess-future").SetExpiresAt(future).Exec(ctx))

		_, err := service.GetActiveSession(ctx, "user-1", "sess-future")
		require.NoError(t, err)
	})
}

func TestSessionService_RevokeSession(t *testing.T) {
	client := newTestDB(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")

	t.Run("revokes and stamps revoked_at", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-r1")
		require.NoError(t, service.RevokeSession(ctx, "user-1", "sess-r1"))

		sess, err := client.Session.Get(ctx, "sess-r1")
		require.NoError(t, err)
		assert.NotNil(t, sess.RevokedAt)
	})

	t.Run("revoke is idempotent", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-r2")
		require.NoError(t, service.RevokeSession(ctx, "user-1", "sess-r2"))
		require.NoError(t, service.RevokeSession(ctx, "user-1", "sess-r2"))
	})

	t.Run("missing session is not found", func(t *testing.T) {
		err := service.RevokeSession(ctx, "user-1", "no-such-session")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("cancels pending confirmation and awaiting execution", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-r3")
		exec := createTestExecution(t, client.Client, "sess-r3", "user-1", "delete_file", toolexecution.StatusAwaitingConfirmation)

		conf, err := client.Confirmation.Create().
			SetID("conf-r3").
			SetToolExecutionID(exec.ID).
			SetSessionID("sess-r3").
			SetUserID("user-1").
			SetToolName("delete_file").
			SetDecisionType("ESCALATE").
			SetPrompt("Delete report.txt?").
			SetRiskScore(85).
			SetReasonCode("DESTRUCTIVE_ACTION").
			SetExpiresAt(time.Now().Add(5 * time.Minute)).
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, service.RevokeSession(ctx, "user-1", "sess-r3"))

		conf, err = client.Confirmation.Get(ctx, conf.ID)
		require.NoError(t, err)
		assert.Equal(t, confirmation.StatusCancelled, conf.Status)
		assert.NotNil(t, conf.ResolvedAt)

		got, err := client.ToolExecution.Get(ctx, exec.ID)
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusCancelled, got.Status)
		assert.NotNil(t, got.FinishedAt)
	})
}

func TestSessionService_ListSessions(t *testing.T) {
	client := newTestDB(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestUser(t, client.Client, "user-2")

	// Three sessions for user-1 with staggered activity, one revoked.
	for i, id := range []string{"sess-a", "sess-b", "sess-c"} {
		sess := createTestSession(t, client.Client, "user-1", id)
		activity := time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, client.Session.UpdateOneID(sess.ID).SetLastActivityAt(activity).Exec(ctx))
	}
	require.NoError(t, service.RevokeSession(ctx, "user-1", "sess-a"))
	createTestSession(t, client.Client, "user-2", "sess-other")

	t.Run("lists newest activity first", func(t *testing.T) {
		resp, err := service.ListSessions(ctx, "user-1", models.SessionFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		require.Len(t, resp.Sessions, 3)
		assert.Equal(t, "sess-c", resp.Sessions[0].ID)
		assert.Equal(t, "sess-a", resp.Sessions[2].ID)
	})

	t.Run("active filter drops revoked sessions", func(t *testing.T) {
		resp, err := service.ListSessions(ctx, "user-1", models.SessionFilters{Active: true})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
		for _, sess := range resp.Sessions {
			assert.Nil(t, sess.RevokedAt)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		resp, err := service.ListSessions(ctx, "user-1", models.SessionFilters{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		require.Len(t, resp.Sessions, 1)
		assert.Equal(t, "sess-b", resp.Sessions[0].ID)
	})

	t.Run("scoped to the owner", func(t *testing.T) {
		resp, err := service.ListSessions(ctx, "user-2", models.SessionFilters{})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
		assert.Equal(t, "sess-other", resp.Sessions[0].ID)
	})
}

func TestSessionService_TouchActivity(t *testing.T) {
	client := newTestDB(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	sess := createTestSession(t, client.Client, "user-1", "sess-touch")

	stale := time.Now().Add(-time.Hour)
	require.NoError(t, client.Session.UpdateOneID(sess.ID).SetLastActivityAt(stale).Exec(ctx))

	require.NoError(t, service.TouchActivity(ctx, sess.ID))

	got, err := client.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, got.LastActivityAt.After(stale))

	assert.ErrorIs(t, service.TouchActivity(ctx, "no-such-session"), ErrNotFound)
}

func TestSessionService_ExpireIdleSessions(t *testing.T) {
	client := newTestDB(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")

	idle := createTestSession(t, client.Client, "user-1", "sess-idle")
	fresh := createTestSession(t, client.Client, "user-1", "sess-fresh")
	require.NoError(t, client.Session.UpdateOneID(idle.ID).
		SetLastActivityAt(time.Now().Add(-48*time.Hour)).Exec(ctx))

	count, err := service.ExpireIdleSessions(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := client.Session.Get(ctx, idle.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ExpiresAt)
	assert.False(t, SessionActive(got, time.Now()))

	got, err = client.Session.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ExpiresAt)

	t.Run("zero ttl disables the sweep", func(t *testing.T) {
		count, err := service.ExpireIdleSessions(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestSessionService_GetSessionHistory(t *testing.T) {
	client := newTestDB(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-h")

	base := time.Now().Add(-time.Minute)
	for i, row := range []struct {
		id, role, content string
	}{
		{"msg-1", "user", "what's the weather"},
		{"msg-2", "assistant", "Sunny, 22C."},
	} {
		_, err := client.AgentMessage.Create().
			SetID(row.id).
			SetSessionID("sess-h").
			SetUserID("user-1").
			SetRole(agentmessage.Role(row.role)).
			SetContent(row.content).
			SetCreatedAt(base.Add(time.Duration(i) * time.Second)).
			Save(ctx)
		require.NoError(t, err)
	}

	exec := createTestExecution(t, client.Client, "sess-h", "user-1", "get_weather_info", toolexecution.StatusSucceeded)
	awaiting := createTestExecution(t, client.Client, "sess-h", "user-1", "delete_file", toolexecution.StatusAwaitingConfirmation)

	phrase := "CONFIRM DELETE FILE"
	_, err := client.Confirmation.Create().
		SetID("conf-h").
		SetToolExecutionID(awaiting.ID).
		SetSessionID("sess-h").
		SetUserID("user-1").
		SetToolName("delete_file").
		SetDecisionType("ESCALATE").
		SetPrompt("Delete old.txt?").
		SetRequiredPhrase(phrase).
		SetRiskScore(85).
		SetReasonCode("DESTRUCTIVE_ACTION").
		SetExpiresAt(time.Now().Add(5 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	history, err := service.GetSessionHistory(ctx, "user-1", "sess-h")
	require.NoError(t, err)

	assert.Equal(t, "sess-h", history.Session.ID)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, "msg-1", history.Messages[0].ID)
	assert.Equal(t, "msg-2", history.Messages[1].ID)

	require.Len(t, history.Executions, 2)
	execIDs := []string{history.Executions[0].ID, history.Executions[1].ID}
	assert.Contains(t, execIDs, exec.ID)
	assert.Contains(t, execIDs, awaiting.ID)

	require.Len(t, history.Pending, 1)
	assert.Equal(t, "conf-h", history.Pending[0].ID)
	assert.Equal(t, "delete_file", history.Pending[0].ToolName)
	assert.Equal(t, phrase, history.Pending[0].RequiredPhrase)

	t.Run("foreign user cannot read history", func(t *testing.T) {
		createTestUser(t, client.Client, "user-2")
		_, err := service.GetSessionHistory(ctx, "user-2", "sess-h")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
