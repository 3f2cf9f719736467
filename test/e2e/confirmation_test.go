package e2e

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent/confirmation"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/config"
	"github.com/valet-assistant/valet/pkg/events"
	"github.com/valet-assistant/valet/pkg/models"
)

// Sending email is risky enough to need approval: the first turn parks
// the execution behind a confirmation and sends nothing; a plain "yes"
// releases it.
func TestE2E_EmailSendConfirmation(t *testing.T) {
	app := NewTestApp(t)
	app.Assistant.Handle("email", models.Intent{
		Name: "send_email",
		Slots: map[string]any{
			"to":      "bob@example.com",
			"subject": "Budget review",
			"content": "Numbers attached.",
		},
		Confidence: 0.93,
	})

	sessionID := app.CreateSession(t, models.ModalityText)
	sink := app.CollectSessionEvents(t, sessionID)

	first := app.Say(t, sessionID, "Send an email to Bob about the budget")
	require.NotNil(t, first.Pending)
	assert.Equal(t, "send_email", first.Pending.ToolName)
	assert.Empty(t, first.Pending.RequiredPhrase)
	assert.Equal(t, first.Pending.Prompt, first.AssistantText)
	assert.Empty(t, app.Providers.Mail.Sent(), "nothing goes out before approval")

	execs := app.QueryExecutions(t, sessionID)
	require.Len(t, execs, 1)
	assert.Equal(t, toolexecution.StatusAwaitingConfirmation, execs[0].Status)

	confs := app.QueryConfirmations(t, sessionID)
	require.Len(t, confs, 1)
	assert.Equal(t, confirmation.StatusPending, confs[0].Status)
	assert.GreaterOrEqual(t, confs[0].RiskScore, 60)

	created := sink.WaitFor(t, events.EventTypeConfirmationCreated)
	assert.Equal(t, first.Pending.ID, created["confirmation_id"])
	assert.GreaterOrEqual(t, created["risk_score"], float64(60))

	second := app.Say(t, sessionID, "yes")
	assert.Equal(t, "Done. Email sent successfully.", second.AssistantText)
	assert.Nil(t, second.Pending)

	sent := app.Providers.Mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "bob@example.com", sent[0].To)
	assert.Equal(t, "Budget review", sent[0].Subject)

	// The approval answered the pending confirmation; it never reached
	// the intent parser.
	assert.Equal(t, []string{"Send an email to Bob about the budget"}, app.Assistant.Utterances())

	execs = app.QueryExecutions(t, sessionID)
	require.Len(t, execs, 1)
	assert.Equal(t, toolexecution.StatusSucceeded, execs[0].Status)

	confs = app.QueryConfirmations(t, sessionID)
	require.Len(t, confs, 1)
	assert.Equal(t, confirmation.StatusConsumed, confs[0].Status)

	resolved := sink.WaitFor(t, events.EventTypeConfirmationResolved)
	assert.Equal(t, "accepted", resolved["outcome"])

	completed := sink.WaitForN(t, events.EventTypeTurnCompleted, 2)
	assert.Equal(t, "needs_confirmation", completed[0]["status"])
	assert.Equal(t, "completed", completed[1]["status"])
}

// Destructive file operations escalate: approval requires the exact
// phrase, and anything short of it leaves the file untouched.
func TestE2E_DeleteFileEscalation(t *testing.T) {
	app := NewTestApp(t)
	app.Assistant.Handle("delete", models.Intent{
		Name:       "delete_file",
		Slots:      map[string]any{"path": "old-report.txt"},
		Confidence: 0.9,
	})

	target := filepath.Join(app.WorkspaceDir, "old-report.txt")
	require.NoError(t, os.WriteFile(target, []byte("stale"), 0o644))

	sessionID := app.CreateSession(t, models.ModalityText)
	sink := app.CollectSessionEvents(t, sessionID)

	first := app.Say(t, sessionID, "delete the old report")
	require.NotNil(t, first.Pending)
	assert.Equal(t, "CONFIRM DELETE FILE", first.Pending.RequiredPhrase)

	confs := app.QueryConfirmations(t, sessionID)
	require.Len(t, confs, 1)
	assert.GreaterOrEqual(t, confs[0].RiskScore, 85)

	// A loose yes is not the phrase.
	second := app.Say(t, sessionID, "yes delete it")
	assert.Equal(t, "Please say exactly: 'CONFIRM DELETE FILE' to confirm.", second.AssistantText)
	require.NotNil(t, second.Pending)
	assert.Equal(t, first.Pending.ID, second.Pending.ID)
	_, err := os.Stat(target)
	require.NoError(t, err, "the file survives until the phrase is spoken")

	third := app.Say(t, sessionID, "CONFIRM DELETE FILE please")
	assert.Equal(t, "Done. Deleted 'old-report.txt'.", third.AssistantText)
	assert.Nil(t, third.Pending)
	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err), "the file is gone after the phrase")

	resolved := sink.WaitForN(t, events.EventTypeConfirmationResolved, 2)
	assert.Equal(t, "still_pending", resolved[0]["outcome"])
	assert.Equal(t, "accepted", resolved[1]["outcome"])

	execs := app.QueryExecutions(t, sessionID)
	require.Len(t, execs, 1)
	assert.Equal(t, toolexecution.StatusSucceeded, execs[0].Status)
}

// The retention sweep expires confirmations nobody answers, and the
// session goes back to normal turns afterwards.
func TestE2E_ConfirmationExpiry(t *testing.T) {
	cfg := config.Default()
	cfg.AdminDebugEnabled = true
	cfg.Policy.ConfirmationTTL = 1 * time.Second
	cfg.Retention.CleanupInterval = 200 * time.Millisecond

	app := NewTestApp(t, WithConfig(cfg), WithCleanupLoop())
	app.Assistant.Handle("email", models.Intent{
		Name: "send_email",
		Slots: map[string]any{
			"to":      "bob@example.com",
			"subject": "Budget review",
			"content": "Numbers attached.",
		},
		Confidence: 0.9,
	})

	sessionID := app.CreateSession(t, models.ModalityText)

	first := app.Say(t, sessionID, "email bob the numbers")
	require.NotNil(t, first.Pending)

	require.Eventually(t, func() bool {
		conf, err := app.DB.Client.Confirmation.Get(context.Background(), first.Pending.ID)
		return err == nil && conf.Status == confirmation.StatusExpired
	}, 10*time.Second, 50*time.Millisecond, "sweep never expired the confirmation")

	execs := app.QueryExecutions(t, sessionID)
	require.Len(t, execs, 1)
	assert.Equal(t, toolexecution.StatusExpired, execs[0].Status)
	assert.Empty(t, app.Providers.Mail.Sent())

	// With nothing pending, the next utterance parses as a fresh command.
	reply := app.Say(t, sessionID, "yes")
	assert.Equal(t, "I'm not sure how to help with that. Could you rephrase?", reply.AssistantText)
	assert.Contains(t, app.Assistant.Utterances(), "yes")
}
