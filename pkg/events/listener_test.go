package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotifyListener(t *testing.T) {
	listener := NewNotifyListener("host=localhost dbname=test")

	assert.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=test", listener.connString)
	assert.NotNil(t, listener.handlers)
}

func TestNotifyListener_SubscribeWithoutConnection(t *testing.T) {
	// Without calling Start(), the listener has no connection.
	// Subscribe/Unsubscribe should return errors gracefully.
	listener := NewNotifyListener("host=localhost dbname=test")

	t.Run("subscribe without connection returns error", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), "test-channel", func(string, []byte) {})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
	})

	t.Run("unsubscribe without connection is a no-op", func(t *testing.T) {
		err := listener.Unsubscribe(t.Context(), "test-channel")
		assert.NoError(t, err) // Not listening, so no-op
	})
}

func TestNotifyListener_Dispatch(t *testing.T) {
	listener := NewNotifyListener("host=localhost dbname=test")

	var gotChannel string
	var gotPayload []byte
	listener.handlers["session:abc"] = []Handler{func(channel string, payload []byte) {
		gotChannel = channel
		gotPayload = payload
	}}

	listener.dispatch("session:abc", []byte(`{"type":"turn.completed"}`))
	assert.Equal(t, "session:abc", gotChannel)
	assert.JSONEq(t, `{"type":"turn.completed"}`, string(gotPayload))

	// Channels without handlers are ignored.
	listener.dispatch("session:other", []byte(`{}`))
	assert.Equal(t, "session:abc", gotChannel)
}
