package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valet-assistant/valet/pkg/models"
)

func echoHandler() Handler {
	return HandlerFunc(func(_ context.Context, args map[string]any) (map[string]any, error) {
		return map[string]any{"message": "ok", "args": args}, nil
	})
}

func TestRegistry_Register(t *testing.T) {
	t.Run("registers and resolves a tool", func(t *testing.T) {
		reg := NewRegistry()
		spec := models.ToolSpec{Name: "ping", Category: models.CategoryOther}
		require.NoError(t, reg.Register(spec, echoHandler()))

		tool, ok := reg.Get("ping")
		require.True(t, ok)
		assert.Equal(t, "ping", tool.Spec.Name)

		_, ok = reg.Get("pong")
		assert.False(t, ok)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		reg := NewRegistry()
		spec := models.ToolSpec{Name: "ping"}
		require.NoError(t, reg.Register(spec, echoHandler()))

		err := reg.Register(spec, echoHandler())
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("requires a name and a handler", func(t *testing.T) {
		reg := NewRegistry()
		assert.Error(t, reg.Register(models.ToolSpec{}, echoHandler()))
		assert.Error(t, reg.Register(models.ToolSpec{Name: "ping"}, nil))
	})

	t.Run("rejects a malformed schema at registration", func(t *testing.T) {
		reg := NewRegistry()
		spec := models.ToolSpec{
			Name: "broken",
			Params: map[string]any{
				"type":       "object",
				"properties": map[string]any{"n": map[string]any{"type": "integerr"}},
			},
		}
		err := reg.Register(spec, echoHandler())
		assert.Error(t, err)
	})

	t.Run("specs and names come back sorted", func(t *testing.T) {
		reg := NewRegistry()
		for _, name := range []string{"zeta", "alpha", "mid"} {
			require.NoError(t, reg.Register(models.ToolSpec{Name: name}, echoHandler()))
		}

		assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.Names())
		specs := reg.Specs()
		require.Len(t, specs, 3)
		assert.Equal(t, "alpha", specs[0].Name)
		assert.Equal(t, "zeta", specs[2].Name)
	})
}

func TestTool_ValidateArgs(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(models.ToolSpec{
		Name: "schedule",
		Params: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"days":    map[string]any{"type": "integer", "minimum": 1},
				"subject": map[string]any{"type": "string", "minLength": 1},
			},
			"required": []string{"days"},
		},
	}, echoHandler()))
	tool, _ := reg.Get("schedule")

	t.Run("valid arguments pass", func(t *testing.T) {
		assert.NoError(t, tool.ValidateArgs(map[string]any{"days": 7, "subject": "standup"}))
	})

	t.Run("missing required field fails with the tool name", func(t *testing.T) {
		err := tool.ValidateArgs(map[string]any{"subject": "standup"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schedule")
	})

	t.Run("wrong type fails", func(t *testing.T) {
		assert.Error(t, tool.ValidateArgs(map[string]any{"days": "seven"}))
	})

	t.Run("constraint violation fails", func(t *testing.T) {
		assert.Error(t, tool.ValidateArgs(map[string]any{"days": 0}))
	})

	t.Run("nil args validate against required fields", func(t *testing.T) {
		assert.Error(t, tool.ValidateArgs(nil))
	})

	t.Run("no schema accepts anything", func(t *testing.T) {
		require.NoError(t, reg.Register(models.ToolSpec{Name: "loose"}, echoHandler()))
		loose, _ := reg.Get("loose")
		assert.NoError(t, loose.ValidateArgs(map[string]any{"whatever": []any{1, 2}}))
	})
}
