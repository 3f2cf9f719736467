package tools

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/pkg/models"
)

// fakeMemoryStore keys stored facts by their metadata "key" entry, which
// is how recall_fact pins its lookup.
type fakeMemoryStore struct {
	writes []models.WriteMemoryRequest
	stored map[string]string
}

func (f *fakeMemoryStore) WriteMemory(_ context.Context, req models.WriteMemoryRequest) (*models.WriteMemoryResult, error) {
	f.writes = append(f.writes, req)
	key, _ := req.Metadata["key"].(string)
	f.stored[key] = req.Content
	return &models.WriteMemoryResult{
		Memory:  &ent.Memory{ID: "mem-0001", UserID: req.UserID, Content: req.Content},
		Created: true,
	}, nil
}

func (f *fakeMemoryStore) RetrieveMemories(_ context.Context, req models.RetrieveMemoryRequest) ([]*models.ScoredMemory, error) {
	key, _ := req.MetadataFilter["key"].(string)
	content, ok := f.stored[key]
	if !ok {
		return nil, nil
	}
	return []*models.ScoredMemory{{
		Memory: &ent.Memory{ID: "mem-0001", UserID: req.UserID, Content: content},
		Score:  1,
	}}, nil
}

func newBuiltinRegistry(t *testing.T, now func() time.Time) (*Registry, *Providers) {
	t.Helper()
	providers := &Providers{
		Calendar:    NewCalendarProvider(now),
		Mail:        NewMailProvider(now),
		Files:       NewFilesProvider(t.TempDir()),
		Weather:     NewWeatherProvider(),
		Search:      NewSearchProvider(),
		Automations: NewAutomationRunner(),
		Memory:      &fakeMemoryStore{stored: map[string]string{}},
	}
	reg := NewRegistry()
	require.NoError(t, RegisterBuiltins(reg, providers))
	return reg, providers
}

func callTool(t *testing.T, reg *Registry, ctx context.Context, name string, args map[string]any) map[string]any {
	t.Helper()
	tool, ok := reg.Get(name)
	require.True(t, ok, "tool %s not registered", name)
	require.NoError(t, tool.ValidateArgs(args))
	data, err := tool.Handler.Handle(ctx, args)
	require.NoError(t, err)
	return data
}

func TestRegisterBuiltins(t *testing.T) {
	reg, _ := newBuiltinRegistry(t, nil)

	assert.Equal(t, []string{
		"create_calendar_event",
		"delete_file",
		"get_calendar_events",
		"get_system_info",
		"get_weather_info",
		"list_files",
		"read_emails",
		"recall_fact",
		"remember_fact",
		"run_automation",
		"send_email",
		"web_search",
	}, reg.Names())

	for _, spec := range reg.Specs() {
		assert.NotEmpty(t, spec.Description, "tool %s has no description", spec.Name)
		assert.NotEmpty(t, spec.RequiredScope, "tool %s has no required scope", spec.Name)
		assert.NotEmpty(t, spec.TargetEntity, "tool %s has no target entity", spec.Name)
	}

	assert.Error(t, RegisterBuiltins(NewRegistry(), nil))
}

func TestBuiltinCalendarTools(t *testing.T) {
	_, now := fixedClock()
	ctx := context.Background()

	t.Run("get_calendar_events lists the upcoming week", func(t *testing.T) {
		reg, _ := newBuiltinRegistry(t, now)
		data := callTool(t, reg, ctx, "get_calendar_events", map[string]any{"days": 7})

		assert.Contains(t, data["message"], "Here are the matching events:")
		assert.Contains(t, data["message"], "- Team Sync starting at")
		assert.Equal(t, 1, data["count"])
	})

	t.Run("create_calendar_event then read it back", func(t *testing.T) {
		reg, _ := newBuiltinRegistry(t, now)
		data := callTool(t, reg, ctx, "create_calendar_event", map[string]any{
			"subject":        "Dentist",
			"start_time_str": "2026-03-12 10:00",
			"end_time_str":   "2026-03-12 10:45",
		})
		assert.Equal(t, "Successfully created calendar event: 'Dentist'.", data["message"])

		data = callTool(t, reg, ctx, "get_calendar_events", map[string]any{"days": 7})
		assert.Equal(t, 2, data["count"])
		assert.Contains(t, data["message"], "Dentist")
	})

	t.Run("unparseable times surface the format hint", func(t *testing.T) {
		reg, _ := newBuiltinRegistry(t, now)
		tool, _ := reg.Get("create_calendar_event")
		_, err := tool.Handler.Handle(ctx, map[string]any{
			"subject":        "Dentist",
			"start_time_str": "whenever",
			"end_time_str":   "later",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not understand the time")
	})

	t.Run("days is required by the schema", func(t *testing.T) {
		reg, _ := newBuiltinRegistry(t, now)
		tool, _ := reg.Get("get_calendar_events")
		assert.Error(t, tool.ValidateArgs(map[string]any{}))
		assert.Error(t, tool.ValidateArgs(map[string]any{"days": 0}))
		assert.Error(t, tool.ValidateArgs(map[string]any{"days": "seven"}))
	})
}

func TestBuiltinEmailTools(t *testing.T) {
	_, now := fixedClock()
	ctx := context.Background()

	t.Run("read_emails summarizes the inbox newest first", func(t *testing.T) {
		reg, _ := newBuiltinRegistry(t, now)
		data := callTool(t, reg, ctx, "read_emails", map[string]any{})

		assert.Equal(t, 3, data["count"])
		message, _ := data["message"].(string)
		assert.Contains(t, message, "From: IT Helpdesk")
		assert.Contains(t, message, "Subject: Password rotation reminder")
		assert.Contains(t, message, "\n\n---\n\n")
	})

	t.Run("send_email lands in the sent folder", func(t *testing.T) {
		reg, providers := newBuiltinRegistry(t, now)
		data := callTool(t, reg, ctx, "send_email", map[string]any{
			"to":      "dana@example.com",
			"subject": "Re: Quarterly numbers",
			"content": "Looks good, shipping it.",
		})
		assert.Equal(t, "Email sent successfully.", data["message"])
		assert.Equal(t, "dana@example.com", data["to"])

		sent := providers.Mail.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "Re: Quarterly numbers", sent[0].Subject)
	})

	t.Run("invalid recipient fails at the provider", func(t *testing.T) {
		reg, _ := newBuiltinRegistry(t, now)
		tool, _ := reg.Get("send_email")
		_, err := tool.Handler.Handle(ctx, map[string]any{
			"to": "dana", "subject": "hi", "content": "hello",
		})
		assert.ErrorContains(t, err, "invalid recipient")
	})
}

func TestBuiltinFileTools(t *testing.T) {
	ctx := context.Background()

	t.Run("list then delete", func(t *testing.T) {
		reg, providers := newBuiltinRegistry(t, nil)
		root := providers.Files.Root()
		require.NoError(t, os.WriteFile(filepath.Join(root, "draft.txt"), []byte("wip"), 0o644))

		data := callTool(t, reg, ctx, "list_files", map[string]any{"directory_path": "."})
		assert.Equal(t, "draft.txt", data["message"])
		assert.Equal(t, 1, data["count"])

		data = callTool(t, reg, ctx, "delete_file", map[string]any{"path": "draft.txt"})
		assert.Equal(t, "Deleted 'draft.txt'.", data["message"])
		_, err := os.Stat(filepath.Join(root, "draft.txt"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("empty workspace", func(t *testing.T) {
		reg, _ := newBuiltinRegistry(t, nil)
		data := callTool(t, reg, ctx, "list_files", map[string]any{"directory_path": "."})
		assert.Equal(t, "The directory is empty.", data["message"])
	})

	t.Run("delete refuses missing files", func(t *testing.T) {
		reg, _ := newBuiltinRegistry(t, nil)
		tool, _ := reg.Get("delete_file")
		_, err := tool.Handler.Handle(ctx, map[string]any{"path": "ghost.txt"})
		assert.ErrorContains(t, err, "not found")
	})
}

func TestBuiltinInfoTools(t *testing.T) {
	ctx := context.Background()

	t.Run("get_weather_info is stable per location", func(t *testing.T) {
		reg, providers := newBuiltinRegistry(t, nil)
		expected := providers.Weather.Current("Lisbon")

		data := callTool(t, reg, ctx, "get_weather_info", map[string]any{"location": "Lisbon"})
		message, _ := data["message"].(string)
		assert.Contains(t, message, "Current weather in Lisbon:")
		assert.Contains(t, message, expected.Condition)
		assert.Equal(t, expected.TempC, data["temperature_c"])
	})

	t.Run("get_system_info reports the host", func(t *testing.T) {
		reg, _ := newBuiltinRegistry(t, nil)
		data := callTool(t, reg, ctx, "get_system_info", map[string]any{})

		assert.Equal(t, runtime.GOOS, data["platform"])
		message, _ := data["message"].(string)
		assert.Contains(t, message, "platform: "+runtime.GOOS)
		assert.Contains(t, message, "go_version: ")
	})

	t.Run("web_search echoes the query", func(t *testing.T) {
		reg, _ := newBuiltinRegistry(t, nil)
		data := callTool(t, reg, ctx, "web_search", map[string]any{"query": "coffee roasting"})

		assert.Equal(t, "Found 3 results for 'coffee roasting'.", data["message"])
		results, _ := data["results"].([]any)
		assert.Len(t, results, 3)
	})

	t.Run("run_automation", func(t *testing.T) {
		reg, _ := newBuiltinRegistry(t, nil)
		data := callTool(t, reg, ctx, "run_automation", map[string]any{"name": "morning_briefing"})
		assert.Contains(t, data["message"], "Morning briefing queued")

		tool, _ := reg.Get("run_automation")
		_, err := tool.Handler.Handle(ctx, map[string]any{"name": "evening_wrapup"})
		assert.ErrorContains(t, err, "unknown automation")
	})
}

func TestBuiltinMemoryTools(t *testing.T) {
	_, now := fixedClock()
	ctx := WithInvocation(context.Background(), Invocation{UserID: "user-1", SessionID: "sess-1"})

	t.Run("remember then recall a fact", func(t *testing.T) {
		reg, providers := newBuiltinRegistry(t, now)
		store := providers.Memory.(*fakeMemoryStore)

		data := callTool(t, reg, ctx, "remember_fact", map[string]any{
			"key": "manager name", "value": "Alex Molina",
		})
		assert.Equal(t, "Remembered fact: 'manager name' set to 'Alex Molina'.", data["message"])

		require.Len(t, store.writes, 1)
		write := store.writes[0]
		assert.Equal(t, "user-1", write.UserID)
		assert.Equal(t, "fact", write.Type)
		assert.Equal(t, "agent", write.Source)
		assert.Equal(t, "fact", write.Metadata["subtype"])

		data = callTool(t, reg, ctx, "recall_fact", map[string]any{"key": "manager name"})
		assert.Equal(t, "The stored fact for 'manager name' is: 'Alex Molina'", data["message"])
		assert.Equal(t, true, data["found"])
		assert.Equal(t, "Alex Molina", data["value"])
	})

	t.Run("recall miss", func(t *testing.T) {
		reg, _ := newBuiltinRegistry(t, now)
		data := callTool(t, reg, ctx, "recall_fact", map[string]any{"key": "favorite tea"})
		assert.Equal(t, "Fact not found. I don't have a stored fact for 'favorite tea'.", data["message"])
		assert.Equal(t, false, data["found"])
	})

	t.Run("no bound user is refused", func(t *testing.T) {
		reg, _ := newBuiltinRegistry(t, now)
		tool, _ := reg.Get("remember_fact")
		_, err := tool.Handler.Handle(context.Background(), map[string]any{"key": "k", "value": "v"})
		assert.ErrorContains(t, err, "no user bound")
	})
}

func TestInvocationContext(t *testing.T) {
	assert.Zero(t, InvocationFrom(context.Background()))

	inv := Invocation{UserID: "user-1", SessionID: "sess-1", TraceID: "trace-1"}
	ctx := WithInvocation(context.Background(), inv)
	assert.Equal(t, inv, InvocationFrom(ctx))
}
