package tools

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() (time.Time, func() time.Time) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return base, func() time.Time { return base }
}

func TestCalendarProvider(t *testing.T) {
	t.Run("seeds one upcoming event", func(t *testing.T) {
		_, now := fixedClock()
		calendar := NewCalendarProvider(now)

		events := calendar.EventsWithin(7)
		require.Len(t, events, 1)
		assert.Equal(t, "Team Sync", events[0].Subject)
		assert.Equal(t, "evt-0001", events[0].ID)
		assert.Equal(t, 9, events[0].Start.Hour())
	})

	t.Run("window excludes past and far-future events", func(t *testing.T) {
		base, now := fixedClock()
		calendar := NewCalendarProvider(now)

		_, err := calendar.CreateEvent("Retro", "", base.Add(-48*time.Hour), base.Add(-47*time.Hour))
		require.NoError(t, err)
		_, err = calendar.CreateEvent("Dentist", "Main St clinic", base.Add(10*24*time.Hour), base.Add(10*24*time.Hour+30*time.Minute))
		require.NoError(t, err)

		week := calendar.EventsWithin(7)
		require.Len(t, week, 1)
		assert.Equal(t, "Team Sync", week[0].Subject)

		fortnight := calendar.EventsWithin(14)
		require.Len(t, fortnight, 2)
		assert.Equal(t, "Team Sync", fortnight[0].Subject)
		assert.Equal(t, "Dentist", fortnight[1].Subject)
	})

	t.Run("create validates subject and ordering", func(t *testing.T) {
		base, now := fixedClock()
		calendar := NewCalendarProvider(now)

		_, err := calendar.CreateEvent("", "", base, base.Add(time.Hour))
		assert.ErrorContains(t, err, "subject is required")

		_, err = calendar.CreateEvent("Standup", "", base.Add(time.Hour), base)
		assert.ErrorContains(t, err, "end must be after")

		evt, err := calendar.CreateEvent("Standup", "Room 4", base.Add(time.Hour), base.Add(90*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, "evt-0002", evt.ID)
		assert.Equal(t, "Room 4", evt.Location)
	})
}

func TestMailProvider(t *testing.T) {
	t.Run("inbox reads newest first", func(t *testing.T) {
		_, now := fixedClock()
		mail := NewMailProvider(now)

		inbox := mail.ReadInbox(0)
		require.Len(t, inbox, 3)
		assert.Equal(t, "IT Helpdesk", inbox[0].From)
		assert.Equal(t, "Dana Reyes", inbox[1].From)
		assert.Equal(t, "Facilities", inbox[2].From)

		top := mail.ReadInbox(2)
		require.Len(t, top, 2)
		assert.Equal(t, "IT Helpdesk", top[0].From)
	})

	t.Run("send records to the sent folder", func(t *testing.T) {
		base, now := fixedClock()
		mail := NewMailProvider(now)

		id, err := mail.Send("dana@example.com", "Re: Quarterly numbers", "Looks good, shipping it.")
		require.NoError(t, err)
		assert.Equal(t, "msg-0001", id)

		sent := mail.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "dana@example.com", sent[0].To)
		assert.Equal(t, base, sent[0].SentAt)
	})

	t.Run("rejects recipients without a domain", func(t *testing.T) {
		mail := NewMailProvider(nil)
		_, err := mail.Send("dana", "hi", "hello")
		assert.ErrorContains(t, err, "invalid recipient")
		assert.Empty(t, mail.Sent())
	})
}

func TestFilesProvider(t *testing.T) {
	newWorkspace := func(t *testing.T) (*FilesProvider, string) {
		t.Helper()
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("remember the milk"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "report.md"), []byte("# Q1"), 0o644))
		require.NoError(t, os.Mkdir(filepath.Join(root, "archive"), 0o755))
		return NewFilesProvider(root), root
	}

	t.Run("lists entries sorted by name", func(t *testing.T) {
		files, _ := newWorkspace(t)

		entries, err := files.List("")
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "archive", entries[0].Name)
		assert.True(t, entries[0].IsDir)
		assert.Equal(t, "notes.txt", entries[1].Name)
		assert.Equal(t, int64(len("remember the milk")), entries[1].Size)
		assert.Equal(t, "report.md", entries[2].Name)
	})

	t.Run("missing directory", func(t *testing.T) {
		files, _ := newWorkspace(t)
		_, err := files.List("downloads")
		assert.ErrorContains(t, err, `directory "downloads" not found`)
	})

	t.Run("rejects paths outside the workspace", func(t *testing.T) {
		files, _ := newWorkspace(t)

		_, err := files.List("../outside")
		assert.ErrorContains(t, err, "escapes the workspace")

		_, err = files.List("/etc")
		assert.ErrorContains(t, err, "must be relative")

		err = files.Delete("archive/../../secrets")
		assert.ErrorContains(t, err, "escapes the workspace")
	})

	t.Run("deletes a single file", func(t *testing.T) {
		files, root := newWorkspace(t)

		require.NoError(t, files.Delete("notes.txt"))
		_, err := os.Stat(filepath.Join(root, "notes.txt"))
		assert.True(t, os.IsNotExist(err))

		err = files.Delete("notes.txt")
		assert.ErrorContains(t, err, `file "notes.txt" not found`)
	})

	t.Run("refuses directories and empty paths", func(t *testing.T) {
		files, _ := newWorkspace(t)

		err := files.Delete("archive")
		assert.ErrorContains(t, err, "is a directory")

		err = files.Delete("  ")
		assert.ErrorContains(t, err, "path is required")
	})
}

func TestWeatherProvider(t *testing.T) {
	weather := NewWeatherProvider()

	t.Run("same location always reports the same forecast", func(t *testing.T) {
		first := weather.Current("Lisbon")
		second := weather.Current("Lisbon")
		assert.Equal(t, first, second)

		spaced := weather.Current("  Lisbon ")
		assert.Equal(t, first, spaced)
	})

	t.Run("values stay in plausible ranges", func(t *testing.T) {
		for _, location := range []string{"Lisbon", "Oslo", "Nairobi", "Wellington"} {
			forecast := weather.Current(location)
			assert.Equal(t, location, forecast.Location)
			assert.NotEmpty(t, forecast.Condition)
			assert.GreaterOrEqual(t, forecast.TempC, 8)
			assert.LessOrEqual(t, forecast.TempC, 27)
			assert.GreaterOrEqual(t, forecast.Humidity, 40)
			assert.LessOrEqual(t, forecast.Humidity, 84)
			assert.GreaterOrEqual(t, forecast.WindMS, 2)
			assert.LessOrEqual(t, forecast.WindMS, 10)
		}
	})
}

func TestSearchProvider(t *testing.T) {
	search := NewSearchProvider()

	t.Run("returns up to three angles per query", func(t *testing.T) {
		results := search.Search("coffee roasting", 3)
		require.Len(t, results, 3)
		assert.Contains(t, results[0].Title, "coffee roasting")
		assert.Contains(t, results[0].URL, "q=coffee+roasting")
		assert.NotEmpty(t, results[2].Snippet)
	})

	t.Run("caps k and defaults it", func(t *testing.T) {
		assert.Len(t, search.Search("go", 0), 3)
		assert.Len(t, search.Search("go", 1), 1)
		assert.Len(t, search.Search("go", 10), 3)
	})
}

func TestSystemInfo(t *testing.T) {
	info := SystemInfo()
	assert.NotEmpty(t, info["platform"])
	assert.NotEmpty(t, info["architecture"])
	assert.NotEmpty(t, info["go_version"])
	cpus, ok := info["cpus"].(int)
	require.True(t, ok)
	assert.GreaterOrEqual(t, cpus, 1)
}

func TestAutomationRunner(t *testing.T) {
	t.Run("ships with the built-in routines", func(t *testing.T) {
		runner := NewAutomationRunner()
		assert.Equal(t, []string{"morning_briefing", "workspace_cleanup"}, runner.Names())

		message, err := runner.Run(context.Background(), "morning_briefing")
		require.NoError(t, err)
		assert.Contains(t, message, "Morning briefing queued")
	})

	t.Run("unknown automation names the available ones", func(t *testing.T) {
		runner := NewAutomationRunner()
		_, err := runner.Run(context.Background(), "evening_wrapup")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown automation "evening_wrapup"`)
		assert.Contains(t, err.Error(), "morning_briefing")
	})

	t.Run("register validates and rejects duplicates", func(t *testing.T) {
		runner := NewAutomationRunner()

		err := runner.Register(Automation{Name: "morning_briefing", Run: func(context.Context) (string, error) { return "", nil }})
		assert.ErrorIs(t, err, ErrAlreadyRegistered)

		assert.Error(t, runner.Register(Automation{Run: func(context.Context) (string, error) { return "", nil }}))
		assert.Error(t, runner.Register(Automation{Name: "no_op"}))

		require.NoError(t, runner.Register(Automation{
			Name: "lights_out",
			Run:  func(context.Context) (string, error) { return "Lights off.", nil },
		}))
		message, err := runner.Run(context.Background(), "lights_out")
		require.NoError(t, err)
		assert.Equal(t, "Lights off.", message)
	})
}

func TestWhen(t *testing.T) {
	t.Run("accepts the common shapes", func(t *testing.T) {
		parsed, err := when("2026-03-10T15:04:05Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC), parsed.UTC())

		parsed, err = when("2026-03-10 15:04")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 10, 15, 4, 0, 0, time.Local), parsed)

		parsed, err = when("2026-03-10T15:04")
		require.NoError(t, err)
		assert.Equal(t, 15, parsed.Hour())

		parsed, err = when("2026-03-10 3:04 PM")
		require.NoError(t, err)
		assert.Equal(t, 15, parsed.Hour())
	})

	t.Run("date-only lands at nine in the morning", func(t *testing.T) {
		parsed, err := when("2026-03-10")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local), parsed)
	})

	t.Run("free-form text is rejected with a hint", func(t *testing.T) {
		_, err := when("next tuesday around lunch")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not understand the time")
		assert.Contains(t, err.Error(), "2006-01-02 15:04")
	})
}
