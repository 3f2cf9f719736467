package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/valet-assistant/valet/pkg/models"
)

// Providers bundles the backends the built-in tools run against.
type Providers struct {
	Calendar    *CalendarProvider
	Mail        *MailProvider
	Files       *FilesProvider
	Weather     *WeatherProvider
	Search      *SearchProvider
	Automations *AutomationRunner
	Memory      MemoryStore
}

// NewProviders creates the default local backends. The files provider is
// rooted at workspaceDir; Memory must be wired separately since it needs
// the database.
func NewProviders(workspaceDir string) *Providers {
	return &Providers{
		Calendar:    NewCalendarProvider(nil),
		Mail:        NewMailProvider(nil),
		Files:       NewFilesProvider(workspaceDir),
		Weather:     NewWeatherProvider(),
		Search:      NewSearchProvider(),
		Automations: NewAutomationRunner(),
	}
}

// RegisterBuiltins registers the assistant's tool set against the given
// providers. Every handler returns a structured map with a human
// "message" entry.
func RegisterBuiltins(reg *Registry, p *Providers) error {
	if p == nil {
		return fmt.Errorf("providers are required")
	}

	type entry struct {
		spec    models.ToolSpec
		handler Handler
	}
	entries := []entry{
		{getCalendarEventsSpec(), getCalendarEventsHandler(p.Calendar)},
		{createCalendarEventSpec(), createCalendarEventHandler(p.Calendar)},
		{readEmailsSpec(), readEmailsHandler(p.Mail)},
		{sendEmailSpec(), sendEmailHandler(p.Mail)},
		{listFilesSpec(), listFilesHandler(p.Files)},
		{deleteFileSpec(), deleteFileHandler(p.Files)},
		{getWeatherInfoSpec(), getWeatherInfoHandler(p.Weather)},
		{getSystemInfoSpec(), getSystemInfoHandler()},
		{webSearchSpec(), webSearchHandler(p.Search)},
		{rememberFactSpec(), rememberFactHandler(p.Memory)},
		{recallFactSpec(), recallFactHandler(p.Memory)},
		{runAutomationSpec(), runAutomationHandler(p.Automations)},
	}

	for _, e := range entries {
		if err := reg.Register(e.spec, e.handler); err != nil {
			return err
		}
	}
	return nil
}

func getCalendarEventsSpec() models.ToolSpec {
	return models.ToolSpec{
		Name:          "get_calendar_events",
		Description:   "Gets upcoming events from the user's calendar.",
		Category:      models.CategoryCalendar,
		Action:        models.ActionRead,
		Sensitivity:   models.SensitivityLow,
		Scope:         models.ScopeBatch,
		RequiredScope: "tool.calendar.read",
		TargetEntity:  "calendar_event",
		Params: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"days": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"maximum":     31,
					"description": "How many days ahead to look.",
				},
			},
			"required": []string{"days"},
		},
	}
}

func getCalendarEventsHandler(calendar *CalendarProvider) Handler {
	return HandlerFunc(func(_ context.Context, args map[string]any) (map[string]any, error) {
		days := intArg(args, "days", 7)
		events := calendar.EventsWithin(days)
		if len(events) == 0 {
			return map[string]any{
				"message": "No events found for the specified period.",
				"events":  []any{},
				"count":   0,
			}, nil
		}

		lines := make([]string, 0, len(events))
		listed := make([]any, 0, len(events))
		for _, evt := range events {
			lines = append(lines, fmt.Sprintf("- %s starting at %s", evt.Subject, evt.Start.Format("January 2, 2006, at 3:04 PM")))
			listed = append(listed, evt.asMap())
		}
		return map[string]any{
			"message": "Here are the matching events:\n" + strings.Join(lines, "\n"),
			"events":  listed,
			"count":   len(events),
		}, nil
	})
}

func createCalendarEventSpec() models.ToolSpec {
	return models.ToolSpec{
		Name:          "create_calendar_event",
		Description:   "Creates a new event in the user's calendar.",
		Category:      models.CategoryCalendar,
		Action:        models.ActionWrite,
		Sensitivity:   models.SensitivityMedium,
		Scope:         models.ScopeSingle,
		SideEffects:   true,
		RequiredScope: "tool.calendar.write",
		TargetEntity:  "calendar_event",
		Params: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"subject":        map[string]any{"type": "string", "minLength": 1},
				"start_time_str": map[string]any{"type": "string", "minLength": 1},
				"end_time_str":   map[string]any{"type": "string", "minLength": 1},
				"location":       map[string]any{"type": "string"},
			},
			"required": []string{"subject", "start_time_str", "end_time_str"},
		},
	}
}

func createCalendarEventHandler(calendar *CalendarProvider) Handler {
	return HandlerFunc(func(_ context.Context, args map[string]any) (map[string]any, error) {
		start, err := when(strArg(args, "start_time_str"))
		if err != nil {
			return nil, err
		}
		end, err := when(strArg(args, "end_time_str"))
		if err != nil {
			return nil, err
		}

		subject := strArg(args, "subject")
		evt, err := calendar.CreateEvent(subject, strArg(args, "location"), start, end)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"message": fmt.Sprintf("Successfully created calendar event: '%s'.", subject),
			"event":   evt.asMap(),
		}, nil
	})
}

func readEmailsSpec() models.ToolSpec {
	return models.ToolSpec{
		Name:          "read_emails",
		Description:   "Reads recent emails from the user's inbox.",
		Category:      models.CategoryEmail,
		Action:        models.ActionRead,
		Sensitivity:   models.SensitivityMedium,
		Scope:         models.ScopeBatch,
		RequiredScope: "tool.email.read",
		TargetEntity:  "email",
		Params: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"max_emails": map[string]any{"type": "integer", "minimum": 1, "maximum": 25},
			},
		},
	}
}

func readEmailsHandler(mail *MailProvider) Handler {
	return HandlerFunc(func(_ context.Context, args map[string]any) (map[string]any, error) {
		emails := mail.ReadInbox(intArg(args, "max_emails", 5))
		if len(emails) == 0 {
			return map[string]any{
				"message": "The inbox is empty.",
				"emails":  []any{},
				"count":   0,
			}, nil
		}

		summaries := make([]string, 0, len(emails))
		listed := make([]any, 0, len(emails))
		for _, email := range emails {
			summaries = append(summaries, fmt.Sprintf("From: %s\nSubject: %s", email.From, email.Subject))
			listed = append(listed, map[string]any{
				"from":        email.From,
				"subject":     email.Subject,
				"received_at": email.ReceivedAt.Format(time.RFC3339),
			})
		}
		return map[string]any{
			"message": strings.Join(summaries, "\n\n---\n\n"),
			"emails":  listed,
			"count":   len(emails),
		}, nil
	})
}

func sendEmailSpec() models.ToolSpec {
	return models.ToolSpec{
		Name:                  "send_email",
		Description:           "Sends an email on the user's behalf.",
		Category:              models.CategoryEmail,
		Action:                models.ActionWrite,
		Sensitivity:           models.SensitivityHigh,
		Scope:                 models.ScopeSingle,
		SideEffects:           true,
		ExternalCommunication: true,
		RequiredScope:         "tool.email.send",
		TargetEntity:          "email",
		Params: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"to":      map[string]any{"type": "string", "minLength": 3},
				"subject": map[string]any{"type": "string", "minLength": 1},
				"content": map[string]any{"type": "string"},
			},
			"required": []string{"to", "subject", "content"},
		},
	}
}

func sendEmailHandler(mail *MailProvider) Handler {
	return HandlerFunc(func(_ context.Context, args map[string]any) (map[string]any, error) {
		to := strArg(args, "to")
		id, err := mail.Send(to, strArg(args, "subject"), strArg(args, "content"))
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"message":    "Email sent successfully.",
			"message_id": id,
			"to":         to,
		}, nil
	})
}

func listFilesSpec() models.ToolSpec {
	return models.ToolSpec{
		Name:          "list_files",
		Description:   "Lists files and directories inside the workspace.",
		Category:      models.CategoryFiles,
		Action:        models.ActionRead,
		Sensitivity:   models.SensitivityLow,
		Scope:         models.ScopeSingle,
		RequiredScope: "tool.files.read",
		TargetEntity:  "file",
		Params: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"directory_path": map[string]any{"type": "string"},
			},
			"required": []string{"directory_path"},
		},
	}
}

func listFilesHandler(files *FilesProvider) Handler {
	return HandlerFunc(func(_ context.Context, args map[string]any) (map[string]any, error) {
		dir := strArg(args, "directory_path")
		entries, err := files.List(dir)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			return map[string]any{
				"message": "The directory is empty.",
				"entries": []any{},
				"count":   0,
			}, nil
		}

		names := make([]string, 0, len(entries))
		listed := make([]any, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name)
			listed = append(listed, map[string]any{
				"name":   entry.Name,
				"is_dir": entry.IsDir,
				"size":   entry.Size,
			})
		}
		return map[string]any{
			"message": strings.Join(names, "\n"),
			"entries": listed,
			"count":   len(entries),
		}, nil
	})
}

func deleteFileSpec() models.ToolSpec {
	return models.ToolSpec{
		Name:          "delete_file",
		Description:   "Deletes a file from the workspace.",
		Category:      models.CategoryFiles,
		Action:        models.ActionDelete,
		Sensitivity:   models.SensitivityHigh,
		Scope:         models.ScopeSingle,
		SideEffects:   true,
		Destructive:   true,
		RequiredScope: "tool.files.write",
		TargetEntity:  "file",
		Params: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{"type": "string", "minLength": 1},
			},
			"required": []string{"path"},
		},
	}
}

func deleteFileHandler(files *FilesProvider) Handler {
	return HandlerFunc(func(_ context.Context, args map[string]any) (map[string]any, error) {
		path := strArg(args, "path")
		if err := files.Delete(path); err != nil {
			return nil, err
		}
		return map[string]any{
			"message": fmt.Sprintf("Deleted '%s'.", path),
			"path":    path,
		}, nil
	})
}

func getWeatherInfoSpec() models.ToolSpec {
	return models.ToolSpec{
		Name:          "get_weather_info",
		Description:   "Gets the current weather for a location.",
		Category:      models.CategoryOther,
		Action:        models.ActionRead,
		Sensitivity:   models.SensitivityLow,
		Scope:         models.ScopeSingle,
		RequiredScope: "core",
		TargetEntity:  "forecast",
		Params: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location": map[string]any{"type": "string", "minLength": 1},
				"num_days": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
			},
			"required": []string{"location"},
		},
	}
}

func getWeatherInfoHandler(weather *WeatherProvider) Handler {
	return HandlerFunc(func(_ context.Context, args map[string]any) (map[string]any, error) {
		forecast := weather.Current(strArg(args, "location"))
		message := fmt.Sprintf(
			"Current weather in %s: %s, %d°C (feels like %d°C), humidity %d%%, wind %d m/s.",
			forecast.Location, forecast.Condition, forecast.TempC, forecast.FeelsLikeC,
			forecast.Humidity, forecast.WindMS,
		)
		return map[string]any{
			"message":       message,
			"location":      forecast.Location,
			"condition":     forecast.Condition,
			"temperature_c": forecast.TempC,
			"feels_like_c":  forecast.FeelsLikeC,
			"humidity":      forecast.Humidity,
			"wind_ms":       forecast.WindMS,
		}, nil
	})
}

func getSystemInfoSpec() models.ToolSpec {
	return models.ToolSpec{
		Name:          "get_system_info",
		Description:   "Reports the platform the assistant is running on.",
		Category:      models.CategorySystem,
		Action:        models.ActionRead,
		Sensitivity:   models.SensitivityLow,
		Scope:         models.ScopeSingle,
		RequiredScope: "core",
		TargetEntity:  "system",
		Params:        map[string]any{"type": "object"},
	}
}

func getSystemInfoHandler() Handler {
	return HandlerFunc(func(context.Context, map[string]any) (map[string]any, error) {
		info := SystemInfo()

		keys := make([]string, 0, len(info))
		for key := range info {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		lines := make([]string, 0, len(keys))
		for _, key := range keys {
			lines = append(lines, fmt.Sprintf("%s: %v", key, info[key]))
		}

		data := map[string]any{"message": strings.Join(lines, "\n")}
		for key, value := range info {
			data[key] = value
		}
		return data, nil
	})
}

func webSearchSpec() models.ToolSpec {
	return models.ToolSpec{
		Name:                  "web_search",
		Description:           "Performs a web search to find information.",
		Category:              models.CategoryWeb,
		Action:                models.ActionRead,
		Sensitivity:           models.SensitivityLow,
		Scope:                 models.ScopeSingle,
		ExternalCommunication: true,
		RequiredScope:         "tool.web.search",
		TargetEntity:          "web_query",
		Params: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{"type": "string", "minLength": 1},
			},
			"required": []string{"query"},
		},
	}
}

func webSearchHandler(search *SearchProvider) Handler {
	return HandlerFunc(func(_ context.Context, args map[string]any) (map[string]any, error) {
		query := strArg(args, "query")
		results := search.Search(query, 3)

		listed := make([]any, 0, len(results))
		for _, result := range results {
			listed = append(listed, map[string]any{
				"title":   result.Title,
				"url":     result.URL,
				"snippet": result.Snippet,
			})
		}
		return map[string]any{
			"message": fmt.Sprintf("Found %d results for '%s'.", len(results), query),
			"results": listed,
			"count":   len(results),
		}, nil
	})
}

func runAutomationSpec() models.ToolSpec {
	return models.ToolSpec{
		Name:          "run_automation",
		Description:   "Runs a named automation routine.",
		Category:      models.CategorySystem,
		Action:        models.ActionExecute,
		Sensitivity:   models.SensitivityHigh,
		Scope:         models.ScopeSingle,
		SideEffects:   true,
		RequiredScope: "tool.system.automation",
		TargetEntity:  "automation",
		Params: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string", "minLength": 1},
			},
			"required": []string{"name"},
		},
	}
}

func runAutomationHandler(automations *AutomationRunner) Handler {
	return HandlerFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		name := strArg(args, "name")
		message, err := automations.Run(ctx, name)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"message":    message,
			"automation": name,
		}, nil
	})
}

func strArg(args map[string]any, key string) string {
	value, _ := args[key].(string)
	return strings.TrimSpace(value)
}

func intArg(args map[string]any, key string, fallback int) int {
	switch value := args[key].(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	case json.Number:
		if n, err := value.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
	}
	return fallback
}
