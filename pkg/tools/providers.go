package tools

import (
	"context"
	"fmt"
	"hash/fnv"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// Local backends for the built-in tools. Real integrations (Graph,
// OpenWeatherMap, Tavily) sit behind the same provider surfaces; these
// deterministic stand-ins keep the assistant fully functional offline.

// CalendarEvent is one entry in the local calendar.
type CalendarEvent struct {
	ID       string
	Subject  string
	Start    time.Time
	End      time.Time
	Location string
}

func (e CalendarEvent) asMap() map[string]any {
	m := map[string]any{
		"id":      e.ID,
		"subject": e.Subject,
		"start":   e.Start.Format(time.RFC3339),
		"end":     e.End.Format(time.RFC3339),
	}
	if e.Location != "" {
		m["location"] = e.Location
	}
	return m
}

// CalendarProvider is an in-memory calendar. It starts with one upcoming
// "Team Sync" event so read paths have something to show.
type CalendarProvider struct {
	mu     sync.RWMutex
	now    func() time.Time
	events []CalendarEvent
	nextID int
}

// NewCalendarProvider creates a calendar provider. now is injectable for
// tests; nil means time.Now.
func NewCalendarProvider(now func() time.Time) *CalendarProvider {
	if now == nil {
		now = time.Now
	}
	p := &CalendarProvider{now: now, nextID: 2}

	tomorrow := now().Add(24 * time.Hour)
	start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 9, 0, 0, 0, tomorrow.Location())
	p.events = []CalendarEvent{{
		ID:      "evt-0001",
		Subject: "Team Sync",
		Start:   start,
		End:     start.Add(30 * time.Minute),
	}}
	return p
}

// EventsWithin returns events starting between now and now+days,
// soonest first.
func (p *CalendarProvider) EventsWithin(days int) []CalendarEvent {
	if days <= 0 {
		days = 1
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	now := p.now()
	until := now.Add(time.Duration(days) * 24 * time.Hour)
	matched := make([]CalendarEvent, 0, len(p.events))
	for _, evt := range p.events {
		if !evt.Start.Before(now) && evt.Start.Before(until) {
			matched = append(matched, evt)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Start.Before(matched[j].Start) })
	return matched
}

// CreateEvent adds an event and returns it
func (p *CalendarProvider) CreateEvent(subject, location string, start, end time.Time) (CalendarEvent, error) {
	if subject == "" {
		return CalendarEvent{}, fmt.Errorf("event subject is required")
	}
	if !end.After(start) {
		return CalendarEvent{}, fmt.Errorf("event end must be after its start")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	evt := CalendarEvent{
		ID:       fmt.Sprintf("evt-%04d", p.nextID),
		Subject:  subject,
		Start:    start,
		End:      end,
		Location: location,
	}
	p.nextID++
	p.events = append(p.events, evt)
	return evt, nil
}

// EmailSummary is one inbox entry.
type EmailSummary struct {
	From       string
	Subject    string
	ReceivedAt time.Time
}

// SentEmail records one outbound message.
type SentEmail struct {
	ID      string
	To      string
	Subject string
	Content string
	SentAt  time.Time
}

// MailProvider is an in-memory mailbox with a seeded inbox and a sent
// folder that records outbound messages.
type MailProvider struct {
	mu     sync.RWMutex
	now    func() time.Time
	inbox  []EmailSummary
	sent   []SentEmail
	nextID int
}

// NewMailProvider creates a mail provider with a small seeded inbox.
func NewMailProvider(now func() time.Time) *MailProvider {
	if now == nil {
		now = time.Now
	}
	base := now()
	return &MailProvider{
		now:    now,
		nextID: 1,
		inbox: []EmailSummary{
			{From: "Facilities", Subject: "Office closed Friday for maintenance", ReceivedAt: base.Add(-26 * time.Hour)},
			{From: "Dana Reyes", Subject: "Quarterly numbers draft attached", ReceivedAt: base.Add(-5 * time.Hour)},
			{From: "IT Helpdesk", Subject: "Password rotation reminder", ReceivedAt: base.Add(-45 * time.Minute)},
		},
	}
}

// ReadInbox returns up to max inbox entries, newest first.
func (p *MailProvider) ReadInbox(max int) []EmailSummary {
	if max <= 0 {
		max = 5
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	sorted := make([]EmailSummary, len(p.inbox))
	copy(sorted, p.inbox)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ReceivedAt.After(sorted[j].ReceivedAt) })
	if len(sorted) > max {
		sorted = sorted[:max]
	}
	return sorted
}

// Send records an outbound message and returns its id.
func (p *MailProvider) Send(to, subject, content string) (string, error) {
	if !strings.Contains(to, "@") {
		return "", fmt.Errorf("invalid recipient address %q", to)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	id := fmt.Sprintf("msg-%04d", p.nextID)
	p.nextID++
	p.sent = append(p.sent, SentEmail{
		ID:      id,
		To:      to,
		Subject: subject,
		Content: content,
		SentAt:  p.now(),
	})
	return id, nil
}

// Sent returns a copy of the sent folder
func (p *MailProvider) Sent() []SentEmail {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]SentEmail, len(p.sent))
	copy(out, p.sent)
	return out
}

// FileEntry is one row in a directory listing.
type FileEntry struct {
	Name  string
	IsDir bool
	Size  int64
}

// FilesProvider serves file operations rooted at a workspace directory.
// Paths are relative to the root; escapes are rejected.
type FilesProvider struct {
	root string
}

// NewFilesProvider creates a files provider rooted at root.
func NewFilesProvider(root string) *FilesProvider {
	return &FilesProvider{root: root}
}

// Root returns the workspace root path
func (p *FilesProvider) Root() string { return p.root }

func (p *FilesProvider) resolve(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("path %q must be relative to the workspace", rel)
	}
	clean := filepath.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the workspace", rel)
	}
	if clean == "." {
		return p.root, nil
	}
	return filepath.Join(p.root, clean), nil
}

// List returns the entries of a directory relative to the root. An empty
// path lists the root itself.
func (p *FilesProvider) List(rel string) ([]FileEntry, error) {
	dir, err := p.resolve(rel)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory %q not found", rel)
		}
		return nil, fmt.Errorf("failed to list %q: %w", rel, err)
	}

	listed := make([]FileEntry, 0, len(entries))
	for _, entry := range entries {
		row := FileEntry{Name: entry.Name(), IsDir: entry.IsDir()}
		if info, err := entry.Info(); err == nil {
			row.Size = info.Size()
		}
		listed = append(listed, row)
	}
	sort.Slice(listed, func(i, j int) bool { return listed[i].Name < listed[j].Name })
	return listed, nil
}

// Delete removes one file relative to the root. Directories are refused.
func (p *FilesProvider) Delete(rel string) error {
	if strings.TrimSpace(rel) == "" {
		return fmt.Errorf("path is required")
	}
	path, err := p.resolve(rel)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file %q not found", rel)
		}
		return fmt.Errorf("failed to stat %q: %w", rel, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", rel)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete %q: %w", rel, err)
	}
	return nil
}

// Forecast is one weather report.
type Forecast struct {
	Location   string
	Condition  string
	TempC      int
	FeelsLikeC int
	Humidity   int
	WindMS     int
}

var weatherConditions = []string{
	"clear skies",
	"partly cloudy",
	"overcast",
	"light rain",
	"scattered showers",
	"breezy and mild",
}

// WeatherProvider produces a stable forecast per location: the same
// place always reports the same weather.
type WeatherProvider struct{}

// NewWeatherProvider creates a weather provider
func NewWeatherProvider() *WeatherProvider { return &WeatherProvider{} }

// Current returns the forecast for a location.
func (p *WeatherProvider) Current(location string) Forecast {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(location))))
	seed := h.Sum32()

	temp := 8 + int(seed%20)
	return Forecast{
		Location:   strings.TrimSpace(location),
		Condition:  weatherConditions[int(seed)%len(weatherConditions)],
		TempC:      temp,
		FeelsLikeC: temp - 1 + int(seed%3),
		Humidity:   40 + int(seed/7%45),
		WindMS:     2 + int(seed/11%9),
	}
}

// SearchResult is one web search hit.
type SearchResult struct {
	Title   string
	URL     string
	Snippet string
}

// SearchProvider answers queries with locally synthesized results.
type SearchProvider struct{}

// NewSearchProvider creates a search provider
func NewSearchProvider() *SearchProvider { return &SearchProvider{} }

// Search returns up to k synthesized results for a query.
func (p *SearchProvider) Search(query string, k int) []SearchResult {
	if k <= 0 {
		k = 3
	}
	query = strings.TrimSpace(query)

	angles := []string{"overview", "latest news", "discussion"}
	results := make([]SearchResult, 0, k)
	for i := 0; i < k && i < len(angles); i++ {
		results = append(results, SearchResult{
			Title:   fmt.Sprintf("%s — %s", query, angles[i]),
			URL:     fmt.Sprintf("https://search.local/r/%d?q=%s", i+1, url.QueryEscape(query)),
			Snippet: fmt.Sprintf("Locally indexed summary %d for %q.", i+1, query),
		})
	}
	return results
}

// SystemInfo reports the host the assistant is running on.
func SystemInfo() map[string]any {
	hostname, _ := os.Hostname()
	return map[string]any{
		"platform":     runtime.GOOS,
		"architecture": runtime.GOARCH,
		"cpus":         runtime.NumCPU(),
		"go_version":   runtime.Version(),
		"hostname":     hostname,
	}
}

// Automation is a named routine the assistant can trigger.
type Automation struct {
	Name        string
	Description string
	Run         func(ctx context.Context) (string, error)
}

// AutomationRunner executes named automations. Ships with two built-in
// routines; more can be registered at startup.
type AutomationRunner struct {
	mu          sync.RWMutex
	automations map[string]Automation
}

// NewAutomationRunner creates a runner with the built-in automations.
func NewAutomationRunner() *AutomationRunner {
	r := &AutomationRunner{automations: make(map[string]Automation)}
	_ = r.Register(Automation{
		Name:        "morning_briefing",
		Description: "Queue the morning briefing: today's calendar and inbox digest.",
		Run: func(context.Context) (string, error) {
			return "Morning briefing queued: today's calendar and inbox digest will be read out.", nil
		},
	})
	_ = r.Register(Automation{
		Name:        "workspace_cleanup",
		Description: "Sweep temporary files out of the workspace.",
		Run: func(context.Context) (string, error) {
			return "Workspace cleanup started: temporary files will be swept in the background.", nil
		},
	})
	return r
}

// Register adds an automation; duplicate names are rejected.
func (r *AutomationRunner) Register(a Automation) error {
	if a.Name == "" {
		return fmt.Errorf("automation name is required")
	}
	if a.Run == nil {
		return fmt.Errorf("automation %s: run function is required", a.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.automations[a.Name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, a.Name)
	}
	r.automations[a.Name] = a
	return nil
}

// Run executes the named automation.
func (r *AutomationRunner) Run(ctx context.Context, name string) (string, error) {
	r.mu.RLock()
	automation, ok := r.automations[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("unknown automation %q; available: %s", name, strings.Join(r.Names(), ", "))
	}
	return automation.Run(ctx)
}

// Names returns the registered automation names, sorted.
func (r *AutomationRunner) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.automations))
	for name := range r.automations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// when parses the handful of timestamp shapes the intent parser emits.
// Date-only values land at 09:00 local.
func when(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02 3:04 PM",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t.Add(9 * time.Hour), nil
	}
	return time.Time{}, fmt.Errorf("could not understand the time %q; use a format like '2006-01-02 15:04'", s)
}
