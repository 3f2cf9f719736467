package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/valet-assistant/valet/pkg/models"
	assistantv1 "github.com/valet-assistant/valet/proto/assistant/v1"
)

// ScriptedAssistant implements the AssistantService gRPC surface from a
// substring-match rule table, so e2e turns run through the real parser
// client, JSON repair and slot validation. Unmatched utterances come
// back as the unknown intent, exactly like a model that didn't
// recognize the command.
type ScriptedAssistant struct {
	assistantv1.UnimplementedAssistantServiceServer

	mu    sync.Mutex
	rules []assistantRule
	seen  []string
}

type assistantRule struct {
	substr string
	raw    string
}

// NewScriptedAssistant creates an empty scripted backend.
func NewScriptedAssistant() *ScriptedAssistant {
	return &ScriptedAssistant{}
}

// Handle registers an intent for utterances containing substr
// (case-insensitive). First match wins.
func (s *ScriptedAssistant) Handle(substr string, intent models.Intent) {
	raw, err := json.Marshal(intent)
	if err != nil {
		panic(fmt.Sprintf("unmarshalable scripted intent %q: %v", intent.Name, err))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, assistantRule{substr: strings.ToLower(substr), raw: string(raw)})
}

// HandleRaw registers a raw JSON response for utterances containing
// substr, for scripting malformed model output.
func (s *ScriptedAssistant) HandleRaw(substr, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, assistantRule{substr: strings.ToLower(substr), raw: raw})
}

// Utterances returns every utterance the backend has been asked to
// parse, in order. Confirmation answers never reach the parser, so
// they never show up here.
func (s *ScriptedAssistant) Utterances() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.seen))
	copy(out, s.seen)
	return out
}

// ParseIntent implements assistantv1.AssistantServiceServer.
func (s *ScriptedAssistant) ParseIntent(_ context.Context, req *assistantv1.ParseIntentRequest) (*assistantv1.ParseIntentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, req.Utterance)

	lowered := strings.ToLower(req.Utterance)
	for _, rule := range s.rules {
		if strings.Contains(lowered, rule.substr) {
			return &assistantv1.ParseIntentResponse{RawJson: rule.raw, Model: "scripted"}, nil
		}
	}
	return &assistantv1.ParseIntentResponse{
		RawJson: `{"name":"unknown","slots":{},"confidence":0}`,
		Model:   "scripted",
	}, nil
}

// startAssistant serves the scripted backend on a loopback port.
func startAssistant(t *testing.T, assist *ScriptedAssistant) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	assistantv1.RegisterAssistantServiceServer(srv, assist)
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(srv.Stop)

	return ln.Addr().String()
}
