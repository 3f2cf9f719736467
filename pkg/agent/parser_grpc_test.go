package agent

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/valet-assistant/valet/pkg/models"
	assistantv1 "github.com/valet-assistant/valet/proto/assistant/v1"
)

// stubAssistantServer serves canned raw JSON and records the last
// request it saw.
type stubAssistantServer struct {
	assistantv1.UnimplementedAssistantServiceServer
	rawJSON string
	fail    bool
	lastReq *assistantv1.ParseIntentRequest
}

func (s *stubAssistantServer) ParseIntent(_ context.Context, req *assistantv1.ParseIntentRequest) (*assistantv1.ParseIntentResponse, error) {
	s.lastReq = req
	if s.fail {
		return nil, status.Error(codes.Unavailable, "model backend down")
	}
	return &assistantv1.ParseIntentResponse{RawJson: s.rawJSON, Model: "stub-model"}, nil
}

// startStubAssistant runs an in-process gRPC server on a loopback port.
func startStubAssistant(t *testing.T, stub *stubAssistantServer) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	assistantv1.RegisterAssistantServiceServer(srv, stub)
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(srv.Stop)

	return ln.Addr().String()
}

func TestGRPCParserRoundtrip(t *testing.T) {
	stub := &stubAssistantServer{
		rawJSON: `{"name":"web_search","slots":{"query":"latest go release"},"confidence":0.88}`,
	}
	addr := startStubAssistant(t, stub)

	parser, err := NewGRPCParser(addr, DefaultCatalog())
	require.NoError(t, err)
	defer parser.Close()

	intent, err := parser.ParseIntent(context.Background(), "search for the latest go release", "")
	require.NoError(t, err)
	assert.Equal(t, "web_search", intent.Name)
	assert.Equal(t, "latest go release", intent.Slots["query"])

	require.NotNil(t, stub.lastReq)
	assert.Equal(t, "search for the latest go release", stub.lastReq.Utterance)
	assert.Equal(t, DefaultCatalog().PromptList(), stub.lastReq.IntentList)
	// An empty context is never sent as an empty string.
	assert.Equal(t, "No context available.", stub.lastReq.Context)
}

func TestGRPCParserSendsContext(t *testing.T) {
	stub := &stubAssistantServer{rawJSON: `{"name":"unknown","slots":{},"confidence":0}`}
	addr := startStubAssistant(t, stub)

	parser, err := NewGRPCParser(addr, DefaultCatalog())
	require.NoError(t, err)
	defer parser.Close()

	_, err = parser.ParseIntent(context.Background(), "and tomorrow?", "Recent conversation:\nuser: weather in Oslo")
	require.NoError(t, err)
	assert.Equal(t, "Recent conversation:\nuser: weather in Oslo", stub.lastReq.Context)
}

func TestGRPCParserRepairsModelOutput(t *testing.T) {
	stub := &stubAssistantServer{
		rawJSON: `{name: "get_weather_info", slots: {location: "Oslo"}, confidence: 0.8,}`,
	}
	addr := startStubAssistant(t, stub)

	parser, err := NewGRPCParser(addr, DefaultCatalog())
	require.NoError(t, err)
	defer parser.Close()

	intent, err := parser.ParseIntent(context.Background(), "weather in oslo", "")
	require.NoError(t, err)
	assert.Equal(t, "get_weather_info", intent.Name)
	assert.Equal(t, "Oslo", intent.Slots["location"])
}

func TestGRPCParserTransportError(t *testing.T) {
	stub := &stubAssistantServer{fail: true}
	addr := startStubAssistant(t, stub)

	parser, err := NewGRPCParser(addr, DefaultCatalog())
	require.NoError(t, err)
	defer parser.Close()

	_, err = parser.ParseIntent(context.Background(), "anything", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gRPC ParseIntent call failed")
}

func TestGRPCParserGarbageOutput(t *testing.T) {
	stub := &stubAssistantServer{rawJSON: "Sorry, I cannot answer that."}
	addr := startStubAssistant(t, stub)

	parser, err := NewGRPCParser(addr, DefaultCatalog())
	require.NoError(t, err)
	defer parser.Close()

	intent, err := parser.ParseIntent(context.Background(), "anything", "")
	require.NoError(t, err)
	assert.Equal(t, models.IntentUnknown, intent.Name)
	assert.Zero(t, intent.Confidence)
}
