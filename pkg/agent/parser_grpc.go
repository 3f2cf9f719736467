package agent

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/valet-assistant/valet/pkg/models"
	assistantv1 "github.com/valet-assistant/valet/proto/assistant/v1"
)

// GRPCParser implements Parser by calling the Python assistant service
// via gRPC. The service owns the LLM prompt; this side sends the intent
// list, the utterance and the serialized context, and decodes whatever
// JSON comes back.
type GRPCParser struct {
	conn       *grpc.ClientConn
	client     assistantv1.AssistantServiceClient
	intentList string
}

// NewGRPCParser creates a new gRPC intent parser for the given catalog.
func NewGRPCParser(addr string, catalog *Catalog) (*GRPCParser, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to assistant service at %s: %w", addr, err)
	}
	return &GRPCParser{
		conn:       conn,
		client:     assistantv1.NewAssistantServiceClient(conn),
		intentList: catalog.PromptList(),
	}, nil
}

// ParseIntent sends the utterance to the assistant service and decodes
// the structured intent from its raw JSON output.
func (p *GRPCParser) ParseIntent(ctx context.Context, utterance, contextStr string) (models.Intent, error) {
	if contextStr == "" {
		contextStr = "No context available."
	}

	resp, err := p.client.ParseIntent(ctx, &assistantv1.ParseIntentRequest{
		IntentList: p.intentList,
		Utterance:  utterance,
		Context:    contextStr,
	})
	if err != nil {
		return models.Intent{}, fmt.Errorf("gRPC ParseIntent call failed: %w", err)
	}

	return DecodeIntent(resp.GetRawJson()), nil
}

// Close releases the gRPC connection.
func (p *GRPCParser) Close() error {
	return p.conn.Close()
}
